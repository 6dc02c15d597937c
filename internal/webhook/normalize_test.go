package webhook

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"callbench/internal/models"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	return m
}

func TestMapSpeaker(t *testing.T) {
	cases := []struct {
		role string
		want string
	}{
		{"assistant", models.SpeakerPatient},
		{"bot", models.SpeakerPatient},
		{"Assistant", models.SpeakerPatient},
		{"user", models.SpeakerClinic},
		{"USER", models.SpeakerClinic},
		{"", models.SpeakerUnknown},
		{"Tool", "tool"},
		{"function", "function"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, MapSpeaker(tc.role), "role %q", tc.role)
	}
}

func TestNormalizeIgnoresOtherEventTypes(t *testing.T) {
	for _, raw := range []string{
		`{"message":{"type":"status-update","call":{"id":"c1"}}}`,
		`{"message":{"type":"transcript"}}`,
		`{"message":{}}`,
		`{"other":true}`,
		`{}`,
	} {
		assert.Nil(t, Normalize(decode(t, raw)), "payload %s", raw)
	}
}

func TestNormalizeEndOfCallReport(t *testing.T) {
	body := decode(t, `{
	  "message": {
	    "type": "end-of-call-report",
	    "endedReason": "customer-ended-call",
	    "call": {
	      "id": "call-777",
	      "startedAt": "2025-01-15T10:00:00.000Z",
	      "endedAt": "2025-01-15T10:04:30.000Z"
	    },
	    "artifact": {
	      "transcript": "AI: Hello.\nUser: Hi there.",
	      "recordingUrl": "https://cdn.example/rec.wav",
	      "messages": [
	        {"role": "system", "message": "You are a patient calling a clinic."},
	        {"role": "assistant", "message": "Hello."},
	        {"role": "user", "message": "Thanks for calling, how can I help?"},
	        {"role": "assistant", "message": ""},
	        {"role": "tool", "content": "lookup ok"}
	      ]
	    }
	  }
	}`)

	tr := Normalize(body)
	require.NotNil(t, tr)

	assert.Equal(t, "call-777", tr.CallID)
	assert.Equal(t, "customer-ended-call", tr.EndedReason)
	require.NotNil(t, tr.StartedAt)
	assert.Equal(t, "2025-01-15T10:00:00.000Z", *tr.StartedAt)
	require.NotNil(t, tr.EndedAt)
	assert.Equal(t, "2025-01-15T10:04:30.000Z", *tr.EndedAt)
	assert.Nil(t, tr.Scenario)

	require.Len(t, tr.Turns, 3, "system and empty entries dropped")
	assert.Equal(t, models.Turn{Speaker: "patient", Role: "assistant", Text: "Hello."}, tr.Turns[0])
	assert.Equal(t, models.Turn{Speaker: "clinic", Role: "user", Text: "Thanks for calling, how can I help?"}, tr.Turns[1])
	assert.Equal(t, models.Turn{Speaker: "tool", Role: "tool", Text: "lookup ok"}, tr.Turns[2])

	require.NotNil(t, tr.Artifact.RawTranscript)
	assert.Equal(t, "AI: Hello.\nUser: Hi there.", *tr.Artifact.RawTranscript)
	require.NotNil(t, tr.Artifact.RecordingURL)
	assert.Equal(t, "https://cdn.example/rec.wav", *tr.Artifact.RecordingURL)
}

func TestNormalizeMinimalPayload(t *testing.T) {
	tr := Normalize(decode(t, `{"message":{"type":"end-of-call-report"}}`))
	require.NotNil(t, tr)

	assert.Equal(t, "", tr.CallID)
	assert.Equal(t, "", tr.EndedReason)
	assert.Nil(t, tr.StartedAt)
	assert.Nil(t, tr.EndedAt)
	assert.Nil(t, tr.Turns)
	assert.Nil(t, tr.Artifact.RawTranscript)
	assert.Nil(t, tr.Artifact.RecordingURL)
}

func TestNormalizeTextFallsBackToContent(t *testing.T) {
	body := decode(t, `{
	  "message": {
	    "type": "end-of-call-report",
	    "call": {"id": "c2"},
	    "artifact": {
	      "messages": [
	        {"role": "user", "content": "Content only."},
	        {"role": "user", "message": "Message wins.", "content": "Content loses."}
	      ]
	    }
	  }
	}`)

	tr := Normalize(body)
	require.NotNil(t, tr)
	require.Len(t, tr.Turns, 2)
	assert.Equal(t, "Content only.", tr.Turns[0].Text)
	assert.Equal(t, "Message wins.", tr.Turns[1].Text)
}

func TestNormalizeRawTranscriptList(t *testing.T) {
	body := decode(t, `{
	  "message": {
	    "type": "end-of-call-report",
	    "call": {"id": "c3"},
	    "artifact": {
	      "transcript": [
	        {"role": "assistant", "message": "Hello."},
	        {"role": "user", "content": "Hi."},
	        {"message": "Who said this?"}
	      ]
	    }
	  }
	}`)

	tr := Normalize(body)
	require.NotNil(t, tr)
	require.NotNil(t, tr.Artifact.RawTranscript)
	assert.Equal(t, "Assistant: Hello.\nUser: Hi.\nUnknown: Who said this?", *tr.Artifact.RawTranscript)
}

func TestNormalizeRecordingURLPriority(t *testing.T) {
	body := decode(t, `{
	  "message": {
	    "type": "end-of-call-report",
	    "call": {"id": "c4", "recording_url": "call-snake"},
	    "artifact": {
	      "recordingUrl": "artifact-camel",
	      "recording": {"url": "nested"}
	    }
	  }
	}`)

	tr := Normalize(body)
	require.NotNil(t, tr)
	require.NotNil(t, tr.Artifact.RecordingURL)
	assert.Equal(t, "call-snake", *tr.Artifact.RecordingURL)
}

func TestNormalizeTimestampFallback(t *testing.T) {
	body := decode(t, `{
	  "message": {
	    "type": "end-of-call-report",
	    "startedAt": "2025-02-01T09:00:00Z",
	    "call": {"id": "c5"}
	  }
	}`)

	tr := Normalize(body)
	require.NotNil(t, tr)
	require.NotNil(t, tr.StartedAt)
	assert.Equal(t, "2025-02-01T09:00:00Z", *tr.StartedAt)
	assert.Nil(t, tr.EndedAt)
}

func TestNormalizeTimestampTopLevelFallback(t *testing.T) {
	body := decode(t, `{
	  "endedAt": "2025-02-01T09:10:00Z",
	  "message": {
	    "type": "end-of-call-report",
	    "call": {"id": "c6"}
	  }
	}`)

	tr := Normalize(body)
	require.NotNil(t, tr)
	require.NotNil(t, tr.EndedAt)
	assert.Equal(t, "2025-02-01T09:10:00Z", *tr.EndedAt)
}
