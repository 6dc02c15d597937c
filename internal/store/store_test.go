package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"callbench/internal/models"
)

func strp(s string) *string { return &s }

func sampleTranscript() *models.Transcript {
	return &models.Transcript{
		CallID:      "call-abc-123",
		EndedReason: "customer-ended-call",
		StartedAt:   strp("2025-01-15T10:00:00Z"),
		EndedAt:     strp("2025-01-15T10:04:30Z"),
		Turns: []models.Turn{
			{Speaker: models.SpeakerClinic, Role: "user", Text: "Thank you for calling."},
			{Speaker: models.SpeakerPatient, Role: "assistant", Text: "Hi, I'd like to book an appointment."},
		},
		Artifact: models.Artifact{
			RawTranscript: strp("Clinic: Thank you for calling.\nPatient: Hi."),
		},
	}
}

func TestTranscriptSaveAndLoad(t *testing.T) {
	s := NewTranscriptStore(t.TempDir())

	path, err := s.Save(sampleTranscript())
	require.NoError(t, err)
	assert.Equal(t, "call-abc-123.json", filepath.Base(path))
	assert.True(t, s.Exists("call-abc-123"))

	got, err := s.Load("call-abc-123")
	require.NoError(t, err)
	assert.Equal(t, "customer-ended-call", got.EndedReason)
	assert.Len(t, got.Turns, 2)
	require.NotNil(t, got.Artifact.RawTranscript)
	assert.Nil(t, got.Artifact.RecordingURL)
	assert.Nil(t, got.Scenario, "scenario stays null until patched")
}

func TestTranscriptFilenameSanitizesSlashes(t *testing.T) {
	s := NewTranscriptStore(t.TempDir())

	tr := sampleTranscript()
	tr.CallID = "org/call/9"
	path, err := s.Save(tr)
	require.NoError(t, err)
	assert.Equal(t, "org_call_9.json", filepath.Base(path))
	assert.Equal(t, s.Dir, filepath.Dir(path))
}

func TestTranscriptFilenameFallback(t *testing.T) {
	s := NewTranscriptStore(t.TempDir())

	tr := sampleTranscript()
	tr.CallID = ""
	path, err := s.Save(tr)
	require.NoError(t, err)

	base := filepath.Base(path)
	assert.True(t, strings.HasPrefix(base, "call_"), base)
	assert.True(t, strings.HasSuffix(base, "Z.json"), base)
}

func TestSaveOverwritesSameCallID(t *testing.T) {
	s := NewTranscriptStore(t.TempDir())

	first := sampleTranscript()
	_, err := s.Save(first)
	require.NoError(t, err)

	second := sampleTranscript()
	second.EndedReason = "assistant-ended-call"
	second.Turns = second.Turns[:1]
	_, err = s.Save(second)
	require.NoError(t, err)

	got, err := s.Load("call-abc-123")
	require.NoError(t, err)
	assert.Equal(t, "assistant-ended-call", got.EndedReason)
	assert.Len(t, got.Turns, 1)
}

func TestPatchScenarioPreservesOtherFields(t *testing.T) {
	s := NewTranscriptStore(t.TempDir())

	_, err := s.Save(sampleTranscript())
	require.NoError(t, err)

	// Extra field written by another tool must survive the patch.
	raw, err := os.ReadFile(s.Path("call-abc-123"))
	require.NoError(t, err)
	var obj map[string]any
	require.NoError(t, json.Unmarshal(raw, &obj))
	obj["operator_note"] = "flagged for review"
	out, err := json.Marshal(obj)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(s.Path("call-abc-123"), out, 0o644))

	err = s.PatchScenario("call-abc-123", models.ScenarioMeta{
		ID:       "scheduling_knee_pain",
		Category: "scheduling",
		Name:     "New patient with knee pain",
		RunIndex: 2,
	})
	require.NoError(t, err)

	raw, err = os.ReadFile(s.Path("call-abc-123"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &obj))

	sc, ok := obj["scenario"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "scheduling_knee_pain", sc["id"])
	assert.Equal(t, float64(2), sc["run_index"])
	assert.Equal(t, "flagged for review", obj["operator_note"])

	turns, ok := obj["turns"].([]any)
	require.True(t, ok)
	assert.Len(t, turns, 2)
}

func TestPatchRecordingURL(t *testing.T) {
	s := NewTranscriptStore(t.TempDir())

	_, err := s.Save(sampleTranscript())
	require.NoError(t, err)

	err = s.PatchRecordingURL("call-abc-123", "https://cdn.example/rec.wav")
	require.NoError(t, err)

	got, err := s.Load("call-abc-123")
	require.NoError(t, err)
	require.NotNil(t, got.Artifact.RecordingURL)
	assert.Equal(t, "https://cdn.example/rec.wav", *got.Artifact.RecordingURL)
	require.NotNil(t, got.Artifact.RawTranscript, "raw transcript survives the patch")
}

func TestPatchMissingTranscript(t *testing.T) {
	s := NewTranscriptStore(t.TempDir())
	err := s.PatchRecordingURL("nope", "https://cdn.example/rec.wav")
	assert.Error(t, err)
}

func TestReportSaveLoadList(t *testing.T) {
	s := NewReportStore(t.TempDir())

	rep := &models.Report{
		CallID: "call-abc-123",
		Scores: map[string]models.DimensionScore{
			"task_resolution": {Score: 4, Reason: "Booked the appointment."},
		},
		Summary: "Handled well overall.",
	}
	path, err := s.Save(rep)
	require.NoError(t, err)
	assert.Equal(t, "call-abc-123.json", filepath.Base(path))

	got, err := s.Load("call-abc-123")
	require.NoError(t, err)
	assert.Equal(t, 4, got.Scores["task_resolution"].Score)

	ids, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"call-abc-123"}, ids)
}

func TestReportListEmptyDir(t *testing.T) {
	s := NewReportStore(filepath.Join(t.TempDir(), "never-created"))
	ids, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, ids)
}
