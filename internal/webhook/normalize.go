// Package webhook turns raw platform webhook payloads into normalized
// transcript records. Only end-of-call reports produce a record; every
// other event type is ignored.
package webhook

import (
	"fmt"
	"strings"

	"callbench/internal/models"
	"callbench/internal/payload"
)

// EventEndOfCallReport is the only webhook message type that carries a
// completed call's artifact.
const EventEndOfCallReport = "end-of-call-report"

// MapSpeaker normalizes a platform role string into a speaker label. The
// outbound test caller runs as the platform's assistant, so assistant
// and bot map to the patient side and user maps to the clinic agent
// under test. Unrecognized roles pass through lowercased; an empty role
// becomes "unknown".
func MapSpeaker(role string) string {
	switch strings.ToLower(role) {
	case "assistant", "bot":
		return models.SpeakerPatient
	case "user":
		return models.SpeakerClinic
	case "":
		return models.SpeakerUnknown
	default:
		return strings.ToLower(role)
	}
}

// Normalize converts an end-of-call-report payload into a Transcript.
// It returns nil for any other message type. Missing fields degrade to
// null or empty values rather than failing the whole record.
func Normalize(body map[string]any) *models.Transcript {
	msg := payload.Map(body, "message")
	if msg == nil || payload.String(msg, "type") != EventEndOfCallReport {
		return nil
	}

	tr := &models.Transcript{
		CallID:      payload.String(msg, "call.id"),
		EndedReason: payload.FirstString(msg, "endedReason", "call.endedReason"),
		StartedAt:   payload.StringPtr(body, "message.call.startedAt", "message.startedAt", "startedAt"),
		EndedAt:     payload.StringPtr(body, "message.call.endedAt", "message.endedAt", "endedAt"),
		Turns:       normalizeTurns(payload.Get(msg, "artifact.messages")),
	}

	tr.Artifact.RawTranscript = rawTranscript(payload.Get(msg, "artifact.transcript"))
	if url := payload.FirstString(msg, payload.RecordingURLPaths("call", "artifact")...); url != "" {
		tr.Artifact.RecordingURL = &url
	}

	return tr
}

// normalizeTurns maps the platform's message list to speaker-labeled
// turns. System entries and entries with no text are dropped.
func normalizeTurns(raw any) []models.Turn {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}

	turns := make([]models.Turn, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		role := payload.String(m, "role")
		if strings.EqualFold(role, "system") {
			continue
		}
		text := payload.FirstString(m, "message", "content")
		if text == "" {
			continue
		}
		turns = append(turns, models.Turn{
			Speaker: MapSpeaker(role),
			Role:    role,
			Text:    text,
		})
	}
	if len(turns) == 0 {
		return nil
	}
	return turns
}

// rawTranscript carries the platform's own transcript rendering. A plain
// string passes through; some payload shapes deliver it as a message
// list instead, which is flattened to "Role: text" lines.
func rawTranscript(raw any) *string {
	switch v := raw.(type) {
	case string:
		if v == "" {
			return nil
		}
		return &v
	case []any:
		var lines []string
		for _, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			role := payload.String(m, "role")
			if role == "" {
				role = "unknown"
			}
			text := payload.FirstString(m, "message", "content")
			lines = append(lines, fmt.Sprintf("%s: %s", capitalize(role), text))
		}
		if len(lines) == 0 {
			return nil
		}
		joined := strings.Join(lines, "\n")
		return &joined
	default:
		return nil
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
