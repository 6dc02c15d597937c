// Package models holds the record types shared across the pipeline: the
// normalized call transcript written by the webhook receiver and the
// structured evaluation report written by the judge.
package models

import "time"

// Speaker labels for normalized conversation turns. The synthetic test
// caller is the "patient"; the agent under test is the "clinic".
const (
	SpeakerPatient = "patient"
	SpeakerClinic  = "clinic"
	SpeakerUnknown = "unknown"
)

// Turn is one utterance in a call, in the order delivered by the platform.
type Turn struct {
	Speaker string `json:"speaker"`
	Role    string `json:"role"`
	Text    string `json:"text"`
}

// ScenarioMeta is the scenario identity patched onto a transcript by the
// run sequencer after the webhook has created the record.
type ScenarioMeta struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	RunIndex int    `json:"run_index,omitempty"`
}

// Artifact holds the call artifact fields delivered (or backfilled) for a
// call. Both fields stay null until a source provides them.
type Artifact struct {
	RawTranscript *string `json:"raw_transcript"`
	RecordingURL  *string `json:"recording_url"`
}

// Transcript is the canonical record of one completed call, keyed by the
// platform-assigned call id. It is created once by the webhook normalizer
// and then patched field-by-field; it is never rewritten wholesale.
type Transcript struct {
	CallID      string `json:"call_id"`
	EndedReason string `json:"ended_reason,omitempty"`

	// Timestamps are carried verbatim from the platform payload and stay
	// null when the payload omitted them.
	StartedAt *string `json:"started_at"`
	EndedAt   *string `json:"ended_at"`

	// Scenario is null until the sequencer patches run metadata on.
	Scenario *ScenarioMeta `json:"scenario"`

	Artifact Artifact `json:"artifact"`
	Turns    []Turn   `json:"turns"`

	WebhookReceivedAt *time.Time `json:"webhook_received_at,omitempty"`
}
