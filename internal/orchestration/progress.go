package orchestration

// ProgressEventType identifies a progress notification.
type ProgressEventType string

const (
	// ProgressItemStarted fires before an item's call is placed.
	ProgressItemStarted ProgressEventType = "item_started"
	// ProgressCallStarted fires once the platform accepted the call.
	ProgressCallStarted ProgressEventType = "call_started"
	// ProgressTranscriptReceived fires when the transcript file appears.
	ProgressTranscriptReceived ProgressEventType = "transcript_received"
	// ProgressRecordingBackfilled fires when the reconciler filled in a
	// recording URL the webhook payload lacked.
	ProgressRecordingBackfilled ProgressEventType = "recording_backfilled"
	// ProgressEvaluationSaved fires after a judge report is written.
	ProgressEvaluationSaved ProgressEventType = "evaluation_saved"
	// ProgressItemCompleted fires with the item's final outcome.
	ProgressItemCompleted ProgressEventType = "item_completed"
	// ProgressDelay fires before the inter-call pause.
	ProgressDelay ProgressEventType = "delay"
)

// ProgressEvent is one notification from the sequencer. Fields beyond
// Type/Item/Total are populated per event type.
type ProgressEvent struct {
	Type  ProgressEventType
	Item  RunItem
	Total int

	CallID  string
	Path    string
	Outcome *RunOutcome
	Message string
}

// ProgressListener receives sequencer progress events. Listeners run
// synchronously on the sequencer goroutine and must not block.
type ProgressListener func(ProgressEvent)
