package orchestration

import "context"

// reconcileRecording backfills the recording URL when the webhook
// payload lacked one, using the platform's call object as the second
// source. Idempotent: a transcript that already carries a URL is left
// alone. Failures never fail the item.
func (s *Sequencer) reconcileRecording(ctx context.Context, item RunItem, total int, callID string) {
	tr, err := s.transcripts.Load(callID)
	if err != nil {
		s.logger.Warn("could not load transcript for recording reconcile", "call_id", callID, "error", err)
		return
	}
	if tr.Artifact.RecordingURL != nil && *tr.Artifact.RecordingURL != "" {
		return
	}

	url, err := s.platform.RecordingURL(ctx, callID)
	if err != nil {
		s.logger.Warn("could not fetch recording URL", "call_id", callID, "error", err)
		return
	}
	if url == "" {
		return
	}

	if err := s.transcripts.PatchRecordingURL(callID, url); err != nil {
		s.logger.Warn("could not patch recording URL", "call_id", callID, "error", err)
		return
	}
	s.emit(ProgressEvent{Type: ProgressRecordingBackfilled, Item: item, Total: total, CallID: callID, Message: url})
}
