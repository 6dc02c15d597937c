package orchestration

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"callbench/internal/models"
	"callbench/internal/platform"
	"callbench/internal/scenario"
	"callbench/internal/store"
)

// DefaultPollInterval is the transcript poll interval when Options
// leaves it unset.
const DefaultPollInterval = 10 * time.Second

// FailureKind classifies why an item failed.
type FailureKind string

const (
	FailureNone      FailureKind = ""
	FailureStartCall FailureKind = "start-failed"
	FailureNoCallID  FailureKind = "no-call-id"
	FailureTimeout   FailureKind = "timeout"
)

// CallPlatform is the voice platform surface the sequencer needs.
type CallPlatform interface {
	StartCall(ctx context.Context, req platform.StartCallRequest) (*platform.Call, error)
	RecordingURL(ctx context.Context, callID string) (string, error)
}

// Evaluator scores a transcript. A nil report with a nil error means
// evaluation was skipped.
type Evaluator interface {
	Evaluate(ctx context.Context, tr *models.Transcript) (*models.Report, error)
}

// Options tune the sequencer's pacing and call parameters.
type Options struct {
	// MaxWait bounds how long one call may wait for its transcript.
	MaxWait time.Duration
	// PollInterval is the sleep between transcript existence checks.
	PollInterval time.Duration
	// Delay is the pause between consecutive calls. Zero disables it.
	Delay time.Duration

	// DryRun plans and reports items without placing calls.
	DryRun bool

	Destination    string
	WebhookBaseURL string
}

// RunOutcome is the result of one item.
type RunOutcome struct {
	Item    RunItem
	Success bool
	DryRun  bool

	CallID         string
	TranscriptPath string
	ReportPath     string

	Failure FailureKind
	Err     error
}

// Summary aggregates one sequencer run.
type Summary struct {
	RunID     string
	Total     int
	Succeeded int
	Failed    int
	Outcomes  []RunOutcome
}

// Sequencer executes run items one at a time.
type Sequencer struct {
	platform    CallPlatform
	evaluator   Evaluator
	transcripts *store.TranscriptStore
	reports     *store.ReportStore
	opts        Options

	logger    *slog.Logger
	listeners []ProgressListener

	// Injected for tests.
	sleep func(time.Duration)
	now   func() time.Time
}

// SequencerOption configures a Sequencer.
type SequencerOption func(*Sequencer)

// WithProgressListener registers a progress listener.
func WithProgressListener(l ProgressListener) SequencerOption {
	return func(s *Sequencer) { s.listeners = append(s.listeners, l) }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) SequencerOption {
	return func(s *Sequencer) { s.logger = l }
}

// withSleep overrides the sleep function, for tests.
func withSleep(fn func(time.Duration)) SequencerOption {
	return func(s *Sequencer) { s.sleep = fn }
}

// NewSequencer wires a sequencer. MaxWait is taken as given: a
// non-positive ceiling means every wait expires immediately. A nil
// evaluator disables the evaluation step.
func NewSequencer(cp CallPlatform, ev Evaluator, transcripts *store.TranscriptStore, reports *store.ReportStore, opts Options, seqOpts ...SequencerOption) *Sequencer {
	if opts.PollInterval == 0 {
		opts.PollInterval = DefaultPollInterval
	}

	s := &Sequencer{
		platform:    cp,
		evaluator:   ev,
		transcripts: transcripts,
		reports:     reports,
		opts:        opts,
		logger:      slog.Default(),
		sleep:       time.Sleep,
		now:         time.Now,
	}
	for _, opt := range seqOpts {
		opt(s)
	}
	return s
}

func (s *Sequencer) emit(ev ProgressEvent) {
	for _, l := range s.listeners {
		l(ev)
	}
}

// Run executes every item in order, pausing between calls. It stops
// early only on context cancellation; individual failures are recorded
// and the sequence continues.
func (s *Sequencer) Run(ctx context.Context, items []RunItem) (*Summary, error) {
	summary := &Summary{
		RunID: uuid.NewString(),
		Total: len(items),
	}

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		outcome := s.ExecuteItem(ctx, item, len(items))
		summary.Outcomes = append(summary.Outcomes, outcome)
		if outcome.Success {
			summary.Succeeded++
		} else {
			summary.Failed++
		}

		last := i == len(items)-1
		if !s.opts.DryRun && s.opts.Delay > 0 && !last {
			s.emit(ProgressEvent{Type: ProgressDelay, Item: item, Total: len(items),
				Message: fmt.Sprintf("waiting %s before next call", s.opts.Delay)})
			s.sleep(s.opts.Delay)
		}
	}

	return summary, nil
}

// ExecuteItem runs one item end to end. A transcript that arrived is
// never abandoned: once the wait succeeds, failures in the patch,
// reconcile, or evaluation steps are logged and the item still counts
// as succeeded.
func (s *Sequencer) ExecuteItem(ctx context.Context, item RunItem, total int) RunOutcome {
	outcome := RunOutcome{Item: item, DryRun: s.opts.DryRun}
	s.emit(ProgressEvent{Type: ProgressItemStarted, Item: item, Total: total})

	if s.opts.DryRun {
		outcome.Success = true
		s.emit(ProgressEvent{Type: ProgressItemCompleted, Item: item, Total: total, Outcome: &outcome})
		return outcome
	}

	call, err := s.platform.StartCall(ctx, platform.StartCallRequest{
		DestinationNumber: s.opts.Destination,
		SystemPrompt:      scenario.BuildPrompt(item.Scenario),
		FirstMessage:      item.Scenario.FirstMessage,
		WebhookBaseURL:    s.opts.WebhookBaseURL,
	})
	if err != nil {
		outcome.Failure = FailureStartCall
		outcome.Err = err
		s.logger.Error("failed to start call", "scenario", item.Scenario.ID, "error", err)
		s.emit(ProgressEvent{Type: ProgressItemCompleted, Item: item, Total: total, Outcome: &outcome})
		return outcome
	}
	if call.ID == "" {
		outcome.Failure = FailureNoCallID
		s.logger.Error("call response carried no id", "scenario", item.Scenario.ID)
		s.emit(ProgressEvent{Type: ProgressItemCompleted, Item: item, Total: total, Outcome: &outcome})
		return outcome
	}

	outcome.CallID = call.ID
	s.emit(ProgressEvent{Type: ProgressCallStarted, Item: item, Total: total, CallID: call.ID})

	path, ok := s.waitForTranscript(ctx, call.ID)
	if !ok {
		outcome.Failure = FailureTimeout
		s.logger.Warn("no transcript before deadline", "call_id", call.ID, "max_wait", s.opts.MaxWait)
		s.emit(ProgressEvent{Type: ProgressItemCompleted, Item: item, Total: total, Outcome: &outcome})
		return outcome
	}

	outcome.TranscriptPath = path
	s.emit(ProgressEvent{Type: ProgressTranscriptReceived, Item: item, Total: total, CallID: call.ID, Path: path})

	if err := s.transcripts.PatchScenario(call.ID, models.ScenarioMeta{
		ID:       item.Scenario.ID,
		Category: item.Scenario.Category,
		Name:     item.Scenario.Name,
		RunIndex: item.RunIndex,
	}); err != nil {
		s.logger.Warn("could not patch scenario metadata", "call_id", call.ID, "error", err)
	}

	s.reconcileRecording(ctx, item, total, call.ID)

	if reportPath := s.evaluate(ctx, call.ID); reportPath != "" {
		outcome.ReportPath = reportPath
		s.emit(ProgressEvent{Type: ProgressEvaluationSaved, Item: item, Total: total, CallID: call.ID, Path: reportPath})
	}

	outcome.Success = true
	s.emit(ProgressEvent{Type: ProgressItemCompleted, Item: item, Total: total, Outcome: &outcome})
	return outcome
}

// waitForTranscript polls for the call's transcript file. The deadline
// check runs before each store probe so a non-positive MaxWait times
// out without touching the store.
func (s *Sequencer) waitForTranscript(ctx context.Context, callID string) (string, bool) {
	deadline := s.now().Add(s.opts.MaxWait)
	for {
		if !s.now().Before(deadline) {
			return "", false
		}
		if s.transcripts.Exists(callID) {
			return s.transcripts.Path(callID), true
		}
		if ctx.Err() != nil {
			return "", false
		}
		s.sleep(s.opts.PollInterval)
	}
}

// evaluate loads the stored transcript (scenario patch included), runs
// the judge, and saves the report. Any failure is logged and swallowed.
func (s *Sequencer) evaluate(ctx context.Context, callID string) string {
	if s.evaluator == nil {
		return ""
	}

	tr, err := s.transcripts.Load(callID)
	if err != nil {
		s.logger.Warn("could not load transcript for evaluation", "call_id", callID, "error", err)
		return ""
	}
	rep, err := s.evaluator.Evaluate(ctx, tr)
	if err != nil {
		s.logger.Warn("evaluation failed", "call_id", callID, "error", err)
		return ""
	}
	if rep == nil {
		return ""
	}
	path, err := s.reports.Save(rep)
	if err != nil {
		s.logger.Warn("could not save report", "call_id", callID, "error", err)
		return ""
	}
	return path
}
