package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"callbench/internal/config"
	"callbench/internal/judge"
	"callbench/internal/openai"
	"callbench/internal/orchestration"
	"callbench/internal/platform"
	"callbench/internal/scenario"
	"callbench/internal/store"
)

var (
	runMode        string
	runCategory    string
	runVariant     int
	runRuns        int
	runDryRun      bool
	runDelaySec    float64
	runMaxWaitMin  float64
	runPollSec     float64
	runDestination string
	runWebhookURL  string
)

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run scenario test calls sequentially",
		Long: `Run scenario test calls sequentially.

Modes:
  all              Run every (category, variant) once.
  single-category  Run all variants of one category (requires --category).
  repeated-single  Run one (category, variant) N times (requires --category and --variant).

After each call the harness waits for the webhook-delivered transcript
(up to --max-wait minutes), backfills the recording URL, and runs the
LLM evaluation when OPENAI_API_KEY is set.`,
		Args: cobra.NoArgs,
		RunE: runCommandE,
	}

	cmd.Flags().StringVar(&runMode, "mode", orchestration.ModeAll, "Run mode: all, single-category, repeated-single")
	cmd.Flags().StringVar(&runCategory, "category", "", "Scenario category (e.g. scheduling, office_info)")
	cmd.Flags().IntVar(&runVariant, "variant", -1, "Variant index within the category (e.g. 0, 1, 2)")
	cmd.Flags().IntVar(&runRuns, "runs", config.DefaultRuns, "Number of runs for mode repeated-single")
	cmd.Flags().BoolVar(&runDryRun, "dry-run", false, "Print the run list and skip actual calls")
	cmd.Flags().Float64Var(&runDelaySec, "delay", config.DefaultDelaySec, "Seconds to wait between calls (0 to disable)")
	cmd.Flags().Float64Var(&runMaxWaitMin, "max-wait", config.DefaultMaxWaitMinutes, "Max minutes to wait for a transcript per call")
	cmd.Flags().Float64Var(&runPollSec, "poll-interval", config.DefaultPollIntervalSec, "Poll interval in seconds while waiting for a transcript")
	cmd.Flags().StringVar(&runDestination, "destination", "", "E.164 number to call (default: built-in test line)")
	cmd.Flags().StringVar(&runWebhookURL, "webhook-url", "", "Public base URL of the webhook server (default: WEBHOOK_BASE_URL)")

	return cmd
}

func runCommandE(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	env := config.LoadEnv()

	// Flags override .callbench.yaml, which overrides defaults.
	maxWait := cfg.MaxWait()
	if cmd.Flags().Changed("max-wait") {
		maxWait = time.Duration(runMaxWaitMin * float64(time.Minute))
	}
	pollInterval := cfg.PollInterval()
	if cmd.Flags().Changed("poll-interval") {
		pollInterval = time.Duration(runPollSec * float64(time.Second))
	}
	delay := cfg.Delay()
	if cmd.Flags().Changed("delay") {
		delay = time.Duration(runDelaySec * float64(time.Second))
	}
	runs := cfg.Run.Runs
	if cmd.Flags().Changed("runs") {
		runs = runRuns
	}
	destination := cfg.Run.Destination
	if runDestination != "" {
		destination = runDestination
	}
	webhookURL := env.WebhookBaseURL
	if runWebhookURL != "" {
		webhookURL = runWebhookURL
	}

	registry := scenario.DefaultRegistry()
	items, err := orchestration.BuildRunList(registry, runMode, runCategory, runVariant, runs)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(out, "No runs to execute.")
		return nil
	}

	var callPlatform orchestration.CallPlatform
	if !runDryRun {
		if err := env.RequireVapi(); err != nil {
			return err
		}
		callPlatform = platform.NewClient(env.VapiAPIKey, env.VapiPhoneNumberID)
	}

	var completer judge.ChatCompleter
	if env.OpenAIAPIKey != "" {
		completer = openai.NewClient(env.OpenAIAPIKey)
	}
	evaluator := judge.NewEvaluator(completer, registry, judge.WithModel(cfg.Judge.Model))

	transcripts := store.NewTranscriptStore(cfg.Paths.Transcripts)
	reports := store.NewReportStore(cfg.Paths.Reports)

	seq := orchestration.NewSequencer(callPlatform, evaluator, transcripts, reports,
		orchestration.Options{
			MaxWait:        maxWait,
			PollInterval:   pollInterval,
			Delay:          delay,
			DryRun:         runDryRun,
			Destination:    destination,
			WebhookBaseURL: webhookURL,
		},
		orchestration.WithProgressListener(progressPrinter(out, maxWait)),
	)

	fmt.Fprintf(out, "%d run(s), mode=%s\n", len(items), runMode)
	if runDryRun {
		fmt.Fprintln(out, "DRY RUN - no calls will be made")
	}
	fmt.Fprintln(out)

	summary, err := seq.Run(cmd.Context(), items)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Summary:")
	fmt.Fprintf(out, "  Started: %d\n", summary.Total)
	fmt.Fprintf(out, "  Succeeded: %d\n", summary.Succeeded)
	fmt.Fprintf(out, "  Failed/timeout: %d\n", summary.Failed)
	fmt.Fprintf(out, "  Transcripts: %s\n", cfg.Paths.Transcripts)

	if summary.Failed > 0 {
		return &RunFailureError{Message: fmt.Sprintf("%d of %d run(s) failed", summary.Failed, summary.Total)}
	}
	return nil
}

// progressPrinter renders sequencer events in the terminal.
func progressPrinter(out io.Writer, maxWait time.Duration) orchestration.ProgressListener {
	return func(ev orchestration.ProgressEvent) {
		switch ev.Type {
		case orchestration.ProgressItemStarted:
			fmt.Fprintf(out, "[%d/%d] %s - %s\n", ev.Item.Position, ev.Total, ev.Item.Label(ev.Total), ev.Item.Scenario.Name)
		case orchestration.ProgressCallStarted:
			fmt.Fprintf(out, "  call_id=%s, waiting up to %.0f min for transcript...\n", ev.CallID, maxWait.Minutes())
		case orchestration.ProgressTranscriptReceived:
			fmt.Fprintf(out, "  transcript saved: %s\n", ev.Path)
		case orchestration.ProgressRecordingBackfilled:
			fmt.Fprintln(out, "  recording_url set from API")
		case orchestration.ProgressEvaluationSaved:
			fmt.Fprintf(out, "  evaluation saved: %s\n", ev.Path)
		case orchestration.ProgressItemCompleted:
			if ev.Outcome == nil || ev.Outcome.Success {
				if ev.Outcome != nil && ev.Outcome.DryRun {
					fmt.Fprintln(out, "  (dry-run, skipping)")
				}
				return
			}
			switch ev.Outcome.Failure {
			case orchestration.FailureStartCall:
				fmt.Fprintf(out, "  FAILED to start call: %v\n", ev.Outcome.Err)
			case orchestration.FailureNoCallID:
				fmt.Fprintln(out, "  FAILED: no call_id in response")
			case orchestration.FailureTimeout:
				fmt.Fprintf(out, "  TIMEOUT - no transcript after %.0f min\n", maxWait.Minutes())
			}
		case orchestration.ProgressDelay:
			fmt.Fprintf(out, "  %s...\n", ev.Message)
		}
	}
}
