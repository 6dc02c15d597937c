package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"callbench/internal/config"
	"callbench/internal/judge"
	"callbench/internal/models"
	"callbench/internal/openai"
	"callbench/internal/scenario"
	"callbench/internal/store"
)

func newEvaluateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate <transcript-path-or-call-id>",
		Short: "Run the LLM judge on a stored transcript",
		Long: `Run the LLM judge on a stored transcript.

The argument is either a path to a transcript JSON file or a call id
resolved against the transcripts directory. The report is written to
the reports directory, keyed by call id.`,
		Args: cobra.ExactArgs(1),
		RunE: evaluateCommandE,
	}
	return cmd
}

func evaluateCommandE(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	env := config.LoadEnv()
	if env.OpenAIAPIKey == "" {
		return errors.New("OPENAI_API_KEY is not set (add it to .env)")
	}

	transcripts := store.NewTranscriptStore(cfg.Paths.Transcripts)
	reports := store.NewReportStore(cfg.Paths.Reports)

	var tr *models.Transcript
	arg := args[0]
	if strings.HasSuffix(arg, ".json") {
		if _, statErr := os.Stat(arg); statErr != nil {
			return fmt.Errorf("transcript file not found: %s", arg)
		}
		tr, err = transcripts.LoadPath(arg)
	} else {
		tr, err = transcripts.Load(arg)
	}
	if err != nil {
		return err
	}

	evaluator := judge.NewEvaluator(
		openai.NewClient(env.OpenAIAPIKey),
		scenario.DefaultRegistry(),
		judge.WithModel(cfg.Judge.Model),
	)

	rep, err := evaluator.Evaluate(cmd.Context(), tr)
	if err != nil {
		return err
	}
	if rep == nil {
		return errors.New("evaluation produced no report")
	}

	path, err := reports.Save(rep)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "evaluation saved: %s\n", path)
	return nil
}
