// Package judge scores normalized transcripts with an LLM acting as a
// strict QA evaluator. The subject is the clinic agent that answered
// the call, never the synthetic caller.
package judge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"callbench/internal/models"
	"callbench/internal/openai"
	"callbench/internal/scenario"
)

// FallbackGoal is used when a transcript carries no resolvable scenario.
const FallbackGoal = "Evaluate the clinic bot's handling of this call."

// ChatCompleter is the LLM surface the evaluator needs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req *openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error)
}

// Evaluator runs one LLM evaluation per transcript.
type Evaluator struct {
	client   ChatCompleter
	registry *scenario.Registry
	model    string
	logger   *slog.Logger
}

// EvaluatorOption configures an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithModel overrides the judge model.
func WithModel(model string) EvaluatorOption {
	return func(e *Evaluator) { e.model = model }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) EvaluatorOption {
	return func(e *Evaluator) { e.logger = l }
}

// NewEvaluator returns an evaluator. A nil client is allowed and turns
// Evaluate into a logged no-op, so runs without an API key still
// collect transcripts.
func NewEvaluator(client ChatCompleter, registry *scenario.Registry, opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{
		client:   client,
		registry: registry,
		model:    Model,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate scores one transcript. Returns (nil, nil) when evaluation is
// disabled. The scenario goal and hints come from the registry via the
// transcript's scenario id; an unresolvable scenario falls back to a
// generic goal rather than failing the call.
func (e *Evaluator) Evaluate(ctx context.Context, tr *models.Transcript) (*models.Report, error) {
	if e.client == nil {
		e.logger.Info("evaluation disabled, skipping", "call_id", tr.CallID)
		return nil, nil
	}

	meta := resolveScenario(tr)
	goal := FallbackGoal
	var hints []string
	if e.registry != nil {
		if sc, ok := e.registry.ByID(meta.ID); ok {
			goal = sc.Goal
			hints = sc.EvalHints
		}
	}

	callID := tr.CallID
	if callID == "" {
		callID = "unknown"
	}

	prompt := buildPrompt(tr.Turns, callID, meta, goal, hints, DatetimeContextNow())

	resp, err := e.client.CreateChatCompletion(ctx, &openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature:    0.2,
		ResponseFormat: &openai.ResponseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, fmt.Errorf("judge request: %w", err)
	}

	content := resp.Content()
	if content == "" {
		return nil, errors.New("judge returned an empty response")
	}

	raw, err := ExtractJSON(content)
	if err != nil {
		return nil, fmt.Errorf("judge response: %w", err)
	}
	return NormalizeReport(raw, callID)
}

// resolveScenario pulls the scenario identity off a transcript, with
// "unknown" placeholders when the run metadata never got patched on.
func resolveScenario(tr *models.Transcript) models.ScenarioMeta {
	meta := models.ScenarioMeta{
		ID:       "unknown",
		Category: "unknown",
		Name:     "Unknown scenario",
	}
	if tr.Scenario == nil {
		return meta
	}
	if tr.Scenario.ID != "" {
		meta.ID = tr.Scenario.ID
	}
	if tr.Scenario.Category != "" {
		meta.Category = tr.Scenario.Category
	}
	if tr.Scenario.Name != "" {
		meta.Name = tr.Scenario.Name
	}
	return meta
}

// buildPrompt assembles the per-call user message: header, ground
// truth, numbered transcript, hints, static rubric, and the required
// output shape.
func buildPrompt(turns []models.Turn, callID string, meta models.ScenarioMeta, goal string, hints []string, datetimeContext string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<<CALL>>\ncall_id: %s\n", callID)
	fmt.Fprintf(&b, "scenario: %s | %s | %s\n", meta.ID, meta.Category, meta.Name)
	fmt.Fprintf(&b, "goal: %s\n\n", goal)

	b.WriteString("<<GROUND TRUTH — use this to verify accuracy of details the clinic bot states>>\n")
	b.WriteString("Patient profile:\n")
	b.WriteString(patientProfile)
	if datetimeContext != "" {
		b.WriteString("\n" + datetimeContext)
	}
	b.WriteString("\n\n<<TRANSCRIPT>>\n")

	for i, t := range turns {
		speaker := t.Speaker
		if speaker == "" {
			speaker = t.Role
		}
		if speaker == "" {
			speaker = "?"
		}
		fmt.Fprintf(&b, "Turn %d [%s]: %s\n", i+1, speaker, t.Text)
	}

	b.WriteString("\n<<EVAL HINTS>>\n")
	b.WriteString("For each hint below, return a verdict (yes / no / partial) with a one-line reason.\n")
	if len(hints) == 0 {
		b.WriteString("  (none)\n")
	} else {
		for i, h := range hints {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, h)
		}
	}

	b.WriteString("\n" + rubric + "\n\n")

	b.WriteString("<<OUTPUT — single JSON, no markdown>>\n")
	fmt.Fprintf(&b, `{
  "call_id": %q,
  "scenario": {"id": %q, "category": %q, "name": %q},
  "scores": {
`, callID, meta.ID, meta.Category, meta.Name)
	for i, key := range DimensionKeys {
		sep := ","
		if i == len(DimensionKeys)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "    %q: {\"score\": 0, \"reason\": \"\"}%s\n", key, sep)
	}
	b.WriteString(`  },
  "eval_hints": [
    {"hint": "", "verdict": "yes", "reason": ""}
  ],
  "issues": [
    {"type": "", "severity": "major", "description": "", "turn_number": null, "quote": null}
  ],
  "summary": ""
}`)

	return b.String()
}

var (
	fenceOpen  = regexp.MustCompile("^```(?:json)?\\s*")
	fenceClose = regexp.MustCompile("\\s*```$")
)

// ExtractJSON parses a JSON object out of model output, tolerating a
// markdown code fence around it.
func ExtractJSON(text string) (map[string]any, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = fenceOpen.ReplaceAllString(text, "")
		text = fenceClose.ReplaceAllString(text, "")
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil, fmt.Errorf("parsing judge JSON: %w", err)
	}
	return obj, nil
}

// NormalizeReport repairs common judge output defects before decoding:
// a missing call id, a malformed scenario block, absent dimensions
// (filled with zero scores), and bare numeric scores (wrapped with an
// empty reason). The result always carries all eight dimensions.
func NormalizeReport(raw map[string]any, callID string) (*models.Report, error) {
	if s, _ := raw["call_id"].(string); s == "" {
		raw["call_id"] = callID
	}

	if _, ok := raw["scenario"].(map[string]any); !ok {
		raw["scenario"] = map[string]any{"id": nil, "category": nil, "name": nil}
	}

	scores, ok := raw["scores"].(map[string]any)
	if !ok {
		scores = map[string]any{}
	}
	for _, key := range DimensionKeys {
		switch v := scores[key].(type) {
		case nil:
			scores[key] = map[string]any{"score": 0, "reason": "Missing"}
		case float64:
			scores[key] = map[string]any{"score": int(v), "reason": ""}
		case int:
			scores[key] = map[string]any{"score": v, "reason": ""}
		}
	}
	raw["scores"] = scores

	if _, ok := raw["eval_hints"]; !ok {
		raw["eval_hints"] = []any{}
	}
	if _, ok := raw["issues"]; !ok {
		raw["issues"] = []any{}
	}
	if _, ok := raw["summary"]; !ok {
		raw["summary"] = ""
	}

	var report models.Report
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &report,
	})
	if err != nil {
		return nil, fmt.Errorf("building report decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding report: %w", err)
	}
	if report.EvalHints == nil {
		report.EvalHints = []models.HintVerdict{}
	}
	if report.Issues == nil {
		report.Issues = []models.Issue{}
	}
	return &report, nil
}
