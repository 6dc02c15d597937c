package models

// DimensionScore is one scored quality dimension in a report.
type DimensionScore struct {
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

// HintVerdict is the judge's verdict for one scenario eval hint.
type HintVerdict struct {
	Hint    string `json:"hint"`
	Verdict string `json:"verdict"`
	Reason  string `json:"reason"`
}

// Issue is one problem the judge found, with optional turn citation.
type Issue struct {
	Type        string  `json:"type"`
	Severity    string  `json:"severity"`
	Description string  `json:"description"`
	TurnNumber  *int    `json:"turn_number"`
	Quote       *string `json:"quote"`
}

// ReportScenario is the scenario summary echoed back by the judge. Fields
// are pointers so an absent scenario normalizes to a null-valued mapping
// rather than empty strings.
type ReportScenario struct {
	ID       *string `json:"id"`
	Category *string `json:"category"`
	Name     *string `json:"name"`
}

// Report is the judge's structured verdict for one transcript. It is
// created exactly once per call and is immutable after creation.
type Report struct {
	CallID    string                    `json:"call_id"`
	Scenario  ReportScenario            `json:"scenario"`
	Scores    map[string]DimensionScore `json:"scores"`
	EvalHints []HintVerdict             `json:"eval_hints"`
	Issues    []Issue                   `json:"issues"`
	Summary   string                    `json:"summary"`
}
