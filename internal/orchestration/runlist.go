// Package orchestration sequences test calls: it expands a mode into a
// run list, places each call, waits for the webhook-delivered
// transcript, backfills the recording URL, and dispatches evaluation.
package orchestration

import (
	"fmt"

	"callbench/internal/scenario"
)

// Run modes.
const (
	// ModeAll runs every (category, variant) once.
	ModeAll = "all"
	// ModeSingleCategory runs all variants of one category once.
	ModeSingleCategory = "single-category"
	// ModeRepeatedSingle runs one (category, variant) N times.
	ModeRepeatedSingle = "repeated-single"
)

// ConfigError marks a bad mode/flag combination, as opposed to a
// failure while executing calls.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string { return e.msg }

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

// RunItem is one planned call. RunIndex is 1-based and counts repeats
// of the same scenario; Position is the 1-based slot in the run list.
type RunItem struct {
	Scenario scenario.Config
	RunIndex int
	Position int
}

// Label renders the item for progress output, e.g.
// "scheduling variant 0 run 2".
func (it RunItem) Label(total int) string {
	label := fmt.Sprintf("%s variant %d", it.Scenario.Category, it.Scenario.Variant)
	if total > 1 && it.RunIndex > 1 {
		label += fmt.Sprintf(" run %d", it.RunIndex)
	}
	return label
}

// BuildRunList expands a mode into the ordered list of calls to place.
// variant passes -1 when unset; runs below 1 is rejected for the
// repeated mode.
func BuildRunList(reg *scenario.Registry, mode, category string, variant, runs int) ([]RunItem, error) {
	var items []RunItem
	add := func(sc scenario.Config, runIndex int) {
		items = append(items, RunItem{
			Scenario: sc,
			RunIndex: runIndex,
			Position: len(items) + 1,
		})
	}

	switch mode {
	case ModeAll:
		for _, sc := range reg.All() {
			add(sc, 1)
		}

	case ModeSingleCategory:
		if category == "" {
			return nil, configErrorf("mode %q requires a category", mode)
		}
		scenarios, err := reg.Scenarios(category)
		if err != nil {
			return nil, err
		}
		for _, sc := range scenarios {
			add(sc, 1)
		}

	case ModeRepeatedSingle:
		if category == "" {
			return nil, configErrorf("mode %q requires a category", mode)
		}
		if variant < 0 {
			return nil, configErrorf("mode %q requires a variant", mode)
		}
		if runs < 1 {
			return nil, configErrorf("runs must be at least 1, got %d", runs)
		}
		sc, err := reg.Get(category, variant)
		if err != nil {
			return nil, err
		}
		for i := 1; i <= runs; i++ {
			add(sc, i)
		}

	default:
		return nil, configErrorf("unknown mode %q (valid: %s, %s, %s)",
			mode, ModeAll, ModeSingleCategory, ModeRepeatedSingle)
	}

	return items, nil
}
