// Package scenario defines the test-call scenario catalog and the registry
// used to resolve (category, variant) pairs to scenario configurations.
package scenario

import (
	"errors"
	"fmt"
)

// Config is the immutable description of a single test scenario (one call).
type Config struct {
	// Identity. Variant is the zero-based index within the category.
	ID       string
	Category string
	Variant  int
	Name     string

	// What the evaluator needs.
	Goal      string
	EvalHints []string

	// Prompt. PromptBlock is appended after the base persona; FirstMessage
	// is the synthetic patient's opening line.
	PromptBlock  string
	FirstMessage string
}

// Sentinel errors for registry lookups.
var (
	ErrUnknownCategory   = errors.New("unknown scenario category")
	ErrVariantOutOfRange = errors.New("scenario variant out of range")
)

// Loader supplies one category's scenarios. The registry is constructed
// once at process start from an explicit list of loaders, so there is no
// hidden global state or load-order dependence.
type Loader func() (category string, scenarios []Config)

// Registry resolves categories and (category, variant) pairs to scenario
// configurations. Construct it with NewRegistry and pass it by reference.
type Registry struct {
	order      []string
	byCategory map[string][]Config
	byID       map[string]Config
}

// NewRegistry builds a registry from the given loaders. It validates that
// every (category, variant) pair is unique and that variants within a
// category form a contiguous 0-based range.
func NewRegistry(loaders ...Loader) (*Registry, error) {
	r := &Registry{
		byCategory: make(map[string][]Config),
		byID:       make(map[string]Config),
	}

	for _, load := range loaders {
		category, scenarios := load()
		if _, dup := r.byCategory[category]; dup {
			return nil, fmt.Errorf("category %q registered twice", category)
		}
		for i, sc := range scenarios {
			if sc.Category != category {
				return nil, fmt.Errorf("scenario %q declares category %q but was registered under %q", sc.ID, sc.Category, category)
			}
			if sc.Variant != i {
				return nil, fmt.Errorf("category %q: variant %d at position %d breaks the contiguous 0-based range", category, sc.Variant, i)
			}
			if _, dup := r.byID[sc.ID]; dup {
				return nil, fmt.Errorf("scenario id %q registered twice", sc.ID)
			}
			r.byID[sc.ID] = sc
		}
		r.order = append(r.order, category)
		r.byCategory[category] = scenarios
	}

	return r, nil
}

// Categories returns all category names in registration order.
func (r *Registry) Categories() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Scenarios returns the scenarios for one category, in variant order.
func (r *Registry) Scenarios(category string) ([]Config, error) {
	scenarios, ok := r.byCategory[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownCategory, category, r.order)
	}
	out := make([]Config, len(scenarios))
	copy(out, scenarios)
	return out, nil
}

// All returns every registered scenario, grouped by category in
// registration order.
func (r *Registry) All() []Config {
	var out []Config
	for _, category := range r.order {
		out = append(out, r.byCategory[category]...)
	}
	return out
}

// Get resolves a (category, variant) pair to a single scenario.
func (r *Registry) Get(category string, variant int) (Config, error) {
	scenarios, ok := r.byCategory[category]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownCategory, category, r.order)
	}
	if variant < 0 || variant >= len(scenarios) {
		return Config{}, fmt.Errorf("%w: %d for %q (has %d variants: 0-%d)",
			ErrVariantOutOfRange, variant, category, len(scenarios), len(scenarios)-1)
	}
	return scenarios[variant], nil
}

// ByID resolves a scenario by its id.
func (r *Registry) ByID(id string) (Config, bool) {
	sc, ok := r.byID[id]
	return sc, ok
}

// BuildPrompt composes the full system prompt for a scenario: the stable
// base persona followed by the scenario-specific block. The base prompt
// ends with a "# SCENARIO INSTRUCTIONS" header that the block continues.
func BuildPrompt(sc Config) string {
	return BasePrompt + "\n\n" + sc.PromptBlock
}
