package orchestration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"callbench/internal/scenario"
)

func reg(t *testing.T) *scenario.Registry {
	t.Helper()
	return scenario.DefaultRegistry()
}

func TestBuildRunListAll(t *testing.T) {
	items, err := BuildRunList(reg(t), ModeAll, "", -1, 2)
	require.NoError(t, err)
	require.Len(t, items, 15)

	seen := map[string]bool{}
	for i, it := range items {
		assert.Equal(t, i+1, it.Position)
		assert.Equal(t, 1, it.RunIndex)
		assert.False(t, seen[it.Scenario.ID], "scenario %s listed twice", it.Scenario.ID)
		seen[it.Scenario.ID] = true
	}
	assert.Equal(t, "scheduling", items[0].Scenario.Category)
	assert.Equal(t, "edge_cases", items[len(items)-1].Scenario.Category)
}

func TestBuildRunListSingleCategory(t *testing.T) {
	items, err := BuildRunList(reg(t), ModeSingleCategory, "refill", -1, 2)
	require.NoError(t, err)
	require.Len(t, items, 3)

	for i, it := range items {
		assert.Equal(t, "refill", it.Scenario.Category)
		assert.Equal(t, i, it.Scenario.Variant)
		assert.Equal(t, i+1, it.Position)
		assert.Equal(t, 1, it.RunIndex)
	}
}

func TestBuildRunListRepeatedSingle(t *testing.T) {
	items, err := BuildRunList(reg(t), ModeRepeatedSingle, "office_info", 0, 3)
	require.NoError(t, err)
	require.Len(t, items, 3)

	for i, it := range items {
		assert.Equal(t, "office_info_hours_location", it.Scenario.ID)
		assert.Equal(t, i+1, it.RunIndex)
		assert.Equal(t, i+1, it.Position)
	}
}

func TestBuildRunListErrors(t *testing.T) {
	r := reg(t)

	cases := []struct {
		name     string
		mode     string
		category string
		variant  int
		runs     int
		wantCfg  bool
		wantErr  error
	}{
		{name: "single-category without category", mode: ModeSingleCategory, variant: -1, runs: 2, wantCfg: true},
		{name: "repeated without category", mode: ModeRepeatedSingle, variant: 0, runs: 2, wantCfg: true},
		{name: "repeated without variant", mode: ModeRepeatedSingle, category: "refill", variant: -1, runs: 2, wantCfg: true},
		{name: "repeated with zero runs", mode: ModeRepeatedSingle, category: "refill", variant: 0, runs: 0, wantCfg: true},
		{name: "unknown mode", mode: "everything", variant: -1, runs: 2, wantCfg: true},
		{name: "unknown category", mode: ModeSingleCategory, category: "billing", variant: -1, runs: 2, wantErr: scenario.ErrUnknownCategory},
		{name: "variant out of range", mode: ModeRepeatedSingle, category: "refill", variant: 9, runs: 2, wantErr: scenario.ErrVariantOutOfRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildRunList(r, tc.mode, tc.category, tc.variant, tc.runs)
			require.Error(t, err)
			if tc.wantCfg {
				var cfgErr *ConfigError
				assert.ErrorAs(t, err, &cfgErr)
			}
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestRunItemLabel(t *testing.T) {
	it := RunItem{Scenario: scenario.Config{Category: "scheduling", Variant: 2}, RunIndex: 1}
	assert.Equal(t, "scheduling variant 2", it.Label(1))

	it.RunIndex = 3
	assert.Equal(t, "scheduling variant 2 run 3", it.Label(3))
}
