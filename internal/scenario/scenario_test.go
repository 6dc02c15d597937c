package scenario

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryCatalog(t *testing.T) {
	reg := DefaultRegistry()

	assert.Equal(t, []string{"scheduling", "rescheduling", "refill", "office_info", "edge_cases"}, reg.Categories())
	assert.Len(t, reg.All(), 15)

	for _, category := range reg.Categories() {
		scenarios, err := reg.Scenarios(category)
		require.NoError(t, err)
		require.Len(t, scenarios, 3, category)
		for i, sc := range scenarios {
			assert.Equal(t, category, sc.Category, sc.ID)
			assert.Equal(t, i, sc.Variant, sc.ID)
			assert.NotEmpty(t, sc.Name, sc.ID)
			assert.NotEmpty(t, sc.Goal, sc.ID)
			assert.NotEmpty(t, sc.EvalHints, sc.ID)
			assert.NotEmpty(t, sc.PromptBlock, sc.ID)
			assert.Equal(t, "Hello.", sc.FirstMessage, sc.ID)
		}
	}
}

func TestRegistryGet(t *testing.T) {
	reg := DefaultRegistry()

	sc, err := reg.Get("office_info", 1)
	require.NoError(t, err)
	assert.Equal(t, "office_info_insurance", sc.ID)

	_, err = reg.Get("billing", 0)
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = reg.Get("office_info", 3)
	assert.ErrorIs(t, err, ErrVariantOutOfRange)

	_, err = reg.Get("office_info", -1)
	assert.ErrorIs(t, err, ErrVariantOutOfRange)
}

func TestRegistryByID(t *testing.T) {
	reg := DefaultRegistry()

	sc, ok := reg.ByID("refill_dosage_question")
	require.True(t, ok)
	assert.Equal(t, "refill", sc.Category)
	assert.Equal(t, 1, sc.Variant)

	_, ok = reg.ByID("no_such_scenario")
	assert.False(t, ok)
}

func TestNewRegistryValidation(t *testing.T) {
	valid := func() (string, []Config) {
		return "cat", []Config{
			{ID: "cat_a", Category: "cat", Variant: 0, Name: "A"},
			{ID: "cat_b", Category: "cat", Variant: 1, Name: "B"},
		}
	}

	t.Run("valid", func(t *testing.T) {
		_, err := NewRegistry(valid)
		assert.NoError(t, err)
	})

	t.Run("duplicate category", func(t *testing.T) {
		_, err := NewRegistry(valid, valid)
		assert.ErrorContains(t, err, "registered twice")
	})

	t.Run("non-contiguous variants", func(t *testing.T) {
		_, err := NewRegistry(func() (string, []Config) {
			return "cat", []Config{
				{ID: "cat_a", Category: "cat", Variant: 0},
				{ID: "cat_b", Category: "cat", Variant: 2},
			}
		})
		assert.ErrorContains(t, err, "contiguous")
	})

	t.Run("category mismatch", func(t *testing.T) {
		_, err := NewRegistry(func() (string, []Config) {
			return "cat", []Config{{ID: "x", Category: "other", Variant: 0}}
		})
		assert.ErrorContains(t, err, "declares category")
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, err := NewRegistry(
			valid,
			func() (string, []Config) {
				return "cat2", []Config{{ID: "cat_a", Category: "cat2", Variant: 0}}
			},
		)
		assert.ErrorContains(t, err, "id")
	})
}

func TestBuildPrompt(t *testing.T) {
	reg := DefaultRegistry()
	sc, err := reg.Get("scheduling", 0)
	require.NoError(t, err)

	prompt := BuildPrompt(sc)
	assert.True(t, strings.HasPrefix(prompt, BasePrompt))
	assert.Contains(t, prompt, "# SCENARIO INSTRUCTIONS")
	assert.Contains(t, prompt, "knee pain")
	assert.Contains(t, prompt, "Sarah Martinez")
}
