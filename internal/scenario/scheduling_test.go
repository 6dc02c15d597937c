package scenario

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelativeDates(t *testing.T) {
	cases := []struct {
		name     string
		now      time.Time
		thursday string
		friday   string
	}{
		{
			// Monday: Thursday is 3 days out, "next Friday" skips this week's.
			name:     "monday",
			now:      time.Date(2026, 2, 16, 10, 0, 0, 0, time.UTC),
			thursday: "Thursday, February 19, 2026",
			friday:   "Friday, February 27, 2026",
		},
		{
			// On a Thursday, "this Thursday" is today.
			name:     "thursday",
			now:      time.Date(2026, 2, 19, 10, 0, 0, 0, time.UTC),
			thursday: "Thursday, February 19, 2026",
			friday:   "Friday, February 27, 2026",
		},
		{
			// Saturday: Thursday rolls into next week.
			name:     "saturday",
			now:      time.Date(2026, 2, 21, 10, 0, 0, 0, time.UTC),
			thursday: "Thursday, February 26, 2026",
			friday:   "Friday, March 06, 2026",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			today, thu, fri := relativeDates(tc.now)
			assert.Equal(t, tc.now.Format("Monday, January 02, 2006"), today)
			assert.Equal(t, tc.thursday, thu)
			assert.Equal(t, tc.friday, fri)
		})
	}
}

func TestSchedulingVariant2PromptCarriesDates(t *testing.T) {
	now := time.Date(2026, 2, 16, 10, 0, 0, 0, time.UTC)
	prompt := schedulingVariant2Prompt(now)

	assert.Contains(t, prompt, "Today is Monday, February 16, 2026.")
	assert.Contains(t, prompt, "Thursday, February 19, 2026")
	assert.Contains(t, prompt, "Friday, February 27, 2026")
	assert.Contains(t, prompt, `"this Thursday"`)
}
