package scenario

const edgeVariant0Prompt = `# WHY YOU ARE CALLING
You don't have a crisp reason. You ramble. This tests how the agent
handles off-topic, unstructured conversation.

# HOW TO HANDLE THIS CALL
Opening:
- Say "Hi, um, so I was at my neighbor's place and we got to talking
  about knees..."

During the call:
- Wander: mention the weather, your neighbor's surgery, a TV segment
  about joint health. Take your time getting to any actual request.
- Eventually land on something small: "Anyway, I guess I was wondering
  if I should come in at some point?"
- If the agent redirects you politely, go along with it.

# WHAT THIS TESTS
Whether the agent stays professional, gently steers toward something
actionable, and does not invent information to fill the space.`

const edgeVariant1Prompt = `# WHY YOU ARE CALLING
You want an appointment, but you will be confusing and contradictory
on purpose.

# HOW TO HANDLE THIS CALL
Opening:
- Say "Hi, I need an appointment for tomorrow... actually no, not
  tomorrow."

During the call, sprinkle contradictions naturally:
- Ask for a morning slot, then say "afternoons are really the only time
  I can do."
- Say it's for your knee, later say "well, it's more my back, honestly."
- Give your DOB correctly, but if read back, hesitate: "Wait, did I say
  March? Yes, March 15th, sorry."

A good agent should ask clarifying questions rather than silently accept
both versions. If it asks, pick one answer and stick with it.

# WHAT THIS TESTS
Whether the agent notices contradictions, asks for clarification, and
avoids looping or booking something you never settled on.`

const edgeVariant2Prompt = `# WHY YOU ARE CALLING
You need TWO appointments in one call: a knee follow-up for yourself and
a general check-up, also for yourself, ideally on different days.

# HOW TO HANDLE THIS CALL
Opening:
- Say "Hi, I actually need to book two appointments if that's possible."

During the call:
- First: "A follow-up for my knee, sometime next week."
- After the first is settled, the second: "And I'm also due for a
  physical - could I book that too, maybe the week after?"
- Keep the two straight yourself; if the agent mixes them up, point it
  out: "No, the physical was the second one."

# YOUR GOAL
Both appointments booked and clearly confirmed (two distinct dates/times),
or an honest explanation of why only one can be done per call. One
appointment silently dropped is a failure.`

// EdgeCases returns the edge_cases category: off-script behavior designed
// to stress comprehension rather than any one business flow.
func EdgeCases() (string, []Config) {
	return "edge_cases", []Config{
		{
			ID:       "edge_off_topic",
			Category: "edge_cases",
			Variant:  0,
			Name:     "Off-topic unstructured conversation",
			Goal:     "Agent handles off-topic input gracefully without breaking or hallucinating.",
			EvalHints: []string{
				"Did the agent stay professional?",
				"Did it redirect to the task or handle gracefully?",
				"Did it hallucinate information?",
			},
			PromptBlock:  edgeVariant0Prompt,
			FirstMessage: "Hello.",
		},
		{
			ID:       "edge_confusing_contradictory",
			Category: "edge_cases",
			Variant:  1,
			Name:     "Confusing and contradictory requests",
			Goal:     "Agent asks for clarification and doesn't blindly accept contradictions.",
			EvalHints: []string{
				"Did the agent notice contradictions?",
				"Did it ask clarifying questions?",
				"Did it loop or get stuck?",
			},
			PromptBlock:  edgeVariant1Prompt,
			FirstMessage: "Hello.",
		},
		{
			ID:       "edge_multiple_appointments",
			Category: "edge_cases",
			Variant:  2,
			Name:     "Multiple appointments in one call",
			Goal:     "Both appointments are booked correctly, or agent clearly explains limitations.",
			EvalHints: []string{
				"Were both appointments acknowledged?",
				"Were they booked at different times?",
				"Did the agent confirm both or explain why not?",
			},
			PromptBlock:  edgeVariant2Prompt,
			FirstMessage: "Hello.",
		},
	}
}
