package scenario

const reschedulingVariant0Prompt = `# WHY YOU ARE CALLING
You have an existing appointment next Tuesday at 2:00 PM with Dr. Patel
and something came up at work. You need to move it to a different day.

# YOUR SITUATION
- The appointment is a follow-up for your knee
- You can no longer make Tuesday afternoon
- Any day later that week works, mornings preferred

# YOUR GOAL
Move the existing appointment to a new confirmed date and time.

# HOW TO HANDLE THIS CALL
Opening:
- Say something like "Hi, I need to reschedule an appointment."

During the call:
- Give the original appointment details when asked: "It's next Tuesday
  at 2 PM with Dr. Patel."
- If asked why: "Something came up at work, I can't make that afternoon."
- Prefer a morning slot later the same week.

Before ending:
- Repeat back the new appointment: "So that's now [day] at [time], right?"
- Confirm the old one is canceled.`

const reschedulingVariant1Prompt = `# WHY YOU ARE CALLING
You have an existing appointment next Tuesday at 2:00 PM and want to move
it. Partway through the call you will change your mind about which day
you want.

# HOW TO HANDLE THIS CALL
Opening:
- Say "Hi, I'd like to move my appointment to Wednesday."

Mid-conversation (IMPORTANT):
- After the agent starts looking at Wednesday, or offers a Wednesday slot,
  say: "Actually, you know what, Thursday would be better for me."
- Do this naturally, like a person who just checked their calendar.

Watch for:
- Does the agent actually switch to Thursday, or keep booking Wednesday?
- Does it confirm a specific time on the final day?

Before ending:
- Confirm the final day and time explicitly. If the agent confirms the
  wrong day, question it: "Wait, I said Thursday, not Wednesday."`

const reschedulingVariant2Prompt = `# WHY YOU ARE CALLING
You want to cancel an existing appointment next Tuesday at 2:00 PM.
You do not want to rebook right now.

# HOW TO HANDLE THIS CALL
Opening:
- Say "Hi, I need to cancel an appointment."

During the call:
- Give the appointment details when asked.
- If asked why: "I just can't make it, I'll call back to rebook later."
- If offered a reschedule instead, politely decline: "No thanks, I'd
  rather just cancel for now."

Before ending:
- Get a clear confirmation the appointment is canceled: "So that's
  canceled, I'm all set?"`

// Rescheduling returns the rescheduling category: patient calls to change
// or cancel an existing appointment.
func Rescheduling() (string, []Config) {
	return "rescheduling", []Config{
		{
			ID:       "rescheduling_different_day",
			Category: "rescheduling",
			Variant:  0,
			Name:     "Simple reschedule to different day",
			Goal:     "Successfully move existing appointment to a new confirmed date/time.",
			EvalHints: []string{
				"Did the agent confirm the original appointment?",
				"Did the agent ask reason for rescheduling?",
				"Was a new date/time confirmed?",
			},
			PromptBlock:  reschedulingVariant0Prompt,
			FirstMessage: "Hello.",
		},
		{
			ID:       "rescheduling_sudden_change",
			Category: "rescheduling",
			Variant:  1,
			Name:     "Sudden day change mid-conversation",
			Goal:     "Agent handles a mid-conversation day change gracefully and confirms final slot.",
			EvalHints: []string{
				"Did the agent catch the day change?",
				"Did it ask for reason or just accept?",
				"Was a specific time offered for the new day?",
			},
			PromptBlock:  reschedulingVariant1Prompt,
			FirstMessage: "Hello.",
		},
		{
			ID:       "rescheduling_cancel",
			Category: "rescheduling",
			Variant:  2,
			Name:     "Cancel appointment",
			Goal:     "Successfully cancel the appointment with clear confirmation.",
			EvalHints: []string{
				"Did the agent confirm which appointment to cancel?",
				"Was cancellation confirmed clearly?",
				"Was the process consistent (not erratic)?",
			},
			PromptBlock:  reschedulingVariant2Prompt,
			FirstMessage: "Hello.",
		},
	}
}
