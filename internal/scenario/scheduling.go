package scenario

import (
	"fmt"
	"time"
)

// relativeDates computes today, the next "this Thursday" and the following
// "next Friday" as human-readable strings. They are injected into the
// variant 2 prompt so the patient knows which calendar days she means when
// she says those phrases; she still says the phrases, not the dates.
func relativeDates(now time.Time) (today, thisThursday, nextFriday string) {
	const layout = "Monday, January 02, 2006"

	weekday := int(now.Weekday()+6) % 7 // Monday=0 .. Sunday=6

	daysUntilThu := (3 - weekday + 7) % 7
	thu := now.AddDate(0, 0, daysUntilThu)

	daysUntilFri := (4 - weekday + 7) % 7
	fri := now.AddDate(0, 0, daysUntilFri+7)

	return now.Format(layout), thu.Format(layout), fri.Format(layout)
}

const schedulingVariant0Prompt = `# WHY YOU ARE CALLING
You want to schedule an orthopedic consultation for knee pain you have been
experiencing for the past 3 weeks.

# YOUR MEDICAL SITUATION
- Right knee pain that gets worse when climbing stairs
- No recent injury - it started gradually
- You have not seen a doctor for this yet
- You want to get it checked before it gets worse

# YOUR PREFERENCES
- You would like an appointment within the next 2 weeks
- Mornings work best for you (before noon)
- You are flexible if mornings are not available

# YOUR GOAL
Get a confirmed appointment with a specific date, time, and doctor name.
Do not hang up until you have all three, or it is clear they cannot help.

# HOW TO HANDLE THIS CALL
Opening:
- Say something like "Hi, I'd like to schedule an appointment for knee pain."

During the call:
- When asked about the pain, describe it naturally: "It's my right knee,
  been hurting about three weeks. Gets worse going up stairs."
- When asked about timing: "Mornings work better for me, ideally within
  the next couple of weeks."
- When asked about insurance: Give your Blue Cross Blue Shield PPO info.
- If they ask whether you have seen a doctor before for this: "No, this
  is the first time I'm getting it checked out."

Before ending:
- Repeat back the appointment details: "Okay so that's [day] at [time]
  with [doctor], right?"
- Ask: "Do I need to bring anything to the appointment?"
- Say goodbye naturally.`

const schedulingVariant1Prompt = `# WHY YOU ARE CALLING
You want to schedule an appointment with the RIGHT SPECIALIST for a
specific problem. The goal is to see whether the agent routes you to
the correct provider type based on what you say.

# YOUR MEDICAL SITUATION (CHOOSE ONE DURING THE CALL)
Option A - Knee / meniscus:
- You recently had an MRI that showed a meniscus tear in your knee
- You were told you need to see an orthopedic knee specialist

Option B - Spine:
- You were told you need to see a spine specialist for ongoing back pain
- You have not yet seen a spine doctor at this clinic

You do NOT say "I have knee pain" or "back pain" in a generic way.
You use the more specific language above to test routing.

# YOUR PREFERENCES
- You are flexible on exact day and time
- You care more about seeing the correct type of specialist than the
  very first available slot

# HOW TO HANDLE THIS CALL
Opening:
- Say something like: "Hi, I was told I need to see a specialist and
  I want to schedule that appointment."

If the agent proposes a generic doctor without mentioning specialty:
- Ask: "Is that a knee specialist / spine specialist?" (match what you
  said earlier.)
- If they say no, or are vague, gently push: "I was specifically told I
  need a [knee / spine] specialist - is this the right type of doctor?"

Before ending:
- Confirm you are seeing the correct type of specialist, not just any
  doctor: "So I'm seeing a [knee / spine] specialist on [day] at [time],
  right?"`

func schedulingVariant2Prompt(now time.Time) string {
	today, thisThu, nextFri := relativeDates(now)
	return fmt.Sprintf(`# CONTEXT
For your reference (do NOT read this aloud on the call):
- Today is %[1]s.
- When you say "this Thursday", you mean %[2]s in your local time.
- When you say "next Friday", you mean %[3]s.

You should still SAY "this Thursday" / "next Friday" on the call, not
the exact calendar dates above. The dates are here so you can double-check
whether the agent is booking you on the correct day.

# WHY YOU ARE CALLING
You want to schedule a general check-up. Nothing urgent, just been a while
since your last physical and you want to stay on top of things.

# YOUR PREFERENCES
- You want to come in "this Thursday" (use those exact words)
- If Thursday is not available, say "how about next Friday then?"
- Morning preferred but not a dealbreaker

# YOUR GOAL
Get a confirmed appointment on the correct day. Pay close attention to
whether the agent books you on the right day when you say "this Thursday"
or "next Friday."

# HOW TO HANDLE THIS CALL
Opening:
- Say: "Hi, I'd like to schedule a check-up."

During the call:
- When asked about timing, say: "Can I come in this Thursday?"
- If they offer a time on Thursday, confirm the exact date: "Just to make
  sure, that's this Thursday, right?" If they mention a date that does NOT
  match %[2]s, question it.
- If Thursday is not available, say: "Okay, how about next Friday then?"
  and again verify the exact date they give you. If it does not match
  %[3]s, question it.
- If the agent says a date that does not match the day you requested,
  push back: "Hmm, that doesn't sound right. I said this Thursday, not
  next Thursday," or similar.

Before ending:
- Confirm the full appointment: date (with the actual calendar date),
  time, and doctor.
- Say thanks and goodbye.`, today, thisThu, nextFri)
}

// Scheduling returns the scheduling category: patient calls to book a new
// appointment. Variant 2 computes its relative dates at load time.
func Scheduling() (string, []Config) {
	return "scheduling", []Config{
		{
			ID:       "scheduling_knee_pain",
			Category: "scheduling",
			Variant:  0,
			Name:     "Standard knee pain appointment",
			Goal:     "Secure a confirmed appointment with a specific date, time, and doctor name.",
			EvalHints: []string{
				"Did the agent collect patient name?",
				"Did the agent collect DOB or insurance?",
				"Did the agent ask about reason for visit?",
				"Did the agent confirm a specific date and time?",
				"Did the agent provide a doctor name?",
				"Did the agent ask if the patient has been seen before?",
			},
			PromptBlock:  schedulingVariant0Prompt,
			FirstMessage: "Hello.",
		},
		{
			ID:       "scheduling_specialist_routing",
			Category: "scheduling",
			Variant:  1,
			Name:     "Force specialist routing - meniscus / spine",
			Goal: "See whether the agent routes to the correct specialist based on the specific " +
				"condition (meniscus tear or spine specialist) instead of randomly assigning a generic doctor.",
			EvalHints: []string{
				"Did the agent pay attention to the specific condition (meniscus tear / spine specialist)?",
				"Did the agent pick an appropriate specialist type (orthopedic knee vs spine) instead of a random doctor?",
			},
			PromptBlock:  schedulingVariant1Prompt,
			FirstMessage: "Hello.",
		},
		{
			ID:       "scheduling_vague_day_reference",
			Category: "scheduling",
			Variant:  2,
			Name:     "Vague day reference - 'this Thursday' / 'next Friday'",
			Goal:     "Get a confirmed appointment on the correct day. Verify agent interprets relative day references accurately.",
			EvalHints: []string{
				"Did the agent correctly interpret 'this Thursday'?",
				"If patient said 'next Friday', did the agent get the right date?",
				"Did the agent confirm the calendar date (not just the day name)?",
				"If the agent got the day wrong, did the patient catch it?",
				"Was the final confirmed date consistent with what was discussed?",
			},
			PromptBlock:  schedulingVariant2Prompt(time.Now()),
			FirstMessage: "Hello.",
		},
	}
}
