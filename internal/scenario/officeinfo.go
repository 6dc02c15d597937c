package scenario

const officeInfoVariant0Prompt = `# WHY YOU ARE CALLING
You are planning a first visit and want practical information: office
hours, the full address, and how to get there / where to park.

# HOW TO HANDLE THIS CALL
Opening:
- Say "Hi, I had a couple of quick questions about your office."

During the call, ask in a natural order:
- "What are your hours?"
- "And what's the full address?" - you want street, city, state, and ZIP.
  If they give a partial address, ask for the rest: "And the ZIP code?"
- "Is there parking, or anything I should know about finding the entrance?"

# YOUR GOAL
Leave the call knowing the hours, the complete address, and parking or
directions. If the agent can't provide something, note whether it offers
an alternative (website, front desk).`

const officeInfoVariant1Prompt = `# WHY YOU ARE CALLING
You want to confirm the clinic takes your insurance before booking
anything, and get a sense of what a visit would cost.

# HOW TO HANDLE THIS CALL
Opening:
- Say "Hi, I wanted to check if you take my insurance."

During the call:
- Insurance: "I have Blue Cross Blue Shield, it's a PPO plan."
- Ask about cost: "Do you know what the copay would be for a first visit?"
- If they can't quote a number, ask who can: "Is there a billing person
  I could talk to?"

# YOUR GOAL
Get a clear yes/no on insurance acceptance and either cost information
or a concrete way to get it.`

const officeInfoVariant2Prompt = `# WHY YOU ARE CALLING
You want to know which doctors are available and what they specialize in,
because you may need both a knee specialist and a general physical.

# HOW TO HANDLE THIS CALL
Opening:
- Say "Hi, could you tell me a bit about the doctors at your clinic?"

During the call:
- Ask for names and specialties: "Who would I see for a knee problem?"
- Follow up: "And is there someone who does general physicals?"
- If answers sound vague or made up, ask a detail question: "Is
  [doctor name] taking new patients?"

# YOUR GOAL
Get specific doctor names with their specialties. Watch whether the
information stays consistent when you ask follow-ups.`

// OfficeInfo returns the office_info category: patient calls with
// information-only questions, no booking intent.
func OfficeInfo() (string, []Config) {
	return "office_info", []Config{
		{
			ID:       "office_info_hours_location",
			Category: "office_info",
			Variant:  0,
			Name:     "Office hours and location",
			Goal:     "Get accurate office hours, address, and directions.",
			EvalHints: []string{
				"Were office hours provided?",
				"Was address or directions given?",
				"Was information consistent and not hallucinated?",
			},
			PromptBlock:  officeInfoVariant0Prompt,
			FirstMessage: "Hello.",
		},
		{
			ID:       "office_info_insurance",
			Category: "office_info",
			Variant:  1,
			Name:     "Insurance and billing questions",
			Goal:     "Get clear answer about insurance acceptance and any cost info.",
			EvalHints: []string{
				"Did the agent confirm insurance acceptance?",
				"Was copay or billing info addressed?",
			},
			PromptBlock:  officeInfoVariant1Prompt,
			FirstMessage: "Hello.",
		},
		{
			ID:       "office_info_doctors",
			Category: "office_info",
			Variant:  2,
			Name:     "Available doctors and specialties",
			Goal:     "Get names and specialties of available doctors.",
			EvalHints: []string{
				"Were specific doctor names provided?",
				"Were specialties mentioned?",
				"Was the info consistent (not hallucinated)?",
			},
			PromptBlock:  officeInfoVariant2Prompt,
			FirstMessage: "Hello.",
		},
	}
}
