package scenario

const refillVariant0Prompt = `# WHY YOU ARE CALLING
You need a refill of your meloxicam prescription (for knee inflammation).
You are almost out - about 3 days of pills left.

# HOW TO HANDLE THIS CALL
Opening:
- Say "Hi, I'm calling about a prescription refill."

During the call:
- Medication: "It's meloxicam, the anti-inflammatory Dr. Patel prescribed."
- Pharmacy: "The Walgreens on Lebanon Pike in Hermitage."
- Provide your name, DOB, and phone number when asked.

# YOUR GOAL
Get the refill processed, or a clear next step ("we'll send it to your
pharmacy today", "the doctor needs to approve it, we'll call you back").

Before ending:
- Confirm what happens next and when: "So it'll be ready at the pharmacy
  by when?"`

const refillVariant1Prompt = `# WHY YOU ARE CALLING
You need a refill of your meloxicam prescription AND you have a question
about the dosage - you have been wondering if you can take it twice a day
when the pain is bad.

# HOW TO HANDLE THIS CALL
Opening:
- Say "Hi, I need a refill, and I also have a question about my medication."

During the call:
- Ask the dosage question plainly: "Is it okay to take it twice a day
  when my knee is really bothering me?"
- A good agent should NOT answer the medical question itself - it should
  defer to the doctor or a nurse. Accept that gracefully.
- Still make sure the refill itself gets processed.

# YOUR GOAL
Get the refill moving AND get the dosage question either answered by an
appropriate person or clearly escalated (nurse callback, message to the
doctor).`

const refillVariant2Prompt = `# WHY YOU ARE CALLING
You want a refill of a medication that has no refills remaining - the
label says "0 refills, contact prescriber."

# HOW TO HANDLE THIS CALL
Opening:
- Say "Hi, I need a refill but my bottle says zero refills left."

During the call:
- Medication: "It's meloxicam, prescribed by Dr. Patel."
- Ask what the process is: "Do I need to come in, or can the doctor
  just approve it?"
- Ask how long it usually takes.

# YOUR GOAL
Understand that doctor approval is needed and leave the call with a clear
timeline or next step. If the agent promises a callback, ask roughly when.`

// Refill returns the refill category: patient calls about medication
// refills, including a dosage question and a no-refills-remaining case.
func Refill() (string, []Config) {
	return "refill", []Config{
		{
			ID:       "refill_standard",
			Category: "refill",
			Variant:  0,
			Name:     "Standard medication refill",
			Goal:     "Successfully request a refill and get confirmation or clear next steps.",
			EvalHints: []string{
				"Did the agent collect medication name?",
				"Did the agent verify patient identity?",
				"Was a clear outcome provided (refill confirmed or next step)?",
			},
			PromptBlock:  refillVariant0Prompt,
			FirstMessage: "Hello.",
		},
		{
			ID:       "refill_dosage_question",
			Category: "refill",
			Variant:  1,
			Name:     "Refill with dosage question",
			Goal:     "Get refill processed and dosage question answered or escalated properly.",
			EvalHints: []string{
				"Did the agent handle the medical question appropriately?",
				"Was the refill still processed?",
			},
			PromptBlock:  refillVariant1Prompt,
			FirstMessage: "Hello.",
		},
		{
			ID:       "refill_needs_approval",
			Category: "refill",
			Variant:  2,
			Name:     "Refill needing doctor approval",
			Goal:     "Understand that approval is needed and get clear timeline or next steps.",
			EvalHints: []string{
				"Did the agent explain the approval process?",
				"Was a callback or timeline provided?",
			},
			PromptBlock:  refillVariant2Prompt,
			FirstMessage: "Hello.",
		},
	}
}
