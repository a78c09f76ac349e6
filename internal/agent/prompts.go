package agent

// Fixed system utterances. The conversational surface never hard-fails, so
// every not-understood path maps to one of these prompts.
const (
	responseGreeting       = "Hello! What type of appointment do you need?"
	responseChooseCategory = "Please choose one of: general consultation, follow-up, physical exam, or specialist consultation."
	responseNoSlots        = "I couldn't find any open slots right now. Please check back a little later."
	responseChooseSlot     = "Please reply with one of the listed dates or times."
	responsePatientPrompt  = "Please provide your name, phone, email, and reason for the visit (one per line, e.g. Name: Jane Doe)."
	responseCancelled      = "Okay, I won't book it. Say yes whenever you're ready to confirm."
	responseCompleted      = "You're all set - your appointment is booked. Feel free to ask me anything else."
	responseNotUnderstood  = "Sorry, I didn't understand that. Could you rephrase?"
	responseNoInformation  = "I don't have specific information on that. Please contact our office directly."
	responseDegraded       = "Sorry, I'm having trouble right now. Please try again shortly."
)
