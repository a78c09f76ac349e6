package agent

import (
	"slices"
	"strings"
	"unicode"
)

// faqKeywords is the fixed set of tokens that mark a message as an
// out-of-band factual question regardless of dialogue phase.
var faqKeywords = []string{
	"hours",
	"location",
	"located",
	"address",
	"where are you",
	"insurance",
	"coverage",
	"parking",
	"park at",
	"bring",
	"cancellation policy",
	"how much",
	"cost",
	"open on",
	"mask",
	"covid",
}

// isFAQQuery reports whether the message is a factual question that should be
// delegated to the answer provider instead of the phase machine.
func isFAQQuery(message string) bool {
	m := strings.ToLower(message)
	for _, kw := range faqKeywords {
		if strings.Contains(m, kw) {
			return true
		}
	}
	return false
}

// appointmentKeywords maps message tokens to appointment categories.
// Checked in order; the first matching keyword wins.
var appointmentKeywords = []struct {
	keyword  string
	apptType AppointmentType
}{
	{"general", AppointmentGeneralConsultation},
	{"checkup", AppointmentGeneralConsultation},
	{"check-up", AppointmentGeneralConsultation},
	{"follow", AppointmentFollowUp},
	{"exam", AppointmentPhysicalExam},
	{"physical", AppointmentPhysicalExam},
	{"specialist", AppointmentSpecialistConsultation},
	{"specialty", AppointmentSpecialistConsultation},
}

// extractAppointmentType finds an appointment category in free text.
func extractAppointmentType(message string) (AppointmentType, bool) {
	m := strings.ToLower(message)
	for _, entry := range appointmentKeywords {
		if strings.Contains(m, entry.keyword) {
			return entry.apptType, true
		}
	}
	return "", false
}

// matchSlot returns the first suggested slot whose date appears in the raw
// message or whose time appears case-insensitively. List order breaks ties.
func matchSlot(message string, slots []Slot) (Slot, bool) {
	lower := strings.ToLower(message)
	for _, slot := range slots {
		if slot.Date != "" && strings.Contains(message, slot.Date) {
			return slot, true
		}
		if slot.Time != "" && strings.Contains(lower, strings.ToLower(slot.Time)) {
			return slot, true
		}
	}
	return Slot{}, false
}

// extractPatientInfo parses "key: value" lines into a PatientInfo record.
// Key matching is by case-insensitive substring; the last occurrence of a
// duplicate key wins. The record may be incomplete; callers check Complete().
func extractPatientInfo(message string) PatientInfo {
	var info PatientInfo
	for _, line := range strings.Split(message, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		switch {
		case strings.Contains(key, "name"):
			info.Name = value
		case strings.Contains(key, "phone"):
			info.Phone = value
		case strings.Contains(key, "email"):
			info.Email = value
		case strings.Contains(key, "reason"):
			info.Reason = value
		}
	}
	return info
}

// affirmativeTokens confirm a pending booking when one appears as a whole
// word. negationTokens veto the whole message: "no, that is incorrect" and
// "I won't confirm it" must never book.
var (
	affirmativeTokens = []string{"yes", "yeah", "yep", "confirm", "correct"}
	negationTokens    = []string{"no", "not", "never", "don't", "won't", "can't", "cannot", "cancel", "incorrect", "wrong"}
)

func isAffirmative(message string) bool {
	words := strings.FieldsFunc(strings.ToLower(message), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})

	affirmed := false
	for _, word := range words {
		word = strings.Trim(word, "'")
		if slices.Contains(negationTokens, word) {
			return false
		}
		if slices.Contains(affirmativeTokens, word) {
			affirmed = true
		}
	}
	return affirmed
}
