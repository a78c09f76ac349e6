package agent

import (
	"sync"
	"time"
)

// AppointmentType is one of the fixed appointment categories patients can book.
type AppointmentType string

const (
	AppointmentGeneralConsultation    AppointmentType = "general_consultation"
	AppointmentFollowUp               AppointmentType = "follow_up"
	AppointmentPhysicalExam           AppointmentType = "physical_exam"
	AppointmentSpecialistConsultation AppointmentType = "specialist_consultation"
)

// AppointmentDurations maps each appointment type to its length in minutes.
var AppointmentDurations = map[AppointmentType]int{
	AppointmentGeneralConsultation:    30,
	AppointmentFollowUp:               15,
	AppointmentPhysicalExam:           45,
	AppointmentSpecialistConsultation: 60,
}

// DurationFor returns the appointment length in minutes, defaulting to 30
// for unknown types.
func DurationFor(t AppointmentType) int {
	if d, ok := AppointmentDurations[t]; ok {
		return d
	}
	return 30
}

// Slot is a bookable appointment time offering.
// Matching against user input is by date/time text, not by ID.
type Slot struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Duration int    `json:"duration"`
}

// PatientInfo holds the contact details collected during intake.
// All four fields must be non-empty for the record to be usable.
type PatientInfo struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

// Complete reports whether every required field is present.
func (p PatientInfo) Complete() bool {
	return p.Name != "" && p.Phone != "" && p.Email != "" && p.Reason != ""
}

// MissingFields lists the required fields that are still empty, in prompt order.
func (p PatientInfo) MissingFields() []string {
	var missing []string
	if p.Name == "" {
		missing = append(missing, "name")
	}
	if p.Phone == "" {
		missing = append(missing, "phone")
	}
	if p.Email == "" {
		missing = append(missing, "email")
	}
	if p.Reason == "" {
		missing = append(missing, "reason")
	}
	return missing
}

// Session is the conversation state for one session identifier.
// The embedded mutex serializes message handling for the session; the engine
// holds it for the full span of a message, including provider calls.
type Session struct {
	mu sync.Mutex

	SessionID        string
	UserID           string
	Phase            Phase
	AppointmentType  AppointmentType
	SuggestedSlots   []Slot
	SelectedSlot     *Slot
	Patient          *PatientInfo
	BookingConfirmed bool
	BookingID        string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Snapshot returns a copy of the session state taken under the session lock.
// Callers outside an in-flight message use it to read state safely.
type Snapshot struct {
	SessionID        string
	UserID           string
	Phase            Phase
	AppointmentType  AppointmentType
	SuggestedSlots   []Slot
	SelectedSlot     *Slot
	Patient          *PatientInfo
	BookingConfirmed bool
	BookingID        string
}

// Snapshot copies the current state under the session lock.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		SessionID:        s.SessionID,
		UserID:           s.UserID,
		Phase:            s.Phase,
		AppointmentType:  s.AppointmentType,
		BookingConfirmed: s.BookingConfirmed,
		BookingID:        s.BookingID,
	}
	snap.SuggestedSlots = append(snap.SuggestedSlots, s.SuggestedSlots...)
	if s.SelectedSlot != nil {
		slot := *s.SelectedSlot
		snap.SelectedSlot = &slot
	}
	if s.Patient != nil {
		patient := *s.Patient
		snap.Patient = &patient
	}
	return snap
}
