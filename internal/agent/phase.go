package agent

// Phase identifies the current stage of the scripted dialogue.
// Phases only move forward; a session never returns to an earlier phase.
type Phase string

const (
	PhaseGreeting      Phase = "greeting"
	PhaseUnderstanding Phase = "understanding"
	PhaseSlotSelection Phase = "slot_selection"
	PhasePatientInfo   Phase = "patient_info"
	PhaseConfirm       Phase = "confirm"
	PhaseCompleted     Phase = "completed"
)

var phaseRank = map[Phase]int{
	PhaseGreeting:      0,
	PhaseUnderstanding: 1,
	PhaseSlotSelection: 2,
	PhasePatientInfo:   3,
	PhaseConfirm:       4,
	PhaseCompleted:     5,
}

// Rank returns the position of the phase in the forward order, or -1 for
// unknown values.
func (p Phase) Rank() int {
	rank, ok := phaseRank[p]
	if !ok {
		return -1
	}
	return rank
}

// Valid reports whether the phase is one of the defined dialogue phases.
func (p Phase) Valid() bool {
	_, ok := phaseRank[p]
	return ok
}
