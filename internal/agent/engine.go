package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adeshkhole/Medical-Appointment-Scheduling-Agent/pkg/logging"
)

// AnswerProvider answers free-text factual questions.
// found is false when the knowledge base has no match; err is reserved for
// operational failures.
type AnswerProvider interface {
	Answer(ctx context.Context, query string) (answer string, found bool, err error)
}

// SlotProvider lists open appointment slots for the requested horizon.
type SlotProvider interface {
	ListSlots(ctx context.Context, daysAhead int, apptType AppointmentType) ([]Slot, error)
}

// BookingRecorder durably records a booking and returns its identifier.
type BookingRecorder interface {
	Book(ctx context.Context, patient PatientInfo, slot Slot) (bookingID string, err error)
}

// Reply is the engine's answer to one inbound message.
type Reply struct {
	SessionID string `json:"session_id"`
	Response  string `json:"response"`
	Phase     Phase  `json:"phase"`
	Action    string `json:"action"`
}

// Action metadata attached to replies.
const (
	ActionFAQAnswer        = "faq_answer"
	ActionPrompt           = "prompt"
	ActionSlotSuggestion   = "slot_suggestion"
	ActionBookingConfirmed = "booking_confirmed"
	ActionBookingDeclined  = "booking_declined"
	ActionProviderError    = "provider_error"
)

// ErrEmptySessionID is returned when a message arrives without a session identifier.
var ErrEmptySessionID = errors.New("agent: session id is required")

// ErrProviderUnavailable marks operational failures of a leaf provider.
// Replies carrying it still contain user-facing degraded text.
var ErrProviderUnavailable = errors.New("agent: provider unavailable")

// ProviderError wraps ErrProviderUnavailable with the failing provider's name
// so the boundary can label observability data.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("agent: %s provider unavailable: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrProviderUnavailable) hold for any ProviderError.
func (e *ProviderError) Is(target error) bool { return target == ErrProviderUnavailable }

// EngineConfig tunes the dialogue engine.
type EngineConfig struct {
	SlotDaysAhead     int
	MaxSuggestedSlots int
	ProviderTimeout   time.Duration
}

func (c EngineConfig) withDefaults() EngineConfig {
	if c.SlotDaysAhead <= 0 {
		c.SlotDaysAhead = 5
	}
	if c.MaxSuggestedSlots <= 0 {
		c.MaxSuggestedSlots = 5
	}
	if c.ProviderTimeout <= 0 {
		c.ProviderTimeout = 10 * time.Second
	}
	return c
}

// Engine drives the per-session dialogue state machine.
type Engine struct {
	sessions *SessionStore
	answers  AnswerProvider
	slots    SlotProvider
	recorder BookingRecorder
	cfg      EngineConfig
	logger   *logging.Logger
}

// errProviderNotConfigured reports a leaf provider that was left nil at
// construction. Calls against it fail like any other provider outage.
var errProviderNotConfigured = errors.New("agent: provider not configured")

// unavailableProvider stands in for nil leaf providers so the engine keeps
// its no-panic contract and degrades instead.
type unavailableProvider struct{}

func (unavailableProvider) Answer(context.Context, string) (string, bool, error) {
	return "", false, errProviderNotConfigured
}

func (unavailableProvider) ListSlots(context.Context, int, AppointmentType) ([]Slot, error) {
	return nil, errProviderNotConfigured
}

func (unavailableProvider) Book(context.Context, PatientInfo, Slot) (string, error) {
	return "", errProviderNotConfigured
}

// NewEngine creates a dialogue engine.
func NewEngine(sessions *SessionStore, answers AnswerProvider, slots SlotProvider, recorder BookingRecorder, cfg EngineConfig, logger *logging.Logger) *Engine {
	if sessions == nil {
		sessions = NewSessionStore()
	}
	if answers == nil {
		answers = unavailableProvider{}
	}
	if slots == nil {
		slots = unavailableProvider{}
	}
	if recorder == nil {
		recorder = unavailableProvider{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Engine{
		sessions: sessions,
		answers:  answers,
		slots:    slots,
		recorder: recorder,
		cfg:      cfg.withDefaults(),
		logger:   logger,
	}
}

// Sessions exposes the underlying session store.
func (e *Engine) Sessions() *SessionStore { return e.sessions }

// outcome is the result of one phase handler: advance to next (when set),
// stay in the current phase otherwise. Operational failures travel as errors
// beside it, never inside it.
type outcome struct {
	response string
	action   string
	next     Phase
}

// Handle processes one inbound message for a session.
// The returned error is nil for every conversational path, including
// not-understood input; it is non-nil only when a leaf provider failed, and
// the reply then carries degraded user-facing text. Session state is never
// mutated on a provider failure.
func (e *Engine) Handle(ctx context.Context, sessionID, message, userID string) (*Reply, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrEmptySessionID
	}
	if ctx == nil {
		ctx = context.Background()
	}

	sess := e.sessions.GetOrCreate(sessionID, userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	// Out-of-band factual questions win over phase dispatch in every phase
	// and never move the phase.
	if isFAQQuery(message) {
		return e.answerFAQ(ctx, sess, message)
	}

	var (
		out outcome
		err error
	)
	switch sess.Phase {
	case PhaseGreeting:
		out = e.handleGreeting()
	case PhaseUnderstanding:
		out, err = e.handleUnderstanding(ctx, sess, message)
	case PhaseSlotSelection:
		out = e.handleSlotSelection(sess, message)
	case PhasePatientInfo:
		out = e.handlePatientInfo(sess, message)
	case PhaseConfirm:
		out, err = e.handleConfirm(ctx, sess, message)
	case PhaseCompleted:
		out = outcome{response: responseCompleted, action: ActionPrompt}
	default:
		e.logger.Warn("unknown dialogue phase", "session_id", sess.SessionID, "phase", sess.Phase)
		out = outcome{response: responseNotUnderstood, action: ActionPrompt}
	}

	if err != nil {
		e.logger.Error("provider call failed",
			"session_id", sess.SessionID,
			"phase", sess.Phase,
			"error", err,
		)
		return &Reply{
			SessionID: sess.SessionID,
			Response:  out.response,
			Phase:     sess.Phase,
			Action:    ActionProviderError,
		}, err
	}

	if out.next != "" {
		sess.Phase = out.next
	}
	sess.UpdatedAt = time.Now().UTC()

	return &Reply{
		SessionID: sess.SessionID,
		Response:  out.response,
		Phase:     sess.Phase,
		Action:    out.action,
	}, nil
}

// answerFAQ delegates to the answer provider without touching the phase.
func (e *Engine) answerFAQ(ctx context.Context, sess *Session, message string) (*Reply, error) {
	callCtx, cancel := context.WithTimeout(ctx, e.cfg.ProviderTimeout)
	defer cancel()

	answer, found, err := e.answers.Answer(callCtx, message)
	if err != nil {
		perr := &ProviderError{Provider: "answer", Err: err}
		e.logger.Error("answer provider failed", "session_id", sess.SessionID, "error", err)
		return &Reply{
			SessionID: sess.SessionID,
			Response:  responseDegraded,
			Phase:     sess.Phase,
			Action:    ActionProviderError,
		}, perr
	}
	if !found {
		answer = responseNoInformation
	}
	return &Reply{
		SessionID: sess.SessionID,
		Response:  answer,
		Phase:     sess.Phase,
		Action:    ActionFAQAnswer,
	}, nil
}

// handleGreeting always advances, whatever the message said.
func (e *Engine) handleGreeting() outcome {
	return outcome{
		response: responseGreeting,
		action:   ActionPrompt,
		next:     PhaseUnderstanding,
	}
}

func (e *Engine) handleUnderstanding(ctx context.Context, sess *Session, message string) (outcome, error) {
	apptType, ok := extractAppointmentType(message)
	if !ok {
		return outcome{response: responseChooseCategory, action: ActionPrompt}, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, e.cfg.ProviderTimeout)
	defer cancel()

	slots, err := e.slots.ListSlots(callCtx, e.cfg.SlotDaysAhead, apptType)
	if err != nil {
		return outcome{response: responseDegraded}, &ProviderError{Provider: "availability", Err: err}
	}
	if len(slots) > e.cfg.MaxSuggestedSlots {
		slots = slots[:e.cfg.MaxSuggestedSlots]
	}
	if len(slots) == 0 {
		// Nothing bookable in the horizon; stay and let the user retry later.
		return outcome{response: responseNoSlots, action: ActionPrompt}, nil
	}

	sess.AppointmentType = apptType
	sess.SuggestedSlots = slots

	return outcome{
		response: "Here are available slots:\n" + formatSlotList(slots),
		action:   ActionSlotSuggestion,
		next:     PhaseSlotSelection,
	}, nil
}

func (e *Engine) handleSlotSelection(sess *Session, message string) outcome {
	slot, ok := matchSlot(message, sess.SuggestedSlots)
	if !ok {
		return outcome{response: responseChooseSlot, action: ActionPrompt}
	}

	sess.SelectedSlot = &slot
	return outcome{
		response: fmt.Sprintf("Great, %s it is. %s", FormatSlot(slot), responsePatientPrompt),
		action:   ActionPrompt,
		next:     PhasePatientInfo,
	}
}

func (e *Engine) handlePatientInfo(sess *Session, message string) outcome {
	info := extractPatientInfo(message)
	if !info.Complete() {
		return outcome{
			response: "I still need: " + strings.Join(info.MissingFields(), ", ") + ". " + responsePatientPrompt,
			action:   ActionPrompt,
		}
	}

	sess.Patient = &info
	slotText := ""
	if sess.SelectedSlot != nil {
		slotText = " for " + FormatSlot(*sess.SelectedSlot)
	}
	return outcome{
		response: fmt.Sprintf("Thanks, %s. Confirm booking%s? (yes/no)", info.Name, slotText),
		action:   ActionPrompt,
		next:     PhaseConfirm,
	}
}

func (e *Engine) handleConfirm(ctx context.Context, sess *Session, message string) (outcome, error) {
	if !isAffirmative(message) {
		return outcome{response: responseCancelled, action: ActionBookingDeclined}, nil
	}
	if sess.Patient == nil || sess.SelectedSlot == nil {
		// Should be unreachable; confirm is only entered with both set.
		return outcome{response: responseNotUnderstood, action: ActionPrompt}, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, e.cfg.ProviderTimeout)
	defer cancel()

	bookingID, err := e.recorder.Book(callCtx, *sess.Patient, *sess.SelectedSlot)
	if err != nil {
		return outcome{response: responseDegraded}, &ProviderError{Provider: "booking", Err: err}
	}

	sess.BookingConfirmed = true
	sess.BookingID = bookingID
	e.logger.Info("booking confirmed",
		"session_id", sess.SessionID,
		"booking_id", bookingID,
		"appointment_type", sess.AppointmentType,
	)
	return outcome{
		response: fmt.Sprintf("Booked! Your confirmation ID is %s.", bookingID),
		action:   ActionBookingConfirmed,
		next:     PhaseCompleted,
	}, nil
}

// formatSlotList renders slots as the numbered list shown to the user.
func formatSlotList(slots []Slot) string {
	var b strings.Builder
	for i, slot := range slots {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s %s", i+1, slot.Date, slot.Time)
	}
	return b.String()
}

// FormatSlot renders a single slot for confirmations and summaries.
func FormatSlot(slot Slot) string {
	return fmt.Sprintf("%s at %s (%d minutes)", slot.Date, slot.Time, slot.Duration)
}
