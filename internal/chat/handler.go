// Package chat is the HTTP surface of the dialogue engine.
package chat

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/adeshkhole/Medical-Appointment-Scheduling-Agent/internal/agent"
	"github.com/adeshkhole/Medical-Appointment-Scheduling-Agent/internal/observability/metrics"
	"github.com/adeshkhole/Medical-Appointment-Scheduling-Agent/internal/transcript"
	"github.com/adeshkhole/Medical-Appointment-Scheduling-Agent/pkg/logging"
)

// Handler wires HTTP requests to the dialogue engine.
type Handler struct {
	engine     *agent.Engine
	transcript *transcript.Store
	metrics    *metrics.ConversationMetrics
	logger     *logging.Logger
}

// NewHandler creates a chat handler. transcript and metrics may be nil.
func NewHandler(engine *agent.Engine, ts *transcript.Store, m *metrics.ConversationMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		engine:     engine,
		transcript: ts,
		metrics:    m,
		logger:     logger,
	}
}

// ChatRequest is the inbound message contract.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id,omitempty"`
}

// ChatResponse echoes the engine's reply plus phase/action metadata.
type ChatResponse struct {
	Response  string      `json:"response"`
	SessionID string      `json:"session_id"`
	Phase     agent.Phase `json:"phase"`
	Action    string      `json:"action"`
}

// HandleChat handles POST /chat.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode chat request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.SessionID) == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}

	reply, err := h.engine.Handle(r.Context(), req.SessionID, req.Message, req.UserID)
	if err != nil {
		if errors.Is(err, agent.ErrEmptySessionID) {
			http.Error(w, "session_id is required", http.StatusBadRequest)
			return
		}
		// Provider failures still produce a degraded conversational reply;
		// surface them in logs and metrics, not as a hard HTTP failure.
		var perr *agent.ProviderError
		if errors.As(err, &perr) {
			h.metrics.ObserveProviderFailure(perr.Provider)
		}
		h.logger.Error("chat message failed",
			"session_id", req.SessionID,
			"error", err,
		)
	}
	if reply == nil {
		http.Error(w, "Failed to process message", http.StatusInternalServerError)
		return
	}

	h.metrics.ObserveMessage(string(reply.Phase), reply.Action)
	if reply.Action == agent.ActionBookingConfirmed {
		h.metrics.ObserveBooking()
	}
	h.record(r, req, reply)

	h.writeJSON(w, http.StatusOK, ChatResponse{
		Response:  reply.Response,
		SessionID: reply.SessionID,
		Phase:     reply.Phase,
		Action:    reply.Action,
	})
}

// record appends both sides of the exchange to the transcript, best-effort.
func (h *Handler) record(r *http.Request, req ChatRequest, reply *agent.Reply) {
	if h.transcript == nil {
		return
	}
	ctx := r.Context()
	if err := h.transcript.Append(ctx, req.SessionID, transcript.Message{
		Role: "user",
		Body: req.Message,
	}); err != nil {
		h.logger.Warn("failed to record user message", "session_id", req.SessionID, "error", err)
		return
	}
	if err := h.transcript.Append(ctx, req.SessionID, transcript.Message{
		Role:  "assistant",
		Body:  reply.Response,
		Phase: string(reply.Phase),
	}); err != nil {
		h.logger.Warn("failed to record assistant message", "session_id", req.SessionID, "error", err)
	}
}

// HistoryResponse wraps the recorded transcript of a session.
type HistoryResponse struct {
	SessionID string               `json:"session_id"`
	Messages  []transcript.Message `json:"messages"`
}

// HandleHistory handles GET /chat/{sessionID}/history.
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}

	msgs, err := h.transcript.List(r.Context(), sessionID, 100)
	if err != nil {
		h.logger.Error("failed to load history", "session_id", sessionID, "error", err)
		http.Error(w, "failed to load history", http.StatusInternalServerError)
		return
	}
	if msgs == nil {
		msgs = []transcript.Message{}
	}

	h.writeJSON(w, http.StatusOK, HistoryResponse{
		SessionID: sessionID,
		Messages:  msgs,
	})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", "error", err)
	}
}
