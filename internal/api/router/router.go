// Package router builds the HTTP route tree for the intake API.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/adeshkhole/Medical-Appointment-Scheduling-Agent/internal/chat"
	httpmiddleware "github.com/adeshkhole/Medical-Appointment-Scheduling-Agent/internal/http/middleware"
	"github.com/adeshkhole/Medical-Appointment-Scheduling-Agent/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger             *logging.Logger
	ChatHandler        *chat.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", cfg.ChatHandler.HealthCheck)
	r.Route("/chat", func(r chi.Router) {
		r.Post("/", cfg.ChatHandler.HandleChat)
		r.Get("/{sessionID}/history", cfg.ChatHandler.HandleHistory)
	})
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	return r
}
