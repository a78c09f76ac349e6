package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/adeshkhole/Medical-Appointment-Scheduling-Agent/internal/agent"
	"github.com/adeshkhole/Medical-Appointment-Scheduling-Agent/internal/api/router"
	"github.com/adeshkhole/Medical-Appointment-Scheduling-Agent/internal/availability"
	"github.com/adeshkhole/Medical-Appointment-Scheduling-Agent/internal/booking"
	"github.com/adeshkhole/Medical-Appointment-Scheduling-Agent/internal/chat"
	appconfig "github.com/adeshkhole/Medical-Appointment-Scheduling-Agent/internal/config"
	"github.com/adeshkhole/Medical-Appointment-Scheduling-Agent/internal/faq"
	"github.com/adeshkhole/Medical-Appointment-Scheduling-Agent/internal/observability/metrics"
	"github.com/adeshkhole/Medical-Appointment-Scheduling-Agent/internal/transcript"
	"github.com/adeshkhole/Medical-Appointment-Scheduling-Agent/pkg/logging"
)

func main() {
	// Load .env if present; real deployments set environment variables directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting appointment intake API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	// Booking storage: Postgres when configured, in-memory otherwise.
	var recorder agent.BookingRecorder
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to connect to Postgres", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		recorder = booking.NewPostgresRecorder(pool)
		logger.Info("bookings backed by Postgres")
	} else {
		recorder = booking.NewMemoryRecorder()
		logger.Warn("DATABASE_URL not set, bookings are stored in memory")
	}

	// Transcript storage: Redis when configured.
	var transcripts *transcript.Store
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer client.Close()
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Error("failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		transcripts = transcript.NewStore(client, cfg.TranscriptTTL, int64(cfg.TranscriptMax))
		logger.Info("transcripts backed by Redis", "addr", cfg.RedisAddr)
	} else {
		logger.Warn("REDIS_ADDR not set, transcripts are disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	conversationMetrics := metrics.NewConversationMetrics(registry)

	engine := agent.NewEngine(
		agent.NewSessionStore(),
		faq.NewProvider(),
		availability.NewScheduleProvider(),
		recorder,
		agent.EngineConfig{
			SlotDaysAhead:     cfg.SlotDaysAhead,
			MaxSuggestedSlots: cfg.MaxSuggestedSlots,
			ProviderTimeout:   cfg.ProviderTimeout,
		},
		logger,
	)

	chatHandler := chat.NewHandler(engine, transcripts, conversationMetrics, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		ChatHandler:        chatHandler,
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
