// Visual Journal Bot - journal entries to animated Dear Data canvases
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dear-data/vjournal/internal/api"
	"github.com/dear-data/vjournal/internal/config"
	"github.com/dear-data/vjournal/internal/identity"
	"github.com/dear-data/vjournal/internal/interpret"
	"github.com/dear-data/vjournal/internal/middleware"
	"github.com/dear-data/vjournal/web"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting server", "port", cfg.Port, "dev", cfg.IsDevelopment(), "llm_enabled", cfg.LLMEnabled())

	// Optional persona preamble for the model prompt.
	persona := ""
	if cfg.Gemini.PersonaPath != "" {
		data, err := os.ReadFile(cfg.Gemini.PersonaPath)
		if err != nil {
			slog.Error("Failed to read persona file", "path", cfg.Gemini.PersonaPath, "error", err)
			os.Exit(1)
		}
		persona = string(data)
		slog.Info("Persona loaded", "path", cfg.Gemini.PersonaPath, "bytes", len(persona))
	}

	// Initialize the interpreter. Without a key it stays constructed but
	// disabled, and requests fall back to deterministic interpretation.
	gemini := interpret.NewGemini(interpret.Config{
		APIKey:   cfg.Gemini.APIKey,
		Model:    cfg.Gemini.Model,
		Endpoint: cfg.Gemini.Endpoint,
		Persona:  persona,
		Timeout:  cfg.Gemini.Timeout,
	})
	if !gemini.Enabled() {
		slog.Info("No GEMINI_API_KEY found, visuals will use deterministic interpretation only")
	}

	// Initialize handlers.
	baseHandler := api.NewHandler(gemini, cfg)
	visualHandler := api.NewVisualHandler(baseHandler)
	healthHandler := api.NewHealthHandler(cfg)

	// Setup router.
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))
	r.Use(identity.Middleware(!cfg.IsDevelopment()))

	// Public routes.
	healthHandler.RegisterHealth(r)
	visualHandler.RegisterRoutes(r)

	// Serve the embedded frontend (catch-all).
	r.Handle("/*", web.Handler())

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.Timeout.Read,
		WriteTimeout: cfg.Timeout.Write,
		IdleTimeout:  cfg.Timeout.Idle,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server.
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped successfully")
}
