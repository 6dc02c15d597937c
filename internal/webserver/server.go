// Package webserver exposes the HTTP endpoint the voice platform
// delivers call events to. The webhook always answers 200 so a
// processing problem on our side never disturbs telephony.
package webserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"callbench/internal/store"
	"callbench/internal/webhook"
)

// DefaultPort is the webhook listen port when none is configured.
const DefaultPort = 8765

// Config wires the server's dependencies.
type Config struct {
	Port        int
	Transcripts *store.TranscriptStore
	Logger      *slog.Logger
}

// Server receives platform webhooks and persists normalized transcripts.
type Server struct {
	cfg    Config
	router *chi.Mux
	srv    *http.Server
	now    func() time.Time
}

// NewServer builds the server and its routes.
func NewServer(cfg Config) *Server {
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	s := &Server{
		cfg:    cfg,
		router: chi.NewRouter(),
		now:    time.Now,
	}

	s.router.Use(requestIDMiddleware)
	s.router.Use(loggingMiddleware(cfg.Logger))
	s.router.Use(middleware.Recoverer)

	s.router.Post("/webhook/vapi", s.handleWebhook)
	s.router.Get("/healthz", s.handleHealth)

	return s
}

// Handler returns the underlying handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens until the server is shut down or fails.
func (s *Server) Start() error {
	s.srv = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.cfg.Logger.Info("webhook server listening", "addr", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("webhook server: %w", err)
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// handleWebhook accepts platform events. Every path returns 200: a bad
// body gets an error marker in the response, and storage failures are
// logged but never surfaced to the platform.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.cfg.Logger.Warn("received invalid JSON payload", "error", err)
		writeJSON(w, http.StatusOK, map[string]any{"status": "error", "reason": "invalid_json"})
		return
	}

	eventType := "unknown"
	if msg, ok := body["message"].(map[string]any); ok {
		if t, ok := msg["type"].(string); ok && t != "" {
			eventType = t
		}
	}
	s.cfg.Logger.Info("received event", "type", eventType)

	if tr := webhook.Normalize(body); tr != nil {
		now := s.now()
		tr.WebhookReceivedAt = &now

		if tr.CallID != "" && s.cfg.Transcripts.Exists(tr.CallID) {
			s.cfg.Logger.Warn("overwriting existing transcript", "call_id", tr.CallID)
		}
		if path, err := s.cfg.Transcripts.Save(tr); err != nil {
			s.cfg.Logger.Error("could not save transcript", "call_id", tr.CallID, "error", err)
		} else {
			s.cfg.Logger.Info("saved transcript", "call_id", tr.CallID, "path", path)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
