package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/KongaYvan/Automates/internal/presentation/graph"
	"github.com/KongaYvan/Automates/pkg/domain"
	"github.com/KongaYvan/Automates/pkg/runner"
)

// Engine defines the part of the automates façade the API serves.
type Engine interface {
	Name() string
	Verdict() domain.Verdict
	Explain(ctx context.Context, input string) (domain.Result, string)
	Inspect() *domain.Automaton
}

// Server holds the handlers of the JSON API.
type Server struct {
	Engine    Engine
	Sanitizer runner.Sanitizer
	Logger    *slog.Logger
	Metrics   http.Handler
}

// Option configures the handler built by NewHandler.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.Logger = l
		}
	}
}

// WithSanitizer overrides the input sanitizer.
func WithSanitizer(san runner.Sanitizer) Option {
	return func(s *Server) {
		s.Sanitizer = san
	}
}

// WithMetrics mounts h on GET /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	s := &Server{
		Engine:    engine,
		Sanitizer: runner.NewSanitizer(),
		Logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(loggerMiddleware(s.Logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", s.Health)
	r.Get("/automaton", s.Automaton)
	r.Get("/verdict", s.Verdict)
	r.Get("/graph", s.Graph)
	r.Post("/evaluate", s.Evaluate)
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func loggerMiddleware(log *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				log.Debug("Request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"duration", time.Since(start),
					"request_id", middleware.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Automaton handles GET /automaton.
func (s *Server) Automaton(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, mapAutomatonFromDomain(s.Engine.Name(), s.Engine.Inspect()))
}

// Verdict handles GET /verdict.
func (s *Server) Verdict(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, mapVerdictFromDomain(s.Engine.Verdict()))
}

// Evaluate handles POST /evaluate.
// Rejections and non-deterministic automata are answered with 200.
func (s *Server) Evaluate(w http.ResponseWriter, r *http.Request) {
	var body EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Input == nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: expected {\"input\": string}")
		s.Logger.Warn("Evaluate: Invalid request body", "error", err)
		return
	}

	input := *body.Input
	if err := s.Sanitizer.Check(input); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid input: %v", err))
		s.Logger.Warn("Evaluate: Input rejected", "error", err, "size", len(input))
		return
	}

	res, explanation := s.Engine.Explain(r.Context(), input)
	s.writeJSON(w, http.StatusOK, mapResultFromDomain(input, res, explanation))
}

// Graph handles GET /graph, with an optional ?input= walk overlay.
func (s *Server) Graph(w http.ResponseWriter, r *http.Request) {
	var overlay *graph.GraphOverlay
	if r.URL.Query().Has("input") {
		input := r.URL.Query().Get("input")
		if err := s.Sanitizer.Check(input); err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid input: %v", err))
			return
		}
		res, _ := s.Engine.Explain(r.Context(), input)
		overlay = graph.OverlayFromResult(res)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(graph.GenerateMermaid(s.Engine.Inspect(), overlay))); err != nil {
		s.Logger.Error("Graph response write failed", "error", err)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("Response encode failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, ErrorResponse{Error: msg})
}
