// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, engine orchestration, output serialization.
// The API NEVER performs pricing logic.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"shipping-quote/core/determinism"
	"shipping-quote/core/engine"
	"shipping-quote/core/input"
	"shipping-quote/core/types"
	"shipping-quote/internal/config"
)

// maxBodyBytes bounds POST /quote bodies
const maxBodyBytes = 1 << 20

// Server is the API server
type Server struct {
	engine    *engine.Engine
	validator *input.Validator
	currency  types.Currency
	version   string
	logger    *zap.Logger
	metrics   *metrics
	router    chi.Router
}

// Option customizes a Server
type Option func(*Server)

// WithLogger sets the access and error logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithCurrency sets the currency quotes are issued in
func WithCurrency(c types.Currency) Option {
	return func(s *Server) { s.currency = c }
}

// WithoutMetrics disables GET /metrics
func WithoutMetrics() Option {
	return func(s *Server) { s.metrics = nil }
}

// NewServer creates a new API server pricing with e
func NewServer(version string, e *engine.Engine, opts ...Option) *Server {
	s := &Server{
		engine:    e,
		validator: input.NewValidator(),
		currency:  types.CurrencyINR,
		version:   version,
		logger:    zap.NewNop(),
		metrics:   newMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.accessLog)
	if s.metrics != nil {
		r.Use(s.metrics.middleware)
	}

	// Core endpoints
	r.Post("/quote", s.handleQuote)
	r.Get("/quote/defaults", s.handleDefaults)
	r.Get("/tariff", s.handleTariff)

	// Supporting endpoints
	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.handler())
	}

	s.router = r
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to write response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, body ErrorBody, status int) {
	s.writeJSON(w, ErrorResponse{
		Error:     body,
		RequestID: middleware.GetReqID(r.Context()),
	}, status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, cfg config.ServerConfig) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      s,
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSeconds) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

// Helper functions

func computeInputHash(req *types.QuoteRequest) string {
	hash, err := determinism.HashJSON(req)
	if err != nil {
		return ""
	}
	return hash.Hex()
}
