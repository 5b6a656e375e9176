// Package api - HTTP handlers for quotations
// Handlers wrap the engine - they contain NO pricing logic.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"shipping-quote/core/input"
	"shipping-quote/core/output"
	apperrors "shipping-quote/internal/errors"
)

// handleQuote handles POST /quote. Omitted fields take the form defaults;
// an explicit empty "modes" list yields a warning and no quotes.
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := input.Defaults()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, ErrorBody{Code: "INVALID_JSON", Message: err.Error()}, http.StatusBadRequest)
		return
	}

	if err := s.validator.Validate(&req); err != nil {
		body := ErrorBody{Code: "VALIDATION_ERROR", Message: err.Error()}
		if e, ok := apperrors.As(err); ok {
			body.Message = e.Message
			body.Fields = e.Fields
		}
		s.writeError(w, r, body, http.StatusBadRequest)
		return
	}

	// Execute engine (NO PRICING LOGIC HERE)
	result := s.engine.Quote(req)
	if s.metrics != nil {
		s.metrics.observeQuote(result)
	}

	doc := output.NewDocument(result, s.engine.Tariff(), s.currency)
	if result.Empty() {
		s.logger.Warn("quote requested without a shipping mode", zap.String("quote_id", doc.QuoteID))
	}

	s.writeJSON(w, QuoteResponse{
		Document:   doc,
		InputHash:  computeInputHash(&req),
		DurationMs: time.Since(start).Milliseconds(),
	}, http.StatusOK)
}

// handleDefaults handles GET /quote/defaults
func (s *Server) handleDefaults(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, input.Defaults(), http.StatusOK)
}

// handleTariff handles GET /tariff
func (s *Server) handleTariff(w http.ResponseWriter, r *http.Request) {
	t := s.engine.Tariff()
	s.writeJSON(w, TariffResponse{
		Fingerprint: t.Fingerprint(),
		Currency:    s.currency,
		Rates:       t.Rates(),
	}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "shipping-quote",
		"api_version": "v1",
	}, http.StatusOK)
}
