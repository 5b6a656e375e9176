// Package api - API types for quotations
// These types define the contract for the /quote endpoints.
// API is stateless, idempotent, and deterministic.
package api

import (
	"shipping-quote/core/output"
	"shipping-quote/core/tariff"
	"shipping-quote/core/types"
	apperrors "shipping-quote/internal/errors"
)

// QuoteResponse is the output of POST /quote
type QuoteResponse struct {
	*output.Document

	// InputHash is a hash of the normalized request
	InputHash string `json:"input_hash"`

	// DurationMs is the time spent pricing
	DurationMs int64 `json:"duration_ms"`
}

// TariffResponse is the output of GET /tariff
type TariffResponse struct {
	Fingerprint string         `json:"fingerprint"`
	Currency    types.Currency `json:"currency"`
	Rates       []tariff.Rate  `json:"rates"`
}

// ErrorBody describes a failed request
type ErrorBody struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Fields  []apperrors.FieldError `json:"fields,omitempty"`
}

// ErrorResponse wraps ErrorBody with the request ID
type ErrorResponse struct {
	Error     ErrorBody `json:"error"`
	RequestID string    `json:"request_id,omitempty"`
}
