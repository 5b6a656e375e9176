// Package engine prices quotation requests against a tariff.
// It is a pure function of (request, tariff): no I/O, no logging, no state.
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"shipping-quote/core/tariff"
	"shipping-quote/core/types"
)

// Engine prices requests against a fixed tariff
type Engine struct {
	tariff tariff.Tariff
}

// New creates an engine bound to t
func New(t tariff.Tariff) *Engine {
	return &Engine{tariff: t}
}

// Tariff returns the rate card the engine prices with
func (e *Engine) Tariff() tariff.Tariff {
	return e.tariff
}

// Quote prices req with the engine's tariff
func (e *Engine) Quote(req types.QuoteRequest) types.QuoteResult {
	return Compute(req, e.tariff)
}

// shared holds the derivations every mode uses
type shared struct {
	volume    decimal.Decimal
	clearance *types.LineItem
	gate      types.LineItem
}

// Compute prices req against t. Modes are produced MAFI first, then BBK;
// a request with no modes yields a result with no quotes.
func Compute(req types.QuoteRequest, t tariff.Tariff) types.QuoteResult {
	s := derive(req, t)

	result := types.QuoteResult{
		Summary: types.CargoSummary{
			Length: req.Length,
			Width:  req.Width,
			Height: req.Height,
			Volume: s.volume,
			Weight: req.Weight,
		},
		Quotes: []types.ModeQuote{},
	}

	if req.HasMode(types.ModeMAFI) {
		result.Quotes = append(result.Quotes, mafiQuote(req, t, s))
	}
	if req.HasMode(types.ModeBBK) {
		result.Quotes = append(result.Quotes, bbkQuote(req, t, s))
	}
	return result
}

func derive(req types.QuoteRequest, t tariff.Tariff) shared {
	s := shared{volume: req.Volume()}

	if req.IncludeCustomClearance {
		s.clearance = &types.LineItem{
			Seq:         "1",
			Description: "Custom clearance charges",
			Measure:     "flat",
			Quantity:    decimal.NewFromInt(1),
			Rate:        t.CustomClearance,
			Amount:      t.CustomClearance,
			Formula:     "flat fee",
		}
	}

	gateRate := t.GateHydraulic
	if req.TrailerType == types.TrailerMechanical {
		gateRate = t.GateMechanical
	}
	s.gate = perUnit("2", "Cargo gate IN/OUT - "+req.TrailerType.Label(), "trailer", gateRate, decimal.NewFromInt(int64(req.Trailers)))
	return s
}

// head returns the rows every mode starts with; the clearance row is
// appended only when it is included.
func (s shared) head() []types.LineItem {
	items := make([]types.LineItem, 0, 8)
	if s.clearance != nil {
		items = append(items, *s.clearance)
	}
	return append(items, s.gate)
}

func perUnit(seq, description, measure string, rate, qty decimal.Decimal) types.LineItem {
	return types.LineItem{
		Seq:         seq,
		Description: description,
		Measure:     measure,
		Quantity:    qty,
		Rate:        rate,
		Amount:      rate.Mul(qty),
		Formula:     fmt.Sprintf("%s x %s %s", rate.String(), qty.String(), measure),
	}
}

func lumpsum(seq, description string, amount decimal.Decimal) types.LineItem {
	return types.LineItem{
		Seq:         seq,
		Description: description,
		Measure:     "lumpsum",
		Quantity:    decimal.NewFromInt(1),
		Rate:        amount,
		Amount:      amount,
		Formula:     "lumpsum",
	}
}
