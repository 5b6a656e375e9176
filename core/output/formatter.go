// Package output provides output formatting interfaces.
// This package produces human and machine-readable quotations.
package output

import (
	"io"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"shipping-quote/core/tariff"
	"shipping-quote/core/types"
	apperrors "shipping-quote/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"

	// FormatXLSX is an Excel workbook
	FormatXLSX Format = "xlsx"
)

// NoModeSelected is the warning shown when a request selects no mode
const NoModeSelected = "Please select at least one shipping mode."

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given document
	Render(w io.Writer, doc *Document) error
}

// Options tune the human-readable formats
type Options struct {
	// ShowFormulas prints the formula behind each line
	ShowFormulas bool

	// Symbol is printed in front of amounts
	Symbol string
}

// Document is a priced quotation ready to be rendered
type Document struct {
	// QuoteID identifies this rendering of the quote
	QuoteID string `json:"quote_id"`

	// IssuedAt is when the quote was produced
	IssuedAt time.Time `json:"issued_at"`

	// Currency is the quote currency
	Currency types.Currency `json:"currency"`

	// TariffFingerprint identifies the rate card used
	TariffFingerprint string `json:"tariff_fingerprint"`

	// Summary is the cargo summary
	Summary types.CargoSummary `json:"summary"`

	// Quotes are the priced modes
	Quotes []types.ModeQuote `json:"quotes"`

	// Warnings are notices the reader must see
	Warnings []string `json:"warnings"`
}

// NewDocument wraps an engine result with its metadata
func NewDocument(result types.QuoteResult, t tariff.Tariff, currency types.Currency) *Document {
	doc := &Document{
		QuoteID:           uuid.NewString(),
		IssuedAt:          time.Now().UTC(),
		Currency:          currency,
		TariffFingerprint: t.Fingerprint(),
		Summary:           result.Summary,
		Quotes:            result.Quotes,
		Warnings:          []string{},
	}
	if result.Empty() {
		doc.Warnings = append(doc.Warnings, NoModeSelected)
	}
	return doc
}

var constructors = map[Format]func(Options) Formatter{
	FormatCLI:      func(o Options) Formatter { return &TableFormatter{opts: o} },
	FormatJSON:     func(o Options) Formatter { return &JSONFormatter{} },
	FormatMarkdown: func(o Options) Formatter { return &MarkdownFormatter{opts: o} },
	FormatXLSX:     func(o Options) Formatter { return &XLSXFormatter{} },
}

// New returns the formatter for a format name
func New(format Format, opts Options) (Formatter, error) {
	ctor, ok := constructors[format]
	if !ok {
		return nil, apperrors.Newf(apperrors.TypeNotSupported, "unsupported output format: %s", format).
			WithContext("formats", Formats())
	}
	return ctor(opts), nil
}

// Formats lists the supported format names
func Formats() []string {
	names := make([]string, 0, len(constructors))
	for f := range constructors {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// Amount formats a line amount with two decimals and grouped thousands
func Amount(d decimal.Decimal) string {
	return humanize.FormatFloat("#,###.##", d.InexactFloat64())
}

// Quoted formats a quoted total rounded to whole currency units
func Quoted(d decimal.Decimal) string {
	return humanize.FormatFloat("#,###.", d.Round(0).InexactFloat64())
}

func withSymbol(symbol, amount string) string {
	if symbol == "" {
		return amount
	}
	return symbol + " " + amount
}
