// Package types - Quotation cost types
package types

import "github.com/shopspring/decimal"

// Option identifies one of the alternative MAFI handling totals
type Option string

const (
	// OptionDirect is MAFI option 1, direct handling
	OptionDirect Option = "option1"

	// OptionDouble is MAFI option 2, double handling
	OptionDouble Option = "option2"

	// OptionTotal names the single total of modes without options
	OptionTotal Option = "total"
)

// LineItem is a single row of a quotation breakdown
type LineItem struct {
	// Seq is the display label ("1", "3A"), not a computed key
	Seq string `json:"seq"`

	// Description is the human-readable row text
	Description string `json:"description"`

	// Measure is the billing unit (e.g., "MT", "CBM", "mafi", "lumpsum")
	Measure string `json:"measure"`

	// Quantity is the billed quantity
	Quantity decimal.Decimal `json:"quantity"`

	// Rate is the unit price
	Rate decimal.Decimal `json:"rate"`

	// Amount is the calculated charge
	Amount decimal.Decimal `json:"amount"`

	// Formula describes how the amount was calculated
	Formula string `json:"formula"`

	// Option is set on rows that count toward one option total only
	Option Option `json:"option,omitempty"`
}

// IsCommon reports whether the row counts toward every total of its mode
func (l *LineItem) IsCommon() bool {
	return l.Option == ""
}

// Total is a named quoted amount
type Total struct {
	// Option names the total
	Option Option `json:"option"`

	// Label is a human-readable label
	Label string `json:"label"`

	// Amount is the quoted amount
	Amount decimal.Decimal `json:"amount"`
}

// ModeQuote is the breakdown and totals of one quotation mode
type ModeQuote struct {
	// Mode is the quotation mode
	Mode Mode `json:"mode"`

	// Items are the ordered breakdown rows
	Items []LineItem `json:"items"`

	// Subtotal is the sum of the common rows
	Subtotal decimal.Decimal `json:"subtotal"`

	// Totals are the quoted amounts, in display order
	Totals []Total `json:"totals"`
}

// Total returns the named total
func (q *ModeQuote) Total(option Option) (decimal.Decimal, bool) {
	for _, t := range q.Totals {
		if t.Option == option {
			return t.Amount, true
		}
	}
	return decimal.Zero, false
}

// Common returns the rows shared by every total of the mode
func (q *ModeQuote) Common() []LineItem {
	var items []LineItem
	for _, item := range q.Items {
		if item.IsCommon() {
			items = append(items, item)
		}
	}
	return items
}

// Contributing returns the rows that add up to the named total
func (q *ModeQuote) Contributing(option Option) []LineItem {
	var items []LineItem
	for _, item := range q.Items {
		if item.IsCommon() || item.Option == option {
			items = append(items, item)
		}
	}
	return items
}

// CargoSummary repeats the cargo measurements a quote was priced from
type CargoSummary struct {
	Length decimal.Decimal `json:"length"`
	Width  decimal.Decimal `json:"width"`
	Height decimal.Decimal `json:"height"`
	Volume decimal.Decimal `json:"volume"`
	Weight decimal.Decimal `json:"weight"`
}

// QuoteResult holds the quotes of every selected mode
type QuoteResult struct {
	// Summary is the cargo summary
	Summary CargoSummary `json:"summary"`

	// Quotes are ordered MAFI first, then BBK
	Quotes []ModeQuote `json:"quotes"`
}

// Empty reports whether no mode was selected
func (r QuoteResult) Empty() bool {
	return len(r.Quotes) == 0
}

// Quote returns the quote of a mode, if it was selected. The pointer
// refers into r.Quotes.
func (r QuoteResult) Quote(m Mode) (*ModeQuote, bool) {
	for i := range r.Quotes {
		if r.Quotes[i].Mode == m {
			return &r.Quotes[i], true
		}
	}
	return nil, false
}

// Sum adds up the amounts of the given rows
func Sum(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return total
}
