package output

import (
	"fmt"
	"io"
	"strings"
)

const (
	seqWidth    = 4
	descWidth   = 60
	amountWidth = 14
	innerWidth  = 1 + seqWidth + 1 + descWidth + 1 + amountWidth + 1
)

// TableFormatter renders boxed terminal tables
type TableFormatter struct {
	opts Options
}

// Format returns the format type
func (f *TableFormatter) Format() Format { return FormatCLI }

// Render writes the cargo summary and one table per mode
func (f *TableFormatter) Render(w io.Writer, doc *Document) error {
	p := &printer{w: w}

	p.rule("┌", "┐")
	p.text("CARGO SUMMARY")
	p.rule("├", "┤")
	s := doc.Summary
	p.pair("Length (m)", s.Length.StringFixed(2))
	p.pair("Width (m)", s.Width.StringFixed(2))
	p.pair("Height (m)", s.Height.StringFixed(2))
	p.pair("Volume (CBM)", s.Volume.StringFixed(2))
	p.pair("Weight (MT)", s.Weight.StringFixed(2))
	p.rule("└", "┘")

	for _, q := range doc.Quotes {
		p.line("")
		p.rule("┌", "┐")
		p.text("QUOTATION BREAKDOWN - " + q.Mode.Label())
		p.rule("├", "┤")
		p.row("Sl.", "Description", "Amount")
		p.rule("├", "┤")
		for _, item := range q.Items {
			p.row(item.Seq, item.Description, Amount(item.Amount))
			if f.opts.ShowFormulas {
				p.row("", "  └─ "+item.Formula, "")
			}
		}
		p.rule("├", "┤")
		p.text("QUOTED AMOUNT - " + q.Mode.Label())
		for _, total := range q.Totals {
			p.pair(total.Label, withSymbol(f.opts.Symbol, Quoted(total.Amount)))
		}
		p.rule("└", "┘")
	}

	for _, warning := range doc.Warnings {
		p.line("")
		p.line("Warning: " + warning)
	}

	p.line("")
	p.line(fmt.Sprintf("Quote %s (tariff %s)", doc.QuoteID, shortHash(doc.TariffFingerprint)))
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

func (p *printer) rule(left, right string) {
	p.line(left + strings.Repeat("─", innerWidth) + right)
}

func (p *printer) text(s string) {
	p.line(fmt.Sprintf("│ %-*s │", innerWidth-2, truncate(s, innerWidth-2)))
}

func (p *printer) pair(label, value string) {
	labelWidth := innerWidth - 3 - amountWidth
	p.line(fmt.Sprintf("│ %-*s %*s │", labelWidth, truncate(label, labelWidth), amountWidth, value))
}

func (p *printer) row(seq, desc, amount string) {
	p.line(fmt.Sprintf("│ %-*s %-*s %*s │",
		seqWidth, seq,
		descWidth, truncate(desc, descWidth),
		amountWidth, amount))
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}

var _ Formatter = (*TableFormatter)(nil)
