package output

import (
	"fmt"
	"io"
	"strings"
)

// MarkdownFormatter renders a markdown report
type MarkdownFormatter struct {
	opts Options
}

// Format returns the format type
func (f *MarkdownFormatter) Format() Format { return FormatMarkdown }

// Render writes doc as markdown tables
func (f *MarkdownFormatter) Render(w io.Writer, doc *Document) error {
	var b strings.Builder

	b.WriteString("## Cargo Summary\n\n")
	b.WriteString("| Length (m) | Width (m) | Height (m) | Volume (CBM) | Weight (MT) |\n")
	b.WriteString("|---:|---:|---:|---:|---:|\n")
	s := doc.Summary
	fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
		s.Length.StringFixed(2), s.Width.StringFixed(2), s.Height.StringFixed(2),
		s.Volume.StringFixed(2), s.Weight.StringFixed(2))

	for _, q := range doc.Quotes {
		fmt.Fprintf(&b, "\n## Quotation Breakdown - %s\n\n", q.Mode.Label())
		if f.opts.ShowFormulas {
			b.WriteString("| Sl.No | Description | Formula | Amount |\n|---|---|---|---:|\n")
		} else {
			b.WriteString("| Sl.No | Description | Amount |\n|---|---|---:|\n")
		}
		for _, item := range q.Items {
			desc := escapePipes(item.Description)
			if f.opts.ShowFormulas {
				fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", item.Seq, desc, item.Formula, Amount(item.Amount))
			} else {
				fmt.Fprintf(&b, "| %s | %s | %s |\n", item.Seq, desc, Amount(item.Amount))
			}
		}

		fmt.Fprintf(&b, "\n### Quoted Amount - %s\n\n", q.Mode.Label())
		for _, total := range q.Totals {
			fmt.Fprintf(&b, "- **%s**: %s\n", total.Label, withSymbol(f.opts.Symbol, Quoted(total.Amount)))
		}
	}

	for _, warning := range doc.Warnings {
		fmt.Fprintf(&b, "\n> **Warning:** %s\n", warning)
	}

	fmt.Fprintf(&b, "\n_Quote %s, tariff %s_\n", doc.QuoteID, shortHash(doc.TariffFingerprint))

	_, err := io.WriteString(w, b.String())
	return err
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
