package output

import (
	"io"

	"github.com/xuri/excelize/v2"
)

const summarySheet = "Summary"

// XLSXFormatter renders an Excel workbook: a summary sheet plus one
// sheet per quoted mode.
type XLSXFormatter struct{}

// Format returns the format type
func (f *XLSXFormatter) Format() Format { return FormatXLSX }

// Render writes doc as an .xlsx workbook
func (f *XLSXFormatter) Render(w io.Writer, doc *Document) error {
	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	if err := xl.SetSheetName(xl.GetSheetName(0), summarySheet); err != nil {
		return err
	}
	bold, err := xl.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	s := doc.Summary
	summary := [][]interface{}{
		{"Quote ID", doc.QuoteID},
		{"Issued At", doc.IssuedAt.Format("2006-01-02 15:04:05 MST")},
		{"Currency", doc.Currency.String()},
		{"Tariff", doc.TariffFingerprint},
		{},
		{"Length (m)", s.Length.InexactFloat64()},
		{"Width (m)", s.Width.InexactFloat64()},
		{"Height (m)", s.Height.InexactFloat64()},
		{"Volume (CBM)", s.Volume.InexactFloat64()},
		{"Weight (MT)", s.Weight.InexactFloat64()},
	}
	for _, warning := range doc.Warnings {
		summary = append(summary, []interface{}{"Warning", warning})
	}
	if err := writeRows(xl, summarySheet, 1, summary); err != nil {
		return err
	}
	_ = xl.SetColWidth(summarySheet, "A", "A", 16)
	_ = xl.SetColWidth(summarySheet, "B", "B", 68)

	for _, q := range doc.Quotes {
		sheet := q.Mode.Label()
		if _, err := xl.NewSheet(sheet); err != nil {
			return err
		}

		rows := [][]interface{}{{"Sl.No", "Description", "Amount", "Formula"}}
		for _, item := range q.Items {
			rows = append(rows, []interface{}{item.Seq, item.Description, item.Amount.InexactFloat64(), item.Formula})
		}
		rows = append(rows, []interface{}{})
		firstTotal := len(rows) + 1
		for _, total := range q.Totals {
			rows = append(rows, []interface{}{"", total.Label, total.Amount.InexactFloat64()})
		}
		if err := writeRows(xl, sheet, 1, rows); err != nil {
			return err
		}

		_ = xl.SetColWidth(sheet, "B", "B", 64)
		_ = xl.SetColWidth(sheet, "C", "C", 16)
		_ = xl.SetColWidth(sheet, "D", "D", 28)
		_ = xl.SetCellStyle(sheet, "A1", "D1", bold)
		from, _ := excelize.CoordinatesToCellName(1, firstTotal)
		to, _ := excelize.CoordinatesToCellName(3, len(rows))
		_ = xl.SetCellStyle(sheet, from, to, bold)
	}

	return xl.Write(w)
}

func writeRows(xl *excelize.File, sheet string, startRow int, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, startRow+i)
		if err != nil {
			return err
		}
		record := row
		if err := xl.SetSheetRow(sheet, cell, &record); err != nil {
			return err
		}
	}
	return nil
}
