package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"shipping-quote/core/tariff"
	"shipping-quote/core/types"
)

func bbkQuote(req types.QuoteRequest, t tariff.Tariff, s shared) types.ModeQuote {
	headcount := decimal.NewFromInt(int64(req.SecurityPersons)).Mul(decimal.NewFromInt(int64(req.SecurityShifts)))

	security := perUnit("6",
		fmt.Sprintf("Security charges (Rs %s x %d persons x %d shifts)", t.BBKSecurityPerShiftPerson, req.SecurityPersons, req.SecurityShifts),
		"shift-person", t.BBKSecurityPerShiftPerson, headcount)

	items := append(s.head(),
		perUnit("3", fmt.Sprintf("BBK handling (Rs %s / CBM x %s)", t.BBKHandlingPerCBM, s.volume.StringFixed(2)), "CBM", t.BBKHandlingPerCBM, s.volume),
		lumpsum("4", "Survey charges (W/M - Lumpsum)", t.BBKSurveyLumpsum),
		lumpsum("5", "Port permission charges (one time)", t.BBKPortPermission),
		security,
	)

	q := types.ModeQuote{Mode: types.ModeBBK, Items: items}
	q.Subtotal = types.Sum(q.Common())
	q.Totals = []types.Total{
		{Option: types.OptionTotal, Label: "Quoted Amount", Amount: q.Subtotal},
	}
	return q
}
