package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"shipping-quote/core/tariff"
	"shipping-quote/core/types"
)

func mafiQuote(req types.QuoteRequest, t tariff.Tariff, s shared) types.ModeQuote {
	mafis := decimal.NewFromInt(int64(req.Mafis))

	option1 := perUnit("3A", fmt.Sprintf("Option 1 - Direct Handling (Rs %s / MT)", t.HandlingOption1), "MT", t.HandlingOption1, req.Weight)
	option1.Option = types.OptionDirect
	option2 := perUnit("3B", fmt.Sprintf("Option 2 - Double Handling (Rs %s / MT)", t.HandlingOption2), "MT", t.HandlingOption2, req.Weight)
	option2.Option = types.OptionDouble

	items := append(s.head(),
		option1,
		option2,
		perUnit("4", fmt.Sprintf("Lashing charges (Rs %s / MT)", t.LashingCharges), "MT", t.LashingCharges, req.Weight),
		perUnit("5", fmt.Sprintf("Lashing manpower (per Mafi x %d)", req.Mafis), "mafi", t.LashingManpowerPerMafi, mafis),
		perUnit("6", fmt.Sprintf("Survey (per Mafi x %d)", req.Mafis), "mafi", t.SurveyPerMafi, mafis),
		perUnit("7", fmt.Sprintf("Tug master (per Mafi x %d)", req.Mafis), "mafi", t.TugMasterPerMafi, mafis),
	)

	q := types.ModeQuote{Mode: types.ModeMAFI, Items: items}
	q.Subtotal = types.Sum(q.Common())
	q.Totals = []types.Total{
		{Option: types.OptionDirect, Label: "Option 1 - Direct Handling", Amount: q.Subtotal.Add(option1.Amount)},
		{Option: types.OptionDouble, Label: "Option 2 - Double Handling", Amount: q.Subtotal.Add(option2.Amount)},
	}
	return q
}
