// Package tariff holds the rate card quotations are priced with.
// A Tariff is a plain value: the engine reads it and never changes it.
package tariff

import (
	"github.com/shopspring/decimal"

	"shipping-quote/core/determinism"
	apperrors "shipping-quote/internal/errors"
)

// Tariff is the set of rates, in currency units per unit of measure
type Tariff struct {
	// Common
	CustomClearance decimal.Decimal `json:"custom_clearance"`
	GateMechanical  decimal.Decimal `json:"gate_mechanical"`
	GateHydraulic   decimal.Decimal `json:"gate_hydraulic"`

	// MAFI mode
	HandlingOption1        decimal.Decimal `json:"handling_option_1"`
	HandlingOption2        decimal.Decimal `json:"handling_option_2"`
	LashingCharges         decimal.Decimal `json:"lashing_charges"`
	LashingManpowerPerMafi decimal.Decimal `json:"lashing_manpower_per_mafi"`
	SurveyPerMafi          decimal.Decimal `json:"survey_per_mafi"`
	TugMasterPerMafi       decimal.Decimal `json:"tug_master_per_mafi"`

	// BBK mode
	BBKHandlingPerCBM         decimal.Decimal `json:"bbk_handling_per_cbm"`
	BBKSurveyLumpsum          decimal.Decimal `json:"bbk_survey_lumpsum"`
	BBKPortPermission         decimal.Decimal `json:"bbk_port_permission"`
	BBKSecurityPerShiftPerson decimal.Decimal `json:"bbk_security_per_shift_person"`
}

// Default returns the standard rate card
func Default() Tariff {
	return Tariff{
		CustomClearance: decimal.NewFromInt(20000),
		GateMechanical:  decimal.NewFromInt(600),
		GateHydraulic:   decimal.NewFromInt(2000),

		HandlingOption1:        decimal.NewFromInt(900),
		HandlingOption2:        decimal.NewFromInt(1800),
		LashingCharges:         decimal.NewFromInt(1100),
		LashingManpowerPerMafi: decimal.NewFromInt(3000),
		SurveyPerMafi:          decimal.NewFromInt(2500),
		TugMasterPerMafi:       decimal.NewFromInt(8800),

		BBKHandlingPerCBM:         decimal.NewFromInt(175),
		BBKSurveyLumpsum:          decimal.NewFromInt(2500),
		BBKPortPermission:         decimal.NewFromInt(2500),
		BBKSecurityPerShiftPerson: decimal.NewFromInt(850),
	}
}

// Rate is one named entry of the rate card
type Rate struct {
	Name  string          `json:"name"`
	Unit  string          `json:"unit"`
	Value decimal.Decimal `json:"value"`
}

// Rates lists the rate card in a fixed order
func (t Tariff) Rates() []Rate {
	return []Rate{
		{Name: "custom_clearance", Unit: "flat", Value: t.CustomClearance},
		{Name: "gate_mechanical", Unit: "per trailer", Value: t.GateMechanical},
		{Name: "gate_hydraulic", Unit: "per trailer", Value: t.GateHydraulic},
		{Name: "handling_option_1", Unit: "per MT", Value: t.HandlingOption1},
		{Name: "handling_option_2", Unit: "per MT", Value: t.HandlingOption2},
		{Name: "lashing_charges", Unit: "per MT", Value: t.LashingCharges},
		{Name: "lashing_manpower_per_mafi", Unit: "per mafi", Value: t.LashingManpowerPerMafi},
		{Name: "survey_per_mafi", Unit: "per mafi", Value: t.SurveyPerMafi},
		{Name: "tug_master_per_mafi", Unit: "per mafi", Value: t.TugMasterPerMafi},
		{Name: "bbk_handling_per_cbm", Unit: "per CBM", Value: t.BBKHandlingPerCBM},
		{Name: "bbk_survey_lumpsum", Unit: "lumpsum", Value: t.BBKSurveyLumpsum},
		{Name: "bbk_port_permission", Unit: "one time", Value: t.BBKPortPermission},
		{Name: "bbk_security_per_shift_person", Unit: "per shift-person", Value: t.BBKSecurityPerShiftPerson},
	}
}

// Validate rejects negative rates
func (t Tariff) Validate() error {
	var err *apperrors.Error
	for _, r := range t.Rates() {
		if r.Value.IsNegative() {
			if err == nil {
				err = apperrors.New(apperrors.TypeConfig, "invalid tariff")
			}
			err.WithField(r.Name, "must be >= 0")
		}
	}
	if err != nil {
		return err
	}
	return nil
}

// Fingerprint is a content hash of the rate card. Two tariffs with the
// same rates have the same fingerprint regardless of how they were built.
func (t Tariff) Fingerprint() string {
	rates := t.Rates()
	pairs := make([][2]string, len(rates))
	for i, r := range rates {
		pairs[i] = [2]string{r.Name, r.Value.String()}
	}
	return determinism.HashPairs(pairs).Hex()
}

// ShortFingerprint returns the first 12 hex digits of the fingerprint
func (t Tariff) ShortFingerprint() string {
	return t.Fingerprint()[:12]
}
