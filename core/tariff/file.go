package tariff

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	apperrors "shipping-quote/internal/errors"
)

// fileSchema is the on-disk rate card. Every attribute is optional; an
// attribute left out keeps the rate it had before decoding. Values stay
// cty numbers (arbitrary precision) until they become decimals.
type fileSchema struct {
	CustomClearance cty.Value `hcl:"custom_clearance,optional"`
	GateMechanical  cty.Value `hcl:"gate_mechanical,optional"`
	GateHydraulic   cty.Value `hcl:"gate_hydraulic,optional"`

	HandlingOption1        cty.Value `hcl:"handling_option_1,optional"`
	HandlingOption2        cty.Value `hcl:"handling_option_2,optional"`
	LashingCharges         cty.Value `hcl:"lashing_charges,optional"`
	LashingManpowerPerMafi cty.Value `hcl:"lashing_manpower_per_mafi,optional"`
	SurveyPerMafi          cty.Value `hcl:"survey_per_mafi,optional"`
	TugMasterPerMafi       cty.Value `hcl:"tug_master_per_mafi,optional"`

	BBKHandlingPerCBM         cty.Value `hcl:"bbk_handling_per_cbm,optional"`
	BBKSurveyLumpsum          cty.Value `hcl:"bbk_survey_lumpsum,optional"`
	BBKPortPermission         cty.Value `hcl:"bbk_port_permission,optional"`
	BBKSecurityPerShiftPerson cty.Value `hcl:"bbk_security_per_shift_person,optional"`
}

// values lists the schema fields in Rates order
func (s *fileSchema) values() []*cty.Value {
	return []*cty.Value{
		&s.CustomClearance, &s.GateMechanical, &s.GateHydraulic,
		&s.HandlingOption1, &s.HandlingOption2, &s.LashingCharges,
		&s.LashingManpowerPerMafi, &s.SurveyPerMafi, &s.TugMasterPerMafi,
		&s.BBKHandlingPerCBM, &s.BBKSurveyLumpsum, &s.BBKPortPermission,
		&s.BBKSecurityPerShiftPerson,
	}
}

// fields lists the tariff rates in Rates order
func (t *Tariff) fields() []*decimal.Decimal {
	return []*decimal.Decimal{
		&t.CustomClearance, &t.GateMechanical, &t.GateHydraulic,
		&t.HandlingOption1, &t.HandlingOption2, &t.LashingCharges,
		&t.LashingManpowerPerMafi, &t.SurveyPerMafi, &t.TugMasterPerMafi,
		&t.BBKHandlingPerCBM, &t.BBKSurveyLumpsum, &t.BBKPortPermission,
		&t.BBKSecurityPerShiftPerson,
	}
}

func toSchema(t Tariff) fileSchema {
	var s fileSchema
	values := s.values()
	for i, r := range t.Rates() {
		*values[i] = numberVal(r.Value)
	}
	return s
}

func (s fileSchema) tariff() (Tariff, error) {
	var t Tariff
	var bad *apperrors.Error

	fields := t.fields()
	rates := Default().Rates()
	for i, v := range s.values() {
		d, err := decimalFromValue(*v)
		if err != nil {
			if bad == nil {
				bad = apperrors.New(apperrors.TypeConfig, "invalid tariff")
			}
			bad.WithField(rates[i].Name, err.Error())
			continue
		}
		*fields[i] = d
	}
	if bad != nil {
		return Tariff{}, bad
	}
	return t, nil
}

func numberVal(d decimal.Decimal) cty.Value {
	return cty.MustParseNumberVal(d.String())
}

func decimalFromValue(v cty.Value) (decimal.Decimal, error) {
	n, err := convert.Convert(v, cty.Number)
	if err != nil {
		return decimal.Zero, err
	}
	if n.IsNull() || !n.IsKnown() {
		return decimal.Zero, fmt.Errorf("a number is required")
	}
	return decimal.NewFromString(n.AsBigFloat().Text('f', -1))
}

// LoadFile reads a rate card from an .hcl or .json file, starting from
// the default rates.
func LoadFile(path string) (Tariff, error) {
	schema := toSchema(Default())
	if err := hclsimple.DecodeFile(path, nil, &schema); err != nil {
		return Tariff{}, apperrors.Config("failed to decode tariff file", err).WithContext("path", path)
	}
	return finish(schema)
}

// Parse decodes a rate card from src. The filename extension selects
// native HCL (.hcl) or JSON (.json) syntax.
func Parse(filename string, src []byte) (Tariff, error) {
	schema := toSchema(Default())
	if err := hclsimple.Decode(filename, src, nil, &schema); err != nil {
		return Tariff{}, apperrors.Config("failed to decode tariff", err).WithContext("path", filename)
	}
	return finish(schema)
}

func finish(schema fileSchema) (Tariff, error) {
	t, err := schema.tariff()
	if err != nil {
		return Tariff{}, err
	}
	if err := t.Validate(); err != nil {
		return Tariff{}, err
	}
	return t, nil
}

// Encode renders the rate card as native HCL, one attribute per rate in
// Rates order. Values are written with full precision.
func Encode(t Tariff) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	for _, r := range t.Rates() {
		body.SetAttributeValue(r.Name, numberVal(r.Value))
	}
	return f.Bytes()
}
