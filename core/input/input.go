// Package input validates quotation requests before they reach the engine.
// The engine itself accepts any values; range checks live here.
package input

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"shipping-quote/core/types"
	apperrors "shipping-quote/internal/errors"
)

// Validator checks QuoteRequest values
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator that understands decimal fields
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// Validate returns an INPUT_ERROR listing every rejected field
func (v *Validator) Validate(req *types.QuoteRequest) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.Internal("failed to validate quote request", err)
	}

	out := apperrors.Input("invalid quote request")
	for _, fe := range verrs {
		out.WithField(fieldName(fe), message(fe))
	}
	return out
}

func fieldName(fe validator.FieldError) string {
	// Namespace is "QuoteRequest.modes[0]"; drop the struct name
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be >= " + fe.Param()
	case "gt":
		return "must be > " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "failed " + fe.Tag() + " check"
	}
}

// Defaults returns the values the quotation form starts with
func Defaults() types.QuoteRequest {
	return types.QuoteRequest{
		Length:                 decimal.RequireFromString("12.5"),
		Width:                  decimal.RequireFromString("4.0"),
		Height:                 decimal.RequireFromString("4.5"),
		Weight:                 decimal.NewFromInt(30),
		Trailers:               1,
		Mafis:                  1,
		Modes:                  []types.Mode{types.ModeMAFI},
		TrailerType:            types.TrailerMechanical,
		IncludeCustomClearance: true,
		SecurityPersons:        1,
		SecurityShifts:         1,
	}
}

// ParseModes converts mode names, skipping blanks. Duplicates are kept;
// the engine treats the selection as a set.
func ParseModes(names []string) ([]types.Mode, error) {
	modes := make([]types.Mode, 0, len(names))
	var bad *apperrors.Error
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		m, err := types.ParseMode(name)
		if err != nil {
			if bad == nil {
				bad = apperrors.Input("invalid shipping mode")
			}
			bad.WithField("modes", err.Error())
			continue
		}
		modes = append(modes, m)
	}
	if bad != nil {
		return nil, bad
	}
	return modes, nil
}
