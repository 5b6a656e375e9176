package input

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipping-quote/core/types"
	apperrors "shipping-quote/internal/errors"
)

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	e, ok := apperrors.As(err)
	require.True(t, ok, "expected *errors.Error, got %T", err)
	require.True(t, e.HasType(apperrors.TypeInput))

	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func TestDefaultsAreValid(t *testing.T) {
	req := Defaults()
	assert.NoError(t, NewValidator().Validate(&req))
	assert.True(t, req.Volume().Equal(decimal.NewFromInt(225)))
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *types.QuoteRequest)
		field  string
		msg    string
	}{
		{
			name:   "negative length",
			mutate: func(r *types.QuoteRequest) { r.Length = decimal.RequireFromString("-0.5") },
			field:  "length",
			msg:    "must be >= 0",
		},
		{
			name:   "negative weight",
			mutate: func(r *types.QuoteRequest) { r.Weight = decimal.NewFromInt(-3) },
			field:  "weight",
			msg:    "must be >= 0",
		},
		{
			name:   "zero trailers",
			mutate: func(r *types.QuoteRequest) { r.Trailers = 0 },
			field:  "trailers",
			msg:    "must be >= 1",
		},
		{
			name:   "zero mafis",
			mutate: func(r *types.QuoteRequest) { r.Mafis = 0 },
			field:  "mafis",
			msg:    "must be >= 1",
		},
		{
			name:   "negative security persons",
			mutate: func(r *types.QuoteRequest) { r.SecurityPersons = -1 },
			field:  "security_persons",
			msg:    "must be >= 0",
		},
		{
			name:   "unknown mode",
			mutate: func(r *types.QuoteRequest) { r.Modes = []types.Mode{types.ModeMAFI, "RORO"} },
			field:  "modes[1]",
			msg:    "must be one of: MAFI, BBK",
		},
		{
			name:   "missing trailer type",
			mutate: func(r *types.QuoteRequest) { r.TrailerType = "" },
			field:  "trailer_type",
			msg:    "is required",
		},
		{
			name:   "unknown trailer type",
			mutate: func(r *types.QuoteRequest) { r.TrailerType = "flatbed" },
			field:  "trailer_type",
			msg:    "must be one of: mechanical, hydraulic",
		},
	}

	v := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := Defaults()
			tt.mutate(&req)

			err := v.Validate(&req)
			require.Error(t, err)
			assert.Equal(t, tt.msg, fieldsOf(t, err)[tt.field])
		})
	}
}

func TestValidateAllowsEmptySelectionAndZeroDimensions(t *testing.T) {
	req := Defaults()
	req.Modes = nil
	req.Length = decimal.Zero
	req.SecurityShifts = 0

	assert.NoError(t, NewValidator().Validate(&req))
}

func TestValidateReportsEveryField(t *testing.T) {
	req := Defaults()
	req.Trailers = 0
	req.Height = decimal.NewFromInt(-1)

	fields := fieldsOf(t, NewValidator().Validate(&req))
	assert.Len(t, fields, 2)
	assert.Contains(t, fields, "trailers")
	assert.Contains(t, fields, "height")
}

func TestParseModes(t *testing.T) {
	modes, err := ParseModes([]string{"MAFI MODE", " bbk ", "", "mafi"})
	require.NoError(t, err)
	assert.Equal(t, []types.Mode{types.ModeMAFI, types.ModeBBK, types.ModeMAFI}, modes)

	_, err = ParseModes([]string{"MAFI", "container"})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.TypeInput))
}

func TestParseTrailerType(t *testing.T) {
	tests := []struct {
		in   string
		want types.TrailerType
		ok   bool
	}{
		{"mechanical", types.TrailerMechanical, true},
		{"Mechanical Trailer (<50 MT & <12 m)", types.TrailerMechanical, true},
		{"HYDRAULIC", types.TrailerHydraulic, true},
		{"Hydraulic Axle Trailer (>50 MT & >14 m)", types.TrailerHydraulic, true},
		{"lowbed", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := types.ParseTrailerType(tt.in)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
