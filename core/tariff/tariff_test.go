package tariff

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "shipping-quote/internal/errors"
)

func TestDefaultRates(t *testing.T) {
	want := map[string]int64{
		"custom_clearance":              20000,
		"gate_mechanical":               600,
		"gate_hydraulic":                2000,
		"handling_option_1":             900,
		"handling_option_2":             1800,
		"lashing_charges":               1100,
		"lashing_manpower_per_mafi":     3000,
		"survey_per_mafi":               2500,
		"tug_master_per_mafi":           8800,
		"bbk_handling_per_cbm":          175,
		"bbk_survey_lumpsum":            2500,
		"bbk_port_permission":           2500,
		"bbk_security_per_shift_person": 850,
	}

	rates := Default().Rates()
	require.Len(t, rates, len(want))
	for _, r := range rates {
		v, ok := want[r.Name]
		require.True(t, ok, "unexpected rate %s", r.Name)
		assert.True(t, r.Value.Equal(decimal.NewFromInt(v)), "%s = %s, want %d", r.Name, r.Value, v)
	}
	assert.NoError(t, Default().Validate())
}

func TestValidateRejectsNegativeRates(t *testing.T) {
	tr := Default()
	tr.GateHydraulic = decimal.NewFromInt(-1)
	tr.SurveyPerMafi = decimal.NewFromInt(-5)

	err := tr.Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.TypeConfig))

	e, _ := apperrors.As(err)
	require.Len(t, e.Fields, 2)
	assert.Equal(t, "gate_hydraulic", e.Fields[0].Field)
	assert.Equal(t, "survey_per_mafi", e.Fields[1].Field)
}

func TestFingerprintIsContentBased(t *testing.T) {
	a := Default()
	b := Default()
	b.CustomClearance = decimal.RequireFromString("20000.00")

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.Len(t, a.ShortFingerprint(), 12)

	b.CustomClearance = decimal.NewFromInt(21000)
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestParsePartialOverride(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		src      string
	}{
		{
			name:     "native syntax",
			filename: "rates.hcl",
			src: `
gate_hydraulic = 2500
bbk_handling_per_cbm = 180.5
`,
		},
		{
			name:     "json syntax",
			filename: "rates.json",
			src:      `{"gate_hydraulic": 2500, "bbk_handling_per_cbm": 180.5}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := Parse(tt.filename, []byte(tt.src))
			require.NoError(t, err)

			assert.True(t, tr.GateHydraulic.Equal(decimal.NewFromInt(2500)))
			assert.True(t, tr.BBKHandlingPerCBM.Equal(decimal.RequireFromString("180.5")))
			// untouched rates keep their defaults
			assert.True(t, tr.CustomClearance.Equal(decimal.NewFromInt(20000)))
			assert.True(t, tr.TugMasterPerMafi.Equal(decimal.NewFromInt(8800)))
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("rates.hcl", []byte(`gate_mechanical = "cheap"`))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.TypeConfig))

	_, err = Parse("rates.hcl", []byte(`unknown_rate = 1`))
	require.Error(t, err)

	_, err = Parse("rates.hcl", []byte(`survey_per_mafi = -10`))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.TypeConfig))
}

func TestEncodeRoundTrip(t *testing.T) {
	tr := Default()
	tr.LashingCharges = decimal.NewFromInt(1250)

	dir := t.TempDir()
	path := filepath.Join(dir, "tariff.hcl")
	require.NoError(t, os.WriteFile(path, Encode(tr), 0644))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, tr.Fingerprint(), loaded.Fingerprint())
	assert.Contains(t, string(Encode(tr)), "lashing_charges")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.hcl"))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.TypeConfig))
}

func TestParseKeepsFullPrecision(t *testing.T) {
	src := `
bbk_handling_per_cbm = 175.12345678901234567
custom_clearance = 12345678901234567890
`
	tr, err := Parse("rates.hcl", []byte(src))
	require.NoError(t, err)
	assert.Equal(t, "175.12345678901234567", tr.BBKHandlingPerCBM.String())
	assert.Equal(t, "12345678901234567890", tr.CustomClearance.String())

	encoded := string(Encode(tr))
	assert.Contains(t, encoded, "175.12345678901234567")
	assert.Contains(t, encoded, "12345678901234567890")

	again, err := Parse("rates.hcl", Encode(tr))
	require.NoError(t, err)
	assert.Equal(t, tr.Fingerprint(), again.Fingerprint())

	fromJSON, err := Parse("rates.json", []byte(`{"bbk_handling_per_cbm": 175.12345678901234567}`))
	require.NoError(t, err)
	assert.True(t, fromJSON.BBKHandlingPerCBM.Equal(tr.BBKHandlingPerCBM))
}

func TestParseRejectsNonNumbers(t *testing.T) {
	_, err := Parse("rates.hcl", []byte(`gate_mechanical = "cheap"
survey_per_mafi = null`))
	require.Error(t, err)

	e, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.TypeConfig, e.Type)
	require.Len(t, e.Fields, 2)
	assert.Equal(t, "gate_mechanical", e.Fields[0].Field)
	assert.Equal(t, "survey_per_mafi", e.Fields[1].Field)
}
