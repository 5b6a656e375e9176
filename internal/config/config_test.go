package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipping-quote/core/tariff"
	apperrors "shipping-quote/internal/errors"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.Server.Addr = ":9090"
	cfg.Output.DefaultFormat = "json"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", loaded.Server.Addr)
	assert.Equal(t, "json", loaded.Output.DefaultFormat)
	assert.Equal(t, "₹", loaded.Tariff.Symbol)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output": {"default_format": "markdown"}}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Output.DefaultFormat)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.TypeConfig))
}

func TestLoadTariff(t *testing.T) {
	cfg := Default()
	tr, err := cfg.LoadTariff()
	require.NoError(t, err)
	assert.Equal(t, tariff.Default().Fingerprint(), tr.Fingerprint())

	path := filepath.Join(t.TempDir(), "rates.hcl")
	require.NoError(t, os.WriteFile(path, []byte("custom_clearance = 18000\n"), 0644))
	cfg.Tariff.Path = path

	tr, err = cfg.LoadTariff()
	require.NoError(t, err)
	assert.True(t, tr.CustomClearance.Equal(decimal.NewFromInt(18000)))
}
