// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"shipping-quote/core/tariff"
	"shipping-quote/core/types"
	apperrors "shipping-quote/internal/errors"
	"shipping-quote/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Tariff contains rate card settings
	Tariff TariffConfig `json:"tariff"`

	// Server contains HTTP server settings
	Server ServerConfig `json:"server"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// TariffConfig contains rate card settings
type TariffConfig struct {
	// Path is an optional .hcl or .json rate card overriding the defaults
	Path string `json:"path,omitempty"`

	// Currency is the currency code quotes are issued in
	Currency types.Currency `json:"currency"`

	// Symbol is printed in front of amounts
	Symbol string `json:"symbol"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`

	// ReadTimeoutSeconds bounds reading a request
	ReadTimeoutSeconds int `json:"read_timeout_seconds"`

	// WriteTimeoutSeconds bounds writing a response
	WriteTimeoutSeconds int `json:"write_timeout_seconds"`

	// EnableMetrics exposes GET /metrics
	EnableMetrics bool `json:"enable_metrics"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// ShowFormulas prints the formula behind each line
	ShowFormulas bool `json:"show_formulas"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Tariff: TariffConfig{
			Currency: types.CurrencyINR,
			Symbol:   "₹",
		},
		Server: ServerConfig{
			Addr:                ":8080",
			ReadTimeoutSeconds:  10,
			WriteTimeoutSeconds: 10,
			EnableMetrics:       true,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowFormulas:  false,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns $HOME/.shipping-quote.json
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".shipping-quote.json")
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, apperrors.Config("failed to read config", err).WithContext("path", path)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, apperrors.Config("failed to parse config", err).WithContext("path", path)
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// LoadTariff returns the configured rate card, or the defaults when no
// file is configured.
func (c *Config) LoadTariff() (tariff.Tariff, error) {
	if c.Tariff.Path == "" {
		return tariff.Default(), nil
	}
	return tariff.LoadFile(c.Tariff.Path)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
