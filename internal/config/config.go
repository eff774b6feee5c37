// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/stevenbusse/BatteryPricePro/core/types"
	"github.com/stevenbusse/BatteryPricePro/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Catalog contains reference data configuration
	Catalog CatalogConfig `json:"catalog"`

	// Pricing contains pricing configuration
	Pricing PricingConfig `json:"pricing"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// CatalogConfig contains reference data settings
type CatalogConfig struct {
	// Path is a catalog file to load instead of the embedded default
	// (.json, .yaml, or .hcl). Empty means the embedded catalog.
	Path string `json:"path" env:"CABINET_CATALOG_PATH"`

	// ModuleSizeKWh overrides the catalog's module size (0 = catalog value)
	ModuleSizeKWh float64 `json:"module_size_kwh" env:"CABINET_MODULE_SIZE_KWH"`
}

// PricingConfig contains pricing-related settings
type PricingConfig struct {
	// DefaultCurrency is the default currency
	DefaultCurrency types.Currency `json:"default_currency" env:"CABINET_CURRENCY"`

	// BoundsMode is the default out-of-range policy (clamp, strict)
	BoundsMode string `json:"bounds_mode" env:"CABINET_BOUNDS_MODE"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr" env:"CABINET_ADDR"`

	// ReadTimeoutSeconds bounds request reads
	ReadTimeoutSeconds int `json:"read_timeout_seconds" env:"CABINET_READ_TIMEOUT"`

	// WriteTimeoutSeconds bounds response writes
	WriteTimeoutSeconds int `json:"write_timeout_seconds" env:"CABINET_WRITE_TIMEOUT"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json, markdown)
	DefaultFormat string `json:"default_format" env:"CABINET_FORMAT"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Catalog: CatalogConfig{},
		Pricing: PricingConfig{
			DefaultCurrency: types.CurrencyUSD,
			BoundsMode:      string(types.BoundsClamp),
		},
		Server: ServerConfig{
			// The original calculator served on 8501
			Addr:                ":8501",
			ReadTimeoutSeconds:  10,
			WriteTimeoutSeconds: 10,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file, then applies environment
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, config); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if err := env.Parse(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
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
