// Package catalog - Catalog file loading
// Catalog files carry the same reference data as the embedded default
// and go through the same validation in New.
package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/stevenbusse/BatteryPricePro/core/types"
	"github.com/stevenbusse/BatteryPricePro/internal/errors"
)

// fileSpec is the on-disk catalog schema. Numeric fields are plain
// numbers in the file and converted to decimal during assembly.
type fileSpec struct {
	Version       string      `json:"version" yaml:"version"`
	Currency      string      `json:"currency" yaml:"currency"`
	TariffPercent float64     `json:"tariff_percent" yaml:"tariff_percent"`
	Module        fileModule  `json:"module" yaml:"module"`
	Classes       []fileClass `json:"classes" yaml:"classes"`
}

type fileModule struct {
	SizeKWh    float64 `json:"size_kwh" yaml:"size_kwh"`
	MaxPowerKW float64 `json:"max_power_kw" yaml:"max_power_kw"`
}

type fileClass struct {
	ID          string      `json:"id" yaml:"id"`
	Label       string      `json:"label" yaml:"label"`
	BackupHours float64     `json:"backup_hours" yaml:"backup_hours"`
	Voltage     int         `json:"voltage" yaml:"voltage"`
	Models      []fileModel `json:"models" yaml:"models"`
}

type fileModel struct {
	Name        string  `json:"name" yaml:"name"`
	PowerKW     float64 `json:"power_kw" yaml:"power_kw"`
	CapacityKWh float64 `json:"capacity_kwh" yaml:"capacity_kwh"`
	Price       float64 `json:"price" yaml:"price"`
}

// LoadFile reads a catalog file and constructs the validated catalog.
// The format is chosen by extension: .json, .yaml/.yml, or .hcl.
func LoadFile(path string) (*Catalog, error) {
	spec, err := LoadSpec(path)
	if err != nil {
		return nil, err
	}
	return New(spec)
}

// LoadSpec reads a catalog file into an unvalidated Spec
func LoadSpec(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, errors.Parsing("failed to read catalog file", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		var fs fileSpec
		if err := json.Unmarshal(data, &fs); err != nil {
			return Spec{}, errors.Parsing("invalid JSON catalog", err)
		}
		return fs.toSpec(), nil
	case ".yaml", ".yml":
		var fs fileSpec
		if err := yaml.Unmarshal(data, &fs); err != nil {
			return Spec{}, errors.Parsing("invalid YAML catalog", err)
		}
		return fs.toSpec(), nil
	case ".hcl":
		return parseHCLSpec(data, path)
	default:
		return Spec{}, errors.Inputf("unsupported catalog format: %s", filepath.Ext(path))
	}
}

func (fs fileSpec) toSpec() Spec {
	spec := Spec{
		Version:       fs.Version,
		Currency:      types.Currency(fs.Currency),
		TariffPercent: decimal.NewFromFloat(fs.TariffPercent),
		Module: ModuleSpec{
			SizeKWh:    decimal.NewFromFloat(fs.Module.SizeKWh),
			MaxPowerKW: decimal.NewFromFloat(fs.Module.MaxPowerKW),
		},
	}
	for _, fc := range fs.Classes {
		class := types.CabinetClass{
			ID:          fc.ID,
			Label:       fc.Label,
			BackupHours: decimal.NewFromFloat(fc.BackupHours),
			Voltage:     fc.Voltage,
		}
		for _, fm := range fc.Models {
			class.Models = append(class.Models, types.Model{
				Name:        fm.Name,
				PowerKW:     decimal.NewFromFloat(fm.PowerKW),
				CapacityKWh: decimal.NewFromFloat(fm.CapacityKWh),
				Price:       decimal.NewFromFloat(fm.Price),
			})
		}
		spec.Classes = append(spec.Classes, class)
	}
	return spec
}
