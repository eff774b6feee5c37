// Package types - Reference catalog types
package types

import "github.com/shopspring/decimal"

// Model is a preconfigured battery cabinet model with a known price
type Model struct {
	// Name identifies the model (e.g. "Model 7")
	Name string `json:"name"`

	// PowerKW is the model's rated power output
	PowerKW decimal.Decimal `json:"power_kw"`

	// CapacityKWh is the model's energy capacity
	CapacityKWh decimal.Decimal `json:"capacity_kwh"`

	// Price is the model's list price, tariff-inclusive at the
	// catalog's tariff rate
	Price decimal.Decimal `json:"price"`
}

// CabinetClass is a priced product line sharing one interpolation curve.
// Classes partition the catalog by backup duration (e.g. 2h, 4h, 6h).
type CabinetClass struct {
	// ID is the configuration selector used in queries (e.g. "4h")
	ID string `json:"id"`

	// Label is a human-readable name
	Label string `json:"label"`

	// BackupHours is the backup duration this class is sized for
	BackupHours decimal.Decimal `json:"backup_hours"`

	// Voltage is the cabinet's voltage rating (informational)
	Voltage int `json:"voltage,omitempty"`

	// Models are the class's preconfigured models
	Models []Model `json:"models"`
}

// PricePoint is a single interpolation anchor: a known
// (capacity, price) pair within one configuration
type PricePoint struct {
	// Model names the catalog model this point came from
	Model string `json:"model"`

	// CapacityKWh is the interpolation axis value
	CapacityKWh decimal.Decimal `json:"capacity_kwh"`

	// Price is the known price at this capacity
	Price decimal.Decimal `json:"price"`
}
