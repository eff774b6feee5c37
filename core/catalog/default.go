// Package catalog - Embedded default reference data
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/stevenbusse/BatteryPricePro/core/types"
)

// DefaultVersion identifies the embedded reference data release
const DefaultVersion = "2025.1"

// Default returns the embedded reference catalog: fifteen
// preconfigured cabinet models across the 2h, 4h, and 6h backup
// classes. The embedded data always validates, so construction
// cannot fail.
func Default() *Catalog {
	c, err := New(defaultSpec())
	if err != nil {
		panic("embedded default catalog is invalid: " + err.Error())
	}
	return c
}

func defaultSpec() Spec {
	return Spec{
		Version:       DefaultVersion,
		Currency:      types.CurrencyUSD,
		TariffPercent: decimal.NewFromFloat(64.5),
		Module: ModuleSpec{
			SizeKWh:    decimal.NewFromFloat(10.24),
			MaxPowerKW: decimal.NewFromInt(90),
		},
		Classes: []types.CabinetClass{
			{
				ID:          "2h",
				Label:       "2-hour backup",
				BackupHours: decimal.NewFromInt(2),
				Models: []types.Model{
					model("Model 1", 10, 20, 15000),
					model("Model 2", 15, 30, 21000),
					model("Model 3", 20, 40, 27000),
					model("Model 4", 25, 50, 32500),
					model("Model 5", 30, 60, 38000),
				},
			},
			{
				ID:          "4h",
				Label:       "4-hour backup",
				BackupHours: decimal.NewFromInt(4),
				Models: []types.Model{
					model("Model 6", 10, 40, 20000),
					model("Model 7", 15, 60, 28000),
					model("Model 8", 20, 80, 36000),
					model("Model 9", 25, 100, 44000),
					model("Model 10", 30, 120, 52000),
				},
			},
			{
				ID:          "6h",
				Label:       "6-hour backup",
				BackupHours: decimal.NewFromInt(6),
				Models: []types.Model{
					model("Model 11", 10, 60, 24000),
					model("Model 12", 15, 90, 35000),
					model("Model 13", 20, 120, 46000),
					model("Model 14", 25, 150, 57000),
					model("Model 15", 30, 180, 68000),
				},
			},
		},
	}
}

func model(name string, kw, kwh, price int64) types.Model {
	return types.Model{
		Name:        name,
		PowerKW:     decimal.NewFromInt(kw),
		CapacityKWh: decimal.NewFromInt(kwh),
		Price:       decimal.NewFromInt(price),
	}
}
