// Package types - Quote types
package types

import "github.com/shopspring/decimal"

// Query is a per-request pricing question. Queries carry no state and
// are discarded after the quote is produced.
type Query struct {
	// Configuration selects the cabinet class (must be a catalog class ID)
	Configuration string `json:"configuration"`

	// CapacityKWh is the requested energy capacity (must be positive)
	CapacityKWh decimal.Decimal `json:"capacity_kwh"`

	// PowerKW is the requested power (optional, zero = unspecified)
	PowerKW decimal.Decimal `json:"power_kw,omitempty"`

	// ExcludeTariff drops the tariff from the quoted total
	ExcludeTariff bool `json:"exclude_tariff,omitempty"`

	// TariffPercent overrides the catalog's tariff rate (nil = catalog rate)
	TariffPercent *decimal.Decimal `json:"tariff_percent,omitempty"`

	// Bounds selects the out-of-range policy (empty = engine default)
	Bounds BoundsMode `json:"bounds,omitempty"`
}

// Estimate is the interpolator's answer: a price plus the two table
// points it was derived from. Exact matches carry both points equal.
type Estimate struct {
	// Price is the estimated list price at the requested capacity,
	// tariff-inclusive at the catalog rate, full precision
	Price decimal.Decimal `json:"price"`

	// Method records how the price was derived
	Method Method `json:"method"`

	// Lower is the basis point at or below the requested capacity
	Lower PricePoint `json:"lower"`

	// Upper is the basis point at or above the requested capacity
	Upper PricePoint `json:"upper"`
}

// TariffBreakdown splits a quoted price into its tariff-free base and
// the tariff applied on top. TariffAmount is derived as
// TotalPrice - BasePrice, so the breakdown always sums exactly.
type TariffBreakdown struct {
	// Included reports whether the tariff is part of TotalPrice
	Included bool `json:"included"`

	// RatePercent is the applied tariff rate (e.g. 64.5)
	RatePercent decimal.Decimal `json:"rate_percent"`

	// BasePrice is the tariff-free price
	BasePrice decimal.Decimal `json:"base_price"`

	// TariffAmount is the tariff portion of TotalPrice
	TariffAmount decimal.Decimal `json:"tariff_amount"`

	// TotalPrice is the price after tariff handling
	TotalPrice decimal.Decimal `json:"total_price"`
}

// ModulePlan describes how many battery modules the requested capacity
// needs and what each one costs at the quoted total
type ModulePlan struct {
	// Needed is ceil(requested capacity / module size)
	Needed int64 `json:"needed"`

	// SizeKWh is the fixed per-module capacity used for the plan
	SizeKWh decimal.Decimal `json:"size_kwh"`

	// PricePerModule is TotalPrice / Needed
	PricePerModule decimal.Decimal `json:"price_per_module"`
}

// Quote is the complete answer to a Query. Quotes are deterministic:
// identical queries against the same catalog yield identical quotes.
type Quote struct {
	// Configuration is the resolved cabinet class ID
	Configuration string `json:"configuration"`

	// ClassLabel is the class's human-readable name
	ClassLabel string `json:"class_label,omitempty"`

	// RequestedKWh echoes the queried capacity
	RequestedKWh decimal.Decimal `json:"requested_kwh"`

	// RequestedKW echoes the queried power (zero = unspecified)
	RequestedKW decimal.Decimal `json:"requested_kw,omitempty"`

	// Estimate is the raw interpolation result
	Estimate Estimate `json:"estimate"`

	// Tariff is the tariff breakdown applied to the estimate
	Tariff TariffBreakdown `json:"tariff"`

	// Modules is the module plan for the requested capacity
	Modules ModulePlan `json:"modules"`

	// TotalPrice is the quoted price (mirrors Tariff.TotalPrice)
	TotalPrice decimal.Decimal `json:"total_price"`

	// Currency is the catalog's currency
	Currency Currency `json:"currency"`

	// Assumptions lists decisions the engine made on the caller's
	// behalf (clamping, tariff overrides)
	Assumptions []string `json:"assumptions,omitempty"`

	// CatalogVersion identifies the reference data version
	CatalogVersion string `json:"catalog_version"`

	// CatalogHash fingerprints the exact reference data used
	CatalogHash string `json:"catalog_hash"`
}
