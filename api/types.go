// Package api - API types for cabinet pricing
// These types define the contract for the /quote endpoint.
// The API is stateless, idempotent, and deterministic.
package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stevenbusse/BatteryPricePro/core/types"
)

// QuoteRequest is the input to POST /quote
type QuoteRequest struct {
	// Configuration selects the cabinet class (catalog class ID)
	Configuration string `json:"configuration"`

	// CapacityKWh is the requested energy capacity
	CapacityKWh decimal.Decimal `json:"capacity_kwh"`

	// PowerKW is the requested power (optional)
	PowerKW decimal.Decimal `json:"power_kw,omitempty"`

	// ExcludeTariff drops the tariff from the quoted total
	ExcludeTariff bool `json:"exclude_tariff,omitempty"`

	// TariffPercent overrides the catalog's tariff rate
	TariffPercent *decimal.Decimal `json:"tariff_percent,omitempty"`

	// Bounds selects the out-of-range policy ("clamp", "strict";
	// empty uses the server default)
	Bounds string `json:"bounds,omitempty"`
}

// QuoteResponse is the output of POST /quote
type QuoteResponse struct {
	// RequestID tracks this request
	RequestID string `json:"request_id"`

	// Timestamp is when the quote was produced
	Timestamp time.Time `json:"timestamp"`

	// Status is "success" or "error"
	Status string `json:"status"`

	// Quote is the priced result, rounded to currency precision
	Quote *types.Quote `json:"quote,omitempty"`

	// Error carries the failure detail when Status is "error"
	Error *ErrorDetail `json:"error,omitempty"`

	// Metadata contains execution context
	Metadata *ResponseMetadata `json:"metadata,omitempty"`
}

// ErrorDetail provides error information
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ResponseMetadata contains execution context
type ResponseMetadata struct {
	// CatalogVersion identifies the reference data release
	CatalogVersion string `json:"catalog_version"`

	// CatalogHash fingerprints the exact reference data
	CatalogHash string `json:"catalog_hash"`

	// EngineVersion is the server version
	EngineVersion string `json:"engine_version"`

	// DurationMs is the server-side processing time
	DurationMs int64 `json:"duration_ms"`
}

// ClassSummary describes one cabinet class for the form's selector
type ClassSummary struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	BackupHours string `json:"backup_hours"`
	MinKWh      string `json:"min_kwh"`
	MaxKWh      string `json:"max_kwh"`
	Models      int    `json:"models"`
}
