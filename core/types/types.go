// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// IsValid checks if the currency is a known currency
func (c Currency) IsValid() bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP:
		return true
	default:
		return false
	}
}

// BoundsMode controls what happens when a requested capacity falls
// outside the catalog's interpolation domain for a configuration
type BoundsMode string

const (
	// BoundsClamp snaps out-of-range capacities to the nearest boundary
	// point and records an assumption on the quote
	BoundsClamp BoundsMode = "clamp"

	// BoundsStrict rejects out-of-range capacities with OUT_OF_RANGE
	BoundsStrict BoundsMode = "strict"
)

// String returns the string representation
func (m BoundsMode) String() string {
	return string(m)
}

// IsValid checks if the mode is a known bounds mode
func (m BoundsMode) IsValid() bool {
	switch m {
	case BoundsClamp, BoundsStrict:
		return true
	default:
		return false
	}
}

// Method identifies how an estimate's price was derived
type Method string

const (
	// MethodExact means the requested capacity matched a table point
	MethodExact Method = "exact"

	// MethodInterpolated means the price was linearly interpolated
	// between the two adjacent table points
	MethodInterpolated Method = "interpolated"

	// MethodClamped means the capacity fell outside the table and was
	// snapped to the boundary point
	MethodClamped Method = "clamped"
)

// String returns the string representation
func (m Method) String() string {
	return string(m)
}
