// Package output provides output formatting interfaces.
// This package produces human and machine-readable renderings of
// quotes and catalogs. Currency rounding to two decimal places
// happens here and nowhere else.
package output

import (
	"io"

	"github.com/shopspring/decimal"

	"github.com/stevenbusse/BatteryPricePro/core/catalog"
	"github.com/stevenbusse/BatteryPricePro/core/types"
	"github.com/stevenbusse/BatteryPricePro/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// IsValid checks if the format is known
func (f Format) IsValid() bool {
	switch f {
	case FormatCLI, FormatJSON, FormatMarkdown:
		return true
	default:
		return false
	}
}

// Formatter renders quotes and catalog listings in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// RenderQuote writes a quote
	RenderQuote(w io.Writer, quote *types.Quote) error

	// RenderCatalog writes a catalog listing
	RenderCatalog(w io.Writer, cat *catalog.Catalog) error
}

// New returns the formatter for a format type
func New(format Format) (Formatter, error) {
	switch format {
	case FormatCLI:
		return &cliFormatter{}, nil
	case FormatJSON:
		return &jsonFormatter{}, nil
	case FormatMarkdown:
		return &markdownFormatter{}, nil
	default:
		return nil, errors.Inputf("unknown output format: %s", format)
	}
}

// money renders a price at currency precision
func money(v decimal.Decimal) string {
	return "$" + v.StringFixed(2)
}
