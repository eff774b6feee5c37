// Package output - JSON rendering
package output

import (
	"encoding/json"
	"io"

	"github.com/stevenbusse/BatteryPricePro/core/catalog"
	"github.com/stevenbusse/BatteryPricePro/core/types"
)

type jsonFormatter struct{}

func (f *jsonFormatter) Format() Format {
	return FormatJSON
}

func (f *jsonFormatter) RenderQuote(w io.Writer, quote *types.Quote) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(RoundQuote(quote))
}

func (f *jsonFormatter) RenderCatalog(w io.Writer, cat *catalog.Catalog) error {
	listing := struct {
		Version       string               `json:"version"`
		Hash          string               `json:"hash"`
		Currency      types.Currency       `json:"currency"`
		TariffPercent string               `json:"tariff_percent"`
		Module        catalog.ModuleSpec   `json:"module"`
		Classes       []types.CabinetClass `json:"classes"`
	}{
		Version:       cat.Version(),
		Hash:          cat.Hash(),
		Currency:      cat.Currency(),
		TariffPercent: cat.TariffPercent().String(),
		Module:        cat.Module(),
		Classes:       cat.Classes(),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(listing)
}

// RoundQuote copies a quote with every price rounded to currency
// precision. The engine's full-precision quote is left untouched.
func RoundQuote(quote *types.Quote) *types.Quote {
	rounded := *quote
	rounded.TotalPrice = quote.TotalPrice.Round(2)
	rounded.Estimate.Price = quote.Estimate.Price.Round(2)
	rounded.Tariff.BasePrice = quote.Tariff.BasePrice.Round(2)
	rounded.Tariff.TariffAmount = quote.Tariff.TariffAmount.Round(2)
	rounded.Tariff.TotalPrice = quote.Tariff.TotalPrice.Round(2)
	rounded.Modules.PricePerModule = quote.Modules.PricePerModule.Round(2)
	return &rounded
}
