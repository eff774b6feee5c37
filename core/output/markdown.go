// Package output - Markdown report rendering
package output

import (
	"fmt"
	"io"

	"github.com/stevenbusse/BatteryPricePro/core/catalog"
	"github.com/stevenbusse/BatteryPricePro/core/types"
)

type markdownFormatter struct{}

func (f *markdownFormatter) Format() Format {
	return FormatMarkdown
}

func (f *markdownFormatter) RenderQuote(w io.Writer, quote *types.Quote) error {
	fmt.Fprintf(w, "## Battery Cabinet Quote\n\n")
	fmt.Fprintf(w, "**Configuration:** %s (%s)  \n", quote.Configuration, quote.ClassLabel)
	fmt.Fprintf(w, "**Requested capacity:** %s kWh\n\n", quote.RequestedKWh)

	fmt.Fprintln(w, "| Item | Value |")
	fmt.Fprintln(w, "|------|-------|")
	fmt.Fprintf(w, "| Total price | %s |\n", money(quote.TotalPrice))
	fmt.Fprintf(w, "| Base price (no tariff) | %s |\n", money(quote.Tariff.BasePrice))
	fmt.Fprintf(w, "| Tariff amount | %s |\n", money(quote.Tariff.TariffAmount))
	fmt.Fprintf(w, "| Tariff rate | %s%% |\n", quote.Tariff.RatePercent.StringFixed(2))
	fmt.Fprintf(w, "| Modules needed | %d x %s kWh |\n", quote.Modules.Needed, quote.Modules.SizeKWh)
	fmt.Fprintf(w, "| Price per module | %s |\n", money(quote.Modules.PricePerModule))
	fmt.Fprintf(w, "| Pricing method | %s |\n", quote.Estimate.Method)
	fmt.Fprintf(w, "| Basis | %s |\n", basisLine(quote.Estimate))

	if len(quote.Assumptions) > 0 {
		fmt.Fprintf(w, "\n### Assumptions\n\n")
		for _, a := range quote.Assumptions {
			fmt.Fprintf(w, "- %s\n", a)
		}
	}

	fmt.Fprintf(w, "\n_Catalog %s (%s)_\n", quote.CatalogVersion, shortHash(quote.CatalogHash))
	return nil
}

func (f *markdownFormatter) RenderCatalog(w io.Writer, cat *catalog.Catalog) error {
	fmt.Fprintf(w, "## Battery Cabinet Catalog %s\n\n", cat.Version())
	fmt.Fprintf(w, "Currency %s, tariff %s%%, module size %s kWh.\n\n",
		cat.Currency(), cat.TariffPercent().StringFixed(1), cat.Module().SizeKWh)

	fmt.Fprintln(w, "| Class | Backup | Model | Power (kW) | Capacity (kWh) | Price |")
	fmt.Fprintln(w, "|-------|--------|-------|------------|----------------|-------|")
	for _, class := range cat.Classes() {
		for _, m := range class.Models {
			fmt.Fprintf(w, "| %s | %sh | %s | %s | %s | %s |\n",
				class.ID, class.BackupHours, m.Name, m.PowerKW, m.CapacityKWh, money(m.Price))
		}
	}
	return nil
}
