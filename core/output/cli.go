// Package output - CLI table rendering
package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/stevenbusse/BatteryPricePro/core/catalog"
	"github.com/stevenbusse/BatteryPricePro/core/types"
)

type cliFormatter struct{}

func (f *cliFormatter) Format() Format {
	return FormatCLI
}

func (f *cliFormatter) RenderQuote(w io.Writer, quote *types.Quote) error {
	fmt.Fprintf(w, "Quote: %s (%s), %s kWh requested\n\n",
		quote.Configuration, quote.ClassLabel, quote.RequestedKWh)

	table := tablewriter.NewWriter(w)
	table.Header("Item", "Value")
	rows := [][]string{
		{"Total price", money(quote.TotalPrice)},
		{"Base price (no tariff)", money(quote.Tariff.BasePrice)},
		{"Tariff amount", money(quote.Tariff.TariffAmount)},
		{"Tariff rate", quote.Tariff.RatePercent.StringFixed(2) + "%"},
		{"Modules needed", fmt.Sprintf("%d x %s kWh", quote.Modules.Needed, quote.Modules.SizeKWh)},
		{"Price per module", money(quote.Modules.PricePerModule)},
		{"Pricing method", quote.Estimate.Method.String()},
		{"Basis", basisLine(quote.Estimate)},
	}
	for _, row := range rows {
		table.Append(row)
	}
	if err := table.Render(); err != nil {
		return err
	}

	if !quote.Tariff.Included {
		fmt.Fprintln(w, "\nTariff excluded from the quoted total.")
	}
	for _, a := range quote.Assumptions {
		fmt.Fprintf(w, "\nAssumption: %s\n", a)
	}
	fmt.Fprintf(w, "\nCatalog %s (%s)\n", quote.CatalogVersion, shortHash(quote.CatalogHash))
	return nil
}

func (f *cliFormatter) RenderCatalog(w io.Writer, cat *catalog.Catalog) error {
	fmt.Fprintf(w, "Catalog %s, currency %s, tariff %s%%, module %s kWh\n\n",
		cat.Version(), cat.Currency(), cat.TariffPercent().StringFixed(1), cat.Module().SizeKWh)

	table := tablewriter.NewWriter(w)
	table.Header("Class", "Backup", "Model", "Power (kW)", "Capacity (kWh)", "Price")
	for _, class := range cat.Classes() {
		for _, m := range class.Models {
			table.Append([]string{
				class.ID,
				class.BackupHours.String() + "h",
				m.Name,
				m.PowerKW.String(),
				m.CapacityKWh.String(),
				money(m.Price),
			})
		}
	}
	return table.Render()
}

func basisLine(est types.Estimate) string {
	if est.Lower.Model == est.Upper.Model {
		return fmt.Sprintf("%s (%s kWh)", est.Lower.Model, est.Lower.CapacityKWh)
	}
	return fmt.Sprintf("%s (%s kWh) .. %s (%s kWh)",
		est.Lower.Model, est.Lower.CapacityKWh, est.Upper.Model, est.Upper.CapacityKWh)
}

func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
