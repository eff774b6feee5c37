// Package cmd - quote command
package cmd

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stevenbusse/BatteryPricePro/core/catalog"
	"github.com/stevenbusse/BatteryPricePro/core/output"
	"github.com/stevenbusse/BatteryPricePro/core/pricing"
	"github.com/stevenbusse/BatteryPricePro/core/types"
	"github.com/stevenbusse/BatteryPricePro/internal/config"
	"github.com/stevenbusse/BatteryPricePro/internal/logging"
)

var (
	quoteClass    string
	quoteKWh      float64
	quoteKW       float64
	quoteTariff   float64
	quoteNoTariff bool
	quoteBounds   string
	quoteFormat   string
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price a custom cabinet configuration",
	Long: `Estimate the price of a custom battery cabinet configuration.

The requested capacity is interpolated over the catalog's
preconfigured models for the selected cabinet class.

Examples:
  cabinet-cost quote --class 4h --kwh 80
  cabinet-cost quote --class 2h --kwh 45 --kw 20
  cabinet-cost quote --class 6h --kwh 100 --tariff 25
  cabinet-cost quote --class 6h --kwh 200 --bounds strict`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&quoteClass, "class", "c", "", "cabinet class (e.g. 2h, 4h, 6h)")
	quoteCmd.Flags().Float64VarP(&quoteKWh, "kwh", "e", 0, "requested energy capacity in kWh")
	quoteCmd.Flags().Float64VarP(&quoteKW, "kw", "p", 0, "requested power in kW (optional)")
	quoteCmd.Flags().Float64VarP(&quoteTariff, "tariff", "t", -1, "override the tariff rate in percent")
	quoteCmd.Flags().BoolVar(&quoteNoTariff, "no-tariff", false, "exclude the tariff from the total")
	quoteCmd.Flags().StringVarP(&quoteBounds, "bounds", "b", "", "out-of-range policy (clamp, strict)")
	quoteCmd.Flags().StringVarP(&quoteFormat, "format", "f", "", "output format (cli, json, markdown)")

	_ = quoteCmd.MarkFlagRequired("class")
	_ = quoteCmd.MarkFlagRequired("kwh")
}

func runQuote(cmd *cobra.Command, args []string) error {
	engine, err := buildEngine()
	if err != nil {
		return err
	}

	query := types.Query{
		Configuration: quoteClass,
		CapacityKWh:   decimal.NewFromFloat(quoteKWh),
		ExcludeTariff: quoteNoTariff,
		Bounds:        types.BoundsMode(quoteBounds),
	}
	if quoteKW > 0 {
		query.PowerKW = decimal.NewFromFloat(quoteKW)
	}
	if quoteTariff >= 0 {
		rate := decimal.NewFromFloat(quoteTariff)
		query.TariffPercent = &rate
	}

	quote, err := engine.Quote(query)
	if err != nil {
		return err
	}

	formatter, err := output.New(resolveFormat(quoteFormat))
	if err != nil {
		return err
	}
	return formatter.RenderQuote(os.Stdout, quote)
}

// buildEngine loads the configured catalog and constructs the engine
func buildEngine() (*pricing.Engine, error) {
	cfg := config.Get()

	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	opts := pricing.Options{
		Bounds: types.BoundsMode(cfg.Pricing.BoundsMode),
	}
	if cfg.Catalog.ModuleSizeKWh > 0 {
		opts.ModuleSizeKWh = decimal.NewFromFloat(cfg.Catalog.ModuleSizeKWh)
	}
	return pricing.NewEngine(cat, opts), nil
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", cfg.Catalog.Path, err)
	}
	logging.Info("loaded catalog",
		zap.String("path", cfg.Catalog.Path),
		zap.String("version", cat.Version()),
		zap.String("hash", cat.Hash()[:12]))
	return cat, nil
}

func resolveFormat(flag string) output.Format {
	if flag != "" {
		return output.Format(flag)
	}
	if f := config.Get().Output.DefaultFormat; f != "" {
		return output.Format(f)
	}
	return output.FormatCLI
}
