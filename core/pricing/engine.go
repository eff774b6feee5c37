// Package pricing - Quote engine
// Wraps the interpolator with module planning and tariff arithmetic.
// Quotes are deterministic: identical queries against the same catalog
// yield identical quotes.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/stevenbusse/BatteryPricePro/core/catalog"
	"github.com/stevenbusse/BatteryPricePro/core/types"
	"github.com/stevenbusse/BatteryPricePro/internal/errors"
)

var one = decimal.NewFromInt(1)
var hundred = decimal.NewFromInt(100)

// Options configures engine defaults. Zero values fall back to
// BoundsClamp and the catalog's module size.
type Options struct {
	// Bounds is the default out-of-range policy for queries that do
	// not specify one
	Bounds types.BoundsMode

	// ModuleSizeKWh overrides the catalog's module size
	ModuleSizeKWh decimal.Decimal
}

// Engine produces complete quotes from pricing queries
type Engine struct {
	catalog *catalog.Catalog
	interp  *Interpolator
	opts    Options
}

// NewEngine creates a quote engine over a frozen catalog
func NewEngine(cat *catalog.Catalog, opts Options) *Engine {
	if opts.Bounds == "" {
		opts.Bounds = types.BoundsClamp
	}
	if opts.ModuleSizeKWh.IsZero() {
		opts.ModuleSizeKWh = cat.Module().SizeKWh
	}
	return &Engine{
		catalog: cat,
		interp:  NewInterpolator(cat),
		opts:    opts,
	}
}

// Catalog returns the engine's reference catalog
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Quote answers a pricing query.
//
// The interpolated table price is tariff-inclusive at the catalog
// rate. The tariff breakdown derives the tariff-free base from that
// rate; a query may override the rate (re-applied to the base) or
// exclude the tariff entirely. Prices carry full precision; rounding
// happens only at the presentation boundary.
func (e *Engine) Quote(q types.Query) (*types.Quote, error) {
	if !q.CapacityKWh.IsPositive() {
		return nil, errors.Inputf("capacity must be positive, got %s kWh", q.CapacityKWh)
	}
	if q.PowerKW.IsNegative() {
		return nil, errors.Inputf("power must not be negative, got %s kW", q.PowerKW)
	}
	maxPower := e.catalog.Module().MaxPowerKW
	if q.PowerKW.IsPositive() && maxPower.IsPositive() && q.PowerKW.GreaterThan(maxPower) {
		return nil, errors.Inputf("power %s kW exceeds the module rating of %s kW", q.PowerKW, maxPower)
	}
	if q.TariffPercent != nil && q.TariffPercent.IsNegative() {
		return nil, errors.Inputf("tariff percent must not be negative, got %s", q.TariffPercent)
	}

	bounds := q.Bounds
	if bounds == "" {
		bounds = e.opts.Bounds
	}

	est, err := e.interp.Estimate(q.Configuration, q.CapacityKWh, bounds)
	if err != nil {
		return nil, err
	}

	var assumptions []string
	if est.Method == types.MethodClamped {
		min, max, _ := e.catalog.Domain(q.Configuration)
		assumptions = append(assumptions, fmt.Sprintf(
			"requested capacity %s kWh is outside the known range [%s, %s]; priced at the nearest boundary model %s",
			q.CapacityKWh, min, max, est.Lower.Model))
	}

	tariff, tariffAssumptions := e.applyTariff(est.Price, q)
	assumptions = append(assumptions, tariffAssumptions...)

	modules := e.planModules(q.CapacityKWh, tariff.TotalPrice)

	class, _ := e.catalog.Class(q.Configuration)
	return &types.Quote{
		Configuration:  q.Configuration,
		ClassLabel:     class.Label,
		RequestedKWh:   q.CapacityKWh,
		RequestedKW:    q.PowerKW,
		Estimate:       *est,
		Tariff:         tariff,
		Modules:        modules,
		TotalPrice:     tariff.TotalPrice,
		Currency:       e.catalog.Currency(),
		Assumptions:    assumptions,
		CatalogVersion: e.catalog.Version(),
		CatalogHash:    e.catalog.Hash(),
	}, nil
}

// applyTariff splits the tariff-inclusive table price into base and
// tariff, honoring exclusion and rate overrides
func (e *Engine) applyTariff(tablePrice decimal.Decimal, q types.Query) (types.TariffBreakdown, []string) {
	catalogRate := e.catalog.TariffPercent()
	base := tablePrice.Div(one.Add(catalogRate.Div(hundred)))

	rate := catalogRate
	var assumptions []string
	if q.TariffPercent != nil {
		rate = *q.TariffPercent
		if !rate.Equal(catalogRate) {
			assumptions = append(assumptions, fmt.Sprintf(
				"tariff rate overridden to %s%% (catalog rate %s%%)", rate, catalogRate))
		}
	}

	if q.ExcludeTariff {
		return types.TariffBreakdown{
			Included:     false,
			RatePercent:  rate,
			BasePrice:    base,
			TariffAmount: decimal.Zero,
			TotalPrice:   base,
		}, assumptions
	}

	// With the untouched catalog rate the table price passes through
	// exactly, preserving exact-match idempotence.
	total := tablePrice
	if !rate.Equal(catalogRate) {
		total = base.Mul(one.Add(rate.Div(hundred)))
	}

	return types.TariffBreakdown{
		Included:     true,
		RatePercent:  rate,
		BasePrice:    base,
		TariffAmount: total.Sub(base),
		TotalPrice:   total,
	}, assumptions
}

// planModules sizes the module count for the requested capacity and
// prices each module at the quoted total
func (e *Engine) planModules(capacity, total decimal.Decimal) types.ModulePlan {
	size := e.opts.ModuleSizeKWh
	needed := capacity.Div(size).Ceil().IntPart()
	if needed < 1 {
		needed = 1
	}
	return types.ModulePlan{
		Needed:         needed,
		SizeKWh:        size,
		PricePerModule: total.Div(decimal.NewFromInt(needed)),
	}
}
