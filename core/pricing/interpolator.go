// Package pricing - Centralized pricing math
// All price arithmetic lives here. Callers declare intent, not do math.
// The interpolator is a pure function over the immutable catalog:
// no side effects, no rounding, full decimal precision.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/stevenbusse/BatteryPricePro/core/catalog"
	"github.com/stevenbusse/BatteryPricePro/core/types"
	"github.com/stevenbusse/BatteryPricePro/internal/errors"
)

// Interpolator estimates prices by piecewise-linear interpolation over
// the catalog's price points
type Interpolator struct {
	catalog *catalog.Catalog
}

// NewInterpolator creates an interpolator over a frozen catalog
func NewInterpolator(cat *catalog.Catalog) *Interpolator {
	return &Interpolator{catalog: cat}
}

// Estimate maps a requested capacity to an estimated price for one
// configuration.
//
// Exact matches return the table price unchanged. Capacities between
// two anchors interpolate linearly. Capacities outside the table's
// domain follow the bounds mode: BoundsClamp snaps to the boundary
// point, BoundsStrict rejects with OUT_OF_RANGE.
func (i *Interpolator) Estimate(configuration string, capacity decimal.Decimal, mode types.BoundsMode) (*types.Estimate, error) {
	if !capacity.IsPositive() {
		return nil, errors.Inputf("capacity must be positive, got %s kWh", capacity)
	}
	if !mode.IsValid() {
		return nil, errors.Inputf("unknown bounds mode: %s", mode)
	}

	points, err := i.catalog.Points(configuration)
	if err != nil {
		return nil, err
	}

	min := points[0]
	max := points[len(points)-1]

	// Below the hull
	if capacity.LessThan(min.CapacityKWh) {
		if mode == types.BoundsStrict {
			return nil, outOfRange(configuration, capacity, min, max)
		}
		return &types.Estimate{
			Price:  min.Price,
			Method: types.MethodClamped,
			Lower:  min,
			Upper:  min,
		}, nil
	}

	// Above the hull
	if capacity.GreaterThan(max.CapacityKWh) {
		if mode == types.BoundsStrict {
			return nil, outOfRange(configuration, capacity, min, max)
		}
		return &types.Estimate{
			Price:  max.Price,
			Method: types.MethodClamped,
			Lower:  max,
			Upper:  max,
		}, nil
	}

	// Within the hull: find the bracketing pair
	lo := points[0]
	for _, p := range points {
		if p.CapacityKWh.Equal(capacity) {
			return &types.Estimate{
				Price:  p.Price,
				Method: types.MethodExact,
				Lower:  p,
				Upper:  p,
			}, nil
		}
		if p.CapacityKWh.GreaterThan(capacity) {
			return &types.Estimate{
				Price:  lerp(lo, p, capacity),
				Method: types.MethodInterpolated,
				Lower:  lo,
				Upper:  p,
			}, nil
		}
		lo = p
	}

	// Unreachable: capacity <= max is handled above
	return nil, errors.Internal("interpolation fell through", nil)
}

// lerp computes lo.Price + (hi.Price - lo.Price) * (c - lo.Cap) / (hi.Cap - lo.Cap)
func lerp(lo, hi types.PricePoint, capacity decimal.Decimal) decimal.Decimal {
	span := hi.CapacityKWh.Sub(lo.CapacityKWh)
	fraction := capacity.Sub(lo.CapacityKWh).Div(span)
	return lo.Price.Add(hi.Price.Sub(lo.Price).Mul(fraction))
}

func outOfRange(configuration string, capacity decimal.Decimal, min, max types.PricePoint) error {
	return errors.OutOfRange(configuration, capacity.String(),
		min.CapacityKWh.String(), max.CapacityKWh.String())
}
