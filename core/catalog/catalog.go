// Package catalog - Authoritative battery cabinet reference catalog
// The catalog is the source of truth for interpolation: a validated,
// sorted, content-hashed set of price points per cabinet class.
// Once constructed it is never mutated.
package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/stevenbusse/BatteryPricePro/core/types"
	"github.com/stevenbusse/BatteryPricePro/internal/errors"
)

// ModuleSpec describes the battery module the catalog's cabinets are
// assembled from
type ModuleSpec struct {
	// SizeKWh is the fixed per-module energy capacity
	SizeKWh decimal.Decimal `json:"size_kwh" yaml:"size_kwh"`

	// MaxPowerKW is the maximum power one module supports
	MaxPowerKW decimal.Decimal `json:"max_power_kw" yaml:"max_power_kw"`
}

// Spec is the raw input to catalog construction. Loaders produce a
// Spec; New validates and freezes it.
type Spec struct {
	// Version identifies the reference data release
	Version string `json:"version" yaml:"version"`

	// Currency is the currency all prices are quoted in
	Currency types.Currency `json:"currency" yaml:"currency"`

	// TariffPercent is the tariff rate baked into catalog prices
	TariffPercent decimal.Decimal `json:"tariff_percent" yaml:"tariff_percent"`

	// Module describes the battery module
	Module ModuleSpec `json:"module" yaml:"module"`

	// Classes are the cabinet classes with their priced models
	Classes []types.CabinetClass `json:"classes" yaml:"classes"`
}

// Catalog is the immutable reference table. All fields are unexported;
// reads go through accessors, so concurrent use needs no locking.
type Catalog struct {
	version       string
	currency      types.Currency
	tariffPercent decimal.Decimal
	module        ModuleSpec
	classes       map[string]*classTable
	order         []string
	hash          string
}

// classTable holds one class and its sorted, deduplicated price points
type classTable struct {
	class  types.CabinetClass
	points []types.PricePoint
}

// New validates a Spec and constructs the frozen catalog.
// Validation enforces: non-empty unique class IDs, at least one model
// per class, positive capacities and prices, and no conflicting
// duplicate capacities within a class. Each class's points are sorted
// ascending by capacity; equal-price duplicates collapse to one point.
func New(spec Spec) (*Catalog, error) {
	if len(spec.Classes) == 0 {
		return nil, errors.New(errors.TypeInput, "catalog has no cabinet classes")
	}
	if spec.Currency == "" {
		spec.Currency = types.CurrencyUSD
	}
	if !spec.Currency.IsValid() {
		return nil, errors.Inputf("unknown currency: %s", spec.Currency)
	}
	if spec.TariffPercent.IsNegative() {
		return nil, errors.Inputf("tariff percent must not be negative, got %s", spec.TariffPercent)
	}
	if !spec.Module.SizeKWh.IsPositive() {
		return nil, errors.Inputf("module size must be positive, got %s kWh", spec.Module.SizeKWh)
	}

	c := &Catalog{
		version:       spec.Version,
		currency:      spec.Currency,
		tariffPercent: spec.TariffPercent,
		module:        spec.Module,
		classes:       make(map[string]*classTable, len(spec.Classes)),
	}

	for _, class := range spec.Classes {
		if class.ID == "" {
			return nil, errors.New(errors.TypeInput, "cabinet class with empty ID")
		}
		if _, dup := c.classes[class.ID]; dup {
			return nil, errors.Inputf("duplicate cabinet class ID: %s", class.ID)
		}
		points, err := buildPoints(class)
		if err != nil {
			return nil, err
		}
		c.classes[class.ID] = &classTable{class: class, points: points}
		c.order = append(c.order, class.ID)
	}

	sort.Strings(c.order)
	hash, err := contentHash(spec, c.order)
	if err != nil {
		return nil, errors.Internal("failed to fingerprint catalog", err)
	}
	c.hash = hash
	return c, nil
}

// buildPoints turns a class's models into sorted interpolation anchors
func buildPoints(class types.CabinetClass) ([]types.PricePoint, error) {
	if len(class.Models) == 0 {
		return nil, errors.EmptyTable(class.ID)
	}

	points := make([]types.PricePoint, 0, len(class.Models))
	for _, m := range class.Models {
		if !m.CapacityKWh.IsPositive() {
			return nil, errors.Inputf("class %s model %s: capacity must be positive, got %s kWh",
				class.ID, m.Name, m.CapacityKWh)
		}
		if !m.Price.IsPositive() {
			return nil, errors.Inputf("class %s model %s: price must be positive, got %s",
				class.ID, m.Name, m.Price)
		}
		points = append(points, types.PricePoint{
			Model:       m.Name,
			CapacityKWh: m.CapacityKWh,
			Price:       m.Price,
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].CapacityKWh.LessThan(points[j].CapacityKWh)
	})

	// Collapse duplicate capacities. Equal prices collapse silently;
	// conflicting prices make the table ambiguous and are rejected.
	deduped := points[:1]
	for _, p := range points[1:] {
		last := deduped[len(deduped)-1]
		if p.CapacityKWh.Equal(last.CapacityKWh) {
			if !p.Price.Equal(last.Price) {
				return nil, errors.Inputf("class %s: conflicting prices %s and %s at %s kWh",
					class.ID, last.Price, p.Price, p.CapacityKWh)
			}
			continue
		}
		deduped = append(deduped, p)
	}

	return deduped, nil
}

// contentHash fingerprints the exact reference data, with classes in
// stable ID order so the hash is independent of input ordering
func contentHash(spec Spec, order []string) (string, error) {
	byID := make(map[string]types.CabinetClass, len(spec.Classes))
	for _, class := range spec.Classes {
		byID[class.ID] = class
	}
	ordered := Spec{
		Version:       spec.Version,
		Currency:      spec.Currency,
		TariffPercent: spec.TariffPercent,
		Module:        spec.Module,
	}
	for _, id := range order {
		ordered.Classes = append(ordered.Classes, byID[id])
	}
	data, err := json.Marshal(ordered)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Version returns the reference data version
func (c *Catalog) Version() string {
	return c.version
}

// Currency returns the catalog currency
func (c *Catalog) Currency() types.Currency {
	return c.currency
}

// TariffPercent returns the tariff rate baked into catalog prices
func (c *Catalog) TariffPercent() decimal.Decimal {
	return c.tariffPercent
}

// Module returns the battery module spec
func (c *Catalog) Module() ModuleSpec {
	return c.module
}

// Hash returns the content hash of the reference data
func (c *Catalog) Hash() string {
	return c.hash
}

// ClassIDs returns the class IDs in stable sorted order
func (c *Catalog) ClassIDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Class returns one cabinet class by ID
func (c *Catalog) Class(id string) (types.CabinetClass, bool) {
	if t, ok := c.classes[id]; ok {
		return t.class, true
	}
	return types.CabinetClass{}, false
}

// Classes returns all cabinet classes in stable sorted order
func (c *Catalog) Classes() []types.CabinetClass {
	out := make([]types.CabinetClass, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.classes[id].class)
	}
	return out
}

// Points returns the sorted interpolation anchors for a configuration.
// The returned slice is shared and must not be modified.
func (c *Catalog) Points(configuration string) ([]types.PricePoint, error) {
	t, ok := c.classes[configuration]
	if !ok {
		return nil, errors.UnknownConfiguration(configuration)
	}
	if len(t.points) == 0 {
		return nil, errors.EmptyTable(configuration)
	}
	return t.points, nil
}

// Domain returns the interpolation domain (min and max known
// capacity) for a configuration
func (c *Catalog) Domain(configuration string) (min, max decimal.Decimal, err error) {
	points, err := c.Points(configuration)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return points[0].CapacityKWh, points[len(points)-1].CapacityKWh, nil
}
