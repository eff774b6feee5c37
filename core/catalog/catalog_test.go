// Package catalog - Reference catalog tests
package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/stevenbusse/BatteryPricePro/core/types"
	"github.com/stevenbusse/BatteryPricePro/internal/errors"
)

func testSpec() Spec {
	return Spec{
		Version:       "test",
		Currency:      types.CurrencyUSD,
		TariffPercent: decimal.NewFromFloat(64.5),
		Module: ModuleSpec{
			SizeKWh:    decimal.NewFromFloat(10.24),
			MaxPowerKW: decimal.NewFromInt(90),
		},
		Classes: []types.CabinetClass{
			{
				ID:          "standard",
				Label:       "Standard",
				BackupHours: decimal.NewFromInt(4),
				Models: []types.Model{
					// Deliberately unsorted
					model("B", 20, 20, 1800),
					model("A", 10, 10, 1000),
				},
			},
		},
	}
}

func TestNewSortsPoints(t *testing.T) {
	cat, err := New(testSpec())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	points, err := cat.Points("standard")
	if err != nil {
		t.Fatalf("Points failed: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if !points[0].CapacityKWh.LessThan(points[1].CapacityKWh) {
		t.Errorf("points not sorted: %s, %s", points[0].CapacityKWh, points[1].CapacityKWh)
	}
	if points[0].Model != "A" {
		t.Errorf("expected lowest-capacity point to be model A, got %s", points[0].Model)
	}
}

func TestNewCollapsesEqualDuplicates(t *testing.T) {
	spec := testSpec()
	spec.Classes[0].Models = append(spec.Classes[0].Models, model("A2", 10, 10, 1000))

	cat, err := New(spec)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	points, _ := cat.Points("standard")
	if len(points) != 2 {
		t.Errorf("equal-price duplicate should collapse, got %d points", len(points))
	}
}

func TestNewRejectsConflictingDuplicates(t *testing.T) {
	spec := testSpec()
	spec.Classes[0].Models = append(spec.Classes[0].Models, model("A2", 10, 10, 1234))

	if _, err := New(spec); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("expected INPUT_ERROR for conflicting duplicate capacities, got %v", err)
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Spec)
	}{
		{"no classes", func(s *Spec) { s.Classes = nil }},
		{"empty class ID", func(s *Spec) { s.Classes[0].ID = "" }},
		{"no models", func(s *Spec) { s.Classes[0].Models = nil }},
		{"zero capacity", func(s *Spec) { s.Classes[0].Models[0].CapacityKWh = decimal.Zero }},
		{"negative price", func(s *Spec) { s.Classes[0].Models[0].Price = decimal.NewFromInt(-1) }},
		{"negative tariff", func(s *Spec) { s.TariffPercent = decimal.NewFromInt(-5) }},
		{"zero module size", func(s *Spec) { s.Module.SizeKWh = decimal.Zero }},
		{"bad currency", func(s *Spec) { s.Currency = "XYZ" }},
		{
			"duplicate class ID",
			func(s *Spec) { s.Classes = append(s.Classes, s.Classes[0]) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := testSpec()
			tt.mutate(&spec)
			if _, err := New(spec); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestUnknownConfiguration(t *testing.T) {
	cat, _ := New(testSpec())

	_, err := cat.Points("premium")
	if !errors.IsType(err, errors.TypeUnknownConfiguration) {
		t.Errorf("expected UNKNOWN_CONFIGURATION, got %v", err)
	}
}

func TestHashStableAcrossOrdering(t *testing.T) {
	spec := testSpec()
	spec.Classes = append(spec.Classes, types.CabinetClass{
		ID:          "extended",
		Label:       "Extended",
		BackupHours: decimal.NewFromInt(6),
		Models:      []types.Model{model("C", 10, 60, 24000)},
	})

	cat1, err := New(spec)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// Same data, classes in reverse order
	reversed := spec
	reversed.Classes = []types.CabinetClass{spec.Classes[1], spec.Classes[0]}
	cat2, err := New(reversed)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if cat1.Hash() != cat2.Hash() {
		t.Errorf("hash should be independent of class ordering: %s vs %s", cat1.Hash(), cat2.Hash())
	}
	if cat1.Hash() == "" {
		t.Error("hash is empty")
	}
}

func TestHashCoversReferenceData(t *testing.T) {
	cat1, err := New(testSpec())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	changed := testSpec()
	changed.Classes[0].Models[0].Price = decimal.NewFromInt(999)
	cat2, err := New(changed)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if cat1.Hash() == "" || cat2.Hash() == "" {
		t.Fatal("catalog hash is empty")
	}
	if cat1.Hash() == cat2.Hash() {
		t.Error("catalogs with different prices must not share a hash")
	}
}

func TestDefaultCatalog(t *testing.T) {
	cat := Default()

	ids := cat.ClassIDs()
	if len(ids) != 3 {
		t.Fatalf("expected 3 classes, got %d", len(ids))
	}

	total := 0
	for _, id := range ids {
		points, err := cat.Points(id)
		if err != nil {
			t.Fatalf("Points(%s) failed: %v", id, err)
		}
		total += len(points)
	}
	if total != 15 {
		t.Errorf("expected 15 models across classes, got %d", total)
	}

	// Spot-check a known anchor: Model 8, 4h class, 80 kWh at 36000
	points, _ := cat.Points("4h")
	found := false
	for _, p := range points {
		if p.Model == "Model 8" {
			found = true
			if !p.CapacityKWh.Equal(decimal.NewFromInt(80)) || !p.Price.Equal(decimal.NewFromInt(36000)) {
				t.Errorf("Model 8 = (%s kWh, %s), want (80, 36000)", p.CapacityKWh, p.Price)
			}
		}
	}
	if !found {
		t.Error("Model 8 missing from 4h class")
	}

	if !cat.TariffPercent().Equal(decimal.NewFromFloat(64.5)) {
		t.Errorf("default tariff = %s, want 64.5", cat.TariffPercent())
	}
	if !cat.Module().SizeKWh.Equal(decimal.NewFromFloat(10.24)) {
		t.Errorf("default module size = %s, want 10.24", cat.Module().SizeKWh)
	}
}

func TestDomain(t *testing.T) {
	cat, _ := New(testSpec())

	min, max, err := cat.Domain("standard")
	if err != nil {
		t.Fatalf("Domain failed: %v", err)
	}
	if !min.Equal(decimal.NewFromInt(10)) || !max.Equal(decimal.NewFromInt(20)) {
		t.Errorf("domain = [%s, %s], want [10, 20]", min, max)
	}
}

const yamlCatalog = `version: "test-yaml"
currency: USD
tariff_percent: 64.5
module:
  size_kwh: 10.24
  max_power_kw: 90
classes:
  - id: standard
    label: Standard
    backup_hours: 4
    models:
      - name: A
        power_kw: 10
        capacity_kwh: 10
        price: 1000
      - name: B
        power_kw: 20
        capacity_kwh: 20
        price: 1800
`

const jsonCatalog = `{
  "version": "test-json",
  "currency": "USD",
  "tariff_percent": 64.5,
  "module": {"size_kwh": 10.24, "max_power_kw": 90},
  "classes": [
    {
      "id": "standard",
      "label": "Standard",
      "backup_hours": 4,
      "models": [
        {"name": "A", "power_kw": 10, "capacity_kwh": 10, "price": 1000},
        {"name": "B", "power_kw": 20, "capacity_kwh": 20, "price": 1800}
      ]
    }
  ]
}`

const hclCatalog = `version        = "test-hcl"
currency       = "USD"
tariff_percent = 64.5

module {
  size_kwh     = 10.24
  max_power_kw = 90
}

class "standard" {
  label        = "Standard"
  backup_hours = 4

  model "A" {
    power_kw     = 10
    capacity_kwh = 10
    price        = 1000
  }

  model "B" {
    power_kw     = 20
    capacity_kwh = 20
    price        = 1800
  }
}
`

func TestLoadFileFormats(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
		version  string
	}{
		{"yaml", "catalog.yaml", yamlCatalog, "test-yaml"},
		{"json", "catalog.json", jsonCatalog, "test-json"},
		{"hcl", "catalog.hcl", hclCatalog, "test-hcl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.filename)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("write fixture: %v", err)
			}

			cat, err := LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile failed: %v", err)
			}
			if cat.Version() != tt.version {
				t.Errorf("version = %s, want %s", cat.Version(), tt.version)
			}
			if !cat.TariffPercent().Equal(decimal.NewFromFloat(64.5)) {
				t.Errorf("tariff = %s, want 64.5", cat.TariffPercent())
			}

			points, err := cat.Points("standard")
			if err != nil {
				t.Fatalf("Points failed: %v", err)
			}
			if len(points) != 2 {
				t.Fatalf("expected 2 points, got %d", len(points))
			}
			if !points[1].Price.Equal(decimal.NewFromInt(1800)) {
				t.Errorf("upper point price = %s, want 1800", points[1].Price)
			}
		})
	}
}

func TestLoadFileRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	if err := os.WriteFile(path, []byte("x = 1"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadFile(path); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("expected INPUT_ERROR for unknown extension, got %v", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.json")); !errors.IsType(err, errors.TypeParsing) {
		t.Errorf("expected PARSING_ERROR for missing file, got %v", err)
	}
}
