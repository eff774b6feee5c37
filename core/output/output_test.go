// Package output - Formatter tests
package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/stevenbusse/BatteryPricePro/core/catalog"
	"github.com/stevenbusse/BatteryPricePro/core/pricing"
	"github.com/stevenbusse/BatteryPricePro/core/types"
)

func testQuote(t *testing.T) *types.Quote {
	t.Helper()
	engine := pricing.NewEngine(catalog.Default(), pricing.Options{})
	quote, err := engine.Quote(types.Query{
		Configuration: "4h",
		CapacityKWh:   decimal.NewFromInt(70),
	})
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}
	return quote
}

func TestNewFormatter(t *testing.T) {
	for _, format := range []Format{FormatCLI, FormatJSON, FormatMarkdown} {
		f, err := New(format)
		if err != nil {
			t.Fatalf("New(%s) failed: %v", format, err)
		}
		if f.Format() != format {
			t.Errorf("Format() = %s, want %s", f.Format(), format)
		}
	}

	if _, err := New("xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestCLIQuoteRendering(t *testing.T) {
	f, _ := New(FormatCLI)
	var buf bytes.Buffer
	if err := f.RenderQuote(&buf, testQuote(t)); err != nil {
		t.Fatalf("RenderQuote failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"4h", "Total price", "Modules needed", "interpolated"} {
		if !strings.Contains(out, want) {
			t.Errorf("CLI output missing %q:\n%s", want, out)
		}
	}
}

func TestCLICatalogRendering(t *testing.T) {
	f, _ := New(FormatCLI)
	var buf bytes.Buffer
	if err := f.RenderCatalog(&buf, catalog.Default()); err != nil {
		t.Fatalf("RenderCatalog failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Model 1", "Model 15", "$68000.00", "64.5%"} {
		if !strings.Contains(out, want) {
			t.Errorf("catalog output missing %q", want)
		}
	}
}

func TestJSONQuoteIsRounded(t *testing.T) {
	f, _ := New(FormatJSON)
	var buf bytes.Buffer
	if err := f.RenderQuote(&buf, testQuote(t)); err != nil {
		t.Fatalf("RenderQuote failed: %v", err)
	}

	var decoded types.Quote
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Tariff.BasePrice.Exponent() < -2 {
		t.Errorf("base price not rounded to currency precision: %s", decoded.Tariff.BasePrice)
	}
	if decoded.Configuration != "4h" {
		t.Errorf("configuration = %s, want 4h", decoded.Configuration)
	}
}

func TestMarkdownQuoteRendering(t *testing.T) {
	f, _ := New(FormatMarkdown)
	var buf bytes.Buffer
	if err := f.RenderQuote(&buf, testQuote(t)); err != nil {
		t.Fatalf("RenderQuote failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "## Battery Cabinet Quote") {
		t.Error("markdown output missing title")
	}
	if !strings.Contains(out, "| Total price |") {
		t.Error("markdown output missing price row")
	}
}

func TestRoundQuoteDoesNotMutate(t *testing.T) {
	quote := testQuote(t)
	before := quote.Tariff.BasePrice.String()

	RoundQuote(quote)

	if quote.Tariff.BasePrice.String() != before {
		t.Error("RoundQuote mutated the source quote")
	}
}
