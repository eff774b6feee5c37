// Package catalog - HCL catalog parsing
// CTY values are never blindly passed through; every attribute goes
// through an explicit typed conversion.
package catalog

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"

	"github.com/stevenbusse/BatteryPricePro/core/types"
	"github.com/stevenbusse/BatteryPricePro/internal/errors"
)

// catalog.hcl schema:
//
//	version        = "2025.1"
//	currency       = "USD"
//	tariff_percent = 64.5
//
//	module {
//	  size_kwh     = 10.24
//	  max_power_kw = 90
//	}
//
//	class "4h" {
//	  label        = "4-hour backup"
//	  backup_hours = 4
//
//	  model "Model 8" {
//	    power_kw     = 20
//	    capacity_kwh = 80
//	    price        = 36000
//	  }
//	}
var catalogSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "version"},
		{Name: "currency"},
		{Name: "tariff_percent"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "module"},
		{Type: "class", LabelNames: []string{"id"}},
	},
}

var classSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "label"},
		{Name: "backup_hours"},
		{Name: "voltage"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "model", LabelNames: []string{"name"}},
	},
}

// parseHCLSpec parses an HCL catalog file into a Spec
func parseHCLSpec(src []byte, filename string) (Spec, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Spec{}, errors.Parsing("invalid HCL catalog", diags)
	}

	content, _, diags := file.Body.PartialContent(catalogSchema)
	if diags.HasErrors() {
		return Spec{}, errors.Parsing("invalid HCL catalog structure", diags)
	}

	var spec Spec
	var err error
	if spec.Version, err = attrString(content.Attributes, "version"); err != nil {
		return Spec{}, err
	}
	currency, err := attrString(content.Attributes, "currency")
	if err != nil {
		return Spec{}, err
	}
	spec.Currency = types.Currency(currency)
	if spec.TariffPercent, err = attrDecimal(content.Attributes, "tariff_percent"); err != nil {
		return Spec{}, err
	}

	for _, block := range content.Blocks {
		switch block.Type {
		case "module":
			if spec.Module, err = parseModuleBlock(block); err != nil {
				return Spec{}, err
			}
		case "class":
			class, err := parseClassBlock(block)
			if err != nil {
				return Spec{}, err
			}
			spec.Classes = append(spec.Classes, class)
		}
	}

	return spec, nil
}

func parseModuleBlock(block *hcl.Block) (ModuleSpec, error) {
	content, diags := block.Body.Content(&hcl.BodySchema{
		Attributes: []hcl.AttributeSchema{
			{Name: "size_kwh"},
			{Name: "max_power_kw"},
		},
	})
	if diags.HasErrors() {
		return ModuleSpec{}, errors.Parsing("invalid module block", diags)
	}

	var spec ModuleSpec
	var err error
	if spec.SizeKWh, err = attrDecimal(content.Attributes, "size_kwh"); err != nil {
		return ModuleSpec{}, err
	}
	if spec.MaxPowerKW, err = attrDecimal(content.Attributes, "max_power_kw"); err != nil {
		return ModuleSpec{}, err
	}
	return spec, nil
}

func parseClassBlock(block *hcl.Block) (types.CabinetClass, error) {
	class := types.CabinetClass{ID: block.Labels[0]}

	content, _, diags := block.Body.PartialContent(classSchema)
	if diags.HasErrors() {
		return class, errors.Parsing("invalid class block", diags)
	}

	var err error
	if class.Label, err = attrString(content.Attributes, "label"); err != nil {
		return class, err
	}
	if hours, err := attrDecimal(content.Attributes, "backup_hours"); err == nil {
		class.BackupHours = hours
	} else {
		return class, err
	}
	if voltage, err := attrDecimal(content.Attributes, "voltage"); err == nil {
		class.Voltage = int(voltage.IntPart())
	} else {
		return class, err
	}

	for _, mb := range content.Blocks {
		model, err := parseModelBlock(mb)
		if err != nil {
			return class, err
		}
		class.Models = append(class.Models, model)
	}

	return class, nil
}

func parseModelBlock(block *hcl.Block) (types.Model, error) {
	model := types.Model{Name: block.Labels[0]}

	content, diags := block.Body.Content(&hcl.BodySchema{
		Attributes: []hcl.AttributeSchema{
			{Name: "power_kw"},
			{Name: "capacity_kwh"},
			{Name: "price"},
		},
	})
	if diags.HasErrors() {
		return model, errors.Parsing("invalid model block", diags)
	}

	var err error
	if model.PowerKW, err = attrDecimal(content.Attributes, "power_kw"); err != nil {
		return model, err
	}
	if model.CapacityKWh, err = attrDecimal(content.Attributes, "capacity_kwh"); err != nil {
		return model, err
	}
	if model.Price, err = attrDecimal(content.Attributes, "price"); err != nil {
		return model, err
	}
	return model, nil
}

// attrString evaluates an optional attribute as a string.
// A missing attribute yields the empty string.
func attrString(attrs hcl.Attributes, name string) (string, error) {
	attr, ok := attrs[name]
	if !ok {
		return "", nil
	}
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return "", errors.Parsing("failed to evaluate "+name, diags)
	}
	if val.IsNull() || !val.IsKnown() || val.Type() != cty.String {
		return "", errors.Inputf("attribute %s must be a string", name)
	}
	return val.AsString(), nil
}

// attrDecimal evaluates an optional attribute as a decimal.
// A missing attribute yields zero.
func attrDecimal(attrs hcl.Attributes, name string) (decimal.Decimal, error) {
	attr, ok := attrs[name]
	if !ok {
		return decimal.Zero, nil
	}
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return decimal.Zero, errors.Parsing("failed to evaluate "+name, diags)
	}
	if val.IsNull() || !val.IsKnown() || val.Type() != cty.Number {
		return decimal.Zero, errors.Inputf("attribute %s must be a number", name)
	}
	d, err := decimal.NewFromString(val.AsBigFloat().Text('f', -1))
	if err != nil {
		return decimal.Zero, errors.Wrapf(errors.TypeParsing, err, "attribute %s is not a valid number", name)
	}
	return d, nil
}
