// Package cmd - catalog commands
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stevenbusse/BatteryPricePro/core/catalog"
	"github.com/stevenbusse/BatteryPricePro/core/output"
	"github.com/stevenbusse/BatteryPricePro/internal/config"
)

var catalogFormat string

// catalogCmd groups the catalog subcommands
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate reference catalogs",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// catalogListCmd lists the active catalog's models
var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the active catalog's cabinet classes and models",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(config.Get())
		if err != nil {
			return err
		}

		formatter, err := output.New(resolveFormat(catalogFormat))
		if err != nil {
			return err
		}
		return formatter.RenderCatalog(os.Stdout, cat)
	},
}

// catalogValidateCmd validates a catalog file without loading it as
// the active catalog
var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a catalog file (.json, .yaml, or .hcl)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.LoadFile(args[0])
		if err != nil {
			return fmt.Errorf("catalog %s is invalid: %w", args[0], err)
		}

		models := 0
		for _, class := range cat.Classes() {
			models += len(class.Models)
		}
		fmt.Printf("Catalog %s is valid: %d classes, %d models, hash %s\n",
			args[0], len(cat.ClassIDs()), models, cat.Hash()[:12])
		return nil
	},
}

func init() {
	catalogListCmd.Flags().StringVarP(&catalogFormat, "format", "f", "", "output format (cli, json, markdown)")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
}
