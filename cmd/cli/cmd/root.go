// Package cmd provides the CLI commands for cabinet-cost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stevenbusse/BatteryPricePro/internal/config"
	"github.com/stevenbusse/BatteryPricePro/internal/logging"
)

// Version is the tool version
const Version = "0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cabinet-cost",
	Short: "Price battery cabinet configurations",
	Long: `cabinet-cost estimates prices for custom battery cabinet
configurations by interpolating over a catalog of preconfigured models.

Examples:
  cabinet-cost quote --class 4h --kwh 80
  cabinet-cost quote --class 6h --kwh 100 --no-tariff --format json
  cabinet-cost catalog list
  cabinet-cost serve --addr :8501`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cabinet-cost.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cabinet-cost version %s\n", Version)
	},
}
