// Package main is the entry point for the cabinet-cost CLI.
package main

import (
	"os"

	"github.com/stevenbusse/BatteryPricePro/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
