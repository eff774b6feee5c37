// Package main - Standalone entry point for the pricing server
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/stevenbusse/BatteryPricePro/api"
	"github.com/stevenbusse/BatteryPricePro/core/catalog"
	"github.com/stevenbusse/BatteryPricePro/core/pricing"
	"github.com/stevenbusse/BatteryPricePro/core/types"
	"github.com/stevenbusse/BatteryPricePro/internal/config"
	"github.com/stevenbusse/BatteryPricePro/internal/logging"
)

const version = "0.1.0"

func main() {
	addr := flag.String("addr", "", "listen address (default from config, :8501)")
	cfgFile := flag.String("config", "", "config file path")
	catalogPath := flag.String("catalog", "", "catalog file (.json, .yaml, or .hcl; default embedded)")
	flag.Parse()

	cfg := config.Default()
	if *cfgFile != "" {
		loaded, err := config.Load(*cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	if *catalogPath != "" {
		cfg.Catalog.Path = *catalogPath
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	cat := catalog.Default()
	if cfg.Catalog.Path != "" {
		loaded, err := catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			logging.Fatal("failed to load catalog",
				zap.String("path", cfg.Catalog.Path), zap.Error(err))
		}
		cat = loaded
	}

	opts := pricing.Options{Bounds: types.BoundsMode(cfg.Pricing.BoundsMode)}
	if cfg.Catalog.ModuleSizeKWh > 0 {
		opts.ModuleSizeKWh = decimal.NewFromFloat(cfg.Catalog.ModuleSizeKWh)
	}
	engine := pricing.NewEngine(cat, opts)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      api.NewServer(engine, version).Root(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	logging.Info("serving battery cabinet pricing",
		zap.String("addr", cfg.Server.Addr),
		zap.String("catalog_version", cat.Version()),
		zap.String("catalog_hash", cat.Hash()[:12]))

	if err := server.ListenAndServe(); err != nil {
		logging.Fatal("server exited", zap.Error(err))
	}
}
