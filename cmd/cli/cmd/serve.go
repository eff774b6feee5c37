// Package cmd - serve command
package cmd

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stevenbusse/BatteryPricePro/api"
	"github.com/stevenbusse/BatteryPricePro/internal/config"
	"github.com/stevenbusse/BatteryPricePro/internal/logging"
)

var serveAddr string

// serveCmd runs the HTTP server with the calculator form
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the pricing HTTP server",
	Long: `Serve the pricing API and the single-page calculator form.

Routes:
  GET  /                    calculator form
  POST /api/quote           price a configuration
  GET  /api/catalog         full catalog listing
  GET  /api/configurations  class summaries
  GET  /api/health          health check
  GET  /metrics             Prometheus metrics`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (default from config, :8501)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	engine, err := buildEngine()
	if err != nil {
		return err
	}

	addr := serveAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      api.NewServer(engine, Version).Root(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	logging.Info("serving battery cabinet pricing",
		zap.String("addr", addr),
		zap.String("catalog_version", engine.Catalog().Version()),
		zap.String("catalog_hash", engine.Catalog().Hash()[:12]))

	return server.ListenAndServe()
}
