// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, engine
// orchestration, output serialization. The API NEVER performs
// pricing logic.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/stevenbusse/BatteryPricePro/core/output"
	"github.com/stevenbusse/BatteryPricePro/core/pricing"
	"github.com/stevenbusse/BatteryPricePro/core/types"
	"github.com/stevenbusse/BatteryPricePro/internal/errors"
	"github.com/stevenbusse/BatteryPricePro/internal/logging"
	"github.com/stevenbusse/BatteryPricePro/internal/metrics"
)

// Server is the API server
type Server struct {
	engine  *pricing.Engine
	mux     *http.ServeMux
	version string
}

// NewServer creates a new API server over a quote engine
func NewServer(engine *pricing.Engine, version string) *Server {
	s := &Server{
		engine:  engine,
		mux:     http.NewServeMux(),
		version: version,
	}
	s.registerRoutes()
	metrics.MustRegister()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /quote", s.handleQuote)
	s.mux.HandleFunc("GET /catalog", s.handleCatalog)
	s.mux.HandleFunc("GET /configurations", s.handleConfigurations)

	// Supporting endpoints
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleQuote handles POST /quote
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := uuid.NewString()

	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, requestID, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	query := types.Query{
		Configuration: req.Configuration,
		CapacityKWh:   req.CapacityKWh,
		PowerKW:       req.PowerKW,
		ExcludeTariff: req.ExcludeTariff,
		TariffPercent: req.TariffPercent,
		Bounds:        types.BoundsMode(req.Bounds),
	}

	quote, err := s.engine.Quote(query)
	if err != nil {
		code := string(errors.TypeOf(err))
		metrics.IncQuoteError(code)
		logging.Warn("quote failed",
			zap.String("request_id", requestID),
			zap.String("configuration", req.Configuration),
			zap.Error(err))
		s.writeError(w, requestID, code, err.Error(), statusForType(errors.TypeOf(err)))
		return
	}

	durationMs := time.Since(start).Milliseconds()
	metrics.ObserveQuote(quote.Configuration, quote.Estimate.Method.String(),
		float64(time.Since(start).Microseconds())/1000)

	s.writeJSON(w, &QuoteResponse{
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Status:    "success",
		Quote:     output.RoundQuote(quote),
		Metadata: &ResponseMetadata{
			CatalogVersion: quote.CatalogVersion,
			CatalogHash:    quote.CatalogHash,
			EngineVersion:  s.version,
			DurationMs:     durationMs,
		},
	}, http.StatusOK)
}

// handleCatalog handles GET /catalog
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	cat := s.engine.Catalog()
	s.writeJSON(w, map[string]interface{}{
		"version":        cat.Version(),
		"hash":           cat.Hash(),
		"currency":       cat.Currency(),
		"tariff_percent": cat.TariffPercent().String(),
		"module":         cat.Module(),
		"classes":        cat.Classes(),
	}, http.StatusOK)
}

// handleConfigurations handles GET /configurations
func (s *Server) handleConfigurations(w http.ResponseWriter, r *http.Request) {
	cat := s.engine.Catalog()

	summaries := make([]ClassSummary, 0, len(cat.ClassIDs()))
	for _, class := range cat.Classes() {
		min, max, err := cat.Domain(class.ID)
		if err != nil {
			s.writeError(w, uuid.NewString(), string(errors.TypeOf(err)), err.Error(),
				statusForType(errors.TypeOf(err)))
			return
		}
		summaries = append(summaries, ClassSummary{
			ID:          class.ID,
			Label:       class.Label,
			BackupHours: class.BackupHours.String(),
			MinKWh:      min.String(),
			MaxKWh:      max.String(),
			Models:      len(class.Models),
		})
	}

	s.writeJSON(w, map[string]interface{}{
		"configurations": summaries,
		"count":          len(summaries),
	}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":         s.version,
		"engine":          "battery-price-pro",
		"api_version":     "v1",
		"catalog_version": s.engine.Catalog().Version(),
	}, http.StatusOK)
}

// statusForType maps domain error types to HTTP statuses.
// UNKNOWN_CONFIGURATION and OUT_OF_RANGE are well-formed requests the
// catalog cannot serve; EMPTY_TABLE is an upstream data defect.
func statusForType(t errors.Type) int {
	switch t {
	case errors.TypeInput, errors.TypeParsing:
		return http.StatusBadRequest
	case errors.TypeUnknownConfiguration, errors.TypeOutOfRange:
		return http.StatusUnprocessableEntity
	case errors.TypeEmptyTable:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, requestID, code, message string, status int) {
	s.writeJSON(w, &QuoteResponse{
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Status:    "error",
		Error: &ErrorDetail{
			Code:    code,
			Message: message,
		},
	}, status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Root builds the full server handler: the API under /api, the
// interactive form at /, and Prometheus metrics at /metrics
func (s *Server) Root() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", s))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /{$}", s.handleForm)
	return mux
}
