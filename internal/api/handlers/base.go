// Package handlers implements the REST API endpoint handlers for zonejsond.
//
// REST API Endpoints:
//
// System:
//   - GET /api/v1/health - Health check status
//   - GET /api/v1/stats - Server statistics (uptime, memory, goroutines, host load)
//
// Parsing:
//   - POST /api/v1/parse - Parse zonefile text without storing it
//
// Zones:
//   - GET /api/v1/zones - List stored zones
//   - POST /api/v1/zones - Parse and store a zone
//   - GET /api/v1/zones/:name - Get a stored zone with its record set
//   - DELETE /api/v1/zones/:name - Delete a stored zone
//
// All endpoints except /health support optional API key authentication via
// the X-API-Key header.
//
// @title zonejson API
// @version 1.0
// @description REST API for converting DNS zonefiles into structured record sets.
//
// @contact.name zonejson
// @contact.url https://github.com/jroosing/zonejson
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @BasePath /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package handlers

import (
	"log/slog"
	"time"

	"github.com/jroosing/zonejson/internal/config"
	"github.com/jroosing/zonejson/internal/database"
	"github.com/jroosing/zonejson/internal/metrics"
)

// Handler contains dependencies for API handlers.
type Handler struct {
	cfg       *config.Config
	db        *database.DB
	logger    *slog.Logger
	metrics   *metrics.Metrics
	startTime time.Time
}

// New creates a Handler with the given dependencies. db may be nil, in which
// case the zone-store endpoints respond 503.
func New(cfg *config.Config, db *database.DB, logger *slog.Logger, m *metrics.Metrics) *Handler {
	if m == nil {
		m = metrics.New()
	}
	return &Handler{
		cfg:       cfg,
		db:        db,
		logger:    logger,
		metrics:   m,
		startTime: time.Now(),
	}
}

// Metrics returns the handler's metrics registry for route mounting.
func (h *Handler) Metrics() *metrics.Metrics {
	return h.metrics
}

// lenientFor resolves a request-level lenient override against the server
// default.
func (h *Handler) lenientFor(override *bool) bool {
	if override != nil {
		return *override
	}
	return h.cfg.Parser.Lenient
}
