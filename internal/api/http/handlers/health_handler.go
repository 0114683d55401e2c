package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/leadsfynder/leadsfynder-api/internal/config"
	apperrors "github.com/leadsfynder/leadsfynder-api/pkg/util"
)

// Pinger probes a backing dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness and dependency probes.
type HealthHandler struct {
	db      Pinger
	cache   Pinger
	cfg     config.HealthConfig
	version string
	started time.Time
}

// NewHealthHandler constructs the handler. cache may be nil when no
// Redis is configured.
func NewHealthHandler(db, cache Pinger, cfg config.HealthConfig, version string) *HealthHandler {
	return &HealthHandler{
		db:      db,
		cache:   cache,
		cfg:     cfg,
		version: version,
		started: time.Now(),
	}
}

// Health handles GET /api/health. The process is healthy only if Postgres
// answers within the configured timeout; Redis is reported but a cache
// outage never fails the probe.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	if err := h.ping(c.Context(), h.db); err != nil {
		return apperrors.NewInternalError("Database unreachable", err)
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "Service healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(h.started).Round(time.Second).String(),
		"version":   h.version,
		"redis":     h.redisStatus(c.Context()),
	})
}

// HealthDB handles GET /api/health/db.
func (h *HealthHandler) HealthDB(c *fiber.Ctx) error {
	start := time.Now()
	if err := h.ping(c.Context(), h.db); err != nil {
		return apperrors.NewInternalError("Database unreachable", err)
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "Database connection healthy",
		"latencyMs": time.Since(start).Milliseconds(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthHandler) redisStatus(ctx context.Context) string {
	if h.cache == nil {
		return "disabled"
	}
	if err := h.ping(ctx, h.cache); err != nil {
		return "unavailable"
	}
	return "ok"
}

func (h *HealthHandler) ping(ctx context.Context, dep Pinger) error {
	probeCtx, cancel := context.WithTimeout(ctx, h.cfg.Timeout())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- dep.Ping(probeCtx) }()

	select {
	case err := <-done:
		return err
	case <-probeCtx.Done():
		return probeCtx.Err()
	}
}
