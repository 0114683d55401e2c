package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/leadsfynder/leadsfynder-api/internal/config"
	apperrors "github.com/leadsfynder/leadsfynder-api/pkg/util"
)

type stubPinger struct {
	err   error
	delay time.Duration
}

func (p *stubPinger) Ping(ctx context.Context) error {
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return p.err
}

func newHealthApp(db, cache *stubPinger, timeoutSeconds int) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{
				"success": false,
				"message": domainErr.Message,
				"error":   domainErr.Code,
			})
		},
	})
	var cachePinger Pinger
	if cache != nil {
		cachePinger = cache
	}
	handler := NewHealthHandler(db, cachePinger, config.HealthConfig{TimeoutSeconds: timeoutSeconds}, "1.0.0")
	app.Get("/api/health", handler.Health)
	app.Get("/api/health/db", handler.HealthDB)
	return app
}

func TestHealthOK(t *testing.T) {
	app := newHealthApp(&stubPinger{}, &stubPinger{}, 2)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "1.0.0", body["version"])
	assert.Equal(t, "ok", body["redis"])
	assert.NotEmpty(t, body["timestamp"])
	assert.NotEmpty(t, body["uptime"])
}

func TestHealthRedisDownIsNonFatal(t *testing.T) {
	app := newHealthApp(&stubPinger{}, &stubPinger{err: errors.New("connection refused")}, 2)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "unavailable", body["redis"])
}

func TestHealthNoRedisConfigured(t *testing.T) {
	app := newHealthApp(&stubPinger{}, nil, 2)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "disabled", body["redis"])
}

func TestHealthDatabaseDown(t *testing.T) {
	app := newHealthApp(&stubPinger{err: errors.New("connection refused")}, &stubPinger{}, 2)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Database unreachable", body["message"])
}

func TestHealthDBTimeout(t *testing.T) {
	app := newHealthApp(&stubPinger{delay: 3 * time.Second}, &stubPinger{}, 1)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health/db", nil), 5000)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestHealthDBOK(t *testing.T) {
	app := newHealthApp(&stubPinger{}, &stubPinger{}, 2)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health/db", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Database connection healthy", body["message"])
}
