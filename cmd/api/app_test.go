package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hugohenrick/erp-restaurante/internal/infrastructure/config"
	"github.com/hugohenrick/erp-restaurante/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryApp(t *testing.T) *App {
	t.Helper()
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	cfg := &config.Config{
		Env:                "test",
		BasePath:           "/api/v1",
		StorageDriver:      config.StorageMemory,
		JWTSecret:          "segredo-de-teste",
		CORSAllowedOrigins: []string{"*"},
		RequestTimeout:     5 * time.Second,
		TracingExporter:    config.TracingNone,
	}
	app, err := NewApp(cfg, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(app.Close)
	return app
}

func TestHealth(t *testing.T) {
	app := newMemoryApp(t)

	rec := httptest.NewRecorder()
	app.GetRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, config.StorageMemory, body["storage"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newMemoryApp(t)

	for _, path := range []string{"/api/v1/tabs", "/api/v1/tables", "/api/v1/stock/critical"} {
		rec := httptest.NewRecorder()
		app.GetRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestCORSAllowAll(t *testing.T) {
	c := corsConfig([]string{"*"})
	assert.True(t, c.AllowAllOrigins)
	assert.Empty(t, c.AllowOrigins)

	c = corsConfig([]string{"http://caixa.local"})
	assert.False(t, c.AllowAllOrigins)
	assert.Equal(t, []string{"http://caixa.local"}, c.AllowOrigins)
}
