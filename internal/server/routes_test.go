package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cosmos-server/internal/generation"
	serverHandlers "cosmos-server/internal/server/handlers"
	"cosmos-server/internal/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	gen, err := generation.NewService(
		tracenoop.NewTracerProvider().Tracer("test"),
		metricnoop.NewMeterProvider().Meter("test"),
		logger,
	)
	require.NoError(t, err)

	static := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(static, "index.html"), []byte("<h1>viewer</h1>"), 0o644))

	srv := httptest.NewServer(NewRoutes(gen, nil, settings.BuiltinPresets(), 1<<16, static, logger).Setup())
	t.Cleanup(srv.Close)
	return srv
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"health", http.MethodGet, "/api/server/health", "", http.StatusOK},
		{"test settings", http.MethodGet, "/api/test-settings", "", http.StatusOK},
		{"test system", http.MethodGet, "/api/test-system", "", http.StatusOK},
		{"system", http.MethodPost, "/api/system", `{"settings":{"seed":"default"}}`, http.StatusOK},
		{"universe", http.MethodPost, "/api/universe", `{"seed":"default"}`, http.StatusOK},
		{"galaxy", http.MethodPost, "/api/galaxy", `{"seed":"default"}`, http.StatusOK},
		{"presets", http.MethodGet, "/api/settings/presets", "", http.StatusOK},
		{"preset", http.MethodGet, "/api/settings/presets/default", "", http.StatusOK},
		{"share disabled", http.MethodPost, "/api/share", `{}`, http.StatusNotFound},
		{"viewer", http.MethodGet, "/", "", http.StatusOK},
		{"missing file", http.MethodGet, "/nope.js", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, strings.NewReader(tt.body))
			require.NoError(t, err)
			resp, err := srv.Client().Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().Get(srv.URL + "/api/server/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	var health serverHandlers.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, 1, health.Presets)
	assert.False(t, health.Sharing)
}
