package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cosmos-server/internal/generation"
	"cosmos-server/internal/settings"
	"cosmos-server/internal/system"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

func newTestHandler(t *testing.T) *GenerationHandler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := generation.NewService(
		tracenoop.NewTracerProvider().Tracer("test"),
		metricnoop.NewMeterProvider().Meter("test"),
		logger,
	)
	require.NoError(t, err)
	return NewGenerationHandler(svc, 1<<16)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSystem_DefaultSeedAtOrigin(t *testing.T) {
	h := newTestHandler(t)

	body := `{"settings":{"seed":"default"},"coordinates":{"x":0,"y":0,"z":0}}`
	req := httptest.NewRequest(http.MethodPost, "/api/system", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.System(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var sys system.StarSystem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sys))
	require.NoError(t, system.Validate(&sys))

	again := httptest.NewRecorder()
	h.System(again, httptest.NewRequest(http.MethodPost, "/api/system", strings.NewReader(body)))
	assert.JSONEq(t, rec.Body.String(), again.Body.String())
}

func TestSystem_EmptyBodyUsesDefaults(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.System(rec, httptest.NewRequest(http.MethodPost, "/api/system", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSystem_Errors(t *testing.T) {
	tests := []struct {
		name   string
		method string
		body   string
		status int
		kind   string
	}{
		{"wrong method", http.MethodGet, "", http.StatusMethodNotAllowed, "method_not_allowed"},
		{"malformed json", http.MethodPost, `{"settings":`, http.StatusBadRequest, "validation"},
		{"invalid settings", http.MethodPost, `{"settings":{"seed":"x","system_max_stars":0}}`, http.StatusBadRequest, "configuration"},
		{"outside galaxy", http.MethodPost, `{"settings":{"seed":"x"},"coordinates":{"x":0,"y":0,"z":100000}}`, http.StatusNotFound, "not_found"},
	}

	h := newTestHandler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.System(rec, httptest.NewRequest(tt.method, "/api/system", strings.NewReader(tt.body)))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.kind, decodeError(t, rec)["error"])
		})
	}
}

func TestUniverseAndGalaxy(t *testing.T) {
	h := newTestHandler(t)
	body := `{"seed":"default"}`

	rec := httptest.NewRecorder()
	h.Universe(rec, httptest.NewRequest(http.MethodPost, "/api/universe", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)
	var u map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
	assert.Equal(t, "default", u["seed"])

	rec = httptest.NewRecorder()
	h.Galaxy(rec, httptest.NewRequest(http.MethodPost, "/api/galaxy", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)
	var g map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))
	assert.NotEmpty(t, g["name"])
	assert.Equal(t, float64(0), g["index"])

	rec = httptest.NewRecorder()
	h.Galaxy(rec, httptest.NewRequest(http.MethodDelete, "/api/galaxy", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestFixtures(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.TestSettings(rec, httptest.NewRequest(http.MethodGet, "/api/test-settings", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var gs settings.GenerationSettings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &gs))
	assert.Equal(t, settings.Example(), gs)

	rec = httptest.NewRecorder()
	h.TestSystem(rec, httptest.NewRequest(http.MethodGet, "/api/test-system", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var sys system.StarSystem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sys))
	assert.Equal(t, system.Fixture(), &sys)

	rec = httptest.NewRecorder()
	h.TestSystem(rec, httptest.NewRequest(http.MethodPost, "/api/test-system", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestPresets(t *testing.T) {
	h := NewPresetHandler(settings.BuiltinPresets())

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/settings/presets", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"presets":["default"]}`, rec.Body.String())

	mux := http.NewServeMux()
	mux.HandleFunc("/api/settings/presets/{name}", h.Get)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/settings/presets/default", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var gs settings.GenerationSettings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &gs))
	assert.Equal(t, settings.Example(), gs)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/settings/presets/andromeda", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
