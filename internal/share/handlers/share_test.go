package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cosmos-server/internal/generation"
	"cosmos-server/internal/share"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

func newTestMux(t *testing.T, sharing bool) *http.ServeMux {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	gen, err := generation.NewService(
		tracenoop.NewTracerProvider().Tracer("test"),
		metricnoop.NewMeterProvider().Meter("test"),
		logger,
	)
	require.NoError(t, err)

	var svc *share.Service
	if sharing {
		svc, err = share.NewService(strings.Repeat("s", 32), time.Hour, logger)
		require.NoError(t, err)
	}

	h := NewShareHandler(svc, gen, 1<<16)
	mux := http.NewServeMux()
	mux.HandleFunc("/api/share", h.Create)
	mux.HandleFunc("/api/share/{token}", h.Resolve)
	return mux
}

func TestShare_RoundTripRegeneratesSystem(t *testing.T) {
	mux := newTestMux(t, true)

	body := `{"settings":{"seed":"random"},"coordinates":{"x":2,"y":1,"z":0}}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/share", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var token share.Token
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &token))
	require.NotEmpty(t, token.Token)

	resolve := func() SharedSystem {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/share/"+token.Token, nil))
		require.Equal(t, http.StatusOK, rec.Code)
		var shared SharedSystem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &shared))
		return shared
	}

	first := resolve()
	second := resolve()
	assert.Equal(t, token.Seed, first.Seed)
	assert.Equal(t, int64(2), first.Coordinates.X)
	require.NotNil(t, first.System)
	assert.Equal(t, first.System, second.System)
}

func TestShare_InvalidToken(t *testing.T) {
	mux := newTestMux(t, true)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/share/bogus", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestShare_Disabled(t *testing.T) {
	mux := newTestMux(t, false)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/share", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/share/anything", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestShare_WrongMethod(t *testing.T) {
	mux := newTestMux(t, true)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/share", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
