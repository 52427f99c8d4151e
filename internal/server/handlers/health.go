package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"cosmos-server/internal/settings"
	"cosmos-server/internal/shared/errors"
	"cosmos-server/internal/shared/response"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Presets   int    `json:"presets"`
	Sharing   bool   `json:"sharing"`
}

type HealthHandler struct {
	presets settings.Presets
	sharing bool
}

func NewHealthHandler(presets settings.Presets, sharing bool) *HealthHandler {
	return &HealthHandler{presets: presets, sharing: sharing}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "health")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Presets:   len(h.presets),
		Sharing:   h.sharing,
	}

	response.Success(w, http.StatusOK, resp)
}
