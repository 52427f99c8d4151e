package handlers

import (
	"log/slog"
	"net/http"

	"cosmos-server/internal/settings"
	"cosmos-server/internal/shared/errors"
	"cosmos-server/internal/shared/response"
)

type PresetsResponse struct {
	Presets []string `json:"presets"`
}

type PresetHandler struct {
	presets settings.Presets
}

func NewPresetHandler(presets settings.Presets) *PresetHandler {
	return &PresetHandler{presets: presets}
}

// List handles GET /api/settings/presets
func (h *PresetHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "list_presets")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	response.Success(w, http.StatusOK, PresetsResponse{Presets: h.presets.Names()})
}

// Get handles GET /api/settings/presets/{name}
func (h *PresetHandler) Get(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_preset")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	name := r.PathValue("name")
	if name == "" {
		response.Error(w, r, logger, errors.Validation("preset name is required"))
		return
	}

	preset, err := h.presets.Get(name)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, preset)
}
