package handlers

import (
	"log/slog"
	"net/http"

	"cosmos-server/internal/generation"
	"cosmos-server/internal/settings"
	"cosmos-server/internal/shared/errors"
	"cosmos-server/internal/shared/request"
	"cosmos-server/internal/shared/response"
	"cosmos-server/internal/system"
)

type GenerationHandler struct {
	service *generation.Service
	maxBody int64
}

func NewGenerationHandler(service *generation.Service, maxBody int64) *GenerationHandler {
	return &GenerationHandler{
		service: service,
		maxBody: maxBody,
	}
}

// Universe handles POST /api/universe
func (h *GenerationHandler) Universe(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "generate_universe")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	gs := settings.Default()
	if err := request.DecodeJSON(w, r, h.maxBody, &gs); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	u, err := h.service.GenerateUniverse(r.Context(), gs)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, u)
}

// Galaxy handles POST /api/galaxy
func (h *GenerationHandler) Galaxy(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "generate_galaxy")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	gs := settings.Default()
	if err := request.DecodeJSON(w, r, h.maxBody, &gs); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	g, err := h.service.GenerateGalaxy(r.Context(), gs)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, g)
}

// System handles POST /api/system
func (h *GenerationHandler) System(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "generate_system")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	req := generation.NewSystemRequest()
	if err := request.DecodeJSON(w, r, h.maxBody, &req); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	sys, err := h.service.GenerateSystem(r.Context(), req.Settings, req.Coordinates)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, sys)
}

// TestSettings handles GET /api/test-settings
func (h *GenerationHandler) TestSettings(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "test_settings")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	response.Success(w, http.StatusOK, settings.Example())
}

// TestSystem handles GET /api/test-system
func (h *GenerationHandler) TestSystem(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "test_system")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	response.Success(w, http.StatusOK, system.Fixture())
}
