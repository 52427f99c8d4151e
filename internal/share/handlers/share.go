package handlers

import (
	"log/slog"
	"net/http"

	"cosmos-server/internal/generation"
	"cosmos-server/internal/share"
	"cosmos-server/internal/shared/errors"
	"cosmos-server/internal/shared/request"
	"cosmos-server/internal/shared/response"
	"cosmos-server/internal/spatial"
	"cosmos-server/internal/system"
)

type SharedSystem struct {
	Seed        string                   `json:"seed"`
	Coordinates spatial.SpaceCoordinates `json:"coordinates"`
	System      *system.StarSystem       `json:"system"`
}

// ShareHandler serves share links. A nil share service means sharing is
// switched off and every route answers 404.
type ShareHandler struct {
	share      *share.Service
	generation *generation.Service
	maxBody    int64
}

func NewShareHandler(shareService *share.Service, generationService *generation.Service, maxBody int64) *ShareHandler {
	return &ShareHandler{
		share:      shareService,
		generation: generationService,
		maxBody:    maxBody,
	}
}

// Create handles POST /api/share
func (h *ShareHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "create_share")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	if h.share == nil {
		response.Error(w, r, logger, errors.NotFoundf("sharing is disabled"))
		return
	}

	req := generation.NewSystemRequest()
	if err := request.DecodeJSON(w, r, h.maxBody, &req); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	token, err := h.share.Issue(req.Settings, req.Coordinates)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusCreated, token)
}

// Resolve handles GET /api/share/{token}
func (h *ShareHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "resolve_share")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	if h.share == nil {
		response.Error(w, r, logger, errors.NotFoundf("sharing is disabled"))
		return
	}

	token := r.PathValue("token")
	if token == "" {
		response.Error(w, r, logger, errors.Validation("share token is required"))
		return
	}

	claims, err := h.share.Parse(token)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	sys, err := h.generation.GenerateSystem(r.Context(), claims.Settings, claims.Coordinates)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, SharedSystem{
		Seed:        claims.Settings.Seed,
		Coordinates: claims.Coordinates,
		System:      sys,
	})
}
