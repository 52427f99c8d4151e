package server

import (
	"log/slog"
	"net/http"

	"cosmos-server/internal/generation"
	generationHandlers "cosmos-server/internal/generation/handlers"
	serverHandlers "cosmos-server/internal/server/handlers"
	"cosmos-server/internal/settings"
	"cosmos-server/internal/share"
	shareHandlers "cosmos-server/internal/share/handlers"
)

type Routes struct {
	generationService *generation.Service
	shareService      *share.Service
	presets           settings.Presets
	maxBody           int64
	staticDir         string
	logger            *slog.Logger
}

// NewRoutes wires the HTTP surface. shareService may be nil when sharing is
// not configured; staticDir may be empty to skip the viewer.
func NewRoutes(generationService *generation.Service, shareService *share.Service, presets settings.Presets, maxBody int64, staticDir string, logger *slog.Logger) *Routes {
	return &Routes{
		generationService: generationService,
		shareService:      shareService,
		presets:           presets,
		maxBody:           maxBody,
		staticDir:         staticDir,
		logger:            logger,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := r.logger.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(r.presets, r.shareService != nil)
	generationHandler := generationHandlers.NewGenerationHandler(r.generationService, r.maxBody)
	presetHandler := generationHandlers.NewPresetHandler(r.presets)
	shareHandler := shareHandlers.NewShareHandler(r.shareService, r.generationService, r.maxBody)

	mux.Handle("/api/server/health", healthHandler)

	// Generation
	mux.HandleFunc("/api/universe", generationHandler.Universe)
	mux.HandleFunc("/api/galaxy", generationHandler.Galaxy)
	mux.HandleFunc("/api/system", generationHandler.System)

	// Fixtures
	mux.HandleFunc("/api/test-settings", generationHandler.TestSettings)
	mux.HandleFunc("/api/test-system", generationHandler.TestSystem)

	mux.HandleFunc("/api/settings/presets", presetHandler.List)
	mux.HandleFunc("/api/settings/presets/{name}", presetHandler.Get)

	mux.HandleFunc("/api/share", shareHandler.Create)
	mux.HandleFunc("/api/share/{token}", shareHandler.Resolve)

	if r.staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(r.staticDir)))
	}

	logger.Info("Routes configured successfully",
		"generation_endpoints", []string{"/api/universe", "/api/galaxy", "/api/system"},
		"fixture_endpoints", []string{"/api/test-settings", "/api/test-system"},
		"preset_endpoints", []string{"/api/settings/presets", "/api/settings/presets/{name}"},
		"share_endpoints", []string{"/api/share", "/api/share/{token}"},
		"sharing_enabled", r.shareService != nil,
		"static_dir", r.staticDir,
	)

	return mux
}
