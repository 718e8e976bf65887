package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"emmanuelos.dev/internal/services"
)

// AppHandler handles the JSON app endpoints
type AppHandler struct {
	dashboard *services.DashboardService
	logger    *zap.Logger
}

// NewAppHandler creates a new AppHandler
func NewAppHandler(ds *services.DashboardService, logger *zap.Logger) *AppHandler {
	return &AppHandler{dashboard: ds, logger: logger}
}

// ListApps handles GET /api/apps?category=
func (h *AppHandler) ListApps(w http.ResponseWriter, r *http.Request) {
	view := h.dashboard.View(r.URL.Query().Get("category"))
	respondJSON(h.logger, w, http.StatusOK, view)
}

// GetApp handles GET /api/apps/{slug}
func (h *AppHandler) GetApp(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	app, err := h.dashboard.GetBySlug(slug)
	if err != nil {
		respondError(h.logger, w, http.StatusNotFound, "App not found")
		return
	}

	respondJSON(h.logger, w, http.StatusOK, app)
}

// ListCategories handles GET /api/categories
func (h *AppHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(h.logger, w, http.StatusOK, map[string]any{
		"loading":    h.dashboard.Loading(),
		"categories": h.dashboard.Categories(),
	})
}
