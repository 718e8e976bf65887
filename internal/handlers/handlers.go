package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"emmanuelos.dev/internal/assets"
	"emmanuelos.dev/internal/config"
	"emmanuelos.dev/internal/manifest"
	"emmanuelos.dev/internal/middleware"
	"emmanuelos.dev/internal/services"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, dashboard *services.DashboardService, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))

	// Initialize handlers
	dashboardHandler := NewDashboardHandler(dashboard)
	appHandler := NewAppHandler(dashboard, logger)

	// Dashboard page
	r.Get("/", dashboardHandler.Page)

	// Manifest document, so the dashboard can load from its own origin
	r.Get(manifest.DefaultPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		http.ServeFile(w, r, cfg.ManifestPath())
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/apps", appHandler.ListApps)
		r.Get("/apps/{slug}", appHandler.GetApp)
		r.Get("/categories", appHandler.ListCategories)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(logger, w, http.StatusOK, map[string]any{
				"status":  "ok",
				"loading": dashboard.Loading(),
			})
		})
	})

	// Static files
	r.Handle("/static/*", http.StripPrefix("/static", assets.Handler()))

	return r
}

// respondJSON writes a JSON response
func respondJSON(logger *zap.Logger, w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Warn("Error encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(logger *zap.Logger, w http.ResponseWriter, status int, message string) {
	respondJSON(logger, w, status, map[string]string{"error": message})
}
