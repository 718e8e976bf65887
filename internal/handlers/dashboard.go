package handlers

import (
	"net/http"

	"github.com/a-h/templ"

	"emmanuelos.dev/internal/services"
	"emmanuelos.dev/internal/views"
)

// DashboardHandler renders the HTML dashboard
type DashboardHandler struct {
	dashboard *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(ds *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: ds}
}

// Page handles GET /?category=
// HTMX requests get only the dashboard fragment.
func (h *DashboardHandler) Page(w http.ResponseWriter, r *http.Request) {
	view := h.dashboard.View(r.URL.Query().Get("category"))

	var component templ.Component
	switch {
	case !isHTMX(r):
		component = views.Page(view)
	case view.Loading:
		component = views.Loading()
	default:
		component = views.Dashboard(view)
	}

	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Vary", "HX-Request")
	templ.Handler(component).ServeHTTP(w, r)
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
