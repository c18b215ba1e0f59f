package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/mockify/internal/model"
	"github.com/mcoot/mockify/internal/services/nav"
	"github.com/mcoot/mockify/internal/web/middleware"
	"github.com/mcoot/mockify/internal/web/templates/pages"
)

// DashboardHandler handles the stats dashboard
type DashboardHandler struct {
	appName string
	logger  *slog.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(appName string, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{appName: appName, logger: logger}
}

// View renders the backend's interview stats.
// The page is reachable logged out; only its navbar link is hidden.
func (h *DashboardHandler) View(w http.ResponseWriter, r *http.Request) {
	app := middleware.GetApp(r.Context())
	data := pages.DashboardData{
		PageData: pageData(r, h.appName, "Dashboard", nav.DashboardPage),
	}

	var stats model.InterviewStats
	if err := app.Client.Get(r.Context(), "/stats").Decode(&stats); err != nil {
		h.logger.Warn("failed to load stats", "error", err)
		data.Error = "Could not load stats: " + err.Error()
	} else {
		data.Stats = &stats
	}

	render(w, r, pages.Dashboard(data))
}
