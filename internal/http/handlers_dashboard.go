package httpx

import (
	"net/http"

	"github.com/shshafin/work-agency-client-sub003/internal/nav"
	"github.com/shshafin/work-agency-client-sub003/internal/service"
)

// DashboardHandlers serves the dashboard overview and the role-filtered
// navigation.
type DashboardHandlers struct {
	Svc *service.DashboardService
}

// Overview returns per-entity counts for the dashboard landing page.
// GET /api/dashboard/overview.
func (h *DashboardHandlers) Overview(w http.ResponseWriter, r *http.Request) {
	WriteData(w, http.StatusOK, h.Svc.Overview(r.Context()))
}

// Nav returns the navigation entries visible to the current session's role.
// Runs inside RequireSession, so an absent session means a wiring bug; it
// fails closed with an empty list either way.
// GET /api/dashboard/nav.
func (h *DashboardHandlers) Nav(w http.ResponseWriter, r *http.Request) {
	items := []nav.Item{}
	if sess, ok := SessionFromContext(r.Context()); ok {
		items = nav.Filter(nav.DefaultItems(), sess.User.Role)
	}

	type navItem struct {
		Title string `json:"title"`
		Path  string `json:"path"`
		Icon  string `json:"icon"`
	}
	out := make([]navItem, 0, len(items))
	for _, it := range items {
		out = append(out, navItem{Title: it.Title, Path: it.Path, Icon: it.Icon})
	}
	WriteData(w, http.StatusOK, out)
}
