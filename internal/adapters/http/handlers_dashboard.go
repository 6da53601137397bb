package web

import (
	"net/http"

	"churchportal/internal/application/listutil"
	"churchportal/internal/application/projections"
)

// handleDashboard handles GET /api/dashboard
func handleDashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	res, err := projections.QueryDashboard(r.Context(), projections.DashboardQuery{Role: sess.Role()}, projections.DashboardDeps{
		AnnouncementStore: stores.Announcements,
		EventStore:        stores.Events,
		SermonStore:       stores.Sermons,
		DepartmentStore:   stores.Departments,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleDirectory handles GET /api/directory?q=&sort=&dir=&page=&per_page=
func handleDirectory(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r); !ok {
		return
	}
	q := r.URL.Query()
	res, err := projections.QueryDirectory(r.Context(), projections.DirectoryQuery{
		Search: q.Get("q"),
		Sort:   listutil.ParseSortParams(q, projections.DirectorySortColumns),
		Page:   listutil.ParsePageParams(q),
	}, projections.DirectoryDeps{MemberStore: stores.Members})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
