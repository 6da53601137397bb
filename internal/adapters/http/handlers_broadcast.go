package web

import (
	"net/http"

	"churchportal/internal/adapters/markdown"
	"churchportal/internal/application/orchestrators"
)

// handleBroadcast handles POST /api/announcements/{id}/broadcast
func handleBroadcast(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireContentManager(w, r); !ok {
		return
	}
	res, err := orchestrators.ExecuteBroadcastAnnouncement(r.Context(), r.PathValue("id"), orchestrators.BroadcastDeps{
		AnnouncementStore: stores.Announcements,
		MemberStore:       stores.Members,
		Sender:            emailSender,
		RenderHTML:        markdown.Render,
		From:              emailFrom,
		ReplyTo:           emailReplyTo,
		Observer:          recorder,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
