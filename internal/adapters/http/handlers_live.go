package web

import (
	"net/http"

	"churchportal/internal/application/orchestrators"
	"churchportal/internal/application/projections"
)

func liveDeps() orchestrators.LiveDeps {
	return orchestrators.LiveDeps{
		LiveStore:  stores.Live,
		GenerateID: generateChatID,
		Now:        timeNow,
		Observer:   recorder,
	}
}

// handleLive handles GET /api/live
func handleLive(w http.ResponseWriter, r *http.Request) {
	res, err := projections.QueryLive(r.Context(), projections.LiveDeps{LiveStore: stores.Live})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleSetLive handles POST /api/live {"live": bool, "title": string}
func handleSetLive(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireContentManager(w, r); !ok {
		return
	}
	var input orchestrators.SetStreamInput
	if err := strictDecode(r, &input); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	st, err := orchestrators.ExecuteSetStream(r.Context(), input, liveDeps())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// handleChat handles GET /api/live/chat
func handleChat(w http.ResponseWriter, r *http.Request) {
	msgs, err := stores.Live.Messages(r.Context(), projections.ChatHistory)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

// handlePostChat handles POST /api/live/chat {"message": string}
func handlePostChat(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	var input orchestrators.PostChatInput
	if err := strictDecode(r, &input); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	input.Author = sess.FullName()

	m, err := orchestrators.ExecutePostChat(r.Context(), input, liveDeps())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}
