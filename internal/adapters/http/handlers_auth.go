package web

import (
	"errors"
	"log/slog"
	"net/http"

	"churchportal/internal/adapters/http/middleware"
	"churchportal/internal/application/orchestrators"
	"churchportal/internal/domain/account"
)

// loginResponse mirrors the client's login result.
type loginResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	User    *account.User `json:"user,omitempty"`
}

// handleLogin handles POST /api/auth/login
func handleLogin(w http.ResponseWriter, r *http.Request) {
	var input orchestrators.LoginInput
	if err := strictDecode(r, &input); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	user, err := orchestrators.ExecuteLogin(r.Context(), input, orchestrators.LoginDeps{
		AccountStore: stores.Accounts,
		Now:          timeNow,
	})
	switch {
	case err == nil:
	case errors.Is(err, orchestrators.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, loginResponse{Message: "Invalid credentials"})
		return
	case errors.Is(err, orchestrators.ErrAccountLocked):
		writeJSON(w, http.StatusTooManyRequests, loginResponse{Message: err.Error()})
		return
	default:
		internalError(w, err)
		return
	}

	token, err := sessions.Create(user)
	if err != nil {
		internalError(w, err)
		return
	}
	middleware.SetSessionCookie(w, token)
	writeJSON(w, http.StatusOK, loginResponse{Success: true, User: &user})
}

// handleLogout handles POST /api/auth/logout
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		sessions.Delete(cookie.Value)
	}
	if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
		slog.Info("auth_event", "event", "logout", "email", sess.User.Email)
	}
	middleware.ClearSessionCookie(w)
	writeJSON(w, http.StatusOK, loginResponse{Success: true})
}

// handleMe handles GET /api/auth/me. Anonymous callers get a null user.
func handleMe(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"user": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": sess.User})
}

// handleChangePassword handles POST /api/auth/password
func handleChangePassword(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	var input orchestrators.ChangePasswordInput
	if err := strictDecode(r, &input); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	input.AccountID = sess.User.ID

	err := orchestrators.ExecuteChangePassword(r.Context(), input, orchestrators.ChangePasswordDeps{
		AccountStore: stores.Accounts,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Success: true, Message: "Password updated"})
}
