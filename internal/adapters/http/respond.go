package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"churchportal/internal/adapters/http/middleware"
	"churchportal/internal/adapters/storage"
	"churchportal/internal/application/orchestrators"
	"churchportal/internal/domain/account"
	"churchportal/internal/domain/calendar"
	"churchportal/internal/domain/event"
	"churchportal/internal/domain/livestream"
	"churchportal/internal/domain/validation"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// generateID creates a time-ordered UUID for a new record.
var generateID = func() string {
	return uuid.Must(uuid.NewV7()).String()
}

var (
	chatEntropyMu sync.Mutex
	chatEntropy   = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
)

// generateChatID creates a ULID so chat lines sort by arrival.
var generateChatID = func() string {
	chatEntropyMu.Lock()
	defer chatEntropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(timeNow()), chatEntropy).String()
}

// NewRecordID and NewChatID expose the identifier generators used by the
// handlers so seeding produces ids of the same shape.
func NewRecordID() string { return generateID() }
func NewChatID() string   { return generateChatID() }

// internalError logs the real error and returns a generic message to the client.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	writeJSONError(w, http.StatusInternalServerError, "internal server error")
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode_response", "error", err)
	}
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// writeError maps a service error to its HTTP status.
func writeError(w http.ResponseWriter, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: verr.Message, Field: verr.Field})
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, calendar.ErrEventNotFound):
		writeJSONError(w, http.StatusNotFound, "not found")
	case errors.Is(err, event.ErrEventFull),
		errors.Is(err, livestream.ErrStreamOffline),
		errors.Is(err, livestream.ErrAlreadyLive),
		errors.Is(err, livestream.ErrAlreadyOffline),
		errors.Is(err, storage.ErrDuplicateID):
		writeJSONError(w, http.StatusConflict, err.Error())
	case errors.Is(err, calendar.ErrPlaceholderCell),
		errors.Is(err, calendar.ErrDayOutOfRange),
		errors.Is(err, calendar.ErrInvalidMonth):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, orchestrators.ErrInvalidCredentials):
		writeJSONError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, orchestrators.ErrAccountLocked):
		writeJSONError(w, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, orchestrators.ErrNoRecipients):
		writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		internalError(w, err)
	}
}

// requireSession rejects anonymous requests.
func requireSession(w http.ResponseWriter, r *http.Request) (middleware.Session, bool) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		slog.Warn("auth_denied", "path", r.URL.Path, "reason", "no session")
		writeJSONError(w, http.StatusUnauthorized, "not authenticated")
		return middleware.Session{}, false
	}
	return sess, true
}

// requirePermission rejects requests whose role fails allowed.
func requirePermission(w http.ResponseWriter, r *http.Request, allowed func(role string) bool) (middleware.Session, bool) {
	sess, ok := requireSession(w, r)
	if !ok {
		return sess, false
	}
	if !allowed(sess.Role()) {
		slog.Warn("auth_denied", "path", r.URL.Path, "account_id", sess.User.ID, "role", sess.Role())
		writeJSONError(w, http.StatusForbidden, "forbidden")
		return middleware.Session{}, false
	}
	return sess, true
}

// requireContentManager allows admins and leaders.
func requireContentManager(w http.ResponseWriter, r *http.Request) (middleware.Session, bool) {
	return requirePermission(w, r, account.CanManageContent)
}

// requireAdmin allows admins only.
func requireAdmin(w http.ResponseWriter, r *http.Request) (middleware.Session, bool) {
	return requirePermission(w, r, isAdmin)
}

func isAdmin(role string) bool { return role == account.RoleAdmin }

// anyone is the read gate for public collections.
func anyone(http.ResponseWriter, *http.Request) (middleware.Session, bool) {
	return middleware.Session{}, true
}
