package validation

import "strings"

// Error reports a record field that failed validation.
// Domain packages declare their sentinel errors as *Error values so callers can
// match them with errors.Is and recover the field with errors.As.
type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// New returns a validation error for field.
func New(field, message string) *Error {
	return &Error{Field: field, Message: message}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Blank reports whether s is empty once surrounding whitespace is removed.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// OneOf reports whether v is one of allowed.
func OneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if a == v {
			return true
		}
	}
	return false
}
