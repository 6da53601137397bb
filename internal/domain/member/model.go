package member

import (
	"strings"

	"churchportal/internal/domain/account"
	"churchportal/internal/domain/validation"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength       = 100
	MaxEmailLength      = 254
	MaxDepartmentLength = 100
)

// Domain errors
var (
	ErrEmptyEmail        = validation.New("email", "member email cannot be empty")
	ErrInvalidEmail      = validation.New("email", "member email must contain '@'")
	ErrEmailTooLong      = validation.New("email", "member email cannot exceed 254 characters")
	ErrEmptyFirstName    = validation.New("first_name", "member first name cannot be empty")
	ErrFirstNameTooLong  = validation.New("first_name", "member first name cannot exceed 100 characters")
	ErrLastNameTooLong   = validation.New("last_name", "member last name cannot exceed 100 characters")
	ErrInvalidRole       = validation.New("role", "member role must be one of: admin, leader, member")
	ErrDepartmentTooLong = validation.New("department", "member department cannot exceed 100 characters")
)

// Member is an entry in the church member directory.
// Department holds the department's display name, not its id.
type Member struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

// Patch carries the fields a caller wants to change. Nil fields are left as they are.
type Patch struct {
	Email      *string `json:"email,omitempty"`
	FirstName  *string `json:"first_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	Role       *string `json:"role,omitempty"`
	Department *string `json:"department,omitempty"`
}

// Validate checks if the Member has valid data.
// PRE: Member struct is initialized
// POST: Returns nil if valid, a *validation.Error otherwise
// INVARIANT: Email must contain '@', FirstName must not be empty
func (m *Member) Validate() error {
	if validation.Blank(m.Email) {
		return ErrEmptyEmail
	}
	if len(m.Email) > MaxEmailLength {
		return ErrEmailTooLong
	}
	if !strings.Contains(m.Email, "@") {
		return ErrInvalidEmail
	}
	if validation.Blank(m.FirstName) {
		return ErrEmptyFirstName
	}
	if len(m.FirstName) > MaxNameLength {
		return ErrFirstNameTooLong
	}
	if len(m.LastName) > MaxNameLength {
		return ErrLastNameTooLong
	}
	if !account.IsValidRole(m.Role) {
		return ErrInvalidRole
	}
	if len(m.Department) > MaxDepartmentLength {
		return ErrDepartmentTooLong
	}
	return nil
}

// ApplyDefaults fills the fields a new member may omit.
// POST: Role is non-empty
func (m *Member) ApplyDefaults() {
	if m.Role == "" {
		m.Role = account.RoleMember
	}
}

// Apply overlays p onto the member.
// INVARIANT: ID is never changed
func (m *Member) Apply(p Patch) {
	if p.Email != nil {
		m.Email = *p.Email
	}
	if p.FirstName != nil {
		m.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		m.LastName = *p.LastName
	}
	if p.Role != nil {
		m.Role = *p.Role
	}
	if p.Department != nil {
		m.Department = *p.Department
	}
}

// FullName joins first and last name.
func (m *Member) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

// Matches reports whether the member's full name or department contains q,
// ignoring case. An empty query matches everyone.
func (m *Member) Matches(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(m.FullName()), q) ||
		strings.Contains(strings.ToLower(m.Department), q)
}
