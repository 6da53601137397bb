package department

import "churchportal/internal/domain/validation"

// Max length constants for user-editable fields.
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 1000
)

// Domain errors
var (
	ErrEmptyName           = validation.New("name", "department name cannot be empty")
	ErrNameTooLong         = validation.New("name", "department name cannot exceed 100 characters")
	ErrDescriptionTooLong  = validation.New("description", "department description cannot exceed 1000 characters")
	ErrNegativeMemberCount = validation.New("member_count", "department member_count cannot be negative")
)

// Department is a ministry group within the church.
// MemberCount is a display counter; it is never recomputed from member records.
type Department struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MemberCount int    `json:"member_count"`
}

// Patch carries the fields a caller wants to change. Nil fields are left as they are.
type Patch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	MemberCount *int    `json:"member_count,omitempty"`
}

// Validate checks if the Department has valid data.
// PRE: Department struct is populated
// POST: Returns nil if valid, a *validation.Error otherwise
func (d *Department) Validate() error {
	if validation.Blank(d.Name) {
		return ErrEmptyName
	}
	if len(d.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if len(d.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if d.MemberCount < 0 {
		return ErrNegativeMemberCount
	}
	return nil
}

// Apply overlays p onto the department.
// INVARIANT: ID is never changed
func (d *Department) Apply(p Patch) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.MemberCount != nil {
		d.MemberCount = *p.MemberCount
	}
}
