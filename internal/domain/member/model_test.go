package member_test

import (
	"errors"
	"testing"

	"churchportal/internal/domain/account"
	"churchportal/internal/domain/member"
)

// TestMemberValidation tests validation of Member.
func TestMemberValidation(t *testing.T) {
	tests := []struct {
		name    string
		member  member.Member
		wantErr error
	}{
		{
			name:   "valid member",
			member: member.Member{ID: "4", Email: "member@church.com", FirstName: "Mary", LastName: "Wilson", Role: account.RoleMember, Department: "Health Ministries"},
		},
		{
			name:   "valid leader without department",
			member: member.Member{ID: "2", Email: "pastor@church.com", FirstName: "John", LastName: "Johnson", Role: account.RoleLeader},
		},
		{
			name:    "missing email",
			member:  member.Member{ID: "1", FirstName: "Mary", Role: account.RoleMember},
			wantErr: member.ErrEmptyEmail,
		},
		{
			name:    "invalid email",
			member:  member.Member{ID: "1", Email: "mary.church.com", FirstName: "Mary", Role: account.RoleMember},
			wantErr: member.ErrInvalidEmail,
		},
		{
			name:    "empty first name",
			member:  member.Member{ID: "1", Email: "mary@church.com", Role: account.RoleMember},
			wantErr: member.ErrEmptyFirstName,
		},
		{
			name:    "unknown role",
			member:  member.Member{ID: "1", Email: "mary@church.com", FirstName: "Mary", Role: "elder"},
			wantErr: member.ErrInvalidRole,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.member.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestApplyDefaults assigns the member role when none is given.
func TestApplyDefaults(t *testing.T) {
	m := member.Member{Email: "new@church.com", FirstName: "New"}
	m.ApplyDefaults()
	if m.Role != account.RoleMember {
		t.Errorf("Role = %q, want member", m.Role)
	}
	l := member.Member{Role: account.RoleLeader}
	l.ApplyDefaults()
	if l.Role != account.RoleLeader {
		t.Errorf("Role overwritten: %q", l.Role)
	}
}

// TestMatches searches by full name or department, ignoring case.
func TestMatches(t *testing.T) {
	m := member.Member{FirstName: "Robert", LastName: "Smith", Department: "Sabbath School"}
	tests := []struct {
		q    string
		want bool
	}{
		{"", true},
		{"robert", true},
		{"BERT SMI", true},
		{"sabbath", true},
		{"Health", false},
		{"elder", false},
	}
	for _, tt := range tests {
		if got := m.Matches(tt.q); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.q, got, tt.want)
		}
	}
}

// TestApply overlays only the supplied fields.
func TestApply(t *testing.T) {
	m := member.Member{ID: "3", Email: "elder@church.com", FirstName: "Robert", LastName: "Smith", Role: account.RoleLeader, Department: "Sabbath School"}
	dept := "Youth Ministries"
	m.Apply(member.Patch{Department: &dept})
	if m.ID != "3" || m.Email != "elder@church.com" || m.Role != account.RoleLeader {
		t.Errorf("untouched fields changed: %+v", m)
	}
	if m.Department != "Youth Ministries" {
		t.Errorf("Department = %q", m.Department)
	}
}
