package department_test

import (
	"errors"
	"strings"
	"testing"

	"churchportal/internal/domain/department"
)

// TestDepartmentValidation tests validation of Department.
func TestDepartmentValidation(t *testing.T) {
	tests := []struct {
		name    string
		d       department.Department
		wantErr error
	}{
		{name: "valid", d: department.Department{ID: "1", Name: "Sabbath School", Description: "Bible study", MemberCount: 45}},
		{name: "zero members", d: department.Department{ID: "1", Name: "Pathfinders"}},
		{name: "empty name", d: department.Department{ID: "1"}, wantErr: department.ErrEmptyName},
		{name: "long name", d: department.Department{ID: "1", Name: strings.Repeat("x", 101)}, wantErr: department.ErrNameTooLong},
		{name: "negative count", d: department.Department{ID: "1", Name: "Youth", MemberCount: -1}, wantErr: department.ErrNegativeMemberCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.d.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestApply overlays only the supplied fields.
func TestApply(t *testing.T) {
	d := department.Department{ID: "3", Name: "Health Ministries", Description: "Wellness", MemberCount: 22}
	count := 23
	d.Apply(department.Patch{MemberCount: &count})
	if d.ID != "3" || d.Name != "Health Ministries" || d.Description != "Wellness" {
		t.Errorf("untouched fields changed: %+v", d)
	}
	if d.MemberCount != 23 {
		t.Errorf("MemberCount = %d, want 23", d.MemberCount)
	}
}
