package orchestrators

import (
	"context"
	"errors"
	"testing"

	"churchportal/internal/adapters/storage"
	departmentStore "churchportal/internal/adapters/storage/department"
	memberStore "churchportal/internal/adapters/storage/member"
	sermonStore "churchportal/internal/adapters/storage/sermon"
	"churchportal/internal/domain/department"
	"churchportal/internal/domain/member"
	"churchportal/internal/domain/sermon"
	"churchportal/internal/domain/validation"
)

// TestExecuteCreateDepartment_AppendsWithZeroCount places new departments last.
func TestExecuteCreateDepartment_AppendsWithZeroCount(t *testing.T) {
	ctx := context.Background()
	store := departmentStore.NewMemoryStore()
	deps := DepartmentDeps{DepartmentStore: store, GenerateID: sequentialIDs("dept")}

	ExecuteCreateDepartment(ctx, CreateDepartmentInput{Name: "Sabbath School"}, deps)
	d, err := ExecuteCreateDepartment(ctx, CreateDepartmentInput{Name: "Pathfinders", Description: "Scouting for ages 10-15"}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.MemberCount != 0 {
		t.Errorf("MemberCount = %d, want 0", d.MemberCount)
	}
	list, _ := store.List(ctx)
	if list[len(list)-1].Name != "Pathfinders" {
		t.Errorf("last = %q, want Pathfinders", list[len(list)-1].Name)
	}

	count := 12
	got, err := ExecuteUpdateDepartment(ctx, d.ID, department.Patch{MemberCount: &count}, deps)
	if err != nil || got.MemberCount != 12 || got.Name != "Pathfinders" {
		t.Errorf("update = %+v, %v", got, err)
	}
	res, _ := ExecuteDeleteDepartment(ctx, d.ID, deps)
	if !res.Removed {
		t.Error("delete reported no removal")
	}
}

// TestExecuteCreateMember_DefaultRole assigns the member role when none is given.
func TestExecuteCreateMember_DefaultRole(t *testing.T) {
	ctx := context.Background()
	store := memberStore.NewMemoryStore()
	deps := MemberDeps{MemberStore: store, GenerateID: sequentialIDs("mem")}

	m, err := ExecuteCreateMember(ctx, CreateMemberInput{Email: "ruth@church.com", FirstName: "Ruth", LastName: "Adams"}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Role != "member" {
		t.Errorf("Role = %q, want member", m.Role)
	}

	bad := "deacon"
	_, err = ExecuteUpdateMember(ctx, m.ID, member.Patch{Role: &bad}, deps)
	if !errors.Is(err, member.ErrInvalidRole) {
		t.Errorf("invalid role err = %v", err)
	}
	if stored, _ := store.GetByID(ctx, m.ID); stored.Role != "member" {
		t.Errorf("rejected update was stored: role %q", stored.Role)
	}
	if _, err := ExecuteUpdateMember(ctx, "ghost", member.Patch{}, deps); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("missing err = %v", err)
	}
}

// TestExecuteCreateSermon_Validation checks required fields and media links.
func TestExecuteCreateSermon_Validation(t *testing.T) {
	deps := SermonDeps{SermonStore: sermonStore.NewMemoryStore(), GenerateID: sequentialIDs("ser")}
	tests := []struct {
		name      string
		input     CreateSermonInput
		wantField string
	}{
		{"valid", CreateSermonInput{Title: "Hope in Jesus", Speaker: "Pastor Johnson", Scripture: "Romans 15:13", SermonDate: "2023-12-30"}, ""},
		{"no speaker", CreateSermonInput{Title: "Hope in Jesus"}, "speaker"},
		{"bad audio", CreateSermonInput{Title: "Hope", Speaker: "Elder Smith", AudioURL: "ftp://x"}, "audio_url"},
		{"bad date", CreateSermonInput{Title: "Hope", Speaker: "Elder Smith", SermonDate: "Dec 30"}, "sermon_date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExecuteCreateSermon(context.Background(), tt.input, deps)
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			var verr *validation.Error
			if !errors.As(err, &verr) || verr.Field != tt.wantField {
				t.Errorf("err = %v, want validation error on %s", err, tt.wantField)
			}
		})
	}

	s, _ := ExecuteCreateSermon(context.Background(), CreateSermonInput{Title: "Walking by Faith", Speaker: "Elder Smith"}, deps)
	video := "https://example.com/video2"
	got, err := ExecuteUpdateSermon(context.Background(), s.ID, sermon.Patch{VideoURL: &video}, deps)
	if err != nil || got.VideoURL != video || got.Speaker != "Elder Smith" {
		t.Errorf("update = %+v, %v", got, err)
	}
	if res, _ := ExecuteDeleteSermon(context.Background(), s.ID, deps); !res.Removed {
		t.Error("delete reported no removal")
	}
}
