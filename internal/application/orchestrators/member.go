package orchestrators

import (
	"context"
	"log/slog"

	"churchportal/internal/domain/member"
)

// MemberStoreForOrchestrator defines the store interface needed by member orchestrators.
type MemberStoreForOrchestrator interface {
	Insert(ctx context.Context, m member.Member) error
	// Update applies fn atomically; fn's error aborts the write.
	Update(ctx context.Context, id string, fn func(*member.Member) error) (member.Member, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// MemberDeps holds dependencies for the member orchestrators.
type MemberDeps struct {
	MemberStore MemberStoreForOrchestrator
	GenerateID  func() string
	Observer    MutationObserver
}

// CreateMemberInput carries input for the create member orchestrator.
type CreateMemberInput struct {
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

// ExecuteCreateMember appends a member to the directory.
// PRE: Email and FirstName are non-empty
// POST: Member stored with generated ID; Role defaults to member
func ExecuteCreateMember(ctx context.Context, input CreateMemberInput, deps MemberDeps) (member.Member, error) {
	m := member.Member{
		ID:         deps.GenerateID(),
		Email:      input.Email,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Role:       input.Role,
		Department: input.Department,
	}
	m.ApplyDefaults()

	if err := m.Validate(); err != nil {
		return member.Member{}, err
	}
	if err := deps.MemberStore.Insert(ctx, m); err != nil {
		return member.Member{}, err
	}

	observe(deps.Observer, "member", "create")
	slog.Info("member_event", "event", "member_created", "member_id", m.ID, "role", m.Role)
	return m, nil
}

// ExecuteUpdateMember overlays patch onto an existing member.
// PRE: id names an existing member
// POST: Returns the merged record; storage.ErrNotFound if missing
func ExecuteUpdateMember(ctx context.Context, id string, patch member.Patch, deps MemberDeps) (member.Member, error) {
	m, err := deps.MemberStore.Update(ctx, id, func(cur *member.Member) error {
		cur.Apply(patch)
		return cur.Validate()
	})
	if err != nil {
		return member.Member{}, err
	}

	observe(deps.Observer, "member", "update")
	slog.Info("member_event", "event", "member_updated", "member_id", m.ID)
	return m, nil
}

// ExecuteDeleteMember removes a member from the directory.
// POST: No member has id; a missing id succeeds with Removed=false
func ExecuteDeleteMember(ctx context.Context, id string, deps MemberDeps) (DeleteResult, error) {
	removed, err := deps.MemberStore.Delete(ctx, id)
	if err != nil {
		return DeleteResult{}, err
	}
	if removed {
		observe(deps.Observer, "member", "delete")
		slog.Info("member_event", "event", "member_deleted", "member_id", id)
	}
	return DeleteResult{Message: deletedMessage, Removed: removed}, nil
}
