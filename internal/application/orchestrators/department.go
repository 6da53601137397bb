package orchestrators

import (
	"context"
	"log/slog"

	"churchportal/internal/domain/department"
)

// DepartmentStoreForOrchestrator defines the store interface needed by department orchestrators.
type DepartmentStoreForOrchestrator interface {
	Insert(ctx context.Context, d department.Department) error
	// Update applies fn atomically; fn's error aborts the write.
	Update(ctx context.Context, id string, fn func(*department.Department) error) (department.Department, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// DepartmentDeps holds dependencies for the department orchestrators.
type DepartmentDeps struct {
	DepartmentStore DepartmentStoreForOrchestrator
	GenerateID      func() string
	Observer        MutationObserver
}

// CreateDepartmentInput carries input for the create department orchestrator.
type CreateDepartmentInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ExecuteCreateDepartment appends a department to the catalog.
// PRE: Name is non-empty
// POST: Department stored with generated ID and MemberCount 0
func ExecuteCreateDepartment(ctx context.Context, input CreateDepartmentInput, deps DepartmentDeps) (department.Department, error) {
	d := department.Department{
		ID:          deps.GenerateID(),
		Name:        input.Name,
		Description: input.Description,
	}
	if err := d.Validate(); err != nil {
		return department.Department{}, err
	}
	if err := deps.DepartmentStore.Insert(ctx, d); err != nil {
		return department.Department{}, err
	}

	observe(deps.Observer, "department", "create")
	slog.Info("department_event", "event", "department_created", "department_id", d.ID, "name", d.Name)
	return d, nil
}

// ExecuteUpdateDepartment overlays patch onto an existing department.
// PRE: id names an existing department
// POST: Returns the merged record; storage.ErrNotFound if missing
func ExecuteUpdateDepartment(ctx context.Context, id string, patch department.Patch, deps DepartmentDeps) (department.Department, error) {
	d, err := deps.DepartmentStore.Update(ctx, id, func(cur *department.Department) error {
		cur.Apply(patch)
		return cur.Validate()
	})
	if err != nil {
		return department.Department{}, err
	}

	observe(deps.Observer, "department", "update")
	slog.Info("department_event", "event", "department_updated", "department_id", d.ID)
	return d, nil
}

// ExecuteDeleteDepartment removes a department.
// POST: No department has id; a missing id succeeds with Removed=false
func ExecuteDeleteDepartment(ctx context.Context, id string, deps DepartmentDeps) (DeleteResult, error) {
	removed, err := deps.DepartmentStore.Delete(ctx, id)
	if err != nil {
		return DeleteResult{}, err
	}
	if removed {
		observe(deps.Observer, "department", "delete")
		slog.Info("department_event", "event", "department_deleted", "department_id", id)
	}
	return DeleteResult{Message: deletedMessage, Removed: removed}, nil
}
