// Package viewstate holds the client-side state machines behind the portal's
// pages: fetch-on-mount, tab selection, the create/edit modal, delete
// confirmation, the calendar's drag and drop, and the home page carousel.
// Controllers are owned by one session and are not safe for concurrent use.
package viewstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"churchportal/internal/application/orchestrators"
	"churchportal/internal/application/projections"
	"churchportal/internal/domain/account"
	"churchportal/internal/domain/announcement"
	"churchportal/internal/domain/department"
	"churchportal/internal/domain/event"
	"churchportal/internal/domain/sermon"
)

// Kind names a collection the dashboard manages.
type Kind string

// Dashboard kinds
const (
	KindAnnouncement Kind = "announcement"
	KindEvent        Kind = "event"
	KindSermon       Kind = "sermon"
	KindDepartment   Kind = "department"
)

// Controller errors
var (
	ErrUnknownKind    = errors.New("unknown content kind")
	ErrModalClosed    = errors.New("no form is open")
	ErrNothingPending = errors.New("no delete is awaiting confirmation")
	ErrNotPermitted   = errors.New("role may not manage content")
)

// Form is the raw field map a create or edit form submits, keyed by JSON field name.
type Form map[string]any

// Services bundles the commands and queries the dashboard drives.
type Services struct {
	Query         projections.DashboardDeps
	Announcements orchestrators.AnnouncementDeps
	Events        orchestrators.EventDeps
	Sermons       orchestrators.SermonDeps
	Departments   orchestrators.DepartmentDeps
}

// Modal is the create/edit dialog state. EditingID is empty while creating.
type Modal struct {
	Open      bool
	Kind      Kind
	EditingID string
}

// Target identifies one record.
type Target struct {
	Kind Kind
	ID   string
}

// Dashboard is the state of the admin dashboard page.
type Dashboard struct {
	Role    string
	Loading bool
	Data    projections.DashboardResult
	Modal   Modal
	// Pending is the record awaiting delete confirmation, nil when none.
	Pending *Target
	// Err is the last failure, cleared by the next successful action.
	Err error

	svc Services
}

// NewDashboard creates an unmounted dashboard for a user with role.
func NewDashboard(role string, svc Services) *Dashboard {
	return &Dashboard{Role: role, svc: svc}
}

// CanManage reports whether management controls are shown.
func (d *Dashboard) CanManage() bool {
	return account.CanManageContent(d.Role)
}

// Mount fetches every collection the page shows.
// POST: Loading is false; Data is replaced only when every fetch succeeded
func (d *Dashboard) Mount(ctx context.Context) error {
	d.Loading = true
	defer func() { d.Loading = false }()

	data, err := projections.QueryDashboard(ctx, projections.DashboardQuery{Role: d.Role}, d.svc.Query)
	if err != nil {
		d.Err = err
		return err
	}
	d.Data = data
	d.Err = nil
	return nil
}

// OpenCreate opens an empty form for kind.
func (d *Dashboard) OpenCreate(kind Kind) {
	d.Modal = Modal{Open: true, Kind: kind}
}

// OpenEdit opens the form for an existing record.
func (d *Dashboard) OpenEdit(kind Kind, id string) {
	d.Modal = Modal{Open: true, Kind: kind, EditingID: id}
}

// CloseModal discards the open form.
func (d *Dashboard) CloseModal() {
	d.Modal = Modal{}
}

// Submit saves the open form: an update when a record is being edited, a create otherwise.
// PRE: a modal is open
// POST: on success the modal is closed and the dashboard reloaded;
// on failure the modal stays open and Err holds the cause
func (d *Dashboard) Submit(ctx context.Context, form Form) error {
	if !d.Modal.Open {
		return ErrModalClosed
	}
	if !d.CanManage() {
		d.Err = ErrNotPermitted
		return ErrNotPermitted
	}

	var err error
	if d.Modal.EditingID == "" {
		err = d.create(ctx, d.Modal.Kind, form)
	} else {
		err = d.update(ctx, d.Modal.Kind, d.Modal.EditingID, form)
	}
	if err != nil {
		d.Err = err
		return err
	}

	d.CloseModal()
	return d.Mount(ctx)
}

// RequestDelete asks for confirmation before deleting a record.
func (d *Dashboard) RequestDelete(kind Kind, id string) {
	d.Pending = &Target{Kind: kind, ID: id}
}

// CancelDelete drops the pending confirmation.
func (d *Dashboard) CancelDelete() {
	d.Pending = nil
}

// ConfirmDelete deletes the pending record and reloads.
// POST: Pending is nil
func (d *Dashboard) ConfirmDelete(ctx context.Context) error {
	if d.Pending == nil {
		return ErrNothingPending
	}
	t := *d.Pending
	d.Pending = nil
	if !d.CanManage() {
		d.Err = ErrNotPermitted
		return ErrNotPermitted
	}

	var err error
	switch t.Kind {
	case KindAnnouncement:
		_, err = orchestrators.ExecuteDeleteAnnouncement(ctx, t.ID, d.svc.Announcements)
	case KindEvent:
		_, err = orchestrators.ExecuteDeleteEvent(ctx, t.ID, d.svc.Events)
	case KindSermon:
		_, err = orchestrators.ExecuteDeleteSermon(ctx, t.ID, d.svc.Sermons)
	case KindDepartment:
		_, err = orchestrators.ExecuteDeleteDepartment(ctx, t.ID, d.svc.Departments)
	default:
		err = ErrUnknownKind
	}
	if err != nil {
		d.Err = err
		return err
	}
	return d.Mount(ctx)
}

func (d *Dashboard) create(ctx context.Context, kind Kind, form Form) error {
	switch kind {
	case KindAnnouncement:
		in, err := decodeForm[orchestrators.CreateAnnouncementInput](form)
		if err != nil {
			return err
		}
		_, err = orchestrators.ExecuteCreateAnnouncement(ctx, in, d.svc.Announcements)
		return err
	case KindEvent:
		in, err := decodeForm[orchestrators.CreateEventInput](form)
		if err != nil {
			return err
		}
		_, err = orchestrators.ExecuteCreateEvent(ctx, in, d.svc.Events)
		return err
	case KindSermon:
		in, err := decodeForm[orchestrators.CreateSermonInput](form)
		if err != nil {
			return err
		}
		_, err = orchestrators.ExecuteCreateSermon(ctx, in, d.svc.Sermons)
		return err
	case KindDepartment:
		in, err := decodeForm[orchestrators.CreateDepartmentInput](form)
		if err != nil {
			return err
		}
		_, err = orchestrators.ExecuteCreateDepartment(ctx, in, d.svc.Departments)
		return err
	}
	return ErrUnknownKind
}

func (d *Dashboard) update(ctx context.Context, kind Kind, id string, form Form) error {
	switch kind {
	case KindAnnouncement:
		p, err := decodeForm[announcement.Patch](form)
		if err != nil {
			return err
		}
		_, err = orchestrators.ExecuteUpdateAnnouncement(ctx, id, p, d.svc.Announcements)
		return err
	case KindEvent:
		p, err := decodeForm[event.Patch](form)
		if err != nil {
			return err
		}
		_, err = orchestrators.ExecuteUpdateEvent(ctx, id, p, d.svc.Events)
		return err
	case KindSermon:
		p, err := decodeForm[sermon.Patch](form)
		if err != nil {
			return err
		}
		_, err = orchestrators.ExecuteUpdateSermon(ctx, id, p, d.svc.Sermons)
		return err
	case KindDepartment:
		p, err := decodeForm[department.Patch](form)
		if err != nil {
			return err
		}
		_, err = orchestrators.ExecuteUpdateDepartment(ctx, id, p, d.svc.Departments)
		return err
	}
	return ErrUnknownKind
}

// decodeForm maps form fields onto T through their JSON names.
func decodeForm[T any](form Form) (T, error) {
	var out T
	raw, err := json.Marshal(form)
	if err != nil {
		return out, fmt.Errorf("encode form: %w", err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode form: %w", err)
	}
	return out, nil
}
