package web

import (
	"context"
	"net/http"

	"churchportal/internal/adapters/http/middleware"
	"churchportal/internal/adapters/markdown"
	"churchportal/internal/application/orchestrators"
	"churchportal/internal/application/projections"
	"churchportal/internal/domain/announcement"
	"churchportal/internal/domain/department"
	"churchportal/internal/domain/event"
	"churchportal/internal/domain/member"
	"churchportal/internal/domain/sermon"
)

// gate authorizes a request, writing the rejection itself when it fails.
type gate func(w http.ResponseWriter, r *http.Request) (ok bool)

func gateOf(f func(http.ResponseWriter, *http.Request) (middleware.Session, bool)) gate {
	return func(w http.ResponseWriter, r *http.Request) bool {
		_, ok := f(w, r)
		return ok
	}
}

// collection serves list, create, update and delete for one entity kind.
// T is the record, In the create body, P the update patch.
type collection[T, In, P any] struct {
	read, write gate
	list        func(ctx context.Context) ([]T, error)
	create      func(ctx context.Context, in In) (T, error)
	update      func(ctx context.Context, id string, p P) (T, error)
	remove      func(ctx context.Context, id string) (orchestrators.DeleteResult, error)
	present     func(T) any // optional response shaping
}

func (c collection[T, In, P]) view(v T) any {
	if c.present == nil {
		return v
	}
	return c.present(v)
}

func (c collection[T, In, P]) handleList(w http.ResponseWriter, r *http.Request) {
	if !c.read(w, r) {
		return
	}
	items, err := c.list(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	out := make([]any, 0, len(items))
	for _, it := range items {
		out = append(out, c.view(it))
	}
	writeJSON(w, http.StatusOK, out)
}

func (c collection[T, In, P]) handleCreate(w http.ResponseWriter, r *http.Request) {
	if !c.write(w, r) {
		return
	}
	var in In
	if err := strictDecode(r, &in); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	created, err := c.create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c.view(created))
}

func (c collection[T, In, P]) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if !c.write(w, r) {
		return
	}
	var p P
	if err := strictDecode(r, &p); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	updated, err := c.update(r.Context(), r.PathValue("id"), p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c.view(updated))
}

func (c collection[T, In, P]) handleDelete(w http.ResponseWriter, r *http.Request) {
	if !c.write(w, r) {
		return
	}
	res, err := c.remove(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// register mounts the collection under /api/<name>. PUT and PATCH both merge.
func (c collection[T, In, P]) register(mux *http.ServeMux, name string) {
	base := "/api/" + name
	mux.HandleFunc("GET "+base, c.handleList)
	mux.HandleFunc("POST "+base, c.handleCreate)
	mux.HandleFunc("PUT "+base+"/{id}", c.handleUpdate)
	mux.HandleFunc("PATCH "+base+"/{id}", c.handleUpdate)
	mux.HandleFunc("DELETE "+base+"/{id}", c.handleDelete)
}

// announcementView adds the rendered Markdown body.
type announcementView struct {
	announcement.Announcement
	ContentHTML string `json:"content_html"`
}

func presentAnnouncement(a announcement.Announcement) any {
	return announcementView{Announcement: a, ContentHTML: markdown.RenderOrEscape(a.Content)}
}

func listDeps() projections.ListDeps {
	return projections.ListDeps{
		AnnouncementStore: stores.Announcements,
		EventStore:        stores.Events,
		SermonStore:       stores.Sermons,
		DepartmentStore:   stores.Departments,
		MemberStore:       stores.Members,
	}
}

func announcementDeps() orchestrators.AnnouncementDeps {
	return orchestrators.AnnouncementDeps{
		AnnouncementStore: stores.Announcements,
		GenerateID:        generateID,
		Now:               timeNow,
		Observer:          recorder,
	}
}

func eventDeps() orchestrators.EventDeps {
	return orchestrators.EventDeps{EventStore: stores.Events, GenerateID: generateID, Observer: recorder}
}

func sermonDeps() orchestrators.SermonDeps {
	return orchestrators.SermonDeps{SermonStore: stores.Sermons, GenerateID: generateID, Observer: recorder}
}

func departmentDeps() orchestrators.DepartmentDeps {
	return orchestrators.DepartmentDeps{DepartmentStore: stores.Departments, GenerateID: generateID, Observer: recorder}
}

func memberDeps() orchestrators.MemberDeps {
	return orchestrators.MemberDeps{MemberStore: stores.Members, GenerateID: generateID, Observer: recorder}
}

func announcementCollection() collection[announcement.Announcement, orchestrators.CreateAnnouncementInput, announcement.Patch] {
	return collection[announcement.Announcement, orchestrators.CreateAnnouncementInput, announcement.Patch]{
		read:  gateOf(anyone),
		write: gateOf(requireContentManager),
		list: func(ctx context.Context) ([]announcement.Announcement, error) {
			return projections.QueryListAnnouncements(ctx, listDeps())
		},
		create: func(ctx context.Context, in orchestrators.CreateAnnouncementInput) (announcement.Announcement, error) {
			return orchestrators.ExecuteCreateAnnouncement(ctx, in, announcementDeps())
		},
		update: func(ctx context.Context, id string, p announcement.Patch) (announcement.Announcement, error) {
			return orchestrators.ExecuteUpdateAnnouncement(ctx, id, p, announcementDeps())
		},
		remove: func(ctx context.Context, id string) (orchestrators.DeleteResult, error) {
			return orchestrators.ExecuteDeleteAnnouncement(ctx, id, announcementDeps())
		},
		present: presentAnnouncement,
	}
}

func eventCollection() collection[event.Event, orchestrators.CreateEventInput, event.Patch] {
	return collection[event.Event, orchestrators.CreateEventInput, event.Patch]{
		read:  gateOf(anyone),
		write: gateOf(requireContentManager),
		list: func(ctx context.Context) ([]event.Event, error) {
			return projections.QueryListEvents(ctx, listDeps())
		},
		create: func(ctx context.Context, in orchestrators.CreateEventInput) (event.Event, error) {
			return orchestrators.ExecuteCreateEvent(ctx, in, eventDeps())
		},
		update: func(ctx context.Context, id string, p event.Patch) (event.Event, error) {
			return orchestrators.ExecuteUpdateEvent(ctx, id, p, eventDeps())
		},
		remove: func(ctx context.Context, id string) (orchestrators.DeleteResult, error) {
			return orchestrators.ExecuteDeleteEvent(ctx, id, eventDeps())
		},
	}
}

func sermonCollection() collection[sermon.Sermon, orchestrators.CreateSermonInput, sermon.Patch] {
	return collection[sermon.Sermon, orchestrators.CreateSermonInput, sermon.Patch]{
		read:  gateOf(anyone),
		write: gateOf(requireContentManager),
		list: func(ctx context.Context) ([]sermon.Sermon, error) {
			return projections.QueryListSermons(ctx, listDeps())
		},
		create: func(ctx context.Context, in orchestrators.CreateSermonInput) (sermon.Sermon, error) {
			return orchestrators.ExecuteCreateSermon(ctx, in, sermonDeps())
		},
		update: func(ctx context.Context, id string, p sermon.Patch) (sermon.Sermon, error) {
			return orchestrators.ExecuteUpdateSermon(ctx, id, p, sermonDeps())
		},
		remove: func(ctx context.Context, id string) (orchestrators.DeleteResult, error) {
			return orchestrators.ExecuteDeleteSermon(ctx, id, sermonDeps())
		},
	}
}

func departmentCollection() collection[department.Department, orchestrators.CreateDepartmentInput, department.Patch] {
	return collection[department.Department, orchestrators.CreateDepartmentInput, department.Patch]{
		read:  gateOf(anyone),
		write: gateOf(requireAdmin),
		list: func(ctx context.Context) ([]department.Department, error) {
			return projections.QueryListDepartments(ctx, listDeps())
		},
		create: func(ctx context.Context, in orchestrators.CreateDepartmentInput) (department.Department, error) {
			return orchestrators.ExecuteCreateDepartment(ctx, in, departmentDeps())
		},
		update: func(ctx context.Context, id string, p department.Patch) (department.Department, error) {
			return orchestrators.ExecuteUpdateDepartment(ctx, id, p, departmentDeps())
		},
		remove: func(ctx context.Context, id string) (orchestrators.DeleteResult, error) {
			return orchestrators.ExecuteDeleteDepartment(ctx, id, departmentDeps())
		},
	}
}

func memberCollection() collection[member.Member, orchestrators.CreateMemberInput, member.Patch] {
	return collection[member.Member, orchestrators.CreateMemberInput, member.Patch]{
		read:  gateOf(requireAdmin),
		write: gateOf(requireAdmin),
		list: func(ctx context.Context) ([]member.Member, error) {
			return projections.QueryListMembers(ctx, listDeps())
		},
		create: func(ctx context.Context, in orchestrators.CreateMemberInput) (member.Member, error) {
			return orchestrators.ExecuteCreateMember(ctx, in, memberDeps())
		},
		update: func(ctx context.Context, id string, p member.Patch) (member.Member, error) {
			return orchestrators.ExecuteUpdateMember(ctx, id, p, memberDeps())
		},
		remove: func(ctx context.Context, id string) (orchestrators.DeleteResult, error) {
			return orchestrators.ExecuteDeleteMember(ctx, id, memberDeps())
		},
	}
}
