package viewstate

import (
	"errors"
	"slices"

	"churchportal/internal/domain/account"
)

// ErrUnknownTab is returned when selecting a tab the page does not have.
var ErrUnknownTab = errors.New("unknown tab")

// Tabs is an ordered tab strip with one active tab.
// INVARIANT: Active() is one of IDs() whenever IDs() is non-empty
type Tabs struct {
	ids    []string
	active string
}

// NewTabs creates a strip with the first id active.
func NewTabs(ids ...string) *Tabs {
	t := &Tabs{ids: slices.Clone(ids)}
	if len(ids) > 0 {
		t.active = ids[0]
	}
	return t
}

// IDs returns the tab ids in display order.
func (t *Tabs) IDs() []string { return slices.Clone(t.ids) }

// Active returns the selected tab id.
func (t *Tabs) Active() string { return t.active }

// Select activates id. The active tab is unchanged on error.
func (t *Tabs) Select(id string) error {
	if !slices.Contains(t.ids, id) {
		return ErrUnknownTab
	}
	t.active = id
	return nil
}

// DepartmentPage describes a department's landing page.
type DepartmentPage struct {
	Slug string
	Name string
	Tabs []string
	// Manage reports whether a role may edit the page's records.
	Manage func(role string) bool
}

// Department pages
var (
	SabbathSchoolPage = DepartmentPage{
		Slug: "sabbath-school", Name: "Sabbath School",
		Tabs:   []string{"schedule", "outreach", "materials"},
		Manage: account.CanManageContent,
	}
	TreasuryPage = DepartmentPage{
		Slug: "treasury", Name: "Treasury",
		Tabs:   []string{"contributions", "budgets", "reports"},
		Manage: account.CanManageFinance,
	}
	CommunicationPage = DepartmentPage{
		Slug: "communication", Name: "Communication",
		Tabs:   []string{"announcements", "media", "press"},
		Manage: account.CanManageContent,
	}
	AdventistYouthPage = DepartmentPage{
		Slug: "adventist-youth", Name: "Adventist Youth",
		Tabs:   []string{"activities", "pathfinders", "events"},
		Manage: account.CanManageContent,
	}
)

// DepartmentPages lists every department page in navigation order.
var DepartmentPages = []DepartmentPage{SabbathSchoolPage, TreasuryPage, CommunicationPage, AdventistYouthPage}

// ErrUnknownPage is returned for a department slug with no page.
var ErrUnknownPage = errors.New("unknown department page")

// PageBySlug looks up a department page.
func PageBySlug(slug string) (DepartmentPage, error) {
	for _, p := range DepartmentPages {
		if p.Slug == slug {
			return p, nil
		}
	}
	return DepartmentPage{}, ErrUnknownPage
}

// NewTabs creates the page's tab strip with its first tab active.
func (p DepartmentPage) NewTabs() *Tabs {
	return NewTabs(p.Tabs...)
}
