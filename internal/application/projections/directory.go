package projections

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"churchportal/internal/application/listutil"
	"churchportal/internal/domain/member"
)

// DirectorySortColumns are the columns the directory can be sorted by.
var DirectorySortColumns = []string{"name", "department", "role"}

// DirectoryQuery carries the search text, sort order and page.
type DirectoryQuery struct {
	Search string
	Sort   listutil.SortParams
	Page   listutil.PageParams
}

// DirectoryDeps holds dependencies for QueryDirectory.
type DirectoryDeps struct {
	MemberStore MemberStore
}

// DirectoryResult is one page of matching members.
type DirectoryResult struct {
	Members []member.Member   `json:"members"`
	Page    listutil.PageInfo `json:"page"`
}

// QueryDirectory searches members by full name or department, case-insensitively.
// PRE: query.Page was produced by listutil.ParsePageParams
// POST: Page.Total counts every match; Members holds only the requested page
func QueryDirectory(ctx context.Context, query DirectoryQuery, deps DirectoryDeps) (DirectoryResult, error) {
	all, err := deps.MemberStore.List(ctx)
	if err != nil {
		return DirectoryResult{}, err
	}

	matches := make([]member.Member, 0, len(all))
	for _, m := range all {
		if m.Matches(query.Search) {
			matches = append(matches, m)
		}
	}
	sortMembers(matches, query.Sort)

	info := listutil.NewPageInfo(query.Page.Page, query.Page.PerPage, len(matches))
	return DirectoryResult{
		Members: slices.Clone(listutil.Window(matches, info)),
		Page:    info,
	}, nil
}

func sortMembers(ms []member.Member, s listutil.SortParams) {
	var key func(m member.Member) string
	switch s.Sort {
	case "name":
		key = func(m member.Member) string { return strings.ToLower(m.LastName + " " + m.FirstName) }
	case "department":
		key = func(m member.Member) string { return strings.ToLower(m.Department) }
	case "role":
		key = func(m member.Member) string { return m.Role }
	default:
		return
	}
	slices.SortStableFunc(ms, func(a, b member.Member) int {
		c := cmp.Compare(key(a), key(b))
		if s.Dir == "desc" {
			return -c
		}
		return c
	})
}
