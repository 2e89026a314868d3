package queries

import (
	"context"
	"fmt"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-facilities/pkg/facilities"
)

// PageInput selects one page of a named resource.
type PageInput struct {
	Resource string
	Page     int
	PerPage  int
	Filters  map[string]string
	Search   string
}

// PageQuery fetches a single page without a stateful view, for CLI and
// preview callers.
type PageQuery struct {
	lister facilities.Lister
}

// NewPageQuery builds the query.
func NewPageQuery(lister facilities.Lister) *PageQuery {
	return &PageQuery{lister: lister}
}

var _ gocommand.Querier[PageInput, facilities.Page] = (*PageQuery)(nil)

// Query resolves the resource and lists the requested page. Filters are
// ransack keys without the q[] wrapper, e.g. "status_eq".
func (q *PageQuery) Query(ctx context.Context, input PageInput) (facilities.Page, error) {
	res, ok := facilities.LookupResource(input.Resource)
	if !ok {
		return facilities.Page{}, fmt.Errorf("listview: unknown resource %q", input.Resource)
	}
	perPage := input.PerPage
	if perPage == 0 {
		perPage = facilities.DefaultPerPage
	}
	if !facilities.ValidPageSize(perPage) {
		return facilities.Page{}, fmt.Errorf("listview: invalid page size %d", perPage)
	}
	query := facilities.NewQuery()
	for key, value := range input.Filters {
		query.Where(key, "", value)
	}
	if input.Search != "" && res.ServerSearch() {
		query.Set(res.SearchParam, input.Search)
	}
	page, err := q.lister.List(ctx, res.Request(input.Page, perPage, query))
	if err != nil {
		return facilities.Page{}, err
	}
	if input.Search != "" && !res.ServerSearch() {
		filtered := page.Records[:0:0]
		for _, rec := range page.Records {
			if res.MatchesSearch(rec, input.Search) {
				filtered = append(filtered, rec)
			}
		}
		page.Records = filtered
	}
	return page, nil
}
