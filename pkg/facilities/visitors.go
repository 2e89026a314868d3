package facilities

import "context"

// VisitorTab selects which visitors a list shows.
type VisitorTab string

const (
	VisitorTabAll VisitorTab = "all"
	VisitorTabIn  VisitorTab = "in"
	VisitorTabOut VisitorTab = "out"
)

// VisitorFilters narrows the visitor list.
type VisitorFilters struct {
	Search string
	Status string
	// InOut is "in" or "out"; blank lists both.
	InOut string
}

// ForTab returns a copy of the filters with InOut set from the tab.
func (f VisitorFilters) ForTab(tab VisitorTab) VisitorFilters {
	switch tab {
	case VisitorTabIn, VisitorTabOut:
		f.InOut = string(tab)
	default:
		f.InOut = ""
	}
	return f
}

// Query renders the filters.
func (f VisitorFilters) Query() *Query {
	q := NewQuery()
	if f.Search != "" {
		q.Set(ResourceVisitors.SearchParam, f.Search)
	}
	return q.
		Where("status", "eq", f.Status).
		Where("visitor_in_out", "eq", f.InOut)
}

// Visitors lists visitors.
func (c *Client) Visitors(ctx context.Context, page, perPage int, filters VisitorFilters) (Page, error) {
	return c.List(ctx, ResourceVisitors.Request(page, perPage, filters.Query()))
}
