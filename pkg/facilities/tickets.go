package facilities

import "context"

const ticketDashboardPath = "/pms/admin/complaints/dashboard.json"

// TicketFilters are the service desk filters sent as ransack params.
type TicketFilters struct {
	Search     string `json:"search,omitempty"`
	Building   string `json:"building_name,omitempty"`
	Floor      string `json:"floor_name,omitempty"`
	Unit       string `json:"unit_name,omitempty"`
	Status     string `json:"status,omitempty"`
	Priority   string `json:"priority,omitempty"`
	Category   string `json:"category,omitempty"`
	AssignedTo string `json:"assigned_to,omitempty"`
	DateStart  string `json:"date_start,omitempty"`
	DateEnd    string `json:"date_end,omitempty"`
}

// Query renders the filters.
func (f TicketFilters) Query() *Query {
	q := NewQuery()
	if f.Search != "" {
		q.Set(ResourceTickets.SearchParam, f.Search)
	}
	return q.
		Where("building_name", "eq", f.Building).
		Where("floor_name", "eq", f.Floor).
		Where("unit_name", "eq", f.Unit).
		Where("issue_status", "eq", f.Status).
		Where("priority", "eq", f.Priority).
		Where("category_type", "eq", f.Category).
		Where("assigned_to", "eq", f.AssignedTo).
		Where("created_at", "gteq", f.DateStart).
		Where("created_at", "lteq", f.DateEnd)
}

// TicketDashboard holds service desk counters.
type TicketDashboard struct {
	ByStatus map[string]int `json:"by_status"`
	ByType   map[string]int `json:"by_type"`
}

// StatusCount returns the count for a status label, zero when absent.
func (d TicketDashboard) StatusCount(label string) int {
	return d.ByStatus[label]
}

// TypeCount returns the count for a ticket type label, zero when absent.
func (d TicketDashboard) TypeCount(label string) int {
	return d.ByType[label]
}

// TicketLookups are the distinct filter options found in a page of tickets.
type TicketLookups struct {
	Buildings  []string
	Floors     []string
	Units      []string
	Categories []string
	Statuses   []string
	Priorities []string
	Assignees  []string
}

// Tickets lists service desk complaints.
func (c *Client) Tickets(ctx context.Context, page, perPage int, filters TicketFilters) (Page, error) {
	return c.List(ctx, ResourceTickets.Request(page, perPage, filters.Query()))
}

// TicketDashboard fetches the status/type counters.
func (c *Client) TicketDashboard(ctx context.Context) (TicketDashboard, error) {
	var dash TicketDashboard
	if err := c.Get(ctx, ticketDashboardPath, nil, &dash); err != nil {
		return TicketDashboard{}, err
	}
	return dash, nil
}

// BuildTicketLookups collects distinct filter values in first-seen order.
func BuildTicketLookups(tickets []Record) TicketLookups {
	var (
		buildings  = newOrderedSet()
		floors     = newOrderedSet()
		units      = newOrderedSet()
		categories = newOrderedSet()
		statuses   = newOrderedSet()
		priorities = newOrderedSet()
		assignees  = newOrderedSet()
	)
	for _, t := range tickets {
		buildings.add(t.String("building_name"))
		floors.add(t.String("floor_name"))
		units.add(t.FirstString("unit_name", "unit"))
		categories.add(t.FirstString("category_type", "category"))
		statuses.add(TicketStatus(t))
		priorities.add(t.String("priority"))
		assignees.add(t.String("assigned_to"))
	}
	return TicketLookups{
		Buildings:  buildings.items,
		Floors:     floors.items,
		Units:      units.items,
		Categories: categories.items,
		Statuses:   statuses.items,
		Priorities: priorities.items,
		Assignees:  assignees.items,
	}
}

type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: map[string]struct{}{}, items: []string{}}
}

func (s *orderedSet) add(value string) {
	if value == "" {
		return
	}
	if _, ok := s.seen[value]; ok {
		return
	}
	s.seen[value] = struct{}{}
	s.items = append(s.items, value)
}
