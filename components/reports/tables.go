package reports

import (
	"strconv"
	"strings"
)

// TableStatus is the occupancy state of a dining table.
type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableRunning   TableStatus = "running"
	TableBilled    TableStatus = "billed"
	// StatusAll disables status filtering.
	StatusAll TableStatus = "all"
)

// Label is the display name of the status.
func (s TableStatus) Label() string {
	switch s {
	case TableAvailable:
		return "Available"
	case TableRunning:
		return "Running"
	case TableBilled:
		return "Billed"
	}
	return string(s)
}

// Floor identifiers used by TableFilter.
const (
	FloorAll    = "all"
	FloorGround = "ground"
	FloorFirst  = "first"
)

// OrderDetails describes the open order on a running or billed table.
type OrderDetails struct {
	OrderID    string  `json:"order_id" yaml:"order_id"`
	StartedAgo string  `json:"started_ago" yaml:"started_ago"`
	Amount     float64 `json:"amount" yaml:"amount"`
	Waiter     string  `json:"waiter" yaml:"waiter"`
}

// Table is one dining table on the floor plan.
type Table struct {
	ID       int           `json:"id" yaml:"id"`
	Number   int           `json:"number" yaml:"number"`
	Floor    string        `json:"floor" yaml:"floor"`
	FloorID  string        `json:"floor_id" yaml:"floor_id"`
	Capacity int           `json:"capacity" yaml:"capacity"`
	Status   TableStatus   `json:"status" yaml:"status"`
	LastUsed string        `json:"last_used,omitempty" yaml:"last_used,omitempty"`
	Order    *OrderDetails `json:"order,omitempty" yaml:"order,omitempty"`
}

// Tables returns a fresh copy of the restaurant floor plan.
func Tables() []Table {
	return []Table{
		{ID: 1, Number: 1, Floor: "Ground Floor", FloorID: FloorGround, Capacity: 4, Status: TableAvailable, LastUsed: "2 hours ago"},
		{ID: 2, Number: 2, Floor: "Ground Floor", FloorID: FloorGround, Capacity: 2, Status: TableRunning, Order: &OrderDetails{OrderID: "#1234", StartedAgo: "25 mins", Amount: 850, Waiter: "Raj Kumar"}},
		{ID: 3, Number: 3, Floor: "Ground Floor", FloorID: FloorGround, Capacity: 6, Status: TableBilled, Order: &OrderDetails{OrderID: "#1233", StartedAgo: "45 mins", Amount: 1240, Waiter: "Sam Singh"}},
		{ID: 4, Number: 4, Floor: "Ground Floor", FloorID: FloorGround, Capacity: 4, Status: TableAvailable, LastUsed: "1 hour ago"},
		{ID: 5, Number: 5, Floor: "Ground Floor", FloorID: FloorGround, Capacity: 4, Status: TableRunning, Order: &OrderDetails{OrderID: "#1235", StartedAgo: "15 mins", Amount: 650, Waiter: "Sam Singh"}},
		{ID: 6, Number: 6, Floor: "Ground Floor", FloorID: FloorGround, Capacity: 2, Status: TableAvailable, LastUsed: "3 hours ago"},
		{ID: 7, Number: 7, Floor: "First Floor", FloorID: FloorFirst, Capacity: 4, Status: TableAvailable, LastUsed: "4 hours ago"},
		{ID: 8, Number: 8, Floor: "First Floor", FloorID: FloorFirst, Capacity: 4, Status: TableAvailable, LastUsed: "5 hours ago"},
		{ID: 9, Number: 9, Floor: "First Floor", FloorID: FloorFirst, Capacity: 6, Status: TableRunning, Order: &OrderDetails{OrderID: "#1236", StartedAgo: "40 mins", Amount: 1100, Waiter: "Raj Kumar"}},
		{ID: 10, Number: 10, Floor: "First Floor", FloorID: FloorFirst, Capacity: 2, Status: TableAvailable, LastUsed: "30 mins ago"},
	}
}

// TableStats counts tables per status.
type TableStats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Running   int `json:"running"`
	Billed    int `json:"billed"`
}

// Stats summarizes tables. It always covers the unfiltered set passed in.
func Stats(tables []Table) TableStats {
	stats := TableStats{Total: len(tables)}
	for _, t := range tables {
		switch t.Status {
		case TableAvailable:
			stats.Available++
		case TableRunning:
			stats.Running++
		case TableBilled:
			stats.Billed++
		}
	}
	return stats
}

// TableFilter narrows the floor plan. Blank Floor and Status mean "all".
type TableFilter struct {
	Search string
	Floor  string
	Status TableStatus
}

// Match reports whether t passes the filter. Search matches a substring of
// the table number.
func (f TableFilter) Match(t Table) bool {
	if term := strings.TrimSpace(f.Search); term != "" && !strings.Contains(strconv.Itoa(t.Number), term) {
		return false
	}
	if f.Floor != "" && f.Floor != FloorAll && t.FloorID != f.Floor {
		return false
	}
	if f.Status != "" && f.Status != StatusAll && t.Status != f.Status {
		return false
	}
	return true
}

// Filter returns the tables that pass f, in their original order.
func (f TableFilter) Filter(tables []Table) []Table {
	out := make([]Table, 0, len(tables))
	for _, t := range tables {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// FloorGroup is the set of tables on one floor.
type FloorGroup struct {
	Floor  string  `json:"floor"`
	Tables []Table `json:"tables"`
}

// GroupByFloor groups tables by floor name, keeping the order in which floors
// first appear.
func GroupByFloor(tables []Table) []FloorGroup {
	var groups []FloorGroup
	index := map[string]int{}
	for _, t := range tables {
		i, ok := index[t.Floor]
		if !ok {
			i = len(groups)
			index[t.Floor] = i
			groups = append(groups, FloorGroup{Floor: t.Floor})
		}
		groups[i].Tables = append(groups[i].Tables, t)
	}
	return groups
}

// CompletePayment frees a billed table: it becomes available, used "Just now"
// and loses its order. It reports whether a table with id was found.
func CompletePayment(tables []Table, id int) bool {
	for i := range tables {
		if tables[i].ID != id {
			continue
		}
		tables[i].Status = TableAvailable
		tables[i].LastUsed = "Just now"
		tables[i].Order = nil
		return true
	}
	return false
}
