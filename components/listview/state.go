package listview

import "github.com/goliatone/go-facilities/pkg/facilities"

// State is the render state of a list view.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateError
	StateEmpty
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateEmpty:
		return "empty"
	case StateReady:
		return "ready"
	default:
		return "idle"
	}
}

// ViewMode switches between card grid and table rendering.
type ViewMode string

const (
	ViewGrid  ViewMode = "grid"
	ViewTable ViewMode = "table"
)

// PerPage returns the page size used by the mode.
func (m ViewMode) PerPage() int {
	if m == ViewGrid {
		return facilities.PerPageGrid
	}
	return facilities.PerPageTable
}

// Snapshot is an immutable copy of a view's state.
type Snapshot struct {
	Resource   string
	State      State
	Err        string
	Records    []facilities.Record
	Page       int
	PerPage    int
	Total      int
	TotalPages int
	ViewMode   ViewMode
	Search     string
	Filters    map[string]string
	Selected   []string
}

// Range returns the 1-based index of the first and last record on the page,
// as shown in "Showing X to Y of Z".
func (s Snapshot) Range() (int, int) {
	if s.Total == 0 || len(s.Records) == 0 {
		return 0, 0
	}
	from := (s.Page-1)*s.PerPage + 1
	to := s.Page * s.PerPage
	if to > s.Total {
		to = s.Total
	}
	return from, to
}

// HasNext reports whether a following page exists.
func (s Snapshot) HasNext() bool {
	return s.Page < s.TotalPages
}

// HasPrev reports whether a previous page exists.
func (s Snapshot) HasPrev() bool {
	return s.Page > 1
}
