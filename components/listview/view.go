package listview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-facilities/pkg/facilities"
)

var (
	// ErrInvalidPageSize is returned for page sizes outside facilities.PageSizes.
	ErrInvalidPageSize = errors.New("listview: invalid page size")
	// ErrSuperseded is returned by a fetch whose result was dropped because a
	// newer request started before it completed.
	ErrSuperseded = errors.New("listview: superseded by a newer request")
)

// Options configures a View.
type Options struct {
	Resource facilities.Resource
	Lister   facilities.Lister
	// PerPage defaults to the view mode's page size.
	PerPage   int
	ViewMode  ViewMode
	Logger    *slog.Logger
	Telemetry Telemetry
}

// View drives one remote list: it owns paging, filters, search and row
// selection, and refetches exactly once for every change. Each reload cancels
// the fetch it supersedes and late responses are discarded.
type View struct {
	resource  facilities.Resource
	lister    facilities.Lister
	logger    *slog.Logger
	telemetry Telemetry

	mu         sync.Mutex
	mode       ViewMode
	page       int
	perPage    int
	filters    map[string]string
	search     string
	state      State
	err        error
	records    []facilities.Record
	total      int
	totalPages int
	selected   map[string]struct{}
	generation uint64
	cancel     context.CancelFunc
}

// New builds a view. The first fetch happens on Load.
func New(opts Options) (*View, error) {
	if opts.Lister == nil {
		return nil, errors.New("listview: lister is required")
	}
	if opts.Resource.Path == "" {
		return nil, errors.New("listview: resource path is required")
	}
	mode := opts.ViewMode
	if mode == "" {
		mode = ViewTable
	}
	perPage := opts.PerPage
	if perPage == 0 {
		perPage = mode.PerPage()
	}
	if !facilities.ValidPageSize(perPage) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPageSize, perPage)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &View{
		resource:  opts.Resource,
		lister:    opts.Lister,
		logger:    logger,
		telemetry: normalizeTelemetry(opts.Telemetry),
		mode:      mode,
		page:      1,
		perPage:   perPage,
		filters:   map[string]string{},
		selected:  map[string]struct{}{},
	}, nil
}

// Load performs the initial fetch.
func (v *View) Load(ctx context.Context) error {
	return v.reload(ctx, nil)
}

// Retry refetches the current page after a failure.
func (v *View) Retry(ctx context.Context) error {
	return v.reload(ctx, nil)
}

// SetPage moves to page n (clamped to 1) and fetches it.
func (v *View) SetPage(ctx context.Context, n int) error {
	return v.reload(ctx, func() {
		if n < 1 {
			n = 1
		}
		v.page = n
	})
}

// NextPage advances one page when one exists.
func (v *View) NextPage(ctx context.Context) error {
	v.mu.Lock()
	next := v.page + 1
	last := v.totalPages
	v.mu.Unlock()
	if next > last {
		return nil
	}
	return v.SetPage(ctx, next)
}

// PrevPage goes back one page when possible.
func (v *View) PrevPage(ctx context.Context) error {
	v.mu.Lock()
	prev := v.page - 1
	v.mu.Unlock()
	if prev < 1 {
		return nil
	}
	return v.SetPage(ctx, prev)
}

// SetPageSize changes the page size, resets to page 1 and fetches once.
func (v *View) SetPageSize(ctx context.Context, size int) error {
	if !facilities.ValidPageSize(size) {
		return fmt.Errorf("%w: %d", ErrInvalidPageSize, size)
	}
	return v.reload(ctx, func() {
		v.perPage = size
		v.page = 1
	})
}

// SetViewMode switches grid/table, adopting the mode's page size from page 1.
func (v *View) SetViewMode(ctx context.Context, mode ViewMode) error {
	if mode != ViewGrid && mode != ViewTable {
		return fmt.Errorf("listview: unknown view mode %q", mode)
	}
	return v.reload(ctx, func() {
		v.mode = mode
		v.perPage = mode.PerPage()
		v.page = 1
	})
}

// SetFilter sets (or clears, for a blank value) a ransack filter and fetches
// page 1.
func (v *View) SetFilter(ctx context.Context, field, predicate, value string) error {
	key := facilities.FilterKey(field, predicate)
	return v.reload(ctx, func() {
		value = strings.TrimSpace(value)
		if value == "" {
			delete(v.filters, key)
		} else {
			v.filters[key] = value
		}
		v.page = 1
	})
}

// ClearFilters drops every filter and the search term, then fetches page 1.
func (v *View) ClearFilters(ctx context.Context) error {
	return v.reload(ctx, func() {
		v.filters = map[string]string{}
		v.search = ""
		v.page = 1
	})
}

// SetSearch changes the free-text term and fetches page 1.
func (v *View) SetSearch(ctx context.Context, term string) error {
	return v.reload(ctx, func() {
		v.search = strings.TrimSpace(term)
		v.page = 1
	})
}

// Toggle flips the selection of one row.
func (v *View) Toggle(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.selected[id]; ok {
		delete(v.selected, id)
		return
	}
	v.selected[id] = struct{}{}
}

// SelectAll selects every visible row, or clears the selection when all
// rows are already selected.
func (v *View) SelectAll() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.records) > 0 && len(v.selected) == len(v.records) {
		v.selected = map[string]struct{}{}
		return
	}
	v.selected = make(map[string]struct{}, len(v.records))
	for _, rec := range v.records {
		v.selected[rec.ID()] = struct{}{}
	}
}

// Selected returns the selected row ids in sorted order.
func (v *View) Selected() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selectedLocked()
}

// Snapshot returns a copy of the current state.
func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	snap := Snapshot{
		Resource:   v.resource.Name,
		State:      v.state,
		Records:    append([]facilities.Record(nil), v.records...),
		Page:       v.page,
		PerPage:    v.perPage,
		Total:      v.total,
		TotalPages: v.totalPages,
		ViewMode:   v.mode,
		Search:     v.search,
		Filters:    make(map[string]string, len(v.filters)),
		Selected:   v.selectedLocked(),
	}
	if v.err != nil {
		snap.Err = v.err.Error()
	}
	for k, val := range v.filters {
		snap.Filters[k] = val
	}
	return snap
}

// State returns the current render state.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Err returns the last fetch error, nil unless State is StateError.
func (v *View) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// reload applies mutate and performs exactly one fetch for the result.
func (v *View) reload(ctx context.Context, mutate func()) error {
	v.mu.Lock()
	if mutate != nil {
		mutate()
	}
	if v.cancel != nil {
		v.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.generation++
	gen := v.generation
	v.state = StateLoading
	v.err = nil
	v.selected = map[string]struct{}{}
	req := v.requestLocked()
	v.mu.Unlock()

	start := time.Now()
	page, err := v.lister.List(fetchCtx, req)
	cancel()

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.generation {
		v.logger.DebugContext(ctx, "listview dropped stale response",
			"resource", v.resource.Name, "generation", gen)
		return ErrSuperseded
	}
	v.cancel = nil
	payload := map[string]any{
		"resource": v.resource.Name,
		"page":     req.Page,
		"per_page": req.PerPage,
		"duration": time.Since(start).String(),
	}
	if err != nil {
		v.state = StateError
		v.err = err
		v.records = nil
		v.total = 0
		v.totalPages = 0
		payload["error"] = err.Error()
		v.telemetry.Record(ctx, "listview.fetch.failed", payload)
		v.logger.WarnContext(ctx, "listview fetch failed", "resource", v.resource.Name, "error", err)
		return err
	}

	records := page.Records
	if v.search != "" && !v.resource.ServerSearch() {
		records = filterRecords(records, v.resource, v.search)
	}
	v.records = records
	v.total = page.Total
	v.totalPages = page.TotalPages
	if len(records) == 0 {
		v.state = StateEmpty
	} else {
		v.state = StateReady
	}
	payload["records"] = len(records)
	payload["state"] = v.state.String()
	v.telemetry.Record(ctx, "listview.fetch", payload)
	return nil
}

func (v *View) requestLocked() facilities.ListRequest {
	q := facilities.NewQuery()
	for key, value := range v.filters {
		q.Set(key, value)
	}
	if v.search != "" && v.resource.ServerSearch() {
		q.Set(v.resource.SearchParam, v.search)
	}
	return v.resource.Request(v.page, v.perPage, q)
}

func (v *View) selectedLocked() []string {
	out := make([]string, 0, len(v.selected))
	for id := range v.selected {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func filterRecords(records []facilities.Record, res facilities.Resource, term string) []facilities.Record {
	out := make([]facilities.Record, 0, len(records))
	for _, rec := range records {
		if res.MatchesSearch(rec, term) {
			out = append(out, rec)
		}
	}
	return out
}
