package facilities

import "strings"

// Resource describes a list endpoint: where it lives, which envelope key holds
// its records, which filters it always carries and which fields a search
// matches against.
type Resource struct {
	Name string
	Path string
	Key  string
	// Base filters applied to every request, e.g. q[is_meter]=true for meters.
	Base map[string]string
	// SearchParam is the query key used for free-text search. Empty means
	// the backend offers no search and matching happens on the client.
	SearchParam  string
	SearchFields []string
}

// Request builds a ListRequest for the resource, merging base filters into q.
func (r Resource) Request(page, perPage int, q *Query) ListRequest {
	query := q.Clone()
	for key, value := range r.Base {
		if query.Get(key) == "" {
			query.Set(key, value)
		}
	}
	return ListRequest{
		Path:        r.Path,
		ResourceKey: r.Key,
		Page:        page,
		PerPage:     perPage,
		Query:       query,
	}
}

// ServerSearch reports whether search terms can be sent to the backend.
func (r Resource) ServerSearch() bool {
	return r.SearchParam != ""
}

// Known resources.
var (
	ResourceTickets = Resource{
		Name:         "tickets",
		Path:         "/pms/admin/complaints.json",
		Key:          "complaints",
		SearchParam:  "q[search_all_fields_cont]",
		SearchFields: []string{"ticket_number", "heading", "category_type", "building_name", "assigned_to"},
	}
	ResourceAssets = Resource{
		Name:         "assets",
		Path:         "/site_assets.json",
		Key:          "site_assets",
		SearchParam:  "q[name_cont]",
		SearchFields: []string{"name", "asset_number", "oem_name"},
	}
	ResourceVisitors = Resource{
		Name:         "visitors",
		Path:         "/visitors.json",
		Key:          "visitors",
		SearchParam:  "q[name_or_contact_no_cont]",
		SearchFields: []string{"name", "contact_no", "purpose", "host_name"},
	}
	ResourceSoftServiceTasks = Resource{
		Name:         "tasks",
		Path:         "/activities.json",
		Key:          "activities",
		Base:         map[string]string{FilterKey("checklist_ctype", "eq"): "soft_service"},
		SearchFields: []string{"soft_service_name", "service_name", "name", "checklist_name"},
	}
	ResourceAMCs = Resource{
		Name:         "amcs",
		Path:         "/asset_amcs.json",
		Key:          "asset_amcs",
		SearchFields: []string{"vendor_name", "asset_name", "contract_number"},
	}
	ResourceMeters = Resource{
		Name:         "meters",
		Path:         "/site_assets.json",
		Key:          "site_assets",
		Base:         map[string]string{FilterKey("is_meter", ""): "true"},
		SearchFields: []string{"name", "asset_number", "oem_name"},
	}
	ResourceRoutineChecklists = Resource{
		Name:         "checklists",
		Path:         "/checklists.json",
		Key:          "checklists",
		Base:         map[string]string{FilterKey("ctype", "eq"): string(ChecklistRoutine)},
		SearchFields: []string{"name", "frequency"},
	}
	ResourcePPMChecklists = Resource{
		Name:         "ppm-checklists",
		Path:         "/checklists.json",
		Key:          "checklists",
		Base:         map[string]string{FilterKey("ctype", "eq"): string(ChecklistPPM)},
		SearchFields: []string{"name", "frequency"},
	}
	ResourceRoutineTasks = Resource{
		Name:         "routine-tasks",
		Path:         "/activities.json",
		Key:          "activities",
		Base:         map[string]string{FilterKey("checklist_ctype", "eq"): string(ChecklistRoutine)},
		SearchFields: []string{"checklist_name", "asset_name", "assigned_to"},
	}
	ResourcePPMActivities = Resource{
		Name:         "ppm",
		Path:         "/activities.json",
		Key:          "activities",
		Base:         map[string]string{FilterKey("checklist_ctype", "eq"): string(ChecklistPPM)},
		SearchFields: []string{"checklist_name", "asset_name", "assigned_to"},
	}
	ResourceSubmissions = Resource{
		Name:         "submissions",
		Path:         "/submissions.json",
		Key:          "submissions",
		Base:         map[string]string{FilterKey("checklist_id", "is_not_null"): "1"},
		SearchFields: []string{"checklist_name", "asset_name"},
	}
	ResourceStockItems = Resource{
		Name:         "stock",
		Path:         "/items.json",
		Key:          "items",
		SearchFields: []string{"name", "item_code", "category"},
	}
	ResourceStockGroups = Resource{
		Name:         "stock-groups",
		Path:         "/asset_groups.json",
		Key:          "asset_groups",
		Base:         map[string]string{FilterKey("group_for", "eq"): "item"},
		SearchFields: []string{"name"},
	}
	ResourcePantry = Resource{
		Name:         "pantry",
		Path:         "/pantries.json",
		Key:          "pantries",
		SearchFields: []string{"item_name", "description"},
	}
)

// Resources lists the known list resources in CLI display order.
func Resources() []Resource {
	return []Resource{
		ResourceTickets,
		ResourceAssets,
		ResourceVisitors,
		ResourceSoftServiceTasks,
		ResourceAMCs,
		ResourceMeters,
		ResourceRoutineChecklists,
		ResourcePPMChecklists,
		ResourceRoutineTasks,
		ResourcePPMActivities,
		ResourceSubmissions,
		ResourceStockItems,
		ResourceStockGroups,
		ResourcePantry,
	}
}

// LookupResource finds a resource by name, case-insensitively.
func LookupResource(name string) (Resource, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, res := range Resources() {
		if res.Name == name {
			return res, true
		}
	}
	return Resource{}, false
}

// MatchesSearch reports whether any of the resource's search fields contain
// term, case-insensitively. An empty term matches everything.
func (r Resource) MatchesSearch(rec Record, term string) bool {
	return MatchAny(rec, term, r.SearchFields...)
}

// MatchAny reports whether any field of rec contains term, case-insensitively.
func MatchAny(rec Record, term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(rec.String(field)), term) {
			return true
		}
	}
	return false
}
