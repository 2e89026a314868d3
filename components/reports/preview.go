package reports

// TablesView is the payload behind the tables screen. Stats always cover the
// whole floor plan while Groups reflect the filter.
type TablesView struct {
	Stats  TableStats   `json:"stats"`
	Groups []FloorGroup `json:"groups"`
}

// BuildTablesView filters tables and groups the survivors by floor.
func BuildTablesView(tables []Table, filter TableFilter) TablesView {
	return TablesView{
		Stats:  Stats(tables),
		Groups: GroupByFloor(filter.Filter(tables)),
	}
}

// ReportSummary is a report tab without its chart data.
type ReportSummary struct {
	ID     string   `json:"id"`
	Label  string   `json:"label"`
	Charts []string `json:"charts"`
}

// Index lists every report with the ids of its charts.
func Index() []ReportSummary {
	all := Reports()
	out := make([]ReportSummary, len(all))
	for i, r := range all {
		ids := make([]string, len(r.Charts))
		for j, c := range r.Charts {
			ids[j] = c.ID
		}
		out[i] = ReportSummary{ID: r.ID, Label: r.Label, Charts: ids}
	}
	return out
}
