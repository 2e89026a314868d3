package reports

import (
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-facilities/pkg/export"
)

// Export formats accepted by ExportChart.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Rows flattens a chart into one row per label with a column per series.
func (c Chart) Rows() []map[string]any {
	labels := c.Labels()
	rows := make([]map[string]any, len(labels))
	for i, label := range labels {
		rows[i] = map[string]any{"label": label}
	}
	for _, s := range c.Series {
		for i, p := range s.Points {
			if i < len(rows) {
				rows[i][s.Name] = p.Value
			}
		}
	}
	return rows
}

// Columns returns the label column followed by one column per series.
func (c Chart) Columns() []export.Column {
	cols := []export.Column{{Key: "label", Title: "Label"}}
	for _, s := range c.Series {
		cols = append(cols, export.Column{Key: s.Name, Title: s.Name})
	}
	return cols
}

// ExportChart writes a chart's data as CSV or XLSX.
func ExportChart(w io.Writer, c Chart, format string) error {
	switch strings.ToLower(format) {
	case FormatCSV:
		cols := c.Columns()
		keys := make([]string, len(cols))
		for i, col := range cols {
			keys[i] = col.Key
		}
		return export.WriteCSV(w, c.Rows(), keys)
	case FormatXLSX, "excel":
		return export.WriteXLSX(w, c.Title, c.Rows(), c.Columns())
	default:
		return fmt.Errorf("reports: unsupported export format %q", format)
	}
}
