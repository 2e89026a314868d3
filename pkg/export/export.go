// Package export writes record slices as CSV or XLSX.
package export

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-facilities/pkg/textutil"
	"github.com/tealeg/xlsx/v3"
)

// Column maps a record key to a header title.
type Column struct {
	Key   string
	Title string
}

// Columns builds columns for keys, titling each with textutil.Humanize.
func Columns(keys ...string) []Column {
	cols := make([]Column, len(keys))
	for i, key := range keys {
		cols[i] = Column{Key: key, Title: textutil.Humanize(key)}
	}
	return cols
}

// KeysOf returns the sorted keys of the first row, used when no columns are
// given.
func KeysOf[M ~map[string]any](rows []M) []string {
	if len(rows) == 0 {
		return nil
	}
	keys := make([]string, 0, len(rows[0]))
	for k := range rows[0] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WriteCSV writes a header line of raw keys and one line per row. Only
// values containing a comma are quoted, with inner quotes doubled. Nothing
// is written for an empty slice.
func WriteCSV[M ~map[string]any](w io.Writer, rows []M, keys []string) error {
	if len(rows) == 0 {
		return nil
	}
	if len(keys) == 0 {
		keys = KeysOf(rows)
	}
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(keys, ","))
	for _, row := range rows {
		cells := make([]string, len(keys))
		for i, key := range keys {
			cells[i] = csvCell(row[key])
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	if _, err := io.WriteString(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("export: write csv: %w", err)
	}
	return nil
}

func csvCell(v any) string {
	s, isString := v.(string)
	if !isString {
		return Stringify(v)
	}
	if strings.Contains(s, ",") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

// WriteXLSX writes rows to a single-sheet workbook with a titled header row.
func WriteXLSX[M ~map[string]any](w io.Writer, sheet string, rows []M, cols []Column) error {
	if len(cols) == 0 {
		cols = Columns(KeysOf(rows)...)
	}
	if sheet == "" {
		sheet = "Sheet1"
	}
	file := xlsx.NewFile()
	sh, err := file.AddSheet(sheet)
	if err != nil {
		return fmt.Errorf("export: add sheet: %w", err)
	}
	header := sh.AddRow()
	for _, col := range cols {
		header.AddCell().SetString(col.Title)
	}
	for _, rec := range rows {
		row := sh.AddRow()
		for _, col := range cols {
			cell := row.AddCell()
			switch v := rec[col.Key].(type) {
			case float64:
				cell.SetFloat(v)
			case int:
				cell.SetInt(v)
			case int64:
				cell.SetInt64(v)
			case bool:
				cell.SetBool(v)
			default:
				cell.SetString(Stringify(v))
			}
		}
	}
	if err := file.Write(w); err != nil {
		return fmt.Errorf("export: write xlsx: %w", err)
	}
	return nil
}

// Stringify renders a cell value; nil is empty and nested values use fmt.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
