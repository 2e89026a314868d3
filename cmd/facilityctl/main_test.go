package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-facilities/components/forms"
	"github.com/goliatone/go-facilities/components/navigation"
	"github.com/goliatone/go-facilities/components/preferences"
	"github.com/goliatone/go-facilities/components/reports"
	"github.com/goliatone/go-facilities/internal/config"
	"github.com/goliatone/go-facilities/pkg/facilities"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, config.Log{Level: "warn", Format: "json"})
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	_, err = newLogger(&buf, config.Log{Level: "loud"})
	assert.Error(t, err)
	_, err = newLogger(&buf, config.Log{Level: "info", Format: "xml"})
	assert.Error(t, err)

	logger, err = newLogger(&buf, config.Log{Level: "debug"})
	require.NoError(t, err)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestApplyPreference(t *testing.T) {
	p := preferences.Defaults()
	require.NoError(t, applyPreference(&p, "theme", "#fff"))
	require.NoError(t, applyPreference(&p, "font", "text-lg"))
	require.NoError(t, applyPreference(&p, "board-view", "List"))
	require.NoError(t, applyPreference(&p, "added", "true"))
	require.NoError(t, applyPreference(&p, "group", "Ops"))
	require.NoError(t, applyPreference(&p, "subgroup", "Ops/Night"))

	assert.Equal(t, "#fff", p.Theme.Color)
	assert.Equal(t, "text-lg", p.Font.Size)
	assert.Equal(t, "List", p.Board.ActiveView)
	assert.True(t, p.Added.Value)
	assert.Contains(t, p.Groups.Names, "Ops")
	assert.Equal(t, []string{"Night"}, p.Groups.SubGroups["Ops"])

	assert.Error(t, applyPreference(&p, "added", "maybe"))
	assert.Error(t, applyPreference(&p, "subgroup", "Ops"))
	assert.Error(t, applyPreference(&p, "colour", "red"))
}

func TestDecodeChecklist(t *testing.T) {
	today := time.Date(2024, 12, 18, 0, 0, 0, 0, time.UTC)
	form, err := decodeChecklist([]byte(`
name: Lobby rounds
priority: high
sections:
  - group: Lobby
    questions:
      - name: Floor clean?
        type: Yes/No
        mandatory: true
`), today)
	require.NoError(t, err)
	assert.Equal(t, "Lobby rounds", form.Name)
	assert.Equal(t, "2024-12-18", form.StartDate)
	require.Len(t, form.Sections, 1)
	assert.Equal(t, "Floor clean?", form.Sections[0].Questions[0].Name)

	_, err = decodeChecklist([]byte("title: nope\n"), today)
	assert.Error(t, err)
}

func TestWritePageFormats(t *testing.T) {
	page := facilities.Page{
		Records:    []facilities.Record{{"id": 1, "name": "Pump, main", "asset_number": "A-1"}},
		Total:      1,
		TotalPages: 1,
		Page:       1,
		PerPage:    10,
	}

	var table bytes.Buffer
	require.NoError(t, writePage(&table, "-", "table", facilities.ResourceAssets, page))
	assert.Contains(t, table.String(), "ID")
	assert.Contains(t, table.String(), "Pump, main")
	assert.Contains(t, table.String(), "Page 1 of 1 (1 records)")

	var csv bytes.Buffer
	require.NoError(t, writePage(&csv, "-", "csv", facilities.ResourceAssets, page))
	assert.Equal(t, "asset_number,id,name\nA-1,1,\"Pump, main\"\n", csv.String())

	var js bytes.Buffer
	require.NoError(t, writePage(&js, "-", "json", facilities.ResourceAssets, page))
	assert.Contains(t, js.String(), `"TotalPages": 1`)

	var empty bytes.Buffer
	require.NoError(t, writePage(&empty, "-", "table", facilities.ResourceAssets, facilities.Page{}))
	assert.Equal(t, "No records found.\n", empty.String())
}

func TestWriteCounts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCounts(&buf, facilities.TicketDashboard{
		ByStatus: map[string]int{"Open": 4, "Closed": 2},
		ByType:   map[string]int{"Complaint": 3},
	}))
	out := buf.String()
	assert.Less(t, strings.Index(out, "Closed"), strings.Index(out, "Open"))
	assert.Contains(t, out, "Complaint")
}

func TestWriteReceipt(t *testing.T) {
	var buf bytes.Buffer
	writeReceipt(&buf, facilities.ReceiptInvoice{
		ReceiptNumber:  "R-1",
		AmountReceived: facilities.NewMoney(decimal.RequireFromString("1500")),
	})
	out := buf.String()
	assert.Contains(t, out, "₹1,500.00")
	assert.Contains(t, out, "one thousand, five hundred")
	assert.Contains(t, out, "Customer")

	buf.Reset()
	writeReceipt(&buf, facilities.ReceiptInvoice{ReceiptNumber: "R-2"})
	assert.Contains(t, buf.String(), "Invalid Amount")
}

func TestWithFileWritesAndPropagatesErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets.xlsx")
	require.NoError(t, writePage(io.Discard, path, "xlsx", facilities.ResourceAssets, facilities.Page{
		Records: []facilities.Record{{"id": float64(1), "name": "Pump"}},
	}))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	boom := errors.New("boom")
	err = withFile(filepath.Join(t.TempDir(), "out.txt"), func(io.Writer) error { return boom })
	assert.ErrorIs(t, err, boom)

	err = withFile(filepath.Join(t.TempDir(), "missing", "out.txt"), func(io.Writer) error { return nil })
	assert.Error(t, err)
}

func TestPantrySaveLayersFlagsOverStoredItem(t *testing.T) {
	cmd := &pantrySaveCmd{ID: "9", Stock: "40"}
	stored := forms.PantryFormFrom(facilities.PantryItem{ID: "9", ItemName: "Green tea", Stock: "12", Description: "Box"})
	form := cmd.form(stored, "77")
	assert.Equal(t, "9", form.ID)
	assert.Equal(t, "Green tea", form.ItemName)
	assert.Equal(t, "40", form.Stock)
	assert.Equal(t, "Box", form.Description)
	assert.Equal(t, "77", form.CreatedByID)

	created := (&pantrySaveCmd{Name: "Coffee", Stock: "3"}).form(forms.PantryForm{}, "77")
	assert.Empty(t, created.ID)
	assert.Equal(t, "Coffee", created.ItemName)
}

func TestAMCSaveLayersFlagsOverStoredContract(t *testing.T) {
	stored := facilities.AMC{ID: 31, AssetID: 4, VendorID: 8, StartDate: "2024-04-01", EndDate: "2025-03-31", Amount: 12000}
	amc := (&amcSaveCmd{ID: 31, End: "2026-03-31"}).amc(stored)
	assert.Equal(t, int64(31), amc.ID)
	assert.Equal(t, int64(4), amc.AssetID)
	assert.Equal(t, "2024-04-01", amc.StartDate)
	assert.Equal(t, "2026-03-31", amc.EndDate)
	assert.Equal(t, 12000.0, amc.Amount)
}

func TestTasksListFilters(t *testing.T) {
	now := time.Date(2024, time.May, 17, 9, 0, 0, 0, time.UTC)
	f := (&tasksListCmd{Status: "overdue", Search: "mop"}).filters(now)
	assert.Equal(t, "2024-05-01", f.StartDate)
	assert.Equal(t, "2024-05-17", f.EndDate)
	assert.Equal(t, facilities.TaskFilterOverdue, f.Status)
	assert.Equal(t, "mop", f.Search)

	f = (&tasksListCmd{From: "2024-01-01", To: "2024-01-31", Status: "all"}).filters(now)
	assert.Equal(t, "2024-01-01", f.StartDate)
	assert.Equal(t, "2024-01-31", f.EndDate)
}

func TestWriteLookups(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeLookups(&buf, facilities.ChecklistLookups{
		Users:     []facilities.Record{{"id": float64(1), "firstname": "Asha", "lastname": "Rao"}},
		Suppliers: []facilities.Record{{"id": float64(2), "company_name": "CleanCo"}},
	}))
	assert.Equal(t, "Supervisors (1)\n  1\tAsha Rao\nSuppliers (1)\n  2\tCleanCo\nGroups (0)\n", buf.String())
}

func TestWriteRecord(t *testing.T) {
	item := facilities.PantryItem{ID: "5", ItemName: "Tea"}
	var buf bytes.Buffer
	require.NoError(t, writeRecord(&buf, item, false))
	assert.Contains(t, buf.String(), "item_name: Tea")

	buf.Reset()
	require.NoError(t, writeRecord(&buf, item, true))
	assert.Contains(t, buf.String(), `"item_name": "Tea"`)
}

func TestWriteTables(t *testing.T) {
	var buf bytes.Buffer
	view := reports.BuildTablesView(reports.Tables(), reports.TableFilter{Status: reports.TableBilled})
	require.NoError(t, writeTables(&buf, view))
	out := buf.String()
	assert.Contains(t, out, "Total 10  Available 6  Running 3  Billed 1")
	assert.Contains(t, out, "T3")
	assert.Contains(t, out, "#1233")
	assert.NotContains(t, out, "First Floor")
}

func TestWriteMenuMarksActiveTrail(t *testing.T) {
	var buf bytes.Buffer
	writeMenu(&buf, navigation.Menu(), "/bills/42", 0)
	out := buf.String()
	assert.Contains(t, out, "* Finance")
	assert.Contains(t, out, "  * Bills  /bills")
	assert.Contains(t, out, "  FM Module")
}
