package reports

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"
)

func TestTableStats(t *testing.T) {
	stats := Stats(Tables())
	assert.Equal(t, TableStats{Total: 10, Available: 6, Running: 3, Billed: 1}, stats)
}

func TestTableFilter(t *testing.T) {
	tables := Tables()
	assert.Len(t, TableFilter{}.Filter(tables), 10)
	assert.Len(t, TableFilter{Floor: FloorFirst}.Filter(tables), 4)
	assert.Len(t, TableFilter{Floor: FloorAll, Status: StatusAll}.Filter(tables), 10)

	running := TableFilter{Status: TableRunning}.Filter(tables)
	require.Len(t, running, 3)
	assert.Equal(t, []int{2, 5, 9}, []int{running[0].Number, running[1].Number, running[2].Number})

	// "1" matches tables 1 and 10.
	assert.Len(t, TableFilter{Search: "1"}.Filter(tables), 2)
	assert.Empty(t, TableFilter{Search: "1", Floor: FloorGround, Status: TableBilled}.Filter(tables))
}

func TestGroupByFloorKeepsFirstSeenOrder(t *testing.T) {
	groups := GroupByFloor(Tables())
	require.Len(t, groups, 2)
	assert.Equal(t, "Ground Floor", groups[0].Floor)
	assert.Len(t, groups[0].Tables, 6)
	assert.Equal(t, "First Floor", groups[1].Floor)
	assert.Len(t, groups[1].Tables, 4)
	assert.Empty(t, GroupByFloor(nil))
}

func TestCompletePayment(t *testing.T) {
	tables := Tables()
	require.True(t, CompletePayment(tables, 3))
	assert.Equal(t, TableAvailable, tables[2].Status)
	assert.Equal(t, "Just now", tables[2].LastUsed)
	assert.Nil(t, tables[2].Order)
	assert.False(t, CompletePayment(tables, 99))

	assert.Equal(t, TableBilled, Tables()[2].Status)
}

func TestBuildTablesViewStatsIgnoreFilter(t *testing.T) {
	view := BuildTablesView(Tables(), TableFilter{Floor: FloorFirst})
	assert.Equal(t, 10, view.Stats.Total)
	require.Len(t, view.Groups, 1)
	assert.Equal(t, "First Floor", view.Groups[0].Floor)
}

func TestReportsLookup(t *testing.T) {
	ids := make([]string, 0, 5)
	for _, summary := range Index() {
		ids = append(ids, summary.ID)
		assert.NotEmpty(t, summary.Charts)
	}
	assert.Equal(t, []string{"sales", "financial", "inventory", "items", "staff"}, ids)

	rep, err := Lookup(" Sales ")
	require.NoError(t, err)
	chart, ok := rep.Chart("daily")
	require.True(t, ok)
	assert.Equal(t, ChartLine, chart.Kind)
	assert.Len(t, chart.Labels(), 18)

	_, err = Lookup("payroll")
	assert.True(t, errors.Is(err, ErrUnknownReport))
}

func TestChartRows(t *testing.T) {
	rep, err := Lookup(ReportFinancial)
	require.NoError(t, err)
	chart, ok := rep.Chart("monthly_comparison")
	require.True(t, ok)
	rows := chart.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "Dec", rows[2]["label"])
	assert.Equal(t, 456780.0, rows[2]["Revenue"])
	assert.Equal(t, 87780.0, rows[2]["Net Profit"])
}

func TestExportChart(t *testing.T) {
	rep, err := Lookup(ReportSales)
	require.NoError(t, err)
	chart, _ := rep.Chart("payment_methods")

	var csv bytes.Buffer
	require.NoError(t, ExportChart(&csv, chart, "csv"))
	assert.Equal(t, "label,Payment\nCash,180000\nCard,150000\nUPI,126780", csv.String())

	var buf bytes.Buffer
	require.NoError(t, ExportChart(&buf, chart, "xlsx"))
	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	sheet, ok := file.Sheet["Payment Methods"]
	require.True(t, ok)
	cell, err := sheet.Cell(1, 0)
	require.NoError(t, err)
	assert.Equal(t, "Cash", cell.Value)

	assert.Error(t, ExportChart(&buf, chart, "pdf"))
}

func TestRendererRendersEveryKind(t *testing.T) {
	renderer := NewRenderer(WithCache(nil))
	for _, rep := range Reports() {
		for _, chart := range rep.Charts {
			html, err := renderer.RenderChart(chart)
			require.NoError(t, err, chart.ID)
			assert.Contains(t, html, "echarts", chart.ID)
		}
	}
	_, err := renderer.RenderChart(Chart{ID: "empty", Kind: ChartBar})
	assert.Error(t, err)
	_, err = renderer.RenderChart(Chart{ID: "radar", Kind: "radar", Series: []Series{{Name: "x"}}})
	assert.Error(t, err)
}

func TestRendererReportPage(t *testing.T) {
	renderer := NewRenderer(WithCache(nil), WithTheme("dark"))
	rep, err := Lookup(ReportStaff)
	require.NoError(t, err)
	html, err := renderer.RenderReport(rep)
	require.NoError(t, err)
	assert.Contains(t, html, "Staff Report")
	assert.Equal(t, "dark", renderer.Theme())
}

type countingCache struct {
	keys []string
	*ChartCache
}

func (c *countingCache) GetOrRender(key string, render func() (string, error)) (string, error) {
	c.keys = append(c.keys, key)
	return c.ChartCache.GetOrRender(key, render)
}

func TestRendererCacheKeyFollowsDataset(t *testing.T) {
	cache := &countingCache{ChartCache: NewChartCache(time.Minute)}
	renderer := NewRenderer(WithCache(cache))
	rep, _ := Lookup(ReportInventory)
	chart, _ := rep.Chart("wastage")

	first, err := renderer.RenderChart(chart)
	require.NoError(t, err)
	second, err := renderer.RenderChart(chart)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, cache.keys[0], cache.keys[1])
	assert.Equal(t, 1, cache.Len())

	chart.Series[0].Points[0].Value = 301
	_, err = renderer.RenderChart(chart)
	require.NoError(t, err)
	assert.NotEqual(t, cache.keys[0], cache.keys[2])
	assert.Equal(t, 2, cache.Len())
}

func TestChartCacheExpires(t *testing.T) {
	cache := NewChartCache(time.Minute)
	now := time.Date(2024, 12, 18, 9, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	calls := 0
	render := func() (string, error) {
		calls++
		return "html", nil
	}

	_, err := cache.GetOrRender("k", render)
	require.NoError(t, err)
	_, err = cache.GetOrRender("k", render)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	now = now.Add(2 * time.Minute)
	_, err = cache.GetOrRender("k", render)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestChartCacheSkipsErrors(t *testing.T) {
	cache := NewChartCache(time.Minute)
	_, err := cache.GetOrRender("k", func() (string, error) { return "", errors.New("boom") })
	assert.Error(t, err)
	assert.Zero(t, cache.Len())

	disabled := NewChartCache(0)
	calls := 0
	render := func() (string, error) {
		calls++
		return "x", nil
	}
	_, _ = disabled.GetOrRender("k", render)
	_, _ = disabled.GetOrRender("k", render)
	assert.Equal(t, 2, calls)
}
