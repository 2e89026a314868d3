package reports

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const defaultChartHeight = "360px"

// Renderer turns report datasets into self-contained echarts HTML.
type Renderer struct {
	cache      RenderCache
	theme      string
	assetsHost string
	height     string
}

// RendererOption customizes a Renderer.
type RendererOption func(*Renderer)

// WithCache injects a render cache. Nil disables caching.
func WithCache(cache RenderCache) RendererOption {
	return func(r *Renderer) {
		r.cache = cache
	}
}

// WithTheme sets the echarts theme (defaults to Westeros).
func WithTheme(theme string) RendererOption {
	return func(r *Renderer) {
		if theme != "" {
			r.theme = theme
		}
	}
}

// WithAssetsHost loads the echarts runtime from host instead of the default CDN.
func WithAssetsHost(host string) RendererOption {
	return func(r *Renderer) {
		r.assetsHost = host
	}
}

// WithHeight sets the CSS height of every chart.
func WithHeight(height string) RendererOption {
	return func(r *Renderer) {
		if height != "" {
			r.height = height
		}
	}
}

// NewRenderer builds a renderer backed by a five minute chart cache.
func NewRenderer(options ...RendererOption) *Renderer {
	r := &Renderer{
		cache:  NewChartCache(5 * time.Minute),
		theme:  types.ThemeWesteros,
		height: defaultChartHeight,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Theme returns the configured echarts theme.
func (r *Renderer) Theme() string {
	return r.theme
}

// RenderChart renders one chart as a standalone HTML page.
func (r *Renderer) RenderChart(c Chart) (string, error) {
	key := fmt.Sprintf("chart:%s:%s:%s:%s", c.ID, c.Kind, r.theme, datasetHash(c))
	return r.cached(key, func() (string, error) {
		chart, err := r.build(c)
		if err != nil {
			return "", err
		}
		return renderTo(chart.(interface{ Render(io.Writer) error }))
	})
}

// RenderReport renders every chart of a report on one HTML page.
func (r *Renderer) RenderReport(rep Report) (string, error) {
	key := fmt.Sprintf("report:%s:%s:%s", rep.ID, r.theme, datasetHash(rep))
	return r.cached(key, func() (string, error) {
		page := components.NewPage()
		page.PageTitle = rep.Label + " Report"
		if r.assetsHost != "" {
			page.AssetsHost = r.assetsHost
		}
		for _, c := range rep.Charts {
			chart, err := r.build(c)
			if err != nil {
				return "", fmt.Errorf("reports: %s/%s: %w", rep.ID, c.ID, err)
			}
			page.AddCharts(chart)
		}
		return renderTo(page)
	})
}

func (r *Renderer) cached(key string, render func() (string, error)) (string, error) {
	if r.cache == nil {
		return render()
	}
	return r.cache.GetOrRender(key, render)
}

func (r *Renderer) build(c Chart) (components.Charter, error) {
	if len(c.Series) == 0 {
		return nil, fmt.Errorf("reports: chart %q has no series", c.ID)
	}
	global := r.globalOptions(c.Title)
	switch c.Kind {
	case ChartBar:
		bar := charts.NewBar()
		bar.SetGlobalOptions(global...)
		bar.SetXAxis(c.Labels())
		for _, s := range c.Series {
			bar.AddSeries(s.Name, toBarData(s.Points))
		}
		return bar, nil
	case ChartLine:
		line := charts.NewLine()
		line.SetGlobalOptions(global...)
		line.SetXAxis(c.Labels())
		for _, s := range c.Series {
			line.AddSeries(s.Name, toLineData(s.Points))
		}
		line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
		return line, nil
	case ChartPie:
		pie := charts.NewPie()
		pie.SetGlobalOptions(global...)
		for _, s := range c.Series {
			pie.AddSeries(s.Name, toPieData(s.Points))
		}
		return pie, nil
	default:
		return nil, fmt.Errorf("reports: unsupported chart kind %q", c.Kind)
	}
}

func (r *Renderer) globalOptions(title string) []charts.GlobalOpts {
	initOpts := opts.Initialization{
		Theme:  r.theme,
		Width:  "100%",
		Height: r.height,
	}
	if r.assetsHost != "" {
		initOpts.AssetsHost = r.assetsHost
	}
	return []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(initOpts),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithToolboxOpts(opts.Toolbox{Show: opts.Bool(true)}),
	}
}

func renderTo(renderable interface{ Render(io.Writer) error }) (string, error) {
	var buf bytes.Buffer
	if err := renderable.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func toBarData(points []Point) []opts.BarData {
	data := make([]opts.BarData, len(points))
	for i, p := range points {
		data[i] = opts.BarData{Name: p.Label, Value: p.Value}
	}
	return data
}

func toLineData(points []Point) []opts.LineData {
	data := make([]opts.LineData, len(points))
	for i, p := range points {
		data[i] = opts.LineData{Name: p.Label, Value: p.Value}
	}
	return data
}

func toPieData(points []Point) []opts.PieData {
	data := make([]opts.PieData, len(points))
	for i, p := range points {
		name := p.Label
		if name == "" {
			name = fmt.Sprintf("Slice %d", i+1)
		}
		data[i] = opts.PieData{Name: name, Value: p.Value}
	}
	return data
}
