package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/gofiber/fiber/v2"
	router "github.com/goliatone/go-router"

	"github.com/goliatone/go-facilities/components/reports"
	"github.com/goliatone/go-facilities/components/reports/gorouter"
)

type reportsCmd struct {
	Render reportsRenderCmd `cmd:"" help:"Render a report (or one chart) to HTML."`
	Export reportsExportCmd `cmd:"" help:"Export one chart's data as CSV or XLSX."`
	List   reportsListCmd   `cmd:"" help:"List reports and their charts."`
}

type reportsRenderCmd struct {
	Dataset string `arg:"" help:"sales, financial, inventory, items or staff."`
	Chart   string `help:"Render only this chart."`
	Theme   string `help:"ECharts theme."`
	Out     string `help:"Output HTML file, '-' for stdout." default:"-"`
}

func (c *reportsRenderCmd) Run() error {
	renderer := reports.NewRenderer(reports.WithTheme(c.Theme))
	html, _, err := gorouter.ReportHTML(renderer, c.Dataset, c.Chart)
	if err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	err = withFile(c.Out, func(w io.Writer) error {
		_, err := io.WriteString(w, html)
		return err
	})
	if err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	if c.Out != "-" {
		fmt.Fprintf(os.Stderr, "✓ wrote %s\n", c.Out)
	}
	return nil
}

type reportsExportCmd struct {
	Dataset string `arg:"" help:"Report id."`
	Chart   string `arg:"" help:"Chart id."`
	Format  string `help:"Export format." enum:"csv,xlsx" default:"xlsx"`
	Out     string `help:"Output file, '-' for stdout." default:"-"`
}

func (c *reportsExportCmd) Run() error {
	rep, err := reports.Lookup(c.Dataset)
	if err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	chart, ok := rep.Chart(c.Chart)
	if !ok {
		return fmt.Errorf("facilityctl: report %s has no chart %q", rep.ID, c.Chart)
	}
	fmt.Fprintf(os.Stderr, "Generating %s...\n", strings.ToUpper(c.Format))
	return withFile(c.Out, func(w io.Writer) error {
		return reports.ExportChart(w, chart, c.Format)
	})
}

type reportsListCmd struct{}

func (c *reportsListCmd) Run() error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "REPORT\tCHARTS")
	for _, summary := range reports.Index() {
		fmt.Fprintf(tw, "%s\t%s\n", summary.ID, strings.Join(summary.Charts, ", "))
	}
	return tw.Flush()
}

type tablesCmd struct {
	Search string `help:"Match table numbers containing this text."`
	Floor  string `help:"Floor filter." enum:"all,ground,first" default:"all"`
	Status string `help:"Status filter." enum:"all,available,running,billed" default:"all"`
}

func (c *tablesCmd) Run() error {
	view := reports.BuildTablesView(reports.Tables(), reports.TableFilter{
		Search: c.Search,
		Floor:  c.Floor,
		Status: reports.TableStatus(c.Status),
	})
	return writeTables(os.Stdout, view)
}

func writeTables(w io.Writer, view reports.TablesView) error {
	fmt.Fprintf(w, "Total %d  Available %d  Running %d  Billed %d\n",
		view.Stats.Total, view.Stats.Available, view.Stats.Running, view.Stats.Billed)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, group := range view.Groups {
		fmt.Fprintf(tw, "\n%s\n", group.Floor)
		for _, t := range group.Tables {
			detail := t.LastUsed
			if t.Order != nil {
				detail = fmt.Sprintf("%s  ₹%.0f  %s  %s", t.Order.OrderID, t.Order.Amount, t.Order.Waiter, t.Order.StartedAgo)
			}
			fmt.Fprintf(tw, "T%d\t%d seats\t%s\t%s\n", t.Number, t.Capacity, t.Status.Label(), detail)
		}
	}
	return tw.Flush()
}

type serveCmd struct {
	Addr        string `help:"Preview server address; defaults to server.addr."`
	MetricsAddr string `name:"metrics-addr" help:"Prometheus listener address; defaults to server.metrics_addr."`
	Theme       string `help:"ECharts theme."`
}

func (c *serveCmd) Run(ctx context.Context, g *Globals) error {
	e, err := g.load()
	if err != nil {
		return err
	}
	addr := displayOr(c.Addr, e.cfg.Server.Addr)
	metricsAddr := displayOr(c.MetricsAddr, e.cfg.Server.MetricsAddr)

	server := router.NewFiberAdapter()
	if err := gorouter.Register(gorouter.Config[*fiber.App]{
		Router:   server.Router(),
		Renderer: reports.NewRenderer(reports.WithTheme(c.Theme)),
	}); err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}

	metrics := &http.Server{
		Addr:              metricsAddr,
		Handler:           e.metrics.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := metrics.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.logger.Error("metrics listener stopped", "err", err)
		}
	}()

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		_ = metrics.Shutdown(shutdownCtx)
	}()

	e.logger.Info("preview ready", "addr", addr, "reports", "/preview/reports", "metrics", metricsAddr)
	if err := server.Serve(addr); err != nil {
		return fmt.Errorf("facilityctl: serve: %w", err)
	}
	return nil
}
