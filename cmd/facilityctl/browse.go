package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-facilities/pkg/facilities"
)

// PageFlags are shared by the typed list commands.
type PageFlags struct {
	Page    int    `help:"Page number." default:"1"`
	PerPage int    `name:"per-page" help:"Page size: 10, 12, 25 or 50." default:"10"`
	Format  string `help:"Output format." enum:"table,json,csv,xlsx" default:"table"`
	Out     string `help:"Output file for xlsx, '-' for stdout." default:"-"`
}

func (p PageFlags) write(res facilities.Resource, page facilities.Page) error {
	return writePage(os.Stdout, p.Out, p.Format, res, page)
}

// RecordFlags select how a single record is printed.
type RecordFlags struct {
	JSON bool `name:"json" help:"Print JSON instead of YAML."`
}

func (r RecordFlags) write(v any) error {
	return writeRecord(os.Stdout, v, r.JSON)
}

func writeRecord(w io.Writer, v any, asJSON bool) error {
	if !asJSON {
		return writeYAML(w, v)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// remote loads config and builds the API client.
func (g *Globals) remote() (*facilities.Client, error) {
	e, err := g.load()
	if err != nil {
		return nil, err
	}
	return e.client()
}

type visitorsCmd struct {
	List visitorsListCmd `cmd:"" help:"List visitors."`
}

type visitorsListCmd struct {
	PageFlags
	Tab    string `help:"all, in or out." enum:"all,in,out" default:"all"`
	Search string `help:"Name or contact number."`
	Status string `help:"Visitor status."`
}

func (c *visitorsListCmd) Run(ctx context.Context, g *Globals) error {
	client, err := g.remote()
	if err != nil {
		return err
	}
	filters := facilities.VisitorFilters{Search: c.Search, Status: c.Status}.ForTab(facilities.VisitorTab(c.Tab))
	page, err := client.Visitors(ctx, c.Page, c.PerPage, filters)
	if err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	return c.write(facilities.ResourceVisitors, page)
}

type tasksListCmd struct {
	PageFlags
	From   string `help:"Window start (YYYY-MM-DD); defaults to the first of the month."`
	To     string `help:"Window end (YYYY-MM-DD); defaults to today."`
	Status string `help:"all, pending, completed or overdue." enum:"all,pending,completed,overdue" default:"all"`
	Search string `help:"Service, task or checklist name."`
}

// filters resolves the flags over the current month window.
func (c *tasksListCmd) filters(now time.Time) facilities.TaskFilters {
	f := facilities.DefaultTaskFilters(now)
	if c.From != "" {
		f.StartDate = c.From
	}
	if c.To != "" {
		f.EndDate = c.To
	}
	f.Status = facilities.TaskStatusFilter(c.Status)
	f.Search = c.Search
	return f
}

func (c *tasksListCmd) Run(ctx context.Context, g *Globals) error {
	client, err := g.remote()
	if err != nil {
		return err
	}
	page, err := client.SoftServiceTasks(ctx, c.Page, c.PerPage, c.filters(time.Now()))
	if err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	return c.write(facilities.ResourceSoftServiceTasks, page)
}

type metersCmd struct {
	List metersListCmd `cmd:"" help:"List metered assets."`
	Show metersShowCmd `cmd:"" help:"Show one meter."`
}

type metersListCmd struct {
	PageFlags
}

func (c *metersListCmd) Run(ctx context.Context, g *Globals) error {
	client, err := g.remote()
	if err != nil {
		return err
	}
	page, err := client.Meters(ctx, c.Page, c.PerPage)
	if err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	return c.write(facilities.ResourceMeters, page)
}

type metersShowCmd struct {
	RecordFlags
	ID string `arg:"" help:"Meter (site asset) id."`
}

func (c *metersShowCmd) Run(ctx context.Context, g *Globals) error {
	client, err := g.remote()
	if err != nil {
		return err
	}
	rec, err := client.Meter(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	return c.write(rec)
}

type checklistListCmd struct {
	PageFlags
	Type string `help:"Checklist type." enum:"routine,ppm" default:"routine"`
}

func (c *checklistListCmd) Run(ctx context.Context, g *Globals) error {
	client, err := g.remote()
	if err != nil {
		return err
	}
	ctype := facilities.ChecklistType(c.Type)
	page, err := client.Checklists(ctx, ctype, c.Page, c.PerPage)
	if err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	res := facilities.ResourceRoutineChecklists
	if ctype == facilities.ChecklistPPM {
		res = facilities.ResourcePPMChecklists
	}
	return c.write(res, page)
}

type checklistShowCmd struct {
	RecordFlags
	ID string `arg:"" help:"Checklist id."`
}

func (c *checklistShowCmd) Run(ctx context.Context, g *Globals) error {
	client, err := g.remote()
	if err != nil {
		return err
	}
	rec, err := client.Checklist(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	return c.write(rec)
}

type checklistLookupsCmd struct{}

func (c *checklistLookupsCmd) Run(ctx context.Context, g *Globals) error {
	client, err := g.remote()
	if err != nil {
		return err
	}
	lookups, err := client.ChecklistLookups(ctx)
	if err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	return writeLookups(os.Stdout, lookups)
}

// writeLookups prints "id  label" pairs per lookup list.
func writeLookups(w io.Writer, l facilities.ChecklistLookups) error {
	sections := []struct {
		title   string
		records []facilities.Record
		label   func(facilities.Record) string
	}{
		{"Supervisors", l.Users, func(r facilities.Record) string {
			return strings.TrimSpace(r.String("firstname") + " " + r.String("lastname"))
		}},
		{"Suppliers", l.Suppliers, func(r facilities.Record) string { return r.String("company_name") }},
		{"Groups", l.Groups, func(r facilities.Record) string { return r.String("name") }},
	}
	for _, s := range sections {
		if _, err := fmt.Fprintf(w, "%s (%d)\n", s.title, len(s.records)); err != nil {
			return err
		}
		for _, rec := range s.records {
			if _, err := fmt.Fprintf(w, "  %s\t%s\n", rec.ID(), s.label(rec)); err != nil {
				return err
			}
		}
	}
	return nil
}

type ppmCmd struct {
	List        ppmListCmd        `cmd:"" help:"List PPM activities."`
	Asset       ppmAssetCmd       `cmd:"" help:"Show the PPM schedule of an asset."`
	Submissions ppmSubmissionsCmd `cmd:"" help:"List checklist submissions of an asset activity."`
}

type ppmListCmd struct {
	PageFlags
}

func (c *ppmListCmd) Run(ctx context.Context, g *Globals) error {
	client, err := g.remote()
	if err != nil {
		return err
	}
	page, err := client.PPMActivities(ctx, c.Page, c.PerPage)
	if err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	return c.write(facilities.ResourcePPMActivities, page)
}

type ppmAssetCmd struct {
	RecordFlags
	AssetID string `arg:"" help:"Asset id."`
}

func (c *ppmAssetCmd) Run(ctx context.Context, g *Globals) error {
	client, err := g.remote()
	if err != nil {
		return err
	}
	rec, err := client.AssetPPM(ctx, c.AssetID)
	if err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	return c.write(rec)
}

type ppmSubmissionsCmd struct {
	AssetID    string `arg:"" help:"Asset id."`
	ActivityID string `arg:"" help:"Activity id."`
	Format     string `help:"Output format." enum:"table,json,csv,xlsx" default:"table"`
	Out        string `help:"Output file for xlsx, '-' for stdout." default:"-"`
}

func (c *ppmSubmissionsCmd) Run(ctx context.Context, g *Globals) error {
	client, err := g.remote()
	if err != nil {
		return err
	}
	page, err := client.Submissions(ctx, c.AssetID, c.ActivityID)
	if err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	return writePage(os.Stdout, c.Out, c.Format, facilities.ResourceSubmissions, page)
}

type stockCmd struct {
	List   stockListCmd   `cmd:"" help:"List inventory items."`
	Show   stockShowCmd   `cmd:"" help:"Show one inventory item."`
	Groups stockGroupsCmd `cmd:"" help:"List item groups."`
}

type stockListCmd struct {
	PageFlags
}

func (c *stockListCmd) Run(ctx context.Context, g *Globals) error {
	client, err := g.remote()
	if err != nil {
		return err
	}
	page, err := client.StockItems(ctx, c.Page, c.PerPage)
	if err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	return c.write(facilities.ResourceStockItems, page)
}

type stockShowCmd struct {
	RecordFlags
	ID string `arg:"" help:"Item id."`
}

func (c *stockShowCmd) Run(ctx context.Context, g *Globals) error {
	client, err := g.remote()
	if err != nil {
		return err
	}
	rec, err := client.StockItem(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	return c.write(rec)
}

type stockGroupsCmd struct{}

func (c *stockGroupsCmd) Run(ctx context.Context, g *Globals) error {
	client, err := g.remote()
	if err != nil {
		return err
	}
	groups, err := client.StockGroups(ctx)
	if err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	return writeTable(os.Stdout, facilities.ResourceStockGroups, facilities.Page{
		Records: groups, Page: 1, TotalPages: 1, Total: len(groups),
	})
}
