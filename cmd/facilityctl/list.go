package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-facilities/components/listview/queries"
	"github.com/goliatone/go-facilities/pkg/export"
	"github.com/goliatone/go-facilities/pkg/facilities"
)

type listCmd struct {
	Resource string            `arg:"" help:"Resource name, e.g. tickets, assets, visitors, meters, pantry."`
	Page     int               `help:"Page number." default:"1"`
	PerPage  int               `name:"per-page" help:"Page size: 10, 12, 25 or 50." default:"10"`
	Filter   map[string]string `help:"Ransack filters such as status_eq=open; separate pairs with ';'."`
	Search   string            `help:"Free-text search term."`
	Format   string            `help:"Output format." enum:"table,json,csv,xlsx" default:"table"`
	Out      string            `help:"Output file for xlsx, '-' for stdout." default:"-"`
}

func (c *listCmd) Run(ctx context.Context, g *Globals) error {
	e, err := g.load()
	if err != nil {
		return err
	}
	client, err := e.client()
	if err != nil {
		return err
	}
	page, err := queries.NewPageQuery(client).Query(ctx, queries.PageInput{
		Resource: c.Resource,
		Page:     c.Page,
		PerPage:  c.PerPage,
		Filters:  c.Filter,
		Search:   c.Search,
	})
	if err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	res, _ := facilities.LookupResource(c.Resource)
	return writePage(os.Stdout, c.Out, c.Format, res, page)
}

func writePage(stdout io.Writer, out, format string, res facilities.Resource, page facilities.Page) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(page, "", "  ")
		if err != nil {
			return fmt.Errorf("facilityctl: %w", err)
		}
		_, err = fmt.Fprintln(stdout, string(data))
		return err
	case "csv":
		if err := export.WriteCSV(stdout, page.Records, nil); err != nil {
			return err
		}
		_, err := fmt.Fprintln(stdout)
		return err
	case "xlsx":
		return withFile(out, func(w io.Writer) error {
			return export.WriteXLSX(w, res.Name, page.Records, nil)
		})
	default:
		return writeTable(stdout, res, page)
	}
}

func writeTable(w io.Writer, res facilities.Resource, page facilities.Page) error {
	if page.Empty() {
		_, err := fmt.Fprintln(w, "No records found.")
		return err
	}
	cols := append([]string{"id"}, res.SearchFields...)
	if len(cols) == 1 {
		cols = export.KeysOf(page.Records)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.ToUpper(strings.Join(cols, "\t")))
	for _, rec := range page.Records {
		cells := make([]string, len(cols))
		for i, col := range cols {
			cells[i] = rec.Display(col)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Page %d of %d (%d records)\n", page.Page, page.TotalPages, page.Total)
	return err
}
