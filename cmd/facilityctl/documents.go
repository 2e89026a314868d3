package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/goliatone/go-facilities/pkg/accounting"
	"github.com/goliatone/go-facilities/pkg/dateutil"
	"github.com/goliatone/go-facilities/pkg/facilities"
)

type ticketsCmd struct {
	Dashboard ticketsDashboardCmd `cmd:"" help:"Show ticket counts by status and type."`
}

type ticketsDashboardCmd struct{}

func (c *ticketsDashboardCmd) Run(ctx context.Context, g *Globals) error {
	e, err := g.load()
	if err != nil {
		return err
	}
	client, err := e.client()
	if err != nil {
		return err
	}
	dash, err := client.TicketDashboard(ctx)
	if err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	return writeCounts(os.Stdout, dash)
}

func writeCounts(w io.Writer, dash facilities.TicketDashboard) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, section := range []struct {
		title  string
		counts map[string]int
	}{{"STATUS", dash.ByStatus}, {"TYPE", dash.ByType}} {
		fmt.Fprintf(tw, "%s\tCOUNT\n", section.title)
		labels := make([]string, 0, len(section.counts))
		for label := range section.counts {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			fmt.Fprintf(tw, "%s\t%d\n", label, section.counts[label])
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

type invoiceCmd struct {
	Download invoiceDownloadCmd `cmd:"" help:"Print a receipt and download its PDF."`
}

type invoiceDownloadCmd struct {
	ID  string `arg:"" help:"Receipt invoice id."`
	Out string `help:"Destination file." default:"receipt_invoice_file.pdf" type:"path"`
}

func (c *invoiceDownloadCmd) Run(ctx context.Context, g *Globals) error {
	e, err := g.load()
	if err != nil {
		return err
	}
	client, err := e.client()
	if err != nil {
		return err
	}
	invoice, err := client.ReceiptInvoice(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	writeReceipt(os.Stdout, invoice)

	var n int64
	err = withFile(c.Out, func(w io.Writer) error {
		n, err = client.DownloadReceiptInvoice(ctx, c.ID, w)
		return err
	})
	if err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	fmt.Fprintf(os.Stderr, "✓ wrote %s (%d bytes)\n", c.Out, n)
	return nil
}

func writeReceipt(w io.Writer, r facilities.ReceiptInvoice) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Receipt\t%s\n", r.ReceiptNumber)
	fmt.Fprintf(tw, "Date\t%s\n", dateutil.DateFormatSTD(r.ReceiptDate))
	fmt.Fprintf(tw, "Customer\t%s\n", r.Customer())
	fmt.Fprintf(tw, "Unit\t%s\n", r.UnitName)
	if r.AmountReceived.Valid {
		amount := r.AmountReceived.Value
		fmt.Fprintf(tw, "Amount\t%s\n", accounting.FormatCurrency(amount))
		fmt.Fprintf(tw, "In words\t%s\n", accounting.AmountInWords(amount))
	} else {
		fmt.Fprintf(tw, "Amount\t-\n")
		fmt.Fprintf(tw, "In words\tInvalid Amount\n")
	}
	fmt.Fprintf(tw, "Mode\t%s\n", r.PaymentMode)
	if r.TransactionOrChequeNumber != "" {
		fmt.Fprintf(tw, "Reference\t%s\n", r.TransactionOrChequeNumber)
	}
	tw.Flush()
}

type tasksCmd struct {
	List   tasksListCmd   `cmd:"" help:"List soft-service tasks in a date window."`
	Export tasksExportCmd `cmd:"" help:"Download the soft-service task export."`
}

type tasksExportCmd struct {
	Out string `help:"Destination file." default:"tasks.xlsx" type:"path"`
}

func (c *tasksExportCmd) Run(ctx context.Context, g *Globals) error {
	e, err := g.load()
	if err != nil {
		return err
	}
	client, err := e.client()
	if err != nil {
		return err
	}
	var n int64
	err = withFile(c.Out, func(w io.Writer) error {
		n, err = client.ExportSoftServiceTasks(ctx, w)
		return err
	})
	if err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	fmt.Fprintf(os.Stderr, "✓ wrote %s (%d bytes)\n", c.Out, n)
	return nil
}
