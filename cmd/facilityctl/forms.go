package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-facilities/components/forms"
	"github.com/goliatone/go-facilities/components/forms/commands"
	"github.com/goliatone/go-facilities/components/listview"
	"github.com/goliatone/go-facilities/pkg/facilities"
)

// formEnv is what the form commands need: a controller wired to the backend
// and the session user.
type formEnv struct {
	*env
	client     *facilities.Client
	controller *forms.Controller
	navigator  *forms.RouteRecorder
	userID     string
	siteID     string
}

func (g *Globals) forms() (*formEnv, error) {
	e, err := g.load()
	if err != nil {
		return nil, err
	}
	client, err := e.client()
	if err != nil {
		return nil, err
	}
	store, err := e.session()
	if err != nil {
		return nil, err
	}
	nav := &forms.RouteRecorder{}
	controller, err := forms.NewController(forms.Options{
		Transport: client,
		Notifier:  forms.SlogNotifier{Logger: e.logger},
		Navigator: nav,
		Logger:    e.logger,
		Telemetry: listview.SlogTelemetry{Logger: e.logger},
	})
	if err != nil {
		return nil, fmt.Errorf("facilityctl: %w", err)
	}
	siteID := e.cfg.SiteID
	if siteID == "" {
		siteID = store.SiteID()
	}
	return &formEnv{env: e, client: client, controller: controller, navigator: nav, userID: store.UserID(), siteID: siteID}, nil
}

func (f *formEnv) done(what string) {
	fmt.Fprintf(os.Stdout, "✓ %s", what)
	if f.navigator.Route != "" {
		fmt.Fprintf(os.Stdout, " (next: %s)", f.navigator.Route)
	}
	fmt.Fprintln(os.Stdout)
}

type pantryCmd struct {
	Show pantryShowCmd `cmd:"" help:"Show one pantry item."`
	Save pantrySaveCmd `cmd:"" help:"Create a pantry item, or update one with --id."`
}

type pantryShowCmd struct {
	RecordFlags
	ID string `arg:"" help:"Pantry item id."`
}

func (c *pantryShowCmd) Run(ctx context.Context, g *Globals) error {
	client, err := g.remote()
	if err != nil {
		return err
	}
	item, err := client.PantryItem(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	return c.write(item)
}

type pantrySaveCmd struct {
	ID          string   `help:"Pantry item id to update."`
	Name        string   `help:"Item name."`
	Stock       string   `help:"Stock quantity."`
	Description string   `help:"Item description."`
	Attach      []string `help:"Files to attach." type:"existingfile"`
}

func (c *pantrySaveCmd) Run(ctx context.Context, g *Globals) error {
	f, err := g.forms()
	if err != nil {
		return err
	}
	base := forms.PantryForm{}
	if c.ID != "" {
		item, err := f.client.PantryItem(ctx, c.ID)
		if err != nil {
			return fmt.Errorf("facilityctl: %w", err)
		}
		base = forms.PantryFormFrom(item)
	}
	form := c.form(base, f.userID)
	for _, path := range c.Attach {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("facilityctl: %w", err)
		}
		defer file.Close()
		form.Attachments = append(form.Attachments, facilities.Attachment{Name: filepath.Base(path), Reader: file})
	}
	cmd := commands.NewSavePantryItemCommand(f.controller, listview.SlogTelemetry{Logger: f.logger})
	if err := cmd.Execute(ctx, form); err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	f.done("pantry item " + form.ItemName + " saved")
	return nil
}

// form layers the non-empty flags over base, the stored item when editing.
func (c *pantrySaveCmd) form(base forms.PantryForm, userID string) forms.PantryForm {
	if c.ID != "" {
		base.ID = c.ID
	}
	if c.Name != "" {
		base.ItemName = c.Name
	}
	if c.Stock != "" {
		base.Stock = c.Stock
	}
	if c.Description != "" {
		base.Description = c.Description
	}
	base.CreatedByID = userID
	return base
}

type checklistCmd struct {
	List    checklistListCmd    `cmd:"" help:"List routine or PPM checklists."`
	Show    checklistShowCmd    `cmd:"" help:"Show one checklist."`
	Lookups checklistLookupsCmd `cmd:"" help:"List supervisors, suppliers and groups for new checklists."`
	Create  checklistCreateCmd  `cmd:"" help:"Create a soft-service checklist from a YAML file."`
}

type checklistCreateCmd struct {
	File string `help:"Checklist YAML file." type:"existingfile" required:""`
}

func (c *checklistCreateCmd) Run(ctx context.Context, g *Globals) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	form, err := decodeChecklist(data, time.Now())
	if err != nil {
		return err
	}
	f, err := g.forms()
	if err != nil {
		return err
	}
	if form.SiteID == "" {
		form.SiteID = f.siteID
	}
	if form.UserID == "" {
		form.UserID = f.userID
	}
	cmd := commands.NewCreateChecklistCommand(f.controller, listview.SlogTelemetry{Logger: f.logger})
	if err := cmd.Execute(ctx, form); err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	f.done("checklist " + form.Name + " created")
	return nil
}

// decodeChecklist layers a YAML file over a blank checklist dated today.
func decodeChecklist(data []byte, today time.Time) (forms.ChecklistForm, error) {
	form := forms.NewChecklistForm(today)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&form); err != nil {
		return forms.ChecklistForm{}, fmt.Errorf("facilityctl: decode checklist: %w", err)
	}
	return form, nil
}

type amcCmd struct {
	List amcListCmd `cmd:"" help:"List contracts, optionally for one asset."`
	Show amcShowCmd `cmd:"" help:"Show one contract."`
	Save amcSaveCmd `cmd:"" help:"Create an AMC, or update one with --id."`
}

type amcListCmd struct {
	PageFlags
	Asset string `help:"Only contracts of this asset id."`
}

func (c *amcListCmd) Run(ctx context.Context, g *Globals) error {
	client, err := g.remote()
	if err != nil {
		return err
	}
	if c.Asset == "" {
		page, err := client.AMCs(ctx, c.Page, c.PerPage)
		if err != nil {
			return fmt.Errorf("facilityctl: %w", err)
		}
		return c.write(facilities.ResourceAMCs, page)
	}
	records, err := client.AMCsByAsset(ctx, c.Asset)
	if err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	return c.write(facilities.ResourceAMCs, facilities.Page{
		Records: records, Page: 1, TotalPages: 1, Total: len(records),
	})
}

type amcShowCmd struct {
	RecordFlags
	ID string `arg:"" help:"AMC id."`
}

func (c *amcShowCmd) Run(ctx context.Context, g *Globals) error {
	client, err := g.remote()
	if err != nil {
		return err
	}
	amc, err := client.AMC(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	return c.write(amc)
}

type amcSaveCmd struct {
	ID       int64   `help:"AMC id to update."`
	AssetID  int64   `name:"asset-id" help:"Asset id."`
	VendorID int64   `name:"vendor-id" help:"Vendor id."`
	Start    string  `help:"Start date (YYYY-MM-DD)."`
	End      string  `help:"End date (YYYY-MM-DD)."`
	Type     string  `help:"Contract type."`
	Amount   float64 `help:"Contract amount."`
}

func (c *amcSaveCmd) Run(ctx context.Context, g *Globals) error {
	f, err := g.forms()
	if err != nil {
		return err
	}
	var base facilities.AMC
	if c.ID != 0 {
		base, err = f.client.AMC(ctx, strconv.FormatInt(c.ID, 10))
		if err != nil {
			return fmt.Errorf("facilityctl: %w", err)
		}
	}
	form := forms.AMCForm{AMC: c.amc(base)}
	cmd := commands.NewSaveAMCCommand(f.controller, listview.SlogTelemetry{Logger: f.logger})
	if err := cmd.Execute(ctx, form); err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	f.done("AMC saved")
	return nil
}

// amc layers the set flags over base, the stored contract when editing.
func (c *amcSaveCmd) amc(base facilities.AMC) facilities.AMC {
	if c.ID != 0 {
		base.ID = c.ID
	}
	if c.AssetID != 0 {
		base.AssetID = c.AssetID
	}
	if c.VendorID != 0 {
		base.VendorID = c.VendorID
	}
	if c.Start != "" {
		base.StartDate = c.Start
	}
	if c.End != "" {
		base.EndDate = c.End
	}
	if c.Type != "" {
		base.AMCType = c.Type
	}
	if c.Amount != 0 {
		base.Amount = c.Amount
	}
	return base
}
