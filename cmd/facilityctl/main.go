package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"golang.org/x/time/rate"

	"github.com/goliatone/go-facilities/components/session"
	"github.com/goliatone/go-facilities/internal/config"
	"github.com/goliatone/go-facilities/pkg/facilities"
)

type cli struct {
	Globals

	List      listCmd      `cmd:"" help:"List one page of a backend resource."`
	Tickets   ticketsCmd   `cmd:"" help:"Service desk helpers."`
	Pantry    pantryCmd    `cmd:"" help:"Show, create or update pantry items."`
	Checklist checklistCmd `cmd:"" help:"Browse checklists or create soft-service ones."`
	AMC       amcCmd       `cmd:"" name:"amc" help:"Asset maintenance contracts."`
	Invoice   invoiceCmd   `cmd:"" help:"CAM receipt invoices."`
	Tasks     tasksCmd     `cmd:"" help:"Soft-service tasks."`
	Visitors  visitorsCmd  `cmd:"" help:"Visitor management."`
	Meters    metersCmd    `cmd:"" help:"Metered assets."`
	PPM       ppmCmd       `cmd:"" name:"ppm" help:"Preventive maintenance activities."`
	Stock     stockCmd     `cmd:"" help:"Inventory items and groups."`
	Session   sessionCmd   `cmd:"" help:"Manage the local login session."`
	Prefs     prefsCmd     `cmd:"" help:"Show or change UI preferences."`
	Nav       navCmd       `cmd:"" help:"Print the navigation menu."`
	Reports   reportsCmd   `cmd:"" help:"Food & beverage reports."`
	Tables    tablesCmd    `cmd:"" help:"Food & beverage table floor plan."`
	Serve     serveCmd     `cmd:"" help:"Serve report previews, navigation JSON and metrics."`
}

// Globals are flags shared by every command.
type Globals struct {
	Config    string `help:"Path to the facilities YAML config." type:"path" env:"FACILITIES_CONFIG"`
	BaseURL   string `name:"base-url" help:"Backend base URL; overrides the config file."`
	LogLevel  string `name:"log-level" help:"Log level: debug, info, warn or error."`
	LogFormat string `name:"log-format" help:"Log format: text or json."`
}

func main() {
	var app cli
	ctx := kong.Parse(&app,
		kong.Name("facilityctl"),
		kong.Description("Facilities management from the command line."),
		kong.UsageOnError(),
	)
	ctx.BindTo(context.Background(), (*context.Context)(nil))
	err := ctx.Run(&app.Globals)
	ctx.FatalIfErrorf(err)
}

// env bundles the loaded config with the services commands share.
type env struct {
	cfg     config.Config
	logger  *slog.Logger
	metrics *facilities.Metrics
}

func (g *Globals) load() (*env, error) {
	path := g.Config
	if path == "" {
		path = config.DefaultDir() + "/config.yaml"
	}
	cfg, err := config.Load(path, os.Getenv)
	if err != nil {
		return nil, fmt.Errorf("facilityctl: %w", err)
	}
	if g.BaseURL != "" {
		cfg.BaseURL = strings.TrimRight(g.BaseURL, "/")
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.LogFormat != "" {
		cfg.Log.Format = g.LogFormat
	}
	logger, err := newLogger(os.Stderr, cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("facilityctl: %w", err)
	}
	slog.SetDefault(logger)
	return &env{cfg: cfg, logger: logger, metrics: facilities.NewMetrics()}, nil
}

func newLogger(w io.Writer, cfg config.Log) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}
}

func (e *env) session() (*session.Store, error) {
	opts := session.Options{Path: e.cfg.SessionPath, Logger: e.logger}
	if e.cfg.Keyring {
		opts.Secrets = session.KeyringSecrets{}
	}
	store, err := session.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("facilityctl: %w", err)
	}
	return store, nil
}

// client builds a backend client authenticated with the configured token, or
// the session token when none is configured.
func (e *env) client() (*facilities.Client, error) {
	if err := e.cfg.RequireRemote(); err != nil {
		return nil, fmt.Errorf("facilityctl: %w", err)
	}
	token := e.cfg.Token
	if token == "" {
		store, err := e.session()
		if err != nil {
			return nil, err
		}
		token = store.Token()
	}
	if token == "" {
		return nil, errors.New("facilityctl: not logged in; run `facilityctl session login` or set FACILITIES_TOKEN")
	}
	var limiter *rate.Limiter
	if e.cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(e.cfg.RateLimit), 1)
	}
	client, err := facilities.NewClient(facilities.Config{
		BaseURL:    e.cfg.BaseURL,
		Token:      token,
		HTTPClient: &http.Client{Timeout: e.cfg.Timeout},
		Limiter:    limiter,
		Logger:     e.logger,
		Metrics:    e.metrics,
	})
	if err != nil {
		return nil, fmt.Errorf("facilityctl: %w", err)
	}
	return client, nil
}

// createFile opens path for writing, or returns stdout for "-".
func createFile(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("facilityctl: %w", err)
	}
	return f, nil
}

// withFile runs fn against the file at path and reports the close error
// when fn succeeded.
func withFile(path string, fn func(w io.Writer) error) (err error) {
	w, err := createFile(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("facilityctl: close %s: %w", path, cerr)
		}
	}()
	return fn(w)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
