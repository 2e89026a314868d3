package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-facilities/components/forms"
	"github.com/goliatone/go-facilities/components/navigation"
	"github.com/goliatone/go-facilities/components/preferences"
	"github.com/goliatone/go-facilities/components/session"
)

type sessionCmd struct {
	Login  sessionLoginCmd  `cmd:"" help:"Store a token and identity."`
	Logout sessionLogoutCmd `cmd:"" help:"Clear every session key."`
	Whoami sessionWhoamiCmd `cmd:"" help:"Show the current identity."`
}

type sessionLoginCmd struct {
	Token    string `help:"API token." required:"" env:"FACILITIES_TOKEN"`
	UserID   string `name:"user-id" help:"User id."`
	SiteID   string `name:"site-id" help:"Site id."`
	Name     string `help:"First name."`
	LastName string `name:"last-name" help:"Last name."`
}

func (c *sessionLoginCmd) Run(g *Globals) error {
	e, err := g.load()
	if err != nil {
		return err
	}
	store, err := e.session()
	if err != nil {
		return err
	}
	values := map[string]string{session.KeyToken: c.Token}
	for key, value := range map[string]string{
		session.KeyUserID:   c.UserID,
		session.KeySiteID:   c.SiteID,
		session.KeyName:     c.Name,
		session.KeyLastName: c.LastName,
	} {
		if value != "" {
			values[key] = value
		}
	}
	if err := store.SetMany(values); err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	fmt.Fprintf(os.Stdout, "✓ logged in as %s\n", displayOr(store.DisplayName(), store.UserID()))
	return nil
}

type sessionLogoutCmd struct{}

func (c *sessionLogoutCmd) Run(ctx context.Context, g *Globals) error {
	e, err := g.load()
	if err != nil {
		return err
	}
	store, err := e.session()
	if err != nil {
		return err
	}
	nav := &forms.RouteRecorder{}
	if err := store.Logout(ctx, nav); err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	fmt.Fprintf(os.Stdout, "✓ logged out (next: %s)\n", nav.Route)
	return nil
}

type sessionWhoamiCmd struct{}

func (c *sessionWhoamiCmd) Run(g *Globals) error {
	e, err := g.load()
	if err != nil {
		return err
	}
	store, err := e.session()
	if err != nil {
		return err
	}
	if !store.LoggedIn() {
		fmt.Fprintln(os.Stdout, "not logged in")
		return nil
	}
	fmt.Fprintf(os.Stdout, "%s [%s] user=%s site=%s\n",
		displayOr(store.DisplayName(), "-"), store.Initials(), displayOr(store.UserID(), "-"), displayOr(store.SiteID(), "-"))
	return nil
}

func displayOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

type prefsCmd struct {
	Show  prefsShowCmd  `cmd:"" help:"Print preferences as YAML."`
	Set   prefsSetCmd   `cmd:"" help:"Change one preference."`
	Reset prefsResetCmd `cmd:"" help:"Restore default preferences."`
	Watch prefsWatchCmd `cmd:"" help:"Print preferences whenever the file changes."`
}

func (g *Globals) preferences() (*env, *preferences.Store, error) {
	e, err := g.load()
	if err != nil {
		return nil, nil, err
	}
	store, err := preferences.Open(e.cfg.PreferencesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("facilityctl: %w", err)
	}
	return e, store, nil
}

type prefsShowCmd struct{}

func (c *prefsShowCmd) Run(g *Globals) error {
	_, store, err := g.preferences()
	if err != nil {
		return err
	}
	return writeYAML(os.Stdout, store.Get())
}

type prefsSetCmd struct {
	Key   string `arg:"" help:"theme, background, font, board-view, added, group or subgroup."`
	Value string `arg:"" help:"New value. Subgroups take group/name."`
}

func (c *prefsSetCmd) Run(g *Globals) error {
	_, store, err := g.preferences()
	if err != nil {
		return err
	}
	var applyErr error
	store.Update(func(p *preferences.Preferences) {
		applyErr = applyPreference(p, c.Key, c.Value)
	})
	if applyErr != nil {
		return applyErr
	}
	if err := store.Save(); err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	fmt.Fprintf(os.Stdout, "✓ %s updated\n", c.Key)
	return nil
}

// applyPreference maps a CLI key onto the matching preference slice action.
func applyPreference(p *preferences.Preferences, key, value string) error {
	switch strings.ToLower(key) {
	case "theme":
		p.Theme.SetColor(value)
	case "background":
		p.Background.SetImage(value)
	case "font":
		p.Font.SetSize(value)
	case "board-view":
		p.Board.UpdateActiveView(value)
	case "added":
		on, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("facilityctl: added: %w", err)
		}
		if on {
			p.Added.SetTrue()
		} else {
			p.Added.SetFalse()
		}
	case "group":
		p.Groups.AddGroup(value)
	case "subgroup":
		group, sub, ok := strings.Cut(value, "/")
		if !ok || group == "" || sub == "" {
			return fmt.Errorf("facilityctl: subgroup must be group/name, got %q", value)
		}
		p.Groups.AddSubGroup(group, sub)
	default:
		return fmt.Errorf("facilityctl: unknown preference %q", key)
	}
	return nil
}

type prefsResetCmd struct{}

func (c *prefsResetCmd) Run(g *Globals) error {
	_, store, err := g.preferences()
	if err != nil {
		return err
	}
	store.Reset()
	if err := store.Save(); err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	fmt.Fprintln(os.Stdout, "✓ preferences reset")
	return nil
}

type prefsWatchCmd struct{}

func (c *prefsWatchCmd) Run(ctx context.Context, g *Globals) error {
	e, store, err := g.preferences()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	watcher := preferences.NewWatcher(store, func(p preferences.Preferences) {
		if err := writeYAML(os.Stdout, p); err != nil {
			e.logger.Error("print preferences", "err", err)
		}
	}, preferences.WithWatchLogger(e.logger))
	if err := watcher.Start(); err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	e.logger.Info("watching preferences", "path", store.Path())
	<-ctx.Done()
	return watcher.Stop()
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("facilityctl: %w", err)
	}
	return enc.Close()
}

type navCmd struct {
	Active string `help:"Current path; marks the active entries."`
	JSON   bool   `name:"json" help:"Print the menu as JSON."`
}

func (c *navCmd) Run() error {
	if c.JSON {
		data, err := json.MarshalIndent(navigation.Menu(), "", "  ")
		if err != nil {
			return fmt.Errorf("facilityctl: %w", err)
		}
		_, err = fmt.Fprintln(os.Stdout, string(data))
		return err
	}
	writeMenu(os.Stdout, navigation.Menu(), c.Active, 0)
	return nil
}

func writeMenu(w io.Writer, items []navigation.Item, active string, depth int) {
	for _, item := range items {
		marker := "  "
		if navigation.IsParentActive(active, item) {
			marker = "* "
		}
		line := strings.Repeat("  ", depth) + marker + item.Name
		if item.Path != "" {
			line += "  " + item.Path
		}
		fmt.Fprintln(w, line)
		writeMenu(w, item.Children, active, depth+1)
	}
}
