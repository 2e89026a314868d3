package forms

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/goliatone/go-facilities/pkg/facilities"
)

// Routes navigated to after a successful submit.
const (
	RoutePantry     = "/fb/pantry"
	RouteChecklists = "/soft-services/checklist"
	RouteAMC        = "/assets/amc"
)

// Transport sends form mutations to the backend.
type Transport interface {
	facilities.JSONSubmitter
	facilities.FormSubmitter
}

// Options configures a Controller.
type Options struct {
	Transport Transport
	Notifier  Notifier
	Navigator Navigator
	// Validator checks payload structure. Nil uses the embedded JSON schemas.
	Validator PayloadValidator
	Logger    *slog.Logger
	Telemetry Telemetry
}

// Controller runs the validate, submit, notify and navigate cycle shared by
// every form.
type Controller struct {
	transport Transport
	notifier  Notifier
	navigator Navigator
	validator PayloadValidator
	logger    *slog.Logger
	telemetry Telemetry
}

// NewController builds a controller; only Transport is required.
func NewController(opts Options) (*Controller, error) {
	if opts.Transport == nil {
		return nil, errors.New("forms: transport is required")
	}
	c := &Controller{
		transport: opts.Transport,
		notifier:  opts.Notifier,
		navigator: opts.Navigator,
		validator: opts.Validator,
		logger:    opts.Logger,
		telemetry: opts.Telemetry,
	}
	if c.notifier == nil {
		c.notifier = noopNotifier{}
	}
	if c.navigator == nil {
		c.navigator = noopNavigator{}
	}
	if c.validator == nil {
		c.validator = NewJSONSchemaValidator()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.telemetry == nil {
		c.telemetry = noopTelemetry{}
	}
	return c, nil
}

type submission struct {
	form    string
	check   func() error
	schema  string
	payload any
	send    func(ctx context.Context) error
	success string
	failure string
	route   string
}

func (c *Controller) submit(ctx context.Context, s submission) error {
	if err := s.check(); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			c.notifier.Error(ctx, verr.First())
		} else {
			c.notifier.Error(ctx, err.Error())
		}
		c.telemetry.Record(ctx, "forms.submit.invalid", map[string]any{"form": s.form, "error": err.Error()})
		return err
	}
	if s.schema != "" {
		if err := c.validator.Validate(s.schema, s.payload); err != nil {
			c.notifier.Error(ctx, err.Error())
			c.telemetry.Record(ctx, "forms.submit.invalid", map[string]any{"form": s.form, "error": err.Error()})
			return err
		}
	}

	start := time.Now()
	if err := s.send(ctx); err != nil {
		c.logger.WarnContext(ctx, "form submit failed", "form", s.form, "error", err)
		c.notifier.Error(ctx, fmt.Sprintf("%s: %v", s.failure, err))
		c.telemetry.Record(ctx, "forms.submit.failed", map[string]any{"form": s.form, "error": err.Error()})
		return fmt.Errorf("forms: submit %s: %w", s.form, err)
	}
	c.notifier.Success(ctx, s.success)
	c.navigator.Navigate(ctx, s.route)
	c.telemetry.Record(ctx, "forms.submit", map[string]any{
		"form":     s.form,
		"route":    s.route,
		"duration": time.Since(start).String(),
	})
	return nil
}
