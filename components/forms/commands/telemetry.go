package commands

import (
	"context"

	"github.com/goliatone/go-facilities/components/forms"
)

// Telemetry is the form event sink shared with forms.Controller.
type Telemetry = forms.Telemetry

// commandTelemetry names events forms.<form>.<action> so command events sit
// next to the controller's forms.submit stream.
type commandTelemetry struct {
	sink Telemetry
	form string
}

func newCommandTelemetry(t Telemetry, form string) commandTelemetry {
	return commandTelemetry{sink: t, form: form}
}

func (c commandTelemetry) done(ctx context.Context, action string, payload map[string]any) {
	if c.sink == nil {
		return
	}
	if payload == nil {
		payload = map[string]any{}
	}
	payload["form"] = c.form
	c.sink.Record(ctx, "forms."+c.form+"."+action, payload)
}
