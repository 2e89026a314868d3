package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-facilities/components/forms"
)

type amcController interface {
	SubmitAMC(ctx context.Context, f forms.AMCForm) error
}

// SaveAMCCommand creates or updates an asset maintenance contract.
type SaveAMCCommand struct {
	controller amcController
	telemetry  commandTelemetry
}

// NewSaveAMCCommand creates a command instance.
func NewSaveAMCCommand(controller amcController, telemetry Telemetry) *SaveAMCCommand {
	return &SaveAMCCommand{controller: controller, telemetry: newCommandTelemetry(telemetry, "amc")}
}

var _ gocommand.Commander[forms.AMCForm] = (*SaveAMCCommand)(nil)

// Execute delegates to the form controller.
func (c *SaveAMCCommand) Execute(ctx context.Context, msg forms.AMCForm) error {
	if c.controller == nil {
		return errors.New("save amc command requires controller")
	}
	if err := c.controller.SubmitAMC(ctx, msg); err != nil {
		return err
	}
	c.telemetry.done(ctx, "save", map[string]any{
		"amc_id":   msg.AMC.ID,
		"asset_id": msg.AMC.AssetID,
	})
	return nil
}
