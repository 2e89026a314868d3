package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-facilities/components/forms"
)

type pantryController interface {
	SubmitPantry(ctx context.Context, f forms.PantryForm) error
}

// SavePantryItemCommand submits a pantry form so transports can save items
// without holding a controller.
type SavePantryItemCommand struct {
	controller pantryController
	telemetry  commandTelemetry
}

// NewSavePantryItemCommand creates a command instance.
func NewSavePantryItemCommand(controller pantryController, telemetry Telemetry) *SavePantryItemCommand {
	return &SavePantryItemCommand{controller: controller, telemetry: newCommandTelemetry(telemetry, "pantry")}
}

var _ gocommand.Commander[forms.PantryForm] = (*SavePantryItemCommand)(nil)

// Execute delegates to the form controller.
func (c *SavePantryItemCommand) Execute(ctx context.Context, msg forms.PantryForm) error {
	if c.controller == nil {
		return errors.New("save pantry command requires controller")
	}
	if err := c.controller.SubmitPantry(ctx, msg); err != nil {
		return err
	}
	c.telemetry.done(ctx, "save", map[string]any{
		"pantry_id": msg.ID,
		"create":    msg.ID == "",
	})
	return nil
}
