package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-facilities/components/forms"
)

type checklistController interface {
	SubmitChecklist(ctx context.Context, f forms.ChecklistForm) error
}

// CreateChecklistCommand submits a soft-service checklist.
type CreateChecklistCommand struct {
	controller checklistController
	telemetry  commandTelemetry
}

// NewCreateChecklistCommand creates a command instance.
func NewCreateChecklistCommand(controller checklistController, telemetry Telemetry) *CreateChecklistCommand {
	return &CreateChecklistCommand{controller: controller, telemetry: newCommandTelemetry(telemetry, "checklist")}
}

var _ gocommand.Commander[forms.ChecklistForm] = (*CreateChecklistCommand)(nil)

// Execute delegates to the form controller.
func (c *CreateChecklistCommand) Execute(ctx context.Context, msg forms.ChecklistForm) error {
	if c.controller == nil {
		return errors.New("create checklist command requires controller")
	}
	if err := c.controller.SubmitChecklist(ctx, msg); err != nil {
		return err
	}
	questions := 0
	for _, section := range msg.Sections {
		questions += len(section.Questions)
	}
	c.telemetry.done(ctx, "create", map[string]any{
		"name":      msg.Name,
		"sections":  len(msg.Sections),
		"questions": questions,
	})
	return nil
}
