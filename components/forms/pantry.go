package forms

import (
	"context"
	"fmt"
	"net/http"

	"github.com/goliatone/go-facilities/pkg/facilities"
)

// PantryForm is the create/edit form of a pantry item. An empty ID creates.
type PantryForm struct {
	ID          string
	ItemName    string
	Stock       string
	Description string
	// CreatedByID is the session UserId.
	CreatedByID string
	Attachments []facilities.Attachment
}

// PantryFormFrom pre-fills an edit form from an existing item.
func PantryFormFrom(item facilities.PantryItem) PantryForm {
	return PantryForm{
		ID:          item.ID,
		ItemName:    item.ItemName,
		Stock:       item.Stock,
		Description: item.Description,
	}
}

// Validate checks required fields.
func (f PantryForm) Validate() error {
	return Required(map[string]string{
		"item_name": f.ItemName,
		"stock":     f.Stock,
	},
		Rule{Field: "item_name", Message: "Please enter item name"},
		Rule{Field: "stock", Message: "Please enter stock"},
	)
}

// Form encodes the multipart body under the pantry[...] namespace.
func (f PantryForm) Form() *facilities.Form {
	form := facilities.NewForm("pantry").
		Set("item_name", f.ItemName).
		Set("created_by_id", f.CreatedByID).
		Set("stock", f.Stock).
		Set("description", f.Description)
	for _, att := range f.Attachments {
		form.Attach(att.Name, att.Reader)
	}
	return form
}

// SubmitPantry validates and saves a pantry item, then navigates to the
// pantry list.
func (c *Controller) SubmitPantry(ctx context.Context, f PantryForm) error {
	form := f.Form()
	method, path, verb := http.MethodPost, facilities.ResourcePantry.Path, "created"
	if f.ID != "" {
		method, path, verb = http.MethodPut, fmt.Sprintf("/pantries/%s.json", f.ID), "updated"
	}
	return c.submit(ctx, submission{
		form:    "pantry",
		check:   f.Validate,
		schema:  SchemaPantry,
		payload: form.Fields(),
		send: func(ctx context.Context) error {
			return c.transport.SubmitForm(ctx, method, path, form, nil)
		},
		success: "Pantry item " + verb + " successfully",
		failure: "Failed to save pantry item",
		route:   RoutePantry,
	})
}
