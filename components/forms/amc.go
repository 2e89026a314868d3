package forms

import (
	"context"
	"fmt"
	"strconv"

	"github.com/goliatone/go-facilities/pkg/facilities"
)

// AMCForm creates or updates an asset maintenance contract. A zero AMC.ID
// creates.
type AMCForm struct {
	AMC facilities.AMC
}

// Validate checks required fields.
func (f AMCForm) Validate() error {
	return Required(map[string]string{
		"asset_id":   idString(f.AMC.AssetID),
		"vendor_id":  idString(f.AMC.VendorID),
		"start_date": f.AMC.StartDate,
		"end_date":   f.AMC.EndDate,
	},
		Rule{Field: "asset_id", Message: "Please select an asset"},
		Rule{Field: "vendor_id", Message: "Please select a vendor"},
		Rule{Field: "start_date", Message: "Please enter start date"},
		Rule{Field: "end_date", Message: "Please enter end date"},
	)
}

// AMCStore is implemented by transports with dedicated contract endpoints,
// such as *facilities.Client. Other transports fall back to raw JSON calls.
type AMCStore interface {
	CreateAMC(ctx context.Context, amc facilities.AMC) (facilities.AMC, error)
	UpdateAMC(ctx context.Context, id string, amc facilities.AMC) (facilities.AMC, error)
}

// SubmitAMC validates and saves the contract, then navigates to the AMC list.
func (c *Controller) SubmitAMC(ctx context.Context, f AMCForm) error {
	amc := f.AMC
	store, hasStore := c.transport.(AMCStore)
	success := "AMC created successfully"
	send := func(ctx context.Context) error {
		if hasStore {
			_, err := store.CreateAMC(ctx, amc)
			return err
		}
		return c.transport.PostJSON(ctx, facilities.ResourceAMCs.Path, amc, nil)
	}
	if amc.ID != 0 {
		success = "AMC updated successfully"
		send = func(ctx context.Context) error {
			if hasStore {
				_, err := store.UpdateAMC(ctx, idString(amc.ID), amc)
				return err
			}
			return c.transport.PutJSON(ctx, fmt.Sprintf("/asset_amcs/%d.json", amc.ID), amc, nil)
		}
	}
	return c.submit(ctx, submission{
		form:    "amc",
		check:   f.Validate,
		schema:  SchemaAMC,
		payload: amc,
		send:    send,
		success: success,
		failure: "Failed to save AMC",
		route:   RouteAMC,
	})
}

func idString(id int64) string {
	if id <= 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}
