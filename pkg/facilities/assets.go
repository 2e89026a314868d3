package facilities

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ChecklistType is the checklist ctype understood by the backend.
type ChecklistType string

const (
	ChecklistRoutine     ChecklistType = "routine"
	ChecklistPPM         ChecklistType = "ppm"
	ChecklistSoftService ChecklistType = "soft_service"
)

// AMC is an annual maintenance contract attached to an asset.
type AMC struct {
	ID             int64   `json:"id,omitempty" yaml:"id,omitempty"`
	VendorName     string  `json:"vendor_name,omitempty" yaml:"vendor_name,omitempty"`
	VendorID       int64   `json:"vendor_id,omitempty" yaml:"vendor_id,omitempty"`
	AssetID        int64   `json:"asset_id,omitempty" yaml:"asset_id,omitempty"`
	AssetName      string  `json:"asset_name,omitempty" yaml:"asset_name,omitempty"`
	StartDate      string  `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate        string  `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	AMCType        string  `json:"amc_type,omitempty" yaml:"amc_type,omitempty"`
	Amount         float64 `json:"amount,omitempty" yaml:"amount,omitempty"`
	Status         string  `json:"status,omitempty" yaml:"status,omitempty"`
	Frequency      string  `json:"frequency,omitempty" yaml:"frequency,omitempty"`
	ContractNumber string  `json:"contract_number,omitempty" yaml:"contract_number,omitempty"`
	CreatedAt      string  `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// AssetFilters narrows the asset list.
type AssetFilters struct {
	Search string
	Status string
}

// RoutineTaskFilters narrows routine activities by date range and status.
type RoutineTaskFilters struct {
	StartDate string
	EndDate   string
	// Status "all" or empty sends no status filter.
	Status string
}

// Assets lists site assets.
func (c *Client) Assets(ctx context.Context, page, perPage int, filters AssetFilters) (Page, error) {
	q := NewQuery()
	if filters.Search != "" {
		q.Set(ResourceAssets.SearchParam, filters.Search)
	}
	q.Where("status", "eq", filters.Status)
	return c.List(ctx, ResourceAssets.Request(page, perPage, q))
}

// AMCs lists maintenance contracts.
func (c *Client) AMCs(ctx context.Context, page, perPage int) (Page, error) {
	return c.List(ctx, ResourceAMCs.Request(page, perPage, nil))
}

// AMCsByAsset lists the contracts of one asset.
func (c *Client) AMCsByAsset(ctx context.Context, assetID string) ([]Record, error) {
	if assetID == "" {
		return nil, errors.New("facilities: asset id is required")
	}
	q := NewQuery().Where("asset_id", "eq", assetID)
	body, err := c.fetch(ctx, http.MethodGet, ResourceAMCs.Path, q.Values(), nil, "")
	if err != nil {
		return nil, err
	}
	page, err := DecodePage(body, ResourceAMCs.Key, DefaultPerPage)
	if err != nil {
		return nil, err
	}
	return page.Records, nil
}

// AMC fetches one contract.
func (c *Client) AMC(ctx context.Context, id string) (AMC, error) {
	var amc AMC
	if err := c.Get(ctx, fmt.Sprintf("/asset_amcs/%s.json", id), nil, &amc); err != nil {
		return AMC{}, err
	}
	return amc, nil
}

// CreateAMC posts a new contract.
func (c *Client) CreateAMC(ctx context.Context, amc AMC) (AMC, error) {
	var created AMC
	if err := c.PostJSON(ctx, ResourceAMCs.Path, amc, &created); err != nil {
		return AMC{}, err
	}
	return created, nil
}

// UpdateAMC replaces the contract identified by id.
func (c *Client) UpdateAMC(ctx context.Context, id string, amc AMC) (AMC, error) {
	var updated AMC
	if err := c.PutJSON(ctx, fmt.Sprintf("/asset_amcs/%s.json", id), amc, &updated); err != nil {
		return AMC{}, err
	}
	return updated, nil
}

// Meters lists assets flagged as meters.
func (c *Client) Meters(ctx context.Context, page, perPage int) (Page, error) {
	return c.List(ctx, ResourceMeters.Request(page, perPage, nil))
}

// Meter fetches one metered asset.
func (c *Client) Meter(ctx context.Context, id string) (Record, error) {
	var rec Record
	if err := c.Get(ctx, fmt.Sprintf("/site_assets/%s.json", id), nil, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Checklists lists checklists of the given type.
func (c *Client) Checklists(ctx context.Context, ctype ChecklistType, page, perPage int) (Page, error) {
	res := ResourceRoutineChecklists
	if ctype == ChecklistPPM {
		res = ResourcePPMChecklists
	}
	return c.List(ctx, res.Request(page, perPage, nil))
}

// Checklist fetches one checklist.
func (c *Client) Checklist(ctx context.Context, id string) (Record, error) {
	var rec Record
	if err := c.Get(ctx, fmt.Sprintf("/checklists/%s.json", id), nil, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// RoutineTasks lists routine activities in a date window.
func (c *Client) RoutineTasks(ctx context.Context, page, perPage int, filters RoutineTaskFilters) (Page, error) {
	q := NewQuery().
		Where("start_date", "gteq", filters.StartDate).
		Where("start_date", "lteq", filters.EndDate)
	if filters.Status != "" && filters.Status != "all" {
		q.Where("status", "eq", filters.Status)
	}
	return c.List(ctx, ResourceRoutineTasks.Request(page, perPage, q))
}

// Submissions lists checklist submissions recorded for an asset activity.
func (c *Client) Submissions(ctx context.Context, assetID, activityID string) (Page, error) {
	q := NewQuery().
		Where("asset_id", "eq", assetID).
		Where("activity_id", "eq", activityID)
	return c.List(ctx, ResourceSubmissions.Request(1, DefaultPerPage, q))
}

// PPMActivities lists preventive maintenance activities.
func (c *Client) PPMActivities(ctx context.Context, page, perPage int) (Page, error) {
	return c.List(ctx, ResourcePPMActivities.Request(page, perPage, nil))
}

// AssetPPM returns the PPM schedule of one asset.
func (c *Client) AssetPPM(ctx context.Context, assetID string) (Record, error) {
	q := NewQuery().Where("checklist_id", "is_not_null", "1")
	var rec Record
	if err := c.Get(ctx, fmt.Sprintf("/site_assets/%s/asset_ppm_show.json", assetID), q, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// StockItems lists inventory items.
func (c *Client) StockItems(ctx context.Context, page, perPage int) (Page, error) {
	return c.List(ctx, ResourceStockItems.Request(page, perPage, nil))
}

// StockItem fetches one inventory item.
func (c *Client) StockItem(ctx context.Context, id string) (Record, error) {
	var rec Record
	if err := c.Get(ctx, fmt.Sprintf("/items/%s.json", id), nil, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// StockGroups lists item groups.
func (c *Client) StockGroups(ctx context.Context) ([]Record, error) {
	page, err := c.List(ctx, ResourceStockGroups.Request(1, PerPageLarge, nil))
	if err != nil {
		return nil, err
	}
	return page.Records, nil
}
