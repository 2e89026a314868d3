package facilities

import "context"

// ChecklistQuestion is one question of a checklist payload.
type ChecklistQuestion struct {
	Group             string   `json:"group" yaml:"group"`
	Name              string   `json:"name" yaml:"name"`
	Type              string   `json:"type" yaml:"type"`
	QuestionMandatory bool     `json:"question_mandatory" yaml:"question_mandatory"`
	Reading           bool     `json:"reading" yaml:"reading"`
	HelpText          string   `json:"help_text" yaml:"help_text"`
	Options           []string `json:"options,omitempty" yaml:"options,omitempty"`
	Position          int      `json:"position" yaml:"position"`
}

// ChecklistPayload is the body of a checklist create request.
type ChecklistPayload struct {
	Name                string              `json:"name"`
	Frequency           string              `json:"frequency"`
	StartDate           string              `json:"start_date"`
	EndDate             string              `json:"end_date"`
	Priority            string              `json:"priority"`
	CType               ChecklistType       `json:"ctype"`
	SiteID              string              `json:"site_id"`
	UserID              string              `json:"user_id"`
	SubmitHours         int                 `json:"submit_hours"`
	SubmitMinutes       int                 `json:"submit_minutes"`
	ExtensionDays       int                 `json:"extension_days"`
	ExtensionHours      int                 `json:"extension_hours"`
	ExtensionMinutes    int                 `json:"extension_minutes"`
	LockOverdueTask     bool                `json:"lock_overdue_task"`
	CronDay             string              `json:"cron_day"`
	CronHour            string              `json:"cron_hour"`
	CronMinute          string              `json:"cron_minute"`
	SupervisorIDs       []string            `json:"supervisor_ids"`
	SupplierID          *string             `json:"supplier_id"`
	QuestionsAttributes []ChecklistQuestion `json:"questions_attributes"`
}

// ChecklistRequest wraps the payload under the "checklist" key.
type ChecklistRequest struct {
	Checklist ChecklistPayload `json:"checklist"`
}

// CreateChecklist posts a new checklist.
func (c *Client) CreateChecklist(ctx context.Context, req ChecklistRequest) (Record, error) {
	var created Record
	if err := c.PostJSON(ctx, ResourceRoutineChecklists.Path, req, &created); err != nil {
		return nil, err
	}
	return created, nil
}

// ChecklistLookups are the option lists shown while building a checklist.
type ChecklistLookups struct {
	Users     []Record
	Suppliers []Record
	Groups    []Record
}

// ChecklistLookups loads assignable users, suppliers and question groups.
func (c *Client) ChecklistLookups(ctx context.Context) (ChecklistLookups, error) {
	var out ChecklistLookups
	sources := []struct {
		path string
		key  string
		dst  *[]Record
	}{
		{"/pms/users.json", "users", &out.Users},
		{"/pms/suppliers.json", "suppliers", &out.Suppliers},
		{"/asset_groups.json", "asset_groups", &out.Groups},
	}
	for _, src := range sources {
		page, err := c.List(ctx, ListRequest{Path: src.path, ResourceKey: src.key, PerPage: PerPageLarge})
		if err != nil {
			return ChecklistLookups{}, err
		}
		*src.dst = page.Records
	}
	return out, nil
}
