package forms

import (
	"context"
	"strings"
	"time"

	"github.com/goliatone/go-facilities/pkg/facilities"
)

// Question answer types, frequencies and priorities offered by the checklist builder.
var (
	AnswerTypes = []string{"Yes/No", "Text", "Number", "Date", "Photo", "Dropdown"}
	Frequencies = []string{"daily", "weekly", "monthly", "quarterly", "yearly"}
	Priorities  = []string{"low", "medium", "high"}
)

// ChecklistQuestionInput is one question as entered.
type ChecklistQuestionInput struct {
	Name      string   `yaml:"name"`
	Type      string   `yaml:"type"`
	Mandatory bool     `yaml:"mandatory"`
	Reading   bool     `yaml:"reading"`
	HelpText  string   `yaml:"help_text"`
	Options   []string `yaml:"options"`
}

// ChecklistSection groups questions.
type ChecklistSection struct {
	Group     string                   `yaml:"group"`
	Questions []ChecklistQuestionInput `yaml:"questions"`
}

// ChecklistForm is the soft-service checklist builder.
type ChecklistForm struct {
	Name             string             `yaml:"name"`
	Frequency        string             `yaml:"frequency"`
	StartDate        string             `yaml:"start_date"`
	EndDate          string             `yaml:"end_date"`
	Priority         string             `yaml:"priority"`
	SiteID           string             `yaml:"site_id"`
	UserID           string             `yaml:"user_id"`
	SubmitHours      int                `yaml:"submit_hours"`
	SubmitMinutes    int                `yaml:"submit_minutes"`
	ExtensionDays    int                `yaml:"extension_days"`
	ExtensionHours   int                `yaml:"extension_hours"`
	ExtensionMinutes int                `yaml:"extension_minutes"`
	LockOverdueTask  bool               `yaml:"lock_overdue_task"`
	CronDay          string             `yaml:"cron_day"`
	CronHour         string             `yaml:"cron_hour"`
	CronMinute       string             `yaml:"cron_minute"`
	SupervisorIDs    []string           `yaml:"supervisor_ids"`
	SupplierID       string             `yaml:"supplier_id"`
	Sections         []ChecklistSection `yaml:"sections"`
}

// NewChecklistForm returns a blank form dated today with the default
// schedule (every day at 00:00) and one empty section.
func NewChecklistForm(today time.Time) ChecklistForm {
	day := today.Format(time.DateOnly)
	return ChecklistForm{
		StartDate:  day,
		EndDate:    day,
		CronDay:    "*",
		CronHour:   "0",
		CronMinute: "0",
		Sections:   []ChecklistSection{{Questions: []ChecklistQuestionInput{{}}}},
	}
}

// ClearCron resets the schedule to every day at 00:00.
func (f *ChecklistForm) ClearCron() {
	f.CronDay, f.CronHour, f.CronMinute = "*", "0", "0"
}

// AddSection appends an empty section.
func (f *ChecklistForm) AddSection() {
	f.Sections = append(f.Sections, ChecklistSection{Questions: []ChecklistQuestionInput{{}}})
}

// RemoveSection drops the section at index; out-of-range indexes are ignored.
func (f *ChecklistForm) RemoveSection(index int) {
	if index < 0 || index >= len(f.Sections) {
		return
	}
	f.Sections = append(f.Sections[:index], f.Sections[index+1:]...)
}

// Validate checks required fields.
func (f ChecklistForm) Validate() error {
	return Required(map[string]string{"name": f.Name},
		Rule{Field: "name", Message: "Checklist name is required"})
}

// Payload builds the request body. Question positions are
// sectionIndex*100 + questionIndex and every question is sent, named or not.
func (f ChecklistForm) Payload() facilities.ChecklistRequest {
	payload := facilities.ChecklistPayload{
		Name:             strings.TrimSpace(f.Name),
		Frequency:        f.Frequency,
		StartDate:        f.StartDate,
		EndDate:          f.EndDate,
		Priority:         f.Priority,
		CType:            facilities.ChecklistSoftService,
		SiteID:           f.SiteID,
		UserID:           f.UserID,
		SubmitHours:      f.SubmitHours,
		SubmitMinutes:    f.SubmitMinutes,
		ExtensionDays:    f.ExtensionDays,
		ExtensionHours:   f.ExtensionHours,
		ExtensionMinutes: f.ExtensionMinutes,
		LockOverdueTask:  f.LockOverdueTask,
		CronDay:          orDefault(f.CronDay, "*"),
		CronHour:         orDefault(f.CronHour, "0"),
		CronMinute:       orDefault(f.CronMinute, "0"),
		SupervisorIDs:    append([]string{}, f.SupervisorIDs...),
	}
	if id := strings.TrimSpace(f.SupplierID); id != "" {
		payload.SupplierID = &id
	}
	payload.QuestionsAttributes = []facilities.ChecklistQuestion{}
	for sIdx, section := range f.Sections {
		for qIdx, q := range section.Questions {
			payload.QuestionsAttributes = append(payload.QuestionsAttributes, facilities.ChecklistQuestion{
				Group:             section.Group,
				Name:              strings.TrimSpace(q.Name),
				Type:              q.Type,
				QuestionMandatory: q.Mandatory,
				Reading:           q.Reading,
				HelpText:          q.HelpText,
				Options:           q.Options,
				Position:          sIdx*100 + qIdx,
			})
		}
	}
	return facilities.ChecklistRequest{Checklist: payload}
}

// SubmitChecklist validates and creates a checklist, then navigates to the
// checklist list.
func (c *Controller) SubmitChecklist(ctx context.Context, f ChecklistForm) error {
	req := f.Payload()
	return c.submit(ctx, submission{
		form:    "checklist",
		check:   f.Validate,
		schema:  SchemaChecklist,
		payload: req,
		send: func(ctx context.Context) error {
			return c.transport.PostJSON(ctx, facilities.ResourceRoutineChecklists.Path, req, nil)
		},
		success: "Checklist created successfully",
		failure: "Failed to create checklist",
		route:   RouteChecklists,
	})
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
