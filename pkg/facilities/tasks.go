package facilities

import (
	"context"
	"io"
	"strings"
	"time"
)

const softServiceExportPath = "/activities/export.xlsx"

// TaskExportFileName is the file name used for the soft service export.
const TaskExportFileName = "tasks.xlsx"

// TaskStatusFilter buckets task statuses for the list tabs.
type TaskStatusFilter string

const (
	TaskFilterAll       TaskStatusFilter = "all"
	TaskFilterPending   TaskStatusFilter = "pending"
	TaskFilterCompleted TaskStatusFilter = "completed"
	TaskFilterOverdue   TaskStatusFilter = "overdue"
)

// Matches reports whether a raw task status falls into the bucket.
func (f TaskStatusFilter) Matches(status string) bool {
	status = strings.ToLower(strings.TrimSpace(status))
	switch f {
	case TaskFilterPending:
		return status == "pending" || status == "open"
	case TaskFilterCompleted:
		return status == "completed" || status == "closed"
	case TaskFilterOverdue:
		return status == "overdue"
	default:
		return true
	}
}

// TaskFilters narrows the soft service task list. Dates are YYYY-MM-DD.
type TaskFilters struct {
	StartDate string
	EndDate   string
	Status    TaskStatusFilter
	Search    string
}

// DefaultTaskFilters covers the first day of now's month through now.
func DefaultTaskFilters(now time.Time) TaskFilters {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return TaskFilters{
		StartDate: first.Format(time.DateOnly),
		EndDate:   now.Format(time.DateOnly),
		Status:    TaskFilterAll,
	}
}

// Query renders the server side part of the filters (the date window).
func (f TaskFilters) Query() *Query {
	return NewQuery().
		Where("start_date", "gteq", f.StartDate).
		Where("start_date", "lteq", f.EndDate)
}

// Apply filters a page of tasks by status bucket and search term on the client.
func (f TaskFilters) Apply(tasks []Record) []Record {
	out := make([]Record, 0, len(tasks))
	for _, task := range tasks {
		if !f.Status.Matches(task.String("status")) {
			continue
		}
		if !ResourceSoftServiceTasks.MatchesSearch(task, f.Search) {
			continue
		}
		out = append(out, task)
	}
	return out
}

// SoftServiceTasks lists soft service activities in the filter's date window,
// then applies status and search filters to the returned page.
func (c *Client) SoftServiceTasks(ctx context.Context, page, perPage int, filters TaskFilters) (Page, error) {
	result, err := c.List(ctx, ResourceSoftServiceTasks.Request(page, perPage, filters.Query()))
	if err != nil {
		return Page{}, err
	}
	result.Records = filters.Apply(result.Records)
	return result, nil
}

// ExportSoftServiceTasks streams the XLSX export into w.
func (c *Client) ExportSoftServiceTasks(ctx context.Context, w io.Writer) (int64, error) {
	return c.Download(ctx, softServiceExportPath, nil, w)
}
