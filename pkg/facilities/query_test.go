package facilities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFilterKey(t *testing.T) {
	assert.Equal(t, "q[asset_id_eq]", FilterKey("asset_id", "eq"))
	assert.Equal(t, "q[start_date_gteq]", FilterKey("startDate", "gteq"))
	assert.Equal(t, "q[is_meter]", FilterKey("is_meter", ""))
}

func TestQueryWhereSkipsBlankValues(t *testing.T) {
	q := NewQuery().
		Where("status", "eq", "").
		Where("asset_id", "eq", 12).
		Where("is_meter", "", true)
	assert.Equal(t, map[string]string{"asset_id_eq": "12", "is_meter": "true"}, q.Filters())
}

func TestQueryCloneIsIndependent(t *testing.T) {
	var nilQuery *Query
	clone := nilQuery.Clone()
	clone.Where("name", "cont", "pump")
	assert.Nil(t, nilQuery.Values())

	base := NewQuery().Where("name", "cont", "pump")
	copyQ := base.Clone().Where("status", "eq", "active")
	assert.Len(t, base.Filters(), 1)
	assert.Len(t, copyQ.Filters(), 2)
}

func TestResourceRequestMergesBaseFilters(t *testing.T) {
	req := ResourceMeters.Request(3, 25, NewQuery().Where("name", "cont", "DG"))
	assert.Equal(t, "/site_assets.json", req.Path)
	assert.Equal(t, "site_assets", req.ResourceKey)
	assert.Equal(t, "true", req.Query.Get("q[is_meter]"))
	assert.Equal(t, "DG", req.Query.Get("q[name_cont]"))
}

func TestValidPageSize(t *testing.T) {
	for _, size := range []int{10, 12, 25, 50} {
		assert.True(t, ValidPageSize(size))
	}
	assert.False(t, ValidPageSize(20))
}

func TestTaskFilters(t *testing.T) {
	now := time.Date(2024, time.March, 17, 9, 30, 0, 0, time.UTC)
	filters := DefaultTaskFilters(now)
	assert.Equal(t, "2024-03-01", filters.StartDate)
	assert.Equal(t, "2024-03-17", filters.EndDate)

	tasks := []Record{
		{"id": 1, "status": "Open", "soft_service_name": "Lobby cleaning"},
		{"id": 2, "status": "closed", "checklist_name": "Washroom"},
		{"id": 3, "status": "overdue", "service_name": "Pest control"},
		{"id": 4, "status": "pending", "name": "Garden"},
	}
	filters.Status = TaskFilterPending
	assert.Len(t, filters.Apply(tasks), 2)

	filters.Status = TaskFilterAll
	filters.Search = "wash"
	got := filters.Apply(tasks)
	if assert.Len(t, got, 1) {
		assert.Equal(t, "2", got[0].ID())
	}
}

func TestVisitorFiltersForTab(t *testing.T) {
	f := VisitorFilters{Search: "ravi"}.ForTab(VisitorTabIn)
	assert.Equal(t, "in", f.InOut)
	assert.Equal(t, "in", f.Query().Get("q[visitor_in_out_eq]"))
	assert.Equal(t, "", f.ForTab(VisitorTabAll).InOut)
}
