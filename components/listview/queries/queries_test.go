package queries

import (
	"context"
	"testing"

	"github.com/goliatone/go-facilities/pkg/facilities"
)

func TestPageQueryAppliesFiltersAndSearch(t *testing.T) {
	mock := facilities.NewMockClient(map[string][]facilities.Record{
		"/site_assets.json": {{"id": 1, "name": "DG set"}, {"id": 2, "name": "Chiller"}},
	})
	query := NewPageQuery(mock)
	page, err := query.Query(context.Background(), PageInput{
		Resource: "meters",
		Page:     1,
		PerPage:  25,
		Filters:  map[string]string{"status_eq": "in_use"},
		Search:   "dg",
	})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if page.Page != 1 {
		t.Fatalf("expected page 1, got %d", page.Page)
	}
	if len(page.Records) != 1 || page.Records[0].ID() != "1" {
		t.Fatalf("expected client-side search to keep only the DG set, got %v", page.Records)
	}
	calls := mock.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	got := calls[0].Query
	if got["q[status_eq]"] != "in_use" || got["q[is_meter]"] != "true" || got["per_page"] != "25" {
		t.Fatalf("unexpected query %v", got)
	}
}

func TestPageQueryRejectsUnknownResource(t *testing.T) {
	query := NewPageQuery(facilities.NewMockClient(nil))
	if _, err := query.Query(context.Background(), PageInput{Resource: "spaceships"}); err == nil {
		t.Fatalf("expected error for unknown resource")
	}
}

func TestPageQueryRejectsInvalidPageSize(t *testing.T) {
	mock := facilities.NewMockClient(nil)
	query := NewPageQuery(mock)
	if _, err := query.Query(context.Background(), PageInput{Resource: "assets", PerPage: 7}); err == nil {
		t.Fatalf("expected error for page size 7")
	}
	if len(mock.Calls()) != 0 {
		t.Fatalf("expected no calls")
	}
}

func TestPageQueryServerSearch(t *testing.T) {
	mock := facilities.NewMockClient(nil)
	query := NewPageQuery(mock)
	if _, err := query.Query(context.Background(), PageInput{Resource: "assets", Search: "pump"}); err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if got := mock.Calls()[0].Query["q[name_cont]"]; got != "pump" {
		t.Fatalf("expected server search param, got %q", got)
	}
}
