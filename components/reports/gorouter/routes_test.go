package gorouter

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-facilities/components/reports"
)

func TestRegisterValidatesConfig(t *testing.T) {
	if err := Register(Config[struct{}]{}); err == nil {
		t.Fatalf("expected error when router is missing")
	}
}

func TestReportHTML(t *testing.T) {
	renderer := reports.NewRenderer(reports.WithCache(nil))

	html, status, err := ReportHTML(renderer, "sales", "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, html, "Sales Report")

	html, status, err = ReportHTML(renderer, "sales", "hourly")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, html, "Hourly Sales")

	_, status, err = ReportHTML(renderer, "sales", "weekly")
	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, status)

	_, status, err = ReportHTML(renderer, "payroll", "")
	assert.ErrorIs(t, err, reports.ErrUnknownReport)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestNavigationPayload(t *testing.T) {
	resp := NavigationPayload(" /pantry ")
	assert.Equal(t, "/pantry", resp.Active)
	assert.Equal(t, []string{"Value Added Services", "Pantry"}, resp.Trail)
	assert.NotEmpty(t, resp.Items)

	assert.Nil(t, NavigationPayload("").Trail)
}

func TestDefaultRouteConfig(t *testing.T) {
	routes := defaultRouteConfig(RouteConfig{Tables: "/fb/tables"})
	assert.Equal(t, "/fb/tables", routes.Tables)
	assert.Equal(t, "/reports/:id", routes.Report)
	assert.Equal(t, "/navigation", routes.Navigation)
}
