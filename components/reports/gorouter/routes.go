// Package gorouter mounts the report and table previews on a go-router router.
package gorouter

import (
	"errors"
	"net/http"
	"strings"

	router "github.com/goliatone/go-router"

	"github.com/goliatone/go-facilities/components/navigation"
	"github.com/goliatone/go-facilities/components/reports"
)

// Config wires go-router with the report renderer.
type Config[T any] struct {
	Router   router.Router[T]
	Renderer *reports.Renderer
	BasePath string
	Routes   RouteConfig
}

// RouteConfig customizes the relative paths of the preview endpoints.
type RouteConfig struct {
	Reports    string
	Report     string
	Chart      string
	Tables     string
	Navigation string
}

// Register mounts the preview routes.
func Register[T any](cfg Config[T]) error {
	if cfg.Router == nil {
		return errors.New("gorouter: router is required")
	}
	if cfg.Renderer == nil {
		return errors.New("gorouter: renderer is required")
	}
	routes := defaultRouteConfig(cfg.Routes)
	base := cfg.BasePath
	if base == "" {
		base = "/preview"
	}
	group := cfg.Router.Group(base)

	group.Get(routes.Reports, router.WrapHandler(func(ctx router.Context) error {
		return ctx.JSON(http.StatusOK, reports.Index())
	}))

	group.Get(routes.Report, router.WrapHandler(func(ctx router.Context) error {
		html, status, err := ReportHTML(cfg.Renderer, ctx.Param("id"), "")
		if err != nil {
			return respondError(ctx, status, err)
		}
		return sendHTML(ctx, html)
	}))

	group.Get(routes.Chart, router.WrapHandler(func(ctx router.Context) error {
		html, status, err := ReportHTML(cfg.Renderer, ctx.Param("id"), ctx.Param("chart"))
		if err != nil {
			return respondError(ctx, status, err)
		}
		return sendHTML(ctx, html)
	}))

	group.Get(routes.Tables, router.WrapHandler(func(ctx router.Context) error {
		filter := reports.TableFilter{
			Search: ctx.Query("search"),
			Floor:  strings.ToLower(ctx.Query("floor")),
			Status: reports.TableStatus(strings.ToLower(ctx.Query("status"))),
		}
		return ctx.JSON(http.StatusOK, reports.BuildTablesView(reports.Tables(), filter))
	}))

	group.Get(routes.Navigation, router.WrapHandler(func(ctx router.Context) error {
		return ctx.JSON(http.StatusOK, NavigationPayload(ctx.Query("active")))
	}))

	return nil
}

// ReportHTML renders a whole report, or one of its charts when chartID is set,
// and returns the HTTP status matching any error.
func ReportHTML(renderer *reports.Renderer, id, chartID string) (string, int, error) {
	rep, err := reports.Lookup(id)
	if err != nil {
		return "", http.StatusNotFound, err
	}
	if chartID == "" {
		html, err := renderer.RenderReport(rep)
		if err != nil {
			return "", http.StatusInternalServerError, err
		}
		return html, http.StatusOK, nil
	}
	chart, ok := rep.Chart(chartID)
	if !ok {
		return "", http.StatusNotFound, errors.New("gorouter: unknown chart " + chartID)
	}
	html, err := renderer.RenderChart(chart)
	if err != nil {
		return "", http.StatusInternalServerError, err
	}
	return html, http.StatusOK, nil
}

// NavigationResponse is the JSON menu with the trail for the active path.
type NavigationResponse struct {
	Active string            `json:"active,omitempty"`
	Trail  []string          `json:"trail,omitempty"`
	Items  []navigation.Item `json:"items"`
}

// NavigationPayload builds the menu payload for active.
func NavigationPayload(active string) NavigationResponse {
	active = strings.TrimSpace(active)
	resp := NavigationResponse{Active: active, Items: navigation.Menu()}
	if active != "" {
		resp.Trail = navigation.ActiveTrail(active)
	}
	return resp
}

func sendHTML(ctx router.Context, html string) error {
	ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
	return ctx.Send([]byte(html))
}

func respondError(ctx router.Context, status int, err error) error {
	return ctx.JSON(status, map[string]string{"error": err.Error()})
}

func defaultRouteConfig(routes RouteConfig) RouteConfig {
	if routes.Reports == "" {
		routes.Reports = "/reports"
	}
	if routes.Report == "" {
		routes.Report = "/reports/:id"
	}
	if routes.Chart == "" {
		routes.Chart = "/reports/:id/:chart"
	}
	if routes.Tables == "" {
		routes.Tables = "/tables"
	}
	if routes.Navigation == "" {
		routes.Navigation = "/navigation"
	}
	return routes
}
