package facilities

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Method string
	Path   string
	Query  url.Values
}

func newCaptureServer(t *testing.T, body string) (*Client, func() capturedRequest) {
	t.Helper()
	var (
		mu   sync.Mutex
		last capturedRequest
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		last = capturedRequest{Method: r.Method, Path: r.URL.Path, Query: r.URL.Query()}
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL, Token: "tok"})
	require.NoError(t, err)
	return client, func() capturedRequest {
		mu.Lock()
		defer mu.Unlock()
		return last
	}
}

func TestClientEndpoints(t *testing.T) {
	cases := []struct {
		name   string
		call   func(ctx context.Context, c *Client) error
		method string
		path   string
		query  map[string]string
		absent []string
	}{
		{
			name: "visitors",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Visitors(ctx, 2, 25, VisitorFilters{Search: "ravi"}.ForTab(VisitorTabIn))
				return err
			},
			method: http.MethodGet,
			path:   "/visitors.json",
			query: map[string]string{
				"page": "2", "per_page": "25",
				"q[name_or_contact_no_cont]": "ravi",
				"q[visitor_in_out_eq]":       "in",
			},
			absent: []string{"q[status_eq]"},
		},
		{
			name: "soft service tasks",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.SoftServiceTasks(ctx, 1, 10, TaskFilters{
					StartDate: "2024-05-01", EndDate: "2024-05-31", Status: TaskFilterPending, Search: "mop",
				})
				return err
			},
			method: http.MethodGet,
			path:   "/activities.json",
			query: map[string]string{
				"q[checklist_ctype_eq]": "soft_service",
				"q[start_date_gteq]":    "2024-05-01",
				"q[start_date_lteq]":    "2024-05-31",
			},
			absent: []string{"q[status_eq]"},
		},
		{
			name: "amcs by asset",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.AMCsByAsset(ctx, "12")
				return err
			},
			method: http.MethodGet,
			path:   "/asset_amcs.json",
			query:  map[string]string{"q[asset_id_eq]": "12"},
		},
		{
			name: "amc",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.AMC(ctx, "31")
				return err
			},
			method: http.MethodGet,
			path:   "/asset_amcs/31.json",
		},
		{
			name: "create amc",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.CreateAMC(ctx, AMC{AssetID: 1, VendorID: 2})
				return err
			},
			method: http.MethodPost,
			path:   "/asset_amcs.json",
		},
		{
			name: "update amc",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UpdateAMC(ctx, "31", AMC{AssetID: 1, VendorID: 2})
				return err
			},
			method: http.MethodPut,
			path:   "/asset_amcs/31.json",
		},
		{
			name: "meters",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Meters(ctx, 1, 10)
				return err
			},
			method: http.MethodGet,
			path:   "/site_assets.json",
			query:  map[string]string{"q[is_meter]": "true"},
		},
		{
			name: "meter",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Meter(ctx, "8")
				return err
			},
			method: http.MethodGet,
			path:   "/site_assets/8.json",
		},
		{
			name: "routine checklists",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Checklists(ctx, ChecklistRoutine, 1, 10)
				return err
			},
			method: http.MethodGet,
			path:   "/checklists.json",
			query:  map[string]string{"q[ctype_eq]": "routine"},
		},
		{
			name: "ppm checklists",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Checklists(ctx, ChecklistPPM, 1, 10)
				return err
			},
			method: http.MethodGet,
			path:   "/checklists.json",
			query:  map[string]string{"q[ctype_eq]": "ppm"},
		},
		{
			name: "checklist",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Checklist(ctx, "4")
				return err
			},
			method: http.MethodGet,
			path:   "/checklists/4.json",
		},
		{
			name: "ppm activities",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.PPMActivities(ctx, 3, 10)
				return err
			},
			method: http.MethodGet,
			path:   "/activities.json",
			query:  map[string]string{"q[checklist_ctype_eq]": "ppm", "page": "3"},
		},
		{
			name: "asset ppm",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.AssetPPM(ctx, "6")
				return err
			},
			method: http.MethodGet,
			path:   "/site_assets/6/asset_ppm_show.json",
			query:  map[string]string{"q[checklist_id_is_not_null]": "1"},
		},
		{
			name: "submissions",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Submissions(ctx, "6", "90")
				return err
			},
			method: http.MethodGet,
			path:   "/submissions.json",
			query: map[string]string{
				"q[checklist_id_is_not_null]": "1",
				"q[asset_id_eq]":              "6",
				"q[activity_id_eq]":           "90",
			},
		},
		{
			name: "stock items",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.StockItems(ctx, 1, 50)
				return err
			},
			method: http.MethodGet,
			path:   "/items.json",
			query:  map[string]string{"per_page": "50"},
		},
		{
			name: "stock item",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.StockItem(ctx, "17")
				return err
			},
			method: http.MethodGet,
			path:   "/items/17.json",
		},
		{
			name: "stock groups",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.StockGroups(ctx)
				return err
			},
			method: http.MethodGet,
			path:   "/asset_groups.json",
			query:  map[string]string{"q[group_for_eq]": "item"},
		},
		{
			name: "pantry item",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.PantryItem(ctx, "5")
				return err
			},
			method: http.MethodGet,
			path:   "/pantries/5.json",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, last := newCaptureServer(t, `{"id": 5}`)
			require.NoError(t, tc.call(context.Background(), client))
			got := last()
			assert.Equal(t, tc.method, got.Method)
			assert.Equal(t, tc.path, got.Path)
			assert.Equal(t, "tok", got.Query.Get("token"))
			for key, want := range tc.query {
				assert.Equal(t, want, got.Query.Get(key), key)
			}
			for _, key := range tc.absent {
				_, ok := got.Query[key]
				assert.False(t, ok, key)
			}
		})
	}
}

func TestClientChecklistLookupsLoadsEverySource(t *testing.T) {
	var (
		mu    sync.Mutex
		paths []string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		switch r.URL.Path {
		case "/pms/users.json":
			_, _ = w.Write([]byte(`{"users":[{"id":1,"firstname":"Asha"}]}`))
		case "/pms/suppliers.json":
			_, _ = w.Write([]byte(`[{"id":2,"company_name":"CleanCo"}]`))
		default:
			_, _ = w.Write([]byte(`{"data":[{"id":3,"name":"HVAC"}]}`))
		}
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL})
	require.NoError(t, err)
	lookups, err := client.ChecklistLookups(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"/pms/users.json", "/pms/suppliers.json", "/asset_groups.json"}, paths)
	require.Len(t, lookups.Users, 1)
	require.Len(t, lookups.Suppliers, 1)
	require.Len(t, lookups.Groups, 1)
	assert.Equal(t, "HVAC", lookups.Groups[0].String("name"))
}

func TestClientSoftServiceTasksFiltersPage(t *testing.T) {
	client, _ := newCaptureServer(t, `{"activities":[
		{"id":1,"status":"Open","soft_service_name":"Mopping"},
		{"id":2,"status":"closed","soft_service_name":"Mopping"},
		{"id":3,"status":"pending","checklist_name":"Dusting"}
	],"total":3}`)
	page, err := client.SoftServiceTasks(context.Background(), 1, 10, TaskFilters{Status: TaskFilterPending, Search: "mop"})
	require.NoError(t, err)
	require.Len(t, page.Records, 1)
	assert.Equal(t, "1", page.Records[0].ID())
	assert.Equal(t, 3, page.Total)
}

func TestClientAMCsByAssetRequiresID(t *testing.T) {
	client, _ := newCaptureServer(t, `[]`)
	_, err := client.AMCsByAsset(context.Background(), "")
	assert.Error(t, err)
}
