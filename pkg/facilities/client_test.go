package facilities

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{})
	if !errors.Is(err, ErrBaseURLRequired) {
		t.Fatalf("expected ErrBaseURLRequired, got %v", err)
	}
}

func TestClientListUnwrapsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pms/admin/complaints.json" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Fatalf("expected auth header, got %s", got)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Fatalf("expected request id header")
		}
		query := r.URL.Query()
		if query.Get("token") != "secret" || query.Get("page") != "2" || query.Get("per_page") != "10" {
			t.Fatalf("unexpected query %s", r.URL.RawQuery)
		}
		if query.Get("q[priority_eq]") != "high" {
			t.Fatalf("expected priority filter, got %s", r.URL.RawQuery)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"complaints": []map[string]any{{"id": 1, "heading": "Leak"}, {"id": 2, "heading": "AC"}},
			"total":      25,
		})
	}))
	t.Cleanup(server.Close)

	metrics := NewMetrics()
	client, err := NewClient(Config{BaseURL: server.URL, Token: "secret", Metrics: metrics})
	require.NoError(t, err)

	page, err := client.Tickets(context.Background(), 2, 10, TicketFilters{Priority: "high"})
	require.NoError(t, err)
	require.Len(t, page.Records, 2)
	assert.Equal(t, "Leak", page.Records[0].String("heading"))
	assert.Equal(t, 25, page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 2, page.Page)

	count := testutil.ToFloat64(metrics.reqTotal.WithLabelValues(http.MethodGet, "pms/admin/complaints", "200"))
	assert.Equal(t, float64(1), count)
}

func TestClientListRemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Assets(context.Background(), 1, 10, AssetFilters{})
	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusInternalServerError, remote.StatusCode)
	assert.Equal(t, "boom", remote.Body)
}

func TestClientRoutineTasksFilters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "routine", query.Get("q[checklist_ctype_eq]"))
		assert.Equal(t, "2024-03-01", query.Get("q[start_date_gteq]"))
		assert.Equal(t, "2024-03-31", query.Get("q[start_date_lteq]"))
		_, hasStatus := query["q[status_eq]"]
		assert.False(t, hasStatus, "status filter must be omitted for all")
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL})
	require.NoError(t, err)
	page, err := client.RoutineTasks(context.Background(), 1, 10, RoutineTaskFilters{
		StartDate: "2024-03-01",
		EndDate:   "2024-03-31",
		Status:    "all",
	})
	require.NoError(t, err)
	assert.True(t, page.Empty())
	assert.Equal(t, 0, page.TotalPages)
}

func TestClientSavePantryItemSendsMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/pantries/7.json" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("pantry[item_name]"); got != "Coffee" {
			t.Fatalf("unexpected item name %q", got)
		}
		files := r.MultipartForm.File["attachfiles[]"]
		if len(files) != 1 || files[0].Filename != "beans.png" {
			t.Fatalf("unexpected attachments %#v", files)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL})
	require.NoError(t, err)
	form := NewForm("pantry").Set("item_name", "Coffee").Set("stock", "4")
	form.Attach("beans.png", bytes.NewReader([]byte("png")))
	require.NoError(t, client.SavePantryItem(context.Background(), "7", form))
}

func TestClientDownloadReceiptInvoice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/receipt_invoices/9/download.pdf", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = io.WriteString(w, "%PDF-1.4")
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL})
	require.NoError(t, err)
	var buf bytes.Buffer
	n, err := client.DownloadReceiptInvoice(context.Background(), "9", &buf)
	require.NoError(t, err)
	assert.Equal(t, int64(8), n)
	assert.Equal(t, "%PDF-1.4", buf.String())
}

func TestClientCreateChecklistWrapsPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		checklist := body["checklist"]
		assert.Equal(t, "Daily walk", checklist["name"])
		assert.Nil(t, checklist["supplier_id"])
		_, _ = w.Write([]byte(`{"id": 11}`))
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL})
	require.NoError(t, err)
	created, err := client.CreateChecklist(context.Background(), ChecklistRequest{
		Checklist: ChecklistPayload{Name: "Daily walk", CType: ChecklistSoftService},
	})
	require.NoError(t, err)
	assert.Equal(t, "11", created.ID())
}

func TestResourceLabel(t *testing.T) {
	assert.Equal(t, "asset_amcs", resourceLabel("/asset_amcs/42.json"))
	assert.Equal(t, "site_assets/asset_ppm_show", resourceLabel("/site_assets/3/asset_ppm_show.json"))
	assert.Equal(t, "root", resourceLabel("/"))
}
