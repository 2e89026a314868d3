package facilities

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
)

// MockCall records one request served by MockClient.
type MockCall struct {
	Method  string
	Path    string
	Payload any
	Form    map[string]string
	Query   map[string]string
}

// MockClient implements API from in-memory fixtures for demos and tests.
// Records are keyed by resource path and list calls page through them.
type MockClient struct {
	mu        sync.RWMutex
	records   map[string][]Record
	downloads map[string][]byte
	err       error
	calls     []MockCall
}

// NewMockClient builds a mock from fixtures keyed by path.
func NewMockClient(records map[string][]Record) *MockClient {
	m := &MockClient{records: map[string][]Record{}, downloads: map[string][]byte{}}
	for path, recs := range records {
		m.records[path] = cloneRecords(recs)
	}
	return m
}

// SetDownload registers the bytes served for path.
func (m *MockClient) SetDownload(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.downloads[path] = append([]byte(nil), data...)
}

// FailWith makes every subsequent call return err; nil restores success.
func (m *MockClient) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns the recorded calls.
func (m *MockClient) Calls() []MockCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]MockCall(nil), m.calls...)
}

// List pages through the fixtures registered for req.Path.
func (m *MockClient) List(_ context.Context, req ListRequest) (Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	page, perPage := normalizePaging(req.Page, req.PerPage)
	query := req.Query.Clone().Paginate(page, perPage)
	m.calls = append(m.calls, MockCall{Method: "GET", Path: req.Path, Query: flatten(query)})
	if m.err != nil {
		return Page{}, m.err
	}
	all := m.records[req.Path]
	start := (page - 1) * perPage
	if start > len(all) {
		start = len(all)
	}
	end := start + perPage
	if end > len(all) {
		end = len(all)
	}
	result := paginate(cloneRecords(all[start:end]), len(all), 0, 0, perPage)
	result.Page = page
	return result, nil
}

// PostJSON records the payload.
func (m *MockClient) PostJSON(_ context.Context, path string, payload, _ any) error {
	return m.record(MockCall{Method: "POST", Path: path, Payload: payload})
}

// PutJSON records the payload.
func (m *MockClient) PutJSON(_ context.Context, path string, payload, _ any) error {
	return m.record(MockCall{Method: "PUT", Path: path, Payload: payload})
}

// SubmitForm records the form fields.
func (m *MockClient) SubmitForm(_ context.Context, method, path string, form *Form, _ any) error {
	var fields map[string]string
	if form != nil {
		fields = form.Fields()
	}
	return m.record(MockCall{Method: strings.ToUpper(method), Path: path, Form: fields})
}

// Download copies the registered bytes for path into w.
func (m *MockClient) Download(_ context.Context, path string, _ *Query, w io.Writer) (int64, error) {
	if err := m.record(MockCall{Method: "GET", Path: path}); err != nil {
		return 0, err
	}
	m.mu.RLock()
	data := m.downloads[path]
	m.mu.RUnlock()
	return io.Copy(w, bytes.NewReader(data))
}

func (m *MockClient) record(call MockCall) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
	return m.err
}

func flatten(q *Query) map[string]string {
	out := map[string]string{}
	for key, vals := range q.Values() {
		if len(vals) > 0 {
			out[key] = vals[0]
		}
	}
	return out
}

func cloneRecords(in []Record) []Record {
	out := make([]Record, len(in))
	for i, rec := range in {
		clone := make(Record, len(rec))
		for k, v := range rec {
			clone[k] = v
		}
		out[i] = clone
	}
	return out
}
