package facilities

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// ErrBaseURLRequired is returned when the client is built without a backend URL.
var ErrBaseURLRequired = errors.New("facilities: base url is required")

// Config configures the REST client.
type Config struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
	// Limiter throttles outgoing requests. Nil disables throttling.
	Limiter *rate.Limiter
	Logger  *slog.Logger
	Metrics *Metrics
}

// Client talks to the facilities backend over its JSON REST endpoints.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
	metrics *Metrics
}

// NewClient builds a client for the configured backend.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, ErrBaseURLRequired
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("facilities: parse base url: %w", err)
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: base,
		token:   cfg.Token,
		client:  httpClient,
		limiter: cfg.Limiter,
		logger:  logger,
		metrics: cfg.Metrics,
	}, nil
}

// WithToken returns a shallow copy of the client bound to a different token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// List fetches one page of a resource and unwraps the response envelope.
func (c *Client) List(ctx context.Context, req ListRequest) (Page, error) {
	if req.Path == "" {
		return Page{}, errors.New("facilities: list path is required")
	}
	page, perPage := normalizePaging(req.Page, req.PerPage)
	query := req.Query.Clone().Paginate(page, perPage)
	body, err := c.fetch(ctx, http.MethodGet, req.Path, query.Values(), nil, "")
	if err != nil {
		return Page{}, err
	}
	result, err := DecodePage(body, req.ResourceKey, perPage)
	if err != nil {
		return Page{}, err
	}
	result.Page = page
	result.PerPage = perPage
	return result, nil
}

// Get decodes a single JSON document into target.
func (c *Client) Get(ctx context.Context, path string, query *Query, target any) error {
	body, err := c.fetch(ctx, http.MethodGet, path, query.Values(), nil, "")
	if err != nil {
		return err
	}
	return decodeInto(body, target)
}

// PostJSON sends payload as JSON and decodes the response into target when non-nil.
func (c *Client) PostJSON(ctx context.Context, path string, payload, target any) error {
	return c.sendJSON(ctx, http.MethodPost, path, payload, target)
}

// PutJSON sends payload as JSON with PUT semantics.
func (c *Client) PutJSON(ctx context.Context, path string, payload, target any) error {
	return c.sendJSON(ctx, http.MethodPut, path, payload, target)
}

// SubmitForm sends a multipart form body.
func (c *Client) SubmitForm(ctx context.Context, method, path string, form *Form, target any) error {
	if form == nil {
		return errors.New("facilities: form is required")
	}
	body, contentType, err := form.Encode()
	if err != nil {
		return err
	}
	resp, err := c.fetch(ctx, method, path, nil, body, contentType)
	if err != nil {
		return err
	}
	return decodeInto(resp, target)
}

// Download streams a binary response (PDF, XLSX) into w.
func (c *Client) Download(ctx context.Context, path string, query *Query, w io.Writer) (int64, error) {
	resp, err := c.roundTrip(ctx, http.MethodGet, path, query.Values(), nil, "")
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, fmt.Errorf("facilities: read download: %w", err)
	}
	return n, nil
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload, target any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("facilities: encode payload: %w", err)
	}
	body, err := c.fetch(ctx, method, path, nil, bytes.NewReader(data), "application/json")
	if err != nil {
		return err
	}
	return decodeInto(body, target)
}

func (c *Client) fetch(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) ([]byte, error) {
	resp, err := c.roundTrip(ctx, method, path, query, body, contentType)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("facilities: read response: %w", err)
	}
	return data, nil
}

// roundTrip returns the response only for 2xx statuses; the caller closes the body.
func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("facilities: rate limit: %w", err)
		}
	}
	target := c.endpoint(path, query)
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("facilities: build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.metrics.observe(method, path, 0, time.Since(start))
		c.logger.WarnContext(ctx, "facilities request failed",
			"method", method, "path", path, "request_id", requestID, "error", err)
		return nil, fmt.Errorf("facilities: http request: %w", err)
	}
	c.metrics.observe(method, path, resp.StatusCode, time.Since(start))
	c.logger.DebugContext(ctx, "facilities request",
		"method", method, "path", path, "status", resp.StatusCode,
		"request_id", requestID, "duration", time.Since(start))

	if resp.StatusCode >= 300 {
		defer resp.Body.Close()
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(io.LimitReader(resp.Body, 64<<10))
		return nil, &RemoteError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(buf.String())}
	}
	return resp, nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	values := url.Values{}
	for key, vals := range query {
		values[key] = append([]string(nil), vals...)
	}
	if c.token != "" {
		values.Set("token", c.token)
	}
	target := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		if strings.Contains(path, "?") {
			target += "&" + encoded
		} else {
			target += "?" + encoded
		}
	}
	return target
}

func decodeInto(body []byte, target any) error {
	if target == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("facilities: decode response: %w", err)
	}
	return nil
}

func normalizePaging(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	return page, perPage
}
