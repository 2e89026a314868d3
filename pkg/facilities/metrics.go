package facilities

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects request counters and latencies for backend calls.
type Metrics struct {
	reqTotal   *prometheus.CounterVec
	reqLatency *prometheus.HistogramVec
	registry   *prometheus.Registry
}

// NewMetrics creates metrics on a private registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	reqTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "facilities_client_requests_total",
			Help: "Total requests sent to the facilities backend",
		},
		[]string{"method", "resource", "status"},
	)
	reqLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "facilities_client_request_duration_seconds",
			Help:    "Backend request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "resource"},
	)
	registry.MustRegister(reqTotal, reqLatency)

	return &Metrics{reqTotal: reqTotal, reqLatency: reqLatency, registry: registry}
}

// Registry exposes the underlying registry for additional collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the collected metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observe(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	resource := resourceLabel(path)
	code := "error"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	m.reqTotal.WithLabelValues(method, resource, code).Inc()
	m.reqLatency.WithLabelValues(method, resource).Observe(elapsed.Seconds())
}

// resourceLabel keeps label cardinality bounded by dropping ids and extensions:
// "/asset_amcs/42.json" becomes "asset_amcs".
func resourceLabel(path string) string {
	if idx := strings.IndexByte(path, '?'); idx >= 0 {
		path = path[:idx]
	}
	var parts []string
	for _, segment := range strings.Split(strings.Trim(path, "/"), "/") {
		segment = strings.TrimSuffix(segment, ".json")
		if segment == "" || isNumeric(segment) {
			continue
		}
		parts = append(parts, segment)
	}
	if len(parts) == 0 {
		return "root"
	}
	return strings.Join(parts, "/")
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
