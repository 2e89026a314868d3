package forms

import (
	"context"
	"log/slog"
)

// Notifier shows transient success and failure messages.
type Notifier interface {
	Success(ctx context.Context, msg string)
	Error(ctx context.Context, msg string)
}

// Navigator moves the caller to another route after a successful submit.
type Navigator interface {
	Navigate(ctx context.Context, route string)
}

// Telemetry records structured form events.
type Telemetry interface {
	Record(ctx context.Context, event string, payload map[string]any)
}

// SlogNotifier logs notifications.
type SlogNotifier struct {
	Logger *slog.Logger
}

func (n SlogNotifier) Success(ctx context.Context, msg string) {
	n.logger().InfoContext(ctx, msg)
}

func (n SlogNotifier) Error(ctx context.Context, msg string) {
	n.logger().ErrorContext(ctx, msg)
}

func (n SlogNotifier) logger() *slog.Logger {
	if n.Logger == nil {
		return slog.Default()
	}
	return n.Logger
}

// RouteRecorder is a Navigator that remembers the last route.
type RouteRecorder struct {
	Route string
}

func (r *RouteRecorder) Navigate(_ context.Context, route string) {
	r.Route = route
}

type noopNotifier struct{}

func (noopNotifier) Success(context.Context, string) {}
func (noopNotifier) Error(context.Context, string)   {}

type noopNavigator struct{}

func (noopNavigator) Navigate(context.Context, string) {}

type noopTelemetry struct{}

func (noopTelemetry) Record(context.Context, string, map[string]any) {}
