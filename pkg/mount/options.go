package mount

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/vmount/pkg/host"
)

// Options configures a single Mount or Hydrate call.
type Options struct {
	// Target is the node the component renders into. Required.
	Target *host.Node

	// Anchor is the node content is inserted before. Mount creates and
	// appends a placeholder when nil. Ignored by Hydrate.
	Anchor *host.Node

	// Props is copied and the copy passed to the component. A nil map
	// becomes an empty one.
	Props Props

	// Events are user-level callbacks, exposed to the component under
	// EventsKey. Their names are also registered as delegated events.
	Events Events

	// Context seeds a fresh context frame for the component.
	Context map[any]any

	// Intro controls intro transitions. Mount defaults to true, Hydrate to false.
	Intro *bool

	// Recover controls mismatch recovery in Hydrate. Defaults to the
	// runtime setting, which defaults to true.
	Recover *bool
}

// Bool returns a pointer to v, for the optional fields of Options.
func Bool(v bool) *bool {
	return &v
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithLogger sets the runtime logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runtime) {
		r.logger = logger
	}
}

// WithReporter replaces the diagnostics reporter.
func WithReporter(rep Reporter) Option {
	return func(r *Runtime) {
		r.reporter = rep
	}
}

// WithDiagnostics enables diagnostics: double-unmount warnings with call
// traces.
func WithDiagnostics(enabled bool) Option {
	return func(r *Runtime) {
		r.diagnostics = enabled
	}
}

// WithRecover sets the default for Options.Recover.
func WithRecover(enabled bool) Option {
	return func(r *Runtime) {
		r.recover = enabled
	}
}

// WithRegistry sets the Prometheus registerer for runtime metrics.
// Default: a private registry, available from Runtime.Gatherer.
func WithRegistry(reg prometheus.Registerer) Option {
	return func(r *Runtime) {
		r.registerer = reg
	}
}

// WithMetricsNamespace sets the metrics namespace. Default: "vmount".
func WithMetricsNamespace(ns string) Option {
	return func(r *Runtime) {
		r.namespace = ns
	}
}

// WithTracer sets the tracer used for mount spans.
// Default: otel.Tracer("vmount").
func WithTracer(tracer trace.Tracer) Option {
	return func(r *Runtime) {
		r.tracer = tracer
	}
}
