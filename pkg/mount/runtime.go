package mount

import (
	"log/slog"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/vmount/pkg/delegate"
	"github.com/vango-dev/vmount/pkg/host"
	"github.com/vango-dev/vmount/pkg/hydration"
	"github.com/vango-dev/vmount/pkg/lifecycle"
	"github.com/vango-dev/vmount/pkg/scope"
)

const defaultNamespace = "vmount"

// Runtime mounts components into one host document.
type Runtime struct {
	ops     host.Ops
	cursor  hydration.Cursor
	events  *delegate.Registry
	tracker *lifecycle.Tracker[Instance]
	frames  scope.Stack

	// pending holds host edits queued by the hydration pass in progress.
	pending []func()

	// intro is the transient "play intro transitions" flag read by
	// components during render.
	intro bool

	recover     bool
	diagnostics bool

	logger     *slog.Logger
	reporter   Reporter
	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer
	namespace  string
	metrics    *metrics
	tracer     trace.Tracer

	nextID atomic.Uint64
}

// New creates a Runtime over ops.
func New(ops host.Ops, opts ...Option) *Runtime {
	r := &Runtime{
		ops:       ops,
		events:    delegate.NewRegistry(ops),
		tracker:   lifecycle.NewTracker[Instance](),
		intro:     true,
		recover:   true,
		namespace: defaultNamespace,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.registerer == nil {
		reg := prometheus.NewRegistry()
		r.registerer = reg
	}
	if g, ok := r.registerer.(prometheus.Gatherer); ok {
		r.gatherer = g
	}
	r.metrics = newMetrics(r.registerer, r.namespace)
	if r.tracer == nil {
		r.tracer = otel.Tracer(defaultTracerName)
	}
	if r.reporter == nil {
		r.reporter = &logReporter{
			logger:      r.logger,
			diagnostics: r.diagnostics,
			metrics:     r.metrics,
		}
	}

	r.events.SetObserver(func(name string, count int) {
		r.metrics.listeners.WithLabelValues(name).Set(float64(count))
	})
	return r
}

func (r *Runtime) pend(fn func()) {
	r.pending = append(r.pending, fn)
}

// Ops returns the host operations the runtime uses.
func (r *Runtime) Ops() host.Ops {
	return r.ops
}

// Events returns the runtime's event delegation registry.
func (r *Runtime) Events() *delegate.Registry {
	return r.events
}

// Delegate declares names as delegated events for every current and future mount.
func (r *Runtime) Delegate(names ...string) {
	r.events.Delegate(names...)
}

// Hydrating reports whether a hydration pass is in progress.
func (r *Runtime) Hydrating() bool {
	return r.cursor.Active()
}

// Mounted reports whether inst is mounted and not yet unmounted.
func (r *Runtime) Mounted(inst *Instance) bool {
	return r.tracker.Has(inst)
}

// Live returns the number of mounted instances.
func (r *Runtime) Live() int {
	return r.tracker.Len()
}

// Gatherer returns the metrics gatherer, or nil when the configured
// registerer cannot gather.
func (r *Runtime) Gatherer() prometheus.Gatherer {
	return r.gatherer
}
