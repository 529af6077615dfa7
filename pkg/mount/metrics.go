package mount

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus metrics for a Runtime.
type metrics struct {
	mounts         *prometheus.CounterVec
	unmounts       prometheus.Counter
	doubleUnmounts prometheus.Counter
	mismatches     *prometheus.CounterVec
	listeners      *prometheus.GaugeVec
	duration       *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer, namespace string) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		mounts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mounts_total",
			Help:      "Total number of component instances mounted, by mode",
		}, []string{"mode"}),

		unmounts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unmounts_total",
			Help:      "Total number of component instances unmounted",
		}),

		doubleUnmounts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "double_unmounts_total",
			Help:      "Total number of unmount calls for instances that were not mounted",
		}),

		mismatches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hydration_mismatches_total",
			Help:      "Total number of hydration mismatches, by outcome",
		}, []string{"outcome"}),

		listeners: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "delegated_listeners",
			Help:      "Number of mounted instances interested in each delegated event",
		}, []string{"event"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "mount_duration_seconds",
			Help:      "Time spent in Mount and Hydrate",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 4, 8),
		}, []string{"mode"}),
	}
}
