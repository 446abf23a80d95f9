package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	SyncRuns         prometheus.Counter
	LaunchesEnriched prometheus.Counter
	NewLaunches      prometheus.Counter
	SyncDuration     prometheus.Histogram
	ErrorsCount      *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		SyncRuns: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_runs_total",
			Help:      "The total number of completed sync cycles",
		}),
		LaunchesEnriched: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "launches_enriched_total",
			Help:      "The total number of launches enriched and upserted",
		}),
		NewLaunches: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "new_launches_total",
			Help:      "The total number of newly inserted launches",
		}),
		SyncDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sync_duration_seconds",
			Help:      "Time taken by one sync cycle",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
