package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Sync outcome label values.
const (
	OutcomeSynced = "synced"
	OutcomeFailed = "failed"
)

type Manager struct {
	// counters
	CounterRequests        *prometheus.CounterVec
	CounterLogsRecorded    prometheus.Counter
	CounterSyncs           *prometheus.CounterVec
	CounterRemoteReadFails prometheus.Counter
	CounterMigrations      *prometheus.CounterVec
	CounterAIFallbacks     *prometheus.CounterVec

	// gauges
	GaugePendingSyncs prometheus.Gauge

	// histograms
	HistRequestDuration prometheus.Histogram
	HistSyncDuration    prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("fitguide", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("fitguide", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterLogsRecorded := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workout_logs_recorded",
		Help:      "The total number of workout logs recorded locally",
	})
	counterSyncs := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workout_log_syncs",
		Help:      "Background remote syncs by outcome",
	}, []string{"outcome"})
	counterRemoteReadFails := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "remote_read_failures",
		Help:      "Remote log reads that failed and fell back to the local cache",
	})
	counterMigrations := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "identity_migrations",
		Help:      "Device to account log migrations by outcome",
	}, []string{"outcome"})
	counterAIFallbacks := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "ai_fallbacks",
		Help:      "Generated content requests answered with static fallback content",
	}, []string{"kind"})

	gaugePendingSyncs := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "pending_syncs",
		Help:      "Background syncs currently in flight",
	})

	histReqDuration := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			Name:      "request_duration_seconds",
			Help:      "Total duration of requests in seconds",
		},
	)
	histSyncDuration := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			Name:      "workout_log_sync_duration_seconds",
			Help:      "Duration of a single background remote sync in seconds",
		},
	)

	return &Manager{
		CounterRequests:        counterRequests,
		CounterLogsRecorded:    counterLogsRecorded,
		CounterSyncs:           counterSyncs,
		CounterRemoteReadFails: counterRemoteReadFails,
		CounterMigrations:      counterMigrations,
		CounterAIFallbacks:     counterAIFallbacks,
		GaugePendingSyncs:      gaugePendingSyncs,
		HistRequestDuration:    histReqDuration,
		HistSyncDuration:       histSyncDuration,
	}
}
