// Package metrics provides Prometheus metrics for the sheet service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Armor fetch results used as the result label
const (
	FetchResultReady       = "ready"
	FetchResultUnavailable = "unavailable"
	FetchResultCached      = "cached"
)

// Manager owns the sheet service metrics. A nil *Manager is valid and
// records nothing.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	recalculations  prometheus.Counter
	armorFetches    *prometheus.CounterVec
	staleArmor      prometheus.Counter
	sessionsActive  prometheus.Gauge
	computeDuration prometheus.Histogram
}

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithSubsystem sets the subsystem for all metrics.
func WithSubsystem(subsystem string) Option {
	return func(m *Manager) {
		if subsystem != "" {
			m.subsystem = subsystem
		}
	}
}

// WithHistogramBuckets sets custom buckets for the compute duration histogram.
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.histogramBuckets = buckets
		}
	}
}

// WithRegistry registers the metrics on registry instead of a fresh one.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(m *Manager) {
		if registry != nil {
			m.registry = registry
		}
	}
}

// NewManager creates a metrics manager on its own registry so default Go
// collectors stay out of the exported set.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "rpg",
		subsystem:        "sheet",
		histogramBuckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		registry:         prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.recalculations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "recalculations_total",
		Help:      "Total number of derived stat recalculations",
	})

	m.armorFetches = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "armor_fetches_total",
		Help:      "Armor detail fetches by result",
	}, []string{"result"})

	m.staleArmor = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "stale_armor_results_total",
		Help:      "Armor detail results discarded because the selection moved on",
	})

	m.sessionsActive = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sessions_active",
		Help:      "Number of open sheet sessions",
	})

	m.computeDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "compute_duration_seconds",
		Help:      "Time spent computing derived stats and proficiencies",
		Buckets:   m.histogramBuckets,
	})
}

// Registry returns the registry backing the metrics, for promhttp.
func (m *Manager) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordRecalculation counts a recalculation and observes its duration.
func (m *Manager) RecordRecalculation(d time.Duration) {
	if m == nil {
		return
	}
	m.recalculations.Inc()
	m.computeDuration.Observe(d.Seconds())
}

// RecordArmorFetch counts a finished armor detail fetch.
func (m *Manager) RecordArmorFetch(result string) {
	if m == nil {
		return
	}
	m.armorFetches.WithLabelValues(result).Inc()
}

// RecordStaleArmorResult counts a discarded armor detail result.
func (m *Manager) RecordStaleArmorResult() {
	if m == nil {
		return
	}
	m.staleArmor.Inc()
}

// SessionOpened increments the active session gauge.
func (m *Manager) SessionOpened() {
	if m == nil {
		return
	}
	m.sessionsActive.Inc()
}

// SessionClosed decrements the active session gauge.
func (m *Manager) SessionClosed() {
	if m == nil {
		return
	}
	m.sessionsActive.Dec()
}
