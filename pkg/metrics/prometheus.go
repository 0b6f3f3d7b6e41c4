// Package metrics provides Prometheus metrics for the corposim engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the corposim service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	metricPrefix     string
	registry         prometheus.Registerer

	// Core Business Metrics - game lifecycle and day resolution
	gamesStarted  prometheus.Counter
	daysResolved  prometheus.Counter
	actionsByKind *prometheus.CounterVec
	actionsFailed prometheus.Counter
	resolveLatency prometheus.Histogram

	// Recruitment Metrics
	candidatesGenerated prometheus.Counter
	interviewReplies    prometheus.Counter
	hiresCompleted      prometheus.Counter
	hiresRejected       prometheus.Counter

	// Energy Metrics
	energyPurchases       prometheus.Counter
	energyPurchaseFailed  prometheus.Counter

	// Operational Health Metrics
	activeGames prometheus.Gauge
	totalAgents prometheus.Gauge

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error Metrics - Detailed error tracking
	errorRateByComponent *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "corposim",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		metricPrefix:     "",
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	m.gamesStarted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "games_started_total",
		Help:      "Total number of game sessions started",
	})

	m.daysResolved = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "days_resolved_total",
		Help:      "Total number of simulation days resolved",
	})

	m.actionsByKind = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "actions_applied_total",
			Help:      "Total number of manager actions applied, by action kind",
		},
		[]string{"kind"},
	)

	m.actionsFailed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "actions_failed_total",
		Help:      "Total number of manager actions skipped (unknown agent, bad focus)",
	})

	m.resolveLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "day_resolve_latency_milliseconds",
		Help:      "Histogram of day resolution latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.candidatesGenerated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "candidates_generated_total",
		Help:      "Total number of recruitment candidates generated",
	})

	m.interviewReplies = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "interview_replies_total",
		Help:      "Total number of scripted interview replies produced",
	})

	m.hiresCompleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "hires_completed_total",
		Help:      "Total number of candidates hired into rosters",
	})

	m.hiresRejected = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "hires_rejected_total",
		Help:      "Total number of hires rejected (insufficient energy)",
	})

	m.energyPurchases = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "energy_purchases_total",
		Help:      "Total number of successful energy purchases",
	})

	m.energyPurchaseFailed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "energy_purchase_failures_total",
		Help:      "Total number of energy purchases rejected (cash or cap)",
	})

	m.activeGames = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "active_games",
		Help:      "Current number of game sessions held by the repository",
	})

	m.totalAgents = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "total_agents",
		Help:      "Current number of agents across all rosters",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorRateByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_component_total",
			Help:      "Total errors by component and error type",
		},
		[]string{"component", "error_type"},
	)

	m.errorRateByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_endpoint_total",
			Help:      "Total errors by HTTP endpoint, method and error type",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Current memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines",
	})
}

// Package-level helpers operating on the global manager.

// RecordGameStarted increments the started-games counter.
func RecordGameStarted() {
	globalManager.gamesStarted.Inc()
}

// RecordDayResolved increments the resolved-days counter.
func RecordDayResolved() {
	globalManager.daysResolved.Inc()
}

// RecordActionApplied increments the per-kind action counter.
func RecordActionApplied(kind string) {
	globalManager.actionsByKind.WithLabelValues(kind).Inc()
}

// RecordActionFailed increments the skipped-action counter.
func RecordActionFailed() {
	globalManager.actionsFailed.Inc()
}

// RecordResolveLatency observes a day resolution duration in milliseconds.
func RecordResolveLatency(latencyMs float64) {
	globalManager.resolveLatency.Observe(latencyMs)
}

// RecordCandidatesGenerated adds to the generated-candidates counter.
func RecordCandidatesGenerated(n int) {
	globalManager.candidatesGenerated.Add(float64(n))
}

// RecordInterviewReply increments the interview-replies counter.
func RecordInterviewReply() {
	globalManager.interviewReplies.Inc()
}

// RecordHireCompleted increments the completed-hires counter.
func RecordHireCompleted() {
	globalManager.hiresCompleted.Inc()
}

// RecordHireRejected increments the rejected-hires counter.
func RecordHireRejected() {
	globalManager.hiresRejected.Inc()
}

// RecordEnergyPurchase increments the successful-purchase counter.
func RecordEnergyPurchase() {
	globalManager.energyPurchases.Inc()
}

// RecordEnergyPurchaseFailed increments the rejected-purchase counter.
func RecordEnergyPurchaseFailed() {
	globalManager.energyPurchaseFailed.Inc()
}

// UpdateActiveGames sets the active-games gauge.
func UpdateActiveGames(count int) {
	globalManager.activeGames.Set(float64(count))
}

// UpdateTotalAgents sets the total-agents gauge.
func UpdateTotalAgents(count int) {
	globalManager.totalAgents.Set(float64(count))
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records an HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByComponent records an error by component and type.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByEndpoint records an error by endpoint, method and type.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the memory usage gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine count gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry for serving /healthz.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
