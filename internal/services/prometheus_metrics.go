package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names understood by PrometheusMetrics.
const (
	MetricSyncRun          = "sync.run"
	MetricSyncRecord       = "sync.record"
	MetricSyncDuration     = "sync.duration"
	MetricCircuitState     = "circuit_breaker.state"
	MetricCustomerCreated  = "customer.created"
	MetricCustomerUpdated  = "customer.updated"
	MetricCustomerDeleted  = "customer.deleted"
	MetricPhotoUploaded    = "photo.uploaded"
	MetricPhotoDeleted     = "photo.deleted"
	MetricTaskChanged      = "task.changed"
	MetricQuoteComputed    = "pricing.quote"
	MetricQuoteDuration    = "pricing.quote.duration"
	MetricQuoteTotal       = "pricing.quote.total"
	MetricCacheLookup      = "cache.lookup"
	MetricCustomersTracked = "customers.tracked"
)

type PrometheusMetrics struct {
	syncRuns            *prometheus.CounterVec
	syncRecords         *prometheus.CounterVec
	syncDuration        *prometheus.HistogramVec
	circuitBreakerState *prometheus.GaugeVec
	customerCreated     *prometheus.CounterVec
	customerUpdated     *prometheus.CounterVec
	customerDeleted     prometheus.Counter
	photosUploaded      prometheus.Counter
	photosDeleted       prometheus.Counter
	taskChanges         *prometheus.CounterVec
	quotes              prometheus.Counter
	quoteDuration       prometheus.Histogram
	quoteTotal          prometheus.Histogram
	cacheLookups        *prometheus.CounterVec
	customersTracked    prometheus.Gauge
}

// NewPrometheusMetrics registers the service metrics on reg. Tests pass a
// fresh prometheus.NewRegistry(); the server passes prometheus.DefaultRegisterer.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		syncRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crm_sync_runs_total",
				Help: "Total number of Firebase sync runs",
			},
			[]string{"kind", "status"},
		),
		syncRecords: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crm_sync_records_total",
				Help: "Total number of records processed by sync runs, by outcome",
			},
			[]string{"kind", "outcome"},
		),
		syncDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "crm_sync_duration_seconds",
				Help:    "Sync run duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
			},
			[]string{"kind"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "crm_circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		customerCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crm_customers_created_total",
				Help: "Total number of customers created",
			},
			[]string{"source"},
		),
		customerUpdated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crm_customers_updated_total",
				Help: "Total number of customer updates",
			},
			[]string{"source"},
		),
		customerDeleted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "crm_customers_deleted_total",
				Help: "Total number of customers deleted",
			},
		),
		photosUploaded: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "crm_photos_uploaded_total",
				Help: "Total number of customer photos uploaded",
			},
		),
		photosDeleted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "crm_photos_deleted_total",
				Help: "Total number of customer photos deleted",
			},
		),
		taskChanges: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crm_task_changes_total",
				Help: "Total number of task mutations",
			},
			[]string{"action", "kind"},
		),
		quotes: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "crm_pricing_quotes_total",
				Help: "Total number of priced carts",
			},
		),
		quoteDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "crm_pricing_quote_duration_milliseconds",
				Help:    "Quote computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
			},
		),
		quoteTotal: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "crm_pricing_quote_merchandise_total",
				Help:    "Merchandise total of priced carts",
				Buckets: prometheus.ExponentialBuckets(10, 10, 7),
			},
		),
		cacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crm_cache_lookups_total",
				Help: "Total number of cache lookups by key and result",
			},
			[]string{"key", "result"},
		),
		customersTracked: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "crm_customers_tracked",
				Help: "Number of local customers seen by the last customer sync",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricSyncRun:
		m.syncRuns.WithLabelValues(tags["kind"], tags["status"]).Inc()
	case MetricSyncRecord:
		m.syncRecords.WithLabelValues(tags["kind"], tags["outcome"]).Inc()
	case MetricCustomerCreated:
		m.customerCreated.WithLabelValues(tags["source"]).Inc()
	case MetricCustomerUpdated:
		m.customerUpdated.WithLabelValues(tags["source"]).Inc()
	case MetricCustomerDeleted:
		m.customerDeleted.Inc()
	case MetricPhotoUploaded:
		m.photosUploaded.Inc()
	case MetricPhotoDeleted:
		m.photosDeleted.Inc()
	case MetricTaskChanged:
		m.taskChanges.WithLabelValues(tags["action"], tags["kind"]).Inc()
	case MetricQuoteComputed:
		m.quotes.Inc()
	case MetricCacheLookup:
		m.cacheLookups.WithLabelValues(tags["key"], tags["result"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration, tags map[string]string) {
	switch name {
	case MetricSyncDuration:
		m.syncDuration.WithLabelValues(tags["kind"]).Observe(duration.Seconds())
	case MetricQuoteDuration:
		m.quoteDuration.Observe(float64(duration.Microseconds()) / 1000)
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricCircuitState:
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	case MetricQuoteTotal:
		m.quoteTotal.Observe(value)
	case MetricCustomersTracked:
		m.customersTracked.Set(value)
	}
}
