package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"wld/internal/structures"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncStoreReads()
	IncStoreWrites()
	IncWriteConflicts()
	ObserveStoreDuration(op string, duration time.Duration)
	SetDocumentDays(count int)
}

type MetricsProvider struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	storeReads      prometheus.Counter
	storeWrites     prometheus.Counter
	writeConflicts  prometheus.Counter
	storeDuration   *prometheus.HistogramVec
	documentDays    prometheus.Gauge
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncStoreReads() {
	m.storeReads.Inc()
}

func (m *MetricsProvider) IncStoreWrites() {
	m.storeWrites.Inc()
}

func (m *MetricsProvider) IncWriteConflicts() {
	m.writeConflicts.Inc()
}

func (m *MetricsProvider) ObserveStoreDuration(op string, duration time.Duration) {
	m.storeDuration.WithLabelValues(op).Observe(duration.Seconds())
}

func (m *MetricsProvider) SetDocumentDays(count int) {
	m.documentDays.Set(float64(count))
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "wld_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "wld_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		storeReads: promauto.NewCounter(prometheus.CounterOpts{
			Name: "wld_store_reads_total",
			Help: "Total number of successful remote document reads",
		}),

		storeWrites: promauto.NewCounter(prometheus.CounterOpts{
			Name: "wld_store_writes_total",
			Help: "Total number of successful remote document writes",
		}),

		writeConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "wld_store_write_conflicts_total",
			Help: "Total number of writes rejected for a stale revision",
		}),

		storeDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "wld_store_operation_duration_seconds",
			Help:    "Remote store operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),

		documentDays: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "wld_document_days",
			Help: "Number of tracked days in the last document seen",
		}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncStoreReads()                                   {}
func (n *noopMetrics) IncStoreWrites()                                  {}
func (n *noopMetrics) IncWriteConflicts()                               {}
func (n *noopMetrics) ObserveStoreDuration(_ string, _ time.Duration)   {}
func (n *noopMetrics) SetDocumentDays(_ int)                            {}
