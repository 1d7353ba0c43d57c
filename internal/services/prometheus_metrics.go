package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	aggregationsTotal   *prometheus.CounterVec
	aggregationDuration *prometheus.HistogramVec
	rowsScanned         *prometheus.HistogramVec
}

// NewPrometheusMetrics registers the aggregation metrics with the
// default registry. Construct it once per process; promauto panics on
// duplicate registration.
func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		aggregationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_aggregations_total",
				Help: "Total number of analytics aggregations computed",
			},
			[]string{"aggregation", "outcome"},
		),
		aggregationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "analytics_aggregation_duration_milliseconds",
				Help:    "Analytics aggregation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"aggregation"},
		),
		rowsScanned: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "analytics_rows_scanned",
				Help:    "Number of rows scanned per aggregation",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
			[]string{"aggregation"},
		),
	}
}

func (m *PrometheusMetrics) IncrementAggregation(name string, outcome string) {
	m.aggregationsTotal.WithLabelValues(name, outcome).Inc()
}

func (m *PrometheusMetrics) RecordAggregationDuration(name string, duration time.Duration) {
	m.aggregationDuration.WithLabelValues(name).Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordRowsScanned(name string, rows int) {
	m.rowsScanned.WithLabelValues(name).Observe(float64(rows))
}
