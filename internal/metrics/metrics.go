package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	PurchasesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePurchasesTotal,
			Help: HelpTextPurchasesTotal,
		},
		[]string{LabelStatus},
	)

	UnitsBought = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUnitsBought,
			Help: HelpTextUnitsBought,
		},
	)

	CatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogSize,
			Help: HelpTextCatalogSize,
		},
	)

	CatalogChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogChanges,
			Help: HelpTextCatalogChanges,
		},
		[]string{LabelReason},
	)

	FileOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFileOperations,
			Help: HelpTextFileOperations,
		},
		[]string{LabelOperation, LabelResult},
	)
)

// RecordFileOperation counts one import or export attempt
func RecordFileOperation(operation string, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	FileOperations.WithLabelValues(operation, result).Inc()
}
