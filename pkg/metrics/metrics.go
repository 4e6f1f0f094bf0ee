package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
		[]string{"service"},
	)

	// Business metrics
	DatasetRecordsGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dataset_records_total",
			Help: "Number of launch records loaded at startup",
		},
		[]string{"source"},
	)

	ChartComputationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chart_computations_total",
			Help: "Total number of chart recomputations",
		},
		[]string{"chart", "scope"},
	)

	ChartComputationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chart_computation_duration_seconds",
			Help:    "Chart recomputation duration in seconds",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		},
		[]string{"chart"},
	)

	ChartRenderErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chart_render_errors_total",
			Help: "Total number of failed SVG renders",
		},
		[]string{"chart"},
	)

	WebSocketConnectionsGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "websocket_connections_total",
			Help: "Current number of active WebSocket connections",
		},
		[]string{"service"},
	)

	ControlEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "control_events_total",
			Help: "Total number of control-change events received over WebSocket",
		},
		[]string{"type", "status"},
	)

	RabbitMQMessagesPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rabbitmq_messages_published_total",
			Help: "Total number of messages published to RabbitMQ",
		},
		[]string{"service", "exchange", "status"},
	)
)

// RecordHTTPMetrics records HTTP request metrics
func RecordHTTPMetrics(service, method, path string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	HttpRequestsTotal.WithLabelValues(service, method, path, status).Inc()
	HttpRequestDuration.WithLabelValues(service, method, path, status).Observe(duration.Seconds())
}

// RecordChartComputation records a pie or scatter recomputation. scope is
// "all" for the all-sites sentinel and "site" otherwise.
func RecordChartComputation(chart, scope string, duration time.Duration) {
	ChartComputationsTotal.WithLabelValues(chart, scope).Inc()
	ChartComputationDuration.WithLabelValues(chart).Observe(duration.Seconds())
}

// RecordControlEvent records a websocket control event
func RecordControlEvent(eventType string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	ControlEventsTotal.WithLabelValues(eventType, status).Inc()
}

// RecordRabbitMQPublish records RabbitMQ publish metrics
func RecordRabbitMQPublish(service, exchange string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	RabbitMQMessagesPublished.WithLabelValues(service, exchange, status).Inc()
}
