// Package metrics wraps the process-wide Prometheus registry and the broker
// collectors. The daemon initialises it once at startup; the pubsub core
// reports through the pubsub.Metrics interface bound to Broker().
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// BrokerMetrics wraps prometheus collectors for rift metrics.
type BrokerMetrics struct {
	registry *prometheus.Registry

	// Broker counters and gauges
	messagesReceived prometheus.Counter
	messageResults   *prometheus.CounterVec
	redeliveries     prometheus.Counter
	messagesPending  prometheus.Gauge
	messagesInFlight prometheus.Gauge

	// gRPC server metrics
	requestsTotal *prometheus.CounterVec
	responseTime  *prometheus.HistogramVec
}

// Default histogram buckets for response time (in milliseconds)
var defaultBuckets = []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000}

var brokerMetrics *BrokerMetrics

// Init initialises the Prometheus metrics subsystem.
func Init(namespace string) {
	registry := prometheus.NewRegistry()
	// Register default Go and process collectors
	registry.MustRegister(prometheus.NewGoCollector())
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	pm := &BrokerMetrics{
		registry: registry,

		messagesReceived: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "messages_received_total",
				Help:      "Total number of messages pushed into subscription queues",
			},
		),

		messageResults: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "message_results_total",
				Help:      "Total number of settled leases by result",
			},
			[]string{"result"},
		),

		redeliveries: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "redeliveries_total",
				Help:      "Total number of expired leases returned to the backlog",
			},
		),

		messagesPending: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "messages_pending",
				Help:      "Messages waiting for delivery across all queues",
			},
		),

		messagesInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "messages_in_flight",
				Help:      "Messages locked under a live lease across all queues",
			},
		),

		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Total count of gRPC requests seen by this server",
			},
			[]string{"method", "status"},
		),

		responseTime: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "response_time_milliseconds",
				Help:      "Response time over all received gRPC requests",
				Buckets:   defaultBuckets,
			},
			[]string{"method"},
		),
	}

	registry.MustRegister(
		pm.messagesReceived,
		pm.messageResults,
		pm.redeliveries,
		pm.messagesPending,
		pm.messagesInFlight,
		pm.requestsTotal,
		pm.responseTime,
	)

	brokerMetrics = pm
}

// Enabled reports whether the metrics subsystem has been initialised.
func Enabled() bool {
	return brokerMetrics != nil
}

// Broker returns the active collector set, or nil when metrics are disabled.
// The returned value implements pubsub.Metrics.
func Broker() *BrokerMetrics {
	return brokerMetrics
}

// Handler returns the /metrics HTTP handler over the process registry.
// promhttp negotiates text vs protobuf encoding from the Accept header.
func Handler() http.Handler {
	if brokerMetrics == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}
	return promhttp.HandlerFor(brokerMetrics.registry, promhttp.HandlerOpts{})
}

// RecordRequest observes one served gRPC request. A zero duration counts the
// request without adding a latency observation.
func RecordRequest(method, status string, duration time.Duration) {
	if brokerMetrics == nil {
		return
	}
	brokerMetrics.requestsTotal.WithLabelValues(method, status).Inc()
	if duration > 0 {
		brokerMetrics.responseTime.WithLabelValues(method).Observe(float64(duration.Milliseconds()))
	}
}

// IncReceived implements pubsub.Metrics.
func (m *BrokerMetrics) IncReceived() {
	m.messagesReceived.Inc()
}

// IncAcked implements pubsub.Metrics.
func (m *BrokerMetrics) IncAcked() {
	m.messageResults.WithLabelValues("ack").Inc()
}

// IncNacked implements pubsub.Metrics.
func (m *BrokerMetrics) IncNacked() {
	m.messageResults.WithLabelValues("nack").Inc()
}

// IncRedelivered implements pubsub.Metrics.
func (m *BrokerMetrics) IncRedelivered() {
	m.redeliveries.Inc()
}

// AddPending implements pubsub.Metrics.
func (m *BrokerMetrics) AddPending(delta int) {
	m.messagesPending.Add(float64(delta))
}

// AddInFlight implements pubsub.Metrics.
func (m *BrokerMetrics) AddInFlight(delta int) {
	m.messagesInFlight.Add(float64(delta))
}
