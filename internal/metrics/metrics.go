// Package metrics exposes Prometheus instrumentation for the server
// lifecycle and its transports.
//
// A nil *Metrics is valid: every recording method is a no-op on it, so
// components can be built without instrumentation at zero cost.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "portkeeper"

// Lifecycle phases observed by ObservePhase.
const (
	PhaseStart  = "start"
	PhaseUnbind = "unbind"
	PhaseStop   = "stop"
)

// Stop outcomes recorded by RecordStopOutcome.
const (
	OutcomeSuccess   = "success"
	OutcomeFailure   = "failure"
	OutcomeCancelled = "cancelled"
)

// Metrics holds the server collectors registered on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	transportsBound     prometheus.Gauge
	connectionsAccepted *prometheus.CounterVec
	connectionsRejected *prometheus.CounterVec
	connectionsActive   *prometheus.GaugeVec
	phaseDuration       *prometheus.HistogramVec
	stopOutcomes        *prometheus.CounterVec
}

// New creates the collectors on a fresh registry that also carries the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		registry: reg,
		transportsBound: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "transports_bound",
			Help:      "Number of transports currently bound and accepting connections",
		}),
		connectionsAccepted: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "connections_accepted_total",
			Help:      "Total number of connections accepted per endpoint",
		}, []string{"endpoint"}),
		connectionsRejected: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "connections_rejected_total",
			Help:      "Total number of connections rejected per endpoint because of the connection limit",
		}, []string{"endpoint"}),
		connectionsActive: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "connections_active",
			Help:      "Number of open connections per endpoint",
		}, []string{"endpoint"}),
		phaseDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lifecycle_phase_duration_seconds",
			Help:      "Duration of server lifecycle phases",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		}, []string{"phase"}),
		stopOutcomes: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stop_outcomes_total",
			Help:      "Outcomes of the shutdown sequence",
		}, []string{"outcome"}),
	}
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// TransportBound records a transport that started accepting.
func (m *Metrics) TransportBound() {
	if m != nil {
		m.transportsBound.Inc()
	}
}

// TransportUnbound records a transport that stopped accepting.
func (m *Metrics) TransportUnbound() {
	if m != nil {
		m.transportsBound.Dec()
	}
}

// ConnectionAccepted records a connection accepted on endpoint.
func (m *Metrics) ConnectionAccepted(endpoint string) {
	if m != nil {
		m.connectionsAccepted.WithLabelValues(endpoint).Inc()
		m.connectionsActive.WithLabelValues(endpoint).Inc()
	}
}

// ConnectionClosed records an accepted connection being closed.
func (m *Metrics) ConnectionClosed(endpoint string) {
	if m != nil {
		m.connectionsActive.WithLabelValues(endpoint).Dec()
	}
}

// ConnectionRejected records a connection refused on endpoint.
func (m *Metrics) ConnectionRejected(endpoint string) {
	if m != nil {
		m.connectionsRejected.WithLabelValues(endpoint).Inc()
	}
}

// ObservePhase records how long a lifecycle phase took.
func (m *Metrics) ObservePhase(phase string, d time.Duration) {
	if m != nil {
		m.phaseDuration.WithLabelValues(phase).Observe(d.Seconds())
	}
}

// RecordStopOutcome counts a finished shutdown sequence.
func (m *Metrics) RecordStopOutcome(outcome string) {
	if m != nil {
		m.stopOutcomes.WithLabelValues(outcome).Inc()
	}
}
