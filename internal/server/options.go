package server

import (
	"github.com/MKhiriev/go-port-keeper/internal/binder"
	"github.com/MKhiriev/go-port-keeper/internal/endpoint"
	"github.com/MKhiriev/go-port-keeper/internal/logger"
	"github.com/MKhiriev/go-port-keeper/internal/metrics"
	"github.com/MKhiriev/go-port-keeper/internal/transport"
)

// Options configures what a Server binds and how it shuts down.
type Options struct {
	// Endpoints are bound by Start in order.
	Endpoints []endpoint.Endpoint

	// MaxConnections caps open connections per bound transport. 0 means
	// unlimited. A localhost endpoint is bound once per loopback family, and
	// each family gets its own cap.
	MaxConnections int

	// StopConcurrency caps how many transports are unbound or stopped at
	// the same time. 0 means all at once.
	StopConcurrency int
}

// Option customises a Server beyond its Options.
type Option func(*Server)

// WithMetrics records lifecycle and connection metrics into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// Create builds a Server using the default address binder. configure
// receives zero Options to fill in and may be nil.
func Create(factory transport.Factory, log *logger.Logger, configure func(*Options), opts ...Option) *Server {
	var options Options
	if configure != nil {
		configure(&options)
	}

	return NewServer(options, factory, binder.NewBinder(log), log, opts...)
}
