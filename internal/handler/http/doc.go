// Package http implements the operational HTTP application served on every
// http endpoint of the server.
//
// It exposes liveness and readiness probes, the application version, a view
// of the bound transports and the Prometheus metrics. Request tracing and
// access logging are handled by middleware in this package.
package http
