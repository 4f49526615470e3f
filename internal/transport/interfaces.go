package transport

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

import (
	"context"
	"net"

	"github.com/MKhiriev/go-port-keeper/internal/endpoint"
)

// Transport is a single bindable listener owned by the server.
//
// Bind, Unbind and Stop may block and may fail. Each is called at most once
// by the server, always in that order.
type Transport interface {
	// Bind opens the listener. When Bind returns nil the transport is
	// accepting connections.
	Bind(ctx context.Context) error

	// Unbind stops accepting new connections. Already accepted connections
	// keep being served.
	Unbind(ctx context.Context) error

	// Stop drains the accepted connections. When ctx is done the remaining
	// connections are closed and the context error is reported.
	Stop(ctx context.Context) error

	// Endpoint returns the endpoint the transport was created for.
	Endpoint() endpoint.Endpoint

	// Addr returns the bound address, or the configured one before Bind.
	Addr() string
}

// ConnectionHandler is notified about connections accepted on one endpoint.
type ConnectionHandler interface {
	// OnConnect is called for every accepted connection before it reaches
	// the protocol server. Returning false rejects and closes it.
	OnConnect(conn net.Conn) bool

	// OnClose is called once for every connection that OnConnect accepted,
	// after the connection has been closed.
	OnClose(conn net.Conn)
}

// Factory creates transports for endpoints.
type Factory interface {
	Create(ep endpoint.Endpoint, handler ConnectionHandler) (Transport, error)
}
