// Package transport provides the bindable network listeners managed by the
// server lifecycle coordinator.
//
// A [Transport] moves through three operations: Bind opens the listener and
// starts accepting, Unbind stops accepting new connections while leaving
// accepted ones alone, and Stop drains (or, once its context is done, aborts)
// the connections that are still open. The [Factory] builds the HTTP or gRPC
// transport matching an endpoint's scheme.
package transport
