// Package server coordinates the lifecycle of the transports behind a single
// logical server.
//
// [Server.Start] asks the address binder to resolve the configured endpoints
// and, for each one, creates a transport through the factory and binds it.
// [Server.Stop] unbinds every transport, waits for all of them, then stops
// every transport and waits again. Stop may be called any number of times from
// any goroutine: the first caller drives the shutdown, every other caller
// waits for and returns the same outcome. [Server.DisposeForcefully] drives
// the same shutdown with an already-cancelled context.
package server
