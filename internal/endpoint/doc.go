// Package endpoint describes the network endpoints a server is configured to
// listen on.
//
// An [Endpoint] is produced by [Parse] from a configured address string and
// carries everything a transport factory needs to bind a listener: the
// application protocol (scheme), the socket network and the address.
package endpoint
