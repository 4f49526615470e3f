// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package endpoint

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// Supported endpoint schemes.
const (
	SchemeHTTP = "http"
	SchemeGRPC = "grpc"
)

// Supported socket networks.
const (
	NetworkTCP  = "tcp"
	NetworkUnix = "unix"
)

// Endpoint is a single configured listening address.
type Endpoint struct {
	// Scheme is the application protocol served on the endpoint
	// (SchemeHTTP or SchemeGRPC).
	Scheme string
	// Network is the socket network passed to net.Listen.
	Network string
	// Address is the host:port pair for tcp, or the socket path for unix.
	Address string
}

// BindFunc binds a single endpoint. It is supplied by the server to the
// address binder and invoked once per resolved endpoint.
type BindFunc func(ctx context.Context, ep Endpoint) error

// Parse converts a configured address into an [Endpoint].
//
// Accepted forms:
//
//	http://host:port
//	grpc://host:port
//	http+unix:///path/to/socket
//	grpc+unix:///path/to/socket
//	host:port               (http)
func Parse(raw string) (Endpoint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Endpoint{}, ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = SchemeHTTP + "://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Endpoint{}, fmt.Errorf("%w: %q: %w", ErrInvalidAddress, raw, err)
	}

	scheme, network, found := strings.Cut(strings.ToLower(u.Scheme), "+")
	if !found {
		network = NetworkTCP
	}

	switch scheme {
	case SchemeHTTP, SchemeGRPC:
	default:
		return Endpoint{}, fmt.Errorf("%w: %q", ErrUnknownScheme, u.Scheme)
	}

	switch network {
	case NetworkTCP:
		return parseTCP(scheme, u)
	case NetworkUnix:
		return parseUnix(scheme, u)
	default:
		return Endpoint{}, fmt.Errorf("%w: %q", ErrUnknownScheme, u.Scheme)
	}
}

func parseTCP(scheme string, u *url.URL) (Endpoint, error) {
	if u.Path != "" && u.Path != "/" {
		return Endpoint{}, fmt.Errorf("%w: path %q is not allowed on a tcp endpoint", ErrInvalidAddress, u.Path)
	}

	host, portStr, err := net.SplitHostPort(u.Host)
	if err != nil {
		return Endpoint{}, fmt.Errorf("%w: %q: %w", ErrInvalidAddress, u.Host, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port < 0 || port > 65535 {
		return Endpoint{}, fmt.Errorf("%w: port %q is out of range", ErrInvalidAddress, portStr)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return Endpoint{}, fmt.Errorf("%w: host %q is neither an IP nor localhost", ErrInvalidAddress, host)
	}

	return Endpoint{
		Scheme:  scheme,
		Network: NetworkTCP,
		Address: net.JoinHostPort(host, portStr),
	}, nil
}

func parseUnix(scheme string, u *url.URL) (Endpoint, error) {
	path := u.Host + u.Path
	if path == "" {
		return Endpoint{}, fmt.Errorf("%w: unix endpoint needs a socket path", ErrInvalidAddress)
	}

	return Endpoint{
		Scheme:  scheme,
		Network: NetworkUnix,
		Address: path,
	}, nil
}

// ParseAll parses every address in raws, preserving order.
func ParseAll(raws []string) ([]Endpoint, error) {
	endpoints := make([]Endpoint, 0, len(raws))
	for _, raw := range raws {
		ep, err := Parse(raw)
		if err != nil {
			return nil, err
		}
		endpoints = append(endpoints, ep)
	}

	return endpoints, nil
}

// IsLocalhost reports whether the endpoint is a tcp endpoint on the
// "localhost" name, which binders expand to the loopback addresses.
func (e Endpoint) IsLocalhost() bool {
	if e.Network != NetworkTCP {
		return false
	}
	host, _, err := net.SplitHostPort(e.Address)
	return err == nil && host == "localhost"
}

// WithHost returns a copy of the tcp endpoint with its host replaced.
func (e Endpoint) WithHost(host string) Endpoint {
	_, port, err := net.SplitHostPort(e.Address)
	if err != nil {
		return e
	}
	e.Address = net.JoinHostPort(host, port)
	return e
}

// String returns the endpoint in the canonical form accepted by [Parse].
func (e Endpoint) String() string {
	if e.Network == NetworkUnix {
		return e.Scheme + "+unix://" + e.Address
	}
	return e.Scheme + "://" + e.Address
}
