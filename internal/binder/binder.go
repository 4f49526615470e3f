// Package binder resolves the configured endpoints and drives the
// per-endpoint bind callback supplied by the server.
package binder

import (
	"context"
	"fmt"
	"net"

	"go.uber.org/multierr"

	"github.com/MKhiriev/go-port-keeper/internal/endpoint"
	"github.com/MKhiriev/go-port-keeper/internal/logger"
)

const (
	loopbackIPv4 = "127.0.0.1"
	loopbackIPv6 = "::1"
)

// Binder binds endpoints one after another, in configured order, and stops
// at the first endpoint that fails.
type Binder struct {
	logger *logger.Logger
}

// NewBinder returns a Binder logging through log.
func NewBinder(log *logger.Logger) *Binder {
	return &Binder{logger: log}
}

// Bind calls bind for every endpoint. It returns a *BindError for the first
// endpoint that fails; later endpoints are not bound.
//
// A "localhost" endpoint is bound on both the IPv4 and the IPv6 loopback
// address. It fails only if neither can be bound.
func (b *Binder) Bind(ctx context.Context, endpoints []endpoint.Endpoint, bind endpoint.BindFunc) error {
	if err := checkEndpoints(endpoints); err != nil {
		return err
	}

	for _, ep := range endpoints {
		if err := ctx.Err(); err != nil {
			return &BindError{Endpoint: ep, Err: err}
		}

		var err error
		if ep.IsLocalhost() {
			err = b.bindLocalhost(ctx, ep, bind)
		} else {
			err = bind(ctx, ep)
		}

		if err != nil {
			return &BindError{Endpoint: ep, Err: err}
		}

		b.logger.Debug().Str("endpoint", ep.String()).Msg("endpoint bound")
	}

	return nil
}

func (b *Binder) bindLocalhost(ctx context.Context, ep endpoint.Endpoint, bind endpoint.BindFunc) error {
	v4Err := bind(ctx, ep.WithHost(loopbackIPv4))
	v6Err := bind(ctx, ep.WithHost(loopbackIPv6))

	switch {
	case v4Err != nil && v6Err != nil:
		return multierr.Combine(v4Err, v6Err)
	case v4Err != nil:
		b.logger.Warn().Err(v4Err).Str("endpoint", ep.String()).Msg("unable to bind to IPv4 loopback, serving IPv6 only")
	case v6Err != nil:
		b.logger.Warn().Err(v6Err).Str("endpoint", ep.String()).Msg("unable to bind to IPv6 loopback, serving IPv4 only")
	}

	return nil
}

func checkEndpoints(endpoints []endpoint.Endpoint) error {
	seen := make(map[endpoint.Endpoint]struct{}, len(endpoints))
	for _, ep := range endpoints {
		if _, ok := seen[ep]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateEndpoint, ep)
		}
		seen[ep] = struct{}{}

		if ep.IsLocalhost() {
			if _, port, err := net.SplitHostPort(ep.Address); err == nil && port == "0" {
				return fmt.Errorf("%w: %s", ErrLocalhostDynamicPort, ep)
			}
		}
	}

	return nil
}
