// Package probe checks the liveness of a running server over one of its
// http endpoints.
package probe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-port-keeper/internal/endpoint"
)

var (
	// ErrUnhealthy is returned when the probed route answers with a non-2xx status.
	ErrUnhealthy = errors.New("server is unhealthy")
	// ErrNotHTTP is returned for endpoints that do not serve http.
	ErrNotHTTP = errors.New("endpoint does not serve http")
)

// DefaultPath is the liveness route probed by Check.
const DefaultPath = "/healthz"

type Prober struct {
	client *resty.Client
}

// New returns a Prober for ep. Unix socket endpoints are dialed directly.
func New(ep endpoint.Endpoint, timeout time.Duration) (*Prober, error) {
	if ep.Scheme != endpoint.SchemeHTTP {
		return nil, fmt.Errorf("%w: %s", ErrNotHTTP, ep)
	}

	cli := resty.New().SetTimeout(timeout)

	switch ep.Network {
	case endpoint.NetworkUnix:
		path := ep.Address
		cli.SetTransport(&http.Transport{
			DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, endpoint.NetworkUnix, path)
			},
		})
		cli.SetBaseURL("http://unix")
	default:
		cli.SetBaseURL("http://" + dialAddress(ep.Address))
	}

	return &Prober{client: cli}, nil
}

// Check requests path and fails unless the server answers 2xx.
func (p *Prober) Check(ctx context.Context, path string) error {
	resp, err := p.client.R().SetContext(ctx).Get(path)
	if err != nil {
		return fmt.Errorf("error probing %s: %w", path, err)
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("%w: %s answered %d: %s", ErrUnhealthy, path, resp.StatusCode(), strings.TrimSpace(resp.String()))
	}
	return nil
}

// dialAddress maps wildcard listen hosts to a loopback address.
func dialAddress(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}

	switch host {
	case "", "0.0.0.0":
		host = "127.0.0.1"
	case "::":
		host = "::1"
	}
	return net.JoinHostPort(host, port)
}
