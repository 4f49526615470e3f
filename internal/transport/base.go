package transport

import (
	"context"
	"net"
	"sync"

	"github.com/MKhiriev/go-port-keeper/internal/endpoint"
	"github.com/MKhiriev/go-port-keeper/internal/logger"
	"github.com/rs/zerolog"
)

// listenerBase holds the listener state shared by the protocol transports.
type listenerBase struct {
	endpoint endpoint.Endpoint
	handler  ConnectionHandler
	logger   *logger.Logger

	mu       sync.Mutex
	listener *trackedListener
	served   chan struct{}
}

func (b *listenerBase) init(ep endpoint.Endpoint, handler ConnectionHandler, log *logger.Logger) {
	child := log.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("endpoint", ep.String())
	})

	b.endpoint = ep
	b.handler = handler
	b.logger = child
}

// bind opens the listener and runs serve on it in a background goroutine.
func (b *listenerBase) bind(ctx context.Context, serve func(net.Listener) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.listener != nil {
		return ErrAlreadyBound
	}

	ln, err := listen(ctx, b.endpoint)
	if err != nil {
		return err
	}

	tl := newTrackedListener(ln, b.handler)
	served := make(chan struct{})
	b.listener = tl
	b.served = served

	go func() {
		defer close(served)
		if err := serve(tl); err != nil && !tl.Closed() {
			b.logger.Error().Err(err).Msg("transport stopped serving unexpectedly")
		}
	}()

	b.logger.Info().Str("addr", tl.Addr().String()).Msg("transport bound")
	return nil
}

// unbind closes the listener. Accepted connections are left untouched.
func (b *listenerBase) unbind() error {
	tl, _ := b.current()
	if tl == nil {
		return nil
	}

	_ = tl.Close()
	if err := tl.firstCloseErr(); err != nil {
		return err
	}

	b.logger.Info().Int64("active", tl.Active()).Msg("transport unbound")
	return nil
}

// waitServed blocks until the serve goroutine has returned.
func (b *listenerBase) waitServed() {
	_, served := b.current()
	if served != nil {
		<-served
	}
}

func (b *listenerBase) current() (*trackedListener, chan struct{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.listener, b.served
}

// Endpoint returns the endpoint the transport was created for.
func (b *listenerBase) Endpoint() endpoint.Endpoint {
	return b.endpoint
}

// Addr returns the bound listener address, or the configured address
// before Bind.
func (b *listenerBase) Addr() string {
	if tl, _ := b.current(); tl != nil {
		return tl.Addr().String()
	}
	return b.endpoint.Address
}
