package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-port-keeper/internal/endpoint"
)

// listen opens the raw listener for ep.
func listen(ctx context.Context, ep endpoint.Endpoint) (net.Listener, error) {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, ep.Network, ep.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", ep, err)
	}
	return ln, nil
}

// trackedListener routes every accepted connection through a
// ConnectionHandler and counts the connections that are still open.
type trackedListener struct {
	net.Listener

	handler ConnectionHandler
	active  atomic.Int64

	closeOnce sync.Once
	closeErr  error
	closed    atomic.Bool
}

func newTrackedListener(ln net.Listener, handler ConnectionHandler) *trackedListener {
	return &trackedListener{
		Listener: ln,
		handler:  handler,
	}
}

// Accept waits for the next connection the handler agrees to serve.
func (l *trackedListener) Accept() (net.Conn, error) {
	for {
		conn, err := l.Listener.Accept()
		if err != nil {
			return nil, err
		}

		if l.handler != nil && !l.handler.OnConnect(conn) {
			_ = conn.Close()
			continue
		}

		l.active.Add(1)
		return &trackedConn{Conn: conn, owner: l}, nil
	}
}

// Close closes the listener once; later calls return nil so that protocol
// servers closing their own listener list do not report a spurious error.
func (l *trackedListener) Close() error {
	l.closeOnce.Do(func() {
		l.closed.Store(true)
		l.closeErr = l.Listener.Close()
	})
	return nil
}

// firstCloseErr returns the error of the actual close, if any.
func (l *trackedListener) firstCloseErr() error {
	if errors.Is(l.closeErr, net.ErrClosed) {
		return nil
	}
	return l.closeErr
}

// Active returns the number of accepted connections not yet closed.
func (l *trackedListener) Active() int64 {
	return l.active.Load()
}

// Closed reports whether Close has been called.
func (l *trackedListener) Closed() bool {
	return l.closed.Load()
}

type trackedConn struct {
	net.Conn

	owner     *trackedListener
	closeOnce sync.Once
}

func (c *trackedConn) Close() error {
	err := c.Conn.Close()
	c.closeOnce.Do(func() {
		c.owner.active.Add(-1)
		if c.owner.handler != nil {
			c.owner.handler.OnClose(c.Conn)
		}
	})
	return err
}
