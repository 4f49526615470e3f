package transport

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net/http"
	"time"

	"github.com/MKhiriev/go-port-keeper/internal/endpoint"
	"github.com/MKhiriev/go-port-keeper/internal/logger"
)

// HTTPTransport serves an http.Handler on one endpoint.
type HTTPTransport struct {
	listenerBase

	server *http.Server
}

// NewHTTPTransport creates an unbound HTTP transport.
func NewHTTPTransport(ep endpoint.Endpoint, handler ConnectionHandler, app http.Handler, readHeaderTimeout time.Duration, log *logger.Logger) *HTTPTransport {
	t := &HTTPTransport{}
	t.init(ep, handler, log)

	t.server = &http.Server{
		Handler:           app,
		ReadHeaderTimeout: readHeaderTimeout,
		ErrorLog:          stdlog.New(t.logger, "", 0),
	}

	return t
}

// Bind opens the listener and starts serving HTTP on it.
func (t *HTTPTransport) Bind(ctx context.Context) error {
	return t.bind(ctx, t.server.Serve)
}

// Unbind closes the listener; in-flight requests keep running.
func (t *HTTPTransport) Unbind(_ context.Context) error {
	return t.unbind()
}

// Stop waits for in-flight requests to finish. If ctx is done first the
// remaining connections are closed and ErrForceClosed is returned.
func (t *HTTPTransport) Stop(ctx context.Context) error {
	if tl, _ := t.current(); tl == nil {
		return nil
	}

	err := t.server.Shutdown(ctx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		t.logger.Warn().Err(err).Msg("http graceful shutdown did not finish, closing connections")
		_ = t.server.Close()
		t.waitServed()
		return fmt.Errorf("%w: %w", ErrForceClosed, err)
	}

	t.waitServed()
	t.logger.Info().Msg("http transport stopped")
	return nil
}
