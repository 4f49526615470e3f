package server

import (
	"net"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-port-keeper/internal/endpoint"
	"github.com/MKhiriev/go-port-keeper/internal/logger"
	"github.com/MKhiriev/go-port-keeper/internal/metrics"
)

// connectionHandler is the per-endpoint ConnectionHandler handed to the
// transport factory. It names every connection, enforces the connection
// limit and keeps the connection metrics.
type connectionHandler struct {
	endpoint string
	limit    int64
	active   atomic.Int64
	ids      sync.Map

	metrics *metrics.Metrics
	logger  *logger.Logger
}

func newConnectionHandler(ep endpoint.Endpoint, limit int, m *metrics.Metrics, log *logger.Logger) *connectionHandler {
	name := ep.String()

	child := log.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("endpoint", name)
	})

	return &connectionHandler{
		endpoint: name,
		limit:    int64(limit),
		metrics:  m,
		logger:   child,
	}
}

// OnConnect admits conn unless the endpoint is at its connection limit.
func (h *connectionHandler) OnConnect(conn net.Conn) bool {
	if n := h.active.Add(1); h.limit > 0 && n > h.limit {
		h.active.Add(-1)
		h.metrics.ConnectionRejected(h.endpoint)
		h.logger.Warn().
			Str("remote", conn.RemoteAddr().String()).
			Int64("limit", h.limit).
			Msg("connection limit reached, rejecting connection")
		return false
	}

	id := uuid.NewString()
	h.ids.Store(conn, id)
	h.metrics.ConnectionAccepted(h.endpoint)

	h.logger.Debug().
		Str("conn_id", id).
		Str("remote", conn.RemoteAddr().String()).
		Msg("connection accepted")
	return true
}

// OnClose releases the slot taken by conn.
func (h *connectionHandler) OnClose(conn net.Conn) {
	id, _ := h.ids.LoadAndDelete(conn)
	h.active.Add(-1)
	h.metrics.ConnectionClosed(h.endpoint)

	h.logger.Debug().
		Interface("conn_id", id).
		Msg("connection closed")
}

// Active returns the number of open connections on the endpoint.
func (h *connectionHandler) Active() int64 {
	return h.active.Load()
}
