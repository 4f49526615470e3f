package http

import (
	"net/http"
	"sync"

	"github.com/MKhiriev/go-port-keeper/internal/logger"
	"github.com/MKhiriev/go-port-keeper/internal/server"
)

// StatusProvider reports the lifecycle state and transports of a server.
type StatusProvider interface {
	State() server.State
	Transports() []server.TransportInfo
}

// AppInfo identifies the running application.
type AppInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type Handler struct {
	info    AppInfo
	metrics http.Handler

	mu     sync.RWMutex
	status StatusProvider

	logger *logger.Logger
}

// NewHandler returns a Handler serving info and the metrics handler. The
// status routes answer 503 until a StatusProvider is attached.
func NewHandler(info AppInfo, metrics http.Handler, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		info:    info,
		metrics: metrics,
		logger:  logger,
	}
}

// Attach sets the server whose state the status routes report.
func (h *Handler) Attach(status StatusProvider) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.status = status
}

func (h *Handler) provider() StatusProvider {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.status
}
