package transport

import (
	"net"
	"sync"
)

// recordingHandler is a ConnectionHandler double counting the hook calls.
type recordingHandler struct {
	mu       sync.Mutex
	reject   bool
	connects int
	closes   int
}

func (h *recordingHandler) OnConnect(_ net.Conn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connects++
	return !h.reject
}

func (h *recordingHandler) OnClose(_ net.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closes++
}

func (h *recordingHandler) counts() (int, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.connects, h.closes
}
