package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-port-keeper/internal/logger"
	"github.com/MKhiriev/go-port-keeper/internal/server"
)

type readiness struct {
	Name  string `json:"name"`
	State string `json:"state"`
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

// readyz answers 200 only while the server is running.
func (h *Handler) readyz(w http.ResponseWriter, r *http.Request) {
	state := server.StateUnstarted
	if status := h.provider(); status != nil {
		state = status.State()
	}

	code := http.StatusOK
	if state != server.StateRunning {
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, r, code, readiness{Name: h.info.Name, State: state.String()})
}

func (h *Handler) getTransports(w http.ResponseWriter, r *http.Request) {
	status := h.provider()
	if status == nil {
		http.Error(w, "server is not attached", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, r, http.StatusOK, status.Transports())
}

func writeJSON(w http.ResponseWriter, r *http.Request, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeJSON").Msg("error encoding response")
	}
}
