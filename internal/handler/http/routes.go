package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	// probes stay out of the access log
	router.Group(func(r chi.Router) {
		r.Get("/healthz", h.healthz)
		r.Get("/readyz", h.readyz)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.withTraceID, h.withLogging)
		r.Use(middleware.Compress(5, "application/json"))

		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/transports", h.getTransports)
	})

	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
