package handler

import (
	"github.com/MKhiriev/go-port-keeper/internal/endpoint"
	"github.com/MKhiriev/go-port-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-port-keeper/internal/handler/http"
	"github.com/MKhiriev/go-port-keeper/internal/logger"
	"github.com/MKhiriev/go-port-keeper/internal/metrics"
)

// Handlers holds the applications served on the configured endpoints. A
// field is nil when no endpoint uses its scheme.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(endpoints []endpoint.Endpoint, info http.AppInfo, m *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	for _, ep := range endpoints {
		switch ep.Scheme {
		case endpoint.SchemeHTTP:
			if handlers.HTTP == nil {
				handlers.HTTP = http.NewHandler(info, m.Handler(), logger)
			}
		case endpoint.SchemeGRPC:
			if handlers.GRPC == nil {
				handlers.GRPC = grpc.NewHandler(true, logger)
			}
		}
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
