package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/MKhiriev/go-port-keeper/internal/logger"
)

// Handler is the root gRPC application handler.
//
// It registers the services shared by every grpc endpoint. Health checking
// is owned by each transport so that it can report NOT_SERVING on unbind.
type Handler struct {
	// reflection enables the server reflection service.
	reflection bool

	// logger is used for registration diagnostics.
	logger *logger.Logger
}

// NewHandler constructs a [Handler]. When withReflection is set, every gRPC
// server gets the reflection service so tools like grpcurl can list it.
func NewHandler(withReflection bool, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		reflection: withReflection,
		logger:     logger,
	}
}

// Register installs the handler's services on s. It matches the transport
// factory's RegisterGRPC hook.
func (h *Handler) Register(s *grpc.Server) {
	if h.reflection {
		reflection.Register(s)
	}

	h.logger.Debug().Int("services", len(s.GetServiceInfo())).Msg("gRPC services registered")
}
