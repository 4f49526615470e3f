package transport

import (
	"fmt"
	"net/http"
	"time"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-port-keeper/internal/endpoint"
	"github.com/MKhiriev/go-port-keeper/internal/logger"
)

// FactoryConfig holds the protocol applications served by created
// transports.
type FactoryConfig struct {
	// HTTPHandler serves every http endpoint.
	HTTPHandler http.Handler

	// ReadHeaderTimeout bounds reading request headers on http endpoints.
	ReadHeaderTimeout time.Duration

	// RegisterGRPC attaches application services to every grpc endpoint.
	RegisterGRPC func(*grpc.Server)

	// GRPCOptions are passed to grpc.NewServer.
	GRPCOptions []grpc.ServerOption
}

// NetFactory creates HTTP and gRPC transports.
type NetFactory struct {
	cfg    FactoryConfig
	logger *logger.Logger
}

// NewFactory returns a factory creating transports from cfg.
func NewFactory(cfg FactoryConfig, log *logger.Logger) *NetFactory {
	if cfg.HTTPHandler == nil {
		cfg.HTTPHandler = http.NotFoundHandler()
	}

	return &NetFactory{
		cfg:    cfg,
		logger: log,
	}
}

// Create returns an unbound transport for ep.
func (f *NetFactory) Create(ep endpoint.Endpoint, handler ConnectionHandler) (Transport, error) {
	switch ep.Scheme {
	case endpoint.SchemeHTTP:
		return NewHTTPTransport(ep, handler, f.cfg.HTTPHandler, f.cfg.ReadHeaderTimeout, f.logger), nil
	case endpoint.SchemeGRPC:
		return NewGRPCTransport(ep, handler, f.cfg.RegisterGRPC, f.logger, f.cfg.GRPCOptions...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, ep.Scheme)
	}
}
