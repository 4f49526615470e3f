package transport

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-port-keeper/internal/endpoint"
	"github.com/MKhiriev/go-port-keeper/internal/logger"
)

// GRPCTransport serves a grpc.Server on one endpoint. Every transport
// carries its own health service, which reports SERVING between Bind and
// Unbind.
type GRPCTransport struct {
	listenerBase

	server *grpc.Server
	health *health.Server
}

// NewGRPCTransport creates an unbound gRPC transport. register is called
// once with the new grpc.Server to attach application services.
func NewGRPCTransport(ep endpoint.Endpoint, handler ConnectionHandler, register func(*grpc.Server), log *logger.Logger, opts ...grpc.ServerOption) *GRPCTransport {
	t := &GRPCTransport{}
	t.init(ep, handler, log)

	serverOpts := append([]grpc.ServerOption{grpc.ChainUnaryInterceptor(t.logUnary)}, opts...)
	t.server = grpc.NewServer(serverOpts...)
	t.health = health.NewServer()
	healthpb.RegisterHealthServer(t.server, t.health)
	if register != nil {
		register(t.server)
	}

	return t
}

// Bind opens the listener and starts serving gRPC on it.
func (t *GRPCTransport) Bind(ctx context.Context) error {
	if err := t.bind(ctx, t.server.Serve); err != nil {
		return err
	}
	t.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	return nil
}

// Unbind marks the health service NOT_SERVING and closes the listener.
func (t *GRPCTransport) Unbind(_ context.Context) error {
	t.health.Shutdown()
	return t.unbind()
}

// Stop waits for in-flight RPCs to finish. If ctx is done first the server
// is stopped hard and ErrForceClosed is returned when connections were
// still open.
func (t *GRPCTransport) Stop(ctx context.Context) error {
	tl, _ := t.current()
	if tl == nil {
		return nil
	}

	done := make(chan struct{})
	go func() {
		t.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		remaining := tl.Active()
		t.server.Stop()
		<-done
		if remaining > 0 {
			t.logger.Warn().Int64("active", remaining).Msg("grpc graceful stop did not finish, connections closed")
			return fmt.Errorf("%w: %d connections: %w", ErrForceClosed, remaining, ctx.Err())
		}
	}

	t.waitServed()
	t.logger.Info().Msg("grpc transport stopped")
	return nil
}

func (t *GRPCTransport) logUnary(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	t.logger.Debug().
		Str("method", info.FullMethod).
		Dur("duration", time.Since(start)).
		Err(err).
		Send()

	return resp, err
}
