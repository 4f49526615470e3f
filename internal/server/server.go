package server

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-port-keeper/internal/endpoint"
	"github.com/MKhiriev/go-port-keeper/internal/logger"
	"github.com/MKhiriev/go-port-keeper/internal/metrics"
	"github.com/MKhiriev/go-port-keeper/internal/transport"
	"github.com/MKhiriev/go-port-keeper/internal/workers"
)

// managedTransport is a transport owned by the server.
type managedTransport struct {
	transport.Transport

	handler *connectionHandler
	bound   atomic.Bool
}

// TransportInfo describes one owned transport.
type TransportInfo struct {
	Endpoint    string `json:"endpoint"`
	Addr        string `json:"addr"`
	Bound       bool   `json:"bound"`
	Connections int64  `json:"connections"`
}

// Server owns a set of transports and sequences their start and shutdown.
type Server struct {
	options Options
	factory transport.Factory
	binder  AddressBinder
	pool    *workers.Pool
	metrics *metrics.Metrics
	logger  *logger.Logger

	// littleEndian reports the platform byte order.
	littleEndian func() bool

	// mu guards transports. It is never held across a transport call.
	mu         sync.Mutex
	transports []*managedTransport

	state      atomic.Int32
	hasStarted atomic.Bool
	stopping   atomic.Bool
	stopped    *completion
}

// NewServer returns an unstarted Server.
func NewServer(opts Options, factory transport.Factory, binder AddressBinder, log *logger.Logger, options ...Option) *Server {
	s := &Server{
		options:      opts,
		factory:      factory,
		binder:       binder,
		pool:         workers.NewPool(opts.StopConcurrency),
		logger:       log,
		littleEndian: isLittleEndian,
		stopped:      newCompletion(),
	}

	for _, o := range options {
		o(s)
	}

	return s
}

// Start binds every configured endpoint. It may be called once; later calls
// return ErrAlreadyStarted and change nothing.
//
// When Start fails, every transport created so far is disposed of before
// the error is returned, so the server is either fully running or fully
// torn down.
func (s *Server) Start(ctx context.Context) error {
	if !s.littleEndian() {
		return s.failStart(ErrPlatformUnsupported)
	}

	if !s.hasStarted.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}

	if s.stopping.Load() {
		return ErrServerStopped
	}

	s.state.CompareAndSwap(int32(StateUnstarted), int32(StateStarting))
	s.logger.Info().Int("endpoints", len(s.options.Endpoints)).Msg("starting server")

	start := time.Now()
	err := s.binder.Bind(ctx, s.options.Endpoints, s.bindEndpoint)
	if s.stopping.Load() {
		// Stop took over while endpoints were being bound; it owns the
		// teardown, so report it once it is done.
		s.logger.Warn().Err(err).Msg("server stopped while starting")
		_ = s.stopped.wait(ctx)
		return ErrServerStopped
	}
	if err != nil {
		return s.failStart(fmt.Errorf("%w: %w", ErrBindFailed, err))
	}
	s.metrics.ObservePhase(metrics.PhaseStart, time.Since(start))

	s.state.CompareAndSwap(int32(StateStarting), int32(StateRunning))
	s.logger.Info().Strs("addrs", s.Addrs()).Msg("server started")

	return nil
}

// bindEndpoint is the per-endpoint callback handed to the address binder.
func (s *Server) bindEndpoint(ctx context.Context, ep endpoint.Endpoint) error {
	handler := newConnectionHandler(ep, s.options.MaxConnections, s.metrics, s.logger)

	t, err := s.factory.Create(ep, handler)
	if err != nil {
		return fmt.Errorf("error creating transport for %s: %w", ep, err)
	}

	mt := &managedTransport{Transport: t, handler: handler}
	if err := s.addTransport(mt); err != nil {
		return err
	}

	if err := t.Bind(ctx); err != nil {
		return err
	}

	if !s.markBound(mt) {
		s.abandon(mt)
		return fmt.Errorf("%s: %w", ep, ErrServerStopped)
	}
	return nil
}

// markBound records mt as bound unless shutdown began while it was binding.
// A shutdown that starts after markBound returns true unbinds mt itself.
func (s *Server) markBound(mt *managedTransport) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopping.Load() {
		return false
	}

	mt.bound.Store(true)
	s.metrics.TransportBound()
	return true
}

// abandon tears down a transport whose Bind finished after shutdown had
// already run past it.
func (s *Server) abandon(mt *managedTransport) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := mt.Unbind(ctx); err != nil {
		s.logger.Error().Err(err).Str("endpoint", mt.Endpoint().String()).Msg("unable to unbind transport bound during shutdown")
	}
	if err := mt.Stop(ctx); err != nil {
		s.logger.Error().Err(err).Str("endpoint", mt.Endpoint().String()).Msg("unable to stop transport bound during shutdown")
	}
}

// addTransport takes ownership of mt unless shutdown has already begun.
func (s *Server) addTransport(mt *managedTransport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopping.Load() {
		return ErrServerStopped
	}

	s.transports = append(s.transports, mt)
	return nil
}

func (s *Server) failStart(err error) error {
	s.logger.Error().Err(err).Msg("unable to start server")

	if disposeErr := s.DisposeForcefully(); disposeErr != nil {
		return errors.Join(err, disposeErr)
	}
	return err
}

// Stop shuts the server down gracefully: all transports are unbound, then
// all transports are stopped. ctx is passed to every transport's Stop.
//
// Stop is safe to call many times and from many goroutines. The first call
// runs the shutdown; the others wait for it and return the same outcome,
// or ErrCancelled if their own ctx finishes first.
func (s *Server) Stop(ctx context.Context) error {
	return s.stop(ctx, ctx)
}

// DisposeForcefully runs Stop with an already-cancelled context, asking every
// transport to abort its connections, and blocks until the shutdown outcome
// is known. When a shutdown is already running it waits for that one.
func (s *Server) DisposeForcefully() error {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	return s.stop(ctx, context.Background())
}

func (s *Server) stop(ctx, waitCtx context.Context) error {
	if !s.stopping.CompareAndSwap(false, true) {
		return s.stopped.wait(waitCtx)
	}

	err := s.shutdown(ctx)
	s.stopped.settle(err)
	return err
}

// shutdown runs the unbind phase and then the stop phase over every owned
// transport. Both phases always run, even when unbinding fails, so a failed
// unbind never leaves a transport unstopped; their errors are combined.
func (s *Server) shutdown(ctx context.Context) error {
	transports := s.snapshot()

	s.state.Store(int32(StateUnbinding))
	s.logger.Info().Int("transports", len(transports)).Msg("unbinding transports")

	start := time.Now()
	unbindErr := s.pool.Run(ctx, s.tasks(transports, s.unbindTransport)...)
	s.metrics.ObservePhase(metrics.PhaseUnbind, time.Since(start))

	s.state.Store(int32(StateStopping))
	s.logger.Info().Int("transports", len(transports)).Msg("stopping transports")

	start = time.Now()
	stopErr := s.pool.Run(ctx, s.tasks(transports, s.stopTransport)...)
	s.metrics.ObservePhase(metrics.PhaseStop, time.Since(start))

	s.state.Store(int32(StateStopped))

	var err error
	if unbindErr != nil {
		err = errors.Join(err, phaseError(ctx, ErrUnbindFailed, unbindErr))
	}
	if stopErr != nil {
		err = errors.Join(err, phaseError(ctx, ErrStopFailed, stopErr))
	}

	switch {
	case err == nil:
		s.metrics.RecordStopOutcome(metrics.OutcomeSuccess)
		s.logger.Info().Msg("server stopped")
	case errors.Is(err, ErrCancelled):
		s.metrics.RecordStopOutcome(metrics.OutcomeCancelled)
		s.logger.Warn().Err(err).Msg("server stopped before connections drained")
	default:
		s.metrics.RecordStopOutcome(metrics.OutcomeFailure)
		s.logger.Error().Err(err).Msg("server stopped with errors")
	}

	return err
}

func (s *Server) tasks(transports []*managedTransport, op func(context.Context, *managedTransport) error) []workers.Task {
	tasks := make([]workers.Task, len(transports))
	for i, mt := range transports {
		tasks[i] = func(ctx context.Context) error {
			return op(ctx, mt)
		}
	}
	return tasks
}

func (s *Server) unbindTransport(ctx context.Context, mt *managedTransport) error {
	if err := mt.Unbind(ctx); err != nil {
		return fmt.Errorf("%s: %w", mt.Endpoint(), err)
	}

	if mt.bound.CompareAndSwap(true, false) {
		s.metrics.TransportUnbound()
	}
	return nil
}

func (s *Server) stopTransport(ctx context.Context, mt *managedTransport) error {
	if err := mt.Stop(ctx); err != nil {
		return fmt.Errorf("%s: %w", mt.Endpoint(), err)
	}
	return nil
}

// phaseError wraps err with the phase kind, and with ErrCancelled when the
// failure comes from ctx finishing.
func phaseError(ctx context.Context, kind, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return fmt.Errorf("%w: %w: %w", ErrCancelled, kind, err)
	}
	return fmt.Errorf("%w: %w", kind, err)
}

func (s *Server) snapshot() []*managedTransport {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*managedTransport(nil), s.transports...)
}

// State returns the current lifecycle state.
func (s *Server) State() State {
	return State(s.state.Load())
}

// Done is closed once the shutdown outcome is known.
func (s *Server) Done() <-chan struct{} {
	return s.stopped.done
}

// Transports describes every owned transport in bind order.
func (s *Server) Transports() []TransportInfo {
	transports := s.snapshot()

	infos := make([]TransportInfo, 0, len(transports))
	for _, mt := range transports {
		infos = append(infos, TransportInfo{
			Endpoint:    mt.Endpoint().String(),
			Addr:        mt.Addr(),
			Bound:       mt.bound.Load(),
			Connections: mt.handler.Active(),
		})
	}
	return infos
}

// Addrs returns the addresses of the bound transports.
func (s *Server) Addrs() []string {
	var addrs []string
	for _, mt := range s.snapshot() {
		if mt.bound.Load() {
			addrs = append(addrs, mt.Addr())
		}
	}
	return addrs
}

func isLittleEndian() bool {
	var buf [2]byte
	binary.NativeEndian.PutUint16(buf[:], 1)
	return buf[0] == 1
}
