package server

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-port-keeper/internal/binder"
	"github.com/MKhiriev/go-port-keeper/internal/endpoint"
	"github.com/MKhiriev/go-port-keeper/internal/logger"
	"github.com/MKhiriev/go-port-keeper/internal/transport"
)

// eventLog records transport calls across all transports in global order.
type eventLog struct {
	mu     sync.Mutex
	events []string
}

func (l *eventLog) record(op string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, op)
}

func (l *eventLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.events...)
}

// fakeTransport is an instrumented Transport double.
type fakeTransport struct {
	ep  endpoint.Endpoint
	log *eventLog

	bindErr   error
	unbindErr error
	stopErr   error
	// stopGate, when set, blocks Stop until closed or until ctx is done.
	stopGate chan struct{}

	binds   atomic.Int32
	unbinds atomic.Int32
	stops   atomic.Int32

	mu      sync.Mutex
	stopCtx context.Context
}

func (t *fakeTransport) Bind(context.Context) error {
	t.binds.Add(1)
	t.log.record("bind")
	return t.bindErr
}

func (t *fakeTransport) Unbind(context.Context) error {
	t.unbinds.Add(1)
	t.log.record("unbind")
	return t.unbindErr
}

func (t *fakeTransport) Stop(ctx context.Context) error {
	t.stops.Add(1)
	t.mu.Lock()
	t.stopCtx = ctx
	t.mu.Unlock()

	if t.stopGate != nil {
		select {
		case <-t.stopGate:
		case <-ctx.Done():
			t.log.record("stop")
			return ctx.Err()
		}
	}

	t.log.record("stop")
	return t.stopErr
}

func (t *fakeTransport) Endpoint() endpoint.Endpoint { return t.ep }

func (t *fakeTransport) Addr() string { return t.ep.Address }

func (t *fakeTransport) lastStopCtx() context.Context {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopCtx
}

// fakeFactory creates fakeTransports, letting tests tweak them per address.
type fakeFactory struct {
	log       *eventLog
	configure map[string]func(*fakeTransport)
	createErr map[string]error

	mu       sync.Mutex
	created  []*fakeTransport
	handlers []transport.ConnectionHandler
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{
		log:       &eventLog{},
		configure: map[string]func(*fakeTransport){},
		createErr: map[string]error{},
	}
}

func (f *fakeFactory) Create(ep endpoint.Endpoint, h transport.ConnectionHandler) (transport.Transport, error) {
	if err := f.createErr[ep.Address]; err != nil {
		return nil, err
	}

	t := &fakeTransport{ep: ep, log: f.log}
	if c := f.configure[ep.Address]; c != nil {
		c(t)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, t)
	f.handlers = append(f.handlers, h)
	return t, nil
}

func (f *fakeFactory) transports() []*fakeTransport {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*fakeTransport(nil), f.created...)
}

func endpoints(t *testing.T, raws ...string) []endpoint.Endpoint {
	t.Helper()
	eps, err := endpoint.ParseAll(raws)
	require.NoError(t, err)
	return eps
}

// newTestServer builds a Server over a fake factory and the real binder.
func newTestServer(t *testing.T, f *fakeFactory, raws ...string) *Server {
	t.Helper()
	opts := Options{Endpoints: endpoints(t, raws...)}
	return NewServer(opts, f, binder.NewBinder(logger.Nop()), logger.Nop())
}

func startedServer(t *testing.T, f *fakeFactory, raws ...string) *Server {
	t.Helper()
	s := newTestServer(t, f, raws...)
	require.NoError(t, s.Start(context.Background()))
	return s
}

// indexOf returns the positions of op in events.
func indexOf(events []string, op string) []int {
	var idx []int
	for i, e := range events {
		if e == op {
			idx = append(idx, i)
		}
	}
	return idx
}

// gatedTransport holds Bind until release is closed, then binds the wrapped
// transport.
type gatedTransport struct {
	transport.Transport

	entered chan struct{}
	release chan struct{}
}

func (t *gatedTransport) Bind(ctx context.Context) error {
	close(t.entered)
	<-t.release
	return t.Transport.Bind(ctx)
}

// gatedFactory wraps the real factory so that Bind can be suspended.
type gatedFactory struct {
	inner   transport.Factory
	entered chan struct{}
	release chan struct{}

	mu      sync.Mutex
	created *gatedTransport
}

func newGatedFactory() *gatedFactory {
	return &gatedFactory{
		inner:   transport.NewFactory(transport.FactoryConfig{HTTPHandler: http.NotFoundHandler()}, logger.Nop()),
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (f *gatedFactory) Create(ep endpoint.Endpoint, h transport.ConnectionHandler) (transport.Transport, error) {
	inner, err := f.inner.Create(ep, h)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = &gatedTransport{Transport: inner, entered: f.entered, release: f.release}
	return f.created, nil
}

func (f *gatedFactory) transport() *gatedTransport {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.created
}
