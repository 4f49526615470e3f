package probe

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-port-keeper/internal/endpoint"
)

func mustParse(t *testing.T, raw string) endpoint.Endpoint {
	t.Helper()
	ep, err := endpoint.Parse(raw)
	require.NoError(t, err)
	return ep
}

func TestProber_Check(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "stopping", http.StatusServiceUnavailable)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	p, err := New(mustParse(t, strings.TrimPrefix(srv.URL, "http://")), time.Second)
	require.NoError(t, err)

	assert.NoError(t, p.Check(context.Background(), DefaultPath))

	err = p.Check(context.Background(), "/readyz")
	assert.ErrorIs(t, err, ErrUnhealthy)
	assert.Contains(t, err.Error(), "503")
}

func TestProber_Unreachable(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	p, err := New(mustParse(t, addr), 200*time.Millisecond)
	require.NoError(t, err)

	err = p.Check(context.Background(), DefaultPath)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnhealthy)
}

func TestProber_UnixSocket(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pk.sock")
	l, err := net.Listen("unix", path)
	require.NoError(t, err)

	srv := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})}
	go func() { _ = srv.Serve(l) }()
	defer srv.Close()

	p, err := New(mustParse(t, "http+unix://"+path), time.Second)
	require.NoError(t, err)
	assert.NoError(t, p.Check(context.Background(), DefaultPath))
}

func TestNew_RejectsGRPC(t *testing.T) {
	_, err := New(mustParse(t, "grpc://127.0.0.1:9090"), time.Second)
	assert.ErrorIs(t, err, ErrNotHTTP)
}

func TestDialAddress(t *testing.T) {
	tests := map[string]string{
		"0.0.0.0:8080":   "127.0.0.1:8080",
		":8080":          "127.0.0.1:8080",
		"[::]:8080":      "[::1]:8080",
		"10.0.0.1:8080":  "10.0.0.1:8080",
		"localhost:8080": "localhost:8080",
	}

	for in, want := range tests {
		assert.Equal(t, want, dialAddress(in), in)
	}
}
