package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-port-keeper/internal/endpoint"
	"github.com/MKhiriev/go-port-keeper/internal/logger"
)

func TestNetFactory_Create(t *testing.T) {
	f := NewFactory(FactoryConfig{}, logger.Nop())

	tests := []struct {
		name    string
		ep      endpoint.Endpoint
		check   func(t *testing.T, tr Transport)
		wantErr error
	}{
		{
			name: "http",
			ep:   loopbackHTTP,
			check: func(t *testing.T, tr Transport) {
				assert.IsType(t, &HTTPTransport{}, tr)
			},
		},
		{
			name: "grpc",
			ep:   loopbackGRPC,
			check: func(t *testing.T, tr Transport) {
				assert.IsType(t, &GRPCTransport{}, tr)
			},
		},
		{
			name:    "unknown scheme",
			ep:      endpoint.Endpoint{Scheme: "ftp", Network: endpoint.NetworkTCP, Address: "127.0.0.1:0"},
			wantErr: ErrUnsupportedScheme,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := f.Create(tt.ep, nil)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, tr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.ep, tr.Endpoint())
			tt.check(t, tr)
		})
	}
}
