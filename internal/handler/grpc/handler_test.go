package grpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"

	"github.com/MKhiriev/go-port-keeper/internal/logger"
)

func TestHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		withReflection bool
		wantService    bool
	}{
		{name: "reflection enabled", withReflection: true, wantService: true},
		{name: "reflection disabled", withReflection: false, wantService: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := grpc.NewServer()
			defer s.Stop()

			NewHandler(tt.withReflection, logger.Nop()).Register(s)

			_, ok := s.GetServiceInfo()["grpc.reflection.v1.ServerReflection"]
			assert.Equal(t, tt.wantService, ok)
		})
	}
}
