package server

//go:generate mockgen -source=interfaces.go -destination=../mock/binder_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-port-keeper/internal/endpoint"
)

// AddressBinder resolves the configured endpoints and calls bind for each of
// them. Ordering and how failures are aggregated belong to the binder.
type AddressBinder interface {
	Bind(ctx context.Context, endpoints []endpoint.Endpoint, bind endpoint.BindFunc) error
}
