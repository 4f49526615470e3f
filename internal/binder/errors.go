// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package binder

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-port-keeper/internal/endpoint"
)

var (
	// ErrDuplicateEndpoint is returned when the same endpoint is configured
	// more than once. No endpoint is bound in that case.
	ErrDuplicateEndpoint = errors.New("endpoint configured more than once")
	// ErrLocalhostDynamicPort is returned for "localhost:0": the IPv4 and
	// IPv6 loopback listeners would end up on different ports.
	ErrLocalhostDynamicPort = errors.New("dynamic port is not supported on localhost, bind 127.0.0.1:0 or [::1]:0 instead")
)

// BindError reports the endpoint whose binding failed.
type BindError struct {
	Endpoint endpoint.Endpoint
	Err      error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("failed to bind %s: %v", e.Endpoint, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}
