// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-port-keeper/internal/endpoint"
)

// validate checks that the final merged [StructuredConfig] can be used at
// startup: every endpoint parses, durations and limits are not negative and
// the log level is known.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// package sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if _, err := cfg.Server.ParsedEndpoints(); err != nil {
		errs = append(errs, err)
	}

	if cfg.Server.ShutdownTimeout < 0 || cfg.Server.ReadHeaderTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: timeouts must not be negative", ErrInvalidServerConfigs))
	}

	if cfg.Server.MaxConnections < 0 || cfg.Server.StopConcurrency < 0 {
		errs = append(errs, fmt.Errorf("%w: limits must not be negative", ErrInvalidServerConfigs))
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err))
	}

	return errors.Join(errs...)
}

// ParsedEndpoints parses the configured endpoint strings.
func (s Server) ParsedEndpoints() ([]endpoint.Endpoint, error) {
	eps, err := endpoint.ParseAll(s.Endpoints)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}
	return eps, nil
}
