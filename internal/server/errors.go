// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrPlatformUnsupported is returned by Start on big-endian platforms.
	ErrPlatformUnsupported = errors.New("platform unsupported: big-endian byte order")
	// ErrAlreadyStarted is returned by every Start call after the first.
	ErrAlreadyStarted = errors.New("server has already started")
	// ErrServerStopped is returned when Start runs after Stop was called.
	ErrServerStopped = errors.New("server is stopping or stopped")
	// ErrBindFailed wraps the binder error when an endpoint could not be bound.
	ErrBindFailed = errors.New("failed to bind endpoints")
	// ErrUnbindFailed wraps transport errors from the unbind phase.
	ErrUnbindFailed = errors.New("failed to unbind transports")
	// ErrStopFailed wraps transport errors from the stop phase.
	ErrStopFailed = errors.New("failed to stop transports")
	// ErrCancelled marks a stop outcome caused by the caller's context
	// finishing before the shutdown did.
	ErrCancelled = errors.New("server stop cancelled")
)
