// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import "errors"

var (
	// ErrUnsupportedScheme is returned by the factory for endpoints whose
	// scheme has no transport implementation.
	ErrUnsupportedScheme = errors.New("unsupported endpoint scheme")
	// ErrAlreadyBound is returned by a second Bind call.
	ErrAlreadyBound = errors.New("transport is already bound")
	// ErrForceClosed wraps the context error when Stop had to close
	// connections that did not drain in time.
	ErrForceClosed = errors.New("connections force-closed")
)
