// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package endpoint

import "errors"

var (
	// ErrEmptyAddress is returned by [Parse] for blank input.
	ErrEmptyAddress = errors.New("endpoint address is empty")
	// ErrUnknownScheme is returned by [Parse] when the scheme is not one of
	// the supported schemes.
	ErrUnknownScheme = errors.New("unknown endpoint scheme")
	// ErrInvalidAddress is returned by [Parse] when the host/port or socket
	// path part cannot be used to listen on.
	ErrInvalidAddress = errors.New("invalid endpoint address")
)
