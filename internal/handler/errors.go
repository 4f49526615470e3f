// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when no configured
// endpoint uses a known scheme, so there is nothing to serve. The
// application treats this as a fatal misconfiguration.
var errNoHandlersAreCreated = errors.New("no handlers are created")
