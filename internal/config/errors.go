package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// configuration cannot be used.
var (
	// ErrInvalidEndpoint indicates an endpoint string that does not parse.
	ErrInvalidEndpoint = errors.New("invalid endpoint")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a negative shutdown timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
