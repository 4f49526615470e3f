package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/go-port-keeper/internal/endpoint"
)

// EndpointList collects repeated endpoint flags.
// It implements the flag.Value interface.
type EndpointList []string

// ParseFlags parses all configuration flags from the command line.
//
// Flags:
//
//	-e endpoint to bind, repeatable (e.g. -e 127.0.0.1:8080 -e grpc://[::1]:9090)
//	-c/-config json file path with configs
//	-shutdown-timeout graceful stop bound (e.g. "30s")
//	-max-connections per-endpoint connection limit
//	-stop-concurrency transports unbound or stopped at once
//	-read-header-timeout HTTP header read timeout (e.g. "5s")
//	-name application name
//	-log-level zerolog level name
func ParseFlags() (*StructuredConfig, error) {
	var endpoints EndpointList
	var jsonConfigPath string
	var shutdownTimeout time.Duration
	var maxConnections int
	var stopConcurrency int
	var readHeaderTimeout time.Duration
	var name string
	var logLevel string

	fs := flag.CommandLine
	fs.Var(&endpoints, "e", "Endpoint to bind, may be repeated")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 30s)")
	fs.IntVar(&maxConnections, "max-connections", 0, "Max open connections per endpoint, 0 is unlimited")
	fs.IntVar(&stopConcurrency, "stop-concurrency", 0, "Transports unbound or stopped at once, 0 is all")
	fs.DurationVar(&readHeaderTimeout, "read-header-timeout", 0, "HTTP read header timeout (e.g., 5s)")
	fs.StringVar(&name, "name", "", "Application name")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Name:     name,
			LogLevel: logLevel,
		},
		Server: Server{
			Endpoints:         endpoints,
			ShutdownTimeout:   shutdownTimeout,
			MaxConnections:    maxConnections,
			StopConcurrency:   stopConcurrency,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the endpoints joined by commas.
func (l *EndpointList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

// Set validates s as an endpoint and appends it to the list.
func (l *EndpointList) Set(s string) error {
	if _, err := endpoint.Parse(s); err != nil {
		return err
	}

	*l = append(*l, s)
	return nil
}
