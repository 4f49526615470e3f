// Command healthcheck probes a go-port-keeper http endpoint and exits with a
// non-zero status when it is not healthy. It is meant for container health
// checks.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-port-keeper/internal/endpoint"
	"github.com/MKhiriev/go-port-keeper/internal/probe"
)

func main() {
	target := flag.String("e", "127.0.0.1:8080", "http endpoint to probe")
	path := flag.String("path", probe.DefaultPath, "route to request")
	timeout := flag.Duration("timeout", 3*time.Second, "probe timeout")
	flag.Parse()

	if err := run(*target, *path, *timeout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(target, path string, timeout time.Duration) error {
	ep, err := endpoint.Parse(target)
	if err != nil {
		return fmt.Errorf("error parsing endpoint: %w", err)
	}

	p, err := probe.New(ep, timeout)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return p.Check(ctx, path)
}
