// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-port-keeper/internal/config"
	"github.com/MKhiriev/go-port-keeper/internal/handler"
	"github.com/MKhiriev/go-port-keeper/internal/handler/http"
	"github.com/MKhiriev/go-port-keeper/internal/logger"
	"github.com/MKhiriev/go-port-keeper/internal/metrics"
	"github.com/MKhiriev/go-port-keeper/internal/server"
	"github.com/MKhiriev/go-port-keeper/internal/transport"
)

// shutdownSignals end the serving phase. Received again during shutdown,
// they abort the graceful stop.
var shutdownSignals = []os.Signal{syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT}

type App struct {
	server          *server.Server
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

// NewApp builds the server described by cfg without binding anything.
func NewApp(cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	endpoints, err := cfg.Server.ParsedEndpoints()
	if err != nil {
		return nil, fmt.Errorf("error parsing endpoints: %w", err)
	}

	m := metrics.New()

	handlers, err := handler.NewHandlers(endpoints, http.AppInfo{Name: cfg.App.Name, Version: cfg.App.Version}, m, log)
	if err != nil {
		return nil, fmt.Errorf("error creating handlers: %w", err)
	}

	factoryCfg := transport.FactoryConfig{ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout}
	if handlers.HTTP != nil {
		factoryCfg.HTTPHandler = handlers.HTTP.Init()
	}
	if handlers.GRPC != nil {
		factoryCfg.RegisterGRPC = handlers.GRPC.Register
	}

	srv := server.Create(transport.NewFactory(factoryCfg, log), log, func(o *server.Options) {
		o.Endpoints = endpoints
		o.MaxConnections = cfg.Server.MaxConnections
		o.StopConcurrency = cfg.Server.StopConcurrency
	}, server.WithMetrics(m))

	if handlers.HTTP != nil {
		handlers.HTTP.Attach(srv)
	}

	return &App{
		server:          srv,
		shutdownTimeout: cfg.Server.ShutdownTimeout,
		logger:          log,
	}, nil
}

// Run starts the server and blocks until ctx is done or a shutdown signal
// arrives, then stops the server gracefully within the shutdown timeout.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, shutdownSignals...)
	defer stop()

	if err := a.server.Start(ctx); err != nil {
		return fmt.Errorf("error starting server: %w", err)
	}

	select {
	case <-ctx.Done():
		a.logger.Info().Msg("shutdown requested")
	case <-a.server.Done():
	}
	stop()

	return a.shutdown()
}

func (a *App) shutdown() error {
	ctx, cancel := a.stopContext()
	defer cancel()

	ctx, stop := signal.NotifyContext(ctx, shutdownSignals...)
	defer stop()

	start := time.Now()
	err := a.server.Stop(ctx)

	switch {
	case err == nil:
		a.logger.Info().Dur("took", time.Since(start)).Msg("server shutdown gracefully")
	case errors.Is(err, server.ErrCancelled):
		a.logger.Warn().Err(err).Dur("took", time.Since(start)).Msg("graceful shutdown cut short, connections were aborted")
	default:
		return fmt.Errorf("error stopping server: %w", err)
	}

	return nil
}

// stopContext bounds the graceful stop by the shutdown timeout. A timeout
// of zero or less puts no deadline on it.
func (a *App) stopContext() (context.Context, context.CancelFunc) {
	if a.shutdownTimeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), a.shutdownTimeout)
}

// Addrs returns the addresses the server is listening on.
func (a *App) Addrs() []string {
	return a.server.Addrs()
}

// State returns the lifecycle state of the server.
func (a *App) State() server.State {
	return a.server.State()
}
