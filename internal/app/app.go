package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/randomname124290358349/myTools/internal/catalog"
	"github.com/randomname124290358349/myTools/internal/http/health"
	"github.com/randomname124290358349/myTools/internal/timeutil"
)

// App controls the HTTP server lifecycle.
type App struct {
	baseCtx         context.Context
	server          *http.Server
	health          *health.Handler
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

// Routes registers its endpoints on a mux.
type Routes interface {
	Register(mux *http.ServeMux)
}

// New initializes the HTTP server with API and health endpoints.
func New(baseCtx context.Context, serverCfg catalog.ServerConfig, routes Routes, active func() int, logger *slog.Logger, shutdownTimeout time.Duration) (*App, error) {
	if routes == nil {
		return nil, fmt.Errorf("routes is nil")
	}
	if baseCtx == nil {
		return nil, fmt.Errorf("base context is nil")
	}

	readTimeout := timeutil.ParseDurationOrDefault(serverCfg.HTTP.ReadTimeout, 15*time.Second)
	// Streams stay open for as long as the process runs; writes are not
	// bounded unless the catalog says otherwise.
	writeTimeout := timeutil.ParseDurationOrDefault(serverCfg.HTTP.WriteTimeout, 0)
	idleTimeout := timeutil.ParseDurationOrDefault(serverCfg.HTTP.IdleTimeout, 60*time.Second)

	healthHandler := health.New(active)
	mux := http.NewServeMux()
	routes.Register(mux)
	mux.HandleFunc("/healthz", healthHandler.Healthz)
	mux.HandleFunc("/readyz", healthHandler.Readyz)

	srv := &http.Server{
		Addr:         serverCfg.HTTP.Listen,
		Handler:      mux,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	if shutdownTimeout == 0 {
		shutdownTimeout = timeutil.ParseDurationOrDefault(serverCfg.ShutdownTimeout, 10*time.Second)
	}

	return &App{
		baseCtx:         baseCtx,
		server:          srv,
		health:          healthHandler,
		logger:          logger,
		shutdownTimeout: shutdownTimeout,
	}, nil
}

// Run starts the HTTP server and blocks until shutdown.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.health.SetReady()
		if a.logger != nil {
			a.logger.Info("http server started", "addr", a.server.Addr)
		}
		errCh <- a.server.ListenAndServe()
	}()

	for {
		select {
		case <-ctx.Done():
			if a.logger != nil {
				a.logger.Info("shutdown requested")
			}
			return a.shutdown()
		case err := <-errCh:
			if err == nil || errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			if a.logger != nil {
				a.logger.Error("http server error", "error", err)
			}
			return err
		}
	}
}

func (a *App) shutdown() error {
	a.health.SetNotReady()
	ctx, cancel := context.WithTimeout(a.baseCtx, a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
