package server

import (
	"context"
	"fmt"

	"FxRisk/pkg/config"
	xhttp "FxRisk/pkg/http"
	applogger "FxRisk/pkg/logger"
)

// HTTPServer is the part of xhttp.Server the app drives.
type HTTPServer interface {
	Start() error
	Errors() <-chan error
	Stop(ctx context.Context) error
}

var _ HTTPServer = (*xhttp.Server)(nil)

// App encapsulates the application lifecycle.
type App struct {
	cfg    *config.Config
	logger *applogger.Logger
	http   HTTPServer
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, l *applogger.Logger, srv HTTPServer) *App {
	return &App{cfg: cfg, logger: l, http: srv}
}

// Run starts the HTTP server and blocks until ctx is cancelled or the server
// fails. Infrastructure is released by the DI cleanup afterwards.
func (a *App) Run(ctx context.Context) error {
	if err := a.http.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("app started",
		applogger.String("env", a.cfg.Environment),
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("cache", a.cfg.Cache.Backend),
		applogger.Bool("kafka", a.cfg.Kafka.Enabled),
	)

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-a.http.Errors():
		a.logger.Error("http server error", applogger.Error(err))
		runErr = fmt.Errorf("http server: %w", err)
	}

	return a.shutdown(runErr)
}

func (a *App) shutdown(runErr error) error {
	a.logger.Info("shutting down...")
	if err := a.http.Stop(context.Background()); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
		if runErr == nil {
			runErr = err
		}
	}
	a.logger.Info("shutdown complete")
	return runErr
}
