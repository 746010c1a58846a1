package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"TradeLite/pkg/cache"
	"TradeLite/pkg/config"
	xhttp "TradeLite/pkg/http"
	applogger "TradeLite/pkg/logger"
)

// App encapsulates the application lifecycle: HTTP server, cache backend
// and graceful shutdown.
type App struct {
	cfg        *config.Config
	log        *applogger.Logger
	cache      cache.Service
	handlers   []xhttp.Handler
	httpServer *xhttp.Server
}

// New creates the application with all dependencies.
func New(cfg *config.Config, log *applogger.Logger, cacheSvc cache.Service, handlers []xhttp.Handler) *App {
	return &App{
		cfg:      cfg,
		log:      log,
		cache:    cacheSvc,
		handlers: handlers,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	metricsPath := ""
	if a.cfg.Metrics.Enabled {
		metricsPath = a.cfg.Metrics.Path
		if metricsPath == "" {
			metricsPath = "/metrics"
		}
	}

	a.httpServer = xhttp.NewServer(a.handlers,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(metricsPath),
		xhttp.WithLogger(a.log),
	)

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}
	a.log.Info("server started",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("environment", a.cfg.Environment),
		applogger.String("cache_backend", a.cfg.Cache.Backend),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	return a.shutdown()
}

// shutdown gracefully stops all services.
func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.log.Warn("cache close error", applogger.Error(err))
		}
	}

	a.log.Info("shutdown complete")
	return nil
}
