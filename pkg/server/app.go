package server

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	drepo "BioPulse/internal/domain/repository"
	internalrepo "BioPulse/internal/repository"
	"BioPulse/internal/usecase"
	"BioPulse/pkg/config"
	xhttp "BioPulse/pkg/http"
	applogger "BioPulse/pkg/logger"
)

// App encapsulates the application lifecycle: warm start, the periodic
// collection schedule, the HTTP server, and graceful shutdown.
type App struct {
	cfg        *config.Config
	collector  *usecase.Collector
	store      drepo.SnapshotStore
	cacheSink  *internalrepo.CacheSink
	handler    xhttp.Handler
	log        *applogger.Logger
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	collector *usecase.Collector,
	store drepo.SnapshotStore,
	cacheSink *internalrepo.CacheSink,
	handler xhttp.Handler,
	log *applogger.Logger,
) *App {
	return &App{
		cfg:       cfg,
		collector: collector,
		store:     store,
		cacheSink: cacheSink,
		handler:   handler,
		log:       log,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.warmStart(ctx)

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(a.cfg.Metrics.Path),
	)
	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}
	a.log.Info("http server started", applogger.Int("port", a.cfg.Server.Port))

	go a.schedule(ctx)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	cancel()
	return a.shutdown()
}

// warmStart seeds the store from the cache so a restarted process serves the
// previous generation instead of empty lists.
func (a *App) warmStart(ctx context.Context) {
	if !a.cfg.Cache.Enabled || a.cacheSink == nil {
		return
	}
	snap, err := a.cacheSink.Restore(ctx)
	if err != nil {
		a.log.Warn("snapshot warm start failed", applogger.Error(err))
		return
	}
	if snap == nil {
		return
	}
	a.store.Replace(snap)
	a.log.Info("snapshot restored from cache",
		applogger.Int("companies", len(snap.Companies)),
		applogger.Any("collected_at", snap.CollectedAt))
}

// schedule runs the pipeline once at startup (when configured) and then on
// every tick. A failed run only logs; the schedule keeps going.
func (a *App) schedule(ctx context.Context) {
	if a.cfg.Collector.InitialRun {
		a.runOnce(ctx)
	}

	ticker := time.NewTicker(a.cfg.Collector.Interval)
	defer ticker.Stop()
	a.log.Info("collection schedule started",
		applogger.Duration("interval", a.cfg.Collector.Interval))

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.runOnce(ctx)
		}
	}
}

func (a *App) runOnce(ctx context.Context) {
	res, err := a.collector.Collect(ctx, 0)
	if err != nil {
		if errors.Is(err, usecase.ErrRunInFlight) {
			a.log.Debug("scheduled run skipped, collection already running")
			return
		}
		a.log.Error("scheduled collection failed", applogger.Error(err))
		return
	}
	a.log.Info("scheduled collection done",
		applogger.String("status", string(res.Status)),
		applogger.Strings("degraded", res.Degraded))
}

// shutdown gracefully stops the HTTP server.
func (a *App) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
		return err
	}
	a.log.Info("shutdown complete")
	return nil
}
