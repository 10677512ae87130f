package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quoinhq/quoin/internal/app"
	"github.com/quoinhq/quoin/internal/observability"
	"github.com/quoinhq/quoin/internal/platform/db"
	"github.com/quoinhq/quoin/internal/system"
	"github.com/quoinhq/quoin/internal/users"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)
	logger.Info("startup", slog.String("env", cfg.AppEnv))

	provider := db.NewProvider()
	if err := provider.Init(ctx, cfg.DatabaseURL()); err != nil {
		logger.Error("init postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer provider.Teardown()

	var metrics *observability.Metrics
	if cfg.MetricsEnabled {
		metrics = observability.NewMetrics()
	}

	systemHandler, err := system.NewHandler(logger, system.NewPinger(provider))
	if err != nil {
		logger.Error("build system handler", slog.Any("error", err))
		os.Exit(1)
	}
	usersHandler := users.NewHandler(logger, users.NewResolver(provider))

	router := app.NewRouter(app.RouterParams{
		Logger:        logger,
		Config:        cfg,
		SystemHandler: systemHandler,
		UsersHandler:  usersHandler,
		Metrics:       metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
