package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"compliancemap/internal/api"
	"compliancemap/internal/api/handler/v1handler"
	"compliancemap/internal/config"
	"compliancemap/internal/coverage"
	"compliancemap/internal/loader"
	"compliancemap/pkg/logger"
	"compliancemap/pkg/metrics"
)

// setupSource picks the mapping source: the JSON file when a mapping path
// is configured (with optional hot-reload), postgres otherwise. It returns
// the source and a cleanup function.
func setupSource(ctx context.Context, cfg *config.Config) (coverage.Source, func()) {
	if cfg.Mapping.Path != "" {
		store, err := loader.NewStore(ctx, cfg.Mapping.Path)
		if err != nil {
			logger.Fatal(ctx, "could not load mapping file", zap.Error(err))
		}
		logger.Info(ctx, "serving mapping from file", zap.String("path", cfg.Mapping.Path))

		if !cfg.Mapping.Watch {
			return store, func() {}
		}

		watcher, err := loader.NewWatcher(ctx, store)
		if err != nil {
			logger.Fatal(ctx, "could not watch mapping file", zap.Error(err))
		}

		return store, func() {
			if err := watcher.Close(); err != nil {
				logger.Warn(ctx, "could not close mapping watcher", zap.Error(err))
			}
		}
	}

	pgsql, closePg := getPostgres(ctx, cfg)

	return pgsql, closePg
}

// setupService builds the coverage service with metrics and the optional
// redis memoization layer.
func setupService(ctx context.Context, cfg *config.Config, source coverage.Source) (coverage.Service, func()) {
	mp, err := metrics.NewMeterProvider()
	if err != nil {
		logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
	}

	svc, err := coverage.NewService(source, mp)
	if err != nil {
		logger.Fatal(ctx, "could not create coverage service", zap.Error(err))
	}

	if cfg.Redis.URL == "" {
		return svc, func() {}
	}

	client, err := coverage.NewRedisClient(ctx, cfg.Redis.URL)
	if err != nil {
		logger.Fatal(ctx, "could not connect to redis", zap.Error(err))
	}
	logger.Info(ctx, "coverage memoization enabled", zap.Duration("ttl", cfg.Redis.TTL))

	return coverage.NewCachedService(svc, source, client, cfg.Redis.TTL), func() {
		if err := client.Close(); err != nil {
			logger.Warn(ctx, "could not close redis client", zap.Error(err))
		}
	}
}

func setupServer(ctx context.Context, cfg *config.Config, svc coverage.Service) func(ctx context.Context) {
	server := api.NewServer(
		api.Deps{Deps: v1handler.Deps{Coverage: svc}},
		api.NewOptions(cfg),
	)

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the coverage mapping API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			source, closeSource := setupSource(ctx, cfg)
			defer closeSource()

			svc, closeService := setupService(ctx, cfg, source)
			defer closeService()

			stopWebserver := setupServer(ctx, cfg, svc)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
