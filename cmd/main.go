package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "desk-pacing/internal/adapter/http"
	"desk-pacing/internal/adapter/postgres"
	"desk-pacing/internal/adapter/rabbitmq"
	"desk-pacing/internal/adapter/usecase"
	"desk-pacing/internal/config"
	"desk-pacing/internal/core/port"
	"desk-pacing/internal/db"
	"desk-pacing/internal/scheduler"
)

// main is the entry point of the pacing service. It loads configuration,
// optionally runs database migrations and demo seeding, wires the campaign
// repository, the pacing engine, the periodic scheduler and the HTTP
// server, then waits for a termination signal and shuts down gracefully.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("demo data seeded")
	}

	repo := postgres.NewCampaignRepository(pool)

	var publisher port.AlertPublisher
	if cfg.Rabbit.Enabled {
		pub, err := rabbitmq.NewPublisher(cfg.Rabbit.Addr, cfg.Rabbit.Queue, logger)
		if err != nil {
			logger.Error("rabbitmq connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer pub.Close()
		publisher = pub
	}

	svc := usecase.New(repo, nil, publisher, logger, usecase.Params{
		StoreTimeout: cfg.Pacing.StoreTimeout,
		Concurrency:  cfg.Pacing.Concurrency,
		AutoPause:    cfg.Pacing.AutoPause,
	})

	sched := scheduler.New(svc, repo, logger, cfg.Pacing.Interval, cfg.Pacing.StoreTimeout)
	go sched.Run(ctx)

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
