package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/earthboundkid/versioninfo/v2"
	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/lmittmann/tint"
	"github.com/riverqueue/river"
	"golang.org/x/sync/errgroup"

	"github.com/beaconhq/beacon/internal/background"
	"github.com/beaconhq/beacon/internal/background/action_runner_worker"
	"github.com/beaconhq/beacon/internal/background/metric_sampler_worker"
	"github.com/beaconhq/beacon/internal/storage"
	"github.com/beaconhq/beacon/internal/web"
)

type Config struct {
	DevMode bool `split_words:"true" default:"true"`

	// Database configuration
	Database storage.DatabaseConfig

	// Web configuration
	Web web.Config

	// HTTP configuration
	HTTPAddr string `split_words:"true" default:"127.0.0.1:5002"`

	// Error reporting
	SentryDSN string `split_words:"true"`
}

func main() {
	help := flag.Bool("help", false, "Show help")
	flag.Parse()

	if *help {
		_ = envconfig.Usage("beacon", &Config{})
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wg, ctx := errgroup.WithContext(ctx)
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	})))

	slog.Info("running version", "version", versioninfo.Short())
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Error("error loading .env file", "error", err)
		os.Exit(1)
	}

	var c Config
	if err := envconfig.Process("beacon", &c); err != nil {
		slog.Error("error loading configuration", "error", err)
		os.Exit(1)
	}

	if c.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: c.SentryDSN}); err != nil {
			slog.Error("error setting up sentry", "error", err)
			os.Exit(1)
		}
		defer sentry.Flush(2 * time.Second)
	}

	// Database setup
	if c.DevMode {
		if err := storage.StartPostgresContainer(ctx, c.Database); err != nil {
			slog.Error("error setting up dev database", "error", err)
			os.Exit(1)
		}
	}
	db, err := storage.New(ctx, c.Database.URL())
	if err != nil {
		slog.Error("error setting up database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	actionStore := storage.NewActionStore(db)
	metricStore := storage.NewMetricStore(db)

	// Background job setup
	periodicJobs, err := background.PeriodicJobs(ctx, actionStore, metricStore)
	if err != nil {
		slog.Error("error building periodic jobs", "error", err)
		os.Exit(1)
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, action_runner_worker.New(actionStore))
	river.AddWorker(workers, metric_sampler_worker.New(metricStore))
	riverClient, err := background.New(db, workers, periodicJobs)
	if err != nil {
		slog.Error("error setting up background worker", "error", err)
		os.Exit(1)
	}

	// HTTP server setup
	handler, err := web.New(ctx, c.Web, db, riverClient)
	if err != nil {
		slog.Error("error setting up HTTP server", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		BaseContext: func(listener net.Listener) context.Context { return ctx },
		Addr:        c.HTTPAddr,
		Handler:     handler,
	}

	wg.Go(func() error {
		slog.Info("starting river client")
		return riverClient.Start(ctx)
	})
	wg.Go(func() error {
		slog.Info("starting HTTP server", "addr", c.HTTPAddr)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}

		return nil
	})
	wg.Go(func() error {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

		select {
		case <-ctx.Done():
		case <-c:
			slog.Info("shutting down")
			cancel()

			if err := server.Shutdown(context.Background()); err != nil {
				return err
			}
		}

		return nil
	})

	if err := wg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("error running server", "error", err)
	}
}
