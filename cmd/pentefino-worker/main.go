package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"pentefino/internal/amqp"
	"pentefino/internal/config"
	applog "pentefino/internal/log"
	"pentefino/internal/storage"
	"pentefino/internal/worker"
)

func main() {
	// Load .env for local development (ignore errors in production/docker).
	_ = godotenv.Load()

	logger := applog.New(slog.LevelInfo, "pentefino-worker")
	applog.SetDefault(logger)

	logger.Info("Starting pentefino-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	blobs, err := storage.NewBlobStore(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to open blob store", "error", err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer blobs.Close()

	var pusher worker.RemotePusher
	if cfg.RemoteSyncURL != "" {
		pusher = worker.NewHTTPPusher(cfg.RemoteSyncURL)
		logger.Info("Remote sync enabled", "url", cfg.RemoteSyncURL)
	} else {
		logger.Info("Remote sync disabled - no REMOTE_SYNC_URL provided")
	}

	syncWorker := worker.NewSyncWorker(blobs, pusher)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// On startup, sweep any records a lost message might have stranded.
	if err := syncWorker.ProcessPending(ctx); err != nil {
		logger.Error("Startup sweep failed", "error", err)
		// Don't exit - continue with normal operation.
	}

	g, ctx := errgroup.WithContext(ctx)

	if cfg.AMQPURL != "" {
		amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", "error", err)
			os.Exit(1)
		}
		defer amqpClient.Close()

		g.Go(func() error {
			return amqpClient.ConsumeSync(ctx, syncWorker.HandleSyncMessage)
		})
	} else {
		logger.Info("Sync queue disabled - relying on periodic sweeps only")
	}

	// Periodic backstop for lost queue messages.
	g.Go(func() error {
		ticker := time.NewTicker(cfg.SyncInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				if err := syncWorker.ProcessPending(ctx); err != nil {
					logger.Error("Periodic sweep failed", "error", err)
				}
			}
		}
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		logger.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Worker stopped gracefully")
}
