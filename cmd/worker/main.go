package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"ecommerce/cmd"
	"ecommerce/config"
	"ecommerce/infrastructure/persistence/mysql"
	"ecommerce/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Worker startup failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := parseConfigPath()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Log, cfg.App.Env); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	db, err := cmd.OpenDatabase(ctx, cfg, logger.Get())
	if err != nil {
		return fmt.Errorf("failed to connect to MySQL: %w", err)
	}
	defer cmd.CloseDatabase(db)

	publisher, closePublisher, err := cmd.NewOutboxPublisher(ctx, cfg, logger.Get())
	if err != nil {
		return fmt.Errorf("failed to create outbox publisher: %w", err)
	}
	defer closePublisher()

	worker, err := mysql.NewOutboxWorker(
		mysql.NewOutboxRepository(db),
		publisher,
		logger.Get(),
		cfg.Worker.PollInterval,
		cfg.Worker.BatchSize,
		cfg.Worker.MaxRetries,
	)
	if err != nil {
		return fmt.Errorf("failed to create outbox worker: %w", err)
	}

	logger.Info("Outbox worker started",
		zap.String("publisher", cfg.Worker.Publisher),
		zap.Duration("poll_interval", cfg.Worker.PollInterval),
		zap.Int("batch_size", cfg.Worker.BatchSize),
		zap.Int("max_retries", cfg.Worker.MaxRetries),
	)

	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("outbox worker exited with error: %w", err)
	}

	logger.Info("Outbox worker stopped")
	return nil
}

func parseConfigPath() string {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.Parse()
	return configPath
}
