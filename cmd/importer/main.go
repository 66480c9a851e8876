// Command importer loads a YAML (or JSON) batch of import details and stores
// the valid rows in one transaction, printing the report as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"ecommerce/application/importacao"
	"ecommerce/cmd"
	"ecommerce/config"
	"ecommerce/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Import failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath, file, user string
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&file, "file", "", "Batch file to import")
	flag.StringVar(&user, "user", "importador", "User recorded as creator of the rows")
	flag.Parse()

	if file == "" {
		return fmt.Errorf("-file is required")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Log, cfg.App.Env); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	batch, err := importacao.LoadBatchFile(file)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	db, err := cmd.OpenDatabase(ctx, cfg, logger.Get())
	if err != nil {
		return fmt.Errorf("failed to connect to MySQL: %w", err)
	}
	defer cmd.CloseDatabase(db)

	services, err := cmd.NewServices(db, cfg, logger.Get())
	if err != nil {
		return err
	}

	report, err := services.Importacao.ImportarLote(ctx, *batch, user)
	if err != nil {
		return err
	}

	logger.Info("Import finished",
		zap.String("file", file),
		zap.Int("total", report.Total),
		zap.Int("importados", report.Importados),
		zap.Int("rejeitados", report.Rejeitados))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
