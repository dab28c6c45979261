package main

import (
	"context"
	"fmt"
	"os"

	"marine-platform/internal/config"
	"marine-platform/internal/registry"
	"marine-platform/internal/repository"
	"marine-platform/internal/services"
	"marine-platform/pkg/database"
	"marine-platform/pkg/logging"
	"marine-platform/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := logging.NewStructuredLogger("marine-archiver", "1.0.0", logging.ParseLevel(cfg.Logging.Level))

	ctx := context.Background()
	logger.Info(ctx, "[STARTUP] Starting archive publication", logging.Fields{
		"db_host": cfg.Database.Host,
		"db_name": cfg.Database.Database,
	})

	// Initialize metrics collector
	metricsCollector := metrics.NewCollector("marine_archiver")

	// Initialize database
	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
	}

	db, err := database.NewPostgresDB(dbConfig, logger, metricsCollector)
	if err != nil {
		logger.Fatal(ctx, "[STARTUP_ERROR] Failed to connect to database", logging.Fields{}, err)
	}
	defer db.Close()

	// Wire up the publication pipeline
	archiveRepo := repository.NewArchiveRepository(db, logger, metricsCollector)
	archiveService := services.NewArchiveService(registry.New(), archiveRepo, logger, metricsCollector)

	counts, err := archiveService.PublishAll(ctx)
	if err != nil {
		logger.Fatal(ctx, "[ARCHIVE_ERROR] Archive publication failed", logging.Fields{
			"partial_counts": counts,
		}, err)
	}

	for dataset, count := range counts {
		fmt.Printf("%-20s %d records\n", dataset, count)
	}
	fmt.Println("Archive publication completed successfully")
}
