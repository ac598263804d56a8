package main

import (
	"fmt"
	"os"

	"budgetbites/internal/config"
	"budgetbites/internal/database"
	"budgetbites/internal/logger"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Migration error: %v", err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: migrate <up|down|version>")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Connect without migrating so down and version report the store as it
	// actually is.
	db, err := database.Connect(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		sqlDB, dbErr := db.DB()
		if dbErr != nil {
			return
		}
		if closeErr := sqlDB.Close(); closeErr != nil {
			logger.Get().Warnf("database close error: %v", closeErr)
		}
	}()

	command := os.Args[1]

	switch command {
	case "up":
		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("migration up failed: %w", err)
		}
		logger.Get().Infof("Migrations applied successfully, schema version %d", database.SchemaVersion(db))

	case "down":
		if err := database.Rollback(db); err != nil {
			return fmt.Errorf("migration down failed: %w", err)
		}
		logger.Get().Infof("Rolled back to schema version %d", database.SchemaVersion(db))

	case "version":
		logger.Get().Infof("Schema version: %d", database.SchemaVersion(db))

	default:
		return fmt.Errorf("unknown command %q: expected up, down, or version", command)
	}

	return nil
}
