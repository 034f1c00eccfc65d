package main

import (
	"context"
	"database/sql"
	"eta-projector/internal/adapters/repositories"
	"eta-projector/internal/config"
	"eta-projector/internal/platform/db"
	"eta-projector/internal/platform/obs"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	envErr := godotenv.Load()

	logger, err := obs.NewLogger(config.Get("APP_ENV", "development"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if envErr != nil {
		logger.Info("no .env file found (using environment variables)")
	}

	databaseURL, err := config.Require("DATABASE_URL")
	if err != nil {
		logger.Fatal("missing configuration", zap.Error(err))
	}

	ctx := context.Background()

	conn, err := db.Open(ctx, databaseURL)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	defer conn.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/trips.json")
	if err := initAndSeed(ctx, logger, conn, seedPath); err != nil {
		logger.Error("init and seed", zap.Error(err))
		_ = conn.Close()
		_ = logger.Sync()
		os.Exit(1)
	}
}

func initAndSeed(ctx context.Context, logger *zap.Logger, conn *sql.DB, seedPath string) error {
	logger.Info("initializing database schema")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	logger.Info("schema ready")

	logger.Info("seeding database", zap.String("seed_path", seedPath))
	if err := repositories.SeedFromJSON(ctx, conn, seedPath); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	logger.Info("seeding complete")

	return nil
}
