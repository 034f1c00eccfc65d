package main

import (
	"context"
	"errors"
	"eta-projector/internal/adapters/repositories"
	"eta-projector/internal/api"
	"eta-projector/internal/app"
	"eta-projector/internal/config"
	"eta-projector/internal/platform/db"
	"eta-projector/internal/platform/obs"
	"eta-projector/internal/ports"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// main is the application composition root.
// It wires concrete adapters (Google directions, messenger, Postgres) behind ports and starts the HTTP server.
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

	if err := run(logger); err != nil {
		logger.Error("server stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(logger *zap.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	projector, cleanup, err := app.NewProjector(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = cleanup() }()

	// Stored trips are optional; without DATABASE_URL only ad-hoc projections are served.
	var trips ports.TripRepository
	if cfg.DatabaseURL != "" {
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer conn.Close()

		if err := repositories.InitSchema(ctx, conn); err != nil {
			return err
		}
		trips = repositories.NewSQLTripRepository(conn)
	} else {
		logger.Info("DATABASE_URL not set; trip routes disabled")
	}

	router := api.NewRouter(logger, projector, trips)

	// Write timeout covers one directions round trip plus one messaging call.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      2*cfg.HTTPTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr), zap.String("messenger", cfg.Messenger))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

