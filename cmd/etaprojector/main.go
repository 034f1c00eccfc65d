package main

import (
	"context"
	"errors"
	"eta-projector/internal/app"
	"eta-projector/internal/config"
	"eta-projector/internal/domain"
	"eta-projector/internal/platform/obs"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// etaprojector runs one projection: fetch live-traffic route, compute the
// departure time for the desired arrival and text it to the recipient.
func main() {
	envErr := godotenv.Load()

	logger, err := obs.NewLogger(config.Get("APP_ENV", "development"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if envErr != nil {
		logger.Debug("no .env file found (using environment variables)")
	}

	if err := run(logger, os.Args[1:]); err != nil {
		logger.Error("eta projection failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(logger *zap.Logger, args []string) error {
	fs := pflag.NewFlagSet("etaprojector", pflag.ContinueOnError)
	origin := fs.String("origin", "123 Main St, Albany, New York", "trip origin address")
	destination := fs.String("destination", "456 Elm St, New York City, New York", "trip destination address")
	arriveIn := fs.Duration("arrive-in", 2*time.Hour, "desired arrival, relative to now")
	to := fs.String("to", config.Get("RECIPIENT_PHONE", ""), "recipient phone number (E.164)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if strings.TrimSpace(*to) == "" {
		return errors.New("--to (or RECIPIENT_PHONE) is required")
	}
	if *arriveIn < 0 {
		return errors.New("--arrive-in must not be negative")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	projector, cleanup, err := app.NewProjector(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = cleanup() }()

	ctx := obs.WithLogger(context.Background(), logger)

	res, err := projector.Run(ctx, domain.ProjectionRequest{
		Origin:         *origin,
		Destination:    *destination,
		DesiredArrival: time.Now().Add(*arriveIn),
		RecipientPhone: *to,
	})
	if err != nil {
		return err
	}

	switch res.Status {
	case domain.StatusAborted:
		fmt.Println(res.Reason)
	case domain.StatusNotified:
		fmt.Printf("Notification sent: %s\n", res.Receipt.MessageID)
	}

	return nil
}
