package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	MessengerTwilio = "twilio"
	MessengerAMQP   = "amqp"
)

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
}

type AMQPConfig struct {
	URL      string
	Exchange string
}

// Config is the process configuration, read from environment variables
// (optionally populated from a .env file by the caller).
type Config struct {
	AppEnv string
	Port   string

	GoogleMapsAPIKey  string
	DirectionsBaseURL string
	HTTPTimeout       time.Duration
	DurationSource    string

	Messenger  string
	FromNumber string
	Twilio     TwilioConfig
	AMQP       AMQPConfig

	DatabaseURL string
	SeedPath    string
}

// Get returns the trimmed value of key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Require returns the trimmed value of key or an error naming the missing variable.
func Require(key string) (string, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return v, nil
}

// Duration parses key with time.ParseDuration, falling back when unset.
func Duration(key string, fallback time.Duration) (time.Duration, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, v, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: duration must not be negative", key)
	}
	return d, nil
}

// Load reads and validates the full configuration.
// All missing required variables are reported together.
func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:            Get("APP_ENV", "development"),
		Port:              Get("PORT", "8080"),
		DirectionsBaseURL: Get("DIRECTIONS_BASE_URL", "https://maps.googleapis.com"),
		DurationSource:    Get("DURATION_SOURCE", "seconds"),
		Messenger:         strings.ToLower(Get("MESSENGER", MessengerTwilio)),
		AMQP: AMQPConfig{
			URL:      Get("AMQP_URL", ""),
			Exchange: Get("AMQP_EXCHANGE", "notifications"),
		},
		DatabaseURL: Get("DATABASE_URL", ""),
		SeedPath:    Get("SEED_PATH", "data/seeds/trips.json"),
	}

	var errs []error

	timeout, err := Duration("HTTP_TIMEOUT", 10*time.Second)
	if err != nil {
		errs = append(errs, err)
	}
	cfg.HTTPTimeout = timeout

	require := func(key string, dst *string) {
		v, err := Require(key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*dst = v
	}

	require("GOOGLE_MAPS_API_KEY", &cfg.GoogleMapsAPIKey)
	require("TWILIO_PHONE_NUMBER", &cfg.FromNumber)

	switch cfg.Messenger {
	case MessengerTwilio:
		require("TWILIO_ACCOUNT_SID", &cfg.Twilio.AccountSID)
		require("TWILIO_AUTH_TOKEN", &cfg.Twilio.AuthToken)
	case MessengerAMQP:
		require("AMQP_URL", &cfg.AMQP.URL)
	default:
		errs = append(errs, fmt.Errorf("MESSENGER must be %q or %q, got %q", MessengerTwilio, MessengerAMQP, cfg.Messenger))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}
