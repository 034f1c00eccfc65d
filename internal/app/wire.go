package app

import (
	"eta-projector/internal/adapters/directions"
	"eta-projector/internal/adapters/messaging"
	"eta-projector/internal/config"
	"eta-projector/internal/ports"
	"eta-projector/internal/services"
	"fmt"
)

// NewMessenger builds the messenger selected by cfg.Messenger.
// The returned cleanup func is always non-nil.
func NewMessenger(cfg *config.Config) (ports.Messenger, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Messenger {
	case config.MessengerTwilio:
		m, err := messaging.NewTwilioMessenger(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken)
		if err != nil {
			return nil, noop, fmt.Errorf("new messenger: %w", err)
		}
		return m, noop, nil
	case config.MessengerAMQP:
		m, err := messaging.DialAMQPMessenger(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			return nil, noop, fmt.Errorf("new messenger: %w", err)
		}
		return m, m.Close, nil
	default:
		return nil, noop, fmt.Errorf("new messenger: unknown messenger %q", cfg.Messenger)
	}
}

// NewProjector wires the Google directions provider and the configured
// messenger into a Projector.
func NewProjector(cfg *config.Config) (*services.Projector, func() error, error) {
	src, err := services.ParseDurationSource(cfg.DurationSource)
	if err != nil {
		return nil, func() error { return nil }, fmt.Errorf("new projector: %w", err)
	}

	routes, err := directions.NewGoogleDirectionsProvider(cfg.GoogleMapsAPIKey, cfg.DirectionsBaseURL, cfg.HTTPTimeout)
	if err != nil {
		return nil, func() error { return nil }, fmt.Errorf("new projector: %w", err)
	}

	messenger, cleanup, err := NewMessenger(cfg)
	if err != nil {
		return nil, cleanup, err
	}

	projector, err := services.NewProjector(routes, messenger, cfg.FromNumber, src)
	if err != nil {
		_ = cleanup()
		return nil, func() error { return nil }, err
	}

	return projector, cleanup, nil
}
