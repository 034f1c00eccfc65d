package services

import (
	"context"
	"eta-projector/internal/domain"
	"eta-projector/internal/platform/obs"
	"eta-projector/internal/ports"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// 12-hour wall clock with AM/PM, zero-padded hour.
const departureLayout = "03:04 PM"

// FormatMessage renders the four-line ETA notification body.
// The traffic delay is truncated toward zero, not rounded.
func FormatMessage(info domain.RouteInfo, departure time.Time) string {
	return fmt.Sprintf(
		"Optimal Route from %s to %s:\n"+
			"Travel Time: %s (In traffic: %s)\n"+
			"Traffic Delay: ~%d minutes\n"+
			"Best Time to Leave: %s",
		info.StartAddress, info.EndAddress,
		info.Duration, info.DurationInTraffic,
		int(info.TrafficDelayMinutes),
		departure.Format(departureLayout),
	)
}

// SendNotification dispatches exactly one message describing info and departure.
// Provider errors are wrapped and returned; nothing is retried or recorded.
func SendNotification(
	ctx context.Context,
	messenger ports.Messenger,
	from string,
	info domain.RouteInfo,
	departure time.Time,
	recipientPhone string,
) (domain.NotificationReceipt, error) {
	req := domain.NotificationRequest{
		Body: FormatMessage(info, departure),
		From: from,
		To:   recipientPhone,
	}

	receipt, err := messenger.Send(ctx, req)
	if err != nil {
		return domain.NotificationReceipt{}, fmt.Errorf("send notification: %w", err)
	}

	obs.Logger(ctx).Info("notification sent",
		zap.String("run_id", obs.RunID(ctx)),
		zap.String("message_id", receipt.MessageID),
	)

	return receipt, nil
}
