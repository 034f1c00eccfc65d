package ports

import (
	"context"
	"eta-projector/internal/domain"
)

// Contract for dispatching a single text message through a messaging provider.
type Messenger interface {
	Send(ctx context.Context, req domain.NotificationRequest) (domain.NotificationReceipt, error)
}
