package messaging

import (
	"context"
	"eta-projector/internal/domain"
	"fmt"
)

// MockMessenger records every request and answers with sequential ids,
// or with Err when set.
type MockMessenger struct {
	Sent []domain.NotificationRequest
	Err  error
}

func (m *MockMessenger) Send(ctx context.Context, req domain.NotificationRequest) (domain.NotificationReceipt, error) {
	m.Sent = append(m.Sent, req)
	if m.Err != nil {
		return domain.NotificationReceipt{}, m.Err
	}
	return domain.NotificationReceipt{MessageID: fmt.Sprintf("SM%04d", len(m.Sent))}, nil
}
