package domain

// Outbound text message handed to a messaging provider.
type NotificationRequest struct {
	Body string
	From string
	To   string
}

// Provider acknowledgement of a dispatched message.
type NotificationReceipt struct {
	MessageID string
}
