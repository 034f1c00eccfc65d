package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"eta-projector/internal/domain"
	"eta-projector/internal/platform/obs"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const smsRoutingKey = "notification.sms"

// Publisher is the subset of *amqp.Channel used to hand messages to the broker.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type smsMessage struct {
	MessageID string    `json:"message_id"`
	Body      string    `json:"body"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	CreatedAt time.Time `json:"created_at"`
}

// AMQPMessenger hands notifications to an SMS gateway through a RabbitMQ topic exchange.
// The receipt's MessageID is generated locally and travels as the AMQP message id.
type AMQPMessenger struct {
	pub      Publisher
	exchange string
	conn     *amqp.Connection
	ch       *amqp.Channel
}

func NewAMQPMessenger(pub Publisher, exchange string) (*AMQPMessenger, error) {
	if pub == nil {
		return nil, errors.New("amqp messenger: publisher is nil")
	}
	if exchange == "" {
		return nil, errors.New("amqp messenger: exchange must not be empty")
	}
	return &AMQPMessenger{pub: pub, exchange: exchange}, nil
}

// DialAMQPMessenger connects to the broker and declares a durable topic exchange.
func DialAMQPMessenger(url, exchange string) (*AMQPMessenger, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp messenger: dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp messenger: open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("amqp messenger: declare exchange %q: %w", exchange, err)
	}

	m, err := NewAMQPMessenger(ch, exchange)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	m.conn, m.ch = conn, ch

	return m, nil
}

func (m *AMQPMessenger) Send(
	ctx context.Context,
	req domain.NotificationRequest,
) (_ domain.NotificationReceipt, err error) {
	defer obs.Time(ctx, "amqp.Send")(&err)

	msg := smsMessage{
		MessageID: uuid.NewString(),
		Body:      req.Body,
		From:      req.From,
		To:        req.To,
		CreatedAt: time.Now().UTC(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return domain.NotificationReceipt{}, fmt.Errorf("amqp messenger: marshal message: %w", err)
	}

	if err := m.pub.PublishWithContext(ctx, m.exchange, smsRoutingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.MessageID,
		Timestamp:    msg.CreatedAt,
		Body:         body,
	}); err != nil {
		return domain.NotificationReceipt{}, fmt.Errorf("amqp messenger: publish to %q: %w", m.exchange, err)
	}

	return domain.NotificationReceipt{MessageID: msg.MessageID}, nil
}

// Close releases the channel and connection opened by DialAMQPMessenger.
func (m *AMQPMessenger) Close() error {
	var errs []error
	if m.ch != nil {
		errs = append(errs, m.ch.Close())
	}
	if m.conn != nil {
		errs = append(errs, m.conn.Close())
	}
	m.ch, m.conn = nil, nil
	return errors.Join(errs...)
}
