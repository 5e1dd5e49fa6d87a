package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ReminderPayload is one expiring subscription the sender should nudge.
type ReminderPayload struct {
	SubscriptionID string `json:"subscription_id"`
	CustomerName   string `json:"customer_name"`
	Email          string `json:"email"`
	PlanName       string `json:"plan_name"`
	ExpiryDate     string `json:"expiry_date"` // YYYY-MM-DD
	DaysRemaining  int    `json:"days_remaining"`
}

type ReminderProducerInterface interface {
	PublishReminder(ctx context.Context, payload ReminderPayload) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishReminder(ctx context.Context, payload ReminderPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to RabbitMQ: %w", err)
	}

	return nil
}
