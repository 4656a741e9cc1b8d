package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// SignupAlertPayload is published once per accepted signup. The worker sends
// the welcome email from it and decides whether sales gets pinged.
type SignupAlertPayload struct {
	EntryID           string `json:"entry_id"`
	Email             string `json:"email"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Company           string `json:"company"`
	Role              string `json:"role"`
	ExecutiveLevel    string `json:"executive_level"`
	Priority          string `json:"priority"`
	PriorityScore     int    `json:"priority_score"`
	EstimatedValue    int    `json:"estimated_value"`
	EstimatedWaitTime string `json:"estimated_wait_time"`
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

func (p *RabbitMQProducer) PublishSignupAlert(ctx context.Context, payload SignupAlertPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal signup alert: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish signup alert: %w", err)
	}

	return nil
}
