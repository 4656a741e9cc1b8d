package queue

import (
	"encoding/json"
	"log"

	"github.com/napoleonai/waitlist-api/internal/infra/http/middleware"
	amqp "github.com/rabbitmq/amqp091-go"
)

// EmailService sends the post-signup welcome email.
type EmailService interface {
	SendWelcome(to, firstName, waitTime string) error
}

// HighValueNotifier pings the sales channel about signups worth chasing.
type HighValueNotifier interface {
	PostHighValueAlert(payload SignupAlertPayload) error
}

type Worker struct {
	Channel  *amqp.Channel
	Email    EmailService
	Notifier HighValueNotifier

	// Entries with an estimated value at or above this get a sales alert.
	HighValueThreshold int
}

func NewWorker(ch *amqp.Channel, email EmailService, notifier HighValueNotifier, threshold int) *Worker {
	return &Worker{
		Channel:            ch,
		Email:              email,
		Notifier:           notifier,
		HighValueThreshold: threshold,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual is safer)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("[WORKER] failed to register consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload SignupAlertPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("[WORKER] malformed alert payload: %s", err)
				// Poison message, reject without requeue so the queue keeps moving.
				d.Nack(false, false)
				continue
			}

			if err := w.process(payload); err != nil {
				log.Printf("[WORKER] failed to process signup alert for %s: %s", payload.Email, err)
				d.Nack(false, false)
				continue
			}

			log.Printf("[WORKER] signup alert handled for %s (%s, priority %s)",
				payload.Email, payload.ExecutiveLevel, payload.Priority)
			d.Ack(false)
		}
	}()

	log.Printf(" [*] Worker running, waiting on queue '%s'", queueName)
	<-forever
}

func (w *Worker) process(payload SignupAlertPayload) error {
	if w.Email != nil {
		if err := w.Email.SendWelcome(payload.Email, payload.FirstName, payload.EstimatedWaitTime); err != nil {
			middleware.RecordNotificationError("email")
			return err
		}
	}

	// The sales alert is best-effort: a dead Slack webhook must not push the
	// welcome email into the DLQ.
	if w.Notifier != nil && payload.EstimatedValue >= w.HighValueThreshold {
		if err := w.Notifier.PostHighValueAlert(payload); err != nil {
			middleware.RecordNotificationError("slack")
			log.Printf("[WORKER] high-value alert failed for %s: %s", payload.Email, err)
		}
	}

	return nil
}
