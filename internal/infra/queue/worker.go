package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ReminderSender is the contract for delivering one reminder (email
// today, maybe Telegram DM later).
type ReminderSender interface {
	SendExpiryReminder(to, name, planName string, daysRemaining int) error
}

// Worker consumes the reminder queue and hands each message to the
// sender. Malformed messages are rejected without requeue so they land
// in the DLQ instead of cycling forever.
type Worker struct {
	Channel *amqp.Channel
	Sender  ReminderSender
}

func NewWorker(ch *amqp.Channel, sender ReminderSender) *Worker {
	return &Worker{
		Channel: ch,
		Sender:  sender,
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
		log.Fatalf("[WORKER] failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload ReminderPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("[WORKER] invalid JSON, sending to DLQ: %s", err)
				d.Nack(false, false)
				continue
			}

			if err := w.Sender.SendExpiryReminder(payload.Email, payload.CustomerName, payload.PlanName, payload.DaysRemaining); err != nil {
				log.Printf("[WORKER] reminder for %s failed: %s", payload.Email, err)
				d.Nack(false, false)
				continue
			}

			log.Printf("[WORKER] reminder sent to %s (%s, %d days left)", payload.Email, payload.PlanName, payload.DaysRemaining)
			d.Ack(false)
		}
	}()

	log.Printf(" [*] Worker running, waiting on queue '%s'", queueName)
	<-forever
}
