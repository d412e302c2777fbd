package mq

import (
	"context"
	"encoding/json"
	"time"

	"stable-booking-api/internal/pkg/config"
	"stable-booking-api/internal/pkg/errs"
	"stable-booking-api/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

const queueBookingReviewed = "booking.reviewed"

func Connect(cfg config.MQConfig) (*amqp.Connection, func(), error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to connect to rabbitmq")
	}
	cleanup := func() {
		_ = conn.Close()
	}
	return conn, cleanup, nil
}

type Publisher struct {
	ch *amqp.Channel
}

// NewPublisher opens a channel and declares the durable review queue.
func NewPublisher(conn *amqp.Connection) (*Publisher, func(), error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to open rabbitmq channel")
	}

	if _, err := ch.QueueDeclare(
		queueBookingReviewed,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		return nil, nil, errs.Wrap(err, "failed to declare review queue")
	}

	cleanup := func() {
		_ = ch.Close()
	}
	return &Publisher{ch: ch}, cleanup, nil
}

func (p *Publisher) PublishReviewed(ctx context.Context, event shared.ReviewedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to marshal review event")
	}

	err = p.ch.PublishWithContext(ctx,
		"",                   // default exchange
		queueBookingReviewed, // routing key = queue name
		false,                // mandatory
		false,                // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		return errs.Wrap(err, "failed to publish review event")
	}
	return nil
}
