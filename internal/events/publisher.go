package events

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher pushes booking lifecycle events to RabbitMQ. Publishing is
// best-effort: failures are logged and returned, never allowed to fail the
// booking operation that triggered them. A nil *Publisher is a valid no-op.
type Publisher struct {
	url string
	log *zap.Logger
}

func NewPublisher(url string, log *zap.Logger) *Publisher {
	if url == "" {
		return nil
	}
	return &Publisher{
		url: url,
		log: log.With(zap.String("component", "events")),
	}
}

// Publish marshals the payload and delivers it to the named durable queue.
func (p *Publisher) Publish(ctx context.Context, queue string, payload any) error {
	if p == nil {
		return nil
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Warn("Broker dial failed", zap.Error(err), zap.String("queue", queue))
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Warn("Broker channel open failed", zap.Error(err), zap.String("queue", queue))
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		p.log.Warn("Queue declare failed", zap.Error(err), zap.String("queue", queue))
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		p.log.Warn("Event marshal failed", zap.Error(err), zap.String("queue", queue))
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", queue, false, false, pub); err != nil {
		p.log.Warn("Event publish failed", zap.Error(err), zap.String("queue", queue))
		return err
	}

	return nil
}
