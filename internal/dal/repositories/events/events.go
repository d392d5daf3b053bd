package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/streadway/amqp"

	"github.com/vinocafe/order-svc/internal/dal/interfaces/ioutboxrepo"
	"github.com/vinocafe/order-svc/internal/dal/rabbitmq"
	"github.com/vinocafe/order-svc/internal/service/models/order"
	"github.com/vinocafe/order-svc/internal/service/models/outbox"
)

const (
	orderCreatedQueue = "oms.order.created"
	maxRetries        = 5
)

// OrderEventPublisher publishes order lifecycle events to RabbitMQ. When a
// publish fails the event is parked in the outbox table and retried by the
// outbox worker, so a broker hiccup never loses an event.
type OrderEventPublisher struct {
	client     *rabbitmq.Client
	outboxRepo ioutboxrepo.IOutboxRepository
	queue      amqp.Queue
}

// NewOrderEventPublisher creates a publisher bound to the order-created queue.
func NewOrderEventPublisher(client *rabbitmq.Client, outboxRepo ioutboxrepo.IOutboxRepository) *OrderEventPublisher {
	queue, err := client.DeclareQueue(rabbitmq.DeclareQueueConfig{
		Name:       orderCreatedQueue,
		Durable:    false,
		AutoDelete: false,
		Exclusive:  false,
	})
	if err != nil {
		panic(err)
	}

	return &OrderEventPublisher{
		client:     client,
		outboxRepo: outboxRepo,
		queue:      queue,
	}
}

// PublishOrderCreated sends the materialized order as JSON. On broker failure
// the message goes to the outbox instead of failing the caller.
func (p *OrderEventPublisher) PublishOrderCreated(ctx context.Context, o order.Order) error {
	payload, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	err = p.client.Channel().Publish(
		"",
		p.queue.Name,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        payload,
		},
	)
	if err == nil {
		return nil
	}

	now := time.Now()
	outboxErr := p.outboxRepo.Insert(ctx, outbox.OutboxMessage{
		QueueName:   p.queue.Name,
		RoutingKey:  p.queue.Name,
		Payload:     payload,
		ContentType: "application/json",
		MaxRetries:  maxRetries,
		LastError:   err.Error(),
		CreatedAt:   now,
		UpdatedAt:   now,
		NextRetryAt: now,
	})
	if outboxErr != nil {
		return fmt.Errorf("failed to publish order event and park it in outbox: %w", outboxErr)
	}

	return nil
}
