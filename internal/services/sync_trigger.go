package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

const syncPublishTimeout = 5 * time.Second

// SyncRequest is the message published when budgets changed locally.
type SyncRequest struct {
	ID          uuid.UUID `json:"id"`
	Entity      string    `json:"entity"`
	RequestedAt time.Time `json:"requested_at"`
}

type amqpSyncTrigger struct {
	conn       *amqp091.Connection
	channel    *amqp091.Channel
	exchange   string
	routingKey string
}

// NewAMQPSyncTrigger dials url and declares a durable direct exchange.
func NewAMQPSyncTrigger(url, exchange, routingKey string) (SyncTriggerInterface, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"direct", // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &amqpSyncTrigger{
		conn:       conn,
		channel:    channel,
		exchange:   exchange,
		routingKey: routingKey,
	}, nil
}

// Sync publishes a persistent budget sync request.
func (t *amqpSyncTrigger) Sync(ctx context.Context) error {
	body, err := json.Marshal(SyncRequest{
		ID:          uuid.New(),
		Entity:      "budgets",
		RequestedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal sync request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, syncPublishTimeout)
	defer cancel()

	err = t.channel.PublishWithContext(
		ctx,
		t.exchange,   // exchange
		t.routingKey, // routing key
		false,        // mandatory
		false,        // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish sync request: %w", err)
	}

	return nil
}

func (t *amqpSyncTrigger) Close() error {
	if t.channel != nil {
		t.channel.Close()
	}
	if t.conn != nil {
		return t.conn.Close()
	}
	return nil
}

type noopSyncTrigger struct {
	logger *slog.Logger
}

// NewNoopSyncTrigger returns a trigger for deployments without a sync transport.
func NewNoopSyncTrigger(logger *slog.Logger) SyncTriggerInterface {
	return &noopSyncTrigger{logger: logger}
}

func (t *noopSyncTrigger) Sync(ctx context.Context) error {
	t.logger.DebugContext(ctx, "sync transport not configured, skipping budget sync")
	return nil
}

func (t *noopSyncTrigger) Close() error {
	return nil
}
