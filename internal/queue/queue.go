package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/avast/retry-go/v4"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/custodia-io/reward-ledger/internal/config"
	"github.com/custodia-io/reward-ledger/internal/observability/metrics"
	"github.com/custodia-io/reward-ledger/internal/types"
)

// QueueManager publishes ledger events to a durable RabbitMQ queue so
// downstream consumers (notifications, analytics) can react to them.
type QueueManager struct {
	cfg       *config.QueueConfig
	conn      *amqp.Connection
	channel   *amqp.Channel
	queueName string
}

func NewQueueManager(cfg *config.QueueConfig) (*QueueManager, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}

	queue, err := channel.QueueDeclare(
		cfg.QueueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", cfg.QueueName, err)
	}

	return &QueueManager{
		cfg:       cfg,
		conn:      conn,
		channel:   channel,
		queueName: queue.Name,
	}, nil
}

// SendLedgerEvent publishes a single event. Publishing is retried with a
// fixed delay; a final failure is counted and returned but must not abort
// the ledger operation that produced the event.
func (qm *QueueManager) SendLedgerEvent(ctx context.Context, event *types.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", event.Type, err)
	}

	err = retry.Do(
		func() error {
			publishCtx, cancel := context.WithTimeout(ctx, qm.cfg.PublishTimeout)
			defer cancel()

			return qm.channel.PublishWithContext(
				publishCtx,
				"",           // default exchange
				qm.queueName, // routing key
				false,        // mandatory
				false,        // immediate
				amqp.Publishing{
					ContentType:  "application/json",
					DeliveryMode: amqp.Persistent,
					Type:         string(event.Type),
					Body:         body,
				},
			)
		},
		retry.Context(ctx),
		retry.Attempts(qm.cfg.MaxRetryAttempts),
		retry.Delay(qm.cfg.RetryInterval),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Debug().
				Uint("attempt", n+1).
				Uint("max_attempts", qm.cfg.MaxRetryAttempts).
				Str("event_type", string(event.Type)).
				Err(err).
				Msg("failed to publish ledger event")
		}),
	)
	if err != nil {
		metrics.RecordQueueSendError()
		return fmt.Errorf("failed to publish event %s: %w", event.Type, err)
	}

	return nil
}

func (qm *QueueManager) Shutdown() {
	if err := qm.channel.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close rabbitmq channel")
	}
	if err := qm.conn.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close rabbitmq connection")
	}
}
