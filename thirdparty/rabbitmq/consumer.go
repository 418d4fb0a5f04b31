package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/muhammadheryan/pempek-storefront/model"
	"github.com/muhammadheryan/pempek-storefront/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// OrderHandler processes one order event. Returning an error requeues it.
type OrderHandler func(ctx context.Context, event model.OrderPlacedEvent) error

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	queue   string
}

func NewConsumer(cfg Config) (*Consumer, error) {
	conn, channel, err := dial(cfg)
	if err != nil {
		return nil, err
	}
	return &Consumer{conn: conn, channel: channel, queue: cfg.Queue}, nil
}

// Start consumes the order queue one message at a time until ctx is done or
// the channel closes. The returned channel is closed when consumption stops.
func (c *Consumer) Start(ctx context.Context, handler OrderHandler) (<-chan struct{}, error) {
	if err := c.channel.Qos(1, 0, false); err != nil {
		return nil, err
	}

	msgs, err := c.channel.Consume(
		c.queue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					logger.Warn("[Consumer.Start] delivery channel closed")
					return
				}
				handle(ctx, msg, handler)
			}
		}
	}()

	return done, nil
}

// handle acks malformed payloads since they can never succeed, and nacks with
// requeue when the handler fails.
func handle(ctx context.Context, msg amqp091.Delivery, handler OrderHandler) {
	var event model.OrderPlacedEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		logger.Error("[Consumer.handle] failed to unmarshal message", zap.String("error", err.Error()))
		_ = msg.Ack(false)
		return
	}

	if err := handler(ctx, event); err != nil {
		logger.Error("[Consumer.handle] handler failed",
			zap.String("order_id", event.OrderID),
			zap.String("error", err.Error()),
		)
		_ = msg.Nack(false, true)
		return
	}

	_ = msg.Ack(false)
	logger.Info("[Consumer.handle] order event processed", zap.String("order_id", event.OrderID))
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
