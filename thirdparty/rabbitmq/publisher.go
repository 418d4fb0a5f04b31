package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/muhammadheryan/pempek-storefront/model"
	"github.com/rabbitmq/amqp091-go"
)

type Publisher struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
}

func NewPublisher(cfg Config) (*Publisher, error) {
	conn, channel, err := dial(cfg)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel, exchange: cfg.Exchange}, nil
}

// PublishOrderPlaced announces an order the backend accepted.
func (p *Publisher) PublishOrderPlaced(ctx context.Context, event model.OrderPlacedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(
		ctx,
		p.exchange, // exchange
		RoutingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    event.OrderID,
			Timestamp:    event.PlacedAt,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
