package rabbitmq

import (
	"fmt"

	"github.com/rabbitmq/amqp091-go"
)

// RoutingKey binds the order queue to the exchange.
const RoutingKey = "order_placed"

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Exchange string
	Queue    string
}

func (c Config) dsn() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/", c.User, c.Password, c.Host, c.Port)
}

// dial opens a channel and declares the durable direct exchange, the queue
// and their binding. Publisher and consumer declare the same topology so
// either may start first.
func dial(cfg Config) (*amqp091.Connection, *amqp091.Channel, error) {
	conn, err := amqp091.Dial(cfg.dsn())
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	err = channel.ExchangeDeclare(
		cfg.Exchange, // name
		"direct",     // type
		true,         // durable
		false,        // auto-delete
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}

	_, err = channel.QueueDeclare(
		cfg.Queue, // name
		true,      // durable
		false,     // auto-delete
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}

	err = channel.QueueBind(
		cfg.Queue,    // queue name
		RoutingKey,   // routing key
		cfg.Exchange, // exchange
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}

	return conn, channel, nil
}
