package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/pempek-storefront/cmd/config"
	"github.com/muhammadheryan/pempek-storefront/thirdparty/rabbitmq"
	"github.com/muhammadheryan/pempek-storefront/thirdparty/telegram"
	"github.com/muhammadheryan/pempek-storefront/utils/logger"
	"go.uber.org/zap"
)

// notifier consumes order events published by the storefront and forwards
// them to the vendor's Telegram chat.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	notifier := telegram.NewNotifier(telegram.Config{
		BotToken: cfg.Telegram.BotToken,
		ChatID:   cfg.Telegram.ChatID,
		APIURL:   cfg.Telegram.APIURL,
	}, nil)
	if !notifier.Enabled() {
		logger.Warn("Telegram credentials not configured, orders will only be logged")
	}

	consumer, err := rabbitmq.NewConsumer(rabbitmq.Config{
		Host:     cfg.RabbitMQ.Host,
		Port:     cfg.RabbitMQ.Port,
		User:     cfg.RabbitMQ.User,
		Password: cfg.RabbitMQ.Password,
		Exchange: cfg.RabbitMQ.Exchange,
		Queue:    cfg.RabbitMQ.Queue,
	})
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done, err := consumer.Start(ctx, notifier.SendOrder)
	if err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("Order notifier running", zap.String("queue", cfg.RabbitMQ.Queue))

	select {
	case <-ctx.Done():
	case <-done:
	}
	logger.Info("Order notifier stopped")
}
