package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muhammadheryan/pempek-storefront/application/checkout"
	"github.com/muhammadheryan/pempek-storefront/application/storefront"
	"github.com/muhammadheryan/pempek-storefront/cmd/config"
	redisclient "github.com/muhammadheryan/pempek-storefront/cmd/redis"
	_ "github.com/muhammadheryan/pempek-storefront/docs"
	backendRepo "github.com/muhammadheryan/pempek-storefront/repository/backend"
	redisRepo "github.com/muhammadheryan/pempek-storefront/repository/redis"
	"github.com/muhammadheryan/pempek-storefront/thirdparty/rabbitmq"
	"github.com/muhammadheryan/pempek-storefront/transport"
	"github.com/muhammadheryan/pempek-storefront/utils/logger"
	validatorx "github.com/muhammadheryan/pempek-storefront/utils/validator"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

// @title PEMPEK STOREFRONT API
// @version 1.0
// @description Pempek Domino storefront API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}

	validatorx.Init()

	logger.Info("Starting storefront", zap.String("env", cfg.Environment), zap.String("backend", cfg.Backend.BaseURL))

	// Initialize Redis client, optional
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Initialize order event publisher, optional
	var publisher checkout.OrderPublisher
	if cfg.RabbitMQ.Enabled {
		p, err := rabbitmq.NewPublisher(rabbitConfig(cfg))
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	}

	// Initialize repositories
	BackendRepo := backendRepo.NewBackendRepository(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	CatalogCache := redisRepo.NewCatalogCache(cfg.Redis.CatalogTTL)
	CachedBackendRepo := backendRepo.NewCachedCatalog(BackendRepo, CatalogCache)

	// Initialize application layers
	Registry := storefront.NewRegistry(CachedBackendRepo, publisher, cfg.Session.IdleTimeout)
	Signer := storefront.NewSessionSigner(cfg.Session.Secret, cfg.Session.TTL)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Session.IdleTimeout > 0 {
		go Registry.Run(ctx, sweepInterval(cfg.Session.IdleTimeout))
	}

	httpTransport := transport.NewTransport(transport.Options{
		Registry:       Registry,
		Signer:         Signer,
		CookieName:     cfg.Session.CookieName,
		InternalAPIKey: cfg.Internal.APIKey,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down storefront")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("err server shutdown", zap.Error(err))
	}
}

func rabbitConfig(cfg *config.Config) rabbitmq.Config {
	return rabbitmq.Config{
		Host:     cfg.RabbitMQ.Host,
		Port:     cfg.RabbitMQ.Port,
		User:     cfg.RabbitMQ.User,
		Password: cfg.RabbitMQ.Password,
		Exchange: cfg.RabbitMQ.Exchange,
		Queue:    cfg.RabbitMQ.Queue,
	}
}

// sweepInterval checks for idle sessions a few times per idle timeout.
func sweepInterval(idle time.Duration) time.Duration {
	interval := idle / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	return interval
}
