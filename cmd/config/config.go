package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultSessionSecret is the cookie signing secret used when SESSION_SECRET
// is unset. It is only acceptable outside production.
const DefaultSessionSecret = "change-me"

const EnvProduction = "production"

type Config struct {
	Environment string
	LogLevel    string
	Server      ServerConfig
	Backend     BackendConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Session     SessionConfig
	Telegram    TelegramConfig
	Internal    InternalConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type BackendConfig struct {
	BaseURL string
	// Timeout of zero leaves requests unbounded.
	Timeout time.Duration
}

type RedisConfig struct {
	Enabled    bool
	Host       string
	Port       int
	Password   string
	DB         int
	CatalogTTL time.Duration
}

type RabbitMQConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
	Exchange string
	Queue    string
}

type SessionConfig struct {
	Secret     string
	TTL        time.Duration
	CookieName string
	// IdleTimeout evicts storefronts nobody touched for that long.
	IdleTimeout time.Duration
}

// InternalConfig guards the /internal endpoints. An empty key disables them.
type InternalConfig struct {
	APIKey string
}

type TelegramConfig struct {
	BotToken string
	ChatID   string
	APIURL   string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", ""),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Backend: BackendConfig{
			BaseURL: getEnv("BACKEND_URL", "http://localhost:8001"),
			Timeout: getDuration("BACKEND_TIMEOUT", 20*time.Second),
		},
		Redis: RedisConfig{
			Enabled:    getBool("REDIS_ENABLED", false),
			Host:       getEnv("REDIS_HOST", "localhost"),
			Port:       getInt("REDIS_PORT", 6379),
			Password:   getEnv("REDIS_PASSWORD", ""),
			DB:         getInt("REDIS_DB", 0),
			CatalogTTL: getDuration("CATALOG_CACHE_TTL", 10*time.Minute),
		},
		RabbitMQ: RabbitMQConfig{
			Enabled:  getBool("RABBITMQ_ENABLED", false),
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
			Exchange: getEnv("RABBITMQ_EXCHANGE", "storefront_order_exchange"),
			Queue:    getEnv("RABBITMQ_QUEUE", "storefront_order_placed_queue"),
		},
		Session: SessionConfig{
			Secret:      getEnv("SESSION_SECRET", DefaultSessionSecret),
			TTL:         getDuration("SESSION_TTL", 24*time.Hour),
			CookieName:  getEnv("SESSION_COOKIE", "storefront_session"),
			IdleTimeout: getDuration("SESSION_IDLE_TIMEOUT", 2*time.Hour),
		},
		Telegram: TelegramConfig{
			BotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
			ChatID:   getEnv("TELEGRAM_CHAT_ID", ""),
			APIURL:   getEnv("TELEGRAM_API_URL", "https://api.telegram.org"),
		},
		Internal: InternalConfig{
			APIKey: getEnv("INTERNAL_API_KEY", ""),
		},
	}
}

// Validate rejects settings the storefront must not run with. In production
// the session secret has to be set explicitly, otherwise anyone could sign a
// session cookie.
func (c *Config) Validate() error {
	if c.Environment == EnvProduction && (c.Session.Secret == "" || c.Session.Secret == DefaultSessionSecret) {
		return errors.New("SESSION_SECRET must be set to a non-default value in production")
	}
	return nil
}

// GetRedisAddr returns host:port for the redis client.
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
