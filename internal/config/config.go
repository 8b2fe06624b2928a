package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Postgres Postgres `validate:"required"`

	Kafka Kafka `validate:"required"`

	Zenopay Zenopay `validate:"required"`

	Expo Expo `validate:"required"`

	Cache Cache `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

// Kafka carries the durable audit stream for payment webhook events.
type Kafka struct {
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`

	BatchTimeout time.Duration `validate:"gte=0"`
}

type Zenopay struct {
	BaseURL string `validate:"required,url"`
	APIKey  string `validate:"required"`

	// WebhookSecret authenticates inbound gateway callbacks; payloads
	// without it are rejected before any state transition
	WebhookSecret string `validate:"required"`

	Timeout time.Duration `validate:"gt=0"`
}

type Expo struct {
	PushURL string        `validate:"required,url"`
	Timeout time.Duration `validate:"gt=0"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "marketplace"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Kafka: Kafka{
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),
			Topic:   env("KAFKA_AUDIT_TOPIC", "payment-events"),

			BatchTimeout: envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Zenopay: Zenopay{
			BaseURL:       env("ZENOPAY_BASE_URL", "https://api.zeno.africa"),
			APIKey:        env("ZENOPAY_API_KEY", ""),
			WebhookSecret: env("ZENOPAY_WEBHOOK_SECRET", ""),
			Timeout:       envDuration("ZENOPAY_TIMEOUT", 30*time.Second),
		},

		Expo: Expo{
			PushURL: env("EXPO_PUSH_URL", "https://exp.host/--/api/v2/push/send"),
			Timeout: envDuration("EXPO_TIMEOUT", 10*time.Second),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	if len(fallback) == 0 {
		return ""
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
