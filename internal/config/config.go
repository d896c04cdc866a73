package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config aggregates runtime configuration from the environment.
type Config struct {
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:":8080"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	// Persistence: sqlite file path, or an in-memory store for local runs.
	DBPath         string `env:"DB_PATH" envDefault:"car_auction.db"`
	UseMemoryStore bool   `env:"USE_MEMORY_STORE" envDefault:"false"`

	// Event outbox (Redis Stream) and the Kafka topic the relay forwards to.
	// Leave REDIS_ADDR empty to publish events to the log only.
	RedisAddr     string   `env:"REDIS_ADDR" envDefault:""`
	RedisDB       int      `env:"REDIS_DB" envDefault:"0"`
	EventStream   string   `env:"EVENT_STREAM" envDefault:"car_auction:events"`
	EventGroup    string   `env:"EVENT_GROUP" envDefault:"car-auction-relay"`
	EventConsumer string   `env:"EVENT_CONSUMER" envDefault:"car-auction-relay-1"`
	KafkaBrokers  []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic    string   `env:"KAFKA_TOPIC" envDefault:"car-auction-events"`

	// Engine knobs.
	CountdownSeconds      int           `env:"LOT_COUNTDOWN_SECONDS" envDefault:"90"`
	RotationPollInterval  time.Duration `env:"ROTATION_POLL_INTERVAL" envDefault:"1s"`
	LotQueueDepth         int           `env:"LOT_QUEUE_DEPTH" envDefault:"64"`
	BuyersPremiumRate     float64       `env:"BUYERS_PREMIUM_RATE" envDefault:"0.10"`
	RequireSellerApproval bool          `env:"REQUIRE_SELLER_APPROVAL" envDefault:"true"`
	PaymentDueDays        int           `env:"PAYMENT_DUE_DAYS" envDefault:"7"`
	MinScheduleLead       time.Duration `env:"MIN_SCHEDULE_LEAD" envDefault:"1h"`
}

// NewConfig reads and validates configuration, falling back to defaults.
func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config.NewConfig: %w", err)
	}
	if cfg.CountdownSeconds <= 0 {
		return nil, fmt.Errorf("config.NewConfig: LOT_COUNTDOWN_SECONDS must be > 0")
	}
	if cfg.RotationPollInterval <= 0 {
		return nil, fmt.Errorf("config.NewConfig: ROTATION_POLL_INTERVAL must be > 0")
	}
	if cfg.LotQueueDepth <= 0 {
		return nil, fmt.Errorf("config.NewConfig: LOT_QUEUE_DEPTH must be > 0")
	}
	if cfg.BuyersPremiumRate < 0 {
		return nil, fmt.Errorf("config.NewConfig: BUYERS_PREMIUM_RATE must not be negative")
	}
	return cfg, nil
}
