package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the session settings read from the environment.
type Config struct {
	LogLevel     string        `env:"QUIZQUEST_LOG_LEVEL"     envDefault:"info"`
	DatabaseURL  string        `env:"QUIZQUEST_DATABASE_URL"  envDefault:"sqlite://quizquest.db"`
	SaveKey      string        `env:"QUIZQUEST_SAVE_KEY"      envDefault:"quizquest-game-state"`
	TickInterval time.Duration `env:"QUIZQUEST_TICK_INTERVAL" envDefault:"1s"`
	RevealDelay  time.Duration `env:"QUIZQUEST_REVEAL_DELAY"  envDefault:"2s"`

	// Seed drives content generation. Zero picks a random seed.
	Seed int64 `env:"QUIZQUEST_SEED" envDefault:"0"`

	SaveQueueSize     int `env:"QUIZQUEST_SAVE_QUEUE_SIZE"     envDefault:"100"`
	FeedbackQueueSize int `env:"QUIZQUEST_FEEDBACK_QUEUE_SIZE" envDefault:"1000"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("database url must be set")
	}
	if c.SaveKey == "" {
		return fmt.Errorf("save key must be set")
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", c.TickInterval)
	}
	if c.RevealDelay < 0 {
		return fmt.Errorf("reveal delay must not be negative, got %s", c.RevealDelay)
	}
	if c.SaveQueueSize < 1 || c.FeedbackQueueSize < 1 {
		return fmt.Errorf("queue sizes must be positive")
	}
	return nil
}
