package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the settings for the demo driver.
type Config struct {
	Env             string   `env:"ENV" envDefault:"development"`
	SenderBalance   uint64   `env:"SENDER_BALANCE" envDefault:"10"`
	ReceiverBalance uint64   `env:"RECEIVER_BALANCE" envDefault:"20"`
	TransferAmounts []uint64 `env:"TRANSFER_AMOUNTS" envSeparator:"," envDefault:"8,8"`
	Concurrency     int      `env:"TRANSFER_CONCURRENCY" envDefault:"1"`
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("no .env file found: %v", err)
		return nil
	}
	return err
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Concurrency < 0 {
		return Config{}, fmt.Errorf("TRANSFER_CONCURRENCY must not be negative, got %d", cfg.Concurrency)
	}
	return cfg, nil
}

// IsProduction checks if the app runs in production mode.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
