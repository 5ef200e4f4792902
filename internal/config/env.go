package config

import (
	"fmt"

	env "github.com/caarlos0/env/v8"
)

type Config struct {
	AppPort string `env:"APP_PORT" envDefault:"3000"`
	Redis   Redis
}

type Redis struct {
	Address  string `env:"REDIS_ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
