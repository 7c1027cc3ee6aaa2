package config

import "time"

type Redis struct {
	Address       string        `env:"REDIS_ADDRESS" envDefault:"127.0.0.1:6379"`
	Password      string        `env:"REDIS_PASSWORD" envDefault:""`
	DB            int           `env:"REDIS_DB" envDefault:"0"`
	NotAllowedTTL time.Duration `env:"REDIS_NOT_ALLOWED_TTL" envDefault:"5m"`
}
