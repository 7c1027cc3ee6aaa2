package config

type DB struct {
	DSN                string `env:"DATABASE_DSN"`
	Debug              bool   `env:"DATABASE_DEBUG" envDefault:"false"`
	MaxOpenConnections int    `env:"DATABASE_MAX_OPEN_CONNECTIONS" envDefault:"25"`
}
