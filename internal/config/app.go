package config

type App struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DB         DB
	Nats       Nats
	Redis      Redis
	API        API
	Prometheus Prometheus
	Health     Health
	Vault      Vault
}
