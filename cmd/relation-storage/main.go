package main

import (
	"fmt"
	"path"

	"github.com/caarlos0/env/v6"
	vault "github.com/hashicorp/vault/api"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fanbase-labs/relation-storage/internal"
	"github.com/fanbase-labs/relation-storage/internal/config"
)

func main() {
	cfg := config.App{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("parse config")
	}

	initLogging(cfg.LogLevel)

	if err := overrideDSNFromVault(&cfg); err != nil {
		log.Fatal().Err(err).Msg("read vault secrets")
	}

	app, err := internal.NewApplication(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("create application")
	}

	log.Info().Msg("relation storage is started")

	app.Run()

	log.Info().Msg("relation storage is stopped")
}

func initLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(lvl)
}

// overrideDSNFromVault replaces the database DSN with the vault-managed one
// when a token is configured.
func overrideDSNFromVault(cfg *config.App) error {
	if cfg.Vault.Token == "" {
		return nil
	}

	client, err := vault.NewClient(&vault.Config{Address: cfg.Vault.Address})
	if err != nil {
		return fmt.Errorf("create vault client: %w", err)
	}
	client.SetToken(cfg.Vault.Token)

	secret, err := client.Logical().Read(path.Join(cfg.Vault.BasePath, "database"))
	if err != nil {
		return fmt.Errorf("read database secret: %w", err)
	}
	if secret == nil {
		return nil
	}

	if dsn, ok := secret.Data["dsn"].(string); ok && dsn != "" {
		cfg.DB.DSN = dsn
	}

	return nil
}
