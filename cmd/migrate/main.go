package main

import (
	"context"
	"os"

	"boutique-api/internal/config"
	"boutique-api/internal/db"
	"boutique-api/internal/logging"
	"boutique-api/internal/migrate"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logging.New("info", os.Stderr)
		fallback.Fatal().Err(err).Msg("load config")
	}
	logger := logging.New(cfg.LogLevel, os.Stdout)

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect db")
	}
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		logger.Fatal().Err(err).Msg("apply migrations")
	}

	logger.Info().Msg("migrations applied")
}
