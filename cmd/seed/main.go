package main

import (
	"context"
	"os"

	"boutique-api/internal/config"
	"boutique-api/internal/db"
	"boutique-api/internal/logging"
	articlerepo "boutique-api/internal/repository/article"
	userrepo "boutique-api/internal/repository/user"
	"boutique-api/internal/seed"
	accountsvc "boutique-api/internal/service/account"
	catalogsvc "boutique-api/internal/service/catalog"
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

	catalog := catalogsvc.New(articlerepo.NewPostgres(pool, logger))
	accounts := accountsvc.New(userrepo.NewPostgres(pool, logger))

	if err := seed.Apply(ctx, catalog, accounts); err != nil {
		logger.Fatal().Err(err).Msg("seed")
	}

	logger.Info().Msg("seed data applied")
}
