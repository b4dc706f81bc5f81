package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"boutique-api/internal/config"
	"boutique-api/internal/db"
	"boutique-api/internal/httpserver"
	"boutique-api/internal/logging"
	articlerepo "boutique-api/internal/repository/article"
	cartrepo "boutique-api/internal/repository/cart"
	orderrepo "boutique-api/internal/repository/order"
	userrepo "boutique-api/internal/repository/user"
	accountsvc "boutique-api/internal/service/account"
	authsvc "boutique-api/internal/service/auth"
	cartsvc "boutique-api/internal/service/cart"
	catalogsvc "boutique-api/internal/service/catalog"
	ordersvc "boutique-api/internal/service/order"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logging.New("info", os.Stderr)
		fallback.Fatal().Err(err).Msg("load config")
	}
	logger := logging.New(cfg.LogLevel, os.Stdout)

	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect to db")
	}
	defer dbpool.Close()

	articleRepo := articlerepo.NewPostgres(dbpool, logger)
	userRepo := userrepo.NewPostgres(dbpool, logger)
	cartRepo := cartrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)

	catalogService := catalogsvc.New(articleRepo)
	accountService := accountsvc.New(userRepo)
	authService := authsvc.New(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	cartService := cartsvc.New(cartRepo, articleRepo)
	orderService := ordersvc.New(orderRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CatalogSvc: catalogService,
		AccountSvc: accountService,
		AuthSvc:    authService,
		CartSvc:    cartService,
		OrderSvc:   orderService,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("init server")
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		logger.Error().Err(err).Msg("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	} else {
		logger.Info().Msg("server stopped")
	}
}
