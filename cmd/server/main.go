package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/minipay/ledger-api/internal/api"
	"github.com/minipay/ledger-api/internal/infrastructure/db/redis"
	"github.com/minipay/ledger-api/internal/infrastructure/db/sqlite"
	"github.com/minipay/ledger-api/internal/infrastructure/rates"
	"github.com/minipay/ledger-api/internal/pkg/config"
	"github.com/minipay/ledger-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	db, err := sqlite.Connect(cfg.SQLite.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open sqlite store")
	}

	// Redis only backs the credential and rate caches; run without it
	// when unreachable.
	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, caches disabled")
		rdb = nil
	}

	rateSource := rates.NewClient(cfg.Rates.URL, cfg.Rates.APIKey, cfg.Rates.BaseCurrency, cfg.Rates.Timeout)

	e := api.NewRouter(db, rdb, api.Options{
		RateSource:   rateSource,
		BaseCurrency: cfg.Rates.BaseCurrency,
		RateCacheTTL: cfg.Rates.CacheTTL,
		Logger:       log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
	if rdb != nil {
		_ = rdb.Close()
	}

	log.Info().Msg("server stopped")
}
