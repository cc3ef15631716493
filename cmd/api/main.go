package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bancobr/bank-api/internal/api"
	"github.com/bancobr/bank-api/internal/infrastructure/db/mongo"
	"github.com/bancobr/bank-api/internal/infrastructure/db/redis"
	"github.com/bancobr/bank-api/internal/infrastructure/queue"
	"github.com/bancobr/bank-api/internal/infrastructure/security"
	"github.com/bancobr/bank-api/internal/pkg/config"
	"github.com/bancobr/bank-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Most likely a missing JWT_SECRET; refuse to start.
		logger.Init(logger.Options{Level: "error"})
		errLog := logger.Get()
		errLog.Fatal().Err(err).Msg("configuration load failed")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting bank-api")

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	// The unique username index is the authoritative uniqueness constraint;
	// it must exist before any registration is served.
	userRepo := mongo.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	customerRepo := mongo.NewCustomerRepository(db)
	if err := customerRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("customer index creation failed")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	dispatcher := queue.NewAuditDispatcher(0, mongo.NewAuditRepository(db), log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Deps{
		Mongo:          db,
		Redis:          rdb,
		Tokens:         security.NewTokenService(cfg.JWTSecret, cfg.TokenTTL, nil),
		Hasher:         security.NewBcryptHasher(0),
		Audit:          dispatcher,
		ThrottleMax:    cfg.Throttle.MaxFailures,
		ThrottleWindow: cfg.Throttle.Window,
		Log:            log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
