package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/washline/laundry-system/internal/api"
	"github.com/washline/laundry-system/internal/core/service"
	"github.com/washline/laundry-system/internal/infrastructure/config"
	mongodb "github.com/washline/laundry-system/internal/infrastructure/db/mongo"
	redisdb "github.com/washline/laundry-system/internal/infrastructure/db/redis"
	"github.com/washline/laundry-system/internal/infrastructure/queue"
	"github.com/washline/laundry-system/pkg/logger"
)

// @title           Laundry Order Service API
// @version         1.0
// @description     Order-management backend for a laundry service: user registration and login with roles, and orders tracked through a fixed status lifecycle.
// @BasePath        /api
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is empty; issued tokens are unsigned in practice")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Str("uri", cfg.Mongo.URI).Msg("failed to connect to mongodb")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	orderRepo := mongodb.NewOrderRepository(db)
	if err := orderRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create order indexes")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		// The throttle degrades open, so an unreachable Redis only disables
		// login throttling until the server comes back.
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unreachable, continuing without login throttling")
		rdb = redisdb.NewClient(redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	}
	defer func() { _ = rdb.Close() }()

	// --- Audit event pipeline ---
	// The dispatcher outlives the signal context: requests still draining
	// during shutdown keep enqueueing, so it is stopped explicitly after the
	// HTTP server has finished.
	dispatcherCtx, stopDispatcher := context.WithCancel(context.Background())
	defer stopDispatcher()

	recorder := service.NewEventRecorder(mongodb.NewEventRepository(db), log)
	dispatcher := queue.NewDispatcher(0, recorder, log)
	dispatcher.Start(dispatcherCtx)

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, dispatcher, cfg, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting http server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}

	// Requests are done; flush whatever audit events they queued.
	dispatcher.Stop()
}
