// @title        Prismatech Dashboard API
// @version      1.0
// @description  Session gateway and mock marketing data for the Prismatech dashboard.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/prismatech/marketing-dashboard/internal/api"
	"github.com/prismatech/marketing-dashboard/internal/core/authctx"
	"github.com/prismatech/marketing-dashboard/internal/core/ports"
	"github.com/prismatech/marketing-dashboard/internal/core/service"
	"github.com/prismatech/marketing-dashboard/internal/infrastructure/config"
	"github.com/prismatech/marketing-dashboard/internal/infrastructure/db/mongo"
	"github.com/prismatech/marketing-dashboard/internal/infrastructure/db/redis"
	"github.com/prismatech/marketing-dashboard/internal/infrastructure/notify"
	"github.com/prismatech/marketing-dashboard/internal/infrastructure/queue"
	"github.com/prismatech/marketing-dashboard/internal/infrastructure/storage"
	"github.com/prismatech/marketing-dashboard/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log := logger.Init(logger.Options{Level: "error"})
		log.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "prismatech-dashboard",
	})

	// --- Session storage ---
	var (
		store ports.Storage
		rdb   *goredis.Client
	)
	switch cfg.Storage.Driver {
	case "redis":
		rdb, err = redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("connect redis")
		}
		defer rdb.Close()
		store = storage.NewFallback(redis.NewStorage(rdb, cfg.Storage.TTL), logger.Component("storage"))
	default:
		store = storage.NewMemory()
	}

	// --- Credential gateway ---
	tokens := service.NewTokenIssuer(cfg.JWTSecret)
	var (
		gateway ports.CredentialGateway
		mdb     *mongodriver.Database
	)
	switch cfg.Gateway.Driver {
	case "mongo":
		var client *mongodriver.Client
		client, mdb, err = mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			log.Fatal().Err(err).Msg("connect mongo")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		accounts := mongo.NewAccountRepository(mdb)
		if err := accounts.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("ensure account indexes")
		}
		gateway = service.NewAccountGateway(accounts, tokens)
	default:
		gateway = service.NewMockGateway(cfg.Gateway.Delay, tokens)
	}

	// --- Notifications ---
	inbox := notify.NewInbox()
	dispatcher := queue.NewDispatcher(cfg.Notify.Workers, logger.Component("notify"),
		inbox, notify.NewLogSink(logger.Component("toast")))
	dispatcher.Start(ctx)

	contexts := authctx.NewRegistry(ctx, authctx.Options{
		Storage:  store,
		Gateway:  gateway,
		Notifier: dispatcher,
		Logger:   logger.Component("authctx"),
		IdleTTL:  cfg.Session.IdleTTL,
	})

	e := api.NewRouter(api.Dependencies{
		Config:    cfg,
		Logger:    logger.Component("http"),
		Contexts:  contexts,
		Dashboard: service.NewDashboardService(logger.Component("dashboard")),
		Inbox:     inbox,
		Notifier:  dispatcher,
		Mongo:     mdb,
		Redis:     rdb,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("storage", cfg.Storage.Driver).Str("gateway", cfg.Gateway.Driver).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	dispatcher.Wait()
}
