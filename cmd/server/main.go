package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jgmedellin/coffee-shop-api/internal/api"
	"github.com/jgmedellin/coffee-shop-api/internal/api/handler"
	"github.com/jgmedellin/coffee-shop-api/internal/core/service"
	"github.com/jgmedellin/coffee-shop-api/internal/infrastructure/config"
	mongodb "github.com/jgmedellin/coffee-shop-api/internal/infrastructure/db/mongo"
	redisdb "github.com/jgmedellin/coffee-shop-api/internal/infrastructure/db/redis"
	"github.com/jgmedellin/coffee-shop-api/pkg/logger"

	_ "github.com/jgmedellin/coffee-shop-api/docs"
)

const shutdownTimeout = 10 * time.Second

// @title           Coffee Shop API
// @version         1.0
// @description     Storefront backend: accounts, catalog and orders.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	redisClient, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer redisClient.Close()

	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)

	for _, idx := range []interface {
		EnsureIndexes(ctx context.Context) error
	}{userRepo, productRepo, orderRepo} {
		if err := idx.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("index creation failed")
		}
	}

	catalogCache := redisdb.NewCatalogCache(redisClient, cfg.Redis.CacheTTL, log)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo, orderRepo, tokenService, log)
	productService := service.NewProductService(productRepo, catalogCache, log)
	orderService := service.NewOrderService(orderRepo, userRepo, productRepo, log)

	health := handler.NewHealthHandler(map[string]handler.ReadinessCheck{
		"mongo": func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) },
		"redis": func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
	})

	e := api.NewRouter(api.Handlers{
		Users:    handler.NewUserHandler(userService),
		Products: handler.NewProductHandler(productService),
		Orders:   handler.NewOrderHandler(orderService),
		Health:   health,
	}, tokenService, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown incomplete")
	}
}
