package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/propview/real-estate-api/internal/api"
	"github.com/propview/real-estate-api/internal/infrastructure/db/mongo"
	"github.com/propview/real-estate-api/internal/infrastructure/db/redis"
	"github.com/propview/real-estate-api/internal/infrastructure/media"
	"github.com/propview/real-estate-api/internal/pkg/config"
	"github.com/propview/real-estate-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.Options{})
		l := logger.Get()
		l.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongodb")
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect redis")
	}
	defer rdb.Close()

	uploader, err := media.NewCloudinaryUploader(cfg.Cloudinary.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("init cloudinary")
	}

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}

	e := api.NewRouter(db, rdb, uploader, cfg)

	// Graceful shutdown: stop accepting connections on SIGINT/SIGTERM and
	// drain in-flight requests.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		log.Info().Str("signal", s.String()).Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
	if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server start")
	}
	log.Info().Msg("server stopped")
}
