package main

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/rcastrogi/advocacia-sub002/api"
	"github.com/rcastrogi/advocacia-sub002/config"
	"github.com/rcastrogi/advocacia-sub002/document"
	"github.com/rcastrogi/advocacia-sub002/pkg/logger"
	"github.com/rcastrogi/advocacia-sub002/pkg/tracing"
	"github.com/rcastrogi/advocacia-sub002/storage/postgres"
)

func main() {
	cfg := config.Load()

	loggerLevel := logger.LevelDebug

	switch cfg.Environment {
	case config.DebugMode:
		loggerLevel = logger.LevelDebug
		gin.SetMode(gin.DebugMode)
	case config.TestMode:
		loggerLevel = logger.LevelDebug
		gin.SetMode(gin.TestMode)
	default:
		loggerLevel = logger.LevelInfo
		gin.SetMode(gin.ReleaseMode)
	}

	log := logger.NewLogger(cfg.ServiceName, loggerLevel)
	defer logger.Cleanup(log)
	log.Info("Service env", logger.Any("cfg", cfg.ServiceName), logger.String("version", cfg.Version))

	if cfg.JaegerHostPort != "" {
		closer, err := tracing.Init(cfg.ServiceName, cfg.JaegerHostPort)
		if err != nil {
			log.Panic("tracing.Init", logger.Error(err))
		}
		defer closer.Close()
	}

	pgStore, err := postgres.NewPostgres(context.Background(), cfg, log)
	if err != nil {
		log.Panic("postgres.NewPostgres", logger.Error(err))
	}
	defer pgStore.CloseDB()

	uploader, err := document.NewUploader(context.Background(), cfg, log)
	if err != nil {
		log.Panic("document.NewUploader", logger.Error(err))
	}

	router := api.SetUpRouter(cfg, log, pgStore, uploader)

	log.Info("HTTP: Server being started...", logger.String("port", cfg.HTTPPort))

	if err := router.Run(cfg.HTTPPort); err != nil {
		log.Panic("router.Run", logger.Error(err))
	}
}
