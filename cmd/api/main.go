package main

import (
	"context"
	"fmt"

	"brandtracker-api/config"
	"brandtracker-api/config/postgre"
	configRedis "brandtracker-api/config/redis"
	"brandtracker-api/internal/alert"
	alertPostgres "brandtracker-api/internal/alert/repository/postgre"
	alertUsecase "brandtracker-api/internal/alert/usecase"
	brandPostgres "brandtracker-api/internal/brand/repository/postgre"
	brandUsecase "brandtracker-api/internal/brand/usecase"
	"brandtracker-api/internal/collector"
	"brandtracker-api/internal/httpserver"
	mentionPostgres "brandtracker-api/internal/mention/repository/postgre"
	mentionUsecase "brandtracker-api/internal/mention/usecase"
	"brandtracker-api/internal/realtime"
	"brandtracker-api/internal/scraper"
	"brandtracker-api/pkg/log"
	"brandtracker-api/pkg/scheduler"
	"brandtracker-api/pkg/sentiment"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	ctx := context.Background()

	// Initialize PostgreSQL
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s",
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect(redisClient)
	logger.Infof(ctx, "Redis connected successfully to %s:%d", cfg.Redis.Host, cfg.Redis.Port)

	// Repositories
	brandRepo := brandPostgres.New(logger, postgresDB)
	mentionRepo := mentionPostgres.New(logger, postgresDB)
	alertRepo := alertPostgres.New(logger, postgresDB)

	// Realtime event publisher
	publisher := realtime.NewRedisPublisher(logger, redisClient)

	// Use cases
	brandUC := brandUsecase.New(logger, brandRepo)
	mentionUC := mentionUsecase.New(logger, mentionRepo, sentiment.New())
	alertUC := alertUsecase.New(logger, alertRepo, mentionUC, publisher, alert.DetectorConfig{
		Window:             cfg.Collector.SpikeWindow,
		MinMentions:        cfg.Collector.SpikeMinMentions,
		SigmaFactor:        cfg.Collector.SpikeSigmaFactor,
		MeanFactor:         cfg.Collector.SpikeMeanFactor,
		SurgeSampleSize:    cfg.Collector.SurgeSampleSize,
		SurgeMinSample:     cfg.Collector.SurgeMinSample,
		SurgeNegativeRatio: cfg.Collector.SurgeNegativeRatio,
	})

	// Collection pipeline
	scrapers := scraper.New(logger, cfg.Sources)
	collectorUC := collector.New(logger, brandRepo, mentionUC, alertUC, scrapers, publisher, cfg.Collector)

	sweeper := scheduler.New(logger, "collect-sweep",
		cfg.Collector.SweepInterval, cfg.Collector.InitialDelay, collectorUC.RunOneSweep)
	if err := sweeper.Start(); err != nil {
		logger.Error(ctx, "Failed to start collection scheduler: ", err)
		return
	}
	defer sweeper.Stop()

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host: cfg.HTTPServer.Host,
		Port: cfg.HTTPServer.Port,
		Mode: cfg.HTTPServer.Mode,

		BrandUC:   brandUC,
		MentionUC: mentionUC,
		AlertUC:   alertUC,

		DB:    postgresDB,
		Redis: redisClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
