package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"zipcode-web/configs"
	"zipcode-web/internal/application/schedule"
	"zipcode-web/internal/application/server"
	"zipcode-web/internal/domain/gateway/api"
	"zipcode-web/internal/domain/gateway/db"
	"zipcode-web/internal/domain/gateway/lock"
	"zipcode-web/internal/domain/gateway/queue"
	"zipcode-web/internal/domain/usecase/health"
	"zipcode-web/internal/domain/usecase/zipcode"
	"zipcode-web/internal/infra/aws"
	"zipcode-web/internal/infra/database/gorm"
	httpclient "zipcode-web/pkg/http"
	"zipcode-web/pkg/log"
	"zipcode-web/pkg/msg"
	"zipcode-web/pkg/redis"
	"zipcode-web/pkg/resource"
)

func main() {
	defer log.Sync()
	log.Info(msg.GetMessage("app.start"))

	ctx := context.Background()

	// Init database
	database, err := gorm.Open(gorm.ConfigFromProperties())
	if err != nil {
		log.Fatal(err.Error())
	}

	// Init geocoding
	var geocoding api.GeocodingGateway = api.NewGeocodingGateway(
		resource.GetString("app.geocoding.base-url"),
		httpclient.ClientOptions{
			ReadTimeout:       resource.GetDurationOrDefault("app.geocoding.timeout", 10*time.Second),
			ConnectionTimeout: resource.GetDurationOrDefault("app.geocoding.connection-timeout", 5*time.Second),
			Logger:            httpclient.ZapLogger{Name: "zippopotam"},
		},
	)

	// Init cache and lock
	var locker lock.Locker = lock.NoopLocker{}
	if resource.GetBool("app.redis.enabled") {
		redisClient, err := redis.NewClient(redis.NewRedisConfig().
			WithHost(resource.GetString("app.redis.host")).
			WithPort(resource.GetIntOrDefault("app.redis.port", 6379)).
			WithPassword(resource.GetString("app.redis.password")).
			WithDatabase(resource.GetInt("app.redis.database")).
			WithCacheTTL(api.LookupCacheName, resource.GetDurationOrDefault("app.redis.lookup-cache-ttl", 24*time.Hour)))
		if err != nil {
			log.Fatal("failed to create redis client", zap.Error(err))
		}
		defer func() { _ = redisClient.Close() }()

		geocoding = api.NewCachedGeocodingGateway(geocoding, redis.NewCache(redisClient, api.LookupCacheName))
		locker = lock.NewRedisLocker(redisClient, resource.GetDurationOrDefault("app.redis.lock-ttl", 30*time.Second))
	}

	// Init queue
	var publisher interface {
		queue.EventPublisher
		queue.HealthGateway
	} = queue.NoopPublisher{}
	if resource.GetBool("app.queue.enabled") {
		cloud := aws.CloudConfigFromProperties()
		awsConfig, err := aws.LoadConfig(ctx, cloud)
		if err != nil {
			log.Fatal("failed to load aws config", zap.Error(err))
		}
		publisher = aws.NewSQSPublisherAdapter(
			aws.NewSqsClient(awsConfig, cloud.Endpoint),
			resource.GetString("app.queue.registered-zip-queue"),
		)
	}

	// Init UseCase
	zipCodeUseCase := zipcode.NewZipCodeUseCase(geocoding, db.NewGormLocationGateway(database), locker, publisher)
	healthUseCase := health.NewHealthUseCase(db.NewGormHealthDBGateway(database), locker, publisher)

	// Init Schedule
	if resource.GetBool("app.report.enabled") {
		catalogueScheduler := schedule.NewCatalogueScheduler(zipCodeUseCase, locker,
			resource.GetDurationOrDefault("app.report.timeout", 30*time.Second))
		if err := catalogueScheduler.InitCatalogueScheduleTasks(resource.GetStringOrDefault("app.report.cron", "@hourly")); err != nil {
			log.Fatal("failed to schedule catalogue report", zap.Error(err))
		}
		defer catalogueScheduler.Stop()
	}

	// Init server
	e, err := server.New(server.Config{
		ContextPath: configs.Env.ContextPath,
		SecretKey:   []byte(resource.GetString("app.security.secret-key")),
		SessionName: resource.GetStringOrDefault("app.security.session-name", "zipcode-web"),
	}, server.UseCases{ZipCode: zipCodeUseCase, Health: healthUseCase})
	if err != nil {
		log.Fatal("failed to initialize server", zap.Error(err))
	}

	// Start Routes
	port := resource.GetStringOrDefault("app.server.port", "8080")
	go func() {
		log.Info(msg.GetMessage("app.started", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped unexpectedly", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(msg.GetMessage("app.stopping"))
	shutdownCtx, cancel := context.WithTimeout(ctx, resource.GetDurationOrDefault("app.server.shutdown-timeout", 10*time.Second))
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	if sqlDB, err := database.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info(msg.GetMessage("app.stopped"))
}
