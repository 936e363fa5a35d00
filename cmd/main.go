package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"

	"github.com/shenikar/lockdown_map/internal/config"
	"github.com/shenikar/lockdown_map/internal/geodata"
	"github.com/shenikar/lockdown_map/internal/geosync"
	v1 "github.com/shenikar/lockdown_map/internal/handler/http/v1"
	"github.com/shenikar/lockdown_map/internal/mapstate"
	"github.com/shenikar/lockdown_map/internal/metrics"
	"github.com/shenikar/lockdown_map/internal/repository"
	"github.com/shenikar/lockdown_map/internal/service"
	"github.com/shenikar/lockdown_map/internal/webhook"
	"github.com/shenikar/lockdown_map/pkg/logger"
	"github.com/shenikar/lockdown_map/pkg/postgres"
	redisclient "github.com/shenikar/lockdown_map/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/lockdown_map/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Lockdown Map API
// @version 1.0
// @description World map of regional lockdown status: lockdown records, enriched country features and map style.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	log.Info("Running database migrations...")
	if err := postgres.Migrate(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	log.Info("Database migrations applied successfully")

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация издателя вебхуков
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Инициализация репозиториев
	lockdownRepo := repository.NewLockdownRepository(dbpool, redisClient, cfg.LockdownCacheTTL)

	// Источники географических данных
	httpClient := &http.Client{Timeout: 30 * time.Second}
	countries := geodata.NewLoader(cfg.WorldMapPath, httpClient)
	var labels service.FeatureLoader
	reloadable := []*geodata.Loader{countries}
	if cfg.LabelsPath != "" {
		labelsLoader := geodata.NewLoader(cfg.LabelsPath, httpClient)
		labels = labelsLoader
		reloadable = append(reloadable, labelsLoader)
	}
	log.WithFields(logrus.Fields{
		"countries": countries.Location(),
		"labels":    cfg.LabelsPath,
	}).Info("Map data sources configured")

	// Инициализация сервисов
	lockdownService := service.NewLockdownService(lockdownRepo, log, webhookPublisher)
	mapService := service.NewMapService(lockdownService, countries, labels, mapstate.WidgetOptions{
		Center:      orb.Point{cfg.MapCenterLng, cfg.MapCenterLat},
		Zoom:        cfg.MapZoom,
		AccessToken: cfg.MapboxToken,
		Style:       cfg.MapStyle,
	}, log)

	// Флаг геолокации хранится в Redis для каждой сессии карты
	flags := func(session string) geosync.FlagStore {
		return geosync.NewRedisFlagStore(redisClient, session, cfg.GeolocationFlagTTL)
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(lockdownService, mapService, flags, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(metrics.GinMiddleware())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Метрики Prometheus
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// SIGHUP перечитывает географические данные
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-hup:
				for _, loader := range reloadable {
					loader.Reset()
				}
				log.Info("Map data sources reset, will be reloaded on next request")
			}
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
