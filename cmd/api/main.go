package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/adiweb12/Devwatsee/internal/api/handler"
	"github.com/adiweb12/Devwatsee/internal/api/middleware"
	"github.com/adiweb12/Devwatsee/internal/api/router"
	"github.com/adiweb12/Devwatsee/internal/config"
	"github.com/adiweb12/Devwatsee/internal/infra/database"
	infraES "github.com/adiweb12/Devwatsee/internal/infra/elasticsearch"
	infraKafka "github.com/adiweb12/Devwatsee/internal/infra/kafka"
	"github.com/adiweb12/Devwatsee/internal/infra/mailer"
	infraMinio "github.com/adiweb12/Devwatsee/internal/infra/minio"
	infraRedis "github.com/adiweb12/Devwatsee/internal/infra/redis"
	"github.com/adiweb12/Devwatsee/internal/repository"
	"github.com/adiweb12/Devwatsee/internal/service"
	"github.com/adiweb12/Devwatsee/pkg/logger"
	"github.com/adiweb12/Devwatsee/pkg/utils"

	_ "github.com/adiweb12/Devwatsee/api/openapi"
)

// @title Watsee API
// @version 1.0
// @description CRUD backend for the Watsee video streaming app

// @contact.name API Support

// @host 127.0.0.1:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Format: Bearer {token}

func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(
		cfg.Log.Level,
		cfg.Log.Format,
		cfg.Log.Output,
		cfg.Log.FilePath,
	); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// unknown JSON fields are rejected, not silently dropped
	gin.EnableJsonDecoderDisallowUnknownFields()

	db, err := database.Connect(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	tokens := utils.NewTokenManager(cfg.JWT.Secret, cfg.App.Name, cfg.JWT.ExpireDuration())

	// media host is required: admin uploads cannot degrade
	media, err := infraMinio.NewStore(&cfg.MinIO)
	if err != nil {
		logger.Fatal("Failed to init media store", zap.Error(err))
	}

	// video-list cache is optional
	var cache service.CatalogCache
	if redisClient, err := infraRedis.Connect(&cfg.Redis); err != nil {
		logger.Warn("Redis unavailable, video list served from DB only", zap.Error(err))
	} else {
		defer redisClient.Close()
		cache = infraRedis.NewCache(redisClient, cfg.Redis.VideoListTTLDuration())
	}

	// catalog events are optional
	var events service.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		producer := infraKafka.NewProducer(&cfg.Kafka)
		defer producer.Close()
		events = producer
	} else {
		logger.Warn("Kafka brokers not configured, catalog events disabled")
	}

	// search index is optional, keyword search falls back to DB
	var index service.SearchIndex
	if esClient, err := infraES.NewClient(&cfg.Elasticsearch); err != nil {
		logger.Warn("Elasticsearch unavailable, search will fallback to DB", zap.Error(err))
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := esClient.EnsureVideosIndex(ctx); err != nil {
			logger.Warn("Elasticsearch index init failed", zap.Error(err))
		}
		cancel()
		index = esClient
	}

	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	savedRepo := repository.NewSavedVideoRepository(db)

	authService := service.NewAuthService(userRepo, tokens, mailer.New(&cfg.SMTP))
	adminService := service.NewAdminService(&cfg.Admin, tokens, userRepo)
	catalogService := service.NewCatalogService(videoRepo, media, cache, events)
	bookmarkService := service.NewBookmarkService(savedRepo)
	searchService := service.NewSearchService(videoRepo, index)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	videoHandler := handler.NewVideoHandler(catalogService, searchService)
	bookmarkHandler := handler.NewBookmarkHandler(bookmarkService)
	adminHandler := handler.NewAdminHandler(adminService, catalogService)

	gin.SetMode(cfg.App.Mode)

	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())

	r.GET("/healthz", healthCheckHandler(cfg))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.Setup(r, authHandler, userHandler, videoHandler, bookmarkHandler, adminHandler, tokens)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
	)

	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

func healthCheckHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"service":   cfg.App.Name,
			"version":   cfg.App.Version,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}
