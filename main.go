package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"animeai-app/backend/ai"
	"animeai-app/backend/internal/api"
	"animeai-app/backend/internal/models"
	"animeai-app/backend/internal/service"
	"animeai-app/backend/pkg/cache"
	"animeai-app/backend/pkg/config"
	apperrors "animeai-app/backend/pkg/errors"
	"animeai-app/backend/pkg/health"
	"animeai-app/backend/pkg/logger"
	"animeai-app/backend/pkg/middleware"
	"animeai-app/backend/shared/observability"
	"animeai-app/backend/shared/redis"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	cfg := config.New()

	// Set up logging
	appLogger := logger.New(logger.Config{
		Level: cfg.Logging.Level,
		JSON:  cfg.Logging.Format == "json",
	})
	logger.SetGlobal(appLogger)

	// Observability: Prometheus metrics on :2112, tracing to stdout
	shutdownTracing := observability.SetupTracing("animeai-backend")
	defer shutdownTracing()
	metrics := observability.NewMetrics(observability.SetupPrometheusMetrics())

	// Database
	db, err := config.NewDB()
	if err != nil {
		log.Fatalf("Failed to setup database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Character{},
		&models.CharacterExpression{},
		&models.Interaction{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := service.SeedDefaults(db, appLogger); err != nil {
		log.Fatalf("Failed to seed default characters: %v", err)
	}

	// AI provider client; starts without a key so the database-backed
	// endpoints keep working, every provider call then fails with a clear
	// error
	aiClient := ai.NewClient()
	if config.Get().OpenAI.APIKey == "" {
		appLogger.Warn("OPENAI_API_KEY is not set, provider-dependent endpoints will fail")
	}

	// Optional Redis TTS cache
	rdb := redis.NewClient(cfg.Redis.Addr)

	// In-memory character list cache
	var listCache *cache.Cache
	if cfg.Cache.Enabled {
		listCache = cache.NewCache()
	}

	// Services
	characterService := service.NewCharacterService(db, listCache)
	userService := service.NewUserService(db, cfg.Credits.Default)
	chatService := service.NewChatService(aiClient)
	interactionService := service.NewInteractionService(db)

	// Health checks
	checker := health.NewChecker(appLogger, 30*time.Second)
	checker.RegisterDatabaseCheck(func() error { return config.TestConnection(db) })
	if rdb != nil {
		checker.RegisterRedisCheck(func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return rdb.Ping(ctx)
		})
	}
	checker.Start()

	// Router
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Middleware(appLogger))
	engine.Use(apperrors.RecoveryWithLogger())

	limiter := middleware.NewRateLimiter(appLogger, middleware.RateLimiterOptions{
		Limit:          rate.Limit(cfg.Security.RateLimit),
		Burst:          cfg.Security.RateLimitBurst,
		ExpiryDuration: time.Hour,
		KeyFunc:        func(c *gin.Context) string { return c.ClientIP() },
	})
	engine.Use(limiter.Middleware())

	api.RegisterRoutes(engine, api.Handlers{
		Health:     api.NewHealthHandler(checker),
		Characters: api.NewCharacterHandler(characterService),
		Chat:       api.NewChatHandler(chatService, userService, interactionService, metrics),
		Expression: api.NewExpressionHandler(aiClient, metrics),
		Speech:     api.NewSpeechHandler(aiClient, rdb, metrics),
		Image:      api.NewImageHandler(aiClient, metrics),
		Credits:    api.NewCreditsHandler(userService, metrics),
	})

	// Static front-end entry document
	engine.StaticFile("/", cfg.StaticDir+"/index.html")
	engine.Static("/assets", cfg.StaticDir+"/assets")

	engine.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found", "path": c.Request.URL.Path})
		}
	})

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: engine,
	}

	go func() {
		appLogger.Info("server listening", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	appLogger.Info("shutting down server")
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Failed to shutdown server: %v", err)
	}
	appLogger.Info("server shutdown complete")
}
