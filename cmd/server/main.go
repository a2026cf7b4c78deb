package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appcases "github.com/census-rm/caseapi/internal/application/cases"
	appuacqid "github.com/census-rm/caseapi/internal/application/uacqid"
	"github.com/census-rm/caseapi/internal/infrastructure/config"
	"github.com/census-rm/caseapi/internal/infrastructure/event"
	"github.com/census-rm/caseapi/internal/infrastructure/logger"
	"github.com/census-rm/caseapi/internal/infrastructure/persistence"
	uacqidclient "github.com/census-rm/caseapi/internal/infrastructure/uacqid"
	"github.com/census-rm/caseapi/internal/interfaces/http/handler"
	"github.com/census-rm/caseapi/internal/interfaces/http/middleware"
	"github.com/census-rm/caseapi/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Census Case API",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize event serializer and register all event types
	eventSerializer := event.NewEventSerializer()
	event.RegisterAllEvents(eventSerializer)

	// Outbox publisher saves events in the same transaction as the aggregate
	outboxPublisher := event.NewOutboxPublisher(eventSerializer)

	// Initialize repositories
	caseRepo := persistence.NewGormCaseRepository(db.DB)
	linkRepo := persistence.NewGormUacQidLinkRepository(db.DB, outboxPublisher)
	outboxRepo := event.NewGormOutboxRepository(db.DB)

	// External UAC/QID pair generator
	pairGenerator := uacqidclient.NewClient(cfg.UacQid.BaseURL, cfg.UacQid.Timeout)

	// Initialize application services
	caseService := appcases.NewCaseService(caseRepo, linkRepo)
	uacQidService := appuacqid.NewUacQidService(linkRepo, caseRepo, pairGenerator)

	// Outbox processor drains stored events onto the Redis stream consumed by
	// Response Management
	if cfg.Event.ProcessorEnabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Error closing redis client", zap.Error(err))
			}
		}()

		streamPublisher := event.NewRedisStreamPublisher(redisClient, cfg.Redis.Stream)
		processorConfig := event.OutboxProcessorConfig{
			BatchSize:        cfg.Event.BatchSize,
			PollInterval:     cfg.Event.PollInterval,
			CleanupEnabled:   cfg.Event.CleanupEnabled,
			CleanupRetention: cfg.Event.CleanupRetention,
			CleanupInterval:  1 * time.Hour,
		}
		outboxProcessor := event.NewOutboxProcessor(outboxRepo, streamPublisher, eventSerializer, processorConfig, log)
		if err := outboxProcessor.Start(context.Background()); err != nil {
			log.Fatal("Failed to start outbox processor", zap.Error(err))
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := outboxProcessor.Stop(shutdownCtx); err != nil {
				log.Error("Error stopping outbox processor", zap.Error(err))
			}
		}()
		log.Info("Outbox processor started",
			zap.Int("batch_size", processorConfig.BatchSize),
			zap.Duration("poll_interval", processorConfig.PollInterval),
			zap.String("stream", cfg.Redis.Stream),
		)
	} else {
		log.Warn("Outbox processor disabled, linkage events will accumulate in the outbox")
	}

	// Initialize HTTP handlers
	caseHandler := handler.NewCaseHandler(caseService, uacQidService)
	uacQidHandler := handler.NewUacQidHandler(uacQidService)
	healthHandler := handler.NewHealthHandler(db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.GET("/healthz", healthHandler.Check)

	// Case lookup and telephone capture routes
	caseRoutes := router.NewDomainGroup("cases", "/cases")
	caseRoutes.GET("/uprn/:uprn", caseHandler.GetByUPRN)
	caseRoutes.GET("/ref/:caseRef", caseHandler.GetByCaseRef)
	caseRoutes.GET("/:caseId", caseHandler.GetByID)
	caseRoutes.GET("/:caseId/qid", caseHandler.GetQidForCase)

	// Questionnaire lookup and linking routes
	qidRoutes := router.NewDomainGroup("qids", "/qids")
	qidRoutes.GET("/:qid", uacQidHandler.GetByQID)
	qidRoutes.PUT("/link", uacQidHandler.Link)

	// Pair minting route, same path shape as the upstream generator
	uacQidRoutes := router.NewDomainGroup("uacqid", "/uacqid")
	uacQidRoutes.POST("/create", uacQidHandler.Create)

	r := router.NewRouter(engine)
	r.Register(caseRoutes).
		Register(qidRoutes).
		Register(uacQidRoutes)
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
