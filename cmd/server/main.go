package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	auditapp "github.com/predio/backend/internal/application/audit"
	documentapp "github.com/predio/backend/internal/application/document"
	financeapp "github.com/predio/backend/internal/application/finance"
	identityapp "github.com/predio/backend/internal/application/identity"
	lifecycleapp "github.com/predio/backend/internal/application/lifecycle"
	maintenanceapp "github.com/predio/backend/internal/application/maintenance"
	messagingapp "github.com/predio/backend/internal/application/messaging"
	propertyapp "github.com/predio/backend/internal/application/property"
	rentapp "github.com/predio/backend/internal/application/rent"
	"github.com/predio/backend/internal/infrastructure/auth"
	"github.com/predio/backend/internal/infrastructure/config"
	"github.com/predio/backend/internal/infrastructure/event"
	"github.com/predio/backend/internal/infrastructure/logger"
	"github.com/predio/backend/internal/infrastructure/persistence"
	"github.com/predio/backend/internal/infrastructure/storage"
	"github.com/predio/backend/internal/infrastructure/webhook"
	"github.com/predio/backend/internal/interfaces/http/handler"
	"github.com/predio/backend/internal/interfaces/http/middleware"
	"github.com/predio/backend/internal/interfaces/http/router"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Predio Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
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

	// Redis backs the change-notification channel and the token blacklist.
	// Both degrade gracefully, so a failed ping is a warning, not a fatal.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis client", zap.Error(err))
		}
	}()
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Warn("Redis unreachable, change notifications and token revocation degraded", zap.Error(err))
	}
	pingCancel()

	publisher := event.NewRedisChangePublisher(redisClient, log)
	tokenBlacklist := auth.NewRedisTokenBlacklist(redisClient)
	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.AccessTokenExpiration)

	// Object storage for tenant documents and avatars. Without credentials
	// fall back to the in-memory stub so local development needs no MinIO.
	var objectStorage documentapp.ObjectStorageService
	if cfg.Storage.AccessKey != "" && cfg.Storage.SecretKey != "" {
		s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage,
			storage.WithLogger(log),
			storage.WithPresignExpiration(cfg.Storage.PresignExpiration),
		)
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		objectStorage = s3Storage
		log.Info("Object storage connected", zap.String("bucket", cfg.Storage.Bucket))
	} else {
		objectStorage = storage.NewStubObjectStorage()
		log.Warn("Object storage credentials not configured, using in-memory stub")
	}

	webhookClient := webhook.NewClient(cfg.Webhook, log)

	// Initialize repositories
	profileRepo := persistence.NewGormProfileRepository(db.DB)
	apartmentRepo := persistence.NewGormApartmentRepository(db.DB)
	complaintRepo := persistence.NewGormComplaintRepository(db.DB)
	notificationRepo := persistence.NewGormNotificationRepository(db.DB)
	announcementRepo := persistence.NewGormAnnouncementRepository(db.DB)
	transactionRepo := persistence.NewGormTransactionRepository(db.DB)
	paymentRequestRepo := persistence.NewGormPaymentRequestRepository(db.DB)
	appLogRepo := persistence.NewGormAppLogRepository(db.DB)

	// Initialize application services
	documentService := documentapp.NewService(objectStorage, log)
	identityService := identityapp.NewService(profileRepo, jwtService, tokenBlacklist, objectStorage, log)
	lifecycleService := lifecycleapp.NewService(
		profileRepo, apartmentRepo, complaintRepo, notificationRepo,
		paymentRequestRepo, appLogRepo, documentService, webhookClient,
		publisher, log,
	)
	rentService := rentapp.NewService(apartmentRepo, transactionRepo, notificationRepo, publisher, log)
	maintenanceService := maintenanceapp.NewService(complaintRepo, profileRepo, webhookClient, publisher, log)
	messagingService := messagingapp.NewService(notificationRepo, announcementRepo, publisher, log)
	financeService := financeapp.NewService(transactionRepo, paymentRequestRepo, publisher, log)
	auditService := auditapp.NewService(appLogRepo, log)
	propertyService := propertyapp.NewService(apartmentRepo, complaintRepo, publisher, log)

	// Seed the fixed unit set; existing units are left untouched
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	created, err := propertyService.Seed(seedCtx, cfg.Building.UnitCount,
		decimal.NewFromFloat(cfg.Building.DefaultMonthlyRent))
	seedCancel()
	if err != nil {
		log.Fatal("Failed to seed apartment units", zap.Error(err))
	}
	if created > 0 {
		log.Info("Apartment units seeded", zap.Int("created", created))
	}

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

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins

	engine.Use(middleware.RequestID())
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(log))
	engine.Use(middleware.CORSWithConfig(corsConfig))

	authChain := middleware.JWTAuthMiddleware(middleware.JWTConfig{
		JWTService:     jwtService,
		TokenBlacklist: tokenBlacklist,
		Logger:         log,
	})

	r := router.NewRouter(engine,
		router.WithAPIVersion("v1"),
		router.WithAuthChain(authChain),
	)

	// The auth handler registers both ways: login is public, everything
	// else sits behind the JWT chain.
	authHandler := handler.NewAuthHandler(identityService)

	r.RegisterPublic(handler.NewSystemHandler(db.DB, version)).
		RegisterPublic(authHandler).
		RegisterPublic(handler.NewWebhookHandler(maintenanceService, cfg.Webhook.InboundToken))

	r.Register(authHandler).
		Register(handler.NewApartmentHandler(propertyService, rentService)).
		Register(handler.NewTenantHandler(lifecycleService)).
		Register(handler.NewComplaintHandler(maintenanceService)).
		Register(handler.NewNotificationHandler(messagingService)).
		Register(handler.NewFinanceHandler(financeService)).
		Register(handler.NewDocumentHandler(documentService)).
		Register(handler.NewAppLogHandler(auditService))

	r.Setup()

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
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
