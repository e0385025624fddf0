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
	"go.uber.org/zap"

	auditapp "github.com/producao/backend/internal/application/audit"
	identityapp "github.com/producao/backend/internal/application/identity"
	trackingapp "github.com/producao/backend/internal/application/tracking"
	"github.com/producao/backend/internal/domain/tracking"
	"github.com/producao/backend/internal/infrastructure/auth"
	"github.com/producao/backend/internal/infrastructure/config"
	"github.com/producao/backend/internal/infrastructure/logger"
	"github.com/producao/backend/internal/infrastructure/persistence"
	"github.com/producao/backend/internal/interfaces/http/handler"
	"github.com/producao/backend/internal/interfaces/http/middleware"
	"github.com/producao/backend/internal/interfaces/http/router"
)

const version = "1.0.0"

// recordOrder keeps list pages deterministic across requests
const recordOrder = "date DESC, sector ASC, id ASC"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

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

	log.Info("Starting production tracking backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	if err := db.AutoMigrate(); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Schema migrated")

	// Token blacklist: Redis when reachable, in-memory fallback otherwise
	// so a development checkout boots without Redis.
	var blacklist auth.TokenBlacklist
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if redisBlacklist, err := auth.NewRedisTokenBlacklist(redisClient); err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
		log.Info("Redis token blacklist connected")
	}

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	auditRepo := persistence.NewGormAuditRepository(db.DB)
	absenteeismRepo := persistence.NewGormRecordRepository[tracking.Absenteeism](db.DB, recordOrder)
	lossRepo := persistence.NewGormRecordRepository[tracking.Loss](db.DB, recordOrder)
	errorRepo := persistence.NewGormRecordRepository[tracking.ProductionError](db.DB, recordOrder)
	productionRepo := persistence.NewGormRecordRepository[tracking.ProductionRecord](db.DB, recordOrder)
	maintenanceRepo := persistence.NewGormRecordRepository[tracking.MaintenanceEvent](db.DB, recordOrder)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	recorder := auditapp.NewRecorderService(auditRepo)
	trailService := auditapp.NewTrailService(auditRepo)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	absenteeismService := trackingapp.NewAbsenteeismService(absenteeismRepo, recorder)
	lossService := trackingapp.NewLossService(lossRepo, recorder)
	errorService := trackingapp.NewErrorService(errorRepo, recorder)
	productionService := trackingapp.NewProductionService(productionRepo, recorder)
	maintenanceService := trackingapp.NewMaintenanceService(maintenanceRepo, recorder)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.EnableJsonDecoderDisallowUnknownFields()
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins

	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORSWithConfig(corsConfig),
	)
	if cfg.HTTP.RateLimitEnabled {
		engine.Use(middleware.RateLimit(
			middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)))
	}

	authMW := middleware.JWTAuth(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		Logger:         log,
	})
	loginLimit := middleware.RateLimit(
		middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow))

	// Routes. Health answers on the bare path too, for probes that are not
	// configured with the API prefix.
	systemHandler := handler.NewSystemHandler(db, cfg.App.Name, version)
	engine.GET("/health", systemHandler.Health)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(systemHandler)
	r.Register(handler.NewAuthHandler(authService, authMW, loginLimit))
	r.Register(handler.NewAuditHandler(trailService, authMW))
	r.Register(handler.NewRecordHandler[trackingapp.CreateAbsenteeismRequest, trackingapp.UpdateAbsenteeismRequest, trackingapp.AbsenteeismResponse](
		tracking.EntityAbsenteeism, absenteeismService, authMW))
	r.Register(handler.NewRecordHandler[trackingapp.CreateLossRequest, trackingapp.UpdateLossRequest, trackingapp.LossResponse](
		tracking.EntityLoss, lossService, authMW))
	r.Register(handler.NewRecordHandler[trackingapp.CreateErrorRequest, trackingapp.UpdateErrorRequest, trackingapp.ErrorResponse](
		tracking.EntityError, errorService, authMW))
	r.Register(handler.NewRecordHandler[trackingapp.CreateProductionRequest, trackingapp.UpdateProductionRequest, trackingapp.ProductionResponse](
		tracking.EntityProduction, productionService, authMW))
	r.Register(handler.NewRecordHandler[trackingapp.CreateMaintenanceRequest, trackingapp.UpdateMaintenanceRequest, trackingapp.MaintenanceResponse](
		tracking.EntityMaintenance, maintenanceService, authMW))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
