package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	financeapp "github.com/textile/backend/internal/application/finance"
	identityapp "github.com/textile/backend/internal/application/identity"
	inventoryapp "github.com/textile/backend/internal/application/inventory"
	partnerapp "github.com/textile/backend/internal/application/partner"
	procurementapp "github.com/textile/backend/internal/application/procurement"
	productionapp "github.com/textile/backend/internal/application/production"
	reportapp "github.com/textile/backend/internal/application/report"
	salesapp "github.com/textile/backend/internal/application/sales"
	"github.com/textile/backend/internal/infrastructure/auth"
	"github.com/textile/backend/internal/infrastructure/cache"
	"github.com/textile/backend/internal/infrastructure/config"
	"github.com/textile/backend/internal/infrastructure/logger"
	"github.com/textile/backend/internal/infrastructure/persistence"
	"github.com/textile/backend/internal/infrastructure/scheduler"
	"github.com/textile/backend/internal/infrastructure/telemetry"
	"github.com/textile/backend/internal/interfaces/http/handler"
	"github.com/textile/backend/internal/interfaces/http/middleware"
	"github.com/textile/backend/internal/interfaces/http/router"
)

const version = "1.0.0"

// ledgerSweepAdapter exposes the ledger sweep to the background scheduler
type ledgerSweepAdapter struct {
	service *financeapp.LedgerService
}

func (a ledgerSweepAdapter) SweepTenant(ctx context.Context, tenantID uuid.UUID) (int, error) {
	resp, err := a.service.SweepOverdue(ctx, tenantID)
	if err != nil {
		return 0, err
	}
	return resp.Marked, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log, cfg.App.Env)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting textile backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := middleware.SetupValidator(); err != nil {
		log.Fatal("failed to configure validator", zap.Error(err))
	}

	ctx := context.Background()

	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("error closing database", zap.Error(err))
		}
	}()
	log.Info("database connected", zap.String("driver", cfg.Database.Driver))

	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		if err := db.DB.Use(otelgorm.NewPlugin()); err != nil {
			log.Error("failed to enable database tracing", zap.Error(err))
		}
	}

	// Cache and token blacklist: Redis when enabled, in-process otherwise
	var (
		appCache  cache.Cache
		blacklist auth.TokenBlacklist
	)
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer func() { _ = redisClient.Close() }()
		appCache = cache.NewRedisCache(redisClient, log)
		blacklist = auth.NewRedisTokenBlacklist(redisClient)
		log.Info("redis connected")
	} else {
		appCache = cache.NewInMemoryCache()
		blacklist = auth.NewInMemoryTokenBlacklist()
		log.Info("redis disabled, using in-process cache and token blacklist")
	}

	// Repositories
	vendorRepo := persistence.NewGormVendorRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	purchaseRepo := persistence.NewGormThreadPurchaseRepository(db.DB)
	dyeingRepo := persistence.NewGormDyeingProcessRepository(db.DB)
	fabricRepo := persistence.NewGormFabricProductionRepository(db.DB)
	itemRepo := persistence.NewGormInventoryItemRepository(db.DB)
	movementRepo := persistence.NewGormInventoryMovementRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	ledgerRepo := persistence.NewGormLedgerEntryRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	dashboardRepo := persistence.NewGormDashboardRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Services
	jwtService := auth.NewJWTService(cfg.JWT)
	vendorService := partnerapp.NewVendorService(vendorRepo)
	customerService := partnerapp.NewCustomerService(customerRepo)
	purchaseService := procurementapp.NewThreadPurchaseService(purchaseRepo, vendorRepo, txScope)
	dyeingService := productionapp.NewDyeingService(dyeingRepo, vendorRepo, txScope)
	fabricService := productionapp.NewFabricService(fabricRepo, txScope)
	inventoryService := inventoryapp.NewInventoryService(itemRepo, movementRepo, txScope)
	saleService := salesapp.NewSaleService(saleRepo, txScope)
	ledgerService := financeapp.NewLedgerService(ledgerRepo, paymentRepo, txScope)
	paymentService := financeapp.NewPaymentService(paymentRepo, txScope)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	userService := identityapp.NewUserService(userRepo)
	dashboardService := reportapp.NewDashboardService(dashboardRepo, appCache, log)

	// Daily job: mark open ledger entries past their due date as overdue
	sweeper := scheduler.NewOverdueSweeper(
		scheduler.OverdueSweeperConfig{
			Hour:          cfg.Scheduler.SweepHour,
			Minute:        cfg.Scheduler.SweepMinute,
			CheckInterval: cfg.Scheduler.SweepCheckInterval,
		},
		ledgerSweepAdapter{service: ledgerService},
		persistence.NewGormTenantProvider(db.DB),
		log,
	)
	if err := sweeper.Start(ctx); err != nil {
		log.Fatal("failed to start overdue sweeper", zap.Error(err))
	}

	// HTTP engine and middleware stack
	engine := gin.New()
	engine.Use(middleware.RequestID())
	if cfg.Telemetry.Enabled {
		engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	var rateLimiter *middleware.RateLimiter
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter = middleware.NewRateLimiter(middleware.RateLimiterConfig{
			Limit:  cfg.HTTP.RateLimitRequests,
			Window: cfg.HTTP.RateLimitWindow,
		})
		defer rateLimiter.Stop()
		engine.Use(rateLimiter.Middleware())
	}

	engine.Use(middleware.JWT(middleware.JWTConfig{
		JWTService: jwtService,
		Blacklist:  blacklist,
		Logger:     log,
		SkipPaths: []string{
			"/health",
			"/ready",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
		},
	}))

	// Routes
	systemHandler := handler.NewSystemHandler(db.DB, cfg.App.Name, version)
	systemHandler.RegisterRoutes(engine)

	r := router.New(engine, log)
	r.Register(
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(userService),
		handler.NewVendorHandler(vendorService),
		handler.NewCustomerHandler(customerService),
		handler.NewThreadPurchaseHandler(purchaseService),
		handler.NewDyeingHandler(dyeingService),
		handler.NewFabricHandler(fabricService),
		handler.NewInventoryHandler(inventoryService),
		handler.NewSaleHandler(saleService),
		handler.NewLedgerHandler(ledgerService),
		handler.NewPaymentHandler(paymentService),
		handler.NewReportHandler(dashboardService),
	)
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
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http server shutdown failed", zap.Error(err))
	}
	if err := sweeper.Stop(shutdownCtx); err != nil {
		log.Error("overdue sweeper shutdown failed", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("tracer shutdown failed", zap.Error(err))
	}
	log.Info("stopped")
}
