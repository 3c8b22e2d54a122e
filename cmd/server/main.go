package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pawmart.backend/internal/config"
	"pawmart.backend/internal/infrastructure/gateway/razorpay"
	"pawmart.backend/internal/infrastructure/jobs"
	"pawmart.backend/internal/infrastructure/repositories"
	"pawmart.backend/internal/infrastructure/storage"
	"pawmart.backend/internal/interfaces/http/handlers"
	"pawmart.backend/internal/interfaces/http/middleware"
	"pawmart.backend/internal/usecases"
	"pawmart.backend/pkg/jwt"
	"pawmart.backend/pkg/logger"
	"pawmart.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Missing gateway credentials are a startup failure, not a per-request one
	if cfg.Razorpay.KeyID == "" || cfg.Razorpay.KeySecret == "" {
		return fmt.Errorf("RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET must be set")
	}

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.Issuer,
		cfg.JWT.Audience,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	appRepo := repositories.NewBreederApplicationRepository(db)
	profileRepo := repositories.NewBreederProfileRepository(db)
	breederListingRepo := repositories.NewBreederListingRepository(db)
	adoptionListingRepo := repositories.NewAdoptionListingRepository(db)
	petRepo := repositories.NewPetRepository(db)
	breedRepo := repositories.NewBreedRepository(db)
	cityRepo := repositories.NewCityRepository(db)
	orderRepo := repositories.NewPaymentOrderRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Gateway, storage, denylist
	gatewayClient := razorpay.NewClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)
	denylist := redis.NewTokenDenylist()
	uploadStore, err := storage.NewLocalStorage(cfg.Storage.UploadDir, cfg.Storage.URLPrefix)
	if err != nil {
		return fmt.Errorf("failed to initialize upload storage: %w", err)
	}

	// Usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, denylist)
	breederUsecase := usecases.NewBreederUsecase(appRepo, profileRepo, userRepo, breedRepo, cityRepo, uow)
	listingUsecase := usecases.NewListingUsecase(breederListingRepo, adoptionListingRepo, profileRepo, petRepo, breedRepo, cityRepo, uow)
	catalogUsecase := usecases.NewCatalogUsecase(breedRepo, cityRepo, petRepo)
	paymentUsecase := usecases.NewPaymentUsecase(orderRepo, breederListingRepo, profileRepo, gatewayClient, uow)
	adminUsecase := usecases.NewAdminUsecase(userRepo, appRepo, breederListingRepo, adoptionListingRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	breederHandler := handlers.NewBreederHandler(breederUsecase)
	listingHandler := handlers.NewListingHandler(listingUsecase)
	catalogHandler := handlers.NewCatalogHandler(catalogUsecase)
	paymentHandler := handlers.NewPaymentHandler(paymentUsecase)
	adminHandler := handlers.NewAdminHandler(adminUsecase)
	uploadHandler := handlers.NewUploadHandler(uploadStore)

	// Background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryJob := jobs.NewPaymentOrderExpiryJob(orderRepo)
	go expiryJob.Start(ctx)

	// Router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r, cfg.CORS.AllowedOrigins)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	r.Static(cfg.Storage.URLPrefix, uploadStore.Dir())

	registerAPIV1Routes(r, routeDeps{
		authHandler:    authHandler,
		breederHandler: breederHandler,
		listingHandler: listingHandler,
		catalogHandler: catalogHandler,
		paymentHandler: paymentHandler,
		adminHandler:   adminHandler,
		uploadHandler:  uploadHandler,
		authMiddleware: middleware.AuthMiddleware(jwtService),
		statusGate:     middleware.AccountStatusMiddleware(userRepo, cfg.AccessGate),
		env:            cfg.Server.Env,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		expiryJob.Stop()
		cancel()
	}()

	log.Printf("🚀 PawMart Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
