package main

import (
	"log"
	"net/http"

	_ "swipehire/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"swipehire/internal/auth"
	"swipehire/internal/cache"
	"swipehire/internal/config"
	"swipehire/internal/db"
	"swipehire/internal/handler"
	"swipehire/internal/logger"
	"swipehire/internal/model"
	"swipehire/internal/repository"
	"swipehire/internal/router"
	"swipehire/internal/service"
	"swipehire/internal/storage"
)

// @title SwipeHire API
// @version 1.0
// @description Job board API with employer postings, candidate swipes, profiles and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("logger init: %v", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.Log.Fatalw("database init", "err", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Job{},
		&model.Swipe{},
		&model.Profile{},
	); err != nil {
		logger.Log.Fatalw("auto-migrate", "err", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	jobRepo := repository.NewJobRepository(gormDB)
	swipeRepo := repository.NewSwipeRepository(gormDB)
	profileRepo := repository.NewProfileRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	fileStore := storage.NewLocalStore(cfg.UploadDir)
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	jobService := service.NewJobService(jobRepo)
	swipeService := service.NewSwipeService(swipeRepo, jobRepo)
	profileService := service.NewProfileService(profileRepo, fileStore)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	jobHandler := handler.NewJobHandler(jobService)
	swipeHandler := handler.NewSwipeHandler(swipeService)
	profileHandler := handler.NewProfileHandler(profileService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		jobHandler,
		swipeHandler,
		profileHandler,
	)

	logger.Log.Infow("server starting", "port", cfg.ServerPort)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Log.Fatalw("server start", "err", err)
	}
}
