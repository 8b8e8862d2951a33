package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ikkim/baedal-backend/config"
	"github.com/ikkim/baedal-backend/internal/app/controller"
	"github.com/ikkim/baedal-backend/internal/app/repository"
	"github.com/ikkim/baedal-backend/internal/app/service"
	"github.com/ikkim/baedal-backend/internal/db"
	"github.com/ikkim/baedal-backend/internal/middleware"
	"github.com/ikkim/baedal-backend/internal/router"
	"github.com/ikkim/baedal-backend/internal/scheduler"
	"github.com/ikkim/baedal-backend/pkg/logger"
	"github.com/ikkim/baedal-backend/pkg/session"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting BAEDAL Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations (default payments/categories seeded when empty)
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize session store
	sessionStore, err := session.NewRedisStore(&cfg.Redis, cfg.Session.TTL)
	if err != nil {
		logger.Fatal("Failed to connect to redis", err)
	}
	defer func() {
		if err := sessionStore.Close(); err != nil {
			logger.Error("Failed to close redis connection", err)
		}
	}()

	// Initialize repositories
	gormDB := db.GetDB()
	userRepo := repository.NewUserRepository(gormDB)
	ownerRepo := repository.NewOwnerRepository(gormDB)
	riderRepo := repository.NewRiderRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	paymentRepo := repository.NewPaymentRepository(gormDB)
	storeRepo := repository.NewStoreRepository(gormDB)
	menuRepo := repository.NewMenuRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)
	favoriteRepo := repository.NewFavoriteRepository(gormDB)
	couponRepo := repository.NewCouponRepository(gormDB)
	purgeRepo := repository.NewPurgeRepository(gormDB)

	// Initialize services
	userService := service.NewUserService(userRepo)
	ownerService := service.NewOwnerService(ownerRepo)
	riderService := service.NewRiderService(riderRepo)
	storeService := service.NewStoreService(storeRepo, ownerRepo, categoryRepo, paymentRepo)
	menuService := service.NewMenuService(menuRepo, storeRepo, ownerRepo)
	orderService := service.NewOrderService(orderRepo, storeRepo, riderRepo, reviewRepo)
	reviewService := service.NewReviewService(reviewRepo, storeRepo, orderRepo, ownerRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo, storeRepo)
	paymentService := service.NewPaymentService(paymentRepo, storeRepo)
	couponService := service.NewCouponService(couponRepo, storeRepo, ownerRepo)
	adminService := service.NewAdminService(gormDB, purgeRepo)

	// Initialize controllers
	userController := controller.NewUserController(userService, sessionStore, &cfg.Session)
	ownerController := controller.NewOwnerController(ownerService, sessionStore, &cfg.Session)
	riderController := controller.NewRiderController(riderService)
	storeController := controller.NewStoreController(storeService)
	customerController := controller.NewCustomerController(storeService, menuService, paymentService, couponService)
	orderController := controller.NewOrderController(orderService)
	favoriteController := controller.NewFavoriteController(favoriteService)
	reviewController := controller.NewReviewController(reviewService)
	paymentController := controller.NewPaymentController(paymentService)
	couponController := controller.NewCouponController(couponService)
	adminController := controller.NewAdminController(adminService)

	// Initialize middleware
	sessionMiddleware := middleware.NewSessionMiddleware(sessionStore, gormDB, cfg.Session.CookieName)

	// Start coupon expiry scheduler
	couponScheduler := scheduler.NewCouponScheduler(couponRepo)
	if err := couponScheduler.Start(); err != nil {
		logger.Fatal("Failed to start coupon scheduler", err)
	}
	defer couponScheduler.Stop()

	// Setup router
	r := router.NewRouter(
		userController,
		ownerController,
		riderController,
		storeController,
		customerController,
		orderController,
		favoriteController,
		reviewController,
		paymentController,
		couponController,
		adminController,
		sessionMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
