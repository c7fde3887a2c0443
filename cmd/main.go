package main

import (
	"context"
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"crackershop/internal/caching"
	"crackershop/internal/config"
	"crackershop/internal/handlers"
	"crackershop/internal/jobs"
	"crackershop/internal/jobs/background"
	"crackershop/internal/repositories"
	"crackershop/internal/services"
	"crackershop/internal/storage"
	"crackershop/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// Connect and migrate before the listener starts; a request can never
	// race pool initialization.
	pool, err := database.NewPool(ctx, cfg.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	// Image store: local uploads directory by default, MinIO bucket when
	// an endpoint is configured.
	var store storage.ImageStore
	var localStore *storage.LocalStore
	if cfg.MinioEndpoint != "" {
		minioStore, err := storage.NewMinioStore(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
		if err != nil {
			log.Fatalf("Failed to initialize MinIO store: %v", err)
		}
		if err := minioStore.EnsureBucket(ctx); err != nil {
			log.Fatalf("Failed to ensure MinIO bucket: %v", err)
		}
		store = minioStore
	} else {
		localStore, err = storage.NewLocalStore(cfg.UploadDir)
		if err != nil {
			log.Fatalf("Failed to initialize upload directory: %v", err)
		}
		store = localStore
	}

	var cache caching.CatalogCache = caching.NewNoopCache()
	if cfg.RedisAddr != "" {
		cache = caching.NewRedisCatalogCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	}

	// Create repositories
	categoryRepo := repositories.NewCategoryRepo(pool)
	productRepo := repositories.NewProductRepo(pool)
	orderRepo := repositories.NewOrderRepo(pool)

	// Create services
	catalogSvc := services.NewCatalogService(categoryRepo, productRepo, cache)
	productSvc := services.NewProductService(productRepo, store, cache)
	orderSvc := services.NewOrderService(orderRepo)

	// Create handlers
	catalogHandlers := handlers.NewCatalogHandlers(catalogSvc)
	productHandlers := handlers.NewProductHandlers(productSvc)
	orderHandlers := handlers.NewOrderHandlers(orderSvc)
	healthHandlers := handlers.NewHealthHandlers(pool)

	// Background uploads sweep
	sweeper := jobs.NewUploadsSweeper(productRepo, store)
	scheduler, err := background.NewJobScheduler(sweeper)
	if err != nil {
		log.Fatalf("Failed to create job scheduler: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create Echo instance
	e := echo.New()

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	// API routes
	api := e.Group("/api")
	api.GET("/categories", catalogHandlers.ListCategories)
	api.POST("/products", productHandlers.CreateProduct)
	api.PUT("/products/:id", productHandlers.UpdateProduct)
	api.POST("/orders", orderHandlers.PlaceOrder)

	// Uploaded images, read-only
	if localStore != nil {
		e.Static("/uploads", localStore.Dir())
	} else {
		uploadsHandlers := handlers.NewUploadsHandlers(store)
		e.GET("/uploads/:filename", uploadsHandlers.ServeImage)
	}

	log.Printf("crackershop server starting on port %d", cfg.Port)
	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.Port)))
}
