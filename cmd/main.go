package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"catalog-service/internal/clients"
	"catalog-service/internal/config"
	"catalog-service/internal/events"
	"catalog-service/internal/handlers"
	"catalog-service/internal/middleware"
	"catalog-service/internal/repository"
)

// @title Catalog Service API
// @version 1.0.0
// @description Product catalog service: categories, products, images, variants and variant options

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8087
// @BasePath /api/v1

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()

	logrus.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Environment == "production" {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(logrus.DebugLevel)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Redis is optional; a nil client disables caching
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Printf("WARNING: Failed to parse Redis URL: %v (continuing without Redis)", err)
		} else {
			client := redis.NewClient(redisOpts)
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := client.Ping(ctx).Err(); err != nil {
				log.Printf("WARNING: Failed to connect to Redis: %v (caching will be disabled)", err)
			} else {
				redisClient = client
				log.Println("✓ Redis connected successfully")
			}
			cancel()
		}
	}

	catalogRepo := repository.NewCatalogRepository(db, redisClient)

	// Event publisher only if NATS_URL is set
	var eventsPublisher *events.Publisher
	if cfg.NatsURL != "" {
		eventsPublisher, err = events.NewPublisher(cfg.NatsURL)
		if err != nil {
			log.Printf("WARNING: Failed to initialize events publisher: %v (continuing without event publishing)", err)
		} else {
			log.Println("✓ Events publisher initialized (NATS connected)")
		}
	} else {
		log.Println("NATS_URL not set, skipping event publishing initialization")
	}
	defer func() {
		if eventsPublisher != nil {
			eventsPublisher.Close()
		}
	}()

	// Notification sender only if a notification service is configured
	var notifier clients.NotificationSender
	if cfg.NotificationServiceURL != "" {
		notifier = clients.NewNotificationClient(cfg.NotificationServiceURL)
		log.Println("✓ Notification client initialized")
	} else {
		log.Println("NOTIFICATION_SERVICE_URL not set, skipping product notifications")
	}

	catalogHandler := handlers.NewCatalogHandler(catalogRepo, notifier, eventsPublisher, cfg)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	// Health check endpoints
	router.GET("/health", catalogHandler.Health)
	router.GET("/ready", catalogHandler.Ready)

	v1 := router.Group("/api/v1")
	{
		categories := v1.Group("/categories")
		{
			categories.GET("", catalogHandler.GetCategories)
			categories.POST("", catalogHandler.CreateCategory)
			categories.GET("/:id", catalogHandler.GetCategory)
			categories.PUT("/:id", catalogHandler.UpdateCategory)
			categories.PATCH("/:id", catalogHandler.UpdateCategory)
			categories.DELETE("/:id", catalogHandler.DeleteCategory)
		}

		products := v1.Group("/products")
		{
			products.GET("", catalogHandler.GetProducts)
			products.POST("", catalogHandler.CreateProduct)
			products.GET("/export", catalogHandler.ExportProducts)
			products.GET("/:id", catalogHandler.GetProduct)
			products.PUT("/:id", catalogHandler.UpdateProduct)
			products.PATCH("/:id", catalogHandler.UpdateProduct)
			products.DELETE("/:id", catalogHandler.DeleteProduct)

			products.GET("/:id/images", catalogHandler.GetProductImages)
			products.POST("/:id/images", catalogHandler.CreateProductImage)
			products.GET("/:id/variants", catalogHandler.GetProductVariants)
			products.POST("/:id/variants", catalogHandler.CreateProductVariant)
		}

		images := v1.Group("/images")
		{
			images.GET("/:id", catalogHandler.GetProductImage)
			images.PUT("/:id", catalogHandler.UpdateProductImage)
			images.PATCH("/:id", catalogHandler.UpdateProductImage)
			images.DELETE("/:id", catalogHandler.DeleteProductImage)
		}

		variants := v1.Group("/variants")
		{
			variants.GET("/:id", catalogHandler.GetProductVariant)
			variants.PUT("/:id", catalogHandler.UpdateProductVariant)
			variants.PATCH("/:id", catalogHandler.UpdateProductVariant)
			variants.DELETE("/:id", catalogHandler.DeleteProductVariant)

			variants.GET("/:id/options", catalogHandler.GetVariantOptions)
			variants.POST("/:id/options", catalogHandler.CreateVariantOption)
		}

		v1.DELETE("/variant-options/:id", catalogHandler.DeleteVariantOption)

		optionTypes := v1.Group("/option-types")
		{
			optionTypes.GET("", catalogHandler.GetOptionTypes)
			optionTypes.POST("", catalogHandler.CreateOptionType)
			optionTypes.GET("/:id", catalogHandler.GetOptionType)
			optionTypes.PUT("/:id", catalogHandler.UpdateOptionType)
			optionTypes.PATCH("/:id", catalogHandler.UpdateOptionType)
			optionTypes.DELETE("/:id", catalogHandler.DeleteOptionType)
		}

		optionValues := v1.Group("/option-values")
		{
			optionValues.GET("", catalogHandler.GetOptionValues)
			optionValues.POST("", catalogHandler.CreateOptionValue)
			optionValues.GET("/:id", catalogHandler.GetOptionValue)
			optionValues.PUT("/:id", catalogHandler.UpdateOptionValue)
			optionValues.PATCH("/:id", catalogHandler.UpdateOptionValue)
			optionValues.DELETE("/:id", catalogHandler.DeleteOptionValue)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Catalog service starting on port %s", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Failed to start server:", err)
		}
	}()

	<-quit
	log.Println("Shutting down catalog-service...")
	log.Println("Catalog service stopped")
}
