package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/Mo7amed-Boukab/E-Market-API/config"
	"github.com/Mo7amed-Boukab/E-Market-API/internal/delivery"
	"github.com/Mo7amed-Boukab/E-Market-API/internal/delivery/middleware"
	"github.com/Mo7amed-Boukab/E-Market-API/internal/repository"
	"github.com/Mo7amed-Boukab/E-Market-API/internal/usecase"
	"github.com/Mo7amed-Boukab/E-Market-API/pkg/db"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Invalid log level '%s', falling back to info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.Info("Starting E-Market API...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Errorf("Failed to disconnect from database: %v", err)
		}
	}()
	logger.Info("Database connection established.")

	database := client.Database(cfg.MongoDB)

	userRepo := repository.NewMongoUserRepository(database, logger)
	categoryRepo := repository.NewMongoCategoryRepository(database, logger)
	productRepo := repository.NewMongoProductRepository(database, logger)
	logger.Info("Repositories initialized.")

	userUseCase := usecase.NewUserUseCase(userRepo, logger)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, logger)
	productUseCase := usecase.NewProductUseCase(productRepo, categoryRepo, logger)
	logger.Info("Use cases initialized.")

	userHandler := delivery.NewUserHandler(userUseCase, logger)
	categoryHandler := delivery.NewCategoryHandler(categoryUseCase, logger)
	productHandler := delivery.NewProductHandler(productUseCase, logger)
	logger.Info("Handlers initialized.")

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(func(c *gin.Context) {
		c.Next()
		logger.WithFields(logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"ip":         c.ClientIP(),
			"request_id": c.GetString(middleware.KeyRequestID),
		}).Info("Request completed")
	})

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running...")
	})

	api := router.Group("/api")
	userHandler.RegisterRoutes(api)
	categoryHandler.RegisterRoutes(api)
	productHandler.RegisterRoutes(api)
	logger.Info("API routes registered.")

	logger.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
