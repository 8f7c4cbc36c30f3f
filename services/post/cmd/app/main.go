package main

import (
	"hi-platform/pkg/cache"
	"hi-platform/pkg/config"
	"hi-platform/pkg/database"
	"hi-platform/pkg/logger"
	"hi-platform/pkg/queue"
	_ "hi-platform/services/post/docs" // Swagger docs
	postApp "hi-platform/services/post/internal/app"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// @title           Post Service API
// @version         1.0
// @description     Post service for idea snaps, market gaps, thoughts, and observations

// @host      localhost:8002
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	// Connect to RabbitMQ for publishing post lifecycle events
	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
		queueClient = nil // Allow service to start without RabbitMQ
	}

	postApp.Run(cfg, log, db, redisClient, queueClient)
}
