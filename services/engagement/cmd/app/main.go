package main

import (
	"hi-platform/pkg/cache"
	"hi-platform/pkg/config"
	"hi-platform/pkg/database"
	"hi-platform/pkg/logger"
	"hi-platform/pkg/queue"
	_ "hi-platform/services/engagement/docs" // Swagger docs
	engagementApp "hi-platform/services/engagement/internal/app"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// @title           Engagement Service API
// @version         1.0
// @description     Engagement service for POVs, solutions, discussions, debates, expressions, and endorsements

// @host      localhost:8003
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

	// Connect to RabbitMQ for publishing engagement events
	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
		queueClient = nil // Allow service to start without RabbitMQ
	}

	engagementApp.Run(cfg, log, db, redisClient, queueClient)
}
