package main

import (
	"hi-platform/pkg/cache"
	"hi-platform/pkg/config"
	"hi-platform/pkg/database"
	"hi-platform/pkg/logger"
	"hi-platform/pkg/s3"
	_ "hi-platform/services/user/docs" // Swagger docs
	userApp "hi-platform/services/user/internal/app"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// @title           User Service API
// @version         1.0
// @description     User service for profiles, user content, and avatars

// @host      localhost:8004
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

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to initialize S3 client: %v", err)
		panic(err)
	}

	userApp.Run(cfg, log, db, redisClient, s3Client)
}
