package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hi-platform/pkg/config"
	"hi-platform/pkg/jwt"
	"hi-platform/pkg/logger"
	"hi-platform/pkg/middleware"
	"hi-platform/pkg/s3"
	userHTTP "hi-platform/services/user/internal/controller/http"
	"hi-platform/services/user/internal/repo/persistent"
	"hi-platform/services/user/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client, s3Client *s3.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	userRepo := persistent.NewUserRepository(db)
	postRepo := persistent.NewPostRepository(db)
	engagementRepo := persistent.NewEngagementRepository(db)

	// Initialize use cases
	userUseCase := usecase.NewUserUseCase(userRepo, postRepo, engagementRepo, s3Client, log)

	// Initialize HTTP handlers
	userHandler := userHTTP.NewUserHandler(userUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtService))
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))
	{
		api.GET("/users/profile", userHandler.GetProfile)
		api.PUT("/users/profile", userHandler.UpdateProfile)
		api.PUT("/users/profile/avatar", userHandler.UploadAvatar)
		api.GET("/users/posts", userHandler.GetOwnPosts)
		api.GET("/users/interactions", userHandler.GetInteractions)
		api.GET("/users/endorsements", userHandler.GetEndorsements)
		api.GET("/users/:hiIdentityName", userHandler.GetByIdentity)
		api.GET("/users/:hiIdentityName/posts", userHandler.GetPostsByIdentity)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("User service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down user service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection if it was initialized
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("User service exited")
}
