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
	"hi-platform/pkg/queue"
	engagementHTTP "hi-platform/services/engagement/internal/controller/http"
	"hi-platform/services/engagement/internal/repo/persistent"
	"hi-platform/services/engagement/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client, queueClient *queue.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	engagementRepo := persistent.NewEngagementRepository(db)
	postRepo := persistent.NewPostRepository(db)

	// Initialize use cases
	engagementUseCase := usecase.NewEngagementUseCase(engagementRepo, postRepo, queueClient, log)

	// Initialize HTTP handlers
	engagementHandler := engagementHTTP.NewEngagementHandler(engagementUseCase, log)

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
		api.GET("/engagement/post/:postId", engagementHandler.GetPostEngagements)
		api.POST("/engagement/pov/:postId", engagementHandler.AddPOV)
		api.POST("/engagement/solution/:postId", engagementHandler.AddSolution)
		api.POST("/engagement/discussion/:postId", engagementHandler.JoinDiscussion)
		api.POST("/engagement/debate/:postId", engagementHandler.JoinDebate)
		api.POST("/engagement/expression/:postId", engagementHandler.ToggleExpression)
		api.POST("/engagement/endorse/:postId", engagementHandler.ToggleEndorsement)
		api.DELETE("/engagement/:engagementId", engagementHandler.DeleteEngagement)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Engagement service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down engagement service...")

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

	// Close RabbitMQ connection if it was initialized
	if queueClient != nil {
		queueClient.Close()
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Engagement service exited")
}
