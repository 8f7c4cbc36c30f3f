package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitMiddleware caps each caller at limit requests per fixed window.
// The counter is keyed by route template and caller identity, so one noisy
// endpoint cannot exhaust a user's quota on every other route.
func RateLimitMiddleware(redisClient *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := c.Get("user_id")
		if !ok {
			caller = c.ClientIP()
		}

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		key := fmt.Sprintf("hi:ratelimit:%s:%v", route, caller)

		ctx := c.Request.Context()
		pipe := redisClient.TxPipeline()
		count := pipe.Incr(ctx, key)
		// NX keeps the window anchored at the first request instead of
		// sliding on every hit.
		pipe.ExpireNX(ctx, key, window)
		if _, err := pipe.Exec(ctx); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Rate limit check failed"})
			c.Abort()
			return
		}

		if count.Val() > int64(limit) {
			c.Header("Retry-After", strconv.Itoa(int(window.Seconds())))
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			c.Abort()
			return
		}

		c.Next()
	}
}
