package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-energy/internal/adapters/handler/http/middleware"
)

type RouterDependencies struct {
	EstimateHandler  *EstimateHandler
	DashboardHandler *DashboardHandler
	Redis            *redis.Client
	RateLimit        int
	RateWindow       time.Duration
	StartTime        time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.Default()
	LoadTemplates(router)

	router.Use(middleware.RequestID())

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-Request-ID")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	router.GET("/health", func(c *gin.Context) {
		redisStatus := "disabled"
		statusCode := http.StatusOK
		if deps.Redis != nil {
			redisStatus = "connected"
			if err := deps.Redis.Ping(c.Request.Context()).Err(); err != nil {
				redisStatus = "unreachable"
				statusCode = http.StatusServiceUnavailable
			}
		}

		c.JSON(statusCode, gin.H{
			"status": "ok",
			"redis":  redisStatus,
			"uptime": time.Since(deps.StartTime).String(),
		})
	})

	limited := router.Group("")
	if deps.Redis != nil && deps.RateLimit > 0 {
		limited.Use(middleware.RateLimiterMiddleware(deps.Redis, deps.RateLimit, deps.RateWindow))
	}

	if deps.DashboardHandler != nil {
		deps.DashboardHandler.RegisterRoutes(limited)
	}

	apiV1 := limited.Group("/api/v1")
	deps.EstimateHandler.RegisterRoutes(apiV1)

	return router
}
