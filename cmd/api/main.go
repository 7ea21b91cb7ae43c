package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-energy/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/kanso-energy/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-energy/internal/config"
	"github.com/comitanigiacomo/kanso-energy/internal/core/services"
)

func main() {
	startTime := time.Now()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Critical: Failed to load configuration: %v", err)
	}

	gin.SetMode(cfg.GinMode)

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		log.Println("Connecting to redis...")

		connectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisClient, err = cache.NewRedisClient(connectCtx, cfg.Redis)
		cancel()
		if err != nil {
			log.Printf("Warning: %v. Rate limiting disabled.", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
			log.Println("Redis connected successfully.")
		}
	}

	tariff := services.NewTariff(cfg.Tariff.RatePerKWh, cfg.Tariff.Currency, cfg.Tariff.WeeksPerMonth)
	estimateService := services.NewEstimateService(tariff)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		EstimateHandler:  adapterHTTP.NewEstimateHandler(estimateService),
		DashboardHandler: adapterHTTP.NewDashboardHandler(estimateService),
		Redis:            redisClient,
		RateLimit:        cfg.RateLimit.Requests,
		RateWindow:       cfg.RateLimit.Window(),
		StartTime:        startTime,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Kanso Energy running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}
