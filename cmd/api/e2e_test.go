package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-energy/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/kanso-energy/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-energy/internal/config"
	"github.com/comitanigiacomo/kanso-energy/internal/core/services"
)

type weeklyResponse struct {
	ID      string `json:"id"`
	Summary struct {
		TotalKWh   float64 `json:"total_kwh"`
		AverageKWh float64 `json:"average_kwh"`
		MinDay     struct {
			Day string `json:"day"`
		} `json:"min_day"`
		MaxDay struct {
			Day string `json:"day"`
		} `json:"max_day"`
	} `json:"summary"`
	Bill struct {
		Weekly  string `json:"weekly"`
		Monthly string `json:"monthly"`
	} `json:"bill"`
}

func setupTestRouter(rdb *redis.Client, limit int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := services.NewEstimateService(services.DefaultTariff())
	return adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		EstimateHandler:  adapterHTTP.NewEstimateHandler(svc),
		DashboardHandler: adapterHTTP.NewDashboardHandler(svc),
		Redis:            rdb,
		RateLimit:        limit,
		RateWindow:       time.Minute,
		StartTime:        time.Now(),
	})
}

func setupTestRedis(t *testing.T) *redis.Client {
	_ = godotenv.Load("../../.env")

	cfg := config.RedisConfig{
		Enabled:  true,
		Host:     os.Getenv("REDIS_HOST"),
		Port:     os.Getenv("REDIS_PORT"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       1,
	}
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}
	if cfg.Port == "" {
		cfg.Port = "6379"
	}

	rdb, err := cache.NewRedisClient(context.Background(), cfg)
	if err != nil {
		t.Skipf("Skipping rate limit e2e test: %v", err)
	}
	return rdb
}

func TestEndToEnd_WeeklyEstimate(t *testing.T) {
	router := setupTestRouter(nil, 0)

	var first weeklyResponse

	t.Run("1. Health", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("2. Inspect Profile", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/profiles/flat/2", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"fan_ac":6`)
	})

	t.Run("3. Estimate Week", func(t *testing.T) {
		payload := `{
			"name": "Ravi", "city": "Ahmedabad", "area": "Navrangpura", "age": 52,
			"housing_type": "tenement", "bhk": 2,
			"temperatures": [30, 32, 35, 38, 40, 36, 31]
		}`

		req, _ := http.NewRequest(http.MethodPost, "/api/v1/estimates/weekly", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))

		assert.NotEmpty(t, first.ID)
		assert.Equal(t, "Monday", first.Summary.MinDay.Day)
		assert.Equal(t, "Friday", first.Summary.MaxDay.Day)
		assert.InDelta(t, first.Summary.TotalKWh/7, first.Summary.AverageKWh, 1e-9)
		assert.NotEmpty(t, first.Bill.Monthly)
	})

	t.Run("4. Same Input Same Numbers", func(t *testing.T) {
		payload := `{
			"name": "Ravi", "city": "Ahmedabad", "area": "Navrangpura", "age": 52,
			"housing_type": "tenement", "bhk": "2BHK",
			"temperatures": [30, 32, 35, 38, 40, 36, 31]
		}`

		req, _ := http.NewRequest(http.MethodPost, "/api/v1/estimates/weekly", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var second weeklyResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, first.Summary, second.Summary)
		assert.Equal(t, first.Bill, second.Bill)
	})

	t.Run("5. Validation Error", func(t *testing.T) {
		payload := `{"name": "", "city": "X", "area": "Y", "age": 30, "housing_type": "flat", "bhk": 1,
			"temperatures": [25, 25, 25, 25, 25, 25, 25]}`

		req, _ := http.NewRequest(http.MethodPost, "/api/v1/estimates/weekly", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "name cannot be empty")
	})

	t.Run("6. Dashboard", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/?name=Ravi&city=Ahmedabad&area=Navrangpura&age=52&housing=tenement&bhk=2BHK", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Weekly Energy Summary")
	})
}

func TestEndToEnd_RateLimit(t *testing.T) {
	rdb := setupTestRedis(t)
	defer rdb.Close()

	require.NoError(t, rdb.FlushDB(context.Background()).Err())

	router := setupTestRouter(rdb, 2)

	for i := 0; i < 2; i++ {
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/profiles", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/profiles", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	req, _ = http.NewRequest(http.MethodGet, "/health", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"redis":"connected"`)
}
