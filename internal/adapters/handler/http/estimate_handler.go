package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-energy/internal/core/domain"
	"github.com/comitanigiacomo/kanso-energy/internal/core/services"
)

// Estimator is the part of the estimate service the HTTP layer depends on.
type Estimator interface {
	Profiles() []domain.Profile
	Profile(housingType, bhk string) (domain.Profile, error)
	EstimateDay(ctx context.Context, input services.DailyEstimateInput) (*services.DayEstimate, error)
	EstimateWeek(ctx context.Context, input services.WeeklyEstimateInput) (*services.WeeklyEstimate, error)
}

type EstimateHandler struct {
	svc Estimator
}

func NewEstimateHandler(svc Estimator) *EstimateHandler {
	return &EstimateHandler{svc: svc}
}

// bhkField accepts both 2 and "2BHK" in request bodies.
type bhkField string

func (b *bhkField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*b = bhkField(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("bhk must be a number or a string like \"2BHK\"")
	}
	*b = bhkField(n.String())
	return nil
}

type dailyEstimateRequest struct {
	Day          string   `json:"day"`
	HousingType  string   `json:"housing_type" binding:"required"`
	BHK          bhkField `json:"bhk" binding:"required"`
	TemperatureC *float64 `json:"temperature_c" binding:"required"`
}

type weeklyEstimateRequest struct {
	Name         string    `json:"name"`
	City         string    `json:"city"`
	Area         string    `json:"area"`
	Age          int       `json:"age"`
	HousingType  string    `json:"housing_type" binding:"required"`
	BHK          bhkField  `json:"bhk" binding:"required"`
	Temperatures []float64 `json:"temperatures" binding:"required"`
}

func (h *EstimateHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/profiles", h.ListProfiles)
	router.GET("/profiles/:housing/:bhk", h.GetProfile)
	router.GET("/weather/adjustment", h.GetAdjustment)

	estimates := router.Group("/estimates")
	{
		estimates.POST("/daily", h.EstimateDay)
		estimates.POST("/weekly", h.EstimateWeek)
	}
}

func (h *EstimateHandler) ListProfiles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"profiles": h.svc.Profiles()})
}

func (h *EstimateHandler) GetProfile(c *gin.Context) {
	profile, err := h.svc.Profile(c.Param("housing"), c.Param("bhk"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *EstimateHandler) GetAdjustment(c *gin.Context) {
	raw := c.Query("temperature")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "temperature query parameter is required"})
		return
	}

	temp, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "temperature must be a number"})
		return
	}
	if err := domain.ValidateTemperature(temp); err != nil {
		respondError(c, err)
		return
	}

	effective := domain.ClampTemperature(temp)
	resp := gin.H{
		"effective_temperature_c": effective,
		"adjustment_factor":       domain.AdjustmentFactor(temp),
		"weather":                 domain.WeatherBandFor(effective),
	}
	// JSON has no encoding for infinities.
	if !math.IsInf(temp, 0) {
		resp["temperature_c"] = temp
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EstimateHandler) EstimateDay(c *gin.Context) {
	var req dailyEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	day, err := h.svc.EstimateDay(c.Request.Context(), services.DailyEstimateInput{
		Day:          req.Day,
		HousingType:  req.HousingType,
		BHK:          string(req.BHK),
		TemperatureC: *req.TemperatureC,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, day)
}

func (h *EstimateHandler) EstimateWeek(c *gin.Context) {
	var req weeklyEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	estimate, err := h.svc.EstimateWeek(c.Request.Context(), services.WeeklyEstimateInput{
		Name:         req.Name,
		City:         req.City,
		Area:         req.Area,
		Age:          req.Age,
		HousingType:  req.HousingType,
		BHK:          string(req.BHK),
		Temperatures: req.Temperatures,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, estimate)
}
