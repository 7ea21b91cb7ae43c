package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-energy/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-energy/internal/core/domain"
)

const invalidConfigMessage = "please choose a supported configuration"

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidConfig):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)

	switch status {
	case http.StatusUnprocessableEntity:
		c.JSON(status, gin.H{"error": invalidConfigMessage, "detail": err.Error()})
	case http.StatusBadRequest:
		c.JSON(status, gin.H{"error": err.Error()})
	default:
		log.Printf("[HTTP] request %s failed: %v", middleware.GetRequestID(c), err)
		c.JSON(status, gin.H{"error": "internal server error"})
	}
}
