package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tombolaviva/tombola-backend/internal/models"
	"github.com/tombolaviva/tombola-backend/internal/services"
)

// writeError maps domain errors onto HTTP statuses. Store failures are
// reported as a generic 500 without leaking driver details; the
// insufficient-funds case carries the computed balance so the client can
// adjust the requested amount.
func writeError(c *gin.Context, err error) {
	var insufficient *models.InsufficientFundsError
	switch {
	case errors.As(err, &insufficient):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":     "withdrawal exceeds available funds",
			"requested": insufficient.Requested,
			"balance":   insufficient.Balance,
		})
	case errors.Is(err, models.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, models.ErrAlreadyCompleted):
		c.JSON(http.StatusConflict, gin.H{"error": "raffle already has a winner"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
