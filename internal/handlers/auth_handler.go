package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tombolaviva/tombola-backend/internal/models"
	"github.com/tombolaviva/tombola-backend/internal/services"
)

// AuthHandler handles admin authentication requests
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var request models.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), &request)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.LoginResponse{Token: token})
}
