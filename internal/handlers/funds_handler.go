package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tombolaviva/tombola-backend/internal/models"
	"github.com/tombolaviva/tombola-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FundsHandler handles funds- and withdrawal-related HTTP requests
type FundsHandler struct {
	fundsService services.FundsService
}

// NewFundsHandler creates a new FundsHandler
func NewFundsHandler(fundsService services.FundsService) *FundsHandler {
	return &FundsHandler{
		fundsService: fundsService,
	}
}

// GetFunds handles GET /funds
func (h *FundsHandler) GetFunds(c *gin.Context) {
	funds, err := h.fundsService.GetFunds(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.FundsResponse{
		Total:     funds.Total,
		Withdrawn: funds.Withdrawn,
		Balance:   funds.Balance(),
	})
}

// AddWithdrawal handles POST /retiros
func (h *FundsHandler) AddWithdrawal(c *gin.Context) {
	var request models.WithdrawalRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	withdrawal, err := h.fundsService.AddWithdrawal(c.Request.Context(), &request)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, withdrawal)
}

// GetWithdrawals handles GET /withdrawals
func (h *FundsHandler) GetWithdrawals(c *gin.Context) {
	withdrawals, err := h.fundsService.GetWithdrawals(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, withdrawals)
}

// GetWithdrawalByID handles GET /retiros/:id
func (h *FundsHandler) GetWithdrawalByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	withdrawal, err := h.fundsService.GetWithdrawalByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, withdrawal)
}
