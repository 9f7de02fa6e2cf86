package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tombolaviva/tombola-backend/internal/models"
	"github.com/tombolaviva/tombola-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RaffleHandler handles raffle-related HTTP requests
type RaffleHandler struct {
	raffleService services.RaffleService
}

// NewRaffleHandler creates a new RaffleHandler
func NewRaffleHandler(raffleService services.RaffleService) *RaffleHandler {
	return &RaffleHandler{
		raffleService: raffleService,
	}
}

// CreateRaffle handles POST /ruletas
func (h *RaffleHandler) CreateRaffle(c *gin.Context) {
	var request models.CreateRaffleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	raffle, err := h.raffleService.CreateRaffle(c.Request.Context(), request.Participants)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, raffle)
}

// GetRaffleByID handles GET /ruletas/:id
func (h *RaffleHandler) GetRaffleByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	raffle, err := h.raffleService.GetRaffleByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, raffle)
}

// SetWinner handles POST /ruletas/:id/winner
func (h *RaffleHandler) SetWinner(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var request models.SetWinnerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	raffle, err := h.raffleService.SetRaffleWinner(c.Request.Context(), id, request.Winner)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, raffle)
}

// DrawWinner handles POST /ruletas/:id/draw
func (h *RaffleHandler) DrawWinner(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	result, err := h.raffleService.DrawWinner(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetAllWinners handles GET /winners
func (h *RaffleHandler) GetAllWinners(c *gin.Context) {
	winners, err := h.raffleService.GetAllWinners(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, winners)
}

// GetRecentWinners handles GET /winners/recent
func (h *RaffleHandler) GetRecentWinners(c *gin.Context) {
	winners, err := h.raffleService.GetRecentWinners(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, winners)
}
