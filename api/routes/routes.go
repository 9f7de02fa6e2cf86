package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/tombolaviva/tombola-backend/internal/config"
	"github.com/tombolaviva/tombola-backend/internal/handlers"
	"github.com/tombolaviva/tombola-backend/internal/middleware"
)

// HandlerDependencies groups the handlers the router needs
type HandlerDependencies struct {
	AuthHandler   *handlers.AuthHandler
	RaffleHandler *handlers.RaffleHandler
	FundsHandler  *handlers.FundsHandler
}

// SetupRouter sets up the router: public read-only endpoints plus a
// JWT-protected admin surface for mutations.
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		auth := public.Group("/auth")
		{
			auth.POST("/login", deps.AuthHandler.Login)
		}

		// Read-only views backing the public pages
		public.GET("/funds", deps.FundsHandler.GetFunds)
		public.GET("/winners", deps.RaffleHandler.GetAllWinners)
		public.GET("/winners/recent", deps.RaffleHandler.GetRecentWinners)
		public.GET("/withdrawals", deps.FundsHandler.GetWithdrawals)
	}

	// Protected routes
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		// Raffle routes
		raffles := protected.Group("/ruletas")
		{
			raffles.POST("", deps.RaffleHandler.CreateRaffle)
			raffles.GET("/:id", deps.RaffleHandler.GetRaffleByID)
			raffles.POST("/:id/winner", deps.RaffleHandler.SetWinner)
			raffles.POST("/:id/draw", deps.RaffleHandler.DrawWinner)
		}

		// Withdrawal routes
		withdrawals := protected.Group("/retiros")
		{
			withdrawals.POST("", deps.FundsHandler.AddWithdrawal)
			withdrawals.GET("/:id", deps.FundsHandler.GetWithdrawalByID)
		}
	}

	return router
}
