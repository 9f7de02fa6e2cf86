package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/tombolaviva/tombola-backend/api/routes"
	"github.com/tombolaviva/tombola-backend/internal/config"
	"github.com/tombolaviva/tombola-backend/internal/handlers"
	"github.com/tombolaviva/tombola-backend/internal/repositories"
	mongorepo "github.com/tombolaviva/tombola-backend/internal/repositories/mongodb"
	"github.com/tombolaviva/tombola-backend/internal/services"
	mongodb "github.com/tombolaviva/tombola-backend/pkg/mongodb"
)

func main() {
	// Load .env if present; real deployments rely on the environment
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err = mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Repositories
	var raffleRepo repositories.RaffleRepository = mongorepo.NewRaffleRepository(db)
	var fundsRepo repositories.FundsRepository = mongorepo.NewFundsRepository(db)
	var withdrawalRepo repositories.WithdrawalRepository = mongorepo.NewWithdrawalRepository(db)
	var adminRepo repositories.AdminUserRepository = mongorepo.NewAdminUserRepository(db)
	var tx repositories.TxRunner = mongoClient

	opTimeout := time.Duration(cfg.MongoDB.OpTimeoutSeconds) * time.Second

	// Services
	raffleService := services.NewRaffleService(raffleRepo, fundsRepo, tx, opTimeout)
	fundsService := services.NewFundsService(fundsRepo, withdrawalRepo, tx, opTimeout)
	authService := services.NewAuthService(adminRepo, cfg)

	// Create the first admin account when the collection is empty
	bootstrapCtx, cancelBootstrap := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authService.EnsureBootstrapAdmin(bootstrapCtx); err != nil {
		log.Printf("Bootstrap admin setup failed: %v", err)
	}
	cancelBootstrap()

	// Handlers
	handlerDeps := routes.HandlerDependencies{
		AuthHandler:   handlers.NewAuthHandler(authService),
		RaffleHandler: handlers.NewRaffleHandler(raffleService),
		FundsHandler:  handlers.NewFundsHandler(fundsService),
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
