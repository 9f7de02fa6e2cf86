package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tombolaviva/tombola-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RaffleService defines the interface for raffle lifecycle operations
type RaffleService interface {
	// CreateRaffle validates the participant list, computes the ticket
	// total, and atomically persists the raffle while adding its total
	// to the funds ledger. Returns the created raffle with its id.
	CreateRaffle(ctx context.Context, participants []models.Participant) (*models.Raffle, error)

	// GetRaffleByID retrieves a raffle by its id
	GetRaffleByID(ctx context.Context, id primitive.ObjectID) (*models.Raffle, error)

	// SetRaffleWinner commits an externally drawn winner to a pending
	// raffle, marking it completed. Re-drawing a completed raffle is
	// rejected.
	SetRaffleWinner(ctx context.Context, id primitive.ObjectID, winnerName string) (*models.Raffle, error)

	// DrawWinner picks a uniformly random participant of a pending
	// raffle and commits it as the winner. The outcome is fixed before
	// any client-side animation starts.
	DrawWinner(ctx context.Context, id primitive.ObjectID) (*models.DrawResult, error)

	// GetAllWinners returns every completed raffle's winner, drawDate
	// descending
	GetAllWinners(ctx context.Context) ([]*models.Winner, error)

	// GetRecentWinners returns the three most recent winners
	GetRecentWinners(ctx context.Context) ([]*models.Winner, error)
}

// FundsService defines the interface for the funds ledger
type FundsService interface {
	// GetFunds returns the ledger totals, {0,0} when nothing has been
	// recorded yet
	GetFunds(ctx context.Context) (*models.Funds, error)

	// AddWithdrawal validates the request, checks the balance inside the
	// same transaction as the write, and records the withdrawal.
	AddWithdrawal(ctx context.Context, req *models.WithdrawalRequest) (*models.Withdrawal, error)

	// GetWithdrawals returns all withdrawal records, date descending
	GetWithdrawals(ctx context.Context) ([]*models.Withdrawal, error)

	// GetWithdrawalByID retrieves a single withdrawal record
	GetWithdrawalByID(ctx context.Context, id primitive.ObjectID) (*models.Withdrawal, error)
}

// AuthService defines the interface for admin authentication
type AuthService interface {
	// Login verifies admin credentials and returns a signed JWT
	Login(ctx context.Context, req *models.LoginRequest) (string, error)

	// EnsureBootstrapAdmin creates the initial admin account from
	// configuration when no accounts exist yet
	EnsureBootstrapAdmin(ctx context.Context) error
}

// opContext bounds a store-facing operation. A non-positive timeout
// leaves the caller's context untouched.
func opContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// classify keeps domain errors intact and folds everything else into
// ErrPersistence so handlers can map store failures uniformly.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, models.ErrInvalidInput) ||
		errors.Is(err, models.ErrNotFound) ||
		errors.Is(err, models.ErrAlreadyCompleted) {
		return err
	}
	var insufficient *models.InsufficientFundsError
	if errors.As(err, &insufficient) {
		return err
	}
	return fmt.Errorf("%w: %v", models.ErrPersistence, err)
}
