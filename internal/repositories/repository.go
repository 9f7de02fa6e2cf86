package repositories

import (
	"context"
	"time"

	"github.com/tombolaviva/tombola-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TxRunner runs a function inside a store transaction. Reads and writes
// issued through the callback's context observe and join the same
// transaction; the store may retry the callback on conflict, so it must
// be safe to run more than once.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// RaffleRepository defines the interface for raffle data operations
type RaffleRepository interface {
	Create(ctx context.Context, raffle *models.Raffle) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Raffle, error)
	// SetWinner marks the raffle completed with the given winner and draw
	// date. The participant list is never touched.
	SetWinner(ctx context.Context, id primitive.ObjectID, winner string, drawDate time.Time) error
	// FindCompleted returns completed raffles sorted by drawDate
	// descending. A limit <= 0 means no limit.
	FindCompleted(ctx context.Context, limit int64) ([]*models.Raffle, error)
}

// FundsRepository defines the interface for the funds summary document
type FundsRepository interface {
	// Get returns the ledger, defaulting to {0,0} when the summary
	// document does not exist yet.
	Get(ctx context.Context) (*models.Funds, error)
	// IncrementTotal adds amount to the collected total, creating the
	// summary document if absent.
	IncrementTotal(ctx context.Context, amount float64) error
	// IncrementWithdrawn adds amount to the withdrawn counter, creating
	// the summary document if absent.
	IncrementWithdrawn(ctx context.Context, amount float64) error
}

// WithdrawalRepository defines the interface for withdrawal records.
// Records are append-only.
type WithdrawalRepository interface {
	Create(ctx context.Context, withdrawal *models.Withdrawal) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Withdrawal, error)
	// FindAll returns all withdrawals sorted by date descending.
	FindAll(ctx context.Context) ([]*models.Withdrawal, error)
}

// AdminUserRepository defines the interface for operator accounts
type AdminUserRepository interface {
	Create(ctx context.Context, user *models.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	Count(ctx context.Context) (int64, error)
}
