// Package memory provides in-memory implementations of the repository
// interfaces. They back the service tests and local development without
// a MongoDB instance; semantics mirror the mongodb package, including
// {0,0} funds defaults and drawDate/date-descending ordering.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tombolaviva/tombola-backend/internal/models"
	"github.com/tombolaviva/tombola-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store holds all collections behind one lock. Repositories returned by
// its accessors are views over the same state.
type Store struct {
	mu          sync.RWMutex
	txMu        sync.Mutex
	raffles     map[primitive.ObjectID]*models.Raffle
	funds       models.Funds
	withdrawals []*models.Withdrawal
	admins      map[string]*models.AdminUser
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		raffles: make(map[primitive.ObjectID]*models.Raffle),
		admins:  make(map[string]*models.AdminUser),
	}
}

// WithTransaction serializes transactional blocks against each other so
// that a read-modify-write on funds cannot interleave with another.
// There is no rollback: callers perform all checks before any write,
// matching how the services use the transaction.
func (s *Store) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn(ctx)
}

// Raffles returns the raffle repository view
func (s *Store) Raffles() repositories.RaffleRepository { return (*raffleRepo)(s) }

// Funds returns the funds repository view
func (s *Store) Funds() repositories.FundsRepository { return (*fundsRepo)(s) }

// Withdrawals returns the withdrawal repository view
func (s *Store) Withdrawals() repositories.WithdrawalRepository { return (*withdrawalRepo)(s) }

// AdminUsers returns the admin user repository view
func (s *Store) AdminUsers() repositories.AdminUserRepository { return (*adminRepo)(s) }

type raffleRepo Store

func (r *raffleRepo) Create(_ context.Context, raffle *models.Raffle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	raffle.ID = primitive.NewObjectID()
	clone := *raffle
	clone.Participants = append([]models.Participant(nil), raffle.Participants...)
	r.raffles[raffle.ID] = &clone
	return nil
}

func (r *raffleRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Raffle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	raffle, ok := r.raffles[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	clone := *raffle
	clone.Participants = append([]models.Participant(nil), raffle.Participants...)
	return &clone, nil
}

func (r *raffleRepo) SetWinner(_ context.Context, id primitive.ObjectID, winner string, drawDate time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	raffle, ok := r.raffles[id]
	if !ok {
		return models.ErrNotFound
	}
	if raffle.Status == models.RaffleStatusCompleted {
		return models.ErrAlreadyCompleted
	}
	raffle.Winner = winner
	raffle.DrawDate = drawDate
	raffle.Status = models.RaffleStatusCompleted
	return nil
}

func (r *raffleRepo) FindCompleted(_ context.Context, limit int64) ([]*models.Raffle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	completed := []*models.Raffle{}
	for _, raffle := range r.raffles {
		if raffle.Status != models.RaffleStatusCompleted {
			continue
		}
		clone := *raffle
		clone.Participants = append([]models.Participant(nil), raffle.Participants...)
		completed = append(completed, &clone)
	}
	sort.Slice(completed, func(i, j int) bool {
		return completed[i].DrawDate.After(completed[j].DrawDate)
	})
	if limit > 0 && int64(len(completed)) > limit {
		completed = completed[:limit]
	}
	return completed, nil
}

type fundsRepo Store

func (r *fundsRepo) Get(_ context.Context) (*models.Funds, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	funds := r.funds
	return &funds, nil
}

func (r *fundsRepo) IncrementTotal(_ context.Context, amount float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funds.Total += amount
	return nil
}

func (r *fundsRepo) IncrementWithdrawn(_ context.Context, amount float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funds.Withdrawn += amount
	return nil
}

type withdrawalRepo Store

func (r *withdrawalRepo) Create(_ context.Context, withdrawal *models.Withdrawal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	withdrawal.ID = primitive.NewObjectID()
	clone := *withdrawal
	r.withdrawals = append(r.withdrawals, &clone)
	return nil
}

func (r *withdrawalRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Withdrawal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.withdrawals {
		if w.ID == id {
			clone := *w
			return &clone, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *withdrawalRepo) FindAll(_ context.Context) ([]*models.Withdrawal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]*models.Withdrawal, 0, len(r.withdrawals))
	for _, w := range r.withdrawals {
		clone := *w
		all = append(all, &clone)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Date.After(all[j].Date)
	})
	return all, nil
}

type adminRepo Store

func (r *adminRepo) Create(_ context.Context, user *models.AdminUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	clone := *user
	r.admins[user.Email] = &clone
	return nil
}

func (r *adminRepo) FindByEmail(_ context.Context, email string) (*models.AdminUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.admins[email]
	if !ok {
		return nil, models.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *adminRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.admins)), nil
}
