package services

import (
	"context"
	"time"

	"github.com/tombolaviva/tombola-backend/internal/models"
	"github.com/tombolaviva/tombola-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure FundsServiceImpl implements FundsService
var _ FundsService = (*FundsServiceImpl)(nil)

// FundsServiceImpl handles the funds ledger: the running totals of money
// collected versus withdrawn, and the append-only withdrawal log.
type FundsServiceImpl struct {
	fundsRepo      repositories.FundsRepository
	withdrawalRepo repositories.WithdrawalRepository
	tx             repositories.TxRunner
	opTimeout      time.Duration
}

// NewFundsService creates a new FundsServiceImpl
func NewFundsService(
	fundsRepo repositories.FundsRepository,
	withdrawalRepo repositories.WithdrawalRepository,
	tx repositories.TxRunner,
	opTimeout time.Duration,
) *FundsServiceImpl {
	return &FundsServiceImpl{
		fundsRepo:      fundsRepo,
		withdrawalRepo: withdrawalRepo,
		tx:             tx,
		opTimeout:      opTimeout,
	}
}

// GetFunds returns the ledger totals, defaulting to {0,0} before the
// first raffle is created
func (s *FundsServiceImpl) GetFunds(ctx context.Context) (*models.Funds, error) {
	ctx, cancel := opContext(ctx, s.opTimeout)
	defer cancel()

	funds, err := s.fundsRepo.Get(ctx)
	if err != nil {
		return nil, classify(err)
	}
	return funds, nil
}

// AddWithdrawal records an approved withdrawal. The balance is read
// inside the same transaction as the write, so two concurrent requests
// cannot both clear a balance that only covers one of them.
func (s *FundsServiceImpl) AddWithdrawal(ctx context.Context, req *models.WithdrawalRequest) (*models.Withdrawal, error) {
	if err := models.ValidateWithdrawalRequest(req); err != nil {
		return nil, err
	}

	ctx, cancel := opContext(ctx, s.opTimeout)
	defer cancel()

	withdrawal := &models.Withdrawal{
		SolicitudID: req.SolicitudID,
		Name:        req.Name,
		Amount:      req.Amount,
		Declaration: req.Declaration,
		Observation: req.Observation,
		Date:        time.Now(),
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		funds, err := s.fundsRepo.Get(ctx)
		if err != nil {
			return err
		}
		if req.Amount > funds.Balance() {
			return &models.InsufficientFundsError{Requested: req.Amount, Balance: funds.Balance()}
		}
		if err := s.withdrawalRepo.Create(ctx, withdrawal); err != nil {
			return err
		}
		return s.fundsRepo.IncrementWithdrawn(ctx, req.Amount)
	})
	if err != nil {
		slog.Warn("Withdrawal rejected", "error", err, "solicitudId", req.SolicitudID, "amount", req.Amount)
		return nil, classify(err)
	}

	slog.Info("Withdrawal recorded", "withdrawalId", withdrawal.ID.Hex(), "solicitudId", req.SolicitudID, "amount", req.Amount)
	return withdrawal, nil
}

// GetWithdrawals returns all withdrawal records, date descending
func (s *FundsServiceImpl) GetWithdrawals(ctx context.Context) ([]*models.Withdrawal, error) {
	ctx, cancel := opContext(ctx, s.opTimeout)
	defer cancel()

	withdrawals, err := s.withdrawalRepo.FindAll(ctx)
	if err != nil {
		return nil, classify(err)
	}
	return withdrawals, nil
}

// GetWithdrawalByID retrieves a single withdrawal record, used for the
// printable receipt view
func (s *FundsServiceImpl) GetWithdrawalByID(ctx context.Context, id primitive.ObjectID) (*models.Withdrawal, error) {
	ctx, cancel := opContext(ctx, s.opTimeout)
	defer cancel()

	withdrawal, err := s.withdrawalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, classify(err)
	}
	return withdrawal, nil
}
