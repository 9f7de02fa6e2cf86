package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tombolaviva/tombola-backend/internal/models"
	"github.com/tombolaviva/tombola-backend/internal/repositories"
	"github.com/tombolaviva/tombola-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure RaffleServiceImpl implements RaffleService
var _ RaffleService = (*RaffleServiceImpl)(nil)

const recentWinnersLimit = 3

// RaffleServiceImpl handles the raffle ledger: collecting a participant
// list into a pending raffle, committing a winner, and deriving the
// winner history.
type RaffleServiceImpl struct {
	raffleRepo repositories.RaffleRepository
	fundsRepo  repositories.FundsRepository
	tx         repositories.TxRunner
	opTimeout  time.Duration
}

// NewRaffleService creates a new RaffleServiceImpl
func NewRaffleService(
	raffleRepo repositories.RaffleRepository,
	fundsRepo repositories.FundsRepository,
	tx repositories.TxRunner,
	opTimeout time.Duration,
) *RaffleServiceImpl {
	return &RaffleServiceImpl{
		raffleRepo: raffleRepo,
		fundsRepo:  fundsRepo,
		tx:         tx,
		opTimeout:  opTimeout,
	}
}

// CreateRaffle validates the participants, then atomically creates the
// pending raffle and adds its ticket total to the funds ledger. The
// funds increment becomes visible only once the transaction commits.
func (s *RaffleServiceImpl) CreateRaffle(ctx context.Context, participants []models.Participant) (*models.Raffle, error) {
	if err := models.ValidateParticipants(participants); err != nil {
		return nil, err
	}

	ctx, cancel := opContext(ctx, s.opTimeout)
	defer cancel()

	raffle := &models.Raffle{
		Participants: participants,
		RaffleTotal:  models.RaffleTotal(participants),
		CreatedDate:  time.Now(),
		Status:       models.RaffleStatusPending,
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.fundsRepo.IncrementTotal(ctx, raffle.RaffleTotal); err != nil {
			return err
		}
		return s.raffleRepo.Create(ctx, raffle)
	})
	if err != nil {
		slog.Error("Failed to create raffle", "error", err, "participants", len(participants))
		return nil, classify(err)
	}

	slog.Info("Raffle created", "raffleId", raffle.ID.Hex(), "participants", len(participants), "raffleTotal", raffle.RaffleTotal)
	return raffle, nil
}

// GetRaffleByID retrieves a raffle by id
func (s *RaffleServiceImpl) GetRaffleByID(ctx context.Context, id primitive.ObjectID) (*models.Raffle, error) {
	ctx, cancel := opContext(ctx, s.opTimeout)
	defer cancel()

	raffle, err := s.raffleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, classify(err)
	}
	return raffle, nil
}

// SetRaffleWinner commits winnerName to a pending raffle. The name must
// match one of the raffle's participants, and a completed raffle is
// never overwritten.
func (s *RaffleServiceImpl) SetRaffleWinner(ctx context.Context, id primitive.ObjectID, winnerName string) (*models.Raffle, error) {
	winnerName = strings.TrimSpace(winnerName)
	if winnerName == "" {
		return nil, fmt.Errorf("%w: winner name is required", models.ErrInvalidInput)
	}

	ctx, cancel := opContext(ctx, s.opTimeout)
	defer cancel()

	raffle, err := s.raffleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, classify(err)
	}
	if raffle.Status == models.RaffleStatusCompleted {
		slog.Warn("Rejected winner overwrite on completed raffle", "raffleId", id.Hex(), "winner", raffle.Winner)
		return nil, models.ErrAlreadyCompleted
	}
	if !raffle.HasParticipant(winnerName) {
		return nil, fmt.Errorf("%w: %q is not a participant of this raffle", models.ErrInvalidInput, winnerName)
	}

	drawDate := time.Now()
	if err := s.raffleRepo.SetWinner(ctx, id, winnerName, drawDate); err != nil {
		slog.Error("Failed to set raffle winner", "error", err, "raffleId", id.Hex())
		return nil, classify(err)
	}

	raffle.Winner = winnerName
	raffle.DrawDate = drawDate
	raffle.Status = models.RaffleStatusCompleted
	slog.Info("Raffle winner committed", "raffleId", id.Hex(), "winner", winnerName)
	return raffle, nil
}

// DrawWinner selects a uniformly random participant and commits the
// result. Selection happens before the response returns, so any wheel
// animation on the client is playback of a decided outcome.
func (s *RaffleServiceImpl) DrawWinner(ctx context.Context, id primitive.ObjectID) (*models.DrawResult, error) {
	ctx, cancel := opContext(ctx, s.opTimeout)
	defer cancel()

	raffle, err := s.raffleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, classify(err)
	}
	if raffle.Status == models.RaffleStatusCompleted {
		return nil, models.ErrAlreadyCompleted
	}

	idx, err := utils.RandomIndex(len(raffle.Participants))
	if err != nil {
		return nil, classify(err)
	}
	winnerName := raffle.Participants[idx].Name

	drawDate := time.Now()
	if err := s.raffleRepo.SetWinner(ctx, id, winnerName, drawDate); err != nil {
		slog.Error("Failed to commit drawn winner", "error", err, "raffleId", id.Hex())
		return nil, classify(err)
	}

	raffle.Winner = winnerName
	raffle.DrawDate = drawDate
	raffle.Status = models.RaffleStatusCompleted
	slog.Info("Raffle winner drawn", "raffleId", id.Hex(), "winner", winnerName, "winnerIndex", idx)

	return &models.DrawResult{
		Raffle:      raffle,
		WinnerIndex: idx,
		Winner:      winnerName,
	}, nil
}

// GetAllWinners returns every completed raffle's (winner, drawDate)
// pair, most recent draw first
func (s *RaffleServiceImpl) GetAllWinners(ctx context.Context) ([]*models.Winner, error) {
	return s.winners(ctx, 0)
}

// GetRecentWinners returns the three most recent winners
func (s *RaffleServiceImpl) GetRecentWinners(ctx context.Context) ([]*models.Winner, error) {
	return s.winners(ctx, recentWinnersLimit)
}

func (s *RaffleServiceImpl) winners(ctx context.Context, limit int64) ([]*models.Winner, error) {
	ctx, cancel := opContext(ctx, s.opTimeout)
	defer cancel()

	raffles, err := s.raffleRepo.FindCompleted(ctx, limit)
	if err != nil {
		return nil, classify(err)
	}
	winners := make([]*models.Winner, 0, len(raffles))
	for _, r := range raffles {
		if r.Winner == "" || r.DrawDate.IsZero() {
			continue
		}
		winners = append(winners, &models.Winner{Name: r.Winner, Date: r.DrawDate})
	}
	return winners, nil
}
