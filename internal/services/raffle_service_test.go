package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tombolaviva/tombola-backend/internal/models"
	"github.com/tombolaviva/tombola-backend/internal/repositories/memory"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newRaffleService(store *memory.Store) *RaffleServiceImpl {
	return NewRaffleService(store.Raffles(), store.Funds(), store, 0)
}

func testParticipants() []models.Participant {
	return []models.Participant{
		{Name: "A", TicketValue: 25, Number: 1},
		{Name: "B", TicketValue: 25, Number: 2},
	}
}

func TestCreateRaffle(t *testing.T) {
	store := memory.NewStore()
	svc := newRaffleService(store)
	ctx := context.Background()

	raffle, err := svc.CreateRaffle(ctx, testParticipants())
	require.NoError(t, err)
	require.False(t, raffle.ID.IsZero())
	require.Equal(t, 50.0, raffle.RaffleTotal)
	require.Equal(t, models.RaffleStatusPending, raffle.Status)
	require.Empty(t, raffle.Winner)
	require.True(t, raffle.DrawDate.IsZero())

	funds, err := store.Funds().Get(ctx)
	require.NoError(t, err)
	require.Equal(t, 50.0, funds.Total)
	require.Equal(t, 0.0, funds.Withdrawn)

	stored, err := svc.GetRaffleByID(ctx, raffle.ID)
	require.NoError(t, err)
	require.Equal(t, raffle.Participants, stored.Participants)
}

func TestCreateRaffleAccumulatesFunds(t *testing.T) {
	store := memory.NewStore()
	svc := newRaffleService(store)
	ctx := context.Background()

	_, err := svc.CreateRaffle(ctx, testParticipants())
	require.NoError(t, err)
	_, err = svc.CreateRaffle(ctx, []models.Participant{{Name: "C", TicketValue: 30, Number: 3}})
	require.NoError(t, err)

	funds, err := store.Funds().Get(ctx)
	require.NoError(t, err)
	require.Equal(t, 80.0, funds.Total)
}

func TestCreateRaffleEmptyParticipants(t *testing.T) {
	store := memory.NewStore()
	svc := newRaffleService(store)
	ctx := context.Background()

	_, err := svc.CreateRaffle(ctx, nil)
	require.True(t, errors.Is(err, models.ErrInvalidInput))

	// A rejected creation leaves the ledger untouched
	funds, err := store.Funds().Get(ctx)
	require.NoError(t, err)
	require.Equal(t, 0.0, funds.Total)
}

func TestGetRaffleByIDNotFound(t *testing.T) {
	svc := newRaffleService(memory.NewStore())

	_, err := svc.GetRaffleByID(context.Background(), primitive.NewObjectID())
	require.True(t, errors.Is(err, models.ErrNotFound))
}

func TestSetRaffleWinner(t *testing.T) {
	store := memory.NewStore()
	svc := newRaffleService(store)
	ctx := context.Background()

	raffle, err := svc.CreateRaffle(ctx, testParticipants())
	require.NoError(t, err)

	updated, err := svc.SetRaffleWinner(ctx, raffle.ID, "A")
	require.NoError(t, err)
	require.Equal(t, models.RaffleStatusCompleted, updated.Status)
	require.Equal(t, "A", updated.Winner)
	require.False(t, updated.DrawDate.IsZero())

	stored, err := svc.GetRaffleByID(ctx, raffle.ID)
	require.NoError(t, err)
	require.Equal(t, models.RaffleStatusCompleted, stored.Status)
	require.Equal(t, "A", stored.Winner)

	// Funds are not touched by the draw
	funds, err := store.Funds().Get(ctx)
	require.NoError(t, err)
	require.Equal(t, 50.0, funds.Total)
	require.Equal(t, 0.0, funds.Withdrawn)
}

func TestSetRaffleWinnerAlreadyCompleted(t *testing.T) {
	svc := newRaffleService(memory.NewStore())
	ctx := context.Background()

	raffle, err := svc.CreateRaffle(ctx, testParticipants())
	require.NoError(t, err)

	_, err = svc.SetRaffleWinner(ctx, raffle.ID, "A")
	require.NoError(t, err)

	_, err = svc.SetRaffleWinner(ctx, raffle.ID, "B")
	require.True(t, errors.Is(err, models.ErrAlreadyCompleted))

	// The recorded winner is preserved
	stored, err := svc.GetRaffleByID(ctx, raffle.ID)
	require.NoError(t, err)
	require.Equal(t, "A", stored.Winner)
}

func TestConcurrentSetWinnerPreservesCommitted(t *testing.T) {
	store := memory.NewStore()
	svc := newRaffleService(store)
	ctx := context.Background()

	// Two operators race to commit different winners on the same pending
	// raffle. Exactly one commit must win and the other must be rejected,
	// on every interleaving.
	for i := 0; i < 200; i++ {
		raffle, err := svc.CreateRaffle(ctx, testParticipants())
		require.NoError(t, err)

		names := []string{"A", "B"}
		errs := make([]error, len(names))
		var wg sync.WaitGroup
		for j, name := range names {
			wg.Add(1)
			go func(j int, name string) {
				defer wg.Done()
				_, errs[j] = svc.SetRaffleWinner(ctx, raffle.ID, name)
			}(j, name)
		}
		wg.Wait()

		committed := ""
		for j, err := range errs {
			if err == nil {
				require.Empty(t, committed, "both commits succeeded")
				committed = names[j]
				continue
			}
			require.True(t, errors.Is(err, models.ErrAlreadyCompleted), "unexpected error: %v", err)
		}
		require.NotEmpty(t, committed, "no commit succeeded")

		stored, err := svc.GetRaffleByID(ctx, raffle.ID)
		require.NoError(t, err)
		require.Equal(t, committed, stored.Winner)
	}
}

func TestSetRaffleWinnerValidation(t *testing.T) {
	svc := newRaffleService(memory.NewStore())
	ctx := context.Background()

	raffle, err := svc.CreateRaffle(ctx, testParticipants())
	require.NoError(t, err)

	_, err = svc.SetRaffleWinner(ctx, raffle.ID, "  ")
	require.True(t, errors.Is(err, models.ErrInvalidInput))

	_, err = svc.SetRaffleWinner(ctx, raffle.ID, "Nobody")
	require.True(t, errors.Is(err, models.ErrInvalidInput))

	_, err = svc.SetRaffleWinner(ctx, primitive.NewObjectID(), "A")
	require.True(t, errors.Is(err, models.ErrNotFound))
}

func TestDrawWinner(t *testing.T) {
	svc := newRaffleService(memory.NewStore())
	ctx := context.Background()

	raffle, err := svc.CreateRaffle(ctx, testParticipants())
	require.NoError(t, err)

	result, err := svc.DrawWinner(ctx, raffle.ID)
	require.NoError(t, err)
	require.GreaterOrEqual(t, result.WinnerIndex, 0)
	require.Less(t, result.WinnerIndex, len(raffle.Participants))
	require.Equal(t, raffle.Participants[result.WinnerIndex].Name, result.Winner)
	require.Equal(t, models.RaffleStatusCompleted, result.Raffle.Status)

	// The outcome is committed before the caller ever sees it
	stored, err := svc.GetRaffleByID(ctx, raffle.ID)
	require.NoError(t, err)
	require.Equal(t, result.Winner, stored.Winner)

	_, err = svc.DrawWinner(ctx, raffle.ID)
	require.True(t, errors.Is(err, models.ErrAlreadyCompleted))
}

func TestWinnerHistory(t *testing.T) {
	store := memory.NewStore()
	svc := newRaffleService(store)
	ctx := context.Background()

	names := []string{"W1", "W2", "W3", "W4"}
	for i, name := range names {
		raffle, err := svc.CreateRaffle(ctx, []models.Participant{
			{Name: name, TicketValue: 10, Number: i + 1},
		})
		require.NoError(t, err)
		_, err = svc.SetRaffleWinner(ctx, raffle.ID, name)
		require.NoError(t, err)
		// Keep draw dates strictly ordered
		time.Sleep(2 * time.Millisecond)
	}

	all, err := svc.GetAllWinners(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	for i, expected := range []string{"W4", "W3", "W2", "W1"} {
		require.Equal(t, expected, all[i].Name)
	}
	for i := 1; i < len(all); i++ {
		require.False(t, all[i-1].Date.Before(all[i].Date))
	}

	recent, err := svc.GetRecentWinners(ctx)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	require.Equal(t, []string{"W4", "W3", "W2"}, []string{recent[0].Name, recent[1].Name, recent[2].Name})
}

func TestWinnersEmptyHistory(t *testing.T) {
	svc := newRaffleService(memory.NewStore())

	winners, err := svc.GetAllWinners(context.Background())
	require.NoError(t, err)
	require.Empty(t, winners)
}
