package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func validParticipants() []Participant {
	return []Participant{
		{Name: "Juan Pérez", TicketValue: 25, Number: 1},
		{Name: "María López", TicketValue: 25, Number: 2},
		{Name: "Pedro Gómez", TicketValue: 50, Number: 50},
	}
}

func TestValidateParticipants(t *testing.T) {
	require.NoError(t, ValidateParticipants(validParticipants()))
}

func TestValidateParticipantsRejectsBadInput(t *testing.T) {
	cases := []struct {
		name         string
		participants []Participant
	}{
		{"empty list", nil},
		{"empty name", []Participant{{Name: "  ", TicketValue: 25, Number: 1}}},
		{"zero ticket value", []Participant{{Name: "Ana", TicketValue: 0, Number: 1}}},
		{"negative ticket value", []Participant{{Name: "Ana", TicketValue: -5, Number: 1}}},
		{"number below range", []Participant{{Name: "Ana", TicketValue: 25, Number: 0}}},
		{"number above range", []Participant{{Name: "Ana", TicketValue: 25, Number: 51}}},
		{"duplicate number", []Participant{
			{Name: "Ana", TicketValue: 25, Number: 7},
			{Name: "Luis", TicketValue: 25, Number: 7},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateParticipants(tc.participants)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidInput), "expected ErrInvalidInput, got %v", err)
		})
	}
}

func TestRaffleTotal(t *testing.T) {
	require.Equal(t, 100.0, RaffleTotal(validParticipants()))
	require.Equal(t, 0.0, RaffleTotal(nil))
}

func TestValidateWithdrawalRequest(t *testing.T) {
	valid := WithdrawalRequest{
		SolicitudID: "SOL-2024-001",
		Name:        "Carla Ruiz",
		Amount:      150,
		Declaration: "Declaro que los fondos se destinan al premio.",
		Observation: "Retiro para el pago del premio de la semana.",
	}
	require.NoError(t, ValidateWithdrawalRequest(&valid))

	cases := []struct {
		name   string
		mutate func(r *WithdrawalRequest)
	}{
		{"missing solicitudId", func(r *WithdrawalRequest) { r.SolicitudID = "" }},
		{"missing name", func(r *WithdrawalRequest) { r.Name = "   " }},
		{"zero amount", func(r *WithdrawalRequest) { r.Amount = 0 }},
		{"negative amount", func(r *WithdrawalRequest) { r.Amount = -20 }},
		{"missing declaration", func(r *WithdrawalRequest) { r.Declaration = "" }},
		{"observation too short", func(r *WithdrawalRequest) { r.Observation = "corta" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			err := ValidateWithdrawalRequest(&req)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidInput), "expected ErrInvalidInput, got %v", err)
		})
	}

	require.True(t, errors.Is(ValidateWithdrawalRequest(nil), ErrInvalidInput))
}

func TestHasParticipant(t *testing.T) {
	raffle := Raffle{Participants: validParticipants()}
	require.True(t, raffle.HasParticipant("Juan Pérez"))
	require.False(t, raffle.HasParticipant("Desconocido"))
}

func TestFundsBalance(t *testing.T) {
	funds := Funds{Total: 1000, Withdrawn: 200}
	require.Equal(t, 800.0, funds.Balance())
	require.Equal(t, 0.0, Funds{}.Balance())
}
