package models

import (
	"fmt"
	"strings"
)

// Participant number bounds for a single raffle board.
const (
	MinParticipantNumber = 1
	MaxParticipantNumber = 50
)

// Observation length bounds for withdrawal requests.
const (
	MinObservationLen = 10
	MaxObservationLen = 500
)

// ValidateParticipants is the single authoritative check for a raffle's
// participant list. Every entry point that accepts participants goes
// through here; handlers may also carry binding tags but this function
// is the source of truth.
func ValidateParticipants(participants []Participant) error {
	if len(participants) == 0 {
		return fmt.Errorf("%w: at least one participant is required", ErrInvalidInput)
	}
	seen := make(map[int]struct{}, len(participants))
	for i, p := range participants {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("%w: participant %d has an empty name", ErrInvalidInput, i+1)
		}
		if p.TicketValue <= 0 {
			return fmt.Errorf("%w: participant %q has a non-positive ticket value", ErrInvalidInput, p.Name)
		}
		if p.Number < MinParticipantNumber || p.Number > MaxParticipantNumber {
			return fmt.Errorf("%w: participant %q number %d is outside [%d,%d]",
				ErrInvalidInput, p.Name, p.Number, MinParticipantNumber, MaxParticipantNumber)
		}
		if _, taken := seen[p.Number]; taken {
			return fmt.Errorf("%w: number %d is already taken", ErrInvalidInput, p.Number)
		}
		seen[p.Number] = struct{}{}
	}
	return nil
}

// ValidateWithdrawalRequest is the authoritative check for withdrawal
// submissions. Balance coverage is checked separately, inside the funds
// transaction.
func ValidateWithdrawalRequest(req *WithdrawalRequest) error {
	if req == nil {
		return fmt.Errorf("%w: withdrawal request is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.SolicitudID) == "" {
		return fmt.Errorf("%w: solicitudId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Declaration) == "" {
		return fmt.Errorf("%w: declaration is required", ErrInvalidInput)
	}
	if n := len(strings.TrimSpace(req.Observation)); n < MinObservationLen || n > MaxObservationLen {
		return fmt.Errorf("%w: observation must be between %d and %d characters",
			ErrInvalidInput, MinObservationLen, MaxObservationLen)
	}
	return nil
}

// RaffleTotal computes the exact ticket-value sum for a participant
// list.
func RaffleTotal(participants []Participant) float64 {
	var total float64
	for _, p := range participants {
		total += p.TicketValue
	}
	return total
}
