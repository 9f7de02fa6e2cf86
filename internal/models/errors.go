package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for the ledger core. Services wrap these with context
// via fmt.Errorf("...: %w", err) so callers can classify failures with
// errors.Is.
var (
	// ErrInvalidInput marks malformed or out-of-range caller data. Never
	// retried; surfaced to the user for correction.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a referenced raffle or withdrawal id with no
	// backing document.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyCompleted marks an attempt to re-draw a raffle whose
	// winner has already been committed.
	ErrAlreadyCompleted = errors.New("raffle already completed")

	// ErrPersistence marks a store failure: unreachable, timed out, or a
	// transaction aborted after the store's own retries were exhausted.
	// The caller may retry the whole logical operation.
	ErrPersistence = errors.New("persistence failure")
)

// InsufficientFundsError is returned when a withdrawal exceeds the
// available balance. It carries the balance computed inside the
// transaction so the caller can adjust the amount.
type InsufficientFundsError struct {
	Requested float64
	Balance   float64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: requested %.2f, balance %.2f", e.Requested, e.Balance)
}
