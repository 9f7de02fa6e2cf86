package models

// Funds is the process-wide two-counter ledger: cumulative money
// collected from raffle creation and cumulative money withdrawn. Both
// counters only ever increase, and Withdrawn never exceeds Total.
type Funds struct {
	Total     float64 `bson:"total" json:"total"`
	Withdrawn float64 `bson:"withdrawn" json:"withdrawn"`
}

// Balance returns the money still available for withdrawal.
func (f Funds) Balance() float64 {
	return f.Total - f.Withdrawn
}

// FundsResponse is the public view of the ledger with the derived
// balance included.
type FundsResponse struct {
	Total     float64 `json:"total"`
	Withdrawn float64 `json:"withdrawn"`
	Balance   float64 `json:"balance"`
}
