package models

import "time"

// Winner is the derived public view of a completed raffle: who won and
// when the draw happened. It is computed from raffle documents, not
// stored separately.
type Winner struct {
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}
