package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Withdrawal is one approved, immutable record of money removed from the
// balance. Records are append-only; the core never updates or deletes
// them.
type Withdrawal struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SolicitudID string             `bson:"solicitudId" json:"solicitudId"`
	Name        string             `bson:"name" json:"name"`
	Amount      float64            `bson:"amount" json:"amount"`
	Declaration string             `bson:"declaration" json:"declaration"`
	Observation string             `bson:"observation" json:"observation"`
	Date        time.Time          `bson:"date" json:"date"`
}

// WithdrawalRequest defines the payload for submitting a withdrawal
type WithdrawalRequest struct {
	SolicitudID string  `json:"solicitudId" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Declaration string  `json:"declaration" binding:"required"`
	Observation string  `json:"observation" binding:"required,min=10,max=500"`
}
