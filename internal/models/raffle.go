package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RaffleStatus represents the lifecycle state of a raffle
type RaffleStatus string

const (
	RaffleStatusPending   RaffleStatus = "pending"
	RaffleStatusCompleted RaffleStatus = "completed"
)

// Participant represents one ticket-holder entry in a raffle. The number
// is unique within the raffle and must fall in [MinParticipantNumber,
// MaxParticipantNumber].
type Participant struct {
	Name        string  `bson:"name" json:"name" binding:"required"`
	TicketValue float64 `bson:"ticketValue" json:"ticketValue" binding:"required,gt=0"`
	Number      int     `bson:"number" json:"number" binding:"required,min=1,max=50"`
}

// Raffle represents one draw cycle: a fixed participant list, a computed
// total and eventually a single winner. Winner and DrawDate are set
// together when the raffle transitions to completed; the participant list
// never changes after creation.
type Raffle struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Participants []Participant      `bson:"participants" json:"participants"`
	RaffleTotal  float64            `bson:"raffleTotal" json:"raffleTotal"`
	CreatedDate  time.Time          `bson:"date" json:"date"`
	Status       RaffleStatus       `bson:"status" json:"status"`
	Winner       string             `bson:"winner,omitempty" json:"winner,omitempty"`
	DrawDate     time.Time          `bson:"drawDate,omitempty" json:"drawDate,omitempty"`
}

// HasParticipant reports whether name matches one of the raffle's
// participants.
func (r *Raffle) HasParticipant(name string) bool {
	for _, p := range r.Participants {
		if p.Name == name {
			return true
		}
	}
	return false
}

// CreateRaffleRequest defines the payload for creating a raffle
type CreateRaffleRequest struct {
	Participants []Participant `json:"participants" binding:"required"`
}

// SetWinnerRequest defines the payload for committing an externally
// drawn winner
type SetWinnerRequest struct {
	Winner string `json:"winner" binding:"required"`
}

// DrawResult is returned by the server-side draw: the committed raffle
// plus the selected index so the presentation layer can animate a wheel
// toward an already-fixed outcome.
type DrawResult struct {
	Raffle      *Raffle `json:"raffle"`
	WinnerIndex int     `json:"winnerIndex"`
	Winner      string  `json:"winner"`
}
