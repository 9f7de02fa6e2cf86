package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/tombolaviva/tombola-backend/internal/models"
	"github.com/tombolaviva/tombola-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RaffleRepository implements the repositories.RaffleRepository interface
// over the "ruletas" collection.
type RaffleRepository struct {
	collection *mongo.Collection
}

// NewRaffleRepository creates a new RaffleRepository
func NewRaffleRepository(db *mongo.Database) repositories.RaffleRepository {
	return &RaffleRepository{
		collection: db.Collection("ruletas"),
	}
}

// Create inserts a new raffle document and assigns its id
func (r *RaffleRepository) Create(ctx context.Context, raffle *models.Raffle) error {
	res, err := r.collection.InsertOne(ctx, raffle)
	if err != nil {
		return err
	}
	raffle.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a raffle by id
func (r *RaffleRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Raffle, error) {
	var raffle models.Raffle
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&raffle)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &raffle, nil
}

// SetWinner records the winner and draw date and flips the raffle to
// completed. The update matches only a pending raffle, so a winner that
// has already been committed is never overwritten, regardless of what
// the caller observed beforehand.
func (r *RaffleRepository) SetWinner(ctx context.Context, id primitive.ObjectID, winner string, drawDate time.Time) error {
	update := bson.M{
		"$set": bson.M{
			"winner":   winner,
			"drawDate": drawDate,
			"status":   models.RaffleStatusCompleted,
		},
	}
	filter := bson.M{"_id": id, "status": models.RaffleStatusPending}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Distinguish a missing raffle from one completed in the meantime
		if _, err := r.FindByID(ctx, id); err != nil {
			return err
		}
		return models.ErrAlreadyCompleted
	}
	return nil
}

// FindCompleted finds completed raffles sorted by drawDate descending
func (r *RaffleRepository) FindCompleted(ctx context.Context, limit int64) ([]*models.Raffle, error) {
	filter := bson.M{"status": models.RaffleStatusCompleted}
	opts := options.Find().SetSort(bson.M{"drawDate": -1})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var raffles []*models.Raffle
	if err := cursor.All(ctx, &raffles); err != nil {
		return nil, err
	}
	if raffles == nil {
		raffles = []*models.Raffle{}
	}
	return raffles, nil
}
