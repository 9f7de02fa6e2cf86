package mongodb

import (
	"context"
	"errors"

	"github.com/tombolaviva/tombola-backend/internal/models"
	"github.com/tombolaviva/tombola-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The ledger lives in a single document so that $inc updates and
// transactional reads always contend on one well-known key.
const fundsSummaryID = "summary"

// FundsRepository implements the repositories.FundsRepository interface
// over the "funds" collection.
type FundsRepository struct {
	collection *mongo.Collection
}

// NewFundsRepository creates a new FundsRepository
func NewFundsRepository(db *mongo.Database) repositories.FundsRepository {
	return &FundsRepository{
		collection: db.Collection("funds"),
	}
}

// Get returns the ledger, defaulting to {0,0} when the summary document
// has not been created yet.
func (r *FundsRepository) Get(ctx context.Context) (*models.Funds, error) {
	var funds models.Funds
	err := r.collection.FindOne(ctx, bson.M{"_id": fundsSummaryID}).Decode(&funds)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &models.Funds{}, nil
		}
		return nil, err
	}
	return &funds, nil
}

// IncrementTotal adds amount to the collected total, creating the
// summary document on first use.
func (r *FundsRepository) IncrementTotal(ctx context.Context, amount float64) error {
	return r.increment(ctx, "total", amount)
}

// IncrementWithdrawn adds amount to the withdrawn counter, creating the
// summary document on first use.
func (r *FundsRepository) IncrementWithdrawn(ctx context.Context, amount float64) error {
	return r.increment(ctx, "withdrawn", amount)
}

func (r *FundsRepository) increment(ctx context.Context, field string, amount float64) error {
	update := bson.M{"$inc": bson.M{field: amount}}
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": fundsSummaryID}, update, opts)
	return err
}
