package mongodb

import (
	"context"
	"errors"

	"github.com/tombolaviva/tombola-backend/internal/models"
	"github.com/tombolaviva/tombola-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WithdrawalRepository implements the repositories.WithdrawalRepository
// interface over the "retiros" collection. The collection is an
// append-only log; there are no update or delete operations.
type WithdrawalRepository struct {
	collection *mongo.Collection
}

// NewWithdrawalRepository creates a new WithdrawalRepository
func NewWithdrawalRepository(db *mongo.Database) repositories.WithdrawalRepository {
	return &WithdrawalRepository{
		collection: db.Collection("retiros"),
	}
}

// Create inserts a new withdrawal record and assigns its id
func (r *WithdrawalRepository) Create(ctx context.Context, withdrawal *models.Withdrawal) error {
	res, err := r.collection.InsertOne(ctx, withdrawal)
	if err != nil {
		return err
	}
	withdrawal.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a withdrawal by id
func (r *WithdrawalRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Withdrawal, error) {
	var withdrawal models.Withdrawal
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&withdrawal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &withdrawal, nil
}

// FindAll returns every withdrawal sorted by date descending
func (r *WithdrawalRepository) FindAll(ctx context.Context) ([]*models.Withdrawal, error) {
	opts := options.Find().SetSort(bson.M{"date": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var withdrawals []*models.Withdrawal
	if err := cursor.All(ctx, &withdrawals); err != nil {
		return nil, err
	}
	if withdrawals == nil {
		withdrawals = []*models.Withdrawal{}
	}
	return withdrawals, nil
}
