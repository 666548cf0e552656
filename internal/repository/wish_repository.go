package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Aruzhan018/Wish_Board/internal/errs"
	"github.com/Aruzhan018/Wish_Board/internal/models"
	"github.com/Aruzhan018/Wish_Board/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WishRepository handles database operations on the wishes collection.
type WishRepository struct {
	collection *mongo.Collection
}

// NewWishRepository creates a new instance of WishRepository.
func NewWishRepository(db *mongo.Database) *WishRepository {
	return &WishRepository{collection: db.Collection("wishes")}
}

// CreateWish inserts a new wish and assigns its id and creation timestamp.
func (r *WishRepository) CreateWish(ctx context.Context, wish *models.Wish) (*models.Wish, error) {
	wish.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, wish)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to insert wish")
		return nil, fmt.Errorf("%w: failed to create wish: %v", errs.ErrUnavailable, err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%w: failed to cast inserted wish ID", errs.ErrUnavailable)
	}
	wish.ID = insertedID

	logger.Log.WithField("wish_id", wish.ID.Hex()).Info("Wish created successfully")
	return wish, nil
}

// GetWishByID fetches a wish by its ID.
func (r *WishRepository) GetWishByID(ctx context.Context, id string) (*models.Wish, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid wish ID %q", errs.ErrInvalid, id)
	}

	var wish models.Wish
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&wish); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: wish %s", errs.ErrNotFound, id)
		}
		logger.Log.WithError(err).WithField("wish_id", id).Error("Failed to find wish by ID")
		return nil, fmt.Errorf("%w: failed to get wish: %v", errs.ErrUnavailable, err)
	}
	return &wish, nil
}

// ListWishes fetches wishes matching the store-side part of the filter:
// fulfillment status and category, sorted by creation time descending.
// The free-text part of the filter is applied by the service, not here.
func (r *WishRepository) ListWishes(ctx context.Context, filter models.WishFilter) ([]models.Wish, error) {
	query := bson.M{}
	switch filter.Status {
	case models.StatusOpen:
		query["is_fulfilled"] = false
	case models.StatusFulfilled:
		query["is_fulfilled"] = true
	}
	if filter.Category != "" && filter.Category != models.CategoryAll {
		query["category"] = filter.Category
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, query, findOptions)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch wishes")
		return nil, fmt.Errorf("%w: failed to fetch wishes: %v", errs.ErrUnavailable, err)
	}
	defer cursor.Close(ctx)

	var wishes []models.Wish
	for cursor.Next(ctx) {
		var wish models.Wish
		if err := cursor.Decode(&wish); err != nil {
			logger.Log.WithError(err).Error("Failed to decode wish")
			return nil, fmt.Errorf("%w: failed to decode wish: %v", errs.ErrUnavailable, err)
		}
		wishes = append(wishes, wish)
	}

	logger.Log.WithField("count", len(wishes)).Info("Wishes fetched successfully")
	return wishes, nil
}

// SetFulfilled writes the fulfillment flag. The write is idempotent.
func (r *WishRepository) SetFulfilled(ctx context.Context, id string, value bool) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid wish ID %q", errs.ErrInvalid, id)
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{
		"$set": bson.M{"is_fulfilled": value},
	})
	if err != nil {
		logger.Log.WithError(err).WithField("wish_id", id).Error("Failed to update fulfillment status")
		return fmt.Errorf("%w: failed to update wish status: %v", errs.ErrUnavailable, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: wish %s", errs.ErrNotFound, id)
	}
	return nil
}

// AdjustLikeCount atomically increments or decrements the like counter.
// Callers must pair every adjustment with the matching like ledger write.
func (r *WishRepository) AdjustLikeCount(ctx context.Context, id string, delta int) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid wish ID %q", errs.ErrInvalid, id)
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{
		"$inc": bson.M{"likes_count": delta},
	})
	if err != nil {
		logger.Log.WithError(err).WithField("wish_id", id).Error("Failed to adjust like count")
		return fmt.Errorf("%w: failed to adjust like count: %v", errs.ErrUnavailable, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: wish %s", errs.ErrNotFound, id)
	}
	return nil
}
