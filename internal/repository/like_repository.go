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
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LikeRepository handles database operations on the likes collection.
// Documents are keyed by the composite "<uid>_<wishId>" id so there is at
// most one like record per (user, wish) pair.
type LikeRepository struct {
	collection *mongo.Collection
}

// NewLikeRepository creates a new instance of LikeRepository.
func NewLikeRepository(db *mongo.Database) *LikeRepository {
	return &LikeRepository{collection: db.Collection("likes")}
}

// GetLike fetches the like record for a (user, wish) pair.
func (r *LikeRepository) GetLike(ctx context.Context, userID, wishID string) (*models.Like, error) {
	var like models.Like
	err := r.collection.FindOne(ctx, bson.M{"_id": models.LikeKey(userID, wishID)}).Decode(&like)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: like %s", errs.ErrNotFound, models.LikeKey(userID, wishID))
		}
		logger.Log.WithError(err).Error("Failed to retrieve like record")
		return nil, fmt.Errorf("%w: failed to retrieve like: %v", errs.ErrUnavailable, err)
	}
	return &like, nil
}

// Activate upserts the like record to active. The filter only matches a
// record that is not currently active, so a concurrent duplicate toggle
// cannot activate (and count) the same like twice. Returns whether this
// call actually changed the record.
func (r *LikeRepository) Activate(ctx context.Context, userID, wishID string) (bool, error) {
	now := time.Now()
	filter := bson.M{
		"_id":    models.LikeKey(userID, wishID),
		"active": bson.M{"$ne": true},
	}
	update := bson.M{
		"$set": bson.M{
			"user_id":    userID,
			"wish_id":    wishID,
			"active":     true,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{"created_at": now},
	}

	opts := options.Update().SetUpsert(true)
	res, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		// A duplicate key error means the record exists and is already
		// active; the upsert lost the race to another activation.
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		logger.Log.WithError(err).Error("Failed to activate like record")
		return false, fmt.Errorf("%w: failed to activate like: %v", errs.ErrUnavailable, err)
	}
	return res.ModifiedCount > 0 || res.UpsertedID != nil, nil
}

// Deactivate marks the like record inactive. The record itself is kept;
// retraction is a flag flip, never a delete. Returns whether this call
// actually changed the record.
func (r *LikeRepository) Deactivate(ctx context.Context, userID, wishID string) (bool, error) {
	filter := bson.M{
		"_id":    models.LikeKey(userID, wishID),
		"active": true,
	}
	update := bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to deactivate like record")
		return false, fmt.Errorf("%w: failed to deactivate like: %v", errs.ErrUnavailable, err)
	}
	return res.ModifiedCount > 0, nil
}

// CountActiveLikes counts active like records for a wish. Used by tests and
// reconciliation, not by the toggle path.
func (r *LikeRepository) CountActiveLikes(ctx context.Context, wishID string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"wish_id": wishID, "active": true})
	if err != nil {
		return 0, fmt.Errorf("%w: failed to count likes: %v", errs.ErrUnavailable, err)
	}
	return count, nil
}
