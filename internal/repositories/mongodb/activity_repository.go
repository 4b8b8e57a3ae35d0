package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/bloodlink/bloodlink-backend/internal/repositories"
)

// Compile-time check to ensure ActivityRepository implements the interface
var _ repositories.ActivityRepository = (*ActivityRepository)(nil)

// ActivityRepository handles MongoDB operations for Activity
type ActivityRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *mongo.Database, timeout time.Duration) *ActivityRepository {
	return &ActivityRepository{
		collection: db.Collection("activities"),
		timeout:    timeout,
	}
}

// Create appends an activity entry
func (r *ActivityRepository) Create(ctx context.Context, activity *models.Activity) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, activity)
	return translate(err)
}

// FindRecent returns the most recent activity entries, newest first
func (r *ActivityRepository) FindRecent(ctx context.Context, limit int) ([]*models.Activity, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, translate(err)
	}
	defer cursor.Close(ctx)

	var activities []*models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, translate(err)
	}
	if activities == nil {
		activities = []*models.Activity{}
	}
	return activities, nil
}
