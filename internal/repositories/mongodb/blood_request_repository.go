package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bloodlink/bloodlink-backend/internal/apperrors"
	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/bloodlink/bloodlink-backend/internal/repositories"
)

// Compile-time check to ensure BloodRequestRepository implements the interface
var _ repositories.BloodRequestRepository = (*BloodRequestRepository)(nil)

// Requests for donor and admin views are ordered emergencies first, then
// newest created.
var emergencyRecencySort = bson.D{
	{Key: "emergency", Value: -1},
	{Key: "created_at", Value: -1},
}

// BloodRequestRepository handles MongoDB operations for BloodRequest
type BloodRequestRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewBloodRequestRepository creates a new BloodRequestRepository
func NewBloodRequestRepository(db *mongo.Database, timeout time.Duration) *BloodRequestRepository {
	return &BloodRequestRepository{
		collection: db.Collection("blood_requests"),
		timeout:    timeout,
	}
}

// Create inserts a new blood request
func (r *BloodRequestRepository) Create(ctx context.Context, request *models.BloodRequest) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, request)
	return translate(err)
}

// FindByID finds a blood request by id
func (r *BloodRequestRepository) FindByID(ctx context.Context, id string) (*models.BloodRequest, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var request models.BloodRequest
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request); err != nil {
		return nil, translate(err)
	}
	return &request, nil
}

// FindForDonor returns the union of requests explicitly targeted at the
// donor and pending requests of the matching blood type (the open pool)
func (r *BloodRequestRepository) FindForDonor(ctx context.Context, donorID, bloodType string) ([]*models.BloodRequest, error) {
	filter := bson.M{
		"$or": bson.A{
			bson.M{"donor_id": donorID},
			bson.M{"blood_type": bloodType, "status": models.StatusPending},
		},
	}
	return r.find(ctx, filter, emergencyRecencySort)
}

// FindByRecipient returns the requests created by a recipient, newest first
func (r *BloodRequestRepository) FindByRecipient(ctx context.Context, recipientID string) ([]*models.BloodRequest, error) {
	return r.find(ctx, bson.M{"recipient_id": recipientID}, bson.D{{Key: "created_at", Value: -1}})
}

// FindAll returns every request, emergencies first, then newest
func (r *BloodRequestRepository) FindAll(ctx context.Context) ([]*models.BloodRequest, error) {
	return r.find(ctx, bson.M{}, emergencyRecencySort)
}

func (r *BloodRequestRepository) find(ctx context.Context, filter bson.M, sort bson.D) ([]*models.BloodRequest, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, translate(err)
	}
	defer cursor.Close(ctx)

	var requests []*models.BloodRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, translate(err)
	}
	if requests == nil {
		requests = []*models.BloodRequest{}
	}
	return requests, nil
}

// UpdateStatus sets the status and refreshes the updated timestamp.
// Concurrent updates resolve last-write-wins; no concurrency token is used.
func (r *BloodRequestRepository) UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": updatedAt}},
	)
	if err != nil {
		return translate(err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Count returns the total number of requests
func (r *BloodRequestRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	return count, translate(err)
}

// CountByStatus returns the number of requests in the given state
func (r *BloodRequestRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{"status": status})
	return count, translate(err)
}

// CountPendingEmergencies returns the number of pending emergency requests
func (r *BloodRequestRepository) CountPendingEmergencies(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{
		"status":    models.StatusPending,
		"emergency": true,
	})
	return count, translate(err)
}

// CountPendingByUrgency groups pending requests by urgency level
func (r *BloodRequestRepository) CountPendingByUrgency(ctx context.Context) ([]models.TypeCount, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": models.StatusPending}}},
		{{Key: "$group", Value: bson.M{"_id": "$urgency", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, translate(err)
	}
	defer cursor.Close(ctx)

	var counts []models.TypeCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, translate(err)
	}
	if counts == nil {
		counts = []models.TypeCount{}
	}
	return counts, nil
}
