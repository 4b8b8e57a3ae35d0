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

// Compile-time check to ensure DonorRepository implements the interface
var _ repositories.DonorRepository = (*DonorRepository)(nil)

// DonorRepository handles MongoDB operations for DonorProfile
type DonorRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewDonorRepository creates a new DonorRepository
func NewDonorRepository(db *mongo.Database, timeout time.Duration) *DonorRepository {
	return &DonorRepository{
		collection: db.Collection("donors"),
		timeout:    timeout,
	}
}

// Create inserts a new donor profile
func (r *DonorRepository) Create(ctx context.Context, donor *models.DonorProfile) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, donor)
	return translate(err)
}

// FindByID finds a donor profile by id
func (r *DonorRepository) FindByID(ctx context.Context, id string) (*models.DonorProfile, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var donor models.DonorProfile
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&donor); err != nil {
		return nil, translate(err)
	}
	return &donor, nil
}

// FindByUserID finds the donor profile owned by a user
func (r *DonorRepository) FindByUserID(ctx context.Context, userID string) (*models.DonorProfile, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var donor models.DonorProfile
	if err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&donor); err != nil {
		return nil, translate(err)
	}
	return &donor, nil
}

// Find retrieves donor profiles matching the blood type and availability
// predicates
func (r *DonorRepository) Find(ctx context.Context, filter models.DonorFilter) ([]*models.DonorProfile, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query := bson.M{}
	if filter.BloodType != "" {
		query["blood_type"] = filter.BloodType
	}
	if filter.Available != nil {
		query["available"] = *filter.Available
	}

	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, translate(err)
	}
	defer cursor.Close(ctx)

	var donors []*models.DonorProfile
	if err := cursor.All(ctx, &donors); err != nil {
		return nil, translate(err)
	}
	if donors == nil {
		donors = []*models.DonorProfile{}
	}
	return donors, nil
}

// FindTopDonors retrieves donors ordered by lifetime donation count descending
func (r *DonorRepository) FindTopDonors(ctx context.Context, limit int) ([]*models.DonorProfile, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "total_donations", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, translate(err)
	}
	defer cursor.Close(ctx)

	var donors []*models.DonorProfile
	if err := cursor.All(ctx, &donors); err != nil {
		return nil, translate(err)
	}
	if donors == nil {
		donors = []*models.DonorProfile{}
	}
	return donors, nil
}

// UpdateAvailability sets the availability flag on the donor profile owned
// by the given user
func (r *DonorRepository) UpdateAvailability(ctx context.Context, userID string, available bool) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{"available": available}},
	)
	if err != nil {
		return translate(err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// RecordDonation increments the lifetime donation count by one and stamps
// the last donation date in a single atomic update
func (r *DonorRepository) RecordDonation(ctx context.Context, donorID string, at time.Time) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": donorID},
		bson.M{
			"$inc": bson.M{"total_donations": 1},
			"$set": bson.M{"last_donation_date": at},
		},
	)
	if err != nil {
		return translate(err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Count returns the total number of donor profiles
func (r *DonorRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	return count, translate(err)
}

// CountAvailable returns the number of donors currently marked available
func (r *DonorRepository) CountAvailable(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{"available": true})
	return count, translate(err)
}

// CountByBloodType groups donor profiles by blood type, most common first
func (r *DonorRepository) CountByBloodType(ctx context.Context) ([]models.TypeCount, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$blood_type", "count": bson.M{"$sum": 1}}}},
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
