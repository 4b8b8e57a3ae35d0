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

// Compile-time check to ensure DonationRepository implements the interface
var _ repositories.DonationRepository = (*DonationRepository)(nil)

// DonationRepository handles MongoDB operations for DonationHistory
type DonationRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewDonationRepository creates a new DonationRepository
func NewDonationRepository(db *mongo.Database, timeout time.Duration) *DonationRepository {
	return &DonationRepository{
		collection: db.Collection("donation_history"),
		timeout:    timeout,
	}
}

// Create appends a donation history record
func (r *DonationRepository) Create(ctx context.Context, donation *models.DonationHistory) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, donation)
	return translate(err)
}

// FindByDonorUserID returns a donor's donation history, newest first
func (r *DonationRepository) FindByDonorUserID(ctx context.Context, userID string) ([]*models.DonationHistory, error) {
	return r.find(ctx, bson.M{"donor_user_id": userID})
}

// FindByRecipientID returns the donations received by a recipient, newest first
func (r *DonationRepository) FindByRecipientID(ctx context.Context, recipientID string) ([]*models.DonationHistory, error) {
	return r.find(ctx, bson.M{"recipient_id": recipientID})
}

// FindAll returns every donation record, newest first
func (r *DonationRepository) FindAll(ctx context.Context) ([]*models.DonationHistory, error) {
	return r.find(ctx, bson.M{})
}

func (r *DonationRepository) find(ctx context.Context, filter bson.M) ([]*models.DonationHistory, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "donated_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, translate(err)
	}
	defer cursor.Close(ctx)

	var donations []*models.DonationHistory
	if err := cursor.All(ctx, &donations); err != nil {
		return nil, translate(err)
	}
	if donations == nil {
		donations = []*models.DonationHistory{}
	}
	return donations, nil
}

// Count returns the total number of donation records
func (r *DonationRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	return count, translate(err)
}
