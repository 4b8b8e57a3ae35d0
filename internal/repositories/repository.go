package repositories

import (
	"context"
	"time"

	"github.com/bloodlink/bloodlink-backend/internal/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Count(ctx context.Context) (int64, error)
}

// DonorRepository defines the interface for donor profile data operations
type DonorRepository interface {
	Create(ctx context.Context, donor *models.DonorProfile) error
	FindByID(ctx context.Context, id string) (*models.DonorProfile, error)
	FindByUserID(ctx context.Context, userID string) (*models.DonorProfile, error)
	// Find applies the blood type and availability predicates only; the
	// location filter lives on the owning user and is applied after the
	// join by the caller.
	Find(ctx context.Context, filter models.DonorFilter) ([]*models.DonorProfile, error)
	FindTopDonors(ctx context.Context, limit int) ([]*models.DonorProfile, error)
	UpdateAvailability(ctx context.Context, userID string, available bool) error
	// RecordDonation atomically increments the lifetime donation count by
	// one and stamps the last donation date.
	RecordDonation(ctx context.Context, donorID string, at time.Time) error
	Count(ctx context.Context) (int64, error)
	CountAvailable(ctx context.Context) (int64, error)
	CountByBloodType(ctx context.Context) ([]models.TypeCount, error)
}

// BloodRequestRepository defines the interface for blood request data operations
type BloodRequestRepository interface {
	Create(ctx context.Context, request *models.BloodRequest) error
	FindByID(ctx context.Context, id string) (*models.BloodRequest, error)
	// FindForDonor returns requests targeted at the donor plus pending
	// requests of the matching blood type, emergencies first, then newest.
	FindForDonor(ctx context.Context, donorID, bloodType string) ([]*models.BloodRequest, error)
	FindByRecipient(ctx context.Context, recipientID string) ([]*models.BloodRequest, error)
	FindAll(ctx context.Context) ([]*models.BloodRequest, error)
	UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountPendingEmergencies(ctx context.Context) (int64, error)
	CountPendingByUrgency(ctx context.Context) ([]models.TypeCount, error)
}

// DonationRepository defines the interface for donation history operations
type DonationRepository interface {
	Create(ctx context.Context, donation *models.DonationHistory) error
	FindByDonorUserID(ctx context.Context, userID string) ([]*models.DonationHistory, error)
	FindByRecipientID(ctx context.Context, recipientID string) ([]*models.DonationHistory, error)
	FindAll(ctx context.Context) ([]*models.DonationHistory, error)
	Count(ctx context.Context) (int64, error)
}

// ActivityRepository defines the interface for activity feed operations
type ActivityRepository interface {
	Create(ctx context.Context, activity *models.Activity) error
	FindRecent(ctx context.Context, limit int) ([]*models.Activity, error)
}
