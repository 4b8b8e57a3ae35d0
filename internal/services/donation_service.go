package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bloodlink/bloodlink-backend/internal/apperrors"
	"github.com/bloodlink/bloodlink-backend/internal/metrics"
	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/bloodlink/bloodlink-backend/internal/repositories"
)

// DonationService records completed donations
type DonationService struct {
	requestRepo  repositories.BloodRequestRepository
	donorRepo    repositories.DonorRepository
	donationRepo repositories.DonationRepository
	activityRepo repositories.ActivityRepository
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewDonationService creates a new DonationService
func NewDonationService(
	requestRepo repositories.BloodRequestRepository,
	donorRepo repositories.DonorRepository,
	donationRepo repositories.DonationRepository,
	activityRepo repositories.ActivityRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) *DonationService {
	return &DonationService{
		requestRepo:  requestRepo,
		donorRepo:    donorRepo,
		donationRepo: donationRepo,
		activityRepo: activityRepo,
		metrics:      m,
		logger:       logger,
	}
}

// Record closes out a request as donated: it appends a history row,
// increments the donor's lifetime count by exactly one (units are recorded
// but do not scale the counter), stamps the last donation date and forces
// the request to completed. Lookups run before any mutation so a missing
// request or donor profile aborts cleanly.
func (s *DonationService) Record(ctx context.Context, actor *models.User, req *models.DonationCreate) (*models.DonationHistory, error) {
	if actor.Role != models.RoleDonor {
		return nil, fmt.Errorf("%w: only donors can record donations", apperrors.ErrForbidden)
	}
	if req.Units < 1 {
		return nil, fmt.Errorf("%w: units must be at least 1", apperrors.ErrValidation)
	}

	request, err := s.requestRepo.FindByID(ctx, req.RequestID)
	if err != nil {
		return nil, err
	}
	donor, err := s.donorRepo.FindByUserID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	donation := &models.DonationHistory{
		ID:            uuid.NewString(),
		RequestID:     request.ID,
		DonorID:       donor.ID,
		DonorUserID:   actor.ID,
		RecipientID:   request.RecipientID,
		RecipientName: request.RecipientName,
		BloodType:     request.BloodType,
		Location:      request.Location,
		Units:         req.Units,
		DonatedAt:     now,
	}
	if err := s.donationRepo.Create(ctx, donation); err != nil {
		return nil, err
	}

	if err := s.donorRepo.RecordDonation(ctx, donor.ID, now); err != nil {
		return nil, err
	}
	if err := s.requestRepo.UpdateStatus(ctx, request.ID, models.StatusCompleted, now); err != nil {
		return nil, err
	}

	appendActivity(ctx, s.activityRepo, s.logger, &models.Activity{
		Type:      models.ActivityDonation,
		Message:   fmt.Sprintf("%s donated %s blood in %s", actor.Name, request.BloodType, request.Location),
		ActorName: actor.Name,
		BloodType: request.BloodType,
		CreatedAt: now,
	})
	s.metrics.DonationsRecorded.Inc()

	return donation, nil
}

// History returns donation records scoped to the acting user: donors see
// donations they gave, recipients donations they received, admins all.
func (s *DonationService) History(ctx context.Context, actor *models.User) ([]*models.DonationHistory, error) {
	switch actor.Role {
	case models.RoleDonor:
		return s.donationRepo.FindByDonorUserID(ctx, actor.ID)
	case models.RoleRecipient:
		return s.donationRepo.FindByRecipientID(ctx, actor.ID)
	default:
		return s.donationRepo.FindAll(ctx)
	}
}
