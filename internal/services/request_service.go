package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bloodlink/bloodlink-backend/internal/apperrors"
	"github.com/bloodlink/bloodlink-backend/internal/metrics"
	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/bloodlink/bloodlink-backend/internal/repositories"
)

// RequestService manages the blood request lifecycle
type RequestService struct {
	requestRepo  repositories.BloodRequestRepository
	donorRepo    repositories.DonorRepository
	userRepo     repositories.UserRepository
	activityRepo repositories.ActivityRepository
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewRequestService creates a new RequestService
func NewRequestService(
	requestRepo repositories.BloodRequestRepository,
	donorRepo repositories.DonorRepository,
	userRepo repositories.UserRepository,
	activityRepo repositories.ActivityRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) *RequestService {
	return &RequestService{
		requestRepo:  requestRepo,
		donorRepo:    donorRepo,
		userRepo:     userRepo,
		activityRepo: activityRepo,
		metrics:      m,
		logger:       logger,
	}
}

// Create opens a new blood request on behalf of a recipient. Requests
// always start pending with created_at == updated_at.
func (s *RequestService) Create(ctx context.Context, actor *models.User, req *models.BloodRequestCreate) (*models.BloodRequest, error) {
	if actor.Role != models.RoleRecipient {
		return nil, fmt.Errorf("%w: only recipients can create blood requests", apperrors.ErrForbidden)
	}
	if !models.ValidBloodType(req.BloodType) {
		return nil, fmt.Errorf("%w: unknown blood type %q", apperrors.ErrValidation, req.BloodType)
	}
	if !models.ValidUrgency(req.Urgency) {
		return nil, fmt.Errorf("%w: unknown urgency %q", apperrors.ErrValidation, req.Urgency)
	}

	// Denormalize the target donor's name for display. Best-effort: a
	// missing donor leaves the name empty rather than failing the create.
	donorName := ""
	if req.DonorID != "" {
		if donor, err := s.donorRepo.FindByID(ctx, req.DonorID); err == nil {
			if donorUser, err := s.userRepo.FindByID(ctx, donor.UserID); err == nil {
				donorName = donorUser.Name
			}
		}
	}

	now := time.Now().UTC()
	request := &models.BloodRequest{
		ID:             uuid.NewString(),
		RecipientID:    actor.ID,
		RecipientName:  actor.Name,
		RecipientPhone: actor.Phone,
		DonorID:        req.DonorID,
		DonorName:      donorName,
		BloodType:      req.BloodType,
		Location:       req.Location,
		Urgency:        req.Urgency,
		Emergency:      req.Emergency,
		Message:        req.Message,
		Status:         models.StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	appendActivity(ctx, s.activityRepo, s.logger, &models.Activity{
		Type:      models.ActivityRequest,
		Message:   requestActivityMessage(request),
		ActorName: actor.Name,
		BloodType: request.BloodType,
		CreatedAt: now,
	})
	s.metrics.RequestsCreated.Inc()

	return request, nil
}

// List returns the requests visible to the acting user. Donors see
// requests targeted at them plus the open pool for their blood type;
// recipients see their own requests; admins see everything.
func (s *RequestService) List(ctx context.Context, actor *models.User) ([]*models.BloodRequest, error) {
	switch actor.Role {
	case models.RoleDonor:
		donor, err := s.donorRepo.FindByUserID(ctx, actor.ID)
		if errors.Is(err, apperrors.ErrNotFound) {
			// A donor without a profile yet simply sees nothing
			return []*models.BloodRequest{}, nil
		}
		if err != nil {
			return nil, err
		}
		return s.requestRepo.FindForDonor(ctx, donor.ID, donor.BloodType)
	case models.RoleRecipient:
		return s.requestRepo.FindByRecipient(ctx, actor.ID)
	default:
		return s.requestRepo.FindAll(ctx)
	}
}

// UpdateStatus applies a status transition. The value must be one of the
// four known states; edge validity between states is deliberately not
// enforced, matching the behavior the dashboards were built against.
// A recipient may only update a request they created.
func (s *RequestService) UpdateStatus(ctx context.Context, actor *models.User, requestID, status string) error {
	if !models.ValidStatus(status) {
		return fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, status)
	}

	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return err
	}

	if actor.Role == models.RoleRecipient && request.RecipientID != actor.ID {
		return fmt.Errorf("%w: not authorized to update this request", apperrors.ErrForbidden)
	}

	return s.requestRepo.UpdateStatus(ctx, requestID, status, time.Now().UTC())
}

func requestActivityMessage(request *models.BloodRequest) string {
	if request.Emergency {
		return fmt.Sprintf("EMERGENCY: %s needs %s blood in %s",
			request.RecipientName, request.BloodType, request.Location)
	}
	return fmt.Sprintf("%s needs %s blood in %s (%s urgency)",
		request.RecipientName, request.BloodType, request.Location, request.Urgency)
}
