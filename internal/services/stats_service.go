package services

import (
	"context"

	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/bloodlink/bloodlink-backend/internal/repositories"
)

const activityFeedSize = 50

// StatsService derives aggregate counters and the activity feed
type StatsService struct {
	userRepo     repositories.UserRepository
	donorRepo    repositories.DonorRepository
	requestRepo  repositories.BloodRequestRepository
	donationRepo repositories.DonationRepository
	activityRepo repositories.ActivityRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(
	userRepo repositories.UserRepository,
	donorRepo repositories.DonorRepository,
	requestRepo repositories.BloodRequestRepository,
	donationRepo repositories.DonationRepository,
	activityRepo repositories.ActivityRepository,
) *StatsService {
	return &StatsService{
		userRepo:     userRepo,
		donorRepo:    donorRepo,
		requestRepo:  requestRepo,
		donationRepo: donationRepo,
		activityRepo: activityRepo,
	}
}

// Stats computes point-in-time counts. Each count is an independent query;
// concurrent writes may land between them, which is acceptable.
func (s *StatsService) Stats(ctx context.Context) (*models.Stats, error) {
	stats := &models.Stats{}
	var err error

	if stats.TotalUsers, err = s.userRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalDonors, err = s.donorRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.AvailableDonors, err = s.donorRepo.CountAvailable(ctx); err != nil {
		return nil, err
	}
	if stats.TotalRequests, err = s.requestRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.PendingRequests, err = s.requestRepo.CountByStatus(ctx, models.StatusPending); err != nil {
		return nil, err
	}
	if stats.CompletedRequests, err = s.requestRepo.CountByStatus(ctx, models.StatusCompleted); err != nil {
		return nil, err
	}
	if stats.EmergencyRequests, err = s.requestRepo.CountPendingEmergencies(ctx); err != nil {
		return nil, err
	}
	if stats.TotalDonations, err = s.donationRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.BloodTypeDistribution, err = s.donorRepo.CountByBloodType(ctx); err != nil {
		return nil, err
	}
	if stats.UrgencyDistribution, err = s.requestRepo.CountPendingByUrgency(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}

// Activities returns the most recent feed entries, newest first
func (s *StatsService) Activities(ctx context.Context) ([]*models.Activity, error) {
	return s.activityRepo.FindRecent(ctx, activityFeedSize)
}
