package services

import (
	"context"
	"errors"
	"strings"

	"github.com/bloodlink/bloodlink-backend/internal/apperrors"
	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/bloodlink/bloodlink-backend/internal/repositories"
)

const leaderboardSize = 10

// DonorService handles the donor directory and availability
type DonorService struct {
	donorRepo repositories.DonorRepository
	userRepo  repositories.UserRepository
}

// NewDonorService creates a new DonorService
func NewDonorService(donorRepo repositories.DonorRepository, userRepo repositories.UserRepository) *DonorService {
	return &DonorService{
		donorRepo: donorRepo,
		userRepo:  userRepo,
	}
}

// List returns donor profiles matching the filter, enriched with the
// owning user's contact fields. Donors whose user record is missing are
// dropped. The location filter is a case-insensitive substring match
// against the user's location, applied after the join.
func (s *DonorService) List(ctx context.Context, filter models.DonorFilter) ([]*models.DonorView, error) {
	donors, err := s.donorRepo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	location := strings.ToLower(filter.Location)
	views := []*models.DonorView{}
	for _, donor := range donors {
		user, err := s.userRepo.FindByID(ctx, donor.UserID)
		if errors.Is(err, apperrors.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		if location != "" && !strings.Contains(strings.ToLower(user.Location), location) {
			continue
		}

		views = append(views, newDonorView(donor, user))
	}
	return views, nil
}

// GetByUser returns the donor profile owned by the given user, enriched
func (s *DonorService) GetByUser(ctx context.Context, user *models.User) (*models.DonorView, error) {
	donor, err := s.donorRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return newDonorView(donor, user), nil
}

// UpdateAvailability toggles the availability flag on the user's donor profile
func (s *DonorService) UpdateAvailability(ctx context.Context, userID string, available bool) error {
	return s.donorRepo.UpdateAvailability(ctx, userID, available)
}

// Leaderboard returns the top donors by lifetime donation count
func (s *DonorService) Leaderboard(ctx context.Context) ([]*models.LeaderboardEntry, error) {
	donors, err := s.donorRepo.FindTopDonors(ctx, leaderboardSize)
	if err != nil {
		return nil, err
	}

	entries := []*models.LeaderboardEntry{}
	for _, donor := range donors {
		user, err := s.userRepo.FindByID(ctx, donor.UserID)
		if errors.Is(err, apperrors.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		entries = append(entries, &models.LeaderboardEntry{
			DonorID:        donor.ID,
			Name:           user.Name,
			BloodType:      donor.BloodType,
			TotalDonations: donor.TotalDonations,
			Achievements:   Achievements(donor.TotalDonations),
		})
	}
	return entries, nil
}

func newDonorView(donor *models.DonorProfile, user *models.User) *models.DonorView {
	return &models.DonorView{
		DonorProfile: *donor,
		Name:         user.Name,
		Phone:        user.Phone,
		Email:        user.Email,
		Location:     user.Location,
		Achievements: Achievements(donor.TotalDonations),
	}
}
