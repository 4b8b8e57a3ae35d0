package services

import (
	"context"
	"sort"
	"time"

	"github.com/bloodlink/bloodlink-backend/internal/apperrors"
	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/bloodlink/bloodlink-backend/internal/repositories"
)

// In-memory repository fakes backing the service tests.

type fakeUserRepo struct {
	users map[string]*models.User
}

var _ repositories.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type fakeDonorRepo struct {
	donors map[string]*models.DonorProfile
}

var _ repositories.DonorRepository = (*fakeDonorRepo)(nil)

func newFakeDonorRepo() *fakeDonorRepo {
	return &fakeDonorRepo{donors: map[string]*models.DonorProfile{}}
}

func (r *fakeDonorRepo) Create(_ context.Context, donor *models.DonorProfile) error {
	r.donors[donor.ID] = donor
	return nil
}

func (r *fakeDonorRepo) FindByID(_ context.Context, id string) (*models.DonorProfile, error) {
	donor, ok := r.donors[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return donor, nil
}

func (r *fakeDonorRepo) FindByUserID(_ context.Context, userID string) (*models.DonorProfile, error) {
	for _, donor := range r.donors {
		if donor.UserID == userID {
			return donor, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeDonorRepo) Find(_ context.Context, filter models.DonorFilter) ([]*models.DonorProfile, error) {
	matches := []*models.DonorProfile{}
	for _, donor := range r.donors {
		if filter.BloodType != "" && donor.BloodType != filter.BloodType {
			continue
		}
		if filter.Available != nil && donor.Available != *filter.Available {
			continue
		}
		matches = append(matches, donor)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}

func (r *fakeDonorRepo) FindTopDonors(_ context.Context, limit int) ([]*models.DonorProfile, error) {
	all := []*models.DonorProfile{}
	for _, donor := range r.donors {
		all = append(all, donor)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].TotalDonations > all[j].TotalDonations
	})
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeDonorRepo) UpdateAvailability(ctx context.Context, userID string, available bool) error {
	donor, err := r.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	donor.Available = available
	return nil
}

func (r *fakeDonorRepo) RecordDonation(_ context.Context, donorID string, at time.Time) error {
	donor, ok := r.donors[donorID]
	if !ok {
		return apperrors.ErrNotFound
	}
	donor.TotalDonations++
	donor.LastDonationDate = &at
	return nil
}

func (r *fakeDonorRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.donors)), nil
}

func (r *fakeDonorRepo) CountAvailable(_ context.Context) (int64, error) {
	var count int64
	for _, donor := range r.donors {
		if donor.Available {
			count++
		}
	}
	return count, nil
}

func (r *fakeDonorRepo) CountByBloodType(_ context.Context) ([]models.TypeCount, error) {
	byType := map[string]int64{}
	for _, donor := range r.donors {
		byType[donor.BloodType]++
	}
	counts := []models.TypeCount{}
	for bt, n := range byType {
		counts = append(counts, models.TypeCount{Type: bt, Count: n})
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	return counts, nil
}

type fakeRequestRepo struct {
	requests map[string]*models.BloodRequest
}

var _ repositories.BloodRequestRepository = (*fakeRequestRepo)(nil)

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: map[string]*models.BloodRequest{}}
}

func (r *fakeRequestRepo) Create(_ context.Context, request *models.BloodRequest) error {
	r.requests[request.ID] = request
	return nil
}

func (r *fakeRequestRepo) FindByID(_ context.Context, id string) (*models.BloodRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return request, nil
}

func sortEmergencyRecency(requests []*models.BloodRequest) {
	sort.SliceStable(requests, func(i, j int) bool {
		if requests[i].Emergency != requests[j].Emergency {
			return requests[i].Emergency
		}
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
}

func (r *fakeRequestRepo) FindForDonor(_ context.Context, donorID, bloodType string) ([]*models.BloodRequest, error) {
	matches := []*models.BloodRequest{}
	for _, request := range r.requests {
		if request.DonorID == donorID ||
			(request.BloodType == bloodType && request.Status == models.StatusPending) {
			matches = append(matches, request)
		}
	}
	sortEmergencyRecency(matches)
	return matches, nil
}

func (r *fakeRequestRepo) FindByRecipient(_ context.Context, recipientID string) ([]*models.BloodRequest, error) {
	matches := []*models.BloodRequest{}
	for _, request := range r.requests {
		if request.RecipientID == recipientID {
			matches = append(matches, request)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})
	return matches, nil
}

func (r *fakeRequestRepo) FindAll(_ context.Context) ([]*models.BloodRequest, error) {
	all := []*models.BloodRequest{}
	for _, request := range r.requests {
		all = append(all, request)
	}
	sortEmergencyRecency(all)
	return all, nil
}

func (r *fakeRequestRepo) UpdateStatus(_ context.Context, id, status string, updatedAt time.Time) error {
	request, ok := r.requests[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	request.Status = status
	request.UpdatedAt = updatedAt
	return nil
}

func (r *fakeRequestRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.requests)), nil
}

func (r *fakeRequestRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var count int64
	for _, request := range r.requests {
		if request.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *fakeRequestRepo) CountPendingEmergencies(_ context.Context) (int64, error) {
	var count int64
	for _, request := range r.requests {
		if request.Status == models.StatusPending && request.Emergency {
			count++
		}
	}
	return count, nil
}

func (r *fakeRequestRepo) CountPendingByUrgency(_ context.Context) ([]models.TypeCount, error) {
	byUrgency := map[string]int64{}
	for _, request := range r.requests {
		if request.Status == models.StatusPending {
			byUrgency[request.Urgency]++
		}
	}
	counts := []models.TypeCount{}
	for urgency, n := range byUrgency {
		counts = append(counts, models.TypeCount{Type: urgency, Count: n})
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	return counts, nil
}

type fakeDonationRepo struct {
	donations []*models.DonationHistory
}

var _ repositories.DonationRepository = (*fakeDonationRepo)(nil)

func newFakeDonationRepo() *fakeDonationRepo {
	return &fakeDonationRepo{}
}

func (r *fakeDonationRepo) Create(_ context.Context, donation *models.DonationHistory) error {
	r.donations = append(r.donations, donation)
	return nil
}

func (r *fakeDonationRepo) FindByDonorUserID(_ context.Context, userID string) ([]*models.DonationHistory, error) {
	matches := []*models.DonationHistory{}
	for _, donation := range r.donations {
		if donation.DonorUserID == userID {
			matches = append(matches, donation)
		}
	}
	return matches, nil
}

func (r *fakeDonationRepo) FindByRecipientID(_ context.Context, recipientID string) ([]*models.DonationHistory, error) {
	matches := []*models.DonationHistory{}
	for _, donation := range r.donations {
		if donation.RecipientID == recipientID {
			matches = append(matches, donation)
		}
	}
	return matches, nil
}

func (r *fakeDonationRepo) FindAll(_ context.Context) ([]*models.DonationHistory, error) {
	return append([]*models.DonationHistory{}, r.donations...), nil
}

func (r *fakeDonationRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.donations)), nil
}

type fakeActivityRepo struct {
	activities []*models.Activity
	failErr    error
}

var _ repositories.ActivityRepository = (*fakeActivityRepo)(nil)

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{}
}

func (r *fakeActivityRepo) Create(_ context.Context, activity *models.Activity) error {
	if r.failErr != nil {
		return r.failErr
	}
	r.activities = append(r.activities, activity)
	return nil
}

func (r *fakeActivityRepo) FindRecent(_ context.Context, limit int) ([]*models.Activity, error) {
	recent := append([]*models.Activity{}, r.activities...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > limit {
		recent = recent[:limit]
	}
	return recent, nil
}
