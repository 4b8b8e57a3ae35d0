package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloodlink/bloodlink-backend/internal/models"
)

type statsFixture struct {
	users      *fakeUserRepo
	donors     *fakeDonorRepo
	requests   *fakeRequestRepo
	donations  *fakeDonationRepo
	activities *fakeActivityRepo
	service    *StatsService
}

func newStatsFixture() *statsFixture {
	users := newFakeUserRepo()
	donors := newFakeDonorRepo()
	requests := newFakeRequestRepo()
	donations := newFakeDonationRepo()
	activities := newFakeActivityRepo()
	return &statsFixture{
		users:      users,
		donors:     donors,
		requests:   requests,
		donations:  donations,
		activities: activities,
		service:    NewStatsService(users, donors, requests, donations, activities),
	}
}

func TestStatsCounts(t *testing.T) {
	f := newStatsFixture()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, f.users.Create(ctx, testUser(models.RoleDonor)))
	}

	donorSpecs := []struct {
		bloodType string
		available bool
	}{
		{models.BloodONeg, true},
		{models.BloodONeg, false},
		{models.BloodAPos, true},
	}
	for _, spec := range donorSpecs {
		require.NoError(t, f.donors.Create(ctx, &models.DonorProfile{
			ID:        uuid.NewString(),
			UserID:    uuid.NewString(),
			BloodType: spec.bloodType,
			Available: spec.available,
		}))
	}

	requestSpecs := []struct {
		status    string
		urgency   string
		emergency bool
	}{
		{models.StatusPending, models.UrgencyCritical, true},
		{models.StatusPending, models.UrgencyCritical, false},
		{models.StatusPending, models.UrgencyLow, false},
		{models.StatusCompleted, models.UrgencyHigh, false},
		{models.StatusCancelled, models.UrgencyHigh, true}, // emergency but no longer pending
	}
	for _, spec := range requestSpecs {
		require.NoError(t, f.requests.Create(ctx, &models.BloodRequest{
			ID:        uuid.NewString(),
			Status:    spec.status,
			Urgency:   spec.urgency,
			Emergency: spec.emergency,
			BloodType: models.BloodAPos,
		}))
	}

	require.NoError(t, f.donations.Create(ctx, &models.DonationHistory{ID: uuid.NewString()}))

	stats, err := f.service.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalUsers)
	assert.Equal(t, int64(3), stats.TotalDonors)
	assert.Equal(t, int64(2), stats.AvailableDonors)
	assert.Equal(t, int64(5), stats.TotalRequests)
	assert.Equal(t, int64(3), stats.PendingRequests)
	assert.Equal(t, int64(1), stats.CompletedRequests)
	assert.Equal(t, int64(1), stats.EmergencyRequests)
	assert.Equal(t, int64(1), stats.TotalDonations)

	assert.ElementsMatch(t, []models.TypeCount{
		{Type: models.BloodONeg, Count: 2},
		{Type: models.BloodAPos, Count: 1},
	}, stats.BloodTypeDistribution)

	assert.ElementsMatch(t, []models.TypeCount{
		{Type: models.UrgencyCritical, Count: 2},
		{Type: models.UrgencyLow, Count: 1},
	}, stats.UrgencyDistribution, "urgency histogram counts pending requests only")
}

func TestStatsOnEmptyStore(t *testing.T) {
	f := newStatsFixture()

	stats, err := f.service.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalUsers)
	assert.Zero(t, stats.TotalDonations)
	assert.Empty(t, stats.BloodTypeDistribution)
	assert.Empty(t, stats.UrgencyDistribution)
}

func TestActivitiesReturnsNewestFiftyFirst(t *testing.T) {
	f := newStatsFixture()
	ctx := context.Background()

	base := time.Now().UTC()
	for i := 0; i < 55; i++ {
		require.NoError(t, f.activities.Create(ctx, &models.Activity{
			ID:        uuid.NewString(),
			Type:      models.ActivityDonation,
			Message:   fmt.Sprintf("event %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	feed, err := f.service.Activities(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 50)

	assert.Equal(t, "event 54", feed[0].Message)
	assert.Equal(t, "event 5", feed[49].Message)
	for i := 1; i < len(feed); i++ {
		assert.False(t, feed[i].CreatedAt.After(feed[i-1].CreatedAt))
	}
}
