package services

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bloodlink/bloodlink-backend/internal/apperrors"
	"github.com/bloodlink/bloodlink-backend/internal/metrics"
	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/bloodlink/bloodlink-backend/pkg/jwt"
)

type authFixture struct {
	users      *fakeUserRepo
	donors     *fakeDonorRepo
	activities *fakeActivityRepo
	tokens     *jwt.TokenService
	service    *AuthService
}

func newAuthFixture() *authFixture {
	users := newFakeUserRepo()
	donors := newFakeDonorRepo()
	activities := newFakeActivityRepo()
	tokens := jwt.NewTokenService("test-secret", 3600)
	service := NewAuthService(users, donors, activities, tokens,
		metrics.New(prometheus.NewRegistry()), zap.NewNop())
	return &authFixture{
		users:      users,
		donors:     donors,
		activities: activities,
		tokens:     tokens,
		service:    service,
	}
}

func donorRegistration() *models.RegisterRequest {
	return &models.RegisterRequest{
		Email:     "dana@example.com",
		Password:  "hunter22",
		Name:      "Dana",
		Phone:     "555-0100",
		Role:      models.RoleDonor,
		BloodType: models.BloodONeg,
		Location:  "San Francisco",
	}
}

func TestRegisterDonorCreatesProfile(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	resp, err := f.service.Register(ctx, donorRegistration())
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, models.RoleDonor, resp.User.Role)
	assert.NotEmpty(t, resp.User.PasswordHash)

	// the issued token resolves back to the new user
	sub, err := f.tokens.Parse(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, sub)

	donor, err := f.donors.FindByUserID(ctx, resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BloodONeg, donor.BloodType)
	assert.True(t, donor.Available)
	assert.Zero(t, donor.TotalDonations)

	require.Len(t, f.activities.activities, 1)
	assert.Equal(t, models.ActivityRegistration, f.activities.activities[0].Type)
}

func TestRegisterRecipientHasNoDonorProfile(t *testing.T) {
	f := newAuthFixture()
	req := donorRegistration()
	req.Role = models.RoleRecipient
	req.BloodType = ""

	resp, err := f.service.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = f.donors.FindByUserID(context.Background(), resp.User.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.service.Register(ctx, donorRegistration())
	require.NoError(t, err)

	_, err = f.service.Register(ctx, donorRegistration())
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	f := newAuthFixture()
	req := donorRegistration()
	req.Role = "superuser"

	_, err := f.service.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRegisterRejectsUnknownBloodType(t *testing.T) {
	f := newAuthFixture()
	req := donorRegistration()
	req.BloodType = "Z+"

	_, err := f.service.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestLogin(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	registered, err := f.service.Register(ctx, donorRegistration())
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := f.service.Login(ctx, &models.LoginRequest{
			Email:    "dana@example.com",
			Password: "hunter22",
		})
		require.NoError(t, err)
		assert.Equal(t, registered.User.ID, resp.User.ID)

		sub, err := f.tokens.Parse(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, registered.User.ID, sub)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := f.service.Login(ctx, &models.LoginRequest{
			Email:    "dana@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := f.service.Login(ctx, &models.LoginRequest{
			Email:    "nobody@example.com",
			Password: "hunter22",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}
