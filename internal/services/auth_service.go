package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/bloodlink/bloodlink-backend/internal/apperrors"
	"github.com/bloodlink/bloodlink-backend/internal/metrics"
	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/bloodlink/bloodlink-backend/internal/repositories"
	"github.com/bloodlink/bloodlink-backend/pkg/jwt"
)

// AuthService handles registration, login and user resolution
type AuthService struct {
	userRepo     repositories.UserRepository
	donorRepo    repositories.DonorRepository
	activityRepo repositories.ActivityRepository
	tokens       *jwt.TokenService
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	donorRepo repositories.DonorRepository,
	activityRepo repositories.ActivityRepository,
	tokens *jwt.TokenService,
	m *metrics.Metrics,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		donorRepo:    donorRepo,
		activityRepo: activityRepo,
		tokens:       tokens,
		metrics:      m,
		logger:       logger,
	}
}

// Register creates a user, a donor profile when the role is donor and a
// blood type was supplied, and issues an access token.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if !models.ValidRole(req.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
	}
	if req.Role == models.RoleDonor && req.BloodType != "" && !models.ValidBloodType(req.BloodType) {
		return nil, fmt.Errorf("%w: unknown blood type %q", apperrors.ErrValidation, req.BloodType)
	}

	_, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, apperrors.ErrEmailTaken
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         req.Role,
		Location:     req.Location,
		PasswordHash: string(hash),
		CreatedAt:    now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if user.Role == models.RoleDonor && req.BloodType != "" {
		donor := &models.DonorProfile{
			ID:        uuid.NewString(),
			UserID:    user.ID,
			BloodType: req.BloodType,
			Available: true,
			CreatedAt: now,
		}
		if err := s.donorRepo.Create(ctx, donor); err != nil {
			return nil, err
		}
	}

	appendActivity(ctx, s.activityRepo, s.logger, &models.Activity{
		Type:      models.ActivityRegistration,
		Message:   fmt.Sprintf("%s joined as a %s", user.Name, user.Role),
		ActorName: user.Name,
		BloodType: req.BloodType,
		CreatedAt: now,
	})
	s.metrics.UsersRegistered.Inc()

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	}, nil
}

// Login verifies credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	}, nil
}

// GetUserByID resolves a user record by id. Used by the auth middleware to
// turn a validated token subject into the acting user.
func (s *AuthService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.FindByID(ctx, id)
}
