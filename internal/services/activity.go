package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/bloodlink/bloodlink-backend/internal/repositories"
)

// appendActivity writes a feed entry. The feed is observational only, so a
// failed append is logged and never propagated to the caller.
func appendActivity(ctx context.Context, repo repositories.ActivityRepository, logger *zap.Logger, activity *models.Activity) {
	activity.ID = uuid.NewString()
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now().UTC()
	}
	if err := repo.Create(ctx, activity); err != nil {
		logger.Warn("failed to append activity",
			zap.String("type", activity.Type),
			zap.Error(err),
		)
	}
}
