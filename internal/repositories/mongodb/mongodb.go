// Package mongodb implements the repository interfaces on top of the
// MongoDB driver. Every call runs under a bounded timeout derived from the
// inbound context; driver errors are translated onto the shared taxonomy.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bloodlink/bloodlink-backend/internal/apperrors"
)

const defaultQueryTimeout = 5 * time.Second

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = defaultQueryTimeout
	}
	return context.WithTimeout(ctx, d)
}

// translate maps driver errors onto the apperrors taxonomy. Timeouts and
// connectivity failures surface as retryable ErrUnavailable.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperrors.ErrNotFound
	}
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return fmt.Errorf("%w: %v", apperrors.ErrUnavailable, err)
	}
	return err
}
