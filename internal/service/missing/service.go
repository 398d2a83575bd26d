// Package missing records searches that found nothing and lists them for
// curators.
package missing

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/lingua-backend/internal/domain"
)

type requestRepo interface {
	Record(ctx context.Context, key domain.MissingRequestKey, now time.Time) (domain.MissingRequest, error)
	List(ctx context.Context, f domain.RequestFilter) ([]domain.MissingRequest, int, error)
}

// Service provides missing-request operations.
type Service struct {
	requests requestRepo
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates a new missing-request service.
func NewService(log *slog.Logger, requests requestRepo) *Service {
	return &Service{
		requests: requests,
		now:      func() time.Time { return time.Now().UTC() },
		log:      log.With("service", "missing"),
	}
}
