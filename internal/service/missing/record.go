package missing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/lingua-backend/internal/domain"
)

// Record counts one more occurrence of a failed lookup and returns the
// updated row.
func (s *Service) Record(ctx context.Context, in RecordInput) (domain.MissingRequest, error) {
	key := in.key()
	if err := validateKey(key); err != nil {
		return domain.MissingRequest{}, err
	}

	req, err := s.requests.Record(ctx, key, s.now())
	if err != nil {
		return domain.MissingRequest{}, fmt.Errorf("record missing request: %w", err)
	}

	s.log.InfoContext(ctx, "missing request recorded",
		slog.String("query", req.Query),
		slog.String("domain", req.Domain),
		slog.Int("count", req.Count),
	)
	return req, nil
}

// ListRequests returns the most requested misses first.
func (s *Service) ListRequests(ctx context.Context, in ListRequestsInput) (*RequestPage, error) {
	f := in.filter()

	items, total, err := s.requests.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list missing requests: %w", err)
	}

	return &RequestPage{
		Page:     f.Page.Number,
		PageSize: f.Page.Size,
		Total:    total,
		Items:    items,
	}, nil
}
