package interest

import (
	"context"
	"fmt"

	"github.com/bidfelt/searchcore/internal/domain"
)

// ListPending returns a page of live pending requests, oldest first.
func (s *Service) ListPending(ctx context.Context, input ListPendingInput) ([]domain.InterestRequest, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = 50
	}

	reqs, err := s.requests.ListPending(ctx, s.now(), limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list pending requests: %w", err)
	}
	return reqs, nil
}
