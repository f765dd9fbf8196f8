package interest

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bidfelt/searchcore/internal/domain"
)

// Get returns one interest request by ID. Requests past their horizon are
// reported as expired even when the stored status still says pending, the
// stored row is flipped only by the maintenance sweep.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.InterestRequest, error) {
	if id == uuid.Nil {
		return nil, &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "id", Message: "required"},
		}}
	}

	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get interest request: %w", err)
	}

	if req.Status == domain.InterestStatusPending && req.Expired(s.now()) {
		req.Status = domain.InterestStatusExpired
	}
	return req, nil
}
