package interest

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/bidfelt/searchcore/internal/domain"
)

// Register stores a pending interest request for a query the catalog could
// not answer. The query is normalized the same way the search and learning
// stores normalize theirs; matching against future item text is then a plain
// substring check. The request stays live for the fixed retention window.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.InterestRequest, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	req := &domain.InterestRequest{
		ID:          uuid.New(),
		SearchQuery: domain.NormalizeText(input.SearchQuery),
		UserID:      input.UserID,
		Email:       trimmedPtr(input.Email),
		Phone:       trimmedPtr(input.Phone),
		Status:      domain.InterestStatusPending,
		ExpiresAt:   now.Add(domain.InterestTTL),
		CreatedAt:   now,
	}

	if err := s.requests.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create interest request: %w", err)
	}

	s.log.InfoContext(ctx, "interest registered",
		"request_id", req.ID,
		"query", req.SearchQuery,
		"expires_at", req.ExpiresAt,
	)
	return req, nil
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
