package search

import (
	"context"
	"fmt"

	"github.com/bidfelt/searchcore/internal/domain"
)

// ListTerms returns a page of catalog terms, most searched first, optionally
// filtered by type.
func (s *Service) ListTerms(ctx context.Context, input ListTermsInput) ([]domain.SearchTerm, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = 50
	}

	terms, err := s.terms.List(ctx, input.Type, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}
	return terms, nil
}
