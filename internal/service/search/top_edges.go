package search

import (
	"context"
	"fmt"

	"github.com/bidfelt/searchcore/internal/domain"
)

// TopEdges returns the strongest learned query-to-term edges, heaviest first.
// Operators use it to inspect what the ranking has learned.
func (s *Service) TopEdges(ctx context.Context, input TopEdgesInput) ([]domain.EdgeWeight, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = 50
	}

	edges, err := s.edges.TopByWeight(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("top edges: %w", err)
	}
	return edges, nil
}
