package search

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bidfelt/searchcore/internal/domain"
)

// Fallback runs a fuzzy search over the catalog for a query that found no
// exact results, ranking candidates by similarity, learned edge weights and
// term popularity. A query that matches nothing is a normal outcome, not an
// error: the result comes back with HasResults=false.
func (s *Service) Fallback(ctx context.Context, input FallbackInput) (*FallbackResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.DefaultLimit
	}
	minProb := s.cfg.DefaultMinProb
	if input.MinProbability != nil {
		minProb = *input.MinProbability
	}

	normQuery := domain.NormalizeText(input.Query)

	catalog, err := s.terms.ListForMatching(ctx, s.cfg.CatalogScanLimit)
	if err != nil {
		return nil, fmt.Errorf("list terms for matching: %w", err)
	}

	cands := matchCandidates(normQuery, catalog, s.cfg.SimilarityThreshold)
	if len(cands) == 0 {
		s.log.InfoContext(ctx, "fallback search found no candidates", "query", normQuery)
		return &FallbackResult{Query: normQuery, Results: []RankedResult{}}, nil
	}

	ids := make([]uuid.UUID, len(cands))
	for i, c := range cands {
		ids[i] = c.term.ID
	}
	edges, err := s.edges.GetForQuery(ctx, normQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("get edge weights: %w", err)
	}

	results := scoreCandidates(cands, edges, minProb)
	if len(results) > limit {
		results = results[:limit]
	}

	s.log.InfoContext(ctx, "fallback search completed",
		"query", normQuery,
		"candidates", len(cands),
		"results", len(results),
	)

	return &FallbackResult{
		Query:      normQuery,
		Results:    results,
		HasResults: len(results) > 0,
	}, nil
}
