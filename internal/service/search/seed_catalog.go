package search

import (
	"context"
	"fmt"
)

// SeedCatalog loads a batch of terms into the catalog. Terms whose normalized
// form and type already exist are skipped, so re-running the same batch is
// safe. Returns how many terms were actually inserted.
func (s *Service) SeedCatalog(ctx context.Context, input SeedInput) (int, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}

	inserted, err := s.terms.SeedBatch(ctx, input.Terms)
	if err != nil {
		return 0, fmt.Errorf("seed terms: %w", err)
	}

	s.log.InfoContext(ctx, "catalog seeded",
		"batch", len(input.Terms),
		"inserted", inserted,
		"skipped", len(input.Terms)-inserted,
	)
	return inserted, nil
}
