package learning

import (
	"context"
	"fmt"

	"github.com/bidfelt/searchcore/internal/domain"
)

// RecordSelection registers that the user picked a suggested term for a query
// and navigated somewhere. The edge weight and the term's search counter move
// together inside one transaction: a first selection creates the edge at the
// initial weight, a repeat selection bumps the existing one. Returns the edge
// after the update.
func (s *Service) RecordSelection(ctx context.Context, input RecordSelectionInput) (*domain.EdgeWeight, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.terms.GetByID(ctx, input.TermID); err != nil {
		return nil, fmt.Errorf("get term: %w", err)
	}

	sel := domain.Selection{
		SearchQuery:  domain.NormalizeText(input.SearchQuery),
		TermID:       input.TermID,
		SelectedType: input.SelectedType,
		SelectedID:   input.SelectedID,
	}

	var edge *domain.EdgeWeight
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		edge, err = s.edges.Upsert(ctx, sel, s.now())
		if err != nil {
			return fmt.Errorf("upsert edge: %w", err)
		}
		if err := s.terms.IncrementSearchCount(ctx, input.TermID); err != nil {
			return fmt.Errorf("increment search count: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "selection recorded",
		"query", sel.SearchQuery,
		"term_id", sel.TermID,
		"weight", edge.Weight,
		"selections", edge.SelectionCount,
	)
	return edge, nil
}
