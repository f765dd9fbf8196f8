// Package search implements fallback search over the term catalog: fuzzy
// candidate matching, multi-signal ranking, and idempotent catalog seeding.
package search

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bidfelt/searchcore/internal/config"
	"github.com/bidfelt/searchcore/internal/domain"
)

type termRepo interface {
	ListForMatching(ctx context.Context, scanLimit int) ([]domain.SearchTerm, error)
	List(ctx context.Context, termType *domain.TermType, limit, offset int) ([]domain.SearchTerm, error)
	SeedBatch(ctx context.Context, terms []domain.SeedTerm) (int, error)
}

type edgeRepo interface {
	GetForQuery(ctx context.Context, searchQuery string, termIDs []uuid.UUID) (map[uuid.UUID]domain.EdgeWeight, error)
	TopByWeight(ctx context.Context, limit int) ([]domain.EdgeWeight, error)
}

// Service provides fallback search operations.
type Service struct {
	log   *slog.Logger
	terms termRepo
	edges edgeRepo
	cfg   config.SearchConfig
}

// NewService creates a new Search service.
func NewService(
	log *slog.Logger,
	terms termRepo,
	edges edgeRepo,
	cfg config.SearchConfig,
) *Service {
	return &Service{
		log:   log.With("service", "search"),
		terms: terms,
		edges: edges,
		cfg:   cfg,
	}
}
