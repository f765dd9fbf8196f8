// Package learning records user selections after fallback searches and turns
// them into edge weight updates that bias future ranking.
package learning

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bidfelt/searchcore/internal/domain"
)

type edgeRepo interface {
	Upsert(ctx context.Context, sel domain.Selection, now time.Time) (*domain.EdgeWeight, error)
}

type termRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SearchTerm, error)
	IncrementSearchCount(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service applies selection feedback to the edge weight store.
type Service struct {
	log   *slog.Logger
	edges edgeRepo
	terms termRepo
	tx    txManager
	now   func() time.Time
}

// NewService creates a new Learning service.
func NewService(
	log *slog.Logger,
	edges edgeRepo,
	terms termRepo,
	tx txManager,
) *Service {
	return &Service{
		log:   log.With("service", "learning"),
		edges: edges,
		terms: terms,
		tx:    tx,
		now:   time.Now,
	}
}
