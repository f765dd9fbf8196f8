// Package interest manages "notify me when this exists" subscriptions:
// registering them after empty searches, resolving them when matching items
// appear, and expiring the ones nobody ever answered.
package interest

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"github.com/bidfelt/searchcore/internal/config"
	"github.com/bidfelt/searchcore/internal/domain"
	"github.com/bidfelt/searchcore/internal/notify"
)

type interestRepo interface {
	Create(ctx context.Context, req *domain.InterestRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InterestRequest, error)
	ListPending(ctx context.Context, now time.Time, limit, offset int) ([]domain.InterestRequest, error)
	ListPendingAfter(ctx context.Context, now time.Time, afterCreated time.Time, afterID uuid.UUID, limit int) ([]domain.InterestRequest, error)
	MarkNotified(ctx context.Context, id uuid.UUID, itemID string, now time.Time) (bool, error)
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
}

// Service provides interest request operations.
type Service struct {
	log        *slog.Logger
	requests   interestRepo
	dispatcher notify.Dispatcher
	pool       *ants.Pool
	cfg        config.InterestConfig
	notifyCfg  config.NotifyConfig
	now        func() time.Time
}

// NewService creates a new Interest service. The worker pool bounds
// notification fan-out during item-created sweeps; callers own its lifetime
// and must Close the service on shutdown.
func NewService(
	log *slog.Logger,
	requests interestRepo,
	dispatcher notify.Dispatcher,
	cfg config.InterestConfig,
	notifyCfg config.NotifyConfig,
) (*Service, error) {
	pool, err := ants.NewPool(cfg.SweepWorkers)
	if err != nil {
		return nil, err
	}
	return &Service{
		log:        log.With("service", "interest"),
		requests:   requests,
		dispatcher: dispatcher,
		pool:       pool,
		cfg:        cfg,
		notifyCfg:  notifyCfg,
		now:        time.Now,
	}, nil
}

// Close releases the notification worker pool.
func (s *Service) Close() {
	s.pool.Release()
}
