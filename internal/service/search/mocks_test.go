package search

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/bidfelt/searchcore/internal/domain"
)

// termRepoMock is a hand-written mock of the termRepo interface.
type termRepoMock struct {
	ListForMatchingFunc func(ctx context.Context, scanLimit int) ([]domain.SearchTerm, error)
	ListFunc            func(ctx context.Context, termType *domain.TermType, limit, offset int) ([]domain.SearchTerm, error)
	SeedBatchFunc       func(ctx context.Context, terms []domain.SeedTerm) (int, error)

	mu                   sync.Mutex
	listForMatchingCalls []int
	listCalls            []int
	seedBatchCalls       [][]domain.SeedTerm
}

func (m *termRepoMock) ListForMatching(ctx context.Context, scanLimit int) ([]domain.SearchTerm, error) {
	m.mu.Lock()
	m.listForMatchingCalls = append(m.listForMatchingCalls, scanLimit)
	m.mu.Unlock()
	return m.ListForMatchingFunc(ctx, scanLimit)
}

func (m *termRepoMock) List(ctx context.Context, termType *domain.TermType, limit, offset int) ([]domain.SearchTerm, error) {
	m.mu.Lock()
	m.listCalls = append(m.listCalls, limit)
	m.mu.Unlock()
	return m.ListFunc(ctx, termType, limit, offset)
}

func (m *termRepoMock) SeedBatch(ctx context.Context, terms []domain.SeedTerm) (int, error) {
	m.mu.Lock()
	m.seedBatchCalls = append(m.seedBatchCalls, terms)
	m.mu.Unlock()
	return m.SeedBatchFunc(ctx, terms)
}

func (m *termRepoMock) ListForMatchingCalls() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listForMatchingCalls
}

func (m *termRepoMock) SeedBatchCalls() [][]domain.SeedTerm {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.seedBatchCalls
}

// edgeRepoMock is a hand-written mock of the edgeRepo interface.
type edgeRepoMock struct {
	GetForQueryFunc func(ctx context.Context, searchQuery string, termIDs []uuid.UUID) (map[uuid.UUID]domain.EdgeWeight, error)
	TopByWeightFunc func(ctx context.Context, limit int) ([]domain.EdgeWeight, error)

	mu               sync.Mutex
	getForQueryCalls []string
	topByWeightCalls []int
}

func (m *edgeRepoMock) GetForQuery(ctx context.Context, searchQuery string, termIDs []uuid.UUID) (map[uuid.UUID]domain.EdgeWeight, error) {
	m.mu.Lock()
	m.getForQueryCalls = append(m.getForQueryCalls, searchQuery)
	m.mu.Unlock()
	return m.GetForQueryFunc(ctx, searchQuery, termIDs)
}

func (m *edgeRepoMock) TopByWeight(ctx context.Context, limit int) ([]domain.EdgeWeight, error) {
	m.mu.Lock()
	m.topByWeightCalls = append(m.topByWeightCalls, limit)
	m.mu.Unlock()
	return m.TopByWeightFunc(ctx, limit)
}

func (m *edgeRepoMock) GetForQueryCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getForQueryCalls
}
