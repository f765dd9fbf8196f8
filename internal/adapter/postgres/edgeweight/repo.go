// Package edgeweight implements the Edge Weight store using PostgreSQL.
// The learned (query → term) association is maintained with a single atomic
// increment-or-insert statement so concurrent selections of the same pair
// never lose updates.
package edgeweight

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bidfelt/searchcore/internal/adapter/postgres"
	"github.com/bidfelt/searchcore/internal/domain"
)

// Repo provides edge weight persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new edge weight repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const edgeColumns = `id, search_query, term_id, selected_type, selected_id, weight, selection_count, last_selected_at, created_at`

// upsertSQL is the whole learning rule in one statement: first selection of a
// (query, term) pair creates the row at the initial weight, every repeat adds
// the fixed step, bumps selection_count, and refreshes the destination fields.
const upsertSQL = `
INSERT INTO edge_weights (id, search_query, term_id, selected_type, selected_id, weight, selection_count, last_selected_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, 1, $7, $7)
ON CONFLICT (search_query, term_id) DO UPDATE SET
    weight           = edge_weights.weight + $8,
    selection_count  = edge_weights.selection_count + 1,
    selected_type    = EXCLUDED.selected_type,
    selected_id      = EXCLUDED.selected_id,
    last_selected_at = EXCLUDED.last_selected_at
RETURNING ` + edgeColumns

const getForQuerySQL = `
SELECT ` + edgeColumns + `
FROM edge_weights
WHERE search_query = $1 AND term_id = ANY($2)`

const topByWeightSQL = `
SELECT ` + edgeColumns + `
FROM edge_weights
ORDER BY weight DESC, selection_count DESC, search_query
LIMIT $1`

// Upsert records a selection: insert at the initial weight on first sight,
// increment-and-refresh on conflict. Atomic per (search_query, term_id) key.
func (r *Repo) Upsert(ctx context.Context, sel domain.Selection, now time.Time) (*domain.EdgeWeight, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, upsertSQL,
		uuid.New(), sel.SearchQuery, sel.TermID, string(sel.SelectedType), sel.SelectedID,
		domain.InitialEdgeWeight, now, domain.EdgeWeightStep,
	)
	if err != nil {
		return nil, postgres.MapError(err, "edge_weight", sel.SearchQuery)
	}
	defer rows.Close()

	edges, err := scanEdges(rows)
	if err != nil {
		return nil, postgres.MapError(err, "edge_weight", sel.SearchQuery)
	}
	if len(edges) == 0 {
		return nil, fmt.Errorf("edge_weight %s: upsert returned no row", sel.SearchQuery)
	}

	return &edges[0], nil
}

// GetForQuery returns the edge weights stored for a normalized query,
// restricted to the candidate term ids, keyed by term id. Terms without a
// learned association are simply absent from the map.
func (r *Repo) GetForQuery(ctx context.Context, searchQuery string, termIDs []uuid.UUID) (map[uuid.UUID]domain.EdgeWeight, error) {
	if len(termIDs) == 0 {
		return map[uuid.UUID]domain.EdgeWeight{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, getForQuerySQL, searchQuery, termIDs)
	if err != nil {
		return nil, fmt.Errorf("get edge weights for query: %w", err)
	}
	defer rows.Close()

	edges, err := scanEdges(rows)
	if err != nil {
		return nil, fmt.Errorf("get edge weights for query: %w", err)
	}

	result := make(map[uuid.UUID]domain.EdgeWeight, len(edges))
	for _, e := range edges {
		result[e.TermID] = e
	}

	return result, nil
}

// TopByWeight returns the strongest learned associations, heaviest first.
func (r *Repo) TopByWeight(ctx context.Context, limit int) ([]domain.EdgeWeight, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, topByWeightSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("top edge weights: %w", err)
	}
	defer rows.Close()

	edges, err := scanEdges(rows)
	if err != nil {
		return nil, fmt.Errorf("top edge weights: %w", err)
	}

	return edges, nil
}

// scanEdges scans query rows into domain.EdgeWeight values.
func scanEdges(rows pgx.Rows) ([]domain.EdgeWeight, error) {
	result := []domain.EdgeWeight{}
	for rows.Next() {
		var (
			e            domain.EdgeWeight
			selectedType string
		)
		if err := rows.Scan(&e.ID, &e.SearchQuery, &e.TermID, &selectedType, &e.SelectedID,
			&e.Weight, &e.SelectionCount, &e.LastSelectedAt, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.SelectedType = domain.SelectedType(selectedType)
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
