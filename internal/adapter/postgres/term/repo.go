// Package term implements the Term Catalog repository using PostgreSQL.
// It provides catalog reads for the fuzzy matcher, idempotent batch seeding,
// and the popularity counter mutation used by the learning updater.
package term

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bidfelt/searchcore/internal/adapter/postgres"
	"github.com/bidfelt/searchcore/internal/domain"
)

// Repo provides search term persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new term repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const termColumns = `id, term, term_type, normalized_term, category_id, metadata, search_count, created_at`

const getByIDSQL = `
SELECT ` + termColumns + `
FROM search_terms
WHERE id = $1`

const listForMatchingSQL = `
SELECT ` + termColumns + `
FROM search_terms
ORDER BY search_count DESC, normalized_term`

const insertTermSQL = `
INSERT INTO search_terms (id, term, term_type, normalized_term, category_id, metadata, search_count, created_at)
VALUES ($1, $2, $3, $4, $5, $6, 0, $7)
ON CONFLICT (normalized_term, term_type) DO NOTHING`

const incrementSearchCountSQL = `
UPDATE search_terms
SET search_count = search_count + 1
WHERE id = $1`

// GetByID returns a catalog term by primary key.
// Returns domain.ErrNotFound if the term does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SearchTerm, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, getByIDSQL, id)
	if err != nil {
		return nil, postgres.MapError(err, "search_term", id.String())
	}
	defer rows.Close()

	terms, err := scanTerms(rows)
	if err != nil {
		return nil, postgres.MapError(err, "search_term", id.String())
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("search_term %s: %w", id, domain.ErrNotFound)
	}

	return &terms[0], nil
}

// ListForMatching returns the catalog snapshot the fuzzy matcher runs
// against, most popular first. scanLimit 0 loads the whole catalog.
// Returns an empty slice (not nil) when the catalog is empty.
func (r *Repo) ListForMatching(ctx context.Context, scanLimit int) ([]domain.SearchTerm, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	query := listForMatchingSQL
	args := []any{}
	if scanLimit > 0 {
		query += ` LIMIT $1`
		args = append(args, scanLimit)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list terms for matching: %w", err)
	}
	defer rows.Close()

	terms, err := scanTerms(rows)
	if err != nil {
		return nil, fmt.Errorf("list terms for matching: %w", err)
	}

	return terms, nil
}

// List returns catalog terms with an optional type filter and pagination,
// ordered by normalized term for stable paging.
func (r *Repo) List(ctx context.Context, termType *domain.TermType, limit, offset int) ([]domain.SearchTerm, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	builder := sq.Select("id", "term", "term_type", "normalized_term", "category_id", "metadata", "search_count", "created_at").
		From("search_terms").
		OrderBy("normalized_term", "term_type").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(sq.Dollar)

	if termType != nil {
		builder = builder.Where(sq.Eq{"term_type": string(*termType)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list terms query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}
	defer rows.Close()

	terms, err := scanTerms(rows)
	if err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}

	return terms, nil
}

// SeedBatch inserts catalog terms, skipping rows whose (normalized_term, type)
// already exists. Returns the number of rows actually inserted, so a repeated
// call with the same batch reports 0.
func (r *Repo) SeedBatch(ctx context.Context, terms []domain.SeedTerm) (int, error) {
	if len(terms) == 0 {
		return 0, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)
	now := time.Now().UTC()

	inserted := 0
	for _, t := range terms {
		var metadata []byte
		if t.Metadata != nil {
			var err error
			metadata, err = json.Marshal(t.Metadata)
			if err != nil {
				return inserted, fmt.Errorf("marshal term metadata: %w", err)
			}
		}

		tag, err := querier.Exec(ctx, insertTermSQL,
			uuid.New(), t.Term, string(t.Type), domain.NormalizeText(t.Term), t.CategoryID, metadata, now,
		)
		if err != nil {
			return inserted, postgres.MapError(err, "search_term", domain.NormalizeText(t.Term))
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// IncrementSearchCount advances a term's popularity counter by one.
// Returns domain.ErrNotFound if the term does not exist.
func (r *Repo) IncrementSearchCount(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, incrementSearchCountSQL, id)
	if err != nil {
		return postgres.MapError(err, "search_term", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("search_term %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanTerms scans query rows into domain.SearchTerm values.
// Metadata is stored as jsonb and decoded here.
func scanTerms(rows pgx.Rows) ([]domain.SearchTerm, error) {
	result := []domain.SearchTerm{}
	for rows.Next() {
		var (
			t          domain.SearchTerm
			termType   string
			categoryID *uuid.UUID
			metadata   []byte
		)
		if err := rows.Scan(&t.ID, &t.Term, &termType, &t.NormalizedTerm, &categoryID, &metadata, &t.SearchCount, &t.CreatedAt); err != nil {
			return nil, err
		}
		t.Type = domain.TermType(termType)
		t.CategoryID = categoryID
		if len(metadata) > 0 {
			var m domain.TermMetadata
			if err := json.Unmarshal(metadata, &m); err != nil {
				return nil, fmt.Errorf("decode term metadata: %w", err)
			}
			t.Metadata = &m
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
