// Package interest implements the Interest Registry repository using
// PostgreSQL. Resolution uses a conditional status transition so a pending
// row can be marked notified at most once, even by concurrent sweeps.
package interest

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bidfelt/searchcore/internal/adapter/postgres"
	"github.com/bidfelt/searchcore/internal/domain"
)

// Repo provides interest request persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new interest repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const interestColumns = `id, search_query, user_id, email, phone, status, expires_at, resolved_at, found_item_id, created_at`

const createSQL = `
INSERT INTO interest_requests (id, search_query, user_id, email, phone, status, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const getByIDSQL = `
SELECT ` + interestColumns + `
FROM interest_requests
WHERE id = $1`

const markNotifiedSQL = `
UPDATE interest_requests
SET status = $2, resolved_at = $3, found_item_id = $4
WHERE id = $1 AND status = $5`

const expireOverdueSQL = `
UPDATE interest_requests
SET status = $1
WHERE status = $2 AND expires_at <= $3`

// Create inserts a new pending interest request.
func (r *Repo) Create(ctx context.Context, req *domain.InterestRequest) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	_, err := querier.Exec(ctx, createSQL,
		req.ID, req.SearchQuery, req.UserID, req.Email, req.Phone,
		string(req.Status), req.ExpiresAt, req.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "interest_request", req.ID.String())
	}

	return nil
}

// GetByID returns an interest request by primary key.
// Returns domain.ErrNotFound if the request does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.InterestRequest, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, getByIDSQL, id)
	if err != nil {
		return nil, postgres.MapError(err, "interest_request", id.String())
	}
	defer rows.Close()

	reqs, err := scanRequests(rows)
	if err != nil {
		return nil, postgres.MapError(err, "interest_request", id.String())
	}
	if len(reqs) == 0 {
		return nil, fmt.Errorf("interest_request %s: %w", id, domain.ErrNotFound)
	}

	return &reqs[0], nil
}

// ListPending returns pending, unexpired requests ordered by creation time.
// Rows past their horizon are excluded here (lazy expiry), regardless of
// their stored status.
func (r *Repo) ListPending(ctx context.Context, now time.Time, limit, offset int) ([]domain.InterestRequest, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	builder := sq.Select("id", "search_query", "user_id", "email", "phone", "status",
		"expires_at", "resolved_at", "found_item_id", "created_at").
		From("interest_requests").
		Where(sq.Eq{"status": string(domain.InterestStatusPending)}).
		Where(sq.Gt{"expires_at": now}).
		OrderBy("created_at").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(sq.Dollar)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list pending query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pending interest requests: %w", err)
	}
	defer rows.Close()

	reqs, err := scanRequests(rows)
	if err != nil {
		return nil, fmt.Errorf("list pending interest requests: %w", err)
	}

	return reqs, nil
}

// ListPendingAfter returns pending, unexpired requests strictly after the
// (afterCreated, afterID) cursor, ordered by (created_at, id). Resolution
// never touches created_at, so the cursor stays stable while a sweep flips
// earlier rows to notified. Zero values select from the beginning.
func (r *Repo) ListPendingAfter(ctx context.Context, now time.Time, afterCreated time.Time, afterID uuid.UUID, limit int) ([]domain.InterestRequest, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	builder := sq.Select("id", "search_query", "user_id", "email", "phone", "status",
		"expires_at", "resolved_at", "found_item_id", "created_at").
		From("interest_requests").
		Where(sq.Eq{"status": string(domain.InterestStatusPending)}).
		Where(sq.Gt{"expires_at": now}).
		Where(sq.Expr("(created_at, id) > (?, ?)", afterCreated, afterID)).
		OrderBy("created_at", "id").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list pending after query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pending interest requests after cursor: %w", err)
	}
	defer rows.Close()

	reqs, err := scanRequests(rows)
	if err != nil {
		return nil, fmt.Errorf("list pending interest requests after cursor: %w", err)
	}

	return reqs, nil
}

// MarkNotified transitions a request from pending to notified, recording the
// resolution time and the item that satisfied it. Returns false when the row
// was already resolved (or expired); the caller must not notify again.
func (r *Repo) MarkNotified(ctx context.Context, id uuid.UUID, itemID string, now time.Time) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, markNotifiedSQL,
		id, string(domain.InterestStatusNotified), now, itemID, string(domain.InterestStatusPending),
	)
	if err != nil {
		return false, postgres.MapError(err, "interest_request", id.String())
	}

	return tag.RowsAffected() == 1, nil
}

// ExpireOverdue bulk-marks pending rows past their horizon as expired.
// An optimization over lazy expiry; the matcher is correct without it.
func (r *Repo) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, expireOverdueSQL,
		string(domain.InterestStatusExpired), string(domain.InterestStatusPending), now,
	)
	if err != nil {
		return 0, fmt.Errorf("expire overdue interest requests: %w", err)
	}

	return tag.RowsAffected(), nil
}

// scanRequests scans query rows into domain.InterestRequest values.
func scanRequests(rows pgx.Rows) ([]domain.InterestRequest, error) {
	result := []domain.InterestRequest{}
	for rows.Next() {
		var (
			req    domain.InterestRequest
			status string
		)
		if err := rows.Scan(&req.ID, &req.SearchQuery, &req.UserID, &req.Email, &req.Phone,
			&status, &req.ExpiresAt, &req.ResolvedAt, &req.FoundItemID, &req.CreatedAt); err != nil {
			return nil, err
		}
		req.Status = domain.InterestStatus(status)
		result = append(result, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
