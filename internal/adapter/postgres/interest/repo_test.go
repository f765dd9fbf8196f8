package interest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/bidfelt/searchcore/internal/domain"
)

var interestRows = []string{"id", "search_query", "user_id", "email", "phone", "status", "expires_at", "resolved_at", "found_item_id", "created_at"}

func newMock(t *testing.T) (*Repo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return New(mock), mock
}

func ptr[T any](v T) *T { return &v }

func TestRepo_Create(t *testing.T) {
	t.Parallel()

	repo, mock := newMock(t)
	now := time.Now().UTC()
	req := &domain.InterestRequest{
		ID:          uuid.New(),
		SearchQuery: "galaxy fold",
		Email:       ptr("a@b.com"),
		Status:      domain.InterestStatusPending,
		ExpiresAt:   now.Add(domain.InterestTTL),
		CreatedAt:   now,
	}

	mock.ExpectExec(`INSERT INTO interest_requests`).
		WithArgs(req.ID, "galaxy fold", (*uuid.UUID)(nil), ptr("a@b.com"), (*string)(nil),
			"pending", req.ExpiresAt, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	if err := repo.Create(context.Background(), req); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepo_ListPending(t *testing.T) {
	t.Parallel()

	repo, mock := newMock(t)
	now := time.Now().UTC()

	rows := pgxmock.NewRows(interestRows).
		AddRow(uuid.New(), "galaxy fold", (*uuid.UUID)(nil), ptr("a@b.com"), (*string)(nil),
			"pending", now.Add(time.Hour), (*time.Time)(nil), (*string)(nil), now.Add(-time.Hour))

	// Filter must exclude resolved and overdue rows in SQL, not in Go.
	mock.ExpectQuery(`SELECT(.|\n)*FROM interest_requests(.|\n)*WHERE status = \$1 AND expires_at > \$2`).
		WithArgs("pending", now, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(rows)

	got, err := repo.ListPending(context.Background(), now, 500, 0)
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Status != domain.InterestStatusPending {
		t.Errorf("Status = %q, want pending", got[0].Status)
	}
}

func TestRepo_ListPendingAfter(t *testing.T) {
	t.Parallel()

	repo, mock := newMock(t)
	now := time.Now().UTC()
	afterCreated := now.Add(-2 * time.Hour)
	afterID := uuid.New()

	rows := pgxmock.NewRows(interestRows).
		AddRow(uuid.New(), "galaxy fold", (*uuid.UUID)(nil), ptr("a@b.com"), (*string)(nil),
			"pending", now.Add(time.Hour), (*time.Time)(nil), (*string)(nil), now.Add(-time.Hour))

	// Keyset cursor on (created_at, id), so rows resolved mid-sweep cannot
	// shift the scan position the way an offset would.
	mock.ExpectQuery(`SELECT(.|\n)*FROM interest_requests(.|\n)*WHERE status = \$1 AND expires_at > \$2 AND \(created_at, id\) > \(\$3, \$4\)(.|\n)*ORDER BY created_at, id`).
		WithArgs("pending", now, afterCreated, afterID).
		WillReturnRows(rows)

	got, err := repo.ListPendingAfter(context.Background(), now, afterCreated, afterID, 500)
	if err != nil {
		t.Fatalf("ListPendingAfter: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
}

func TestRepo_MarkNotified(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	now := time.Now().UTC()

	t.Run("pending row resolves", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMock(t)

		mock.ExpectExec(`UPDATE interest_requests(.|\n)*WHERE id = \$1 AND status = \$5`).
			WithArgs(id, "notified", now, "D9", "pending").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.MarkNotified(context.Background(), id, "D9", now)
		if err != nil {
			t.Fatalf("MarkNotified: %v", err)
		}
		if !ok {
			t.Error("expected transition to succeed")
		}
	})

	t.Run("already resolved row is left alone", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMock(t)

		mock.ExpectExec(`UPDATE interest_requests`).
			WithArgs(id, "notified", now, "D9", "pending").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.MarkNotified(context.Background(), id, "D9", now)
		if err != nil {
			t.Fatalf("MarkNotified: %v", err)
		}
		if ok {
			t.Error("transition must not fire twice for the same row")
		}
	})
}

func TestRepo_ExpireOverdue(t *testing.T) {
	t.Parallel()

	repo, mock := newMock(t)
	now := time.Now().UTC()

	mock.ExpectExec(`UPDATE interest_requests(.|\n)*WHERE status = \$2 AND expires_at <= \$3`).
		WithArgs("expired", "pending", now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	n, err := repo.ExpireOverdue(context.Background(), now)
	if err != nil {
		t.Fatalf("ExpireOverdue: %v", err)
	}
	if n != 3 {
		t.Errorf("expired = %d, want 3", n)
	}
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	repo, mock := newMock(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT`).WithArgs(id).
		WillReturnRows(pgxmock.NewRows(interestRows))

	_, err := repo.GetByID(context.Background(), id)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}
