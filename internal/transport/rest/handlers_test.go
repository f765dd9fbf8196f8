package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/bidfelt/searchcore/internal/domain"
	"github.com/bidfelt/searchcore/internal/service/interest"
	"github.com/bidfelt/searchcore/internal/service/learning"
	"github.com/bidfelt/searchcore/internal/service/search"
)

type searchServiceMock struct {
	FallbackFunc func(ctx context.Context, input search.FallbackInput) (*search.FallbackResult, error)
}

func (m *searchServiceMock) Fallback(ctx context.Context, input search.FallbackInput) (*search.FallbackResult, error) {
	return m.FallbackFunc(ctx, input)
}

type learningServiceMock struct {
	RecordSelectionFunc func(ctx context.Context, input learning.RecordSelectionInput) (*domain.EdgeWeight, error)
}

func (m *learningServiceMock) RecordSelection(ctx context.Context, input learning.RecordSelectionInput) (*domain.EdgeWeight, error) {
	return m.RecordSelectionFunc(ctx, input)
}

type interestServiceMock struct {
	RegisterFunc      func(ctx context.Context, input interest.RegisterInput) (*domain.InterestRequest, error)
	GetFunc           func(ctx context.Context, id uuid.UUID) (*domain.InterestRequest, error)
	HandleNewItemFunc func(ctx context.Context, input interest.NewItemInput) (*interest.SweepResult, error)
}

func (m *interestServiceMock) Register(ctx context.Context, input interest.RegisterInput) (*domain.InterestRequest, error) {
	return m.RegisterFunc(ctx, input)
}

func (m *interestServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.InterestRequest, error) {
	return m.GetFunc(ctx, id)
}

func (m *interestServiceMock) HandleNewItem(ctx context.Context, input interest.NewItemInput) (*interest.SweepResult, error) {
	return m.HandleNewItemFunc(ctx, input)
}

func TestFallbackEndpoint_Success(t *testing.T) {
	t.Parallel()

	termID := uuid.New()
	svc := &searchServiceMock{
		FallbackFunc: func(ctx context.Context, input search.FallbackInput) (*search.FallbackResult, error) {
			if input.Query != "ipone 15" {
				t.Errorf("query: got %q", input.Query)
			}
			return &search.FallbackResult{
				Query: "ipone 15",
				Results: []search.RankedResult{
					{TermID: termID, Term: "iPhone 15", Type: domain.TermTypeProduct, Probability: 92, RawScore: 0.11},
				},
				HasResults: true,
			}, nil
		},
	}

	h := NewSearchHandler(svc, &learningServiceMock{}, slog.Default())

	body := strings.NewReader(`{"query":"ipone 15"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search/fallback", body)
	rec := httptest.NewRecorder()
	h.Fallback(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var resp fallbackResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.HasResults || len(resp.Results) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Results[0].Probability != 92 {
		t.Errorf("probability: got %d, want 92", resp.Results[0].Probability)
	}
}

func TestFallbackEndpoint_InvalidBody(t *testing.T) {
	t.Parallel()

	h := NewSearchHandler(&searchServiceMock{}, &learningServiceMock{}, slog.Default())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/search/fallback", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Fallback(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestFallbackEndpoint_ValidationErrorShape(t *testing.T) {
	t.Parallel()

	svc := &searchServiceMock{
		FallbackFunc: func(ctx context.Context, input search.FallbackInput) (*search.FallbackResult, error) {
			return nil, &domain.ValidationError{Errors: []domain.FieldError{
				{Field: "query", Message: "required"},
			}}
		},
	}
	h := NewSearchHandler(svc, &learningServiceMock{}, slog.Default())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/search/fallback", strings.NewReader(`{"query":""}`))
	rec := httptest.NewRecorder()
	h.Fallback(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Fields["query"] != "required" {
		t.Errorf("fields: got %v", resp.Fields)
	}
}

func TestSelectionEndpoint_Success(t *testing.T) {
	t.Parallel()

	termID := uuid.New()
	svc := &learningServiceMock{
		RecordSelectionFunc: func(ctx context.Context, input learning.RecordSelectionInput) (*domain.EdgeWeight, error) {
			return &domain.EdgeWeight{TermID: input.TermID, Weight: 1.5, SelectionCount: 2}, nil
		},
	}
	h := NewSearchHandler(&searchServiceMock{}, svc, slog.Default())

	body := strings.NewReader(`{"searchQuery":"ipone 15","termId":"` + termID.String() + `","selectedType":"category","selectedId":"cat-1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search/selection", body)
	rec := httptest.NewRecorder()
	h.Selection(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body: %s", rec.Code, rec.Body.String())
	}

	var resp selectionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Weight != 1.5 || resp.SelectionCount != 2 {
		t.Errorf("response: %+v", resp)
	}
}

func TestSelectionEndpoint_UnknownTerm(t *testing.T) {
	t.Parallel()

	svc := &learningServiceMock{
		RecordSelectionFunc: func(ctx context.Context, input learning.RecordSelectionInput) (*domain.EdgeWeight, error) {
			return nil, domain.ErrNotFound
		},
	}
	h := NewSearchHandler(&searchServiceMock{}, svc, slog.Default())

	body := strings.NewReader(`{"searchQuery":"x","termId":"` + uuid.NewString() + `","selectedType":"category","selectedId":"c"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search/selection", body)
	rec := httptest.NewRecorder()
	h.Selection(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
}

func TestRegisterEndpoint_Created(t *testing.T) {
	t.Parallel()

	svc := &interestServiceMock{
		RegisterFunc: func(ctx context.Context, input interest.RegisterInput) (*domain.InterestRequest, error) {
			return &domain.InterestRequest{
				ID:          uuid.New(),
				SearchQuery: input.SearchQuery,
				Status:      domain.InterestStatusPending,
			}, nil
		},
	}
	h := NewInterestHandler(svc, slog.Default())

	body := strings.NewReader(`{"searchQuery":"vintage omega","email":"a@example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interest", body)
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201, body: %s", rec.Code, rec.Body.String())
	}
}

func TestGetInterestEndpoint_InvalidID(t *testing.T) {
	t.Parallel()

	h := NewInterestHandler(&interestServiceMock{}, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/interest/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestItemCreatedEndpoint_AcceptsAndDetaches(t *testing.T) {
	t.Parallel()

	swept := make(chan context.Context, 1)
	svc := &interestServiceMock{
		HandleNewItemFunc: func(ctx context.Context, input interest.NewItemInput) (*interest.SweepResult, error) {
			swept <- ctx
			return &interest.SweepResult{Scanned: 10, Matched: 2, Notified: 2}, nil
		},
	}
	h := NewInterestHandler(svc, slog.Default())

	// Cancelled request context stands in for a collaborator that hung up;
	// the sweep must still run to completion.
	reqCtx, cancel := context.WithCancel(context.Background())

	body := strings.NewReader(`{"title":"Omega Seamaster","itemType":"auction","itemId":"auc-1"}`)
	req := httptest.NewRequest(http.MethodPost, "/internal/v1/items/created", body).WithContext(reqCtx)
	rec := httptest.NewRecorder()
	h.ItemCreated(rec, req)
	cancel()

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status: got %d, want 202, body: %s", rec.Code, rec.Body.String())
	}

	select {
	case ctx := <-swept:
		if err := ctx.Err(); err != nil {
			t.Errorf("sweep context cancelled with the request: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("sweep never ran")
	}
}

func TestItemCreatedEndpoint_InvalidPayloadRejectedUpFront(t *testing.T) {
	t.Parallel()

	svc := &interestServiceMock{
		HandleNewItemFunc: func(ctx context.Context, input interest.NewItemInput) (*interest.SweepResult, error) {
			t.Error("sweep must not start for an invalid payload")
			return nil, nil
		},
	}
	h := NewInterestHandler(svc, slog.Default())

	body := strings.NewReader(`{"title":"","itemType":"auction","itemId":""}`)
	req := httptest.NewRequest(http.MethodPost, "/internal/v1/items/created", body)
	rec := httptest.NewRecorder()
	h.ItemCreated(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400, body: %s", rec.Code, rec.Body.String())
	}
}

func TestWriteDomainError_Mapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: domain.ErrNotFound, want: http.StatusNotFound},
		{name: "already exists", err: domain.ErrAlreadyExists, want: http.StatusConflict},
		{name: "conflict", err: domain.ErrConflict, want: http.StatusConflict},
		{name: "validation", err: domain.ErrValidation, want: http.StatusBadRequest},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			writeDomainError(rec, tt.err)
			if rec.Code != tt.want {
				t.Errorf("status: got %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
