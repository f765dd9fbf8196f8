package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/bidfelt/searchcore/internal/domain"
	"github.com/bidfelt/searchcore/internal/service/learning"
	"github.com/bidfelt/searchcore/internal/service/search"
)

type searchService interface {
	Fallback(ctx context.Context, input search.FallbackInput) (*search.FallbackResult, error)
}

type learningService interface {
	RecordSelection(ctx context.Context, input learning.RecordSelectionInput) (*domain.EdgeWeight, error)
}

// SearchHandler serves the public search endpoints.
type SearchHandler struct {
	search   searchService
	learning learningService
	log      *slog.Logger
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(searchSvc searchService, learningSvc learningService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		search:   searchSvc,
		learning: learningSvc,
		log:      logger.With("handler", "search"),
	}
}

type fallbackRequest struct {
	Query          string `json:"query"`
	Limit          int    `json:"limit,omitempty"`
	MinProbability *int   `json:"minProbability,omitempty"`
}

type fallbackResultItem struct {
	TermID      uuid.UUID            `json:"termId"`
	Term        string               `json:"term"`
	Type        domain.TermType      `json:"type"`
	CategoryID  *uuid.UUID           `json:"categoryId,omitempty"`
	Metadata    *domain.TermMetadata `json:"metadata,omitempty"`
	Probability int                  `json:"probability"`
	RawScore    float64              `json:"rawScore"`
}

type fallbackResponse struct {
	Query      string               `json:"query"`
	Results    []fallbackResultItem `json:"results"`
	HasResults bool                 `json:"hasResults"`
}

// Fallback runs a fuzzy fallback search.
// POST /api/v1/search/fallback
func (h *SearchHandler) Fallback(w http.ResponseWriter, r *http.Request) {
	var req fallbackRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := h.search.Fallback(r.Context(), search.FallbackInput{
		Query:          req.Query,
		Limit:          req.Limit,
		MinProbability: req.MinProbability,
	})
	if err != nil {
		h.logError(r, "fallback search", err)
		writeDomainError(w, err)
		return
	}

	items := make([]fallbackResultItem, len(result.Results))
	for i, res := range result.Results {
		items[i] = fallbackResultItem{
			TermID:      res.TermID,
			Term:        res.Term,
			Type:        res.Type,
			CategoryID:  res.CategoryID,
			Metadata:    res.Metadata,
			Probability: res.Probability,
			RawScore:    res.RawScore,
		}
	}

	writeJSON(w, http.StatusOK, fallbackResponse{
		Query:      result.Query,
		Results:    items,
		HasResults: result.HasResults,
	})
}

type selectionRequest struct {
	SearchQuery  string              `json:"searchQuery"`
	TermID       uuid.UUID           `json:"termId"`
	SelectedType domain.SelectedType `json:"selectedType"`
	SelectedID   string              `json:"selectedId"`
}

type selectionResponse struct {
	TermID         uuid.UUID `json:"termId"`
	Weight         float64   `json:"weight"`
	SelectionCount int       `json:"selectionCount"`
}

// Selection records that the user picked a fallback suggestion.
// POST /api/v1/search/selection
func (h *SearchHandler) Selection(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	edge, err := h.learning.RecordSelection(r.Context(), learning.RecordSelectionInput{
		SearchQuery:  req.SearchQuery,
		TermID:       req.TermID,
		SelectedType: req.SelectedType,
		SelectedID:   req.SelectedID,
	})
	if err != nil {
		h.logError(r, "record selection", err)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, selectionResponse{
		TermID:         edge.TermID,
		Weight:         edge.Weight,
		SelectionCount: edge.SelectionCount,
	})
}

func (h *SearchHandler) logError(r *http.Request, op string, err error) {
	h.log.ErrorContext(r.Context(), op, slog.String("error", err.Error()))
}
