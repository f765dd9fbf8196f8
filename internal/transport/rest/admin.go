package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bidfelt/searchcore/internal/domain"
	"github.com/bidfelt/searchcore/internal/service/interest"
	"github.com/bidfelt/searchcore/internal/service/search"
)

type catalogService interface {
	SeedCatalog(ctx context.Context, input search.SeedInput) (int, error)
	ListTerms(ctx context.Context, input search.ListTermsInput) ([]domain.SearchTerm, error)
	TopEdges(ctx context.Context, input search.TopEdgesInput) ([]domain.EdgeWeight, error)
}

type pendingLister interface {
	ListPending(ctx context.Context, input interest.ListPendingInput) ([]domain.InterestRequest, error)
}

// AdminHandler serves operator endpoints: catalog seeding and inspection of
// learned edges and pending subscriptions.
type AdminHandler struct {
	catalog catalogService
	pending pendingLister
	log     *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(catalog catalogService, pending pendingLister, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		catalog: catalog,
		pending: pending,
		log:     logger.With("handler", "admin"),
	}
}

type seedRequest struct {
	Terms []domain.SeedTerm `json:"terms"`
}

type seedResponse struct {
	Received int `json:"received"`
	Inserted int `json:"inserted"`
}

// Seed loads a batch of catalog terms.
// POST /admin/v1/catalog/seed
func (h *AdminHandler) Seed(w http.ResponseWriter, r *http.Request) {
	var req seedRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	inserted, err := h.catalog.SeedCatalog(r.Context(), search.SeedInput{Terms: req.Terms})
	if err != nil {
		h.log.ErrorContext(r.Context(), "seed catalog", slog.String("error", err.Error()))
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, seedResponse{Received: len(req.Terms), Inserted: inserted})
}

// Terms lists catalog terms, optionally filtered by type.
// GET /admin/v1/catalog/terms?type=product&limit=50&offset=0
func (h *AdminHandler) Terms(w http.ResponseWriter, r *http.Request) {
	input := search.ListTermsInput{
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}
	if v := r.URL.Query().Get("type"); v != "" {
		tt := domain.TermType(v)
		input.Type = &tt
	}

	terms, err := h.catalog.ListTerms(r.Context(), input)
	if err != nil {
		h.log.ErrorContext(r.Context(), "list terms", slog.String("error", err.Error()))
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, terms)
}

// TopEdges lists the heaviest learned edges.
// GET /admin/v1/edges/top?limit=50
func (h *AdminHandler) TopEdges(w http.ResponseWriter, r *http.Request) {
	edges, err := h.catalog.TopEdges(r.Context(), search.TopEdgesInput{Limit: queryInt(r, "limit")})
	if err != nil {
		h.log.ErrorContext(r.Context(), "top edges", slog.String("error", err.Error()))
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, edges)
}

// PendingInterest lists live pending subscriptions.
// GET /admin/v1/interest/pending?limit=50&offset=0
func (h *AdminHandler) PendingInterest(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.pending.ListPending(r.Context(), interest.ListPendingInput{
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	})
	if err != nil {
		h.log.ErrorContext(r.Context(), "list pending interest", slog.String("error", err.Error()))
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reqs)
}

func queryInt(r *http.Request, key string) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
