package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/bidfelt/searchcore/internal/domain"
	"github.com/bidfelt/searchcore/internal/service/interest"
)

type interestService interface {
	Register(ctx context.Context, input interest.RegisterInput) (*domain.InterestRequest, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.InterestRequest, error)
	HandleNewItem(ctx context.Context, input interest.NewItemInput) (*interest.SweepResult, error)
}

// InterestHandler serves interest subscription endpoints and the internal
// item-created hook.
type InterestHandler struct {
	interest interestService
	log      *slog.Logger
}

// NewInterestHandler creates an InterestHandler.
func NewInterestHandler(svc interestService, logger *slog.Logger) *InterestHandler {
	return &InterestHandler{
		interest: svc,
		log:      logger.With("handler", "interest"),
	}
}

type registerRequest struct {
	SearchQuery string     `json:"searchQuery"`
	UserID      *uuid.UUID `json:"userId,omitempty"`
	Email       *string    `json:"email,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
}

type interestResponse struct {
	ID          uuid.UUID             `json:"id"`
	SearchQuery string                `json:"searchQuery"`
	Status      domain.InterestStatus `json:"status"`
	ExpiresAt   time.Time             `json:"expiresAt"`
	FoundItemID *string               `json:"foundItemId,omitempty"`
}

// Register stores a "notify me" subscription for an unanswered query.
// POST /api/v1/interest
func (h *InterestHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	created, err := h.interest.Register(r.Context(), interest.RegisterInput{
		SearchQuery: req.SearchQuery,
		UserID:      req.UserID,
		Email:       req.Email,
		Phone:       req.Phone,
	})
	if err != nil {
		h.log.ErrorContext(r.Context(), "register interest", slog.String("error", err.Error()))
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, interestResponse{
		ID:          created.ID,
		SearchQuery: created.SearchQuery,
		Status:      created.Status,
		ExpiresAt:   created.ExpiresAt,
	})
}

// Get returns the current state of one subscription.
// GET /api/v1/interest/{id}
func (h *InterestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	req, err := h.interest.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, interestResponse{
		ID:          req.ID,
		SearchQuery: req.SearchQuery,
		Status:      req.Status,
		ExpiresAt:   req.ExpiresAt,
		FoundItemID: req.FoundItemID,
	})
}

type itemCreatedRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	ItemType    domain.SelectedType `json:"itemType"`
	ItemID      string              `json:"itemId"`
}

type acceptedResponse struct {
	Status string `json:"status"`
}

// ItemCreated resolves pending subscriptions matching a new listing. Called
// by listing-creation services, not exposed publicly. The payload is
// validated up front; the sweep itself runs detached from the request, so a
// caller timing out cannot cancel it mid-flight and a sweep failure never
// reaches the caller.
// POST /internal/v1/items/created
func (h *InterestHandler) ItemCreated(w http.ResponseWriter, r *http.Request) {
	var req itemCreatedRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	input := interest.NewItemInput{
		Title:       req.Title,
		Description: req.Description,
		ItemType:    req.ItemType,
		ItemID:      req.ItemID,
	}
	if err := input.Validate(); err != nil {
		writeDomainError(w, err)
		return
	}

	ctx := context.WithoutCancel(r.Context())
	go func() {
		result, err := h.interest.HandleNewItem(ctx, input)
		if err != nil {
			h.log.ErrorContext(ctx, "handle item created",
				slog.String("item_id", input.ItemID),
				slog.String("error", err.Error()),
			)
			return
		}
		h.log.InfoContext(ctx, "item sweep dispatched",
			slog.String("item_id", input.ItemID),
			slog.Int("notified", result.Notified),
			slog.Int("failed", result.Failed),
		)
	}()

	writeJSON(w, http.StatusAccepted, acceptedResponse{Status: "accepted"})
}
