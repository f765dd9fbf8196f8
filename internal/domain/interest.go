package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// InterestTTL is the fixed horizon after which a pending interest request
// becomes inert. Expiry is lazy: the matcher skips rows past ExpiresAt even
// when their status is still pending.
const InterestTTL = 30 * 24 * time.Hour

// InterestRequest is a pending "notify me when this exists" subscription tied
// to a raw search string. Once Status leaves pending it is terminal.
type InterestRequest struct {
	ID          uuid.UUID      `json:"id"`
	SearchQuery string         `json:"searchQuery"`
	UserID      *uuid.UUID     `json:"userId,omitempty"`
	Email       *string        `json:"email,omitempty"`
	Phone       *string        `json:"phone,omitempty"`
	Status      InterestStatus `json:"status"`
	ExpiresAt   time.Time      `json:"expiresAt"`
	ResolvedAt  *time.Time     `json:"resolvedAt,omitempty"`
	FoundItemID *string        `json:"foundItemId,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// Expired reports whether the request has aged past its horizon at the given
// instant.
func (r *InterestRequest) Expired(now time.Time) bool {
	return !r.ExpiresAt.After(now)
}

// Matches tests whether the lower-cased item text contains the request's
// query as a plain substring. Matching is never fuzzy, so a typo in the
// stored query will not resolve.
func (r *InterestRequest) Matches(itemText string) bool {
	q := strings.ToLower(strings.TrimSpace(r.SearchQuery))
	if q == "" {
		return false
	}
	return strings.Contains(strings.ToLower(itemText), q)
}

// NewItem is the payload of an "item created" event fired by listing-creation
// collaborators (auctions, direct sales, tenders, categories).
type NewItem struct {
	Title       string
	Description string
	ItemType    SelectedType
	ItemID      string
}

// MatchText returns the concatenation the matching rule runs against.
func (i NewItem) MatchText() string {
	return strings.ToLower(i.Title + " " + i.Description)
}
