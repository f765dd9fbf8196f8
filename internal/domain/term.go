package domain

import (
	"time"

	"github.com/google/uuid"
)

// SearchTerm is a canonical entry in the term catalog (shared across users).
// NormalizedTerm is the lower-cased, trimmed form used for matching and
// uniqueness; Term keeps the display spelling.
type SearchTerm struct {
	ID             uuid.UUID     `json:"id"`
	Term           string        `json:"term"`
	Type           TermType      `json:"type"`
	NormalizedTerm string        `json:"normalizedTerm"`
	CategoryID     *uuid.UUID    `json:"categoryId,omitempty"`
	Metadata       *TermMetadata `json:"metadata,omitempty"`
	SearchCount    int64         `json:"searchCount"`
	CreatedAt      time.Time     `json:"createdAt"`
}

// TermMetadata is the optional structured bag attached to a catalog term.
// Aliases and CommonSearches participate in fuzzy matching.
type TermMetadata struct {
	Brand          string   `json:"brand,omitempty"`
	CategoryLabel  string   `json:"categoryLabel,omitempty"`
	Aliases        []string `json:"aliases,omitempty"`
	CommonSearches []string `json:"commonSearches,omitempty"`
}

// MatchAliases returns every metadata string worth comparing a query
// against: aliases first, then common searches. Nil metadata yields nil.
func (m *TermMetadata) MatchAliases() []string {
	if m == nil {
		return nil
	}
	out := make([]string, 0, len(m.Aliases)+len(m.CommonSearches))
	out = append(out, m.Aliases...)
	out = append(out, m.CommonSearches...)
	return out
}

// SeedTerm is one item of a catalog seeding batch.
type SeedTerm struct {
	Term       string        `json:"term"`
	Type       TermType      `json:"type"`
	CategoryID *uuid.UUID    `json:"categoryId,omitempty"`
	Metadata   *TermMetadata `json:"metadata,omitempty"`
}
