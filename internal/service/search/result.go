package search

import (
	"github.com/google/uuid"

	"github.com/bidfelt/searchcore/internal/domain"
)

// RankedResult is a single fallback suggestion with its computed probability
// and the raw signals that produced it.
type RankedResult struct {
	TermID      uuid.UUID
	Term        string
	Type        domain.TermType
	CategoryID  *uuid.UUID
	Metadata    *domain.TermMetadata
	Probability int
	RawScore    float64
	EdgeWeight  float64
	SearchCount int64
}

// FallbackResult is the full answer to a fallback search. HasResults is false
// when nothing cleared the probability floor, which callers use to offer an
// interest subscription instead.
type FallbackResult struct {
	Query      string
	Results    []RankedResult
	HasResults bool
}
