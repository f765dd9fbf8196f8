package domain

import (
	"time"

	"github.com/google/uuid"
)

// Edge weight learning parameters. InitialEdgeWeight is the weight a brand-new
// association starts with; EdgeWeightStep is added on every repeat selection.
const (
	InitialEdgeWeight = 1.0
	EdgeWeightStep    = 0.5
)

// EdgeWeight is a learned association between a raw (normalized) query string
// and a catalog term the user chose after seeing fallback suggestions.
// (SearchQuery, TermID) is unique: repeated selections update the same row.
type EdgeWeight struct {
	ID             uuid.UUID    `json:"id"`
	SearchQuery    string       `json:"searchQuery"`
	TermID         uuid.UUID    `json:"termId"`
	SelectedType   SelectedType `json:"selectedType"`
	SelectedID     string       `json:"selectedId"`
	Weight         float64      `json:"weight"`
	SelectionCount int          `json:"selectionCount"`
	LastSelectedAt time.Time    `json:"lastSelectedAt"`
	CreatedAt      time.Time    `json:"createdAt"`
}

// Selection describes the destination a user actually navigated to after
// picking a suggestion. SelectedID is opaque to this engine.
type Selection struct {
	SearchQuery  string
	TermID       uuid.UUID
	SelectedType SelectedType
	SelectedID   string
}
