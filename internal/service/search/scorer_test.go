package search

import (
	"testing"

	"github.com/google/uuid"

	"github.com/bidfelt/searchcore/internal/domain"
)

func TestProbability(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		rawScore    float64
		edgeWeight  float64
		searchCount int64
		want        int
	}{
		{name: "perfect match no boosts", rawScore: 0, want: 100},
		{name: "half distance", rawScore: 0.5, want: 50},
		{name: "edge boost applied", rawScore: 0.5, edgeWeight: 2.0, want: 70},
		{name: "edge boost capped", rawScore: 0.5, edgeWeight: 10.0, want: 80},
		{name: "popularity boost applied", rawScore: 0.5, searchCount: 50, want: 55},
		{name: "popularity boost capped", rawScore: 0.5, searchCount: 50000, want: 60},
		{name: "total capped at 100", rawScore: 0, edgeWeight: 10.0, searchCount: 50000, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := probability(tt.rawScore, tt.edgeWeight, tt.searchCount)
			if got != tt.want {
				t.Errorf("probability(%v, %v, %d): got %d, want %d",
					tt.rawScore, tt.edgeWeight, tt.searchCount, got, tt.want)
			}
		})
	}
}

func TestScoreCandidates_OrderingAndFloor(t *testing.T) {
	t.Parallel()

	strong := catalogTerm("iPhone 15", domain.TermTypeProduct)
	weak := catalogTerm("iPad Mini", domain.TermTypeProduct)

	cands := []candidate{
		{term: weak, rawScore: 0.55},
		{term: strong, rawScore: 0.1},
	}
	edges := map[uuid.UUID]domain.EdgeWeight{
		strong.ID: {TermID: strong.ID, Weight: 1.5},
	}

	results := scoreCandidates(cands, edges, 50)

	if len(results) != 1 {
		t.Fatalf("results: got %d, want 1 (weak candidate below floor)", len(results))
	}
	if results[0].TermID != strong.ID {
		t.Errorf("top result: got %q, want %q", results[0].Term, strong.Term)
	}
	// base 0.9 plus edge boost 0.15 overshoots and is capped.
	if results[0].Probability != 100 {
		t.Errorf("probability: got %d, want 100", results[0].Probability)
	}
	if results[0].EdgeWeight != 1.5 {
		t.Errorf("edge weight: got %v, want 1.5", results[0].EdgeWeight)
	}
}

func TestScoreCandidates_TieBreaks(t *testing.T) {
	t.Parallel()

	// Both search counts exceed the popularity cap, so the probabilities tie
	// and the higher count wins the tie-break.
	popular := catalogTerm("Bravia TV", domain.TermTypeProduct)
	popular.SearchCount = 5000
	lessPopular := catalogTerm("Aconto TV", domain.TermTypeProduct)
	lessPopular.SearchCount = 2000

	cands := []candidate{
		{term: lessPopular, rawScore: 0.4},
		{term: popular, rawScore: 0.4},
	}

	results := scoreCandidates(cands, nil, 0)

	if len(results) != 2 {
		t.Fatalf("results: got %d, want 2", len(results))
	}
	if results[0].TermID != popular.ID {
		t.Errorf("tie-break by search count failed: got %q first", results[0].Term)
	}

	// Equal counts fall back to lexicographic term order.
	lessPopular.SearchCount = 5000
	cands = []candidate{
		{term: popular, rawScore: 0.4},
		{term: lessPopular, rawScore: 0.4},
	}

	results = scoreCandidates(cands, nil, 0)
	if results[0].Term != "Aconto TV" {
		t.Errorf("lexicographic tie-break failed: got %q first", results[0].Term)
	}
}

func TestScoreCandidates_Empty(t *testing.T) {
	t.Parallel()

	results := scoreCandidates(nil, nil, 50)
	if len(results) != 0 {
		t.Errorf("results: got %d, want 0", len(results))
	}
}
