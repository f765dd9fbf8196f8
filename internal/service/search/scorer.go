package search

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/bidfelt/searchcore/internal/domain"
)

// Scoring formula components. The base similarity score is topped up by a
// capped edge boost from learned selections and a capped popularity boost
// from the term's search count.
const (
	edgeBoostFactor    = 0.1
	edgeBoostCap       = 0.3
	popularityDivisor  = 1000.0
	popularityBoostCap = 0.1
)

// scoreCandidates converts matcher candidates into ranked results using the
// learned edge weights for this query. Results are ordered by probability
// descending; ties fall back to search count descending, then term ascending
// so equal-scored output is deterministic.
func scoreCandidates(cands []candidate, edges map[uuid.UUID]domain.EdgeWeight, minProbability int) []RankedResult {
	results := make([]RankedResult, 0, len(cands))
	for _, c := range cands {
		var edgeWeight float64
		if ew, ok := edges[c.term.ID]; ok {
			edgeWeight = ew.Weight
		}

		p := probability(c.rawScore, edgeWeight, c.term.SearchCount)
		if p < minProbability {
			continue
		}

		results = append(results, RankedResult{
			TermID:      c.term.ID,
			Term:        c.term.Term,
			Type:        c.term.Type,
			CategoryID:  c.term.CategoryID,
			Metadata:    c.term.Metadata,
			Probability: p,
			RawScore:    c.rawScore,
			EdgeWeight:  edgeWeight,
			SearchCount: c.term.SearchCount,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Probability != results[j].Probability {
			return results[i].Probability > results[j].Probability
		}
		if results[i].SearchCount != results[j].SearchCount {
			return results[i].SearchCount > results[j].SearchCount
		}
		return results[i].Term < results[j].Term
	})

	return results
}

// probability maps a raw distance score plus learned and popularity boosts
// to an integer percentage in [0, 100].
func probability(rawScore, edgeWeight float64, searchCount int64) int {
	base := 1 - rawScore

	edgeBoost := edgeWeight * edgeBoostFactor
	if edgeBoost > edgeBoostCap {
		edgeBoost = edgeBoostCap
	}

	popBoost := float64(searchCount) / popularityDivisor
	if popBoost > popularityBoostCap {
		popBoost = popularityBoostCap
	}

	p := math.Round((base + edgeBoost + popBoost) * 100)
	if p > 100 {
		p = 100
	}
	if p < 0 {
		p = 0
	}
	return int(p)
}
