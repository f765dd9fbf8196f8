package search

import (
	"github.com/agnivade/levenshtein"

	"github.com/bidfelt/searchcore/internal/domain"
)

// Field factors for the weighted multi-field comparison. The display term
// counts full, the normalized form slightly less, metadata aliases least.
const (
	fieldWeightTerm       = 1.0
	fieldWeightNormalized = 0.9
	fieldWeightAlias      = 0.75
)

// candidate pairs a catalog term with its raw distance score in [0, 1],
// where 0 is an exact match and 1 is no similarity at all.
type candidate struct {
	term     domain.SearchTerm
	rawScore float64
}

// matchCandidates compares a normalized query against every catalog term and
// keeps the ones within the similarity threshold. Pure function over its
// inputs; an empty query or catalog yields an empty list, never an error.
// Output order follows the catalog snapshot; the scorer imposes ranking.
func matchCandidates(normQuery string, catalog []domain.SearchTerm, threshold float64) []candidate {
	if normQuery == "" || len(catalog) == 0 {
		return nil
	}

	queryTokens := domain.Tokenize(normQuery)

	var out []candidate
	for _, t := range catalog {
		best := fieldWeightTerm * similarity(normQuery, queryTokens, domain.NormalizeText(t.Term))
		if s := fieldWeightNormalized * similarity(normQuery, queryTokens, t.NormalizedTerm); s > best {
			best = s
		}
		for _, alias := range t.Metadata.MatchAliases() {
			if s := fieldWeightAlias * similarity(normQuery, queryTokens, domain.NormalizeText(alias)); s > best {
				best = s
			}
		}

		raw := 1 - best
		if raw > threshold {
			continue
		}
		out = append(out, candidate{term: t, rawScore: raw})
	}

	return out
}

// similarity returns a score in [0, 1] between a normalized query and a
// normalized candidate string. It takes the better of a whole-string edit
// ratio and a token-level comparison, so both small typos ("ipone 15") and
// partial queries ("iphone 15" vs "iphone 15 pro") score high.
func similarity(normQuery string, queryTokens []string, normCandidate string) float64 {
	if normCandidate == "" {
		return 0
	}
	if normQuery == normCandidate {
		return 1
	}

	best := editRatio(normQuery, normCandidate)
	if s := tokenSimilarity(queryTokens, domain.Tokenize(normCandidate)); s > best {
		best = s
	}
	return best
}

// editRatio is the normalized Levenshtein similarity: 1 − distance/maxLen.
func editRatio(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1
	}
	d := levenshtein.ComputeDistance(a, b)
	return 1 - float64(d)/float64(longest)
}

// tokenSimilarity scores how well the query tokens are covered by the
// candidate tokens: each query token contributes its best edit ratio against
// any candidate token, weighted by token length so "15" cannot dominate
// "iphone". Word order does not matter.
func tokenSimilarity(queryTokens, candTokens []string) float64 {
	if len(queryTokens) == 0 || len(candTokens) == 0 {
		return 0
	}

	var weighted, total float64
	for _, qt := range queryTokens {
		best := 0.0
		for _, ct := range candTokens {
			if r := editRatio(qt, ct); r > best {
				best = r
			}
		}
		w := float64(len([]rune(qt)))
		weighted += best * w
		total += w
	}
	if total == 0 {
		return 0
	}
	return weighted / total
}
