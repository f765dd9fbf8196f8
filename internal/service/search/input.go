package search

import (
	"strconv"
	"strings"

	"github.com/bidfelt/searchcore/internal/domain"
)

// Query and paging limits enforced before any catalog work happens.
const (
	maxQueryLen   = 200
	maxResultSet  = 10
	maxListLimit  = 200
	maxSeedBatch  = 1000
	maxTermLen    = 200
	maxAliasCount = 50
)

// FallbackInput holds the parameters for a fallback search.
// Limit 0 and MinProbability nil mean "use the configured defaults".
type FallbackInput struct {
	Query          string
	Limit          int
	MinProbability *int
}

// Validate checks all fields and collects all errors.
func (i FallbackInput) Validate() error {
	var errs []domain.FieldError

	q := strings.TrimSpace(i.Query)
	if q == "" {
		errs = append(errs, domain.FieldError{Field: "query", Message: "required"})
	}
	if len(q) > maxQueryLen {
		errs = append(errs, domain.FieldError{Field: "query", Message: "max 200 characters"})
	}

	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > maxResultSet {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 10"})
	}

	if i.MinProbability != nil {
		if *i.MinProbability < 0 || *i.MinProbability > 100 {
			errs = append(errs, domain.FieldError{Field: "minProbability", Message: "must be between 0 and 100"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListTermsInput holds the parameters for listing catalog terms.
type ListTermsInput struct {
	Type   *domain.TermType
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListTermsInput) Validate() error {
	var errs []domain.FieldError

	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown term type"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > maxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SeedInput holds a batch of catalog terms to load.
type SeedInput struct {
	Terms []domain.SeedTerm
}

// Validate checks all fields and collects all errors.
func (i SeedInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Terms) == 0 {
		errs = append(errs, domain.FieldError{Field: "terms", Message: "required"})
	}
	if len(i.Terms) > maxSeedBatch {
		errs = append(errs, domain.FieldError{Field: "terms", Message: "max 1000 per batch"})
	}

	for idx, t := range i.Terms {
		term := strings.TrimSpace(t.Term)
		if term == "" {
			errs = append(errs, domain.FieldError{Field: "terms", Message: "empty term at index " + strconv.Itoa(idx)})
		}
		if len(term) > maxTermLen {
			errs = append(errs, domain.FieldError{Field: "terms", Message: "term too long at index " + strconv.Itoa(idx)})
		}
		if !t.Type.IsValid() {
			errs = append(errs, domain.FieldError{Field: "terms", Message: "unknown type at index " + strconv.Itoa(idx)})
		}
		if t.Metadata != nil && len(t.Metadata.Aliases) > maxAliasCount {
			errs = append(errs, domain.FieldError{Field: "terms", Message: "too many aliases at index " + strconv.Itoa(idx)})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TopEdgesInput holds the parameters for the learned-edges admin view.
type TopEdgesInput struct {
	Limit int
}

// Validate checks all fields and collects all errors.
func (i TopEdgesInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > maxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 200"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
