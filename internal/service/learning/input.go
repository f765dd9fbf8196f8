package learning

import (
	"strings"

	"github.com/google/uuid"

	"github.com/bidfelt/searchcore/internal/domain"
)

const (
	maxQueryLen      = 200
	maxSelectedIDLen = 100
)

// RecordSelectionInput holds the parameters for recording a user selection.
type RecordSelectionInput struct {
	SearchQuery  string
	TermID       uuid.UUID
	SelectedType domain.SelectedType
	SelectedID   string
}

// Validate checks all fields and collects all errors.
func (i RecordSelectionInput) Validate() error {
	var errs []domain.FieldError

	q := strings.TrimSpace(i.SearchQuery)
	if q == "" {
		errs = append(errs, domain.FieldError{Field: "searchQuery", Message: "required"})
	}
	if len(q) > maxQueryLen {
		errs = append(errs, domain.FieldError{Field: "searchQuery", Message: "max 200 characters"})
	}

	if i.TermID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "termId", Message: "required"})
	}

	if !i.SelectedType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "selectedType", Message: "unknown selected type"})
	}

	id := strings.TrimSpace(i.SelectedID)
	if id == "" {
		errs = append(errs, domain.FieldError{Field: "selectedId", Message: "required"})
	}
	if len(id) > maxSelectedIDLen {
		errs = append(errs, domain.FieldError{Field: "selectedId", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
