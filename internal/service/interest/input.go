package interest

import (
	"strings"

	"github.com/google/uuid"

	"github.com/bidfelt/searchcore/internal/domain"
)

const (
	maxQueryLen = 200
	maxTitleLen = 500
	maxDescLen  = 5000
)

// RegisterInput holds the parameters for registering an interest request.
type RegisterInput struct {
	SearchQuery string
	UserID      *uuid.UUID
	Email       *string
	Phone       *string
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	q := strings.TrimSpace(i.SearchQuery)
	if q == "" {
		errs = append(errs, domain.FieldError{Field: "searchQuery", Message: "required"})
	}
	if len(q) > maxQueryLen {
		errs = append(errs, domain.FieldError{Field: "searchQuery", Message: "max 200 characters"})
	}

	email := ""
	if i.Email != nil {
		email = strings.TrimSpace(*i.Email)
	}
	phone := ""
	if i.Phone != nil {
		phone = strings.TrimSpace(*i.Phone)
	}

	if email == "" && phone == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "email or phone required"})
	}
	if email != "" && !strings.Contains(email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// NewItemInput holds the payload of an item-created event.
type NewItemInput struct {
	Title       string
	Description string
	ItemType    domain.SelectedType
	ItemID      string
}

// Validate checks all fields and collects all errors.
func (i NewItemInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 500 characters"})
	}
	if len(i.Description) > maxDescLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}
	if !i.ItemType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "itemType", Message: "unknown item type"})
	}
	if strings.TrimSpace(i.ItemID) == "" {
		errs = append(errs, domain.FieldError{Field: "itemId", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListPendingInput holds the parameters for listing pending requests.
type ListPendingInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListPendingInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > 200 {
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
