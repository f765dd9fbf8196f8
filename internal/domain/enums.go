package domain

// TermType classifies a catalog term.
type TermType string

const (
	TermTypeProduct  TermType = "product"
	TermTypeCategory TermType = "category"
	TermTypeService  TermType = "service"
	TermTypeBrand    TermType = "brand"
)

func (t TermType) String() string { return string(t) }

func (t TermType) IsValid() bool {
	switch t {
	case TermTypeProduct, TermTypeCategory, TermTypeService, TermTypeBrand:
		return true
	}
	return false
}

// SelectedType is the kind of destination a user navigated to after picking a
// suggestion. It may differ from the chosen term's own TermType: a "product"
// term can lead to an auction listing.
type SelectedType string

const (
	SelectedTypeCategory   SelectedType = "category"
	SelectedTypeAuction    SelectedType = "auction"
	SelectedTypeTender     SelectedType = "tender"
	SelectedTypeDirectSale SelectedType = "directSale"
)

func (t SelectedType) String() string { return string(t) }

func (t SelectedType) IsValid() bool {
	switch t {
	case SelectedTypeCategory, SelectedTypeAuction, SelectedTypeTender, SelectedTypeDirectSale:
		return true
	}
	return false
}

// InterestStatus is the lifecycle state of an interest request.
// pending is the only non-terminal state.
type InterestStatus string

const (
	InterestStatusPending  InterestStatus = "pending"
	InterestStatusNotified InterestStatus = "notified"
	InterestStatusExpired  InterestStatus = "expired"
)

func (s InterestStatus) String() string { return string(s) }

func (s InterestStatus) IsValid() bool {
	switch s {
	case InterestStatusPending, InterestStatusNotified, InterestStatusExpired:
		return true
	}
	return false
}
