package documents

import "github.com/procura/billing/internal/billing/shared"

type CreateDocumentRequest struct {
	ClientID      int64                  `json:"client_id" validate:"required"`
	Items         []shared.LineItemInput `json:"items" validate:"required,min=1,dive"`
	IssuedBy      string                 `json:"issued_by"`
	TaxPercentage float64                `json:"tax_percentage"`
}

// UpdateDocumentRequest replaces the status and/or the item list. Totals are
// recomputed from Items and TaxPercentage whenever Items is present; an
// omitted TaxPercentage means 0%.
type UpdateDocumentRequest struct {
	ID            int64                   `json:"id" validate:"required"`
	Status        *Status                 `json:"status,omitempty"`
	Items         *[]shared.LineItemInput `json:"items,omitempty" validate:"omitempty,min=1,dive"`
	TaxPercentage float64                 `json:"tax_percentage"`
}

// ListFilter holds the optional equality filters of the list endpoint.
type ListFilter struct {
	ClientID *int64
	Status   *Status
}

func (f ListFilter) match(d Document) bool {
	if f.ClientID != nil && d.ClientID != *f.ClientID {
		return false
	}
	if f.Status != nil && d.Status != *f.Status {
		return false
	}
	return true
}
