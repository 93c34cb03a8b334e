package shared

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/procura/billing/internal/platform/httpx"
)

// ItemType tells whether a line bills a product or a service.
type ItemType string

const (
	ItemTypeProduct ItemType = "product"
	ItemTypeService ItemType = "service"
)

// LineItem is one billable row embedded in a quotation or invoice.
type LineItem struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Quantity    float64  `json:"quantity"`
	Rate        float64  `json:"rate"`
	Amount      float64  `json:"amount"`
	Type        ItemType `json:"type,omitempty"`
}

// LineItemInput is the request shape of a line. Amount is optional; when
// absent it is derived from quantity and rate.
type LineItemInput struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Quantity    float64  `json:"quantity"`
	Rate        float64  `json:"rate"`
	Amount      *float64 `json:"amount,omitempty"`
	Type        ItemType `json:"type,omitempty" validate:"omitempty,oneof=product service"`
}

// NormalizeItems turns request lines into stored lines. Lines without an id
// get a random one; ids must be unique within the document.
func NormalizeItems(inputs []LineItemInput) ([]LineItem, error) {
	items := make([]LineItem, 0, len(inputs))
	seen := make(map[string]struct{}, len(inputs))
	for _, in := range inputs {
		id := in.ID
		if id == "" {
			id = uuid.NewString()
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: duplicate line item id %q", httpx.ErrValidation, id)
		}
		seen[id] = struct{}{}

		amount := LineAmount(in.Quantity, in.Rate)
		if in.Amount != nil {
			amount = *in.Amount
		}
		items = append(items, LineItem{
			ID:          id,
			Description: in.Description,
			Quantity:    in.Quantity,
			Rate:        in.Rate,
			Amount:      amount,
			Type:        in.Type,
		})
	}
	return items, nil
}

// CloneItems copies a line slice so stored documents never share backing
// arrays with callers.
func CloneItems(items []LineItem) []LineItem {
	if items == nil {
		return []LineItem{}
	}
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
