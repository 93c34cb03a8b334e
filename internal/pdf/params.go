package pdf

import (
	"fmt"

	"github.com/procura/billing/internal/billing/documents"
	"github.com/procura/billing/internal/billing/shared"
)

const msgMissingFields = "Missing required fields"

// Item is one printed row.
type Item struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// Params is everything the printed layout shows. Totals are printed as given
// and never recomputed here.
type Params struct {
	Title         string  `json:"title" validate:"required"`
	Number        string  `json:"number" validate:"required"`
	ClientName    string  `json:"clientName" validate:"required"`
	Date          string  `json:"date"`
	Items         []Item  `json:"items" validate:"required,min=1"`
	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"tax"`
	TaxPercentage float64 `json:"taxPercentage"`
	Total         float64 `json:"total"`
	IssuedBy      string  `json:"issuedBy,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}

var paramMessages = shared.Messages{
	"title":      msgMissingFields,
	"number":     msgMissingFields,
	"clientName": msgMissingFields,
	"items":      msgMissingFields,
}

// Validate reports a missing title, number, client name or empty item list.
func (p Params) Validate() error {
	return shared.Validate(p, paramMessages)
}

// ParamsFromDocument builds print parameters for a stored document. The tax
// rate is not stored, so it is derived from the amounts.
func ParamsFromDocument(kind documents.Kind, doc documents.Document, clientName string) Params {
	if clientName == "" {
		clientName = fmt.Sprintf("Client #%d", doc.ClientID)
	}
	items := make([]Item, 0, len(doc.Items))
	for _, it := range doc.Items {
		items = append(items, Item{
			Description: it.Description,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Amount:      it.Amount,
		})
	}
	return Params{
		Title:         kind.Label,
		Number:        doc.Number(),
		ClientName:    clientName,
		Date:          doc.IssuedTime.Format("2006-01-02"),
		Items:         items,
		Subtotal:      doc.Subtotal,
		Tax:           doc.TaxAmount,
		TaxPercentage: doc.TaxPercentage(),
		Total:         doc.TotalCost,
		IssuedBy:      doc.IssuedBy,
	}
}
