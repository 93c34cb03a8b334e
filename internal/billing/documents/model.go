package documents

import (
	"time"

	"github.com/procura/billing/internal/billing/shared"
)

// Kind distinguishes quotations from invoices. Both share storage, totals
// and lifecycle and differ only in naming and number prefix.
type Kind struct {
	Name   string
	Label  string
	Prefix string
}

var (
	KindQuotation = Kind{Name: "quotation", Label: "Quotation", Prefix: "QT"}
	KindInvoice   = Kind{Name: "invoice", Label: "Invoice", Prefix: "INV"}
)

// Status is an open set; draft and issued are the values the UI uses.
type Status string

const (
	StatusDraft  Status = "draft"
	StatusIssued Status = "issued"
)

const DefaultIssuer = "System"

type Document struct {
	ID              int64             `json:"id"`
	QuotationNumber string            `json:"quotation_number,omitempty"`
	InvoiceNumber   string            `json:"invoice_number,omitempty"`
	ClientID        int64             `json:"client_id"`
	Items           []shared.LineItem `json:"items"`
	Subtotal        float64           `json:"subtotal"`
	TaxAmount       float64           `json:"tax_amount"`
	DiscountAmount  float64           `json:"discount_amount"`
	TotalCost       float64           `json:"total_cost"`
	IssuedBy        string            `json:"issued_by"`
	IssuedTime      time.Time         `json:"issued_time"`
	Status          Status            `json:"status"`
	PDFID           string            `json:"pdf_id"`
	CreatedAt       time.Time         `json:"created_at"`
}

// Number returns the human readable document number.
func (d Document) Number() string {
	if d.InvoiceNumber != "" {
		return d.InvoiceNumber
	}
	return d.QuotationNumber
}

// TaxPercentage recovers the rate that produced TaxAmount. The rate itself is
// not stored, so a zero subtotal yields zero.
func (d Document) TaxPercentage() float64 {
	if d.Subtotal == 0 {
		return 0
	}
	return d.TaxAmount / d.Subtotal * 100
}

func (k Kind) setNumber(d *Document, number string) {
	if k == KindInvoice {
		d.InvoiceNumber = number
		return
	}
	d.QuotationNumber = number
}

func (d *Document) applyTotals(t shared.Totals) {
	d.Subtotal = t.Subtotal
	d.TaxAmount = t.TaxAmount
	d.DiscountAmount = t.DiscountAmount
	d.TotalCost = t.TotalCost
}
