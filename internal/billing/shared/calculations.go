package shared

// Totals is the computed money summary of a quotation or invoice.
type Totals struct {
	Subtotal       float64
	TaxAmount      float64
	DiscountAmount float64
	TotalCost      float64
}

// LineAmount is the derived amount of a single line.
func LineAmount(quantity, rate float64) float64 {
	return quantity * rate
}

// CalculateTotals sums item amounts and applies a flat tax percentage.
// Discount is carried on documents but never applied, so DiscountAmount is
// always zero.
func CalculateTotals(items []LineItem, taxPercentage float64) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Amount
	}
	taxAmount := subtotal * taxPercentage / 100
	return Totals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		TotalCost: subtotal + taxAmount,
	}
}
