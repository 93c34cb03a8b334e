package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotals(t *testing.T) {
	tests := []struct {
		name    string
		amounts []float64
		tax     float64
		want    Totals
	}{
		{
			name: "empty",
			tax:  18,
			want: Totals{},
		},
		{
			name:    "single line with tax",
			amounts: []float64{100},
			tax:     18,
			want:    Totals{Subtotal: 100, TaxAmount: 18, TotalCost: 118},
		},
		{
			name:    "several lines no tax",
			amounts: []float64{10, 20.5, 4.5},
			want:    Totals{Subtotal: 35, TotalCost: 35},
		},
		{
			name:    "negative amounts pass through",
			amounts: []float64{100, -150},
			tax:     10,
			want:    Totals{Subtotal: -50, TaxAmount: -5, TotalCost: -55},
		},
		{
			name:    "tax above one hundred percent is not clamped",
			amounts: []float64{40},
			tax:     150,
			want:    Totals{Subtotal: 40, TaxAmount: 60, TotalCost: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]LineItem, 0, len(tt.amounts))
			for _, a := range tt.amounts {
				items = append(items, LineItem{Amount: a})
			}
			got := CalculateTotals(items, tt.tax)
			assert.InDelta(t, tt.want.Subtotal, got.Subtotal, 1e-9)
			assert.InDelta(t, tt.want.TaxAmount, got.TaxAmount, 1e-9)
			assert.InDelta(t, tt.want.TotalCost, got.TotalCost, 1e-9)
			assert.Zero(t, got.DiscountAmount)
			assert.InDelta(t, got.Subtotal+got.TaxAmount-got.DiscountAmount, got.TotalCost, 1e-9)
		})
	}
}

func TestLineAmount(t *testing.T) {
	assert.Equal(t, 100.0, LineAmount(2, 50))
	assert.Equal(t, -30.0, LineAmount(-3, 10))
}
