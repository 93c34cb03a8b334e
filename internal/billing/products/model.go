package products

import "time"

// Product is a catalogue entry billed at a unit rate.
type Product struct {
	ID           int64     `json:"id"`
	Type         string    `json:"type"`
	OriginalRate float64   `json:"original_rate"`
	HSN          string    `json:"hsn"`
	CreatedAt    time.Time `json:"created_at"`
}
