package services

import "time"

// Offering is a billable service in the catalogue, priced by cost.
type Offering struct {
	ID           int64     `json:"id"`
	Type         string    `json:"type"`
	OriginalCost float64   `json:"original_cost"`
	HSN          string    `json:"hsn"`
	CreatedAt    time.Time `json:"created_at"`
}
