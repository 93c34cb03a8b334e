package clients

import "time"

// Client is a billed customer.
type Client struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	GSTIN         string    `json:"gst_in"`
	Address       string    `json:"address"`
	Email         string    `json:"email_id"`
	DiscountValue float64   `json:"discount_value"`
	CreatedAt     time.Time `json:"created_at"`
}

const (
	MinDiscount = 0
	MaxDiscount = 15
)
