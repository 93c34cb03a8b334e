package clients

type CreateClientRequest struct {
	Name          string  `json:"name" validate:"required"`
	GSTIN         string  `json:"gst_in"`
	Address       string  `json:"address"`
	Email         string  `json:"email_id"`
	DiscountValue float64 `json:"discount_value" validate:"gte=0,lte=15"`
}

// UpdateClientRequest is a partial update; nil fields keep their stored value.
type UpdateClientRequest struct {
	ID            int64    `json:"id" validate:"required"`
	Name          *string  `json:"name,omitempty"`
	GSTIN         *string  `json:"gst_in,omitempty"`
	Address       *string  `json:"address,omitempty"`
	Email         *string  `json:"email_id,omitempty"`
	DiscountValue *float64 `json:"discount_value,omitempty"`
}
