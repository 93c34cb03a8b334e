package products

type CreateProductRequest struct {
	Type         string  `json:"type" validate:"required"`
	OriginalRate float64 `json:"original_rate" validate:"required"`
	HSN          string  `json:"hsn"`
}
