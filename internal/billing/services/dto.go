package services

type CreateOfferingRequest struct {
	Type         string  `json:"type" validate:"required"`
	OriginalCost float64 `json:"original_cost" validate:"required"`
	HSN          string  `json:"hsn"`
}
