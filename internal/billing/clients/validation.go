package clients

import (
	"fmt"

	"github.com/procura/billing/internal/billing/shared"
	"github.com/procura/billing/internal/platform/httpx"
)

const (
	msgNameRequired  = "Client name is required"
	msgDiscountRange = "Discount must be between 0 and 15%"
	msgIDRequired    = "Client ID is required"
	msgNotFound      = "Client not found"
)

var messages = shared.Messages{
	"name":           msgNameRequired,
	"discount_value": msgDiscountRange,
	"id":             msgIDRequired,
}

func (s *Service) validate(c Client) error {
	if c.Name == "" {
		return fmt.Errorf("%w: %s", httpx.ErrValidation, msgNameRequired)
	}
	if c.DiscountValue < MinDiscount || c.DiscountValue > MaxDiscount {
		return fmt.Errorf("%w: %s", httpx.ErrValidation, msgDiscountRange)
	}
	return nil
}
