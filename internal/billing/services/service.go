package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/procura/billing/internal/billing/shared"
	"github.com/procura/billing/internal/platform/httpx"
)

const (
	resourceName     = "service"
	msgFieldsMissing = "Type and original_cost are required"
	msgNotFound      = "Service not found"
)

var messages = shared.Messages{
	"type":          msgFieldsMissing,
	"original_cost": msgFieldsMissing,
}

type Service struct {
	repo     Repository
	notifier shared.ChangeNotifier
	now      func() time.Time
}

func NewService(repo Repository, notifier shared.ChangeNotifier) *Service {
	return &Service{repo: repo, notifier: notifier, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Offering, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, req CreateOfferingRequest) (Offering, error) {
	if err := shared.Validate(req, messages); err != nil {
		return Offering{}, err
	}
	offering, err := s.repo.Create(ctx, Offering{
		Type:         req.Type,
		OriginalCost: req.OriginalCost,
		HSN:          req.HSN,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return Offering{}, fmt.Errorf("create service: %w", err)
	}
	shared.Notify(ctx, s.notifier, resourceName, shared.OpCreate)
	return offering, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: %s", httpx.ErrNotFound, msgNotFound)
		}
		return err
	}
	shared.Notify(ctx, s.notifier, resourceName, shared.OpDelete)
	return nil
}
