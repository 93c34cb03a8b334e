package clients

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/procura/billing/internal/billing/shared"
	"github.com/procura/billing/internal/platform/httpx"
)

// ResourceName identifies clients in change notifications.
const ResourceName = "client"

type Service struct {
	repo     Repository
	notifier shared.ChangeNotifier
	now      func() time.Time
}

func NewService(repo Repository, notifier shared.ChangeNotifier) *Service {
	return &Service{repo: repo, notifier: notifier, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Client, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Client, error) {
	client, err := s.repo.Get(ctx, id)
	if err != nil {
		return Client{}, mapRepoError(err)
	}
	return client, nil
}

func (s *Service) Create(ctx context.Context, req CreateClientRequest) (Client, error) {
	if err := shared.Validate(req, messages); err != nil {
		return Client{}, err
	}
	client, err := s.repo.Create(ctx, Client{
		Name:          req.Name,
		GSTIN:         req.GSTIN,
		Address:       req.Address,
		Email:         req.Email,
		DiscountValue: req.DiscountValue,
		CreatedAt:     s.now().UTC(),
	})
	if err != nil {
		return Client{}, fmt.Errorf("create client: %w", err)
	}
	shared.Notify(ctx, s.notifier, ResourceName, shared.OpCreate)
	return client, nil
}

// Update merges the supplied fields over the stored client. An empty name
// keeps the stored name. The merged record is validated before it replaces
// the stored one.
func (s *Service) Update(ctx context.Context, req UpdateClientRequest) (Client, error) {
	if err := shared.Validate(req, messages); err != nil {
		return Client{}, err
	}
	client, err := s.repo.Update(ctx, req.ID, func(existing Client) (Client, error) {
		if req.Name != nil && *req.Name != "" {
			existing.Name = *req.Name
		}
		if req.GSTIN != nil {
			existing.GSTIN = *req.GSTIN
		}
		if req.Address != nil {
			existing.Address = *req.Address
		}
		if req.Email != nil {
			existing.Email = *req.Email
		}
		if req.DiscountValue != nil {
			existing.DiscountValue = *req.DiscountValue
		}
		if err := s.validate(existing); err != nil {
			return Client{}, err
		}
		return existing, nil
	})
	if err != nil {
		return Client{}, mapRepoError(err)
	}
	shared.Notify(ctx, s.notifier, ResourceName, shared.OpUpdate)
	return client, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoError(err)
	}
	shared.Notify(ctx, s.notifier, ResourceName, shared.OpDelete)
	return nil
}

func mapRepoError(err error) error {
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%w: %s", httpx.ErrNotFound, msgNotFound)
	}
	return err
}
