package products

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/procura/billing/internal/billing/shared"
	"github.com/procura/billing/internal/platform/httpx"
)

const (
	resourceName     = "product"
	msgFieldsMissing = "Type and original_rate are required"
	msgNotFound      = "Product not found"
)

var messages = shared.Messages{
	"type":          msgFieldsMissing,
	"original_rate": msgFieldsMissing,
}

type Service struct {
	repo     Repository
	notifier shared.ChangeNotifier
	now      func() time.Time
}

func NewService(repo Repository, notifier shared.ChangeNotifier) *Service {
	return &Service{repo: repo, notifier: notifier, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, req CreateProductRequest) (Product, error) {
	if err := shared.Validate(req, messages); err != nil {
		return Product{}, err
	}
	product, err := s.repo.Create(ctx, Product{
		Type:         req.Type,
		OriginalRate: req.OriginalRate,
		HSN:          req.HSN,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return Product{}, fmt.Errorf("create product: %w", err)
	}
	shared.Notify(ctx, s.notifier, resourceName, shared.OpCreate)
	return product, nil
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
