package documents

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/procura/billing/internal/billing/shared"
	"github.com/procura/billing/internal/platform/httpx"
)

type Service struct {
	kind     Kind
	repo     Repository
	numbers  *shared.NumberGenerator
	notifier shared.ChangeNotifier
	messages shared.Messages
	updates  shared.Messages
	now      func() time.Time
}

func NewService(kind Kind, repo Repository, notifier shared.ChangeNotifier) *Service {
	return &Service{
		kind:     kind,
		repo:     repo,
		numbers:  shared.NewNumberGenerator(kind.Prefix),
		notifier: notifier,
		messages: shared.Messages{
			"client_id": "Client ID and items are required",
			"items":     "Client ID and items are required",
			"id":        kind.Label + " ID is required",
		},
		updates: shared.Messages{
			"items": "Items must not be empty",
			"id":    kind.Label + " ID is required",
		},
		now: time.Now,
	}
}

func (s *Service) Kind() Kind {
	return s.kind
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Document, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id int64) (Document, error) {
	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return Document{}, s.mapRepoError(err)
	}
	return doc, nil
}

func (s *Service) Create(ctx context.Context, req CreateDocumentRequest) (Document, error) {
	if err := shared.Validate(req, s.messages); err != nil {
		return Document{}, err
	}
	items, err := shared.NormalizeItems(req.Items)
	if err != nil {
		return Document{}, err
	}

	issuedBy := req.IssuedBy
	if issuedBy == "" {
		issuedBy = DefaultIssuer
	}
	now := s.now().UTC()
	doc := Document{
		ClientID:   req.ClientID,
		Items:      items,
		IssuedBy:   issuedBy,
		IssuedTime: now,
		Status:     StatusDraft,
		CreatedAt:  now,
	}
	doc.applyTotals(shared.CalculateTotals(items, req.TaxPercentage))
	s.kind.setNumber(&doc, s.numbers.Next())

	created, err := s.repo.Create(ctx, doc)
	if err != nil {
		return Document{}, fmt.Errorf("create %s: %w", s.kind.Name, err)
	}
	shared.Notify(ctx, s.notifier, s.kind.Name, shared.OpCreate)
	return created, nil
}

// Update replaces status and/or items. When items are replaced the totals are
// recomputed from scratch with req.TaxPercentage.
func (s *Service) Update(ctx context.Context, req UpdateDocumentRequest) (Document, error) {
	if err := shared.Validate(req, s.updates); err != nil {
		return Document{}, err
	}
	var items []shared.LineItem
	if req.Items != nil {
		normalized, err := shared.NormalizeItems(*req.Items)
		if err != nil {
			return Document{}, err
		}
		items = normalized
	}

	doc, err := s.repo.Update(ctx, req.ID, func(existing Document) (Document, error) {
		if req.Items != nil {
			existing.Items = items
			existing.applyTotals(shared.CalculateTotals(items, req.TaxPercentage))
		}
		if req.Status != nil && *req.Status != "" {
			existing.Status = *req.Status
		}
		return existing, nil
	})
	if err != nil {
		return Document{}, s.mapRepoError(err)
	}
	shared.Notify(ctx, s.notifier, s.kind.Name, shared.OpUpdate)
	return doc, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapRepoError(err)
	}
	shared.Notify(ctx, s.notifier, s.kind.Name, shared.OpDelete)
	return nil
}

func (s *Service) mapRepoError(err error) error {
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%w: %s not found", httpx.ErrNotFound, s.kind.Label)
	}
	return err
}
