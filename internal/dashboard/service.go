// Package dashboard serves the billing overview shown on the landing page.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/procura/billing/internal/billing/clients"
	"github.com/procura/billing/internal/billing/documents"
	"github.com/procura/billing/internal/billing/shared"
)

// Summary aggregates invoice amounts and resource counts.
type Summary struct {
	TotalInvoices   int     `json:"total_invoices"`
	TotalRevenue    float64 `json:"total_revenue"`
	PendingAmount   float64 `json:"pending_amount"`
	TotalQuotations int     `json:"total_quotations"`
	TotalClients    int     `json:"total_clients"`
}

type DocumentLister interface {
	List(ctx context.Context, filter documents.ListFilter) ([]documents.Document, error)
}

type ClientLister interface {
	List(ctx context.Context) ([]clients.Client, error)
}

// Service computes the Summary, caching it until a tracked resource changes.
type Service struct {
	invoices   DocumentLister
	quotations DocumentLister
	clients    ClientLister
	cache      *Cache
	logger     *slog.Logger
	group      singleflight.Group
}

func NewService(invoices, quotations DocumentLister, clients ClientLister, cache *Cache, logger *slog.Logger) *Service {
	return &Service{
		invoices:   invoices,
		quotations: quotations,
		clients:    clients,
		cache:      cache,
		logger:     logger,
	}
}

// Summary returns the cached overview, computing it at most once per
// cache version across concurrent callers.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	key, err := s.cache.BuildKey(ctx, "procura", "dashboard", "summary")
	if err != nil {
		s.logger.Warn("dashboard cache unavailable", slog.Any("error", err))
		return s.compute(ctx)
	}

	// The flight is shared, so it must outlive the caller that started it.
	flightCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key, func() (any, error) {
		var summary Summary
		err := s.cache.FetchJSON(flightCtx, key, &summary, func(ctx context.Context) (any, error) {
			return s.compute(ctx)
		})
		return summary, err
	})
	select {
	case <-ctx.Done():
		return Summary{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Summary{}, res.Err
		}
		return res.Val.(Summary), nil
	}
}

func (s *Service) compute(ctx context.Context) (Summary, error) {
	invoices, err := s.invoices.List(ctx, documents.ListFilter{})
	if err != nil {
		return Summary{}, fmt.Errorf("list invoices: %w", err)
	}
	quotations, err := s.quotations.List(ctx, documents.ListFilter{})
	if err != nil {
		return Summary{}, fmt.Errorf("list quotations: %w", err)
	}
	clientList, err := s.clients.List(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("list clients: %w", err)
	}

	summary := Summary{
		TotalInvoices:   len(invoices),
		TotalQuotations: len(quotations),
		TotalClients:    len(clientList),
	}
	for _, inv := range invoices {
		summary.TotalRevenue += inv.TotalCost
		if inv.Status == documents.StatusDraft {
			summary.PendingAmount += inv.TotalCost
		}
	}
	return summary, nil
}

// Changed implements shared.ChangeNotifier. Products and services do not
// feed the summary and are ignored.
func (s *Service) Changed(ctx context.Context, resource string, op shared.Operation) {
	switch resource {
	case documents.KindInvoice.Name, documents.KindQuotation.Name, clients.ResourceName:
	default:
		return
	}
	if err := s.cache.Bump(ctx); err != nil {
		s.logger.Warn("bump dashboard cache", slog.Any("error", err), slog.String("resource", resource))
	}
}
