package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/procura/billing/internal/billing/clients"
	"github.com/procura/billing/internal/billing/documents"
	"github.com/procura/billing/internal/billing/products"
	"github.com/procura/billing/internal/billing/services"
	"github.com/procura/billing/internal/billing/shared"
	"github.com/procura/billing/internal/dashboard"
	"github.com/procura/billing/internal/observability"
	"github.com/procura/billing/internal/pdf"
	"github.com/procura/billing/internal/platform/idempotency"
	"github.com/procura/billing/internal/view"
)

// Deps are the external collaborators of the HTTP application. Redis may be
// nil, which disables the dashboard cache and idempotency keys.
type Deps struct {
	Config   *Config
	Logger   *slog.Logger
	Redis    *redis.Client
	Renderer pdf.Renderer
	Metrics  *observability.Metrics
}

// NewHandler builds the stores, services and handlers and returns the
// routed application.
func NewHandler(deps Deps) (http.Handler, error) {
	cfg := deps.Config
	logger := deps.Logger

	templates, err := view.NewEngine()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	var idempotencyStore *idempotency.Store
	if deps.Redis != nil {
		idempotencyStore = idempotency.NewStore(deps.Redis, cfg.IdempotencyTTL)
	}

	notifiers := shared.Notifiers{}
	if deps.Metrics != nil {
		notifiers = append(notifiers, deps.Metrics)
	}

	clientService := clients.NewService(clients.NewMemoryRepository(), &notifiers)
	productService := products.NewService(products.NewMemoryRepository(), &notifiers)
	offeringService := services.NewService(services.NewMemoryRepository(), &notifiers)
	quotationService := documents.NewService(documents.KindQuotation, documents.NewMemoryRepository(), &notifiers)
	invoiceService := documents.NewService(documents.KindInvoice, documents.NewMemoryRepository(), &notifiers)

	dashboardCache := dashboard.NewCache(deps.Redis, cfg.DashboardCacheTTL)
	dashboardService := dashboard.NewService(invoiceService, quotationService, clientService, dashboardCache, logger)
	// The dashboard listens to the services it reads from, so it joins the
	// fan-out after they exist.
	notifiers = append(notifiers, dashboardService)

	return NewRouter(RouterParams{
		Logger:           logger,
		Config:           cfg,
		Metrics:          deps.Metrics,
		Idempotency:      idempotencyStore,
		ClientHandler:    clients.NewHandler(logger, clientService),
		ProductHandler:   products.NewHandler(logger, productService),
		ServiceHandler:   services.NewHandler(logger, offeringService),
		QuotationHandler: documents.NewHandler(logger, quotationService),
		InvoiceHandler:   documents.NewHandler(logger, invoiceService),
		Quotations:       quotationService,
		Invoices:         invoiceService,
		PDFHandler:       pdf.NewHandler(logger, deps.Renderer, templates, clientService),
		DashboardHandler: dashboard.NewHandler(logger, dashboardService),
	}), nil
}
