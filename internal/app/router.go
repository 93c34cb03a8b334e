package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/procura/billing/internal/billing/clients"
	"github.com/procura/billing/internal/billing/documents"
	"github.com/procura/billing/internal/billing/products"
	"github.com/procura/billing/internal/billing/services"
	"github.com/procura/billing/internal/dashboard"
	"github.com/procura/billing/internal/observability"
	"github.com/procura/billing/internal/pdf"
	"github.com/procura/billing/internal/platform/httpx"
	"github.com/procura/billing/internal/platform/idempotency"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger      *slog.Logger
	Config      *Config
	Metrics     *observability.Metrics
	Idempotency *idempotency.Store

	ClientHandler    *clients.Handler
	ProductHandler   *products.Handler
	ServiceHandler   *services.Handler
	QuotationHandler *documents.Handler
	InvoiceHandler   *documents.Handler
	Quotations       pdf.DocumentSource
	Invoices         pdf.DocumentSource
	PDFHandler       *pdf.Handler
	DashboardHandler *dashboard.Handler
}

// NewRouter constructs the chi.Router with Procura defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:      params.Logger,
		Config:      params.Config,
		Metrics:     params.Metrics,
		Idempotency: params.Idempotency,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.Error(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/clients", params.ClientHandler.MountRoutes)
		r.Route("/products", params.ProductHandler.MountRoutes)
		r.Route("/services", params.ServiceHandler.MountRoutes)
		r.Route("/quotations", func(r chi.Router) {
			params.QuotationHandler.MountRoutes(r)
			if params.PDFHandler != nil {
				r.Get("/{id}/pdf", params.PDFHandler.Document(params.Quotations))
			}
		})
		r.Route("/invoices", func(r chi.Router) {
			params.InvoiceHandler.MountRoutes(r)
			if params.PDFHandler != nil {
				r.Get("/{id}/pdf", params.PDFHandler.Document(params.Invoices))
			}
		})
		if params.PDFHandler != nil {
			r.Route("/pdf", params.PDFHandler.MountRoutes)
		}
		if params.DashboardHandler != nil {
			r.Route("/dashboard", params.DashboardHandler.MountRoutes)
		}
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
