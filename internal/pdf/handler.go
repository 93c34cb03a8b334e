package pdf

import (
	"context"
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/procura/billing/internal/billing/clients"
	"github.com/procura/billing/internal/billing/documents"
	"github.com/procura/billing/internal/billing/shared"
	"github.com/procura/billing/internal/platform/httpx"
	"github.com/procura/billing/internal/view"
)

const documentTemplate = "pdf/document.html"

// DocumentSource is the read side of a quotation or invoice service.
type DocumentSource interface {
	Kind() documents.Kind
	Get(ctx context.Context, id int64) (documents.Document, error)
}

// ClientDirectory resolves the "Bill To" name of a document.
type ClientDirectory interface {
	Get(ctx context.Context, id int64) (clients.Client, error)
}

// GenerateResponse acknowledges a validated parameter set.
type GenerateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    Params `json:"data"`
}

// Handler manages PDF endpoints.
type Handler struct {
	logger   *slog.Logger
	renderer Renderer
	engine   *view.Engine
	clients  ClientDirectory
}

// NewHandler creates a PDF handler.
func NewHandler(logger *slog.Logger, renderer Renderer, engine *view.Engine, clients ClientDirectory) *Handler {
	return &Handler{logger: logger, renderer: renderer, engine: engine, clients: clients}
}

// Generate validates print parameters and echoes them back for client side
// rendering.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var params Params
	if err := httpx.DecodeJSON(r, &params); err != nil {
		h.logger.Warn("decode pdf params", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}
	if err := params.Validate(); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, GenerateResponse{
		Success: true,
		Message: "PDF generation parameters validated",
		Data:    params,
	})
}

// Render produces the PDF for an arbitrary parameter set.
func (h *Handler) Render(w http.ResponseWriter, r *http.Request) {
	var params Params
	if err := httpx.DecodeJSON(r, &params); err != nil {
		httpx.BadBody(w)
		return
	}
	if err := params.Validate(); err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.write(w, r, params)
}

// Document returns a handler printing the stored document named by the {id}
// path parameter.
func (h *Handler) Document(source DocumentSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := shared.PathID(r)
		if err != nil {
			httpx.RespondError(w, err)
			return
		}
		doc, err := source.Get(r.Context(), id)
		if err != nil {
			httpx.Fail(w, h.logger, "load document for pdf", err)
			return
		}
		name, err := h.clientName(r.Context(), doc.ClientID)
		if err != nil {
			httpx.Fail(w, h.logger, "load client for pdf", err)
			return
		}
		h.write(w, r, ParamsFromDocument(source.Kind(), doc, name))
	}
}

func (h *Handler) clientName(ctx context.Context, id int64) (string, error) {
	if h.clients == nil {
		return "", nil
	}
	client, err := h.clients.Get(ctx, id)
	if errors.Is(err, httpx.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return client.Name, nil
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, params Params) {
	html, err := h.engine.RenderString(documentTemplate, params)
	if err != nil {
		h.logger.Error("render pdf template", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}
	pdf, err := h.renderer.RenderHTML(r.Context(), html)
	if err != nil {
		h.logger.Error("render pdf", slog.Any("error", err), slog.String("number", params.Number))
		httpx.Error(w, http.StatusBadGateway, "Failed to render PDF")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": params.Number + ".pdf"}))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
