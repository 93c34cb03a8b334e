package documents

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/procura/billing/internal/billing/shared"
	"github.com/procura/billing/internal/platform/httpx"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger.With(slog.String("kind", service.Kind().Name)), service: service}
}

// List supports ?clientId= and ?status= equality filters. A clientId that is
// not an integer matches nothing.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var filter ListFilter
	if raw := r.URL.Query().Get("clientId"); raw != "" {
		clientID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			httpx.JSON(w, http.StatusOK, []Document{})
			return
		}
		filter.ClientID = &clientID
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := Status(raw)
		filter.Status = &status
	}

	docs, err := h.service.List(r.Context(), filter)
	if err != nil {
		httpx.Fail(w, h.logger, "list documents", err)
		return
	}
	httpx.JSON(w, http.StatusOK, docs)
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	doc, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.Fail(w, h.logger, "get document", err)
		return
	}
	httpx.JSON(w, http.StatusOK, doc)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateDocumentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadBody(w)
		return
	}
	doc, err := h.service.Create(r.Context(), req)
	if err != nil {
		httpx.Fail(w, h.logger, "create document", err)
		return
	}
	h.logger.Info("document created", slog.Int64("id", doc.ID), slog.String("number", doc.Number()))
	httpx.JSON(w, http.StatusCreated, doc)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateDocumentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadBody(w)
		return
	}
	doc, err := h.service.Update(r.Context(), req)
	if err != nil {
		httpx.Fail(w, h.logger, "update document", err)
		return
	}
	httpx.JSON(w, http.StatusOK, doc)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.QueryID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		httpx.Fail(w, h.logger, "delete document", err)
		return
	}
	httpx.OK(w)
}
