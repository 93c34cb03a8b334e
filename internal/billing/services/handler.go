package services

import (
	"log/slog"
	"net/http"

	"github.com/procura/billing/internal/billing/shared"
	"github.com/procura/billing/internal/platform/httpx"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	offerings, err := h.service.List(r.Context())
	if err != nil {
		httpx.Fail(w, h.logger, "list services", err)
		return
	}
	httpx.JSON(w, http.StatusOK, offerings)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOfferingRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadBody(w)
		return
	}
	offering, err := h.service.Create(r.Context(), req)
	if err != nil {
		httpx.Fail(w, h.logger, "create service", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, offering)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.QueryID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		httpx.Fail(w, h.logger, "delete service", err)
		return
	}
	httpx.OK(w)
}
