package shared

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/procura/billing/internal/platform/httpx"
)

// QueryID reads the mandatory ?id= parameter used by delete endpoints.
func QueryID(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		return 0, fmt.Errorf("%w: ID is required", httpx.ErrValidation)
	}
	return parseID(raw)
}

// PathID reads the {id} route parameter.
func PathID(r *http.Request) (int64, error) {
	return parseID(chi.URLParam(r, "id"))
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: ID must be an integer", httpx.ErrValidation)
	}
	return id, nil
}
