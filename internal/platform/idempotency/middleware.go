package idempotency

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/procura/billing/internal/platform/httpx"
)

// HeaderKey is the request header clients set to make a POST retry safe.
const HeaderKey = "Idempotency-Key"

// Middleware rejects a POST whose Idempotency-Key was already used on the
// same path with 409. Keys of requests answered with a status >= 400 are
// released so the client may retry. A nil store disables the check.
func Middleware(store *Store, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(HeaderKey)
			if store == nil || store.client == nil || r.Method != http.MethodPost || key == "" {
				next.ServeHTTP(w, r)
				return
			}

			module := r.URL.Path
			if err := store.CheckAndInsert(r.Context(), key, module); err != nil {
				if errors.Is(err, ErrIdempotencyConflict) {
					httpx.Error(w, http.StatusConflict, "Request already processed")
					return
				}
				logger.Warn("idempotency check failed", slog.Any("error", err), slog.String("path", module))
				next.ServeHTTP(w, r)
				return
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			if ww.Status() >= http.StatusBadRequest {
				if err := store.Delete(context.WithoutCancel(r.Context()), key, module); err != nil {
					logger.Warn("release idempotency key", slog.Any("error", err), slog.String("path", module))
				}
			}
		})
	}
}
