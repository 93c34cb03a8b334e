package idempotency

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client, time.Hour), mr
}

func TestCheckAndInsert(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CheckAndInsert(ctx, "k1", "/api/invoices"))
	assert.ErrorIs(t, store.CheckAndInsert(ctx, "k1", "/api/invoices"), ErrIdempotencyConflict)
	assert.NoError(t, store.CheckAndInsert(ctx, "k1", "/api/quotations"))

	require.NoError(t, store.Delete(ctx, "k1", "/api/invoices"))
	assert.NoError(t, store.CheckAndInsert(ctx, "k1", "/api/invoices"))

	mr.FastForward(2 * time.Hour)
	assert.NoError(t, store.CheckAndInsert(ctx, "k1", "/api/quotations"))

	assert.Error(t, store.CheckAndInsert(ctx, "", "/api/invoices"))
	assert.Error(t, store.CheckAndInsert(ctx, "k2", ""))
	assert.Error(t, (*Store)(nil).CheckAndInsert(ctx, "k", "m"))
}

func TestMiddleware(t *testing.T) {
	store, _ := newTestStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	status := http.StatusCreated
	calls := 0
	h := Middleware(store, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(status)
	}))

	send := func(method, key string) int {
		req := httptest.NewRequest(method, "/api/invoices", nil)
		if key != "" {
			req.Header.Set(HeaderKey, key)
		}
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusCreated, send(http.MethodPost, "abc"))
	assert.Equal(t, http.StatusConflict, send(http.MethodPost, "abc"))
	assert.Equal(t, 1, calls)

	assert.Equal(t, http.StatusCreated, send(http.MethodPost, ""))
	assert.Equal(t, http.StatusCreated, send(http.MethodPost, ""))
	assert.Equal(t, http.StatusCreated, send(http.MethodPut, "abc"))
	assert.Equal(t, 4, calls)

	status = http.StatusBadRequest
	assert.Equal(t, http.StatusBadRequest, send(http.MethodPost, "failing"))
	status = http.StatusCreated
	assert.Equal(t, http.StatusCreated, send(http.MethodPost, "failing"))
}

func TestMiddlewareWithoutStore(t *testing.T) {
	h := Middleware(nil, slog.Default())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/invoices", nil)
		req.Header.Set(HeaderKey, "same")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Code)
	}
}
