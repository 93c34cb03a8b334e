package products

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(logger, NewService(NewMemoryRepository(), nil))
	r := chi.NewRouter()
	r.Route("/api/products", h.MountRoutes)
	return r
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestCreateListDeleteProduct(t *testing.T) {
	h := newTestRouter()

	rr := serve(h, http.MethodPost, "/api/products", `{"type":"Laptop","original_rate":1200.5,"hsn":"8471"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	var p Product
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, "Laptop", p.Type)
	assert.Equal(t, 1200.5, p.OriginalRate)
	assert.False(t, p.CreatedAt.IsZero())

	rr = serve(h, http.MethodPost, "/api/products", `{"type":"Refund","original_rate":-10}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = serve(h, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var list []Product
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Laptop", list[0].Type)

	rr = serve(h, http.MethodDelete, "/api/products?id=1", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	rr = serve(h, http.MethodDelete, "/api/products?id=1", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Product not found"}`, rr.Body.String())
}

func TestCreateProductRequiresTypeAndRate(t *testing.T) {
	h := newTestRouter()
	for _, body := range []string{
		`{"original_rate":10}`,
		`{"type":"Laptop"}`,
		`{"type":"Laptop","original_rate":0}`,
	} {
		rr := serve(h, http.MethodPost, "/api/products", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
		assert.JSONEq(t, `{"error":"Type and original_rate are required"}`, rr.Body.String())
	}
}

func TestProductsHaveNoUpdate(t *testing.T) {
	h := newTestRouter()
	rr := serve(h, http.MethodPut, "/api/products", `{"id":1}`)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
