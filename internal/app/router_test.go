package app

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procura/billing/internal/observability"
)

type fakeRenderer struct{}

func (fakeRenderer) RenderHTML(ctx context.Context, html string) ([]byte, error) {
	return []byte("%PDF-1.7"), nil
}

func testConfig() *Config {
	return &Config{
		AppEnv:             "test",
		AppRequestTimeout:  5 * time.Second,
		LogFormat:          "json",
		DashboardCacheTTL:  time.Minute,
		IdempotencyTTL:     time.Hour,
		RateLimitPerMinute: 1000,
	}
}

func newTestApp(t *testing.T, withRedis bool) http.Handler {
	t.Helper()
	deps := Deps{
		Config:   testConfig(),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Renderer: fakeRenderer{},
		Metrics:  observability.NewMetrics(),
	}
	if withRedis {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })
		deps.Redis = client
	}
	h, err := NewHandler(deps)
	require.NoError(t, err)
	return h
}

func send(t *testing.T, h http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestHealthzAndSecurityHeaders(t *testing.T) {
	h := newTestApp(t, false)

	rr := send(t, h, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
}

func TestBillingFlowAcrossResources(t *testing.T) {
	h := newTestApp(t, true)

	rr := send(t, h, http.MethodPost, "/api/clients", `{"name":"Acme","discount_value":10}`, nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = send(t, h, http.MethodPost, "/api/products", `{"type":"Widget","original_rate":50}`, nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = send(t, h, http.MethodPost, "/api/services", `{"type":"Install","original_cost":80}`, nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = send(t, h, http.MethodGet, "/api/dashboard", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"total_invoices":0,"total_revenue":0,"pending_amount":0,"total_quotations":0,"total_clients":1}`, rr.Body.String())

	rr = send(t, h, http.MethodPost, "/api/invoices",
		`{"client_id":1,"tax_percentage":18,"items":[{"id":"w","description":"Widget","quantity":2,"rate":50,"type":"product"}]}`, nil)
	require.Equal(t, http.StatusCreated, rr.Code)
	var invoice struct {
		InvoiceNumber string  `json:"invoice_number"`
		TotalCost     float64 `json:"total_cost"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &invoice))
	assert.InDelta(t, 118, invoice.TotalCost, 1e-9)
	assert.True(t, strings.HasPrefix(invoice.InvoiceNumber, "INV-"))

	rr = send(t, h, http.MethodPost, "/api/quotations",
		`{"client_id":1,"items":[{"description":"Install","quantity":1,"rate":80,"type":"service"}]}`, nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = send(t, h, http.MethodGet, "/api/dashboard", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"total_invoices":1,"total_revenue":118,"pending_amount":118,"total_quotations":1,"total_clients":1}`, rr.Body.String())

	rr = send(t, h, http.MethodPut, "/api/invoices", `{"id":1,"status":"issued"}`, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = send(t, h, http.MethodGet, "/api/dashboard", "", nil)
	assert.JSONEq(t, `{"total_invoices":1,"total_revenue":118,"pending_amount":0,"total_quotations":1,"total_clients":1}`, rr.Body.String())

	rr = send(t, h, http.MethodGet, "/api/invoices/1/pdf", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))

	rr = send(t, h, http.MethodGet, "/api/quotations/1/pdf", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = send(t, h, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `procura_documents_changed_total{kind="invoice",op="create"} 1`)
	assert.Contains(t, rr.Body.String(), `procura_documents_changed_total{kind="invoice",op="update"} 1`)
}

func TestIdempotentCreate(t *testing.T) {
	h := newTestApp(t, true)
	headers := map[string]string{"Idempotency-Key": "create-acme"}

	rr := send(t, h, http.MethodPost, "/api/clients", `{"name":"Acme"}`, headers)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = send(t, h, http.MethodPost, "/api/clients", `{"name":"Acme"}`, headers)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = send(t, h, http.MethodGet, "/api/clients", "", nil)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestUnknownRoutesAnswerJSON(t *testing.T) {
	h := newTestApp(t, false)

	rr := send(t, h, http.MethodGet, "/api/unknown", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rr.Body.String())

	rr = send(t, h, http.MethodPut, "/api/products", `{}`, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
