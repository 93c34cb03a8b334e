package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeederPostsEveryResource(t *testing.T) {
	var (
		mu     sync.Mutex
		counts = map[string]int{}
		nextID = map[string]int64{}
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		counts[r.Method+" "+r.URL.Path]++
		if r.Method == http.MethodPost {
			assert.NotEmpty(t, r.Header.Get("Idempotency-Key"))
		}
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		nextID[r.URL.Path]++
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"id": nextID[r.URL.Path]})
	}))
	defer srv.Close()

	s := &seeder{baseURL: srv.URL, client: srv.Client(), out: io.Discard}
	require.NoError(t, s.run(context.Background()))

	assert.Equal(t, 3, counts["POST /api/clients"])
	assert.Equal(t, 2, counts["POST /api/products"])
	assert.Equal(t, 2, counts["POST /api/services"])
	assert.Equal(t, 3, counts["POST /api/quotations"])
	assert.Equal(t, 3, counts["POST /api/invoices"])
	assert.Equal(t, 1, counts["PUT /api/invoices"])
}

func TestSeederReportsAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Client name is required"}`))
	}))
	defer srv.Close()

	s := &seeder{baseURL: srv.URL, client: srv.Client(), out: io.Discard}
	err := s.run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Client name is required")
}
