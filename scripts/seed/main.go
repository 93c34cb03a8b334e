// Command seed fills a running Procura instance with demo data through the
// public API.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

type seeder struct {
	baseURL string
	client  *http.Client
	out     io.Writer
}

func main() {
	s := &seeder{
		baseURL: strings.TrimRight(getenv("PROCURA_URL", "http://localhost:8080"), "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
		out:     os.Stdout,
	}
	if err := s.run(context.Background()); err != nil {
		log.Fatalf("seed: %v", err)
	}
	fmt.Fprintln(s.out, "✓ Seed complete at", time.Now().Format(time.RFC3339))
}

func (s *seeder) run(ctx context.Context) error {
	fmt.Fprintln(s.out, "→ Seeding clients...")
	clientIDs, err := s.seedClients(ctx)
	if err != nil {
		return fmt.Errorf("seed clients: %w", err)
	}

	fmt.Fprintln(s.out, "→ Seeding catalogue...")
	if err := s.seedCatalogue(ctx); err != nil {
		return fmt.Errorf("seed catalogue: %w", err)
	}

	fmt.Fprintln(s.out, "→ Seeding quotations and invoices...")
	if err := s.seedDocuments(ctx, clientIDs); err != nil {
		return fmt.Errorf("seed documents: %w", err)
	}
	return nil
}

func (s *seeder) seedClients(ctx context.Context) ([]int64, error) {
	clients := []map[string]any{
		{"name": "Acme Industries", "gst_in": "29ABCDE1234F1Z5", "address": "12 Market Road, Bengaluru", "email_id": "billing@acme.test", "discount_value": 5},
		{"name": "Globex Traders", "gst_in": "27PQRSX6789K1Z2", "address": "4 Harbour Lane, Mumbai", "email_id": "accounts@globex.test"},
		{"name": "Initech Services", "address": "88 Ring Road, Delhi", "discount_value": 15},
	}
	ids := make([]int64, 0, len(clients))
	for _, c := range clients {
		var created struct {
			ID int64 `json:"id"`
		}
		if err := s.post(ctx, "/api/clients", c, &created); err != nil {
			return nil, err
		}
		ids = append(ids, created.ID)
	}
	return ids, nil
}

func (s *seeder) seedCatalogue(ctx context.Context) error {
	products := []map[string]any{
		{"type": "Steel bracket", "original_rate": 45.5, "hsn": "7326"},
		{"type": "Cable roll 100m", "original_rate": 120, "hsn": "8544"},
	}
	for _, p := range products {
		if err := s.post(ctx, "/api/products", p, nil); err != nil {
			return err
		}
	}
	services := []map[string]any{
		{"type": "Installation", "original_cost": 300, "hsn": "9954"},
		{"type": "Annual maintenance", "original_cost": 1200, "hsn": "9987"},
	}
	for _, svc := range services {
		if err := s.post(ctx, "/api/services", svc, nil); err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) seedDocuments(ctx context.Context, clientIDs []int64) error {
	if len(clientIDs) == 0 {
		return nil
	}
	items := []map[string]any{
		{"description": "Steel bracket", "quantity": 40, "rate": 45.5, "type": "product"},
		{"description": "Installation", "quantity": 1, "rate": 300, "type": "service"},
	}
	for i, clientID := range clientIDs {
		doc := map[string]any{
			"client_id":      clientID,
			"items":          items,
			"tax_percentage": 18,
			"issued_by":      "Seeder",
		}
		if err := s.post(ctx, "/api/quotations", doc, nil); err != nil {
			return err
		}
		var invoice struct {
			ID int64 `json:"id"`
		}
		if err := s.post(ctx, "/api/invoices", doc, &invoice); err != nil {
			return err
		}
		if i%2 == 1 {
			if err := s.send(ctx, http.MethodPut, "/api/invoices", map[string]any{"id": invoice.ID, "status": "issued"}, nil); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *seeder) post(ctx context.Context, path string, body, dest any) error {
	return s.send(ctx, http.MethodPost, path, body, dest)
}

func (s *seeder) send(ctx context.Context, method, path string, body, dest any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if method == http.MethodPost {
		req.Header.Set("Idempotency-Key", uuid.NewString())
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 400 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	if dest == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
