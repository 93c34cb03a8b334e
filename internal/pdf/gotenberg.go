// Package pdf turns quotations and invoices into printable documents.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// TraceHeader carries the request id to Gotenberg.
const TraceHeader = "Gotenberg-Trace"

// Renderer converts an HTML page into PDF bytes.
type Renderer interface {
	RenderHTML(ctx context.Context, html string) ([]byte, error)
}

// PageOptions is the Chromium print layout. Lengths are in inches.
type PageOptions struct {
	PaperWidth      float64
	PaperHeight     float64
	MarginTop       float64
	MarginBottom    float64
	MarginLeft      float64
	MarginRight     float64
	PrintBackground bool
}

// A4Page is the layout the document template is designed for.
var A4Page = PageOptions{
	PaperWidth:      8.27,
	PaperHeight:     11.69,
	MarginTop:       0.5,
	MarginBottom:    0.5,
	MarginLeft:      0.5,
	MarginRight:     0.5,
	PrintBackground: true,
}

func (o PageOptions) writeFields(w *multipart.Writer) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"paperWidth", o.PaperWidth},
		{"paperHeight", o.PaperHeight},
		{"marginTop", o.MarginTop},
		{"marginBottom", o.MarginBottom},
		{"marginLeft", o.MarginLeft},
		{"marginRight", o.MarginRight},
	}
	for _, f := range fields {
		if f.value <= 0 {
			continue
		}
		if err := w.WriteField(f.name, strconv.FormatFloat(f.value, 'f', -1, 64)); err != nil {
			return err
		}
	}
	return w.WriteField("printBackground", strconv.FormatBool(o.PrintBackground))
}

// Client converts billing documents through a Gotenberg instance.
type Client struct {
	baseURL    string
	page       PageOptions
	httpClient *http.Client
}

// NewClient returns a client printing on A4Page.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		page:    A4Page,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// WithPage returns a copy of c printing with page.
func (c *Client) WithPage(page PageOptions) *Client {
	clone := *c
	clone.page = page
	return &clone
}

func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gotenberg health: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("gotenberg health: status %d", resp.StatusCode)
	}
	return nil
}

// RenderHTML prints html with the client's page layout. The request id from
// ctx, when present, is forwarded as the Gotenberg trace so both logs line up.
func (c *Client) RenderHTML(ctx context.Context, html string) ([]byte, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("files", "index.html")
	if err != nil {
		return nil, err
	}
	if _, err := io.WriteString(part, html); err != nil {
		return nil, err
	}
	if err := c.page.writeFields(writer); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/forms/chromium/convert/html", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if id := middleware.GetReqID(ctx); id != "" {
		req.Header.Set(TraceHeader, id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gotenberg render: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("gotenberg render: status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return io.ReadAll(resp.Body)
}
