package view

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/procura/billing/web"
)

// Engine renders the embedded HTML templates.
type Engine struct {
	templates *template.Template
}

var printer = message.NewPrinter(language.English)

// FormatMoney renders an amount as "$" followed by the value rounded to two
// decimals, e.g. 1234.5 -> "$1,234.50".
func FormatMoney(v float64) string {
	rounded := decimal.NewFromFloat(v).Round(2).InexactFloat64()
	return "$" + printer.Sprintf("%v", number.Decimal(rounded, number.Scale(2)))
}

// FormatPercent trims trailing zeros: 18 -> "18", 12.5 -> "12.5".
func FormatPercent(v float64) string {
	return decimal.NewFromFloat(v).Round(2).String()
}

func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// NewEngine parses templates at build-time.
func NewEngine() (*Engine, error) {
	funcMap := template.FuncMap{
		"formatDate": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("02 Jan 2006")
		},
		"money":    FormatMoney,
		"percent":  FormatPercent,
		"quantity": formatQuantity,
	}
	tpl, err := template.New("root").Funcs(funcMap).ParseFS(web.Templates, "templates/pdf/*.html")
	if err != nil {
		return nil, err
	}
	return &Engine{templates: tpl}, nil
}

// Render executes a named template into w.
func (e *Engine) Render(w io.Writer, name string, data any) error {
	if e == nil {
		return fmt.Errorf("template engine not initialised")
	}
	return e.templates.ExecuteTemplate(w, name, data)
}

// RenderString executes a named template and returns the output.
func (e *Engine) RenderString(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := e.Render(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
