// Package web holds the dashboard's HTML templates.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"time"

	"invoice-dashboard/internal/money"

	"gorm.io/datatypes"
)

//go:embed templates/*.html
var templateFS embed.FS

// Funcs are the helpers available to every template.
var Funcs = template.FuncMap{
	"formatCurrency": money.FormatCurrency,
	"formatDollars":  money.FormatDollars,
	"formatDate":     FormatDate,
	"fieldErrors":    fieldErrors,
	"hasErrors":      hasErrors,
}

// FormatDate renders a date the way the tables show it, e.g. "Oct 15, 2026".
func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format("Jan 2, 2006")
}

// fieldErrors looks up field in an errors map, tolerating a nil map.
func fieldErrors(errs map[string][]string, field string) []string {
	if errs == nil {
		return nil
	}
	return errs[field]
}

func hasErrors(errs map[string][]string) bool {
	return len(errs) > 0
}

// Templates parses every embedded template.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs).ParseFS(templateFS, "templates/*.html")
}

// Renderer executes named templates into memory, for pages that are cached
// before being written out.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer(tmpl *template.Template) *Renderer {
	return &Renderer{tmpl: tmpl}
}

func (r *Renderer) Render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) Write(w io.Writer, name string, data any) error {
	return r.tmpl.ExecuteTemplate(w, name, data)
}
