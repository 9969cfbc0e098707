// Package view renders the computed view-state into HTML. It implements
// echo.Renderer over html/template files embedded at build time. Handlers
// hand it plain structs; no template reaches back into repositories or the
// cache.
package view

import (
	"embed"
	"html/template"
	"io"
	"strings"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer executes the embedded page templates by file name.
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates. Called once at startup; a parse error
// is fatal there.
func New() (*Renderer, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"stars": Stars,
		"split": strings.Split,
		"trim":  strings.TrimSpace,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// Stars renders a 1..5 rating as filled and empty star symbols: exactly
// `rating` filled and `5-rating` empty. Out-of-range values are clamped so
// the renderer cannot panic on bad data.
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
