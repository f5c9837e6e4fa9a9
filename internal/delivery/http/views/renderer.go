// Package views renders storefront pages with html/template.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	PageOrderDetail   = "order_detail"
	PageConfirmCancel = "confirm_cancel"
	PageMessage       = "message"
)

var sharedTemplates = []string{"templates/layout.html", "templates/navbar.html"}

// Renderer implements echo.Renderer. Every page is its own template set built
// from the shared layout and the page's "content" block.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}

	for _, page := range []string{PageOrderDetail, PageConfirmCancel, PageMessage} {
		files := append(append([]string(nil), sharedTemplates...), "templates/"+page+".html")
		tmpl, err := template.New(page).ParseFS(templateFS, files...)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", page, err)
		}
		r.pages[page] = tmpl
	}

	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("page %q is not registered", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}
