// Package view renders the HTML pages. Templates are embedded and parsed once at startup,
// each page template is combined with layout.html.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutTemplate = "templates/layout.html"

// Data is the named parameter payload of a page
type Data map[string]any

// FlashSource pops the pending notices of the current visitor
type FlashSource func(c echo.Context) []string

// Renderer implements echo.Renderer
type Renderer struct {
	pages       map[string]*template.Template
	contextPath string
	flashes     FlashSource
}

var _ echo.Renderer = (*Renderer)(nil)

// NewRenderer parses every page. contextPath prefixes the links of the pages.
func NewRenderer(contextPath string, flashes FlashSource) (*Renderer, error) {
	contextPath = strings.TrimRight(contextPath, "/")
	if flashes == nil {
		flashes = func(echo.Context) []string { return nil }
	}

	funcs := template.FuncMap{
		"url": func(p string) string {
			return contextPath + p
		},
	}

	names, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		if name == layoutTemplate {
			continue
		}
		page, err := template.New(path.Base(name)).Funcs(funcs).ParseFS(templateFS, layoutTemplate, name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[path.Base(name)] = page
	}

	return &Renderer{pages: pages, contextPath: contextPath, flashes: flashes}, nil
}

// Render executes the layout of page name. Every rendered page consumes the pending flashes.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	page, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}

	payload := Data{}
	switch d := data.(type) {
	case nil:
	case Data:
		for k, v := range d {
			payload[k] = v
		}
	case map[string]any:
		for k, v := range d {
			payload[k] = v
		}
	default:
		payload["Content"] = d
	}
	if c != nil {
		payload["Flashes"] = r.flashes(c)
	}

	var buf bytes.Buffer
	if err := page.ExecuteTemplate(&buf, "layout", payload); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// Has reports whether name is a known page
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}
