package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"clubevents/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = []string{
	domain.PageIndex,
	domain.PageMembers,
	domain.PageEvents,
	domain.PageEventDetail,
	domain.PageNotFound,
}

// pageRenderer implements domain.PageRenderer using the embedded templates.
// Each page is parsed together with the shared layout.
type pageRenderer struct {
	templates map[string]*template.Template
}

// NewPageRenderer parses every page template once and returns a PageRenderer.
func NewPageRenderer() (domain.PageRenderer, error) {
	r := &pageRenderer{templates: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := template.New(name).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		r.templates[name] = t
	}
	return r, nil
}

// Render executes the named page into a buffer. w is written only when execution succeeds.
func (r *pageRenderer) Render(w io.Writer, page string, data any) error {
	t, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
