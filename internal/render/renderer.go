package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer turns an aggregated customer record into the portal's collapsible
// HTML. It replaces the three divergent browser-side renderers with one
// implementation; rendering is a pure function of the document and the
// target writer.
type Renderer struct {
	tmpl *template.Template
}

func New() *Renderer {
	return &Renderer{
		tmpl: template.Must(template.ParseFS(templateFS, "templates/*.tmpl")),
	}
}

// Page renders the complete portal page, form included.
func (r *Renderer) Page(w io.Writer, page Page) error {
	if err := r.tmpl.ExecuteTemplate(w, "page", page); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	return nil
}
