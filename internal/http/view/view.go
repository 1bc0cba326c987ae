package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer executes embedded HTML templates. User-supplied values flow
// through html/template's contextual escaping.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Renderer{
		templates: templates,
	}, nil
}

// Render executes the named template into a buffer first so a template
// failure never leaks a half-written page.
func (rn *Renderer) Render(w http.ResponseWriter, name string, data map[string]any) error {
	var buf bytes.Buffer
	if err := rn.templates.ExecuteTemplate(&buf, name+".html", data); err != nil {
		return fmt.Errorf("execute template %q: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write response: %w", err)
	}

	return nil
}
