package view

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer turns a view name and its data into a response body. Handlers only
// see this interface; tests swap in a recorder.
type Renderer interface {
	Render(w http.ResponseWriter, name string, data any) error
}

type TemplateRenderer struct {
	templates *template.Template
}

func NewTemplateRenderer() (*TemplateRenderer, error) {

	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &TemplateRenderer{templates: templates}, nil
}

func (r *TemplateRenderer) Render(w http.ResponseWriter, name string, data any) error {

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := r.templates.ExecuteTemplate(w, name+".html", data); err != nil {
		return fmt.Errorf("failed to render view %s: %w", name, err)
	}

	return nil
}
