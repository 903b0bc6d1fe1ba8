package views

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
)

// Template wraps a parsed template with helper methods for rendering.
type Template struct {
	tmpl *template.Template
}

// ParseFS parses the named templates from an embedded filesystem.
func ParseFS(fsys fs.FS, patterns ...string) (*Template, error) {
	tmpl, err := template.ParseFS(fsys, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Template{tmpl: tmpl}, nil
}

// ExecuteHTTP renders the template to a buffer first so a render failure
// becomes a clean 500 instead of a half-written page.
func (t *Template) ExecuteHTTP(w http.ResponseWriter, r *http.Request, data interface{}) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		log.Printf("Failed to execute template: %v", err)
		http.Error(w, "There was an error rendering the page.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}
