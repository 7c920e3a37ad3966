package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	INDEX_PAGE   = "index.html"
	CONFIRM_PAGE = "confirm.html"
)

// PageRenderer renders pages through the embedded templates. Each page is
// parsed together with the shared layout.
type PageRenderer struct {
	templates map[string]*template.Template
}

func NewPageRenderer() *PageRenderer {
	templates := make(map[string]*template.Template)
	for _, name := range []string{INDEX_PAGE, CONFIRM_PAGE} {
		templates[name] = template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/"+name))
	}
	return &PageRenderer{templates: templates}
}

// Render writes page using the template called name.
func (pr *PageRenderer) Render(w io.Writer, name string, page Page) error {
	if t, ok := pr.templates[name]; ok {
		return t.ExecuteTemplate(w, "layout", page)
	}
	return fmt.Errorf("template is missing{%s}", name)
}
