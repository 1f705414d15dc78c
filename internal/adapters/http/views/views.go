// Package views renders the wizard's HTML pages from embedded templates.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/jsamuelsen11/gtti-registration/internal/domain/application"
	"github.com/jsamuelsen11/gtti-registration/internal/domain/wizard"
	"github.com/jsamuelsen11/gtti-registration/internal/ports"
)

// Institute is the name shown in page titles and headers.
const Institute = "Government Technical Training Institute"

//go:embed templates/*.html
var templatesFS embed.FS

var funcs = template.FuncMap{
	"isKind": func(f wizard.FieldView, kind string) bool { return f.Kind.String() == kind },
	// Hints are sanitized by textclean.Hint when the definition is loaded.
	"hint": func(s string) template.HTML { return template.HTML(s) },
}

// Renderer executes the wizard templates.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

type pageData struct {
	Institute string
	*ports.PageView
}

type successData struct {
	Institute   string
	Application *application.Application
}

type errorData struct {
	Institute string
	Status    int
	Message   string
}

// Page writes a wizard step.
func (r *Renderer) Page(w io.Writer, v *ports.PageView) error {
	return r.tmpl.ExecuteTemplate(w, "page.html", pageData{Institute: Institute, PageView: v})
}

// Success writes the confirmation shown after a submission.
func (r *Renderer) Success(w io.Writer, app *application.Application) error {
	return r.tmpl.ExecuteTemplate(w, "success.html", successData{Institute: Institute, Application: app})
}

// Error writes a page for requests that cannot show a wizard step.
func (r *Renderer) Error(w io.Writer, status int, message string) error {
	return r.tmpl.ExecuteTemplate(w, "error.html", errorData{Institute: Institute, Status: status, Message: message})
}
