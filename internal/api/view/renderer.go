// Package view renders the server-side HTML templates. Templates are
// embedded at build time; each page is parsed together with the shared
// layout so view names map one-to-one onto template files.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

//go:embed templates
var templatesFS embed.FS

var pages = []string{
	"index",
	"account/login",
	"account/register",
	"account/management",
	"account/update",
	"inventory/classification",
	"inventory/detail",
	"inventory/management",
	"inventory/add-classification",
	"inventory/add-inventory",
	"testdrive/request",
	"testdrive/history",
	"testdrive/management",
	"errors/error",
}

var enUS = message.NewPrinter(language.AmericanEnglish)

var funcs = template.FuncMap{
	// usd formats a price as $25,000.00.
	"usd": func(v float64) string {
		return "$" + enUS.Sprintf("%v", number.Decimal(v, number.Scale(2)))
	},
	// miles formats mileage with thousands separators: 101,222.
	"miles": func(v int) string {
		return enUS.Sprintf("%v", number.Decimal(v))
	},
}

// Renderer satisfies echo.Renderer over the embedded template set.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses every page template against the shared layout.
func NewRenderer() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(
			templatesFS,
			"templates/layout.html",
			"templates/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = t
	}
	return &Renderer{templates: templates}, nil
}

// Render executes the named page inside the layout.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	return t.ExecuteTemplate(w, "layout.html", data)
}
