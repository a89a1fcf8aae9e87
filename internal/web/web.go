// Package web embeds the HTML templates and static assets of the site.
//
// Assets are compiled into the binary so the server deploys as a single
// file.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/maruel/cltog/internal/faq"
	"github.com/maruel/cltog/internal/i18n"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the static assets rooted at "static/", e.g. "css/site.css".
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Link is a navigation entry.
type Link struct {
	Title  string
	URL    string
	Active bool
}

// Alternate is the URL of the current page in another language.
type Alternate struct {
	Lang i18n.Lang
	URL  string
}

// Option is a substance in the select element.
type Option struct {
	Key   string
	Label string
	// Density is formatted for the data-density attribute in the page's
	// density unit, empty for the custom entry.
	Density  string
	Selected bool
}

// Converter is the state of a converter form.
type Converter struct {
	QuantityLabel      string
	InputUnit          string
	DensityUnit        string
	DensityPlaceholder string

	// Echo of the submitted fields.
	Quantity string
	Density  string

	Options         []Option
	ShowDensity     bool
	DensityReadOnly bool

	Result string
	Error  string

	FAQ []faq.View
}

// DensityRow is a line of the density guide.
type DensityRow struct {
	Label  string
	PerCm3 string
	PerCl  string
}

// Page is the data every template receives.
type Page struct {
	Lang       i18n.Lang
	M          *i18n.Messages
	Title      string
	Canonical  string
	HomeURL    string
	Alternates []Alternate
	Nav        []Link

	Converter *Converter
	Posts     []Link
	Densities []DensityRow
}

// Renderer renders named pages inside the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every embedded template.
func NewRenderer() (*Renderer, error) {
	layout, err := template.ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	entries, err := fs.ReadDir(templateFS, "templates")
	if err != nil {
		return nil, err
	}
	r := &Renderer{pages: make(map[string]*template.Template, len(entries))}
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		if name == "layout" {
			continue
		}
		t, err := layout.Clone()
		if err != nil {
			return nil, err
		}
		if t, err = t.ParseFS(templateFS, "templates/"+e.Name()); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", e.Name(), err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render executes the page template name into w. Output is buffered so a
// template error never produces a partial page.
func (r *Renderer) Render(w io.Writer, name string, p *Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", p); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
