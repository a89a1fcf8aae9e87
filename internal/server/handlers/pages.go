// Renders the HTML site.

package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/maruel/cltog/internal/convert"
	"github.com/maruel/cltog/internal/faq"
	"github.com/maruel/cltog/internal/i18n"
	"github.com/maruel/cltog/internal/server/dto"
	"github.com/maruel/cltog/internal/site"
	"github.com/maruel/cltog/internal/substance"
	"github.com/maruel/cltog/internal/web"
)

// pageTitles holds the titles of the English-only pages.
var pageTitles = map[string]string{
	"about-us":               "About us",
	"contact":                "Contact",
	"privacy-policy":         "Privacy policy",
	"terms-conditions":       "Terms and conditions",
	"blogs":                  "Blog",
	"how-to-convert-cl-to-g": "How to convert cL to g",
	"what-is-cl-to-g":        "What is cL to g?",
	"density-guide":          "Density guide",
}

const notFoundTitle = "Page not found"

// PageHandler serves every HTML page resolved by site.Resolve.
type PageHandler struct {
	substances *substance.Store
	renderer   *web.Renderer
	baseURL    string
}

// NewPageHandler creates a new page handler.
func NewPageHandler(svc *Services, cfg *Config) *PageHandler {
	return &PageHandler{substances: svc.Substances, renderer: svc.Renderer, baseURL: cfg.BaseURL}
}

// ServeHTTP resolves the path, then redirects or renders.
//
// Converter pages read the form from the query string so they work without
// JavaScript. The result is computed only once the form was submitted.
func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	route := site.Resolve(r.URL.Path)
	if route.IsRedirect() {
		loc := route.Location
		if r.URL.RawQuery != "" && route.Status == http.StatusMovedPermanently {
			loc += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, loc, route.Status)
		return
	}
	if route.Status == http.StatusNotFound {
		h.NotFound(w, r, route.Lang)
		return
	}

	p := h.newPage(route.Page, route.Lang)
	name := route.Page.Name
	switch route.Page.Kind {
	case site.KindConverter:
		name = "converter"
		p.Converter = h.converter(route.Page.Variant, route.Lang, r.URL.Query())
	case site.KindBlogIndex:
		p.Posts = blogPosts()
	case site.KindBlogPost:
		if route.Page.Name == "density-guide" {
			p.Densities = h.densities()
		}
	}
	h.render(w, r, http.StatusOK, name, p)
}

// NotFound renders the 404 page in lang.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request, lang i18n.Lang) {
	if lang == "" {
		lang = i18n.Default
	}
	home, _ := site.Lookup(site.Home)
	p := h.newPage(home, lang)
	p.Title = notFoundTitle
	p.Canonical = ""
	p.Alternates = nil
	h.render(w, r, http.StatusNotFound, "notfound", p)
}

// Sitemap serves /sitemap.xml.
func (h *PageHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	data, err := site.Sitemap(h.baseURL)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to build sitemap", "err", err)
		writeErrorResponse(w, dto.InternalWithError("failed to build sitemap", err))
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(data)
}

// Robots serves /robots.txt with the sitemap location appended.
func (h *PageHandler) Robots(w http.ResponseWriter, r *http.Request) {
	data, err := fs.ReadFile(web.Static(), "robots.txt")
	if err != nil {
		writeErrorResponse(w, dto.InternalWithError("failed to read robots.txt", err))
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write(data)
	_, _ = fmt.Fprintf(w, "\nSitemap: %s/sitemap.xml\n", h.baseURL)
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, p *web.Page) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, name, p); err != nil {
		slog.ErrorContext(r.Context(), "Failed to render page", "page", name, "err", err)
		writeErrorResponse(w, dto.InternalWithError("failed to render page", err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", string(p.Lang))
	w.WriteHeader(status)
	if r.Method != http.MethodHead {
		_, _ = buf.WriteTo(w)
	}
}

func (h *PageHandler) newPage(pg site.Page, lang i18n.Lang) *web.Page {
	m := lang.Messages()
	home, _ := site.Lookup(site.Home)
	p := &web.Page{
		Lang:      lang,
		M:         m,
		Title:     pageTitles[pg.Name],
		Canonical: h.baseURL + site.URL(pg, lang),
		HomeURL:   site.URL(home, lang),
	}
	if pg.Kind == site.KindConverter {
		p.Title = m.Titles[string(pg.Variant)]
	}
	if pg.Localized {
		for _, l := range i18n.Supported {
			p.Alternates = append(p.Alternates, web.Alternate{Lang: l, URL: site.URL(pg, l)})
		}
	}
	for _, v := range convert.Variants {
		p.Nav = append(p.Nav, web.Link{
			Title:  m.Titles[string(v)],
			URL:    site.ConverterURL(v, lang),
			Active: pg.Kind == site.KindConverter && pg.Variant == v,
		})
	}
	return p
}

// converter builds the form state from the submitted query.
func (h *PageHandler) converter(v convert.Variant, lang i18n.Lang, q url.Values) *web.Converter {
	m := lang.Messages()
	cat := h.substances.Get()
	form := convert.Form{Quantity: q.Get("quantity"), Substance: q.Get("substance"), Density: q.Get("density")}
	c := &web.Converter{
		QuantityLabel:      m.MassLabel,
		InputUnit:          v.InputUnit(),
		DensityUnit:        v.DensityUnit(),
		DensityPlaceholder: fmt.Sprintf(m.CustomDensityPlaceholder, v.DensityUnit()),
		Quantity:           form.Quantity,
		FAQ:                faq.Render(faq.Items(lang), q),
	}
	if v.FromVolume() {
		c.QuantityLabel = m.VolumeLabel
	}

	selected, _ := cat.Lookup(form.Substance)
	all := cat.All()
	for i := range all {
		s := &all[i]
		o := web.Option{Key: s.Key, Label: s.Label(lang), Selected: selected != nil && selected.Key == s.Key}
		if s.Custom {
			o.Label = m.CustomSubstance
		} else {
			o.Density = formatDensity(v.DensityFromGPerCm3(s.Density))
		}
		c.Options = append(c.Options, o)
	}
	if selected != nil {
		c.ShowDensity = true
		if selected.Custom {
			c.Density = form.Density
		} else {
			c.DensityReadOnly = true
			c.Density = formatDensity(v.DensityFromGPerCm3(selected.Density))
		}
	}

	if !q.Has("quantity") && !q.Has("substance") {
		return c
	}
	res, err := convert.Convert(convert.Resolve(v, form, cat), lang)
	var ve *convert.ValidationError
	switch {
	case errors.As(err, &ve):
		c.Error = ve.Message
	case err != nil:
		c.Error = err.Error()
	default:
		c.Result = res.Text
	}
	return c
}

// densities lists the presets for the density guide.
func (h *PageHandler) densities() []web.DensityRow {
	all := h.substances.Get().All()
	rows := make([]web.DensityRow, 0, len(all))
	for i := range all {
		s := &all[i]
		if s.Custom {
			continue
		}
		rows = append(rows, web.DensityRow{
			Label:  s.Label(i18n.EN),
			PerCm3: i18n.EN.FormatNumber(s.Density),
			PerCl:  i18n.EN.FormatNumber(convert.ClToG.DensityFromGPerCm3(s.Density)),
		})
	}
	return rows
}

func blogPosts() []web.Link {
	var out []web.Link
	for _, p := range site.Pages {
		if p.Kind == site.KindBlogPost {
			out = append(out, web.Link{Title: pageTitles[p.Name], URL: site.URL(p, i18n.Default)})
		}
	}
	return out
}

// formatDensity renders d for form fields and data attributes, in the
// machine format the form parser accepts.
func formatDensity(d float64) string {
	return strconv.FormatFloat(math.Round(d*1e6)/1e6, 'f', -1, 64)
}
