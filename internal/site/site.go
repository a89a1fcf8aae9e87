// Package site maps URL paths to pages.
//
// Converter pages exist in every supported language under /{lang}/{page};
// English also serves them unprefixed. Informational pages and blog posts
// exist in English only, and their localized URLs redirect to the English
// ones.
package site

import (
	"net/http"
	"strings"

	"github.com/maruel/cltog/internal/convert"
	"github.com/maruel/cltog/internal/i18n"
)

// Kind classifies a page for rendering.
type Kind int

// Page kinds.
const (
	KindConverter Kind = iota
	KindInfo
	KindBlogIndex
	KindBlogPost
)

// Page is a routable page.
type Page struct {
	Name string
	Kind Kind
	// Variant is set for converter pages.
	Variant convert.Variant
	// Localized pages exist in every supported language.
	Localized bool
}

// Home is the page served at / and /{lang}.
const Home = "home"

// Pages lists every page. Home renders the cL to g converter.
var Pages = []Page{
	{Name: Home, Kind: KindConverter, Variant: convert.ClToG, Localized: true},
	{Name: string(convert.ClToG), Kind: KindConverter, Variant: convert.ClToG, Localized: true},
	{Name: string(convert.GToCl), Kind: KindConverter, Variant: convert.GToCl, Localized: true},
	{Name: string(convert.LToG), Kind: KindConverter, Variant: convert.LToG, Localized: true},
	{Name: string(convert.GToL), Kind: KindConverter, Variant: convert.GToL, Localized: true},
	{Name: "about-us", Kind: KindInfo},
	{Name: "contact", Kind: KindInfo},
	{Name: "privacy-policy", Kind: KindInfo},
	{Name: "terms-conditions", Kind: KindInfo},
	{Name: "blogs", Kind: KindBlogIndex},
	{Name: "how-to-convert-cl-to-g", Kind: KindBlogPost},
	{Name: "what-is-cl-to-g", Kind: KindBlogPost},
	{Name: "density-guide", Kind: KindBlogPost},
}

// Lookup returns the page called name.
func Lookup(name string) (Page, bool) {
	for _, p := range Pages {
		if p.Name == name {
			return p, true
		}
	}
	return Page{}, false
}

// Route is the outcome of resolving a path.
type Route struct {
	// Status is 200 for a page, 301/302 for a redirect, 404 otherwise.
	Status   int
	Location string
	Page     Page
	Lang     i18n.Lang
}

// IsRedirect reports whether the route is a redirect.
func (r *Route) IsRedirect() bool {
	return r.Status == http.StatusMovedPermanently || r.Status == http.StatusFound
}

func found(p Page, lang i18n.Lang) Route {
	return Route{Status: http.StatusOK, Page: p, Lang: lang}
}

func redirect(status int, location string) Route {
	return Route{Status: status, Location: location}
}

// Resolve maps a URL path to a page, a redirect or a 404.
func Resolve(path string) Route {
	if path == "" || path == "/" {
		home, _ := Lookup(Home)
		return found(home, i18n.Default)
	}
	// Empty segments never name a page. A Location must not start with "//".
	if strings.Contains(path, "//") {
		return redirect(http.StatusFound, "/")
	}
	if strings.HasSuffix(path, "/") {
		return redirect(http.StatusMovedPermanently, "/"+strings.Trim(path, "/"))
	}
	segs := strings.Split(strings.TrimPrefix(path, "/"), "/")
	switch len(segs) {
	case 1:
		if lang, ok := i18n.Parse(segs[0]); ok {
			home, _ := Lookup(Home)
			return found(home, lang)
		}
		if p, ok := Lookup(segs[0]); ok {
			return found(p, i18n.Default)
		}
		return redirect(http.StatusFound, "/")
	case 2:
		lang, ok := i18n.Parse(segs[0])
		if !ok {
			return redirect(http.StatusFound, "/")
		}
		p, ok := Lookup(segs[1])
		if !ok {
			return Route{Status: http.StatusNotFound, Lang: lang}
		}
		if !p.Localized {
			return redirect(http.StatusFound, "/"+p.Name)
		}
		return found(p, lang)
	default:
		return Route{Status: http.StatusNotFound, Lang: i18n.Default}
	}
}

// URL returns the canonical path of page in lang.
func URL(p Page, lang i18n.Lang) string {
	if !p.Localized {
		lang = i18n.Default
	}
	switch {
	case p.Name == Home && lang == i18n.Default:
		return "/"
	case p.Name == Home:
		return "/" + string(lang)
	case lang == i18n.Default:
		return "/" + p.Name
	default:
		return "/" + string(lang) + "/" + p.Name
	}
}

// ConverterURL returns the path of the converter page for v in lang.
func ConverterURL(v convert.Variant, lang i18n.Lang) string {
	p, _ := Lookup(string(v))
	return URL(p, lang)
}
