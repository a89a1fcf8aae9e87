// Generates sitemap.xml.

package site

import (
	"encoding/xml"
	"strings"

	"github.com/maruel/cltog/internal/i18n"
)

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc      string  `xml:"loc"`
	Priority float64 `xml:"priority"`
}

// Sitemap returns the sitemaps.org document listing every canonical page URL.
func Sitemap(baseURL string) ([]byte, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	set := urlset{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range Pages {
		langs := []i18n.Lang{i18n.Default}
		if p.Localized {
			langs = i18n.Supported
		}
		for _, l := range langs {
			prio := 0.5
			switch {
			case p.Name == Home:
				prio = 1.0
			case p.Kind == KindConverter:
				prio = 0.8
			}
			set.URLs = append(set.URLs, sitemapURL{Loc: baseURL + URL(p, l), Priority: prio})
		}
	}
	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
