package web

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/maruel/cltog/internal/faq"
	"github.com/maruel/cltog/internal/i18n"
)

func TestStatic(t *testing.T) {
	for _, name := range []string{"css/site.css", "js/converter.js", "robots.txt"} {
		if _, err := fs.Stat(Static(), name); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestRenderer(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"converter", "notfound", "blogs", "about-us", "contact", "privacy-policy", "terms-conditions", "how-to-convert-cl-to-g", "what-is-cl-to-g", "density-guide"} {
		if _, ok := r.pages[name]; !ok {
			t.Errorf("missing template %s", name)
		}
	}
	if _, ok := r.pages["layout"]; ok {
		t.Error("layout is not a page")
	}
}

func TestRender_Converter(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatal(err)
	}
	p := &Page{
		Lang:       i18n.AR,
		M:          i18n.AR.Messages(),
		Title:      "T",
		Canonical:  "http://x/ar",
		HomeURL:    "/ar",
		Alternates: []Alternate{{Lang: i18n.EN, URL: "/"}, {Lang: i18n.AR, URL: "/ar"}},
		Converter: &Converter{
			QuantityLabel: "Volume",
			InputUnit:     "cL",
			DensityUnit:   "g/cL",
			Quantity:      "<2>",
			Options: []Option{
				{Key: "water", Label: "Water", Density: "10", Selected: true},
				{Key: "custom", Label: "Custom"},
			},
			ShowDensity:     true,
			DensityReadOnly: true,
			Density:         "10",
			Result:          "2 cL = 20 g",
			FAQ:             []faq.View{{Item: faq.Item{ID: "q1", Question: "Q?", Answer: "A."}, State: faq.Expanded, Href: "?#faq-q1"}},
		},
	}
	var sb strings.Builder
	if err := r.Render(&sb, "converter", p); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	for _, want := range []string{
		`dir="rtl"`,
		`value="&lt;2&gt;"`,
		`data-density="10" selected`,
		`readonly`,
		`2 cL = 20 g`,
		`id="faq-q1"`,
		`A.`,
		`hreflang="ar" aria-current="true"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRender_Unknown(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	if err := r.Render(&sb, "nope", &Page{M: i18n.EN.Messages()}); err == nil {
		t.Error("expected error")
	}
	if sb.Len() != 0 {
		t.Error("nothing should be written on error")
	}
}
