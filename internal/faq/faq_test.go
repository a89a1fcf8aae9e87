package faq

import (
	"net/url"
	"strings"
	"testing"

	"github.com/maruel/cltog/internal/i18n"
)

func TestState_Toggle(t *testing.T) {
	if Collapsed.Toggle() != Expanded {
		t.Error("collapsed should expand")
	}
	if Expanded.Toggle() != Collapsed {
		t.Error("expanded should collapse")
	}
	if Collapsed.Toggle().Toggle() != Collapsed {
		t.Error("toggle twice should be identity")
	}
}

func TestAccordion(t *testing.T) {
	var a Accordion
	if a.State("x") != Collapsed {
		t.Error("zero accordion should have everything collapsed")
	}
	b := a.Toggle("x")
	if b.State("x") != Expanded {
		t.Error("x should be expanded")
	}
	if a.State("x") != Collapsed {
		t.Error("Toggle must not modify the receiver")
	}
	c := b.Toggle("y")
	if c.State("x") != Expanded || c.State("y") != Expanded {
		t.Error("toggling y must not affect x")
	}
	if got := c.Encode(); got != "x,y" {
		t.Errorf("Encode = %q", got)
	}
	if got := c.Toggle("x").Encode(); got != "y" {
		t.Errorf("Encode = %q", got)
	}
	if got := c.Toggle("x").Toggle("x").Encode(); got != c.Encode() {
		t.Errorf("toggle twice = %q, want %q", got, c.Encode())
	}
}

func TestParseAccordion(t *testing.T) {
	a := ParseAccordion(" b, a,,b ")
	if got := a.Encode(); got != "a,b" {
		t.Errorf("Encode = %q", got)
	}
	if ParseAccordion("").Encode() != "" {
		t.Error("empty should stay empty")
	}
}

func TestItems(t *testing.T) {
	if len(Items(i18n.EN)) == 0 {
		t.Fatal("no English FAQ")
	}
	if len(Items(i18n.FR)) == 0 {
		t.Fatal("no French FAQ")
	}
	if Items(i18n.TR)[0].ID != Items(i18n.EN)[0].ID {
		t.Error("Turkish should fall back to English")
	}
}

func TestParseContent_Invalid(t *testing.T) {
	tests := map[string]string{
		"language":  "xx:\n  - {id: a, q: Q, a: A}\nen:\n  - {id: a, q: Q, a: A}",
		"duplicate": "en:\n  - {id: a, q: Q, a: A}\n  - {id: a, q: Q, a: A}",
		"comma":     "en:\n  - {id: 'a,b', q: Q, a: A}",
		"no en":     "fr:\n  - {id: a, q: Q, a: A}",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := parseContent([]byte(data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRender(t *testing.T) {
	items := []Item{{ID: "a", Question: "A?"}, {ID: "b", Question: "B?"}}
	query := url.Values{"quantity": {"2"}, QueryKey: {"b"}}
	views := Render(items, query)
	if len(views) != 2 {
		t.Fatalf("got %d views", len(views))
	}
	if views[0].Expanded() || !views[1].Expanded() {
		t.Errorf("states = %v, %v", views[0].State, views[1].State)
	}
	if !strings.Contains(views[0].Href, "faq=a%2Cb") || !strings.Contains(views[0].Href, "quantity=2") {
		t.Errorf("href a = %q", views[0].Href)
	}
	if strings.Contains(views[1].Href, "faq=") || !strings.HasSuffix(views[1].Href, "#faq-b") {
		t.Errorf("href b = %q", views[1].Href)
	}
	if query.Get(QueryKey) != "b" {
		t.Error("Render must not modify the query")
	}
}
