// Package faq holds the FAQ entries of the converter pages and the
// collapsed/expanded state of each entry.
//
// Each entry is toggled on its own; entries share no state. Without
// JavaScript the set of expanded entries travels in the URL, so a page render
// is a pure function of the request.
package faq

import (
	_ "embed"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/maruel/cltog/internal/i18n"
	"gopkg.in/yaml.v3"
)

// QueryKey is the URL query parameter listing expanded entries.
const QueryKey = "faq"

// State of one FAQ entry.
type State int

// States.
const (
	Collapsed State = iota
	Expanded
)

// Toggle returns the other state.
func (s State) Toggle() State {
	if s == Expanded {
		return Collapsed
	}
	return Expanded
}

func (s State) String() string {
	if s == Expanded {
		return "expanded"
	}
	return "collapsed"
}

// Item is one question and its answer.
type Item struct {
	ID       string `yaml:"id"`
	Question string `yaml:"q"`
	Answer   string `yaml:"a"`
}

//go:embed content.yaml
var contentYAML []byte

var content map[i18n.Lang][]Item

func init() {
	c, err := parseContent(contentYAML)
	if err != nil {
		panic(err)
	}
	content = c
}

func parseContent(data []byte) (map[i18n.Lang][]Item, error) {
	var raw map[string][]Item
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse faq: %w", err)
	}
	out := make(map[i18n.Lang][]Item, len(raw))
	for k, items := range raw {
		l, ok := i18n.Parse(k)
		if !ok {
			return nil, fmt.Errorf("faq: unsupported language %q", k)
		}
		seen := make(map[string]bool, len(items))
		for _, it := range items {
			if it.ID == "" || strings.Contains(it.ID, ",") {
				return nil, fmt.Errorf("faq %s: invalid id %q", k, it.ID)
			}
			if seen[it.ID] {
				return nil, fmt.Errorf("faq %s: duplicate id %q", k, it.ID)
			}
			seen[it.ID] = true
		}
		out[l] = items
	}
	if len(out[i18n.EN]) == 0 {
		return nil, fmt.Errorf("faq: missing %s entries", i18n.EN)
	}
	return out, nil
}

// Items returns the entries for lang, falling back to English.
func Items(lang i18n.Lang) []Item {
	if items := content[lang]; len(items) != 0 {
		return items
	}
	return content[i18n.EN]
}

// Accordion is the set of expanded entries. The zero value has every entry
// collapsed. It is a value type; Toggle returns a new Accordion.
type Accordion struct {
	expanded []string // sorted
}

// ParseAccordion decodes the faq query parameter value.
func ParseAccordion(v string) Accordion {
	var a Accordion
	for id := range strings.SplitSeq(v, ",") {
		if id = strings.TrimSpace(id); id != "" && !slices.Contains(a.expanded, id) {
			a.expanded = append(a.expanded, id)
		}
	}
	slices.Sort(a.expanded)
	return a
}

// State returns the state of the entry id.
func (a Accordion) State(id string) State {
	if _, ok := slices.BinarySearch(a.expanded, id); ok {
		return Expanded
	}
	return Collapsed
}

// Toggle returns a copy of a with entry id flipped.
func (a Accordion) Toggle(id string) Accordion {
	i, ok := slices.BinarySearch(a.expanded, id)
	if ok {
		return Accordion{expanded: slices.Delete(slices.Clone(a.expanded), i, i+1)}
	}
	return Accordion{expanded: slices.Insert(slices.Clone(a.expanded), i, id)}
}

// Encode returns the query parameter value, "" when all are collapsed.
func (a Accordion) Encode() string {
	return strings.Join(a.expanded, ",")
}

// View is an entry as rendered on a page.
type View struct {
	Item
	State State
	// Href toggles this entry and keeps the rest of the query.
	Href string
}

// Expanded reports whether the entry is open.
func (v View) Expanded() bool {
	return v.State == Expanded
}

// Render builds the views of items given the current query.
func Render(items []Item, query url.Values) []View {
	a := ParseAccordion(query.Get(QueryKey))
	out := make([]View, len(items))
	for i, it := range items {
		q := url.Values{}
		for k, v := range query {
			q[k] = slices.Clone(v)
		}
		if enc := a.Toggle(it.ID).Encode(); enc != "" {
			q.Set(QueryKey, enc)
		} else {
			q.Del(QueryKey)
		}
		href := "?" + q.Encode() + "#faq-" + it.ID
		if len(q) == 0 {
			href = "?#faq-" + it.ID
		}
		out[i] = View{Item: it, State: a.State(it.ID), Href: href}
	}
	return out
}
