// Package substance provides the preset substance catalog used to fill in
// densities on the converter pages.
//
// The catalog is a YAML file. A default catalog is embedded in the binary; an
// override file can be loaded and watched for changes at runtime.
package substance

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/maruel/cltog/internal/i18n"
	"gopkg.in/yaml.v3"
)

// CustomKey is the key of the catalog entry whose density is user supplied.
const CustomKey = "custom"

// Substance is one selectable entry of the catalog.
type Substance struct {
	Key string `yaml:"key" json:"key" jsonschema:"description=Stable identifier used in URLs and forms"`
	// Density is in g/cm³, which equals g/mL.
	Density float64           `yaml:"density,omitempty" json:"density,omitempty" jsonschema:"description=Density in g/cm³ (g/mL); required unless custom,minimum=0"`
	Labels  map[string]string `yaml:"labels,omitempty" json:"labels,omitempty" jsonschema:"description=Display label per language code; en is required unless custom"`
	Custom  bool              `yaml:"custom,omitempty" json:"custom,omitempty" jsonschema:"description=The density is entered by the user"`
}

// Label returns the label in lang, falling back to English then the key.
func (s *Substance) Label(lang i18n.Lang) string {
	if v := s.Labels[string(lang)]; v != "" {
		return v
	}
	if v := s.Labels[string(i18n.EN)]; v != "" {
		return v
	}
	return s.Key
}

// File is the on-disk catalog format.
type File struct {
	Version    int         `yaml:"version" json:"version" jsonschema:"enum=1"`
	Substances []Substance `yaml:"substances" json:"substances"`
}

// Validate checks keys, densities and the custom entry.
func (f *File) Validate() error {
	if f.Version != 1 {
		return fmt.Errorf("unsupported version %d", f.Version)
	}
	if len(f.Substances) == 0 {
		return errors.New("no substances")
	}
	seen := make(map[string]bool, len(f.Substances))
	customs := 0
	for i := range f.Substances {
		s := &f.Substances[i]
		if s.Key == "" {
			return fmt.Errorf("substance #%d: empty key", i)
		}
		if seen[s.Key] {
			return fmt.Errorf("substance %q: duplicate key", s.Key)
		}
		seen[s.Key] = true
		if s.Custom {
			if s.Key != CustomKey {
				return fmt.Errorf("substance %q: custom entry must use key %q", s.Key, CustomKey)
			}
			customs++
			continue
		}
		if s.Key == CustomKey {
			return fmt.Errorf("substance %q: reserved key must be marked custom", s.Key)
		}
		if !(s.Density > 0) {
			return fmt.Errorf("substance %q: density must be positive, got %v", s.Key, s.Density)
		}
		if s.Labels[string(i18n.EN)] == "" {
			return fmt.Errorf("substance %q: missing en label", s.Key)
		}
	}
	if customs != 1 {
		return fmt.Errorf("expected exactly one custom entry, got %d", customs)
	}
	return nil
}

// Catalog is an immutable, validated list of substances.
type Catalog struct {
	substances []Substance
	byKey      map[string]int
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	c := &Catalog{substances: f.Substances, byKey: make(map[string]int, len(f.Substances))}
	for i := range c.substances {
		c.byKey[c.substances[i].Key] = i
	}
	return c, nil
}

// Load reads a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: operator-supplied path
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

//go:embed default.yaml
var defaultYAML []byte

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(err)
	}
	return c
}

// All returns the substances in file order. The slice must not be modified.
func (c *Catalog) All() []Substance {
	return c.substances
}

// Lookup returns the substance with key.
func (c *Catalog) Lookup(key string) (*Substance, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return nil, false
	}
	return &c.substances[i], true
}
