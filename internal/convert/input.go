// Resolves raw form fields into a validated conversion.

package convert

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/maruel/cltog/internal/i18n"
	"github.com/maruel/cltog/internal/substance"
)

var (
	// ErrNoSubstance is returned when no substance is selected.
	ErrNoSubstance = errors.New("no substance selected")
	// ErrInvalidNumbers is returned when the quantity or the density is not a
	// positive finite number, or when the result is not finite.
	ErrInvalidNumbers = errors.New("invalid numbers")
	// ErrUnknownVariant is returned for a Variant not listed in Variants.
	ErrUnknownVariant = errors.New("unknown variant")
)

// ValidationError carries the localized message to show instead of a result.
type ValidationError struct {
	Err     error
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Form is the raw content of the converter form fields.
type Form struct {
	Quantity  string
	Substance string
	Density   string
}

// Input is a conversion request with numbers resolved.
type Input struct {
	Variant   Variant
	Quantity  float64
	Density   float64
	Substance string
}

// Resolve turns form fields into an Input.
//
// For a preset substance the density comes from the catalog, converted to the
// variant's unit, and the density field is ignored. For the custom entry the
// density field is parsed. Unknown substance keys resolve to no substance.
// Unparsable numbers resolve to NaN.
func Resolve(v Variant, f Form, cat *substance.Catalog) Input {
	in := Input{Variant: v, Quantity: ParseNumber(f.Quantity), Density: math.NaN()}
	s, ok := cat.Lookup(f.Substance)
	if !ok {
		return in
	}
	in.Substance = s.Key
	if s.Custom {
		in.Density = ParseNumber(f.Density)
	} else {
		in.Density = v.DensityFromGPerCm3(s.Density)
	}
	return in
}

// ParseNumber parses a number typed in a form. A single comma is accepted as
// the decimal separator. It returns NaN when s is not a number.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// Result is a successful conversion.
type Result struct {
	Variant  Variant
	Quantity float64
	Density  float64
	Output   float64
	// Text is the display string, e.g. "2 cL = 2.4 g".
	Text string
}

// Validate checks in and returns a *ValidationError localized in lang.
//
// A missing substance is reported before invalid numbers, whatever the other
// fields contain. An unknown variant is a programming error and is returned
// as ErrUnknownVariant, not as a *ValidationError.
func Validate(in Input, lang i18n.Lang) error {
	if !in.Variant.Valid() {
		return fmt.Errorf("%w %q", ErrUnknownVariant, in.Variant)
	}
	m := lang.Messages()
	if in.Substance == "" {
		return &ValidationError{Err: ErrNoSubstance, Message: m.SelectSubstance}
	}
	if !positive(in.Quantity) || !positive(in.Density) {
		return invalidNumbers(in.Variant, lang)
	}
	return nil
}

func invalidNumbers(v Variant, lang i18n.Lang) *ValidationError {
	return &ValidationError{
		Err:     ErrInvalidNumbers,
		Message: lang.Messages().InvalidNumbersFor(v.FromVolume(), v.InputUnit(), v.DensityUnit()),
	}
}

// Convert validates in and applies the variant's formula.
func Convert(in Input, lang i18n.Lang) (*Result, error) {
	if err := Validate(in, lang); err != nil {
		return nil, err
	}
	out := in.Variant.Apply(in.Quantity, in.Density)
	if math.IsNaN(out) || math.IsInf(out, 0) {
		return nil, invalidNumbers(in.Variant, lang)
	}
	return &Result{
		Variant:  in.Variant,
		Quantity: in.Quantity,
		Density:  in.Density,
		Output:   out,
		Text:     Format(in.Variant, in.Quantity, out, lang),
	}, nil
}

// Format renders "<quantity> <unit> = <output> <unit>" in lang.
func Format(v Variant, quantity, output float64, lang i18n.Lang) string {
	return lang.FormatNumber(quantity) + " " + v.InputUnit() + " = " + lang.FormatNumber(output) + " " + v.OutputUnit()
}

func positive(f float64) bool {
	return f > 0 && !math.IsInf(f, 1)
}
