// Package convert implements the volume/mass conversions of the converter
// pages and the validation of their input.
//
// Two unit pairs exist. The centiliter pair uses a density in g/cL so the
// formulas are a plain multiplication or division. The liter pair uses a
// density in g/cm³ and carries a ×1000 unit scale. The pairs are independent
// formulas; no identity between them is relied upon.
package convert

import (
	"fmt"
	"math"
	"slices"
)

// MassFromVolume returns grams for volumeCl centiliters at density g/cL.
func MassFromVolume(volumeCl, density float64) float64 {
	return volumeCl * density
}

// VolumeFromMass returns centiliters for massG grams at density g/cL.
func VolumeFromMass(massG, density float64) float64 {
	return massG / density
}

// MassFromVolumeLiters returns grams for volumeL liters at density g/cm³.
func MassFromVolumeLiters(volumeL, densityGPerCm3 float64) float64 {
	return volumeL * densityGPerCm3 * 1000
}

// VolumeFromMassLiters returns liters for massG grams at density g/cm³.
func VolumeFromMassLiters(massG, densityGPerCm3 float64) float64 {
	return massG / (densityGPerCm3 * 1000)
}

// Variant selects the unit pair and the direction of a conversion.
type Variant string

// Variants, named after the page that hosts them.
const (
	ClToG Variant = "cl-to-g"
	GToCl Variant = "g-to-cl"
	LToG  Variant = "l-to-g"
	GToL  Variant = "g-to-l"
)

// Variants lists every variant in display order.
var Variants = []Variant{ClToG, GToCl, LToG, GToL}

// ParseVariant validates s.
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown variant %q", s)
}

// Valid reports whether v is one of Variants.
func (v Variant) Valid() bool {
	return slices.Contains(Variants, v)
}

// FromVolume reports whether the input quantity is a volume.
func (v Variant) FromVolume() bool {
	return v == ClToG || v == LToG
}

// Liters reports whether the variant uses the liter/gram pair.
func (v Variant) Liters() bool {
	return v == LToG || v == GToL
}

// InputUnit is the unit symbol of the quantity entered.
func (v Variant) InputUnit() string {
	switch v {
	case ClToG:
		return "cL"
	case LToG:
		return "L"
	default:
		return "g"
	}
}

// OutputUnit is the unit symbol of the computed quantity.
func (v Variant) OutputUnit() string {
	switch v {
	case GToCl:
		return "cL"
	case GToL:
		return "L"
	default:
		return "g"
	}
}

// DensityUnit is the unit the variant expects the density in.
func (v Variant) DensityUnit() string {
	if v.Liters() {
		return "g/cm³"
	}
	return "g/cL"
}

// DensityFromGPerCm3 converts a catalog density to the variant's unit.
// 1 cL is 10 cm³.
func (v Variant) DensityFromGPerCm3(d float64) float64 {
	if v.Liters() {
		return d
	}
	return d * 10
}

// Apply runs the variant's formula. It does not validate.
func (v Variant) Apply(quantity, density float64) float64 {
	switch v {
	case ClToG:
		return MassFromVolume(quantity, density)
	case GToCl:
		return VolumeFromMass(quantity, density)
	case LToG:
		return MassFromVolumeLiters(quantity, density)
	case GToL:
		return VolumeFromMassLiters(quantity, density)
	default:
		return math.NaN()
	}
}
