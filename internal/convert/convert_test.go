package convert

import (
	"errors"
	"math"
	"testing"

	"github.com/maruel/cltog/internal/i18n"
	"github.com/maruel/cltog/internal/substance"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestFormulas(t *testing.T) {
	if got := MassFromVolume(2, 1.2); !almostEqual(got, 2.4) {
		t.Errorf("MassFromVolume(2, 1.2) = %v, want 2.4", got)
	}
	if got := VolumeFromMass(2.4, 1.2); !almostEqual(got, 2) {
		t.Errorf("VolumeFromMass(2.4, 1.2) = %v, want 2", got)
	}
	if got := MassFromVolumeLiters(1.5, 0.8); !almostEqual(got, 1200) {
		t.Errorf("MassFromVolumeLiters(1.5, 0.8) = %v, want 1200", got)
	}
	if got := VolumeFromMassLiters(50, 0.8); !almostEqual(got, 0.0625) {
		t.Errorf("VolumeFromMassLiters(50, 0.8) = %v, want 0.0625", got)
	}
}

func TestRoundTrip(t *testing.T) {
	densities := []float64{0.001, 0.593, 1, 1.2, 7.89, 13.534, 1e4}
	volumes := []float64{1e-6, 0.3, 1, 2, 33.3, 75, 1e6}
	for _, d := range densities {
		for _, v := range volumes {
			if got := VolumeFromMass(MassFromVolume(v, d), d); !almostEqual(got, v) {
				t.Errorf("cL round trip v=%v d=%v: got %v", v, d, got)
			}
			if got := VolumeFromMassLiters(MassFromVolumeLiters(v, d), d); !almostEqual(got, v) {
				t.Errorf("L round trip v=%v d=%v: got %v", v, d, got)
			}
		}
	}
}

func TestParseVariant(t *testing.T) {
	for _, v := range Variants {
		got, err := ParseVariant(string(v))
		if err != nil || got != v {
			t.Errorf("ParseVariant(%q) = %q, %v", v, got, err)
		}
	}
	if _, err := ParseVariant("ml-to-g"); err == nil {
		t.Error("expected error for unknown variant")
	}
}

func TestVariantUnits(t *testing.T) {
	tests := []struct {
		v             Variant
		in, out, dens string
		fromVolume    bool
	}{
		{ClToG, "cL", "g", "g/cL", true},
		{GToCl, "g", "cL", "g/cL", false},
		{LToG, "L", "g", "g/cm³", true},
		{GToL, "g", "L", "g/cm³", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.v), func(t *testing.T) {
			if got := tt.v.InputUnit(); got != tt.in {
				t.Errorf("InputUnit = %q, want %q", got, tt.in)
			}
			if got := tt.v.OutputUnit(); got != tt.out {
				t.Errorf("OutputUnit = %q, want %q", got, tt.out)
			}
			if got := tt.v.DensityUnit(); got != tt.dens {
				t.Errorf("DensityUnit = %q, want %q", got, tt.dens)
			}
			if got := tt.v.FromVolume(); got != tt.fromVolume {
				t.Errorf("FromVolume = %v, want %v", got, tt.fromVolume)
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"2", 2},
		{" 2.5 ", 2.5},
		{"2,5", 2.5},
		{"1e3", 1000},
		{"-3", -3},
	}
	for _, tt := range tests {
		if got := ParseNumber(tt.in); got != tt.want {
			t.Errorf("ParseNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, in := range []string{"", "  ", "abc", "1,2,3", "1.000,5", "2cl"} {
		if got := ParseNumber(in); !math.IsNaN(got) {
			t.Errorf("ParseNumber(%q) = %v, want NaN", in, got)
		}
	}
}

func TestResolve(t *testing.T) {
	cat := substance.Default()
	t.Run("preset cL", func(t *testing.T) {
		in := Resolve(ClToG, Form{Quantity: "2", Substance: "water", Density: "999"}, cat)
		if in.Substance != "water" || in.Quantity != 2 || in.Density != 10 {
			t.Errorf("got %+v", in)
		}
	})
	t.Run("preset liters", func(t *testing.T) {
		in := Resolve(GToL, Form{Quantity: "50", Substance: "water"}, cat)
		if in.Density != 1 {
			t.Errorf("density = %v, want 1", in.Density)
		}
	})
	t.Run("custom", func(t *testing.T) {
		in := Resolve(ClToG, Form{Quantity: "2", Substance: substance.CustomKey, Density: "1.2"}, cat)
		if in.Substance != substance.CustomKey || in.Density != 1.2 {
			t.Errorf("got %+v", in)
		}
	})
	t.Run("unknown substance", func(t *testing.T) {
		in := Resolve(ClToG, Form{Quantity: "2", Substance: "unobtainium"}, cat)
		if in.Substance != "" {
			t.Errorf("substance = %q, want empty", in.Substance)
		}
	})
}

func TestConvert(t *testing.T) {
	t.Run("cL to g", func(t *testing.T) {
		res, err := Convert(Input{Variant: ClToG, Quantity: 2, Density: 1.2, Substance: "custom"}, i18n.EN)
		if err != nil {
			t.Fatal(err)
		}
		if !almostEqual(res.Output, 2.4) {
			t.Errorf("Output = %v, want 2.4", res.Output)
		}
		if res.Text != "2 cL = 2.4 g" {
			t.Errorf("Text = %q", res.Text)
		}
	})
	t.Run("g to L", func(t *testing.T) {
		res, err := Convert(Input{Variant: GToL, Quantity: 50, Density: 0.8, Substance: "custom"}, i18n.EN)
		if err != nil {
			t.Fatal(err)
		}
		if !almostEqual(res.Output, 0.0625) {
			t.Errorf("Output = %v, want 0.0625", res.Output)
		}
	})
	t.Run("french formatting", func(t *testing.T) {
		res, err := Convert(Input{Variant: ClToG, Quantity: 2, Density: 1.2, Substance: "custom"}, i18n.FR)
		if err != nil {
			t.Fatal(err)
		}
		if res.Text != "2 cL = 2,4 g" {
			t.Errorf("Text = %q", res.Text)
		}
	})
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want error
	}{
		{"zero quantity", Input{Variant: ClToG, Quantity: 0, Density: 1, Substance: "custom"}, ErrInvalidNumbers},
		{"zero density", Input{Variant: GToCl, Quantity: 1, Density: 0, Substance: "custom"}, ErrInvalidNumbers},
		{"negative", Input{Variant: LToG, Quantity: -1, Density: 1, Substance: "custom"}, ErrInvalidNumbers},
		{"nan quantity", Input{Variant: GToL, Quantity: math.NaN(), Density: 1, Substance: "custom"}, ErrInvalidNumbers},
		{"inf density", Input{Variant: ClToG, Quantity: 1, Density: math.Inf(1), Substance: "custom"}, ErrInvalidNumbers},
		{"no substance", Input{Variant: ClToG, Quantity: 2, Density: 1}, ErrNoSubstance},
		{"no substance wins", Input{Variant: ClToG, Quantity: math.NaN(), Density: 0}, ErrNoSubstance},
		{"overflowing product", Input{Variant: ClToG, Quantity: 1e300, Density: 1e10, Substance: "custom"}, ErrInvalidNumbers},
		{"overflowing liters", Input{Variant: LToG, Quantity: 1e306, Density: 1, Substance: "custom"}, ErrInvalidNumbers},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Convert(tt.in, i18n.EN)
			if res != nil {
				t.Errorf("expected no result, got %+v", res)
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Message == "" {
				t.Errorf("expected a ValidationError with a message, got %v", err)
			}
		})
	}
}

func TestConvert_UnknownVariant(t *testing.T) {
	for _, v := range []Variant{"", "cl-to-oz"} {
		res, err := Convert(Input{Variant: v, Quantity: 1, Density: 1, Substance: "custom"}, i18n.EN)
		if res != nil || !errors.Is(err, ErrUnknownVariant) {
			t.Errorf("%q: got %+v, %v", v, res, err)
		}
	}
	for _, v := range Variants {
		if !v.Valid() {
			t.Errorf("%s.Valid() = false", v)
		}
	}
}

func TestConvert_FormMessages(t *testing.T) {
	cat := substance.Default()
	_, err := Convert(Resolve(ClToG, Form{Quantity: "abc", Substance: "water"}, cat), i18n.FR)
	if err == nil || err.Error() != "Veuillez entrer des nombres positifs valides pour le volume (cL) et la densité (g/cL)." {
		t.Errorf("err = %v", err)
	}
	_, err = Convert(Resolve(GToCl, Form{Quantity: "5", Substance: ""}, cat), i18n.FR)
	if err == nil || err.Error() != "Veuillez sélectionner une substance." {
		t.Errorf("err = %v", err)
	}
	_, err = Convert(Resolve(GToL, Form{Quantity: "5", Substance: "custom", Density: ""}, cat), i18n.EN)
	if err == nil || err.Error() != "Please enter valid positive numbers for the mass (g) and the density (g/cm³)." {
		t.Errorf("err = %v", err)
	}
}
