package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/maruel/cltog/internal/convert"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMassVolume(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"water", []string{"mass", "2", "--substance", "water"}, "2 cL = 20 g\n"},
		{"reverse", []string{"volume", "20", "-s", "water"}, "20 g = 2 cL\n"},
		{"liters", []string{"mass", "1", "--liters", "-s", "water"}, "1 L = 1,000 g\n"},
		{"custom density", []string{"mass", "3", "--density", "2"}, "3 cL = 6 g\n"},
		{"comma decimal", []string{"mass", "1,5", "-d", "2"}, "1.5 cL = 3 g\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.args...)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMassVolume_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"no substance", []string{"mass", "2"}, convert.ErrNoSubstance},
		{"unknown substance", []string{"mass", "2", "-s", "unobtainium"}, convert.ErrNoSubstance},
		{"bad quantity", []string{"volume", "abc", "-s", "water"}, convert.ErrInvalidNumbers},
		{"negative density", []string{"mass", "2", "-d", "-1"}, convert.ErrInvalidNumbers},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
	if _, err := run(t, "mass"); err == nil {
		t.Error("missing quantity: expected error")
	}
	if _, err := run(t, "--lang", "nl", "substances"); err == nil {
		t.Error("unsupported language: expected error")
	}
}

func TestMassVolume_Localized(t *testing.T) {
	_, err := run(t, "--lang", "fr", "mass", "2")
	if err == nil || err.Error() == "" {
		t.Fatal("expected a localized error")
	}
	if !errors.Is(err, convert.ErrNoSubstance) {
		t.Errorf("err = %v", err)
	}
	if strings.Contains(err.Error(), "Please select") {
		t.Errorf("message not localized: %q", err.Error())
	}
}

func TestMassVolume_JSON(t *testing.T) {
	out, err := run(t, "mass", "2", "-s", "water", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var got struct {
		Variant     string  `json:"variant"`
		Substance   string  `json:"substance"`
		Density     float64 `json:"density"`
		DensityUnit string  `json:"density_unit"`
		Output      float64 `json:"output"`
		OutputUnit  string  `json:"output_unit"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatal(err)
	}
	if got.Variant != "cl-to-g" || got.Substance != "water" || got.Density != 10 || got.DensityUnit != "g/cL" || got.Output != 20 || got.OutputUnit != "g" {
		t.Errorf("got %+v", got)
	}
}

func TestSubstances(t *testing.T) {
	out, err := run(t, "substances")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"water", "Water", "10 g/cL", "custom", "Custom density"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	out, err = run(t, "--lang", "fr", "substances", "--liters")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Eau") || !strings.Contains(out, "1 g/cm³") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestSubstances_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "substances.yaml")
	data := "version: 1\nsubstances:\n  - key: lead\n    density: 11.34\n    labels:\n      en: Lead\n  - key: custom\n    custom: true\n"
	if err := os.WriteFile(p, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "--substances", p, "mass", "1", "-s", "lead")
	if err != nil {
		t.Fatal(err)
	}
	if out != "1 cL = 113.4 g\n" {
		t.Errorf("got %q", out)
	}
	if _, err := run(t, "--substances", filepath.Join(t.TempDir(), "missing.yaml"), "substances"); err == nil {
		t.Error("expected error")
	}
}
