package handlers

import (
	"encoding/json"
	"testing"

	"github.com/maruel/cltog/internal/server/dto"
	"github.com/maruel/cltog/internal/substance"
)

func TestSubstanceHandler_List(t *testing.T) {
	h := NewSubstanceHandler(substance.NewStore(substance.Default()))
	tests := []struct {
		name      string
		req       dto.ListSubstancesRequest
		unit      string
		water     float64
		waterName string
		custom    string
	}{
		{"default", dto.ListSubstancesRequest{}, "g/cL", 10, "Water", "Custom density"},
		{"liters", dto.ListSubstancesRequest{Variant: "g-to-l"}, "g/cm³", 1, "Water", "Custom density"},
		{"french", dto.ListSubstancesRequest{Variant: "g-to-cl", Lang: "fr"}, "g/cL", 10, "Eau", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := h.List(t.Context(), &tt.req)
			if err != nil {
				t.Fatal(err)
			}
			if resp.DensityUnit != tt.unit {
				t.Errorf("DensityUnit = %q, want %q", resp.DensityUnit, tt.unit)
			}
			if len(resp.Substances) != len(substance.Default().All()) {
				t.Fatalf("got %d substances", len(resp.Substances))
			}
			var customs int
			for _, s := range resp.Substances {
				switch {
				case s.Key == "water":
					if s.Density != tt.water || s.Label != tt.waterName {
						t.Errorf("water = %+v", s)
					}
				case s.Custom:
					customs++
					if s.Density != 0 {
						t.Errorf("custom entry has a density: %+v", s)
					}
					if tt.custom != "" && s.Label != tt.custom {
						t.Errorf("custom label = %q", s.Label)
					}
				}
			}
			if customs != 1 {
				t.Errorf("got %d custom entries", customs)
			}
		})
	}
}

func TestSubstanceHandler_Schema(t *testing.T) {
	h := NewSubstanceHandler(substance.NewStore(substance.Default()))
	raw, err := h.Schema(t.Context(), &dto.SubstanceSchemaRequest{})
	if err != nil {
		t.Fatal(err)
	}
	var schema map[string]any
	if err := json.Unmarshal(*raw, &schema); err != nil {
		t.Fatal(err)
	}
	if _, ok := schema["properties"]; !ok {
		t.Errorf("schema has no properties: %s", *raw)
	}
}
