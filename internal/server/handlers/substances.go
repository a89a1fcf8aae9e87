// Handles the substance catalog API.

package handlers

import (
	"context"
	"encoding/json"

	"github.com/maruel/cltog/internal/convert"
	"github.com/maruel/cltog/internal/server/dto"
	"github.com/maruel/cltog/internal/substance"
)

// SubstanceHandler exposes the substance catalog.
type SubstanceHandler struct {
	substances *substance.Store
	schema     json.RawMessage
}

// NewSubstanceHandler creates a new substance handler.
func NewSubstanceHandler(s *substance.Store) *SubstanceHandler {
	return &SubstanceHandler{substances: s, schema: substance.Schema()}
}

// List returns the catalog localized for the request.
//
// Densities are in the variant's density unit, g/cL unless a liter variant is
// requested.
func (h *SubstanceHandler) List(ctx context.Context, req *dto.ListSubstancesRequest) (*dto.ListSubstancesResponse, error) {
	v := convert.ClToG
	if req.Variant != "" {
		var err error
		if v, err = convert.ParseVariant(req.Variant); err != nil {
			return nil, dto.InvalidField("variant", err.Error())
		}
	}
	lang := requestLang(ctx, req.Lang)
	m := lang.Messages()
	all := h.substances.Get().All()
	resp := &dto.ListSubstancesResponse{
		Lang:        string(lang),
		DensityUnit: v.DensityUnit(),
		Substances:  make([]dto.SubstanceResponse, 0, len(all)),
	}
	for i := range all {
		s := &all[i]
		if s.Custom {
			resp.Substances = append(resp.Substances, dto.SubstanceResponse{Key: s.Key, Label: m.CustomSubstance, Custom: true})
			continue
		}
		resp.Substances = append(resp.Substances, dto.SubstanceResponse{
			Key:     s.Key,
			Label:   s.Label(lang),
			Density: v.DensityFromGPerCm3(s.Density),
		})
	}
	return resp, nil
}

// Schema returns the JSON schema of substance catalog files.
func (h *SubstanceHandler) Schema(ctx context.Context, _ *dto.SubstanceSchemaRequest) (*json.RawMessage, error) {
	return &h.schema, nil
}
