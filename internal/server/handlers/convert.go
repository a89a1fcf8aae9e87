// Handles the conversion API.

package handlers

import (
	"context"
	"errors"

	"github.com/maruel/cltog/internal/convert"
	"github.com/maruel/cltog/internal/server/dto"
	"github.com/maruel/cltog/internal/substance"
)

// ConvertHandler runs conversions against the live substance catalog.
type ConvertHandler struct {
	substances *substance.Store
}

// NewConvertHandler creates a new convert handler.
func NewConvertHandler(s *substance.Store) *ConvertHandler {
	return &ConvertHandler{substances: s}
}

// Convert converts a quantity with the density of the selected substance.
//
// A missing substance or invalid numbers return a 400 carrying the same
// localized message the HTML form shows.
func (h *ConvertHandler) Convert(ctx context.Context, req *dto.ConvertRequest) (*dto.ConvertResponse, error) {
	v, err := convert.ParseVariant(req.Variant)
	if err != nil {
		return nil, dto.InvalidField("variant", err.Error())
	}
	lang := requestLang(ctx, req.Lang)
	in := convert.Resolve(v, convert.Form{Quantity: req.Quantity, Substance: req.Substance, Density: req.Density}, h.substances.Get())
	res, err := convert.Convert(in, lang)
	if err != nil {
		return nil, toAPIError(err)
	}
	return &dto.ConvertResponse{
		Variant:      string(v),
		Lang:         string(lang),
		Substance:    in.Substance,
		Quantity:     res.Quantity,
		QuantityUnit: v.InputUnit(),
		Density:      res.Density,
		DensityUnit:  v.DensityUnit(),
		Output:       res.Output,
		OutputUnit:   v.OutputUnit(),
		Text:         res.Text,
	}, nil
}

// toAPIError maps conversion validation errors to their API error code.
func toAPIError(err error) error {
	var ve *convert.ValidationError
	if !errors.As(err, &ve) {
		return dto.InternalWithError("conversion failed", err)
	}
	if errors.Is(err, convert.ErrNoSubstance) {
		return dto.NoSubstance(ve.Message)
	}
	return dto.InvalidNumbers(ve.Message)
}
