// Defines API request types with validation.

package dto

import (
	"github.com/maruel/cltog/internal/convert"
	"github.com/maruel/cltog/internal/i18n"
)

// HealthRequest is a request to check system health.
type HealthRequest struct{}

// Validate validates the health request (always valid).
func (r *HealthRequest) Validate() error {
	return nil
}

// ConvertRequest is a request to run a conversion.
//
// Fields are read from the query string on GET and from the JSON body on POST.
// Quantity and Density are kept as typed by the user so they go through the
// same parsing as the HTML form.
type ConvertRequest struct {
	Variant   string `query:"variant" json:"variant"`
	Quantity  string `query:"quantity" json:"quantity"`
	Substance string `query:"substance" json:"substance"`
	Density   string `query:"density" json:"density,omitempty"`
	Lang      string `query:"lang" json:"lang,omitempty"`
}

// Validate validates the convert request fields.
//
// Only the envelope is checked here. Missing substance and invalid numbers are
// conversion outcomes reported by the handler with their localized message.
func (r *ConvertRequest) Validate() error {
	if r.Variant == "" {
		return MissingField("variant")
	}
	if _, err := convert.ParseVariant(r.Variant); err != nil {
		return InvalidField("variant", err.Error())
	}
	return validateLang(r.Lang)
}

// ListSubstancesRequest is a request to list the substance catalog.
type ListSubstancesRequest struct {
	Variant string `query:"variant"`
	Lang    string `query:"lang"`
}

// Validate validates the list substances request fields.
func (r *ListSubstancesRequest) Validate() error {
	if r.Variant != "" {
		if _, err := convert.ParseVariant(r.Variant); err != nil {
			return InvalidField("variant", err.Error())
		}
	}
	return validateLang(r.Lang)
}

// SubstanceSchemaRequest is a request for the JSON schema of substance files.
type SubstanceSchemaRequest struct{}

// Validate validates the schema request (always valid).
func (r *SubstanceSchemaRequest) Validate() error {
	return nil
}

func validateLang(s string) error {
	if s == "" {
		return nil
	}
	if _, ok := i18n.Parse(s); !ok {
		return InvalidField("lang", "unsupported language "+s)
	}
	return nil
}
