// Defines API response types.

package dto

// HealthResponse is a response from the health check.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ConvertResponse is a successful conversion.
type ConvertResponse struct {
	Variant      string  `json:"variant"`
	Lang         string  `json:"lang"`
	Substance    string  `json:"substance"`
	Quantity     float64 `json:"quantity"`
	QuantityUnit string  `json:"quantity_unit"`
	Density      float64 `json:"density"`
	DensityUnit  string  `json:"density_unit"`
	Output       float64 `json:"output"`
	OutputUnit   string  `json:"output_unit"`
	// Text is the localized display string, e.g. "2 cL = 2.4 g".
	Text string `json:"text"`
}

// SubstanceResponse is one entry of the catalog.
type SubstanceResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	// Density is expressed in the requested variant's density unit. It is
	// omitted for the custom entry.
	Density float64 `json:"density,omitempty"`
	Custom  bool    `json:"custom,omitempty"`
}

// ListSubstancesResponse is the catalog localized for a language and variant.
type ListSubstancesResponse struct {
	Lang        string              `json:"lang"`
	DensityUnit string              `json:"density_unit"`
	Substances  []SubstanceResponse `json:"substances"`
}
