package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maruel/cltog/internal/convert"
	"github.com/maruel/cltog/internal/substance"
)

func massCmd(o *options) *cobra.Command {
	return conversionCmd(o, "mass <volume>", "Convert a volume to grams, e.g. mass 2 --substance milk", convert.ClToG, convert.LToG)
}

func volumeCmd(o *options) *cobra.Command {
	return conversionCmd(o, "volume <grams>", "Convert grams to a volume, e.g. volume 250 --substance flour", convert.GToCl, convert.GToL)
}

// conversionCmd builds a subcommand running cl when --liters is unset and l
// otherwise.
func conversionCmd(o *options, use, short string, cl, l convert.Variant) *cobra.Command {
	var (
		substanceKey string
		density      string
		liters       bool
		asJSON       bool
	)
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := cl
			if liters {
				v = l
			}
			if substanceKey == "" && density != "" {
				substanceKey = substance.CustomKey
			}
			in := convert.Resolve(v, convert.Form{Quantity: args[0], Substance: substanceKey, Density: density}, o.cat)
			res, err := convert.Convert(in, o.l)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !asJSON {
				_, err = fmt.Fprintln(out, res.Text)
				return err
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Variant     convert.Variant `json:"variant"`
				Substance   string          `json:"substance"`
				Quantity    float64         `json:"quantity"`
				Density     float64         `json:"density"`
				DensityUnit string          `json:"density_unit"`
				Output      float64         `json:"output"`
				OutputUnit  string          `json:"output_unit"`
				Text        string          `json:"text"`
			}{v, in.Substance, res.Quantity, res.Density, v.DensityUnit(), res.Output, v.OutputUnit(), res.Text})
		},
	}
	cmd.Flags().StringVarP(&substanceKey, "substance", "s", "", "substance key (see the substances command)")
	cmd.Flags().StringVarP(&density, "density", "d", "", "custom density, in g/cL or in g/cm³ with --liters; implies --substance custom")
	cmd.Flags().BoolVarP(&liters, "liters", "L", false, "use liters instead of centiliters")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}
