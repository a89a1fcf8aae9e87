package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/maruel/cltog/internal/convert"
)

func substancesCmd(o *options) *cobra.Command {
	var liters bool
	cmd := &cobra.Command{
		Use:   "substances",
		Short: "List the substances and their densities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := convert.ClToG
			if liters {
				v = convert.LToG
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, s := range o.cat.All() {
				label, d := s.Label(o.l), "-"
				if s.Custom {
					label = o.l.Messages().CustomSubstance
				} else {
					d = o.l.FormatNumber(v.DensityFromGPerCm3(s.Density)) + " " + v.DensityUnit()
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Key, label, d)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVarP(&liters, "liters", "L", false, "show densities in g/cm³ instead of g/cL")
	return cmd
}
