package cli

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/spf13/cobra"
)

func (a *app) nearestCommand() *cobra.Command {
	var (
		lat, lon float64
		within   float64
		data     string
	)
	cmd := &cobra.Command{
		Use:   "nearest",
		Short: "Find the city closest to a coordinate",
		Long: `Find the city closest to a coordinate. With --within, list every city
inside that radius instead, closest first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := a.roads(cmd.Context(), data)
			if err != nil {
				return err
			}
			ix := ds.Index()
			p := orb.Point{lon, lat}
			w := cmd.OutOrStdout()

			if within > 0 {
				for _, h := range ix.Within(p, within) {
					fmt.Fprintf(w, "%s %.1f km\n", h.ID, h.Distance)
				}
				return nil
			}

			h, err := ix.Nearest(p)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s %.1f km\n", h.ID, h.Distance)

			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&lat, "lat", 0, "latitude in degrees")
	f.Float64Var(&lon, "lon", 0, "longitude in degrees")
	f.Float64Var(&within, "within", 0, "list cities within this many kilometres")
	f.StringVar(&data, "data", "", "road table (.yaml or .hcl)")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")

	return cmd
}
