package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wayfarer/ucs"
)

func (a *app) tourCommand() *cobra.Command {
	var (
		from  string
		goals []string
		data  string
	)
	cmd := &cobra.Command{
		Use:   "tour",
		Short: "Visit several cities, always driving to the cheapest remaining one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := a.roads(cmd.Context(), data)
			if err != nil {
				return err
			}
			start := orDefault(from, a.cfg.DefaultStart)

			res, err := ucs.MultiGoal(ds.Graph, start, goals, ucs.WithContext(cmd.Context()))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for i, leg := range res.Legs {
				fmt.Fprintf(w, "%d. %s (%g): %s\n", i+1, leg.Goal, leg.Cost, leg.Path)
			}
			if !res.Found() {
				return fmt.Errorf("tour: remaining goals unreachable after %d legs from %s", len(res.Legs), start)
			}
			fmt.Fprintf(w, "total: %g over %d hops\n", res.Cost, res.Path.Hops())

			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&from, "from", "", "start city (default from config)")
	f.StringSliceVar(&goals, "goals", nil, "comma-separated cities to visit")
	f.StringVar(&data, "data", "", "road table (.yaml or .hcl)")
	_ = cmd.MarkFlagRequired("goals")

	return cmd
}
