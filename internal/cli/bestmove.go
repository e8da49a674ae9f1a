package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wayfarer/internal/ctxlog"
	"github.com/katalvlaran/wayfarer/minimax"
)

func (a *app) bestMoveCommand() *cobra.Command {
	var (
		from     string
		data     string
		maxDepth int
	)
	cmd := &cobra.Command{
		Use:   "best-move",
		Short: "Pick the maximizing player's move in the travel game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			ds, err := a.game(ctx, data)
			if err != nil {
				return err
			}
			start := orDefault(from, a.cfg.DefaultStart)

			logger := ctxlog.FromContext(ctx)
			m, err := minimax.BestMove(ds.Graph, start,
				minimax.WithContext(ctx),
				minimax.WithMaxDepth(maxDepth),
				minimax.WithOnLeaf(func(id string, depth int, value float64) {
					logger.Debug("Leaf", "city", id, "depth", depth, "value", value)
				}),
			)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if !m.Found() {
				fmt.Fprintf(w, "no winning move from %s\n", start)
				return nil
			}
			fmt.Fprintf(w, "best move: %s (%g)\n", m.To, m.Value)
			for _, c := range m.Candidates {
				fmt.Fprintf(w, "  %s %g\n", c.To, c.Value)
			}

			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&from, "from", "", "current city (default from config)")
	f.StringVar(&data, "data", "", "game table (.yaml or .hcl)")
	f.IntVar(&maxDepth, "max-depth", 0, "maximum search depth, 0 for unlimited")

	return cmd
}
