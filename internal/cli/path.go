package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wayfarer/core"
	"github.com/katalvlaran/wayfarer/dataset"
	"github.com/katalvlaran/wayfarer/geo"
	"github.com/katalvlaran/wayfarer/internal/ctxlog"
	"github.com/katalvlaran/wayfarer/render"
	"github.com/katalvlaran/wayfarer/search"
)

func (a *app) pathCommand() *cobra.Command {
	var (
		strategy    string
		from, to    string
		data        string
		dot         string
		skipBlocked bool
	)
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Find a route between two cities",
		Long: `Find a route between two cities with the chosen strategy.

A* uses the great-circle distance to the goal when every city has
coordinates, and the heuristic stored in the table otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			s, err := search.ParseStrategy(strategy)
			if err != nil {
				return err
			}
			ds, err := a.roads(ctx, data)
			if err != nil {
				return err
			}
			start, goal := orDefault(from, a.cfg.DefaultStart), orDefault(to, a.cfg.DefaultGoal)

			var opts []search.Option
			if skipBlocked {
				opts = append(opts, search.WithSkipBlocked())
			}
			if s == search.AStar && len(ds.Coordinates) == ds.Graph.VertexCount() {
				opts = append(opts, search.WithHeuristic(geo.StraightLine(ds.Coordinates, goal)))
			}

			ctxlog.FromContext(ctx).Info("Searching", "strategy", s, "from", start, "to", goal)
			out, err := search.Find(ctx, ds.Graph, s, start, goal, opts...)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.Found {
				fmt.Fprintf(w, "%s: %s\n", s, out.Path)
				fmt.Fprintf(w, "hops: %d, cost: %g\n", out.Path.Hops(), out.Cost)
			} else {
				fmt.Fprintf(w, "%s: no path from %s to %s\n", s, start, goal)
			}
			if dot == "" {
				return nil
			}

			return writeDOT(ctx, w, dot, ds, out.Path)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&strategy, "strategy", "s", string(search.UCS), "search strategy: bfs, dfs, ucs or astar")
	f.StringVar(&from, "from", "", "start city (default from config)")
	f.StringVar(&to, "to", "", "goal city (default from config)")
	f.StringVar(&data, "data", "", "road table (.yaml or .hcl)")
	f.StringVar(&dot, "dot", "", `write the graph as Graphviz DOT to this file ("-" for stdout)`)
	f.BoolVar(&skipBlocked, "skip-blocked", false, "ignore blocked roads")

	return cmd
}

// writeDOT renders ds with path highlighted to dst, or to stdout for "-".
func writeDOT(ctx context.Context, stdout io.Writer, dst string, ds *dataset.Dataset, path core.Path) error {
	opts := []render.Option{render.WithTitle(ds.Name), render.WithCoordinates(ds.Coordinates)}
	if dst == "-" {
		return render.DOT(stdout, ds.Graph, path, opts...)
	}

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("dot: %w", err)
	}
	if err := render.DOT(f, ds.Graph, path, opts...); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("dot: %w", err)
	}
	ctxlog.FromContext(ctx).Info("Wrote DOT", "path", dst)

	return nil
}
