package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wayfarer/dataset"
)

func (a *app) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check that a road or game table loads",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := dataset.LoadFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d cities, %d roads\n", ds.Name, ds.Graph.VertexCount(), ds.Graph.EdgeCount())

			return nil
		},
	}
}
