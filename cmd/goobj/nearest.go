package main

import (
	"errors"
	"fmt"

	"github.com/philipparndt/goobj/pkg/analysis"
	"github.com/philipparndt/goobj/pkg/geometry"
	"github.com/spf13/cobra"
)

func newNearestCmd(g *globalOptions) *cobra.Command {
	var x, y, z float64

	cmd := &cobra.Command{
		Use:   "nearest [file]",
		Short: "Find the vertex nearest to a point",
		Long:  "Find the model vertex closest to a point given in meters and report its index, position and distance.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			point := geometry.NewVector3(x, y, z)

			m, err := g.load(cmd, args[0])
			if err != nil {
				return err
			}

			index, vertex, distance := analysis.FindNearestVertex(m, point)
			if index < 0 {
				return errors.New("model has no vertices")
			}

			fmt.Fprintln(out, "Nearest Vertex")
			fmt.Fprintln(out, "==============")
			fmt.Fprintf(out, "Point: %s\n", analysis.FormatVector(point))
			fmt.Fprintf(out, "Vertex #%d: %s\n", index, analysis.FormatVector(vertex))
			fmt.Fprintf(out, "Distance: %s\n", analysis.FormatMeasurement(distance, analysis.UnitLength))
			return nil
		},
	}

	cmd.Flags().Float64Var(&x, "x", 0.0, "X coordinate of the point in meters")
	cmd.Flags().Float64Var(&y, "y", 0.0, "Y coordinate of the point in meters")
	cmd.Flags().Float64Var(&z, "z", 0.0, "Z coordinate of the point in meters")
	cmd.MarkFlagsRequiredTogether("x", "y", "z")

	return cmd
}
