package main

import (
	"fmt"

	"github.com/philipparndt/goobj/pkg/analysis"
	"github.com/philipparndt/goobj/pkg/geometry"
	"github.com/spf13/cobra"
)

func newTransformCmd(g *globalOptions) *cobra.Command {
	var (
		af         analysisFlags
		rx, ry, rz float64
		dx, dy, dz float64
		center     bool
		vertices   int
	)

	cmd := &cobra.Command{
		Use:   "transform [file]",
		Short: "Rotate and translate a model, then measure it",
		Long: `Apply a rigid transform to a model and report the measurements of the result.
Rotations are in degrees and applied around X, then Y, then Z. Translation is in
meters and applied after the rotation. --center first moves the bounding-box
center to the origin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			out := cmd.OutOrStdout()

			m, err := g.load(cmd, filename)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, "Transform")
			fmt.Fprintln(out, "=========")
			if center {
				offset := m.CenterAtOrigin()
				fmt.Fprintf(out, "Centered: moved by %s\n", analysis.FormatVector(offset))
			}
			m.Rotate(rx, ry, rz)
			m.Translate(dx, dy, dz)
			fmt.Fprintf(out, "Rotation: X %.2f° Y %.2f° Z %.2f°\n", rx, ry, rz)
			fmt.Fprintf(out, "Translation: %s\n\n", analysis.FormatVector(geometry.NewVector3(dx, dy, dz)))

			result := analysis.AnalyzeMesh(m, af.apply(cmd.Flags(), g.analysis))
			if err := analysis.WriteReport(out, filename, result); err != nil {
				return err
			}

			if vertices > 0 {
				all := m.Vertices()
				n := min(vertices, len(all))
				fmt.Fprintf(out, "\nFirst %d of %d vertices:\n", n, len(all))
				for i := 0; i < n; i++ {
					fmt.Fprintf(out, "  #%d: %s\n", i, analysis.FormatVector(all[i]))
				}
			}
			return nil
		},
	}

	af.register(cmd.Flags())
	cmd.Flags().Float64Var(&rx, "rx", 0.0, "Rotation around X in degrees")
	cmd.Flags().Float64Var(&ry, "ry", 0.0, "Rotation around Y in degrees")
	cmd.Flags().Float64Var(&rz, "rz", 0.0, "Rotation around Z in degrees")
	cmd.Flags().Float64Var(&dx, "dx", 0.0, "Translation along X in meters")
	cmd.Flags().Float64Var(&dy, "dy", 0.0, "Translation along Y in meters")
	cmd.Flags().Float64Var(&dz, "dz", 0.0, "Translation along Z in meters")
	cmd.Flags().BoolVar(&center, "center", false, "Move the bounding-box center to the origin first")
	cmd.Flags().IntVarP(&vertices, "vertices", "n", 0, "Print the first N transformed vertices")

	return cmd
}
