package main

import (
	"fmt"
	"math"

	"github.com/philipparndt/goobj/pkg/analysis"
	"github.com/spf13/cobra"
)

func newFacesCmd(g *globalOptions) *cobra.Command {
	var (
		af       analysisFlags
		count    int
		largest  bool
		smallest bool
	)

	cmd := &cobra.Command{
		Use:   "faces [file]",
		Short: "Analyze the faces of a model",
		Long:  "Display per-face information including vertex count, area, projected area and perimeter.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			m, err := g.load(cmd, args[0])
			if err != nil {
				return err
			}

			faces := analysis.AnalyzeFaces(m, af.apply(cmd.Flags(), g.analysis))

			totalArea, totalProjected := 0.0, 0.0
			minArea, maxArea := math.MaxFloat64, 0.0
			for _, f := range faces {
				totalArea += f.Area
				totalProjected += f.ProjectedArea
				minArea = math.Min(minArea, f.Area)
				maxArea = math.Max(maxArea, f.Area)
			}

			var title string
			switch {
			case largest:
				analysis.SortFacesByArea(faces, true)
				title = fmt.Sprintf("Top %d Largest Faces", count)
			case smallest:
				analysis.SortFacesByArea(faces, false)
				title = fmt.Sprintf("Top %d Smallest Faces", count)
			default:
				title = fmt.Sprintf("First %d Faces", count)
			}

			fmt.Fprintln(out, title)
			fmt.Fprintln(out, "====================")
			fmt.Fprintf(out, "Total faces: %d (%d skipped as degenerate)\n", len(faces), m.FaceCount()-len(faces))
			if len(faces) == 0 {
				return nil
			}
			fmt.Fprintf(out, "Total surface area: %s\n", analysis.FormatMeasurement(totalArea, analysis.UnitArea))
			fmt.Fprintf(out, "Total projected area: %s\n", analysis.FormatMeasurement(totalProjected, analysis.UnitArea))
			fmt.Fprintf(out, "Min face area: %s\n", analysis.FormatMeasurement(minArea, analysis.UnitArea))
			fmt.Fprintf(out, "Max face area: %s\n", analysis.FormatMeasurement(maxArea, analysis.UnitArea))
			fmt.Fprintf(out, "Avg face area: %s\n\n", analysis.FormatMeasurement(totalArea/float64(len(faces)), analysis.UnitArea))

			for i := 0; i < count && i < len(faces); i++ {
				f := faces[i]
				fmt.Fprintf(out, "Face #%d (%d vertices):\n", f.Index, f.VertexCount)
				fmt.Fprintf(out, "  Area: %s\n", analysis.FormatMeasurement(f.Area, analysis.UnitArea))
				fmt.Fprintf(out, "  Projected Area: %s\n", analysis.FormatMeasurement(f.ProjectedArea, analysis.UnitArea))
				fmt.Fprintf(out, "  Perimeter: %s\n\n", analysis.FormatMeasurement(f.Perimeter, analysis.UnitLength))
			}
			return nil
		},
	}

	af.register(cmd.Flags())
	cmd.Flags().IntVarP(&count, "count", "n", 10, "Number of faces to display")
	cmd.Flags().BoolVarP(&largest, "largest", "l", false, "Show largest faces by area")
	cmd.Flags().BoolVarP(&smallest, "smallest", "s", false, "Show smallest faces by area")
	cmd.MarkFlagsMutuallyExclusive("largest", "smallest")

	return cmd
}
