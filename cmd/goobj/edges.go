package main

import (
	"errors"
	"fmt"

	"github.com/philipparndt/goobj/pkg/analysis"
	"github.com/spf13/cobra"
)

func newEdgesCmd(g *globalOptions) *cobra.Command {
	var (
		count     int
		longest   bool
		shortest  bool
		minLength float64
		maxLength float64
	)

	cmd := &cobra.Command{
		Use:   "edges [file]",
		Short: "Analyze and measure the edges of a model",
		Long:  "List the unique polygon edges of a model, the longest, the shortest, or those within a length range, and check that the mesh is closed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if count < 0 {
				return errors.New("--count must not be negative")
			}

			m, err := g.load(cmd, args[0])
			if err != nil {
				return err
			}

			stats := analysis.AnalyzeEdges(m)

			var (
				edges []analysis.EdgeInfo
				title string
			)
			switch {
			case longest:
				edges = analysis.FindLongestEdges(stats.Edges, count)
				title = fmt.Sprintf("Top %d Longest Edges", len(edges))
			case shortest:
				edges = analysis.FindShortestEdges(stats.Edges, count)
				title = fmt.Sprintf("Top %d Shortest Edges", len(edges))
			case maxLength > 0:
				edges = analysis.FindEdgesByLength(stats.Edges, minLength, maxLength)
				title = fmt.Sprintf("Edges between %.6f and %.6f m (found %d)", minLength, maxLength, len(edges))
				edges = edges[:min(count, len(edges))]
			default:
				edges = stats.Edges[:min(count, len(stats.Edges))]
				title = fmt.Sprintf("All Edges (showing first %d of %d)", len(edges), len(stats.Edges))
			}

			closed := "no"
			if stats.Closed() {
				closed = "yes"
			}

			fmt.Fprintln(out, title)
			fmt.Fprintln(out, "====================")
			fmt.Fprintf(out, "Total edges in model: %d\n", len(stats.Edges))
			fmt.Fprintf(out, "Boundary edges: %d\n", stats.Boundary)
			fmt.Fprintf(out, "Non-manifold edges: %d\n", stats.NonManifold)
			fmt.Fprintf(out, "Closed: %s\n", closed)
			fmt.Fprintf(out, "Min edge length: %s\n", analysis.FormatMeasurement(stats.Min, analysis.UnitLength))
			fmt.Fprintf(out, "Max edge length: %s\n", analysis.FormatMeasurement(stats.Max, analysis.UnitLength))
			fmt.Fprintf(out, "Avg edge length: %s\n\n", analysis.FormatMeasurement(stats.Avg, analysis.UnitLength))

			if len(edges) == 0 {
				fmt.Fprintln(out, "No edges found matching the criteria.")
				return nil
			}

			fmt.Fprintf(out, "%-12s %-35s %-35s %-15s\n", "Vertices", "Start", "End", "Length")
			fmt.Fprintln(out, "-----------------------------------------------------------------------------------------------------")
			for _, e := range edges {
				fmt.Fprintf(out, "%-12s %-35s %-35s %-15.6f\n",
					fmt.Sprintf("%d-%d", e.From, e.To),
					analysis.FormatVector(e.Start),
					analysis.FormatVector(e.End),
					e.Length)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10, "Number of edges to display")
	cmd.Flags().BoolVarP(&longest, "longest", "l", false, "Show longest edges")
	cmd.Flags().BoolVarP(&shortest, "shortest", "s", false, "Show shortest edges")
	cmd.Flags().Float64Var(&minLength, "min", 0.0, "Minimum edge length filter in meters")
	cmd.Flags().Float64Var(&maxLength, "max", 0.0, "Maximum edge length filter in meters")
	cmd.MarkFlagsMutuallyExclusive("longest", "shortest")

	return cmd
}
