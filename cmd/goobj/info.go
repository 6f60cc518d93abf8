package main

import (
	"encoding/json"
	"fmt"

	"github.com/philipparndt/goobj/pkg/analysis"
	"github.com/philipparndt/goobj/pkg/mesh"
	"github.com/spf13/cobra"
)

// infoReport is the JSON form of the info command
type infoReport struct {
	File        string                      `json:"file"`
	Result      *analysis.MeasurementResult `json:"result"`
	Diagnostics []string                    `json:"diagnostics"`
}

func newInfoCmd(g *globalOptions) *cobra.Command {
	var (
		af      analysisFlags
		asJSON  bool
		summary bool
	)

	cmd := &cobra.Command{
		Use:   "info [file]",
		Short: "Display dimensions, volume and projected area of a model",
		Long:  "Load an OBJ or OpenSCAD file and show its mesh statistics, bounding box, dimensions, volume and XY-projected area.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			m, err := g.load(cmd, filename)
			if err != nil {
				return err
			}

			result := analysis.AnalyzeMesh(m, af.apply(cmd.Flags(), g.analysis))
			switch {
			case asJSON:
				return writeJSON(cmd, filename, m, result)
			case summary:
				_, err := fmt.Fprintln(cmd.OutOrStdout(), analysis.Summary(result))
				return err
			default:
				return analysis.WriteReport(cmd.OutOrStdout(), filename, result)
			}
		},
	}

	af.register(cmd.Flags())
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	cmd.Flags().BoolVar(&summary, "summary", false, "Print a single summary line")
	cmd.MarkFlagsMutuallyExclusive("json", "summary")

	return cmd
}

func writeJSON(cmd *cobra.Command, filename string, m *mesh.Mesh, result *analysis.MeasurementResult) error {
	report := infoReport{
		File:        filename,
		Result:      result,
		Diagnostics: make([]string, 0, len(m.Diagnostics())),
	}
	for _, d := range m.Diagnostics() {
		report.Diagnostics = append(report.Diagnostics, d.Error())
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
