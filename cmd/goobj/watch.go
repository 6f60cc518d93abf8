package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/philipparndt/goobj/internal/app"
	"github.com/philipparndt/goobj/pkg/analysis"
	"github.com/philipparndt/goobj/pkg/mesh"
	"github.com/spf13/cobra"
)

func newWatchCmd(g *globalOptions) *cobra.Command {
	var (
		af       analysisFlags
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch [file]",
		Short: "Print a summary every time a model changes",
		Long: `Watch a model file, and for OpenSCAD sources every file it uses or includes,
and print a one-line summary after each change. Stops on Ctrl+C.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			out := cmd.OutOrStdout()
			opts := af.apply(cmd.Flags(), g.analysis)

			if !cmd.Flags().Changed("debounce") {
				debounce, _ = g.cfg.Debounce()
			}

			report := func(m *mesh.Mesh, err error) {
				if err != nil {
					slog.Error("failed to load model", "path", filename, "error", err)
					return
				}
				result := analysis.AnalyzeMesh(m, opts)
				fmt.Fprintf(out, "[%s] %s\n", time.Now().Format(time.TimeOnly), analysis.Summary(result))
			}

			return app.Watch(cmd.Context(), filename, g.parse, debounce, report)
		},
	}

	af.register(cmd.Flags())
	cmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "Delay after the last change before reloading")

	return cmd
}
