package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/philipparndt/goobj/internal/app"
	"github.com/philipparndt/goobj/internal/config"
	"github.com/philipparndt/goobj/internal/logging"
	"github.com/philipparndt/goobj/pkg/analysis"
	"github.com/philipparndt/goobj/pkg/mesh"
	"github.com/philipparndt/goobj/pkg/obj"
	"github.com/philipparndt/goobj/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// globalOptions holds the persistent flags and the settings resolved from
// them and the config file
type globalOptions struct {
	configPath string
	logLevel   string
	units      string
	strict     bool

	cfg      config.Config
	parse    obj.Options
	analysis analysis.Options
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "goobj",
		Short: "A CLI tool for inspecting and measuring OBJ meshes",
		Long: `goobj loads Wavefront OBJ meshes (or renders OpenSCAD sources to OBJ)
and reports their bounding box, enclosed volume and area projected onto the
XY plane. Coordinates are read as millimeters and reported in meters unless
--units m is given. The projected area defaults to the normal method with the
front cosine policy, so faces whose normal points away from +Z count zero.`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.resolve(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&g.configPath, "config", "", "Path to a goobj.toml config file")
	flags.StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.StringVar(&g.units, "units", "", "Input units: mm (scaled to meters) or m")
	flags.BoolVar(&g.strict, "strict", false, "Fail on malformed records instead of skipping them")

	cmd.AddCommand(
		newInfoCmd(g),
		newTransformCmd(g),
		newFacesCmd(g),
		newEdgesCmd(g),
		newNearestCmd(g),
		newWatchCmd(g),
		newCompletionCmd(),
	)
	// replaced by newCompletionCmd
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}

// resolve merges the config file with the flags given on the command line
// and installs the logger
func (g *globalOptions) resolve(cmd *cobra.Command) error {
	cfg, path, err := config.Resolve(g.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("units") {
		cfg.Units = g.units
	}
	if flags.Changed("strict") {
		cfg.Strict = g.strict
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = g.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Level()
	logging.Setup(cmd.ErrOrStderr(), level)
	if path != "" {
		slog.Debug("using config file", "path", path)
	}

	g.cfg = cfg
	g.parse, _ = cfg.ParseOptions()
	g.analysis, _ = cfg.AnalysisOptions()
	return nil
}

func (g *globalOptions) load(cmd *cobra.Command, path string) (*mesh.Mesh, error) {
	return app.LoadModel(cmd.Context(), path, g.parse)
}

// analysisFlags are the per-command overrides of the projected-area options
type analysisFlags struct {
	area   analysis.AreaMethod
	cosine analysis.CosinePolicy
}

func (a *analysisFlags) register(flags *pflag.FlagSet) {
	flags.Var(&a.area, "area", "Projected area method: normal or flat")
	flags.Var(&a.cosine, "cosine", "Cosine policy of the normal method: front (faces facing away from +Z count zero) or unsigned (|cos| for every face)")
}

func (a *analysisFlags) apply(flags *pflag.FlagSet, opts analysis.Options) analysis.Options {
	if flags.Changed("area") {
		opts.Area = a.area
	}
	if flags.Changed("cosine") {
		opts.Cosine = a.cosine
	}
	return opts
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
