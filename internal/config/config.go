package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/goobj/internal/logging"
	"github.com/philipparndt/goobj/pkg/analysis"
	"github.com/philipparndt/goobj/pkg/obj"
)

// FileName is the config file looked up in the working directory and the
// user config directory
const FileName = "goobj.toml"

// ErrInvalid is wrapped by every validation error
var ErrInvalid = errors.New("invalid configuration")

// Config holds the user-tunable defaults for loading and analysis
type Config struct {
	Units        string      `toml:"units"`
	Strict       bool        `toml:"strict"`
	AreaMethod   string      `toml:"area_method"`
	CosinePolicy string      `toml:"cosine_policy"`
	LogLevel     string      `toml:"log_level"`
	Watch        WatchConfig `toml:"watch"`
}

// WatchConfig configures the watch command
type WatchConfig struct {
	Debounce string `toml:"debounce"`
}

// Default returns millimeter input, face-normal projection counting front
// faces, and a 500ms watch debounce
func Default() Config {
	return Config{
		Units:        "mm",
		AreaMethod:   analysis.AreaNormal.String(),
		CosinePolicy: analysis.CosineFrontFacing.String(),
		LogLevel:     "info",
		Watch:        WatchConfig{Debounce: "500ms"},
	}
}

// Load reads a TOML file on top of the defaults
func Load(path string) (Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	for _, key := range meta.Undecoded() {
		slog.Warn("unknown config key", "file", path, "key", key.String())
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads the explicit path if given, otherwise the first FileName
// found in the working directory or the user config directory. Without
// any file the defaults are returned.
func Resolve(explicit string) (Config, string, error) {
	if explicit != "" {
		cfg, err := Load(explicit)
		return cfg, explicit, err
	}

	for _, candidate := range searchPaths() {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		cfg, err := Load(candidate)
		return cfg, candidate, err
	}

	return Default(), "", nil
}

func searchPaths() []string {
	paths := []string{FileName}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "goobj", FileName))
	}
	return paths
}

// Validate checks every enumerated value
func (c Config) Validate() error {
	if _, err := c.ParseOptions(); err != nil {
		return err
	}
	if _, err := c.AnalysisOptions(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.Debounce(); err != nil {
		return err
	}
	return nil
}

// Scale converts the units setting into a coordinate multiplier
func (c Config) Scale() (float64, error) {
	switch c.Units {
	case "mm", "":
		return obj.MillimetersToMeters, nil
	case "m":
		return 1, nil
	default:
		return 0, fmt.Errorf("%w: units %q (expected mm or m)", ErrInvalid, c.Units)
	}
}

// ParseOptions returns the loader options
func (c Config) ParseOptions() (obj.Options, error) {
	scale, err := c.Scale()
	if err != nil {
		return obj.Options{}, err
	}
	return obj.Options{Scale: scale, Strict: c.Strict}, nil
}

// AnalysisOptions returns the projected-area options
func (c Config) AnalysisOptions() (analysis.Options, error) {
	opts := analysis.DefaultOptions()
	if c.AreaMethod != "" {
		if err := opts.Area.Set(c.AreaMethod); err != nil {
			return opts, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}
	if c.CosinePolicy != "" {
		if err := opts.Cosine.Set(c.CosinePolicy); err != nil {
			return opts, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}
	return opts, nil
}

// Level returns the slog level for LogLevel
func (c Config) Level() (slog.Level, error) {
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return level, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return level, nil
}

// Debounce returns the watch debounce interval
func (c Config) Debounce() (time.Duration, error) {
	if c.Watch.Debounce == "" {
		return 500 * time.Millisecond, nil
	}
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: watch debounce %q", ErrInvalid, c.Watch.Debounce)
	}
	return d, nil
}
