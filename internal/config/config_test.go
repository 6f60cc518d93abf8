package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/philipparndt/goobj/pkg/analysis"
	"github.com/philipparndt/goobj/pkg/obj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	parseOpts, err := cfg.ParseOptions()
	require.NoError(t, err)
	assert.Equal(t, obj.DefaultOptions(), parseOpts)

	analysisOpts, err := cfg.AnalysisOptions()
	require.NoError(t, err)
	assert.Equal(t, analysis.DefaultOptions(), analysisOpts)

	debounce, err := cfg.Debounce()
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, debounce)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
units = "m"
strict = true
area_method = "flat"
cosine_policy = "unsigned"
log_level = "debug"

[watch]
debounce = "2s"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	parseOpts, err := cfg.ParseOptions()
	require.NoError(t, err)
	assert.Equal(t, obj.Options{Scale: 1, Strict: true}, parseOpts)

	analysisOpts, err := cfg.AnalysisOptions()
	require.NoError(t, err)
	assert.Equal(t, analysis.Options{Area: analysis.AreaFlat, Cosine: analysis.CosineUnsigned}, analysisOpts)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	debounce, err := cfg.Debounce()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, debounce)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `cosine_policy = "unsigned"`))
	require.NoError(t, err)

	assert.Equal(t, "mm", cfg.Units)
	assert.Equal(t, "normal", cfg.AreaMethod)
	assert.Equal(t, "unsigned", cfg.CosinePolicy)
	assert.Equal(t, "500ms", cfg.Watch.Debounce)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"units", `units = "inch"`},
		{"area", `area_method = "shadow"`},
		{"cosine", `cosine_policy = "signed"`},
		{"log level", `log_level = "loud"`},
		{"debounce", "[watch]\ndebounce = \"soon\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadSyntaxError(t *testing.T) {
	_, err := Load(writeConfig(t, `units = `))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestResolveExplicit(t *testing.T) {
	path := writeConfig(t, `units = "m"`)

	cfg, used, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "m", cfg.Units)

	_, _, err = Resolve(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestResolveFromWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`area_method = "flat"`), 0o644))
	chdir(t, dir)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, used, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, FileName, used)
	assert.Equal(t, "flat", cfg.AreaMethod)
}

func TestResolveWithoutFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, used, err := Resolve("")
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, Default(), cfg)
}

// chdir changes the working directory for the duration of the test
// (equivalent to testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
