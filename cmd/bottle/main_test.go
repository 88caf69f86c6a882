package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/bottle/internal/config"
	"github.com/san-kum/bottle/internal/packing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func resolveArgs(t *testing.T, args ...string) (*config.Config, error) {
	t.Helper()
	var opts packOptions
	cmd := &cobra.Command{Use: "test"}
	opts.bind(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return opts.resolve(cmd)
}

func TestResolveDefaults(t *testing.T) {
	cfg, err := resolveArgs(t)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultWidth, cfg.Container.Width)
	assert.Equal(t, 17, cfg.Total())
	assert.Equal(t, config.DefaultStrategy, cfg.Strategy)
	assert.NotZero(t, cfg.Seed)
}

func TestResolvePrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
container:
  width: 400
  height: 300
  corner_radius: 40
circle_radius: 18
seed: 99
`), 0644))

	cfg, err := resolveArgs(t, "--preset", "sand", "--config", path, "--radius", "12", "--count", "9")
	require.NoError(t, err)

	// file replaces the preset, flags beat the file
	assert.Equal(t, 400.0, cfg.Container.Width)
	assert.Equal(t, 12.0, cfg.CircleRadius)
	assert.Equal(t, 9, cfg.Total())
	assert.Equal(t, int64(99), cfg.Seed)
}

func TestResolveSeedFlagWins(t *testing.T) {
	cfg, err := resolveArgs(t, "--preset", "bottle", "--seed", "5")
	require.NoError(t, err)
	assert.Equal(t, int64(5), cfg.Seed)
}

func TestResolveErrors(t *testing.T) {
	_, err := resolveArgs(t, "--preset", "nope")
	assert.ErrorContains(t, err, "unknown preset")

	_, err = resolveArgs(t, "--radius", "-1")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = resolveArgs(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to load config")
}

func TestPackSaveListExport(t *testing.T) {
	data := t.TempDir()

	out, err := execute(t, "--data", data, "pack", "--preset", "bottle", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "17 / 17")

	out, err = execute(t, "--data", data, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "17/17")
	id := strings.Fields(lines[1])[0]

	out, err = execute(t, "--data", data, "export-svg", id)
	require.NoError(t, err)
	assert.Equal(t, 17, strings.Count(out, "<circle"))

	out, err = execute(t, "--data", data, "export-csv", id)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 18)

	svgPath := filepath.Join(t.TempDir(), "layout.svg")
	_, err = execute(t, "--data", data, "export-svg", id, "-o", svgPath)
	require.NoError(t, err)
	assert.FileExists(t, svgPath)

	_, err = execute(t, "--data", data, "show", "no-such-run")
	assert.Error(t, err)
}

func TestPackStrictShortfall(t *testing.T) {
	data := t.TempDir()

	_, err := execute(t, "--data", data, "pack", "--preset", "vial", "--save=false")
	require.NoError(t, err)

	_, err = execute(t, "--data", data, "pack", "--preset", "vial", "--save=false", "--strict")
	assert.ErrorIs(t, err, packing.ErrCapacity)
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, "presets")
	require.NoError(t, err)
	for _, name := range config.ListPresets() {
		assert.Contains(t, out, name)
	}
}

func TestCapacityCommand(t *testing.T) {
	out, err := execute(t, "capacity", "--preset", "bottle", "--strategy", "grid", "--max", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "placed vs requested")
	assert.Contains(t, out, "max placed")
}

func TestBenchCommand(t *testing.T) {
	out, err := execute(t, "bench", "--preset", "bottle", "--runs", "4", "--seed", "1")
	require.NoError(t, err)
	for _, s := range []string{"grid", "hybrid", "random"} {
		assert.Contains(t, out, s)
	}
	assert.Contains(t, out, "4/4")
}

func TestExportDocuments(t *testing.T) {
	data := t.TempDir()
	_, err := execute(t, "--data", data, "pack", "--preset", "jar", "--seed", "3")
	require.NoError(t, err)

	out, err := execute(t, "--data", data, "list")
	require.NoError(t, err)
	id := strings.Fields(strings.Split(strings.TrimSpace(out), "\n")[1])[0]

	dir := t.TempDir()
	for _, c := range []struct{ cmd, file string }{
		{"export-pdf", "layout.pdf"},
		{"export-xlsx", "layout.xlsx"},
		{"export-dxf", "layout.dxf"},
	} {
		path := filepath.Join(dir, c.file)
		_, err := execute(t, "--data", data, c.cmd, id, "-o", path)
		require.NoError(t, err, c.cmd)
		assert.FileExists(t, path)
	}
}
