package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/appwall/internal/catalog"
	"github.com/jask/appwall/internal/config"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("APPWALL_CONFIG", "")
	return home
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestFrameCommand(t *testing.T) {
	isolate(t)
	out, err := execute(t, "frame", "--width", "60", "--theme", "dark", "--color", "never")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, "Just Works in WASIX", lines[0])
	assert.Contains(t, out, "All the apps you love")
	for _, line := range lines[2 : 2+catalog.TileHeight] {
		assert.Equal(t, 60, ansi.StringWidth(line))
	}
}

func TestFrameCommandFixedHeight(t *testing.T) {
	isolate(t)
	out, err := execute(t, "frame", "--width", "40", "--height", "12", "--color", "never")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 12)
}

func TestFrameRejectsBadColor(t *testing.T) {
	isolate(t)
	_, err := execute(t, "frame", "--color", "sometimes")
	require.ErrorContains(t, err, "--color")
	colorMode = "auto"
}

func TestCatalogCommand(t *testing.T) {
	isolate(t)
	out, err := execute(t, "catalog", "--width", "80", "--color", "never")
	require.NoError(t, err)
	for _, name := range catalog.Names(catalog.Default()) {
		assert.Contains(t, out, name)
	}
}

func TestConfigInit(t *testing.T) {
	home := isolate(t)
	out, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")

	_, err = os.Stat(filepath.Join(home, ".config", "appwall", "config.toml"))
	require.NoError(t, err)

	_, err = execute(t, "config", "init")
	require.ErrorContains(t, err, "already exists")

	_, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)
	forceInit = false
}

func TestLoadCatalogInclude(t *testing.T) {
	c := config.Default()
	c.Catalog.Include = []string{"tokio", "bash"}
	items, err := loadCatalog(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bash", "Tokio"}, catalog.Names(items))

	c.Catalog.Include = []string{"toky"}
	_, err = loadCatalog(c)
	require.ErrorIs(t, err, catalog.ErrUnknownItem)
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logos.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[logo]]\nname = \"Wasmer\"\n[[logo]]\nname = \"Wasix\"\n"), 0o644))

	c := config.Default()
	c.Catalog.File = path
	items, err := loadCatalog(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"Wasmer", "Wasix"}, catalog.Names(items))

	c.Catalog.File = filepath.Join(t.TempDir(), "missing.toml")
	_, err = loadCatalog(c)
	require.Error(t, err)
}

func TestRenderCatalogWraps(t *testing.T) {
	out := ansi.Strip(renderCatalog(catalog.Default(), 2*(catalog.TileWidth+1)))
	lines := strings.Split(out, "\n")
	// 13 badges, two per row
	assert.Len(t, lines, 7*catalog.TileHeight)
}
