// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terrazzo-ui/terrazzo/app"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestNewScaffoldsApp(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tile-counter")
	out, err := runCmd(t, "new", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "created")

	meta, err := app.LoadManifest(filepath.Join(dir, "terrazzo.toml"))
	require.NoError(t, err)
	assert.Equal(t, "tile-counter", meta.Name)
	assert.Equal(t, "Tile Counter", meta.FormalName)
	assert.Equal(t, "com.example.tile-counter", meta.ID)

	src, err := os.ReadFile(filepath.Join(dir, "main.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "app.LoadManifest")
}

func TestNewRefusesExistingManifest(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "demo")
	_, err := runCmd(t, "new", dir)
	require.NoError(t, err)
	_, err = runCmd(t, "new", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestNewFlagsOverrideDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "x")
	_, err := runCmd(t, "new", dir, "--name", "probe", "--formal-name", "The Probe", "--id", "dev.terrazzo.probe")
	require.NoError(t, err)

	meta, err := app.LoadManifest(filepath.Join(dir, "terrazzo.toml"))
	require.NoError(t, err)
	assert.Equal(t, "probe", meta.Name)
	assert.Equal(t, "The Probe", meta.FormalName)
	assert.Equal(t, "dev.terrazzo.probe", meta.ID)
}

func TestInspectPrintsMetadata(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terrazzo.toml")
	manifest := `[app]
name = "probe"
formal_name = "Probe"
id = "dev.terrazzo.probe"
version = "1.2.3"
author = "Jo Doe"
`
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o644))

	out, err := runCmd(t, "inspect", path)
	require.NoError(t, err)
	assert.Contains(t, out, "name:        probe")
	assert.Contains(t, out, "formal name: Probe")
	assert.Contains(t, out, "version:     1.2.3")
	assert.Contains(t, out, "author:      Jo Doe")
}

func TestInspectRejectsBadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terrazzo.toml")
	require.NoError(t, os.WriteFile(path, []byte("[app]\nname = \"x\"\n"), 0o644))
	_, err := runCmd(t, "inspect", path)
	require.Error(t, err)
}

func TestBackendsListsRegistered(t *testing.T) {
	out, err := runCmd(t, "backends")
	require.NoError(t, err)
	assert.Contains(t, out, "headless")
	assert.Contains(t, out, "term")
	assert.Contains(t, out, "web")
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Tile Counter", titleCase("tile-counter"))
	assert.Equal(t, "My App", titleCase("my_app"))
	assert.Equal(t, "Solo", titleCase("solo"))
	assert.Equal(t, "Éclair Éditeur", titleCase("éclair-éditeur"),
		"a multi-byte initial upper-cases as a rune")
}
