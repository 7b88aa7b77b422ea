// SPDX-License-Identifier: Unlicense OR MIT

package backend

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

var pathsInfo = AppInfo{
	Name:       "tilecounter",
	FormalName: "Tile Counter",
	ID:         "org.example.tilecounter",
	Author:     "Example Corp",
}

func TestDarwinPaths(t *testing.T) {
	p := defaultPathsFor("darwin", "/Users/u", pathsInfo)
	assert.Equal(t, filepath.Join("/Users/u", "Library", "Preferences", "org.example.tilecounter"), p.Config())
	assert.Equal(t, filepath.Join("/Users/u", "Library", "Application Support", "org.example.tilecounter"), p.Data())
	assert.Equal(t, filepath.Join("/Users/u", "Library", "Caches", "org.example.tilecounter"), p.Cache())
	assert.Equal(t, filepath.Join("/Users/u", "Library", "Logs", "org.example.tilecounter"), p.Logs())
}

func TestWindowsPaths(t *testing.T) {
	p := defaultPathsFor("windows", `/Users/u`, pathsInfo)
	root := filepath.Join("/Users/u", "AppData", "Local", "Example Corp", "Tile Counter")
	assert.Equal(t, filepath.Join(root, "Config"), p.Config())
	assert.Equal(t, filepath.Join(root, "Data"), p.Data())
	assert.Equal(t, filepath.Join(root, "Cache"), p.Cache())
	assert.Equal(t, filepath.Join(root, "Logs"), p.Logs())
}

func TestWindowsPathsUnknownAuthor(t *testing.T) {
	info := pathsInfo
	info.Author = ""
	p := defaultPathsFor("windows", "/Users/u", info)
	assert.Contains(t, p.Config(), "Unknown")
}

func TestXDGPaths(t *testing.T) {
	p := defaultPathsFor("linux", "/home/u", pathsInfo)
	assert.Equal(t, filepath.Join("/home/u", ".config", "tilecounter"), p.Config())
	assert.Equal(t, filepath.Join("/home/u", ".local", "share", "tilecounter"), p.Data())
	assert.Equal(t, filepath.Join("/home/u", ".cache", "tilecounter"), p.Cache())
	assert.Equal(t, filepath.Join("/home/u", ".local", "state", "tilecounter", "log"), p.Logs())
}
