// SPDX-License-Identifier: Unlicense OR MIT

package backend

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultPaths returns the conventional per-OS storage layout for an
// app. Backends without platform specific storage rules use this
// directly.
//
//   - darwin: ~/Library/{Preferences,Application Support,Caches,Logs}/<ID>
//   - windows: ~/AppData/Local/<Author>/<FormalName>/{Config,Data,Cache,Logs}
//   - otherwise: XDG-style ~/.config, ~/.local/share, ~/.cache and
//     ~/.local/state/<name>/log
func DefaultPaths(info AppInfo) Paths {
	return defaultPathsFor(runtime.GOOS, homeDir(), info)
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

func defaultPathsFor(goos, home string, info AppInfo) Paths {
	switch goos {
	case "darwin":
		return darwinPaths{home: home, id: info.ID}
	case "windows":
		author := info.Author
		if author == "" {
			author = "Unknown"
		}
		return windowsPaths{root: filepath.Join(home, "AppData", "Local", author, info.FormalName)}
	default:
		return xdgPaths{home: home, name: info.Name}
	}
}

type darwinPaths struct {
	home string
	id   string
}

func (p darwinPaths) Config() string {
	return filepath.Join(p.home, "Library", "Preferences", p.id)
}

func (p darwinPaths) Data() string {
	return filepath.Join(p.home, "Library", "Application Support", p.id)
}

func (p darwinPaths) Cache() string {
	return filepath.Join(p.home, "Library", "Caches", p.id)
}

func (p darwinPaths) Logs() string {
	return filepath.Join(p.home, "Library", "Logs", p.id)
}

type windowsPaths struct {
	root string
}

func (p windowsPaths) Config() string { return filepath.Join(p.root, "Config") }
func (p windowsPaths) Data() string   { return filepath.Join(p.root, "Data") }
func (p windowsPaths) Cache() string  { return filepath.Join(p.root, "Cache") }
func (p windowsPaths) Logs() string   { return filepath.Join(p.root, "Logs") }

type xdgPaths struct {
	home string
	name string
}

func (p xdgPaths) Config() string {
	return filepath.Join(p.home, ".config", p.name)
}

func (p xdgPaths) Data() string {
	return filepath.Join(p.home, ".local", "share", p.name)
}

func (p xdgPaths) Cache() string {
	return filepath.Join(p.home, ".cache", p.name)
}

func (p xdgPaths) Logs() string {
	return filepath.Join(p.home, ".local", "state", p.name, "log")
}
