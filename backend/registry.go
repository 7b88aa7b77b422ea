// SPDX-License-Identifier: Unlicense OR MIT

package backend

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"
)

// BackendEnv is the environment variable that forces a backend choice.
const BackendEnv = "TERRAZZO_BACKEND"

var (
	registryMu sync.Mutex
	registry   = make(map[string]Factory)
)

// Register makes a factory selectable under name. Backends call
// Register from an init function; registering the same name twice
// panics.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("backend: Register called twice for %q", name))
	}
	registry[name] = f
}

// Registered returns the registered backend names, sorted.
func Registered() []string {
	registryMu.Lock()
	defer registryMu.Unlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load selects the backend for this process:
//
//  1. If TERRAZZO_BACKEND is set, that backend is used. An unknown
//     name is an error listing the registered backends.
//  2. With exactly one backend registered, it is used.
//  3. With several registered, the one matching the host platform
//     name is used; no match, or more than one, is an error.
func Load() (Factory, error) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if name := os.Getenv(BackendEnv); name != "" {
		f, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf(
				"the backend specified by %s (%q) is not registered; it should be one of: %s",
				BackendEnv, name, backendList(registry),
			)
		}
		return f, nil
	}

	switch len(registry) {
	case 0:
		return nil, fmt.Errorf("no backend could be loaded; link a backend package into the binary")
	case 1:
		for _, f := range registry {
			return f, nil
		}
	}

	platform := CurrentPlatform()
	var matches []Factory
	for name, f := range registry {
		if name == platform {
			matches = append(matches, f)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, fmt.Errorf(
			"multiple backends are registered (%s), but none of them match the current platform (%q); set %s to choose one",
			backendList(registry), platform, BackendEnv,
		)
	default:
		// Unreachable while the registry is keyed by name, but kept so
		// a future multi-key registry fails loudly.
		return nil, fmt.Errorf(
			"multiple candidate backends found (%s); set %s to choose one",
			backendList(registry), BackendEnv,
		)
	}
}

// CurrentPlatform maps the host OS to a backend platform name.
func CurrentPlatform() string {
	switch runtime.GOOS {
	case "darwin":
		return "macOS"
	case "ios":
		return "iOS"
	case "js":
		return "web"
	case "freebsd":
		return "freeBSD"
	default:
		// android, linux, windows and the rest pass through.
		return runtime.GOOS
	}
}

func backendList(reg map[string]Factory) string {
	names := make([]string, 0, len(reg))
	for name := range reg {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
