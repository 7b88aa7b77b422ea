// SPDX-License-Identifier: Unlicense OR MIT

package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFactory embeds Factory for its method set; only Name is needed
// by the registry.
type stubFactory struct {
	Factory
	name string
}

func (f *stubFactory) Name() string { return f.name }

func withRegistry(t *testing.T, names ...string) {
	t.Helper()
	registryMu.Lock()
	saved := registry
	registry = make(map[string]Factory)
	for _, name := range names {
		registry[name] = &stubFactory{name: name}
	}
	registryMu.Unlock()
	t.Cleanup(func() {
		registryMu.Lock()
		registry = saved
		registryMu.Unlock()
	})
}

func TestLoadSingleBackend(t *testing.T) {
	withRegistry(t, "headless")
	t.Setenv(BackendEnv, "")

	f, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "headless", f.Name())
}

func TestLoadNoBackends(t *testing.T) {
	withRegistry(t)
	t.Setenv(BackendEnv, "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no backend could be loaded")
}

func TestLoadEnvOverride(t *testing.T) {
	withRegistry(t, "headless", "terminal")
	t.Setenv(BackendEnv, "terminal")

	f, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "terminal", f.Name())
}

func TestLoadEnvOverrideUnknown(t *testing.T) {
	withRegistry(t, "headless", "terminal")
	t.Setenv(BackendEnv, "cocoa")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"cocoa"`)
	assert.Contains(t, err.Error(), "headless, terminal", "error lists the registered backends")
}

func TestLoadPlatformMatch(t *testing.T) {
	withRegistry(t, "headless", CurrentPlatform())
	t.Setenv(BackendEnv, "")

	f, err := Load()
	require.NoError(t, err)
	assert.Equal(t, CurrentPlatform(), f.Name())
}

func TestLoadAmbiguous(t *testing.T) {
	withRegistry(t, "headless", "terminal")
	t.Setenv(BackendEnv, "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of them match")
}

func TestRegisterDuplicatePanics(t *testing.T) {
	withRegistry(t)
	Register("dup", &stubFactory{name: "dup"})
	assert.Panics(t, func() {
		Register("dup", &stubFactory{name: "dup"})
	})
}
