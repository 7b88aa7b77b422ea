// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terrazzo-ui/terrazzo/app"
	"github.com/terrazzo-ui/terrazzo/backend/headless"
)

// TestKitchenUI wires the demo to the headless backend and pokes it.
func TestKitchenUI(t *testing.T) {
	a, err := app.NewWithFactory(app.Metadata{
		Name:       "kitchen",
		FormalName: "Kitchen Sink",
		ID:         "org.terrazzo.kitchen",
	}, headless.NewFactory())
	require.NoError(t, err)
	a.OnStartup = buildUI
	require.NoError(t, a.Startup())

	w := a.MainWindow()
	w.Redraw()

	img, err := w.Screenshot()
	require.NoError(t, err)
	assert.False(t, img.Bounds().Empty())

	assert.GreaterOrEqual(t, a.Commands().Len(), 3)
}
