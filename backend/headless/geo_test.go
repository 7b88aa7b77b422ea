// SPDX-License-Identifier: Unlicense OR MIT

package headless_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terrazzo-ui/terrazzo/backend"
	"github.com/terrazzo-ui/terrazzo/backend/headless"
	"github.com/terrazzo-ui/terrazzo/hardware/geo"
)

func TestPermissionResolvesAllPending(t *testing.T) {
	f := headless.NewFactory()
	sim := f.Geo()

	var outcomes []bool
	sim.RequestPermission(func(granted bool) { outcomes = append(outcomes, granted) })
	sim.RequestPermission(func(granted bool) { outcomes = append(outcomes, granted) })
	assert.Empty(t, outcomes, "requests wait for the user")

	sim.GrantPermission()
	assert.Equal(t, []bool{true, true}, outcomes, "one grant answers every pending request")

	// Later requests resolve immediately.
	sim.RequestPermission(func(granted bool) { outcomes = append(outcomes, granted) })
	assert.Len(t, outcomes, 3)
}

func TestCurrentLocationWaitsForFix(t *testing.T) {
	f := headless.NewFactory()
	sim := f.Geo()

	var got []backend.LatLng
	sim.CurrentLocation(func(pos backend.LatLng, _ float64, _ bool, _ error) {
		got = append(got, pos)
	})
	sim.CurrentLocation(func(pos backend.LatLng, _ float64, _ bool, _ error) {
		got = append(got, pos)
	})
	assert.Empty(t, got)

	fix := backend.LatLng{Lat: 51.5, Lng: -0.12}
	sim.SetLocation(fix, 11, 5)
	assert.Equal(t, []backend.LatLng{fix, fix}, got, "one fix answers every pending request")
}

func TestServiceCurrentLocation(t *testing.T) {
	f := headless.NewFactory()
	f.Geo().SetLocation(backend.LatLng{Lat: 48.85, Lng: 2.35}, 35, 10)

	svc, err := geo.New(f)
	require.NoError(t, err)
	r, err := svc.CurrentLocation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 48.85, r.Pos.Lat)
	assert.Equal(t, 35.0, r.Altitude)
	assert.True(t, r.AltitudeValid)
}

func TestAltitudeInvalidWithoutVerticalAccuracy(t *testing.T) {
	f := headless.NewFactory()
	f.Geo().SetLocation(backend.LatLng{Lat: 1, Lng: 2}, 100, 0)

	svc, err := geo.New(f)
	require.NoError(t, err)
	r, err := svc.CurrentLocation(context.Background())
	require.NoError(t, err)
	assert.False(t, r.AltitudeValid)
}

func TestOnChange(t *testing.T) {
	f := headless.NewFactory()
	svc, err := geo.New(f)
	require.NoError(t, err)

	var seen []geo.LatLng
	svc.OnChange(func(pos geo.LatLng) { seen = append(seen, pos) })
	f.Geo().SetLocation(backend.LatLng{Lat: 3, Lng: 4}, 0, 0)
	f.Geo().SetLocation(backend.LatLng{Lat: 5, Lng: 6}, 0, 0)
	assert.Equal(t, []geo.LatLng{{Lat: 3, Lng: 4}, {Lat: 5, Lng: 6}}, seen)
}
