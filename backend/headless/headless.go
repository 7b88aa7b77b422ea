// SPDX-License-Identifier: Unlicense OR MIT

/*
Package headless is the in-memory reference backend.

Every widget impl records the state pushed into it, and the probe API
(ProbeWidget) exposes that state to tests along with simulated user
actions. Windows rasterize to an image on Screenshot, so rendering can
be asserted without a display.

The backend registers itself as "headless"; importing the package is
enough to make it selectable:

	import _ "github.com/terrazzo-ui/terrazzo/backend/headless"
*/
package headless

import (
	"github.com/terrazzo-ui/terrazzo/backend"
	"github.com/terrazzo-ui/terrazzo/unit"
)

func init() {
	backend.Register("headless", NewFactory())
}

// Factory creates headless impls.
type Factory struct {
	metric unit.Metric
	geo    *Location
	app    *appImpl
}

// Option configures a Factory.
type Option func(*Factory)

// WithMetric sets the device metric of the factory's windows. The
// default is 1px per dp and sp.
func WithMetric(m unit.Metric) Option {
	return func(f *Factory) { f.metric = m }
}

// NewFactory returns a headless factory. The registry holds one
// already; explicit construction is for tests that need options or
// isolation.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{
		metric: unit.Metric{PxPerDp: 1, PxPerSp: 1},
		geo:    newLocation(),
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Name implements backend.Factory.
func (f *Factory) Name() string { return "headless" }

// NewApp implements backend.Factory.
func (f *Factory) NewApp(info backend.AppInfo) (backend.App, error) {
	f.app = newApp(f, info)
	return f.app, nil
}

// MainMenu returns the menu items last pushed through SetMainMenu, in
// display order. Nil before an app exists.
func (f *Factory) MainMenu() []backend.MenuItem {
	if f.app == nil {
		return nil
	}
	return f.app.mainMenu()
}

// Paths implements backend.Factory using the conventional per-OS
// layout.
func (f *Factory) Paths(info backend.AppInfo) backend.Paths {
	return backend.DefaultPaths(info)
}

func (f *Factory) NewBox() backend.Box                       { return &boxImpl{} }
func (f *Factory) NewLabel() backend.Label                   { return &labelImpl{} }
func (f *Factory) NewButton() backend.Button                 { return &buttonImpl{} }
func (f *Factory) NewTextInput() backend.TextInput           { return &textInputImpl{} }
func (f *Factory) NewSwitch() backend.Switch                 { return &switchImpl{} }
func (f *Factory) NewSlider() backend.Slider                 { return &sliderImpl{max: 1} }
func (f *Factory) NewProgressBar() backend.ProgressBar       { return &progressBarImpl{max: 1} }
func (f *Factory) NewDivider() backend.Divider               { return &dividerImpl{} }
func (f *Factory) NewSplitContainer() backend.SplitContainer { return &splitImpl{} }
func (f *Factory) NewDetailedList() backend.DetailedList     { return &listImpl{selection: -1} }
func (f *Factory) NewCanvas() backend.Canvas                 { return &canvasImpl{} }

// Location implements backend.Factory. The headless location is
// simulated; use Geo to drive it from tests.
func (f *Factory) Location() (backend.Location, error) {
	return f.geo, nil
}

// Geo returns the simulated location service for test control.
func (f *Factory) Geo() *Location { return f.geo }
