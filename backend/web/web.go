// SPDX-License-Identifier: Unlicense OR MIT

/*
Package web serves the widget tree over HTTP.

Every request renders the current tree state: GET / returns an HTML
document positioned from the computed layout boxes, GET /state returns
the widget state as JSON, and POST /event/:id dispatches a widget
event. There is no DOM diffing; the document is regenerated per
request.

The backend registers itself as "web":

	import _ "github.com/terrazzo-ui/terrazzo/backend/web"
*/
package web

import (
	"net/http"

	"github.com/terrazzo-ui/terrazzo/backend"
	"github.com/terrazzo-ui/terrazzo/unit"
)

func init() {
	backend.Register("web", NewFactory())
}

// Factory creates web impls.
type Factory struct {
	addr string
	app  *appImpl
}

// Option configures a Factory.
type Option func(*Factory)

// WithAddr overrides the listen address, ":8080" by default.
func WithAddr(addr string) Option {
	return func(f *Factory) { f.addr = addr }
}

// NewFactory returns a web factory. The registry holds one already;
// explicit construction is for tests and for address injection.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{addr: ":8080"}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Name implements backend.Factory.
func (f *Factory) Name() string { return "web" }

// NewApp implements backend.Factory.
func (f *Factory) NewApp(info backend.AppInfo) (backend.App, error) {
	f.app = newApp(f, info)
	return f.app, nil
}

// Handler exposes the HTTP handler without entering Run. Tests drive
// it through httptest.
func (f *Factory) Handler() http.Handler {
	if f.app == nil {
		return nil
	}
	return f.app.engine
}

// Paths implements backend.Factory.
func (f *Factory) Paths(info backend.AppInfo) backend.Paths {
	return backend.DefaultPaths(info)
}

func (f *Factory) NewBox() backend.Box             { return &boxImpl{webWidget: newWebWidget()} }
func (f *Factory) NewLabel() backend.Label         { return &labelImpl{webWidget: newWebWidget()} }
func (f *Factory) NewButton() backend.Button       { return &buttonImpl{webWidget: newWebWidget()} }
func (f *Factory) NewTextInput() backend.TextInput { return &textInputImpl{webWidget: newWebWidget()} }
func (f *Factory) NewSwitch() backend.Switch       { return &switchImpl{webWidget: newWebWidget()} }
func (f *Factory) NewDivider() backend.Divider     { return &dividerImpl{webWidget: newWebWidget()} }
func (f *Factory) NewCanvas() backend.Canvas       { return &canvasImpl{webWidget: newWebWidget()} }

func (f *Factory) NewSlider() backend.Slider {
	return &sliderImpl{webWidget: newWebWidget(), max: 1}
}

func (f *Factory) NewProgressBar() backend.ProgressBar {
	return &progressBarImpl{webWidget: newWebWidget(), max: 1}
}

func (f *Factory) NewSplitContainer() backend.SplitContainer {
	return &splitImpl{webWidget: newWebWidget()}
}

func (f *Factory) NewDetailedList() backend.DetailedList {
	return &listImpl{webWidget: newWebWidget(), selection: -1}
}

// Location implements backend.Factory. The server has no location
// capability.
func (f *Factory) Location() (backend.Location, error) {
	return nil, backend.ErrNoLocation
}

// metric is the web device metric: layout pixels are CSS pixels.
var metric = unit.Metric{PxPerDp: 1, PxPerSp: 1}
