// SPDX-License-Identifier: Unlicense OR MIT

/*
Package term renders the widget tree in a terminal.

The window runs a bubbletea program; widgets paint into a cell grid
styled with lipgloss. Layout runs in the usual pixel space and the
painter maps it to cells: one dp per column, two dp per row.

Tab moves focus, enter and space activate the focused widget, arrow
keys adjust a focused slider, and typing edits a focused text input.

The backend registers itself as "term":

	import _ "github.com/terrazzo-ui/terrazzo/backend/term"
*/
package term

import (
	"io"

	"github.com/terrazzo-ui/terrazzo/backend"
	"github.com/terrazzo-ui/terrazzo/unit"
)

func init() {
	backend.Register("term", NewFactory())
}

// cellH is the pixel height of one terminal row.
const cellH = 2

// Factory creates terminal impls.
type Factory struct {
	input  io.Reader
	output io.Writer
}

// Option configures a Factory.
type Option func(*Factory)

// WithInput overrides the program input. Tests inject key sequences
// here.
func WithInput(r io.Reader) Option {
	return func(f *Factory) { f.input = r }
}

// WithOutput overrides the program output. Tests capture frames here.
func WithOutput(w io.Writer) Option {
	return func(f *Factory) { f.output = w }
}

// NewFactory returns a terminal factory. The registry holds one
// already; explicit construction is for tests that need input/output
// injection.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Name implements backend.Factory.
func (f *Factory) Name() string { return "term" }

// NewApp implements backend.Factory.
func (f *Factory) NewApp(info backend.AppInfo) (backend.App, error) {
	return newApp(f, info), nil
}

// Paths implements backend.Factory.
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

// Location implements backend.Factory. Terminals have no location
// capability.
func (f *Factory) Location() (backend.Location, error) {
	return nil, backend.ErrNoLocation
}

// metric is the terminal device metric: layout pixels are dp.
var metric = unit.Metric{PxPerDp: 1, PxPerSp: 1}
