// SPDX-License-Identifier: Unlicense OR MIT

/*
Package backend defines the contract between the platform independent
widget tree and a concrete rendering target.

A backend provides a Factory: one constructor per widget impl, plus
windows, paths and hardware services. The interfaces here deliberately
avoid types from package widget and package app so that core and
backends never form an import cycle; backrefs are expressed as plain
data (AppInfo) or callbacks.

Backends register themselves from an init function:

	func init() {
		backend.Register("headless", &factory{})
	}

and are selected by Load, which honors the TERRAZZO_BACKEND environment
variable, falls back to the only registered backend, or matches the
host platform when several are compiled in.
*/
package backend

import (
	"context"
	"errors"
	"image"

	"github.com/terrazzo-ui/terrazzo/layout"
	"github.com/terrazzo-ui/terrazzo/style"
	"github.com/terrazzo-ui/terrazzo/unit"
	"github.com/terrazzo-ui/terrazzo/widget/canvas"
)

// AppInfo is the application metadata a backend needs for window
// titles, storage paths and platform integration.
type AppInfo struct {
	// Name is the machine-friendly app name, e.g. "tilecounter".
	Name string
	// FormalName is the human-facing name, e.g. "Tile Counter".
	FormalName string
	// ID is the reverse-DNS bundle identifier.
	ID      string
	Author  string
	Version string
	// HomePage is the project URL, if any.
	HomePage string
}

// Widget is the impl contract common to all widgets.
type Widget interface {
	// SetStyle pushes a style snapshot to the impl.
	SetStyle(st style.Pack)
	// SetBox pushes the computed geometry for the current frame.
	SetBox(b layout.Box)
	SetEnabled(enabled bool)
	Focus()
	// IntrinsicSize reports the content size in pixels for the given
	// metric, excluding padding and margin.
	IntrinsicSize(m unit.Metric) image.Point
}

// Box is the impl of a plain container.
type Box interface {
	Widget
	// SetChildren replaces the container's children, in order.
	SetChildren(children []Widget)
}

// Label is the impl of a static text widget.
type Label interface {
	Widget
	SetText(text string)
}

// Button is the impl of a push button.
type Button interface {
	Widget
	SetText(text string)
	OnPress(fn func())
}

// TextInput is the impl of a single-line text entry.
type TextInput interface {
	Widget
	Value() string
	SetValue(value string)
	SetPlaceholder(text string)
	SetReadOnly(readonly bool)
	OnChange(fn func(value string))
	OnConfirm(fn func())
}

// Switch is the impl of a labelled on/off toggle.
type Switch interface {
	Widget
	SetText(text string)
	Value() bool
	SetValue(value bool)
	OnChange(fn func(value bool))
}

// Slider is the impl of a continuous or discrete value slider. The
// impl owns the authoritative value; the interface layer validates
// and rounds before calling SetValue.
type Slider interface {
	Widget
	Value() float64
	SetValue(value float64)
	Range() (min, max float64)
	SetRange(min, max float64)
	// TickCount returns 0 for a continuous slider.
	TickCount() int
	SetTickCount(count int)
	OnChange(fn func())
	OnPress(fn func())
	OnRelease(fn func())
}

// ProgressBar is the impl of a progress indicator. A max of 0 makes
// the bar indeterminate.
type ProgressBar interface {
	Widget
	SetMax(max float64)
	SetValue(value float64)
	SetRunning(running bool)
}

// Divider is the impl of a separator line.
type Divider interface {
	Widget
	SetDirection(d style.Direction)
}

// SplitContainer is the impl of a two panel split view.
type SplitContainer interface {
	Widget
	// SetContent assigns the two panels with their flex weights. A nil
	// panel is an empty pane.
	SetContent(panels [2]Widget, flex [2]float64)
	SetDirection(d style.Direction)
}

// DetailedList is the impl of an ordered list of title/subtitle/icon
// rows. Row callbacks receive the row index.
type DetailedList interface {
	Widget
	// SetRows replaces the rendered rows.
	SetRows(rows []ListRow)
	// Selection returns the selected row index, or -1.
	Selection() int
	ScrollToRow(index int)
	SetPrimaryActionEnabled(enabled bool)
	SetSecondaryActionEnabled(enabled bool)
	SetRefreshEnabled(enabled bool)
	OnSelect(fn func(index int))
	OnPrimaryAction(fn func(index int))
	OnSecondaryAction(fn func(index int))
	OnRefresh(fn func())
}

// ListRow is the rendered form of one DetailedList row.
type ListRow struct {
	Title    string
	Subtitle string
	Icon     string
}

// Canvas is the impl of a drawing surface. The interface layer retains
// the drawing operations and pushes the full list on every change.
type Canvas interface {
	Widget
	SetOps(ops []canvas.Op)
	OnResize(fn func(width, height int))
	OnPress(fn func(x, y int))
}

// Window is the impl of a top-level window.
type Window interface {
	SetTitle(title string)
	SetSize(width, height unit.Dp)
	// Metric returns the window's device metric.
	Metric() unit.Metric
	// SetContent assigns the root widget impl.
	SetContent(root Widget)
	// OnFrame registers the layout callback. The backend invokes it with
	// the viewport size in pixels whenever geometry may be stale: before
	// painting, on resize, and from Redraw. The callback runs the layout
	// engine and pushes a box to every impl via SetBox.
	OnFrame(fn func(viewport image.Point))
	Show()
	Hide()
	Close()
	// Redraw flushes all pending layout and paint work before
	// returning. Probe assertions rely on this.
	Redraw()
	// Screenshot rasterizes the current window content. Backends
	// without a raster surface return an error.
	Screenshot() (image.Image, error)
}

// MenuItem is one entry of the flattened main menu, in display order.
type MenuItem struct {
	// ID identifies the command to invoke.
	ID string
	// Path is the menu group chain from the top-level menu down,
	// e.g. ["File"] or ["Edit", "Find"].
	Path []string
	Text string
	// Shortcut is the key combination, e.g. "ctrl+s". Empty for none.
	Shortcut string
	// Section groups adjacent items; a section change within the same
	// path renders a separator.
	Section int
	Enabled bool
	// Invoke fires the command's action. Nil for a disabled item.
	Invoke func()
}

// App is the impl of the application lifecycle.
type App interface {
	// NewWindow creates a window owned by this app.
	NewWindow() (Window, error)
	// SetMainMenu replaces the app's main menu. Called on every command
	// set mutation, with the items already in display order.
	SetMainMenu(items []MenuItem)
	// Run enters the backend main loop until the context is canceled
	// or Quit is called.
	Run(ctx context.Context) error
	Quit()
	// Do marshals fn onto the loop goroutine. All widget mutation
	// outside event handlers must go through Do once Run has started.
	Do(fn func())
}

// ErrNoLocation is returned by Factory.Location on targets without a
// location capability.
var ErrNoLocation = errors.New("backend: no location capability")

// LatLng is a geographic coordinate.
type LatLng struct {
	Lat float64
	Lng float64
}

// Location is the impl of the geolocation service. Callbacks fire on
// the loop goroutine.
type Location interface {
	// RequestPermission resolves cb with the grant outcome. Backends
	// may resolve several outstanding requests from one status change.
	RequestPermission(cb func(granted bool))
	// CurrentLocation resolves cb with one reading. An altitude is
	// only valid when ok is true.
	CurrentLocation(cb func(pos LatLng, altitude float64, ok bool, err error))
	OnChange(fn func(pos LatLng))
}

// Paths locates per-application storage directories.
type Paths interface {
	Config() string
	Data() string
	Cache() string
	Logs() string
}

// Factory creates every impl for one rendering target.
type Factory interface {
	Name() string
	NewApp(info AppInfo) (App, error)
	Paths(info AppInfo) Paths

	NewBox() Box
	NewLabel() Label
	NewButton() Button
	NewTextInput() TextInput
	NewSwitch() Switch
	NewSlider() Slider
	NewProgressBar() ProgressBar
	NewDivider() Divider
	NewSplitContainer() SplitContainer
	NewDetailedList() DetailedList
	NewCanvas() Canvas

	// Location returns the geolocation impl, or an error when the
	// target has no location capability.
	Location() (Location, error)
}
