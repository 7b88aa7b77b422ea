// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"fmt"
	"image"

	"github.com/terrazzo-ui/terrazzo/backend"
	"github.com/terrazzo-ui/terrazzo/layout"
	"github.com/terrazzo-ui/terrazzo/unit"
	"github.com/terrazzo-ui/terrazzo/widget"
)

// Window is a top-level window holding one widget tree. It implements
// widget.Host: attached widgets call Invalidate to schedule a redraw.
type Window struct {
	app   *App
	impl  backend.Window
	title string
	root  widget.Widget
}

func newWindow(a *App, impl backend.Window, title string) *Window {
	w := &Window{app: a, impl: impl, title: title}
	impl.SetTitle(title)
	impl.OnFrame(w.frame)
	return w
}

// Title returns the window title.
func (w *Window) Title() string { return w.title }

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.title = title
	w.impl.SetTitle(title)
}

// SetSize requests a window size in dp.
func (w *Window) SetSize(width, height unit.Dp) {
	w.impl.SetSize(width, height)
}

// Content returns the window's root widget, nil when empty.
func (w *Window) Content() widget.Widget { return w.root }

// SetContent replaces the window's root widget, attaching the new tree
// to this window's backend.
func (w *Window) SetContent(root widget.Widget) error {
	if w.root != nil {
		widget.Detach(w.root)
	}
	w.root = root
	if root == nil {
		w.impl.SetContent(nil)
		return nil
	}
	if err := widget.Attach(root, w); err != nil {
		return fmt.Errorf("app: attaching window content: %w", err)
	}
	w.impl.SetContent(root.Impl())
	w.Redraw()
	return nil
}

// Show makes the window visible.
func (w *Window) Show() { w.impl.Show() }

// Hide makes the window invisible without closing it.
func (w *Window) Hide() { w.impl.Hide() }

// Close destroys the window.
func (w *Window) Close() {
	if w.root != nil {
		widget.Detach(w.root)
		w.root = nil
	}
	w.impl.Close()
}

// Redraw flushes pending style and content changes: styles are synced,
// layout runs, and the backend repaints before Redraw returns.
func (w *Window) Redraw() { w.impl.Redraw() }

// Screenshot rasterizes the window content on backends with a raster
// surface.
func (w *Window) Screenshot() (image.Image, error) {
	return w.impl.Screenshot()
}

// Factory implements widget.Host.
func (w *Window) Factory() backend.Factory { return w.app.factory }

// Invalidate implements widget.Host.
func (w *Window) Invalidate() { w.impl.Redraw() }

// frame is the backend's layout callback: it recomputes geometry for
// the current viewport and pushes a box to every impl.
func (w *Window) frame(viewport image.Point) {
	if w.root == nil {
		return
	}
	widget.SyncStyles(w.root)
	ctx := layout.NewContext(w.impl.Metric())
	ctx.Layout(w.root, viewport)
	pushBoxes(ctx, w.root)
}

func pushBoxes(ctx *layout.Context, wd widget.Widget) {
	if impl := wd.Impl(); impl != nil {
		impl.SetBox(ctx.BoxFor(wd))
	}
	for _, c := range wd.Children() {
		pushBoxes(ctx, c)
	}
}
