// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/terrazzo-ui/terrazzo/backend"
	"github.com/terrazzo-ui/terrazzo/widget/canvas"
)

// Canvas is a drawing area. Draw into its Context and call Redraw to
// push the accumulated operations to the backend; the backend replays
// them on every repaint.
type Canvas struct {
	Base
	ctx canvas.Context

	onResize func(*Canvas, int, int)
	onPress  func(*Canvas, int, int)
}

// NewCanvas returns an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{Base: newBase("canvas")}
}

// Context returns the canvas's drawing context.
func (c *Canvas) Context() *canvas.Context { return &c.ctx }

// Redraw pushes the current operation list to the backend and
// schedules a repaint.
func (c *Canvas) Redraw() {
	if impl, ok := c.impl.(backend.Canvas); ok {
		impl.SetOps(c.ctx.Ops())
	}
	c.Refresh()
}

// OnResize sets the handler invoked when the canvas content box
// changes size. The new size is in pixels.
func (c *Canvas) OnResize(fn func(c *Canvas, width, height int)) {
	c.onResize = fn
}

// OnPress sets the handler invoked on a press within the canvas, with
// the position in pixels relative to the content box.
func (c *Canvas) OnPress(fn func(c *Canvas, x, y int)) {
	c.onPress = fn
}

func (c *Canvas) attach(host Host, parent Widget) error {
	impl := host.Factory().NewCanvas()
	c.attachBase(host, parent, impl)
	impl.OnResize(func(w, h int) {
		if c.onResize != nil {
			c.onResize(c, w, h)
		}
	})
	impl.OnPress(func(x, y int) {
		if c.onPress != nil {
			c.onPress(c, x, y)
		}
	})
	impl.SetOps(c.ctx.Ops())
	return nil
}
