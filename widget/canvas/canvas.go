// SPDX-License-Identifier: Unlicense OR MIT

/*
Package canvas defines the retained drawing operations for the Canvas
widget.

Operations are plain values. A Context accumulates them in order; the
widget pushes the full list to its backend impl, which replays it on
every redraw. Coordinates are in pixels within the widget's content
box, y growing downwards; angles are in radians, measured clockwise
from the positive x axis.
*/
package canvas

import (
	"image/color"

	"github.com/terrazzo-ui/terrazzo/style"
)

// Op is one drawing operation.
type Op interface {
	implementsOp()
}

// BeginPath starts a new path, discarding the current one.
type BeginPath struct{}

// ClosePath closes the current subpath.
type ClosePath struct{}

// MoveTo starts a new subpath at (X, Y).
type MoveTo struct {
	X, Y float64
}

// LineTo adds a straight segment to (X, Y).
type LineTo struct {
	X, Y float64
}

// QuadraticCurveTo adds a quadratic Bézier segment with control point
// (CX, CY).
type QuadraticCurveTo struct {
	CX, CY float64
	X, Y   float64
}

// BezierCurveTo adds a cubic Bézier segment with control points
// (C1X, C1Y) and (C2X, C2Y).
type BezierCurveTo struct {
	C1X, C1Y float64
	C2X, C2Y float64
	X, Y     float64
}

// Arc adds a circular arc centered at (X, Y).
type Arc struct {
	X, Y       float64
	Radius     float64
	StartAngle float64
	EndAngle   float64
	// Counterclockwise reverses the sweep direction.
	Counterclockwise bool
}

// Ellipse adds an elliptical arc centered at (X, Y).
type Ellipse struct {
	X, Y             float64
	RadiusX, RadiusY float64
	Rotation         float64
	StartAngle       float64
	EndAngle         float64
	Counterclockwise bool
}

// Rect adds a rectangle subpath.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// FillRule determines how self-intersecting paths fill.
type FillRule uint8

const (
	NonZero FillRule = iota
	EvenOdd
)

// Fill fills the current path.
type Fill struct {
	Color color.NRGBA
	Rule  FillRule
}

// Stroke strokes the current path.
type Stroke struct {
	Color color.NRGBA
	Width float64
	// Dash is the dash pattern in pixels; empty means solid.
	Dash []float64
}

// Rotate rotates subsequent drawing by Angle radians.
type Rotate struct {
	Angle float64
}

// Scale scales subsequent drawing.
type Scale struct {
	X, Y float64
}

// Translate shifts subsequent drawing.
type Translate struct {
	X, Y float64
}

// ResetTransform restores the identity transform.
type ResetTransform struct{}

// WriteText draws text with (X, Y) at the text baseline start.
type WriteText struct {
	Text  string
	X, Y  float64
	Font  style.Font
	Color color.NRGBA
}

func (BeginPath) implementsOp()        {}
func (ClosePath) implementsOp()        {}
func (MoveTo) implementsOp()           {}
func (LineTo) implementsOp()           {}
func (QuadraticCurveTo) implementsOp() {}
func (BezierCurveTo) implementsOp()    {}
func (Arc) implementsOp()              {}
func (Ellipse) implementsOp()          {}
func (Rect) implementsOp()             {}
func (Fill) implementsOp()             {}
func (Stroke) implementsOp()           {}
func (Rotate) implementsOp()           {}
func (Scale) implementsOp()            {}
func (Translate) implementsOp()        {}
func (ResetTransform) implementsOp()   {}
func (WriteText) implementsOp()        {}

// Context accumulates drawing operations. The zero value is ready for
// use.
type Context struct {
	ops []Op
}

// Ops returns the accumulated operations. The returned slice is owned
// by the context.
func (c *Context) Ops() []Op {
	return c.ops
}

// Clear discards all operations.
func (c *Context) Clear() {
	c.ops = c.ops[:0]
}

// Append adds a prebuilt operation.
func (c *Context) Append(op Op) {
	c.ops = append(c.ops, op)
}

// Insert adds a prebuilt operation at index, clamped to the valid
// range.
func (c *Context) Insert(index int, op Op) {
	if index < 0 {
		index = 0
	}
	if index > len(c.ops) {
		index = len(c.ops)
	}
	c.ops = append(c.ops, nil)
	copy(c.ops[index+1:], c.ops[index:])
	c.ops[index] = op
}

func (c *Context) BeginPath() { c.Append(BeginPath{}) }
func (c *Context) ClosePath() { c.Append(ClosePath{}) }

func (c *Context) MoveTo(x, y float64) { c.Append(MoveTo{X: x, Y: y}) }
func (c *Context) LineTo(x, y float64) { c.Append(LineTo{X: x, Y: y}) }

func (c *Context) QuadraticCurveTo(cx, cy, x, y float64) {
	c.Append(QuadraticCurveTo{CX: cx, CY: cy, X: x, Y: y})
}

func (c *Context) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.Append(BezierCurveTo{C1X: c1x, C1Y: c1y, C2X: c2x, C2Y: c2y, X: x, Y: y})
}

func (c *Context) Arc(x, y, radius, startAngle, endAngle float64, counterclockwise bool) {
	c.Append(Arc{
		X: x, Y: y, Radius: radius,
		StartAngle: startAngle, EndAngle: endAngle,
		Counterclockwise: counterclockwise,
	})
}

func (c *Context) Ellipse(x, y, rx, ry, rotation, startAngle, endAngle float64, counterclockwise bool) {
	c.Append(Ellipse{
		X: x, Y: y, RadiusX: rx, RadiusY: ry, Rotation: rotation,
		StartAngle: startAngle, EndAngle: endAngle,
		Counterclockwise: counterclockwise,
	})
}

func (c *Context) Rect(x, y, width, height float64) {
	c.Append(Rect{X: x, Y: y, Width: width, Height: height})
}

func (c *Context) Fill(col color.NRGBA) { c.Append(Fill{Color: col}) }

func (c *Context) Stroke(col color.NRGBA, width float64) {
	c.Append(Stroke{Color: col, Width: width})
}

func (c *Context) Rotate(angle float64)   { c.Append(Rotate{Angle: angle}) }
func (c *Context) Scale(x, y float64)     { c.Append(Scale{X: x, Y: y}) }
func (c *Context) Translate(x, y float64) { c.Append(Translate{X: x, Y: y}) }
func (c *Context) ResetTransform()        { c.Append(ResetTransform{}) }

func (c *Context) WriteText(text string, x, y float64, font style.Font, col color.NRGBA) {
	c.Append(WriteText{Text: text, X: x, Y: y, Font: font, Color: col})
}
