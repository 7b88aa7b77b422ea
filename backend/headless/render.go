// SPDX-License-Identifier: Unlicense OR MIT

package headless

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/terrazzo-ui/terrazzo/backend"
	"github.com/terrazzo-ui/terrazzo/internal/f32color"
	"github.com/terrazzo-ui/terrazzo/style"
	"github.com/terrazzo-ui/terrazzo/widget/canvas"
)

// textDraw is a deferred text run. Shapes render through gg; text is
// overlaid with the fixed face afterwards.
type textDraw struct {
	s   string
	dot image.Point // baseline origin
	col color.NRGBA
}

var (
	colorText   = color.NRGBA{A: 0xFF}
	colorChrome = color.NRGBA{R: 0xD9, G: 0xD9, B: 0xD9, A: 0xFF}
	colorBorder = color.NRGBA{R: 0x8A, G: 0x8A, B: 0x8A, A: 0xFF}
	colorAccent = color.NRGBA{R: 0x3A, G: 0x6E, B: 0xA5, A: 0xFF}
)

func render(w *windowImpl) (image.Image, error) {
	vp := w.viewport()
	if vp.X <= 0 || vp.Y <= 0 {
		return nil, fmt.Errorf("headless: cannot render %dx%d window", vp.X, vp.Y)
	}
	dc := gg.NewContext(vp.X, vp.Y)
	dc.SetColor(color.White)
	dc.DrawRectangle(0, 0, float64(vp.X), float64(vp.Y))
	dc.Fill()

	var texts []textDraw
	if w.root != nil {
		paint(dc, w.root, &texts)
	}

	img := toRGBA(dc.Image())
	d := font.Drawer{Dst: img, Face: face}
	for _, t := range texts {
		d.Src = image.NewUniform(t.col)
		d.Dot = fixed.P(t.dot.X, t.dot.Y)
		d.DrawString(t.s)
	}
	return img, nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}

// paint renders one impl and its subtree. Hidden widgets keep their
// box but paint nothing, subtree included.
func paint(dc *gg.Context, w backend.Widget, texts *[]textDraw) {
	state := stateOf(w)
	if state == nil || state.hidden() {
		return
	}
	if bg := state.style.Background; bg.A > 0 {
		fillRect(dc, state.box.Bounds, bg)
	}

	switch impl := w.(type) {
	case *boxImpl:
		for _, c := range impl.children {
			paint(dc, c, texts)
		}
	case *labelImpl:
		drawText(state, impl.text, texts)
	case *buttonImpl:
		fillRect(dc, state.box.Bounds, colorChrome)
		strokeRect(dc, state.box.Bounds, colorBorder)
		drawText(state, impl.text, texts)
	case *textInputImpl:
		fillRect(dc, state.box.Bounds, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
		strokeRect(dc, state.box.Bounds, colorBorder)
		if impl.value != "" {
			drawText(state, impl.value, texts)
		} else {
			drawPlaceholder(state, impl.placeholder, texts)
		}
	case *switchImpl:
		drawSwitch(dc, state, impl, texts)
	case *sliderImpl:
		drawSlider(dc, state, impl)
	case *progressBarImpl:
		drawProgress(dc, state, impl)
	case *dividerImpl:
		fillRect(dc, state.box.Bounds, colorBorder)
	case *splitImpl:
		for _, p := range impl.panels {
			if p != nil {
				paint(dc, p, texts)
			}
		}
	case *listImpl:
		drawList(dc, state, impl, texts)
	case *canvasImpl:
		replayCanvas(dc, impl.ops, state.box.Content.Min, texts)
	}
}

func stateOf(w backend.Widget) *widgetState {
	switch impl := w.(type) {
	case *boxImpl:
		return &impl.widgetState
	case *labelImpl:
		return &impl.widgetState
	case *buttonImpl:
		return &impl.widgetState
	case *textInputImpl:
		return &impl.widgetState
	case *switchImpl:
		return &impl.widgetState
	case *sliderImpl:
		return &impl.widgetState
	case *progressBarImpl:
		return &impl.widgetState
	case *dividerImpl:
		return &impl.widgetState
	case *splitImpl:
		return &impl.widgetState
	case *listImpl:
		return &impl.widgetState
	case *canvasImpl:
		return &impl.widgetState
	}
	return nil
}

func fillRect(dc *gg.Context, r image.Rectangle, col color.NRGBA) {
	if r.Empty() {
		return
	}
	dc.SetColor(col)
	dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	dc.Fill()
}

func strokeRect(dc *gg.Context, r image.Rectangle, col color.NRGBA) {
	if r.Empty() {
		return
	}
	dc.SetColor(col)
	dc.SetLineWidth(1)
	dc.DrawRectangle(float64(r.Min.X)+.5, float64(r.Min.Y)+.5, float64(r.Dx())-1, float64(r.Dy())-1)
	dc.Stroke()
}

func textColor(state *widgetState) color.NRGBA {
	col := state.style.Color
	if col.A == 0 {
		col = colorText
	}
	if !state.enabled {
		col = f32color.Disabled(col)
	}
	return col
}

// drawText queues the widget's text at its content origin, baseline
// adjusted for the fixed face.
func drawText(state *widgetState, s string, texts *[]textDraw) {
	if s == "" {
		return
	}
	dot := state.box.Content.Min.Add(image.Point{Y: face.Ascent})
	if state.style.TextAlign == style.TextCenter {
		if pad := (state.box.Content.Dx() - textSize(s).X) / 2; pad > 0 {
			dot.X += pad
		}
	}
	*texts = append(*texts, textDraw{s: s, dot: dot, col: textColor(state)})
}

func drawPlaceholder(state *widgetState, s string, texts *[]textDraw) {
	if s == "" {
		return
	}
	dot := state.box.Content.Min.Add(image.Point{Y: face.Ascent})
	*texts = append(*texts, textDraw{s: s, dot: dot, col: f32color.Disabled(textColor(state))})
}

func drawSwitch(dc *gg.Context, state *widgetState, impl *switchImpl, texts *[]textDraw) {
	content := state.box.Content
	toggle := image.Rect(content.Min.X, content.Min.Y, content.Min.X+switchToggleWidth-8, content.Min.Y+16)
	col := colorChrome
	if impl.value {
		col = colorAccent
	}
	fillRect(dc, toggle, col)
	strokeRect(dc, toggle, colorBorder)
	if impl.text != "" {
		dot := image.Point{X: content.Min.X + switchToggleWidth, Y: content.Min.Y + face.Ascent}
		*texts = append(*texts, textDraw{s: impl.text, dot: dot, col: textColor(state)})
	}
}

func drawSlider(dc *gg.Context, state *widgetState, impl *sliderImpl) {
	content := state.box.Content
	if content.Dx() <= 0 {
		return
	}
	midY := content.Min.Y + content.Dy()/2
	track := image.Rect(content.Min.X, midY-1, content.Max.X, midY+1)
	fillRect(dc, track, colorChrome)

	span := impl.max - impl.min
	frac := 0.0
	if span > 0 {
		frac = (impl.value - impl.min) / span
	}
	knobX := float64(content.Min.X) + frac*float64(content.Dx())
	dc.SetColor(colorAccent)
	dc.DrawCircle(knobX, float64(midY), 6)
	dc.Fill()
}

func drawProgress(dc *gg.Context, state *widgetState, impl *progressBarImpl) {
	bounds := state.box.Bounds
	fillRect(dc, bounds, colorChrome)
	if impl.max <= 0 {
		// Indeterminate: a centered strip when running.
		if impl.running {
			third := bounds.Dx() / 3
			fillRect(dc, image.Rect(bounds.Min.X+third, bounds.Min.Y, bounds.Max.X-third, bounds.Max.Y), colorAccent)
		}
		return
	}
	frac := impl.value / impl.max
	w := int(frac * float64(bounds.Dx()))
	fillRect(dc, image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Min.X+w, bounds.Max.Y), colorAccent)
}

const listRowHeight = 32

func drawList(dc *gg.Context, state *widgetState, impl *listImpl, texts *[]textDraw) {
	content := state.box.Content
	for i, row := range impl.rows {
		top := content.Min.Y + i*listRowHeight
		if top >= content.Max.Y {
			break
		}
		rowRect := image.Rect(content.Min.X, top, content.Max.X, min(top+listRowHeight, content.Max.Y))
		if i == impl.selection {
			fillRect(dc, rowRect, color.NRGBA{R: 0xCF, G: 0xDE, B: 0xEE, A: 0xFF})
		}
		fillRect(dc, image.Rect(rowRect.Min.X, rowRect.Max.Y-1, rowRect.Max.X, rowRect.Max.Y), colorChrome)
		*texts = append(*texts, textDraw{
			s:   row.Title,
			dot: image.Point{X: rowRect.Min.X + 4, Y: top + face.Ascent + 2},
			col: textColor(state),
		})
		if row.Subtitle != "" {
			*texts = append(*texts, textDraw{
				s:   row.Subtitle,
				dot: image.Point{X: rowRect.Min.X + 4, Y: top + face.Height + face.Ascent + 4},
				col: f32color.Disabled(textColor(state)),
			})
		}
	}
}

// replayCanvas re-executes retained drawing operations with the gg
// context translated to the canvas content origin. Text runs ignore
// accumulated canvas transforms; they are overlaid with the fixed face
// at their translated position.
func replayCanvas(dc *gg.Context, ops []canvas.Op, origin image.Point, texts *[]textDraw) {
	reset := func() {
		dc.Identity()
		dc.Translate(float64(origin.X), float64(origin.Y))
	}
	dc.Push()
	reset()
	dc.ClearPath()
	for _, op := range ops {
		switch o := op.(type) {
		case canvas.BeginPath:
			dc.ClearPath()
		case canvas.ClosePath:
			dc.ClosePath()
		case canvas.MoveTo:
			dc.MoveTo(o.X, o.Y)
		case canvas.LineTo:
			dc.LineTo(o.X, o.Y)
		case canvas.QuadraticCurveTo:
			dc.QuadraticTo(o.CX, o.CY, o.X, o.Y)
		case canvas.BezierCurveTo:
			dc.CubicTo(o.C1X, o.C1Y, o.C2X, o.C2Y, o.X, o.Y)
		case canvas.Arc:
			a1, a2 := o.StartAngle, o.EndAngle
			if o.Counterclockwise {
				a1, a2 = a2, a1
			}
			dc.DrawArc(o.X, o.Y, o.Radius, a1, a2)
		case canvas.Ellipse:
			a1, a2 := o.StartAngle, o.EndAngle
			if o.Counterclockwise {
				a1, a2 = a2, a1
			}
			if o.Rotation != 0 {
				dc.Push()
				dc.RotateAbout(o.Rotation, o.X, o.Y)
				dc.DrawEllipticalArc(o.X, o.Y, o.RadiusX, o.RadiusY, a1, a2)
				dc.Pop()
			} else {
				dc.DrawEllipticalArc(o.X, o.Y, o.RadiusX, o.RadiusY, a1, a2)
			}
		case canvas.Rect:
			dc.DrawRectangle(o.X, o.Y, o.Width, o.Height)
		case canvas.Fill:
			dc.SetColor(o.Color)
			if o.Rule == canvas.EvenOdd {
				dc.SetFillRule(gg.FillRuleEvenOdd)
			} else {
				dc.SetFillRule(gg.FillRuleNonZero)
			}
			dc.FillPreserve()
		case canvas.Stroke:
			dc.SetColor(o.Color)
			dc.SetLineWidth(o.Width)
			if len(o.Dash) > 0 {
				dc.SetDash(o.Dash...)
			} else {
				dc.ClearDash()
			}
			dc.StrokePreserve()
		case canvas.Rotate:
			dc.Rotate(o.Angle)
		case canvas.Scale:
			dc.Scale(o.X, o.Y)
		case canvas.Translate:
			dc.Translate(o.X, o.Y)
		case canvas.ResetTransform:
			reset()
		case canvas.WriteText:
			x, y := dc.TransformPoint(o.X, o.Y)
			*texts = append(*texts, textDraw{
				s:   o.Text,
				dot: image.Point{X: int(x), Y: int(y)},
				col: o.Color,
			})
		}
	}
	dc.ClearDash()
	dc.Pop()
}
