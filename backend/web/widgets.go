// SPDX-License-Identifier: Unlicense OR MIT

package web

import (
	"fmt"
	"image"

	"github.com/google/uuid"

	"github.com/terrazzo-ui/terrazzo/backend"
	"github.com/terrazzo-ui/terrazzo/layout"
	"github.com/terrazzo-ui/terrazzo/style"
	"github.com/terrazzo-ui/terrazzo/unit"
	"github.com/terrazzo-ui/terrazzo/widget/canvas"
)

// webWidget is the state common to all web impls. The id addresses the
// widget in the event route and the rendered document.
type webWidget struct {
	id      string
	style   style.Pack
	box     layout.Box
	enabled bool
	focused bool
}

func newWebWidget() webWidget {
	return webWidget{id: uuid.NewString()}
}

func (w *webWidget) SetStyle(st style.Pack) { w.style = st }
func (w *webWidget) SetBox(b layout.Box)    { w.box = b }
func (w *webWidget) SetEnabled(e bool)      { w.enabled = e }
func (w *webWidget) Focus()                 { w.focused = true }

func (w *webWidget) IntrinsicSize(unit.Metric) image.Point {
	return image.Point{}
}

func (w *webWidget) hidden() bool {
	return w.style.Visibility == style.Hidden
}

// charW and lineH approximate browser text metrics for layout.
const (
	charW = 8
	lineH = 18
)

func textPx(s string) image.Point {
	return image.Point{X: charW * len([]rune(s)), Y: lineH}
}

type boxImpl struct {
	webWidget
	children []backend.Widget
}

func (b *boxImpl) SetChildren(children []backend.Widget) { b.children = children }

type labelImpl struct {
	webWidget
	text string
}

func (l *labelImpl) SetText(text string) { l.text = text }

func (l *labelImpl) IntrinsicSize(unit.Metric) image.Point {
	return textPx(l.text)
}

type buttonImpl struct {
	webWidget
	text    string
	onPress func()
}

func (b *buttonImpl) SetText(text string) { b.text = text }
func (b *buttonImpl) OnPress(fn func())   { b.onPress = fn }

func (b *buttonImpl) IntrinsicSize(unit.Metric) image.Point {
	sz := textPx(b.text)
	return image.Point{X: sz.X + 24, Y: sz.Y + 10}
}

type textInputImpl struct {
	webWidget
	value       string
	placeholder string
	readOnly    bool
	onChange    func(value string)
	onConfirm   func()
}

func (t *textInputImpl) Value() string              { return t.value }
func (t *textInputImpl) SetValue(value string)      { t.value = value }
func (t *textInputImpl) SetPlaceholder(text string) { t.placeholder = text }
func (t *textInputImpl) SetReadOnly(readonly bool)  { t.readOnly = readonly }
func (t *textInputImpl) OnChange(fn func(string))   { t.onChange = fn }
func (t *textInputImpl) OnConfirm(fn func())        { t.onConfirm = fn }

func (t *textInputImpl) IntrinsicSize(unit.Metric) image.Point {
	sz := textPx(t.value)
	return image.Point{X: max(sz.X+16, 160), Y: sz.Y + 8}
}

type switchImpl struct {
	webWidget
	text     string
	value    bool
	onChange func(value bool)
}

func (s *switchImpl) SetText(text string)    { s.text = text }
func (s *switchImpl) Value() bool            { return s.value }
func (s *switchImpl) OnChange(fn func(bool)) { s.onChange = fn }

func (s *switchImpl) SetValue(value bool) {
	if s.value == value {
		return
	}
	s.value = value
	if s.onChange != nil {
		s.onChange(value)
	}
}

func (s *switchImpl) IntrinsicSize(unit.Metric) image.Point {
	sz := textPx(s.text)
	return image.Point{X: sz.X + 28, Y: lineH}
}

type sliderImpl struct {
	webWidget
	value     float64
	min, max  float64
	ticks     int
	onChange  func()
	onPress   func()
	onRelease func()
}

func (s *sliderImpl) Value() float64            { return s.value }
func (s *sliderImpl) Range() (float64, float64) { return s.min, s.max }
func (s *sliderImpl) TickCount() int            { return s.ticks }
func (s *sliderImpl) SetTickCount(count int)    { s.ticks = count }
func (s *sliderImpl) SetRange(min, max float64) { s.min, s.max = min, max }
func (s *sliderImpl) OnChange(fn func())        { s.onChange = fn }
func (s *sliderImpl) OnPress(fn func())         { s.onPress = fn }
func (s *sliderImpl) OnRelease(fn func())       { s.onRelease = fn }

func (s *sliderImpl) SetValue(value float64) {
	s.value = value
	if s.onChange != nil {
		s.onChange()
	}
}

func (s *sliderImpl) IntrinsicSize(unit.Metric) image.Point {
	return image.Point{X: 160, Y: lineH}
}

// set applies a value arriving from a range input, bracketed by the
// press/release pair a pointer drag would produce.
func (s *sliderImpl) set(value float64) {
	if value < s.min {
		value = s.min
	}
	if value > s.max {
		value = s.max
	}
	if s.onPress != nil {
		s.onPress()
	}
	s.SetValue(value)
	if s.onRelease != nil {
		s.onRelease()
	}
}

type progressBarImpl struct {
	webWidget
	max     float64
	value   float64
	running bool
}

func (p *progressBarImpl) SetMax(max float64)     { p.max = max }
func (p *progressBarImpl) SetValue(value float64) { p.value = value }
func (p *progressBarImpl) SetRunning(r bool)      { p.running = r }

func (p *progressBarImpl) IntrinsicSize(unit.Metric) image.Point {
	return image.Point{X: 160, Y: 8}
}

type dividerImpl struct {
	webWidget
	direction style.Direction
}

func (d *dividerImpl) SetDirection(dir style.Direction) { d.direction = dir }

func (d *dividerImpl) IntrinsicSize(unit.Metric) image.Point {
	if d.direction == style.Row {
		return image.Point{Y: 1}
	}
	return image.Point{X: 1}
}

type splitImpl struct {
	webWidget
	panels    [2]backend.Widget
	flex      [2]float64
	direction style.Direction
}

func (s *splitImpl) SetContent(panels [2]backend.Widget, flex [2]float64) {
	s.panels = panels
	s.flex = flex
}

func (s *splitImpl) SetDirection(d style.Direction) { s.direction = d }

type listImpl struct {
	webWidget
	rows      []backend.ListRow
	selection int
	scrolled  int

	primaryEnabled   bool
	secondaryEnabled bool
	refreshEnabled   bool

	onSelect    func(index int)
	onPrimary   func(index int)
	onSecondary func(index int)
	onRefresh   func()
}

func (l *listImpl) SetRows(rows []backend.ListRow) {
	l.rows = rows
	if l.selection >= len(rows) {
		l.selection = -1
	}
}

func (l *listImpl) Selection() int                   { return l.selection }
func (l *listImpl) ScrollToRow(index int)            { l.scrolled = index }
func (l *listImpl) SetPrimaryActionEnabled(e bool)   { l.primaryEnabled = e }
func (l *listImpl) SetSecondaryActionEnabled(e bool) { l.secondaryEnabled = e }
func (l *listImpl) SetRefreshEnabled(e bool)         { l.refreshEnabled = e }
func (l *listImpl) OnSelect(fn func(int))            { l.onSelect = fn }
func (l *listImpl) OnPrimaryAction(fn func(int))     { l.onPrimary = fn }
func (l *listImpl) OnSecondaryAction(fn func(int))   { l.onSecondary = fn }
func (l *listImpl) OnRefresh(fn func())              { l.onRefresh = fn }

func (l *listImpl) IntrinsicSize(unit.Metric) image.Point {
	return image.Point{X: 240, Y: len(l.rows) * 2 * lineH}
}

func (l *listImpl) selectRow(index int) error {
	if index < 0 || index >= len(l.rows) {
		return fmt.Errorf("row %d out of range", index)
	}
	if index == l.selection {
		return nil
	}
	l.selection = index
	if l.onSelect != nil {
		l.onSelect(index)
	}
	return nil
}

type canvasImpl struct {
	webWidget
	ops      []canvas.Op
	onResize func(width, height int)
	onPress  func(x, y int)
}

func (c *canvasImpl) SetOps(ops []canvas.Op)     { c.ops = ops }
func (c *canvasImpl) OnResize(fn func(w, h int)) { c.onResize = fn }
func (c *canvasImpl) OnPress(fn func(x, y int))  { c.onPress = fn }

func (c *canvasImpl) SetBox(b layout.Box) {
	old := c.box.Content.Size()
	c.webWidget.SetBox(b)
	if sz := b.Content.Size(); sz != old && c.onResize != nil {
		c.onResize(sz.X, sz.Y)
	}
}
