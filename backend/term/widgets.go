// SPDX-License-Identifier: Unlicense OR MIT

package term

import (
	"image"
	"unicode/utf8"

	"github.com/terrazzo-ui/terrazzo/backend"
	"github.com/terrazzo-ui/terrazzo/layout"
	"github.com/terrazzo-ui/terrazzo/style"
	"github.com/terrazzo-ui/terrazzo/unit"
	"github.com/terrazzo-ui/terrazzo/widget/canvas"
)

// termWidget is the state common to all terminal impls.
type termWidget struct {
	style   style.Pack
	box     layout.Box
	enabled bool
	focused bool
}

func (w *termWidget) SetStyle(st style.Pack) { w.style = st }
func (w *termWidget) SetBox(b layout.Box)    { w.box = b }
func (w *termWidget) SetEnabled(e bool)      { w.enabled = e }
func (w *termWidget) Focus()                 { w.focused = true }

func (w *termWidget) IntrinsicSize(unit.Metric) image.Point {
	return image.Point{}
}

func (w *termWidget) hidden() bool {
	return w.style.Visibility == style.Hidden
}

// textCells returns the pixel size of a one line text run: one column
// per rune, one row of cells.
func textCells(s string) image.Point {
	return image.Point{X: utf8.RuneCountInString(s), Y: cellH}
}

type boxImpl struct {
	termWidget
	children []backend.Widget
}

func (b *boxImpl) SetChildren(children []backend.Widget) { b.children = children }

type labelImpl struct {
	termWidget
	text string
}

func (l *labelImpl) SetText(text string) { l.text = text }

func (l *labelImpl) IntrinsicSize(unit.Metric) image.Point {
	return textCells(l.text)
}

type buttonImpl struct {
	termWidget
	text    string
	onPress func()
}

func (b *buttonImpl) SetText(text string) { b.text = text }
func (b *buttonImpl) OnPress(fn func())   { b.onPress = fn }

func (b *buttonImpl) IntrinsicSize(unit.Metric) image.Point {
	// "[ text ]"
	return image.Point{X: utf8.RuneCountInString(b.text) + 4, Y: cellH}
}

func (b *buttonImpl) activate() {
	if b.enabled && b.onPress != nil {
		b.onPress()
	}
}

type textInputImpl struct {
	termWidget
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
	return image.Point{X: max(utf8.RuneCountInString(t.value)+2, 20), Y: cellH}
}

func (t *textInputImpl) edit(value string) {
	if !t.enabled || t.readOnly {
		return
	}
	t.value = value
	if t.onChange != nil {
		t.onChange(value)
	}
}

func (t *textInputImpl) confirm() {
	if t.enabled && t.onConfirm != nil {
		t.onConfirm()
	}
}

type switchImpl struct {
	termWidget
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
	// "[x] text"
	return image.Point{X: utf8.RuneCountInString(s.text) + 4, Y: cellH}
}

func (s *switchImpl) toggle() {
	if s.enabled {
		s.SetValue(!s.value)
	}
}

type sliderImpl struct {
	termWidget
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
func (s *sliderImpl) OnChange(fn func())        { s.onChange = fn }
func (s *sliderImpl) OnPress(fn func())         { s.onPress = fn }
func (s *sliderImpl) OnRelease(fn func())       { s.onRelease = fn }

func (s *sliderImpl) SetValue(value float64) {
	s.value = value
	if s.onChange != nil {
		s.onChange()
	}
}

func (s *sliderImpl) SetRange(min, max float64) { s.min, s.max = min, max }

func (s *sliderImpl) IntrinsicSize(unit.Metric) image.Point {
	return image.Point{Y: cellH}
}

// step moves the value by one keyboard increment: the tick step for
// discrete sliders, a twentieth of the range otherwise.
func (s *sliderImpl) step(dir float64) {
	if !s.enabled {
		return
	}
	span := s.max - s.min
	if span <= 0 {
		return
	}
	inc := span / 20
	if s.ticks > 1 {
		inc = span / float64(s.ticks-1)
	}
	v := s.value + dir*inc
	if v < s.min {
		v = s.min
	}
	if v > s.max {
		v = s.max
	}
	if s.onPress != nil {
		s.onPress()
	}
	s.SetValue(v)
	if s.onRelease != nil {
		s.onRelease()
	}
}

type progressBarImpl struct {
	termWidget
	max     float64
	value   float64
	running bool
}

func (p *progressBarImpl) SetMax(max float64)     { p.max = max }
func (p *progressBarImpl) SetValue(value float64) { p.value = value }
func (p *progressBarImpl) SetRunning(r bool)      { p.running = r }

func (p *progressBarImpl) IntrinsicSize(unit.Metric) image.Point {
	return image.Point{Y: cellH}
}

type dividerImpl struct {
	termWidget
	direction style.Direction
}

func (d *dividerImpl) SetDirection(dir style.Direction) { d.direction = dir }

func (d *dividerImpl) IntrinsicSize(unit.Metric) image.Point {
	if d.direction == style.Row {
		return image.Point{Y: cellH}
	}
	return image.Point{X: 1}
}

type splitImpl struct {
	termWidget
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
	termWidget
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

// move shifts the selection by delta rows, clamped to the row range.
func (l *listImpl) move(delta int) {
	if len(l.rows) == 0 {
		return
	}
	sel := l.selection + delta
	if sel < 0 {
		sel = 0
	}
	if sel >= len(l.rows) {
		sel = len(l.rows) - 1
	}
	if sel == l.selection {
		return
	}
	l.selection = sel
	if l.onSelect != nil {
		l.onSelect(sel)
	}
}

func (l *listImpl) activate() {
	if l.primaryEnabled && l.selection >= 0 && l.onPrimary != nil {
		l.onPrimary(l.selection)
	}
}

type canvasImpl struct {
	termWidget
	ops      []canvas.Op
	onResize func(width, height int)
	onPress  func(x, y int)
}

func (c *canvasImpl) SetOps(ops []canvas.Op)     { c.ops = ops }
func (c *canvasImpl) OnResize(fn func(w, h int)) { c.onResize = fn }
func (c *canvasImpl) OnPress(fn func(x, y int))  { c.onPress = fn }

func (c *canvasImpl) SetBox(b layout.Box) {
	old := c.box.Content.Size()
	c.termWidget.SetBox(b)
	if sz := b.Content.Size(); sz != old && c.onResize != nil {
		c.onResize(sz.X, sz.Y)
	}
}
