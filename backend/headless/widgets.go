// SPDX-License-Identifier: Unlicense OR MIT

package headless

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/terrazzo-ui/terrazzo/backend"
	"github.com/terrazzo-ui/terrazzo/layout"
	"github.com/terrazzo-ui/terrazzo/style"
	"github.com/terrazzo-ui/terrazzo/unit"
	"github.com/terrazzo-ui/terrazzo/widget/canvas"
)

// face is the fixed font every headless widget measures and renders
// text with.
var face = basicfont.Face7x13

func textSize(s string) image.Point {
	if s == "" {
		return image.Point{Y: face.Height}
	}
	return image.Point{
		X: font.MeasureString(face, s).Ceil(),
		Y: face.Height,
	}
}

// widgetState is the recorded state common to all impls.
type widgetState struct {
	style   style.Pack
	box     layout.Box
	enabled bool
	focused bool
}

func (w *widgetState) SetStyle(st style.Pack) { w.style = st }
func (w *widgetState) SetBox(b layout.Box)    { w.box = b }
func (w *widgetState) SetEnabled(e bool)      { w.enabled = e }
func (w *widgetState) Focus()                 { w.focused = true }

func (w *widgetState) IntrinsicSize(unit.Metric) image.Point {
	return image.Point{}
}

func (w *widgetState) hidden() bool {
	return w.style.Visibility == style.Hidden
}

type boxImpl struct {
	widgetState
	children []backend.Widget
}

func (b *boxImpl) SetChildren(children []backend.Widget) {
	b.children = children
}

type labelImpl struct {
	widgetState
	text string
}

func (l *labelImpl) SetText(text string) { l.text = text }

func (l *labelImpl) IntrinsicSize(unit.Metric) image.Point {
	return textSize(l.text)
}

type buttonImpl struct {
	widgetState
	text    string
	onPress func()
}

func (b *buttonImpl) SetText(text string) { b.text = text }
func (b *buttonImpl) OnPress(fn func())   { b.onPress = fn }

// Button chrome around the text, in pixels.
const (
	buttonPadX = 12
	buttonPadY = 6
)

func (b *buttonImpl) IntrinsicSize(unit.Metric) image.Point {
	sz := textSize(b.text)
	return image.Point{X: sz.X + 2*buttonPadX, Y: sz.Y + 2*buttonPadY}
}

func (b *buttonImpl) press() {
	if b.enabled && b.onPress != nil {
		b.onPress()
	}
}

type textInputImpl struct {
	widgetState
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
	sz := textSize(t.value)
	return image.Point{X: max(sz.X+8, 120), Y: sz.Y + 2*buttonPadY}
}

// typeValue simulates the user replacing the input content.
func (t *textInputImpl) typeValue(value string) {
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
	widgetState
	text     string
	value    bool
	onChange func(value bool)
}

func (s *switchImpl) SetText(text string)    { s.text = text }
func (s *switchImpl) Value() bool            { return s.value }
func (s *switchImpl) OnChange(fn func(bool)) { s.onChange = fn }

// SetValue fires OnChange like a user toggle would; the interface
// layer filters programmatic echoes.
func (s *switchImpl) SetValue(value bool) {
	if s.value == value {
		return
	}
	s.value = value
	if s.onChange != nil {
		s.onChange(value)
	}
}

// Toggle chrome next to the text, in pixels.
const switchToggleWidth = 36

func (s *switchImpl) IntrinsicSize(unit.Metric) image.Point {
	sz := textSize(s.text)
	return image.Point{X: sz.X + switchToggleWidth, Y: max(sz.Y, 18)}
}

func (s *switchImpl) toggle() {
	if s.enabled {
		s.SetValue(!s.value)
	}
}

type sliderImpl struct {
	widgetState
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

// SetValue fires OnChange like a user drag would; the interface layer
// suppresses the echo for programmatic sets.
func (s *sliderImpl) SetValue(value float64) {
	s.value = value
	if s.onChange != nil {
		s.onChange()
	}
}

func (s *sliderImpl) SetRange(min, max float64) {
	s.min, s.max = min, max
}

func (s *sliderImpl) IntrinsicSize(unit.Metric) image.Point {
	return image.Point{Y: 20}
}

// drag simulates a user press, drag to value, release.
func (s *sliderImpl) drag(value float64) {
	if !s.enabled {
		return
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
	widgetState
	max     float64
	value   float64
	running bool
}

func (p *progressBarImpl) SetMax(max float64)     { p.max = max }
func (p *progressBarImpl) SetValue(value float64) { p.value = value }
func (p *progressBarImpl) SetRunning(r bool)      { p.running = r }

func (p *progressBarImpl) IntrinsicSize(unit.Metric) image.Point {
	return image.Point{Y: 6}
}

type dividerImpl struct {
	widgetState
	direction style.Direction
}

func (d *dividerImpl) SetDirection(dir style.Direction) { d.direction = dir }

func (d *dividerImpl) IntrinsicSize(unit.Metric) image.Point {
	// A horizontal rule is one pixel tall, a vertical one one pixel
	// wide.
	if d.direction == style.Row {
		return image.Point{Y: 1}
	}
	return image.Point{X: 1}
}

type splitImpl struct {
	widgetState
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
	widgetState
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

func (l *listImpl) selectRow(index int) {
	if index < -1 || index >= len(l.rows) {
		return
	}
	l.selection = index
	if l.onSelect != nil {
		l.onSelect(index)
	}
}

func (l *listImpl) primaryAction(index int) {
	if l.primaryEnabled && index >= 0 && index < len(l.rows) && l.onPrimary != nil {
		l.onPrimary(index)
	}
}

func (l *listImpl) secondaryAction(index int) {
	if l.secondaryEnabled && index >= 0 && index < len(l.rows) && l.onSecondary != nil {
		l.onSecondary(index)
	}
}

func (l *listImpl) refresh() {
	if l.refreshEnabled && l.onRefresh != nil {
		l.onRefresh()
	}
}

type canvasImpl struct {
	widgetState
	ops      []canvas.Op
	onResize func(width, height int)
	onPress  func(x, y int)
}

func (c *canvasImpl) SetOps(ops []canvas.Op)     { c.ops = ops }
func (c *canvasImpl) OnResize(fn func(w, h int)) { c.onResize = fn }
func (c *canvasImpl) OnPress(fn func(x, y int))  { c.onPress = fn }

// SetBox reports content size changes through OnResize.
func (c *canvasImpl) SetBox(b layout.Box) {
	old := c.box.Content.Size()
	c.widgetState.SetBox(b)
	if sz := b.Content.Size(); sz != old && c.onResize != nil {
		c.onResize(sz.X, sz.Y)
	}
}

func (c *canvasImpl) press(x, y int) {
	if c.enabled && c.onPress != nil {
		c.onPress(x, y)
	}
}
