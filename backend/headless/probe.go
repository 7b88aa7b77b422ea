// SPDX-License-Identifier: Unlicense OR MIT

package headless

import (
	"fmt"

	"github.com/terrazzo-ui/terrazzo/layout"
	"github.com/terrazzo-ui/terrazzo/widget"
	"github.com/terrazzo-ui/terrazzo/widget/canvas"
)

// WidgetProbe exposes the recorded backend state of one widget and
// simulates user interaction with it. Obtain one with ProbeWidget
// after the widget is attached to a headless window.
type WidgetProbe struct {
	w     widget.Widget
	state *widgetState
}

// ProbeWidget returns the probe for an attached widget. It panics when
// the widget is not attached to a headless backend; a probe on an
// unattached widget is always a test bug.
func ProbeWidget(w widget.Widget) *WidgetProbe {
	impl := w.Impl()
	if impl == nil {
		panic(fmt.Sprintf("headless: probing unattached widget %s", w.ID()))
	}
	state := stateOf(impl)
	if state == nil {
		panic(fmt.Sprintf("headless: widget %s is not on the headless backend", w.ID()))
	}
	return &WidgetProbe{w: w, state: state}
}

// Redraw flushes pending style and layout changes for the widget's
// window. Assertions on Box or paint state follow a Redraw.
func (p *WidgetProbe) Redraw() {
	p.w.Refresh()
}

// Box returns the geometry computed at the last redraw.
func (p *WidgetProbe) Box() layout.Box { return p.state.box }

// Enabled reports the enabled state pushed to the backend.
func (p *WidgetProbe) Enabled() bool { return p.state.enabled }

// Focused reports whether the widget received focus.
func (p *WidgetProbe) Focused() bool { return p.state.focused }

// Hidden reports whether the widget's style hides it from painting.
func (p *WidgetProbe) Hidden() bool { return p.state.hidden() }

// Text returns the displayed text of text-bearing widgets, the empty
// string otherwise.
func (p *WidgetProbe) Text() string {
	switch impl := p.w.Impl().(type) {
	case *labelImpl:
		return impl.text
	case *buttonImpl:
		return impl.text
	case *textInputImpl:
		return impl.value
	case *switchImpl:
		return impl.text
	}
	return ""
}

// Press simulates a button press.
func (p *WidgetProbe) Press() {
	p.w.Impl().(*buttonImpl).press()
}

// Type simulates the user replacing a text input's content.
func (p *WidgetProbe) Type(value string) {
	p.w.Impl().(*textInputImpl).typeValue(value)
}

// Confirm simulates the user confirming a text input.
func (p *WidgetProbe) Confirm() {
	p.w.Impl().(*textInputImpl).confirm()
}

// Toggle simulates the user flipping a switch.
func (p *WidgetProbe) Toggle() {
	p.w.Impl().(*switchImpl).toggle()
}

// Drag simulates a slider press, drag to value and release.
func (p *WidgetProbe) Drag(value float64) {
	p.w.Impl().(*sliderImpl).drag(value)
}

// SelectRow simulates selecting a list row; -1 clears the selection.
func (p *WidgetProbe) SelectRow(index int) {
	p.w.Impl().(*listImpl).selectRow(index)
}

// PerformPrimaryAction simulates the primary row action, e.g. a swipe.
// A no-op unless the action is enabled.
func (p *WidgetProbe) PerformPrimaryAction(index int) {
	p.w.Impl().(*listImpl).primaryAction(index)
}

// PerformSecondaryAction simulates the secondary row action. A no-op
// unless the action is enabled.
func (p *WidgetProbe) PerformSecondaryAction(index int) {
	p.w.Impl().(*listImpl).secondaryAction(index)
}

// PullToRefresh simulates the refresh gesture. A no-op unless refresh
// is enabled.
func (p *WidgetProbe) PullToRefresh() {
	p.w.Impl().(*listImpl).refresh()
}

// Rows returns the rows pushed to a list impl.
func (p *WidgetProbe) Rows() []string {
	impl := p.w.Impl().(*listImpl)
	titles := make([]string, len(impl.rows))
	for i, r := range impl.rows {
		titles[i] = r.Title
	}
	return titles
}

// ScrolledTo returns the last row index a list scrolled to.
func (p *WidgetProbe) ScrolledTo() int {
	return p.w.Impl().(*listImpl).scrolled
}

// CanvasOps returns the drawing operations pushed to a canvas impl.
func (p *WidgetProbe) CanvasOps() []canvas.Op {
	return p.w.Impl().(*canvasImpl).ops
}

// PressCanvas simulates a press at (x, y) in canvas content pixels.
func (p *WidgetProbe) PressCanvas(x, y int) {
	p.w.Impl().(*canvasImpl).press(x, y)
}
