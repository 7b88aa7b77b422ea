// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"

	"github.com/terrazzo-ui/terrazzo/backend"
)

// ProgressBar shows the progress of a long running task.
//
// A bar with a positive Max is determinate and shows Value/Max. A Max
// of zero makes the bar indeterminate: it animates while running
// without showing a specific amount of progress.
type ProgressBar struct {
	Base
	max     float64
	value   float64
	running bool
}

// NewProgressBar returns a determinate, stopped bar over [0, 1].
func NewProgressBar() *ProgressBar {
	return &ProgressBar{Base: newBase("progressbar"), max: 1}
}

// Max returns the value at which the task is complete, or 0 for an
// indeterminate bar.
func (p *ProgressBar) Max() float64 { return p.max }

// SetMax sets the completion value. 0 switches the bar to
// indeterminate; negative values are an error.
func (p *ProgressBar) SetMax(max float64) error {
	if max < 0 {
		return fmt.Errorf("max value %v is negative", max)
	}
	p.max = max
	if impl, ok := p.impl.(backend.ProgressBar); ok {
		impl.SetMax(max)
	}
	p.Refresh()
	return nil
}

// Value returns the current progress. Always 0 for an indeterminate
// bar.
func (p *ProgressBar) Value() float64 {
	if p.max == 0 {
		return 0
	}
	return p.value
}

// SetValue sets the current progress, clamped to [0, Max]. Ignored for
// an indeterminate bar.
func (p *ProgressBar) SetValue(value float64) {
	if p.max == 0 {
		return
	}
	if value < 0 {
		value = 0
	}
	if value > p.max {
		value = p.max
	}
	p.value = value
	if impl, ok := p.impl.(backend.ProgressBar); ok {
		impl.SetValue(value)
	}
	p.Refresh()
}

// Running reports whether an indeterminate bar is animating.
func (p *ProgressBar) Running() bool { return p.running }

// Start begins the indeterminate animation.
func (p *ProgressBar) Start() { p.setRunning(true) }

// Stop halts the indeterminate animation.
func (p *ProgressBar) Stop() { p.setRunning(false) }

func (p *ProgressBar) setRunning(running bool) {
	p.running = running
	if impl, ok := p.impl.(backend.ProgressBar); ok {
		impl.SetRunning(running)
	}
	p.Refresh()
}

func (p *ProgressBar) attach(host Host, parent Widget) error {
	impl := host.Factory().NewProgressBar()
	p.attachBase(host, parent, impl)
	impl.SetMax(p.max)
	impl.SetValue(p.value)
	impl.SetRunning(p.running)
	return nil
}
