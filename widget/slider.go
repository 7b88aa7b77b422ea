// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"
	"image"
	"math"

	"github.com/terrazzo-ui/terrazzo/backend"
	"github.com/terrazzo-ui/terrazzo/layout"
	"github.com/terrazzo-ui/terrazzo/unit"
)

// sliderMinWidth keeps sliders usable regardless of their backend's
// intrinsic size.
const sliderMinWidth = unit.Dp(100)

// Slider selects a value from a continuous or discrete range.
//
// A slider with a tick count is discrete: its value snaps to the
// nearest of TickCount equally spaced positions. A tick count of zero
// means continuous.
type Slider struct {
	Base
	value     float64
	min, max  float64
	tickCount int

	// Backends are inconsistent about producing change events for
	// programmatic updates, so suppression is handled here.
	suppress bool

	onChange  func(*Slider)
	onPress   func(*Slider)
	onRelease func(*Slider)
}

// NewSlider returns a continuous slider over [0, 1] at the mid-point.
func NewSlider() *Slider {
	return &Slider{
		Base:  newBase("slider"),
		value: 0.5,
		min:   0,
		max:   1,
	}
}

// Value returns the current value.
func (s *Slider) Value() float64 {
	if impl, ok := s.impl.(backend.Slider); ok {
		return impl.Value()
	}
	return s.value
}

// SetValue sets the current value. Discrete sliders round to the
// nearest tick. The change handler fires when the resulting value
// differs from the previous one.
func (s *Slider) SetValue(value float64) error {
	if value < s.min || value > s.max {
		return fmt.Errorf("value %v is not in range %v - %v", value, s.min, s.max)
	}
	value = s.snap(value)
	old := s.Value()
	s.setValueQuiet(value)
	if value != old && s.onChange != nil {
		s.onChange(s)
	}
	return nil
}

// snap rounds value to the nearest tick of a discrete slider.
func (s *Slider) snap(value float64) float64 {
	if step, ok := s.TickStep(); ok {
		value = s.min + math.Round((value-s.min)/step)*step
	}
	return value
}

func (s *Slider) setValueQuiet(value float64) {
	s.value = value
	if impl, ok := s.impl.(backend.Slider); ok {
		s.suppress = true
		impl.SetValue(value)
		s.suppress = false
	}
}

// Range returns the allowed value range.
func (s *Slider) Range() (min, max float64) { return s.min, s.max }

// Min returns the minimum allowed value.
func (s *Slider) Min() float64 { return s.min }

// Max returns the maximum allowed value.
func (s *Slider) Max() float64 { return s.max }

// SetRange sets the allowed value range. A value outside the new range
// is clamped to the nearest bound; a discrete slider's value then
// re-rounds to the new ticks. The change handler fires when the value
// moved.
func (s *Slider) SetRange(min, max float64) error {
	if min >= max {
		return fmt.Errorf("min value %v is not smaller than max value %v", min, max)
	}
	old := s.Value()
	s.min, s.max = min, max
	if impl, ok := s.impl.(backend.Slider); ok {
		s.suppress = true
		impl.SetRange(min, max)
		s.suppress = false
	}
	clamped := s.snap(math.Min(max, math.Max(min, old)))
	s.setValueQuiet(clamped)
	if clamped != old && s.onChange != nil {
		s.onChange(s)
	}
	return nil
}

// TickCount returns the number of ticks, or 0 for a continuous slider.
func (s *Slider) TickCount() int { return s.tickCount }

// SetTickCount makes the slider discrete with count ticks, or
// continuous with a count of 0. A discrete slider needs at least 2
// ticks, for the min and the max. The current value is re-rounded to
// the new ticks.
func (s *Slider) SetTickCount(count int) error {
	if count != 0 && count < 2 {
		return fmt.Errorf("tick count must be at least 2")
	}
	s.tickCount = count
	if impl, ok := s.impl.(backend.Slider); ok {
		impl.SetTickCount(count)
	}
	// Rounds to the new ticks if necessary.
	return s.SetValue(s.Value())
}

// TickStep returns the value difference between adjacent ticks. ok is
// false for a continuous slider.
func (s *Slider) TickStep() (step float64, ok bool) {
	if s.tickCount == 0 {
		return 0, false
	}
	return (s.max - s.min) / float64(s.tickCount-1), true
}

// TickValue returns the current value in ticks, counting from 1 at the
// minimum. ok is false for a continuous slider.
func (s *Slider) TickValue() (tick int, ok bool) {
	step, ok := s.TickStep()
	if !ok {
		return 0, false
	}
	return int(math.Round((s.Value()-s.min)/step)) + 1, true
}

// SetTickValue sets the value in ticks, counting from 1 at the
// minimum. An error is returned for a continuous slider.
func (s *Slider) SetTickValue(tick int) error {
	step, ok := s.TickStep()
	if !ok {
		return fmt.Errorf("cannot set the tick value of a continuous slider")
	}
	return s.SetValue(s.min + float64(tick-1)*step)
}

// OnChange sets the handler invoked when the value changes, either by
// the user or programmatically. Setting the slider to its existing
// value does not fire the handler.
func (s *Slider) OnChange(fn func(*Slider)) { s.onChange = fn }

// OnPress sets the handler invoked when the user grabs the slider.
func (s *Slider) OnPress(fn func(*Slider)) { s.onPress = fn }

// OnRelease sets the handler invoked when the user releases the
// slider.
func (s *Slider) OnRelease(fn func(*Slider)) { s.onRelease = fn }

// Measure implements layout.Node, enforcing the minimum usable width.
func (s *Slider) Measure(ctx *layout.Context) image.Point {
	sz := s.Base.Measure(ctx)
	if min := ctx.Metric.Dp(sliderMinWidth); sz.X < min {
		sz.X = min
	}
	return sz
}

func (s *Slider) attach(host Host, parent Widget) error {
	impl := host.Factory().NewSlider()
	s.attachBase(host, parent, impl)
	impl.SetRange(s.min, s.max)
	impl.SetTickCount(s.tickCount)
	impl.SetValue(s.value)
	impl.OnChange(func() {
		if s.suppress {
			return
		}
		s.value = impl.Value()
		if s.onChange != nil {
			s.onChange(s)
		}
	})
	impl.OnPress(func() {
		if s.onPress != nil {
			s.onPress(s)
		}
	})
	impl.OnRelease(func() {
		if s.onRelease != nil {
			s.onRelease(s)
		}
	})
	return nil
}
