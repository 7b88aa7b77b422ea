// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terrazzo-ui/terrazzo/style"
)

func TestBoxReparenting(t *testing.T) {
	label := NewLabel("x")
	a := NewBox()
	b := NewBox()
	require.NoError(t, a.Add(label))
	assert.Equal(t, Widget(a), label.Parent())

	// Adding to another box moves the widget.
	require.NoError(t, b.Add(label))
	assert.Empty(t, a.Children())
	assert.Equal(t, []Widget{label}, b.Children())
	assert.Equal(t, Widget(b), label.Parent())
}

func TestBoxInsertAndRemove(t *testing.T) {
	first := NewLabel("1")
	third := NewLabel("3")
	box := NewBox(first, third)

	second := NewLabel("2")
	require.NoError(t, box.Insert(1, second))
	assert.Equal(t, []Widget{first, second, third}, box.Children())

	assert.Error(t, box.Insert(7, NewLabel("x")))

	require.NoError(t, box.Remove(second))
	assert.Equal(t, []Widget{first, third}, box.Children())
	assert.Error(t, box.Remove(second), "removing a non-child is an error")
}

func TestBoxReaddMovesToEnd(t *testing.T) {
	first := NewLabel("1")
	second := NewLabel("2")
	box := NewBox(first, second)

	// Re-adding a child of this same box moves it to the end.
	require.NoError(t, box.Add(first))
	assert.Equal(t, []Widget{second, first}, box.Children())
	assert.Equal(t, Widget(box), first.Parent())

	// Insert within the same box honors the requested position.
	require.NoError(t, box.Insert(0, first))
	assert.Equal(t, []Widget{first, second}, box.Children())
}

func TestBoxRejectsSelf(t *testing.T) {
	box := NewBox()
	assert.Error(t, box.Add(box))
}

func TestSliderValidation(t *testing.T) {
	s := NewSlider()
	assert.Equal(t, 0.5, s.Value(), "defaults to the mid-point of [0, 1]")

	err := s.SetValue(2)
	assert.ErrorContains(t, err, "not in range")

	assert.ErrorContains(t, s.SetRange(5, 5), "not smaller")
	require.NoError(t, s.SetRange(0, 10))
	assert.Equal(t, 0.5, s.Value(), "in-range value survives a range change")

	require.NoError(t, s.SetRange(2, 10))
	assert.Equal(t, 2.0, s.Value(), "out-of-range value clamps to the bound")
}

func TestSliderTicks(t *testing.T) {
	s := NewSlider()
	require.NoError(t, s.SetRange(0, 10))
	assert.ErrorContains(t, s.SetTickCount(1), "at least 2")
	require.NoError(t, s.SetTickCount(6)) // ticks at 0, 2, 4, ..., 10

	step, ok := s.TickStep()
	require.True(t, ok)
	assert.Equal(t, 2.0, step)

	require.NoError(t, s.SetValue(4.9))
	assert.Equal(t, 4.0, s.Value(), "values snap to the nearest tick")

	tick, ok := s.TickValue()
	require.True(t, ok)
	assert.Equal(t, 3, tick, "ticks are numbered from 1")

	require.NoError(t, s.SetTickValue(6))
	assert.Equal(t, 10.0, s.Value())

	require.NoError(t, s.SetTickCount(0))
	_, ok = s.TickStep()
	assert.False(t, ok, "a continuous slider has no tick step")
}

func TestSliderRangeChangeReroundsToTicks(t *testing.T) {
	s := NewSlider()
	require.NoError(t, s.SetRange(0, 10))
	require.NoError(t, s.SetTickCount(6))
	require.NoError(t, s.SetValue(4))
	var fired int
	s.OnChange(func(*Slider) { fired++ })

	// New ticks at 3, 4.4, 5.8, ...; the old value re-rounds onto them.
	require.NoError(t, s.SetRange(3, 10))
	assert.InDelta(t, 4.4, s.Value(), 1e-9)
	assert.Equal(t, 1, fired)

	// A clamped value lands on the nearest bound, which is a tick.
	require.NoError(t, s.SetRange(5, 10))
	assert.Equal(t, 5.0, s.Value())
}

func TestSliderChangeFiresOnlyOnNewValue(t *testing.T) {
	s := NewSlider()
	require.NoError(t, s.SetRange(0, 10))
	var fired int
	s.OnChange(func(*Slider) { fired++ })

	require.NoError(t, s.SetValue(3))
	require.NoError(t, s.SetValue(3))
	assert.Equal(t, 1, fired)
}

func TestProgressBar(t *testing.T) {
	p := NewProgressBar()
	assert.ErrorContains(t, p.SetMax(-1), "is negative")

	require.NoError(t, p.SetMax(10))
	p.SetValue(12)
	assert.Equal(t, 10.0, p.Value(), "value clamps to max")
	p.SetValue(-3)
	assert.Equal(t, 0.0, p.Value())

	require.NoError(t, p.SetMax(0))
	assert.False(t, p.Running())
	p.Start()
	assert.True(t, p.Running())
	p.Stop()
	assert.False(t, p.Running())
}

func TestDividerNeverDisables(t *testing.T) {
	d := NewDivider()
	assert.Equal(t, style.Row, d.Direction())
	d.SetEnabled(false)
	assert.True(t, d.Enabled())
}

func TestSplitContainer(t *testing.T) {
	s := NewSplitContainer()
	assert.Equal(t, style.Column, s.Direction())
	assert.Equal(t, style.Row, s.PackStyle().Direction,
		"panels flow perpendicular to the divider")

	left := NewBox()
	right := NewBox()
	require.NoError(t, s.SetContent(Panel{Content: left}, Panel{Content: right, Flex: 3}))
	assert.Equal(t, float32(1), left.PackStyle().Flex, "flex defaults to 1")
	assert.Equal(t, float32(3), right.PackStyle().Flex)
	assert.Equal(t, []Widget{left, right}, s.Children())

	err := s.SetContent(Panel{Content: left, Flex: -1}, Panel{Content: right})
	assert.ErrorContains(t, err, "must be positive")

	s.SetDirection(style.Row)
	assert.Equal(t, style.Column, s.PackStyle().Direction)
}

func TestWidgetIDs(t *testing.T) {
	a := NewButton("a")
	b := NewButton("b")
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Contains(t, a.ID(), "button-")

	a.SetID("main-action")
	assert.Equal(t, "main-action", a.ID())
}
