// SPDX-License-Identifier: Unlicense OR MIT

package term

import (
	"context"
	"image"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terrazzo-ui/terrazzo/app"
	"github.com/terrazzo-ui/terrazzo/backend"
	"github.com/terrazzo-ui/terrazzo/layout"
	"github.com/terrazzo-ui/terrazzo/style"
	"github.com/terrazzo-ui/terrazzo/widget"
)

func TestCellRect(t *testing.T) {
	r := cellRect(image.Rect(3, 0, 10, 4))
	assert.Equal(t, image.Rect(3, 0, 10, 2), r)

	// A partial last row still occupies a cell.
	r = cellRect(image.Rect(0, 2, 5, 5))
	assert.Equal(t, image.Rect(0, 1, 5, 3), r)
}

func TestGridText(t *testing.T) {
	g := newGrid(10, 2)
	g.text(2, 0, "hi", cell{})
	assert.Equal(t, 'h', g.cells[2].r)
	assert.Equal(t, 'i', g.cells[3].r)

	// Out of range writes are dropped.
	g.text(8, 0, "long", cell{})
	assert.Equal(t, 'o', g.cells[9].r)

	out := renderGrid(g)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "hi")
}

func TestClip(t *testing.T) {
	assert.Equal(t, "abc", clip("abcdef", 3))
	assert.Equal(t, "abc", clip("abc", 10))
	assert.Equal(t, "", clip("abc", 0))
}

func TestSliderKnobPosition(t *testing.T) {
	impl := &sliderImpl{min: 0, max: 10, value: 5}
	impl.box = layout.Box{Content: image.Rect(0, 0, 21, 2)}

	g := newGrid(21, 1)
	drawSlider(g, cellRect(impl.box.Content), impl, cell{})
	assert.Equal(t, '●', g.cells[10].r)
	assert.Equal(t, '─', g.cells[0].r)
	assert.Equal(t, '─', g.cells[20].r)
}

func TestProgressFill(t *testing.T) {
	impl := &progressBarImpl{max: 10, value: 5}
	g := newGrid(10, 1)
	drawProgress(g, image.Rect(0, 0, 10, 1), impl, cell{})
	assert.Equal(t, '█', g.cells[4].r)
	assert.Equal(t, '░', g.cells[5].r)

	// Indeterminate and stopped: all empty.
	impl = &progressBarImpl{max: 0}
	g = newGrid(10, 1)
	drawProgress(g, image.Rect(0, 0, 10, 1), impl, cell{})
	assert.Equal(t, '░', g.cells[5].r)

	// Indeterminate and running: a center band.
	impl.running = true
	g = newGrid(12, 1)
	drawProgress(g, image.Rect(0, 0, 12, 1), impl, cell{})
	assert.Equal(t, '░', g.cells[0].r)
	assert.Equal(t, '█', g.cells[5].r)
}

func testTree() (*windowImpl, *buttonImpl, *textInputImpl, *sliderImpl) {
	button := &buttonImpl{}
	button.enabled = true
	input := &textInputImpl{}
	input.enabled = true
	disabled := &buttonImpl{}
	slider := &sliderImpl{min: 0, max: 10}
	slider.enabled = true
	root := &boxImpl{children: []backend.Widget{button, input, disabled, slider}}

	w := &windowImpl{app: &appImpl{}, cols: 80, rows: 24, focus: -1}
	w.SetContent(root)
	return w, button, input, slider
}

func TestFocusCycleSkipsDisabled(t *testing.T) {
	w, button, input, slider := testTree()

	w.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, button.focused)

	w.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, button.focused)
	assert.True(t, input.focused)

	// The disabled button is not in the cycle.
	w.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, slider.focused)

	w.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, button.focused)

	w.handleKey(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.True(t, slider.focused)
}

func TestKeyRouting(t *testing.T) {
	w, button, input, slider := testTree()

	presses := 0
	button.OnPress(func() { presses++ })
	w.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	w.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, presses)

	var typed string
	input.OnChange(func(v string) { typed = v })
	w.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	w.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	w.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")})
	assert.Equal(t, "hi", typed)
	w.handleKey(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "h", input.value)

	w.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	w.handleKey(tea.KeyMsg{Type: tea.KeyRight})
	assert.InDelta(t, 0.5, slider.value, 1e-9)
	w.handleKey(tea.KeyMsg{Type: tea.KeyLeft})
	assert.InDelta(t, 0.0, slider.value, 1e-9)
}

func TestRenderShowsTree(t *testing.T) {
	w, button, input, _ := testTree()
	button.text = "Save"
	button.box = layout.Box{Content: image.Rect(0, 0, 8, 2)}
	input.value = "draft"
	input.box = layout.Box{Content: image.Rect(0, 2, 20, 4)}
	w.visible = true
	w.cols, w.rows = 40, 6

	out := w.render()
	assert.Contains(t, out, "[ Save ]")
	assert.Contains(t, out, "draft")
}

func TestHiddenSubtreeNotPainted(t *testing.T) {
	label := &labelImpl{text: "secret"}
	label.box = layout.Box{Content: image.Rect(0, 0, 10, 2)}
	label.style.Visibility = style.Hidden
	root := &boxImpl{children: []backend.Widget{label}}

	w := &windowImpl{app: &appImpl{}, cols: 20, rows: 3, visible: true}
	w.SetContent(root)
	assert.NotContains(t, w.render(), "secret")
}

// TestProgramButtonPress drives a real bubbletea program through piped
// input: tab focuses the button, enter presses it.
func TestProgramButtonPress(t *testing.T) {
	pr, pw := io.Pipe()
	f := NewFactory(WithInput(pr), WithOutput(io.Discard))

	meta := app.Metadata{Name: "probe", FormalName: "Probe", ID: "dev.terrazzo.probe"}
	a, err := app.NewWithFactory(meta, f)
	require.NoError(t, err)

	pressed := make(chan struct{}, 1)
	a.OnStartup = func(a *app.App) widget.Widget {
		button := widget.NewButton("OK")
		button.OnPress(func(*widget.Button) { pressed <- struct{}{} })
		return widget.NewBox(button)
	}

	done := make(chan error, 1)
	go func() { done <- a.Run(context.Background()) }()

	go func() {
		// Tab to focus, enter to press.
		pw.Write([]byte("\t\r"))
	}()

	select {
	case <-pressed:
	case <-time.After(5 * time.Second):
		t.Fatal("button press never arrived")
	}

	a.Quit()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("program did not exit")
	}
	pw.Close()
}

func TestMenuShortcut(t *testing.T) {
	w, button, _, _ := testTree()
	saved := 0
	w.app.SetMainMenu([]backend.MenuItem{
		{ID: "save", Shortcut: "ctrl+s", Enabled: true, Invoke: func() { saved++ }},
		{ID: "noop", Shortcut: "ctrl+n", Enabled: false},
	})

	w.handleKey(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Equal(t, 1, saved)

	// A disabled item's shortcut falls through to widget routing.
	presses := 0
	button.OnPress(func() { presses++ })
	w.handleKey(tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, 0, presses)
	assert.Equal(t, 1, saved)
}
