// SPDX-License-Identifier: Unlicense OR MIT

package term

import (
	"context"
	"fmt"
	"image"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/terrazzo-ui/terrazzo/backend"
	"github.com/terrazzo-ui/terrazzo/unit"
)

type appImpl struct {
	factory *Factory
	info    backend.AppInfo

	main    *windowImpl
	menu    []backend.MenuItem
	program atomic.Pointer[tea.Program]
}

func newApp(f *Factory, info backend.AppInfo) *appImpl {
	return &appImpl{factory: f, info: info}
}

func (a *appImpl) NewWindow() (backend.Window, error) {
	w := &windowImpl{app: a, cols: 80, rows: 24}
	if a.main == nil {
		a.main = w
	}
	return w, nil
}

// SetMainMenu replaces the command menu. A terminal has no menu bar;
// items are reachable through their shortcuts.
func (a *appImpl) SetMainMenu(items []backend.MenuItem) {
	a.menu = items
}

// Run drives the main window's bubbletea program until the context is
// canceled or Quit is called.
func (a *appImpl) Run(ctx context.Context) error {
	if a.main == nil {
		return fmt.Errorf("term: no window to run")
	}
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if a.factory.input != nil {
		opts = append(opts, tea.WithInput(a.factory.input))
	}
	if a.factory.output != nil {
		opts = append(opts, tea.WithOutput(a.factory.output))
	}
	p := tea.NewProgram(model{win: a.main}, opts...)
	a.program.Store(p)
	defer a.program.Store(nil)
	_, err := p.Run()
	if err == tea.ErrProgramKilled && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func (a *appImpl) Quit() {
	if p := a.program.Load(); p != nil {
		p.Send(quitMsg{})
	}
}

func (a *appImpl) Do(fn func()) {
	if p := a.program.Load(); p != nil {
		p.Send(funcMsg{fn})
		return
	}
	fn()
}

type (
	quitMsg   struct{}
	redrawMsg struct{}
	funcMsg   struct{ fn func() }
)

// model adapts a window to the bubbletea update loop.
type model struct {
	win *windowImpl
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.win.cols, m.win.rows = msg.Width, msg.Height
		m.win.relayout()
	case redrawMsg:
		m.win.relayout()
	case funcMsg:
		msg.fn()
		m.win.relayout()
	case quitMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.win.handleKey(msg)
		m.win.relayout()
	}
	return m, nil
}

func (m model) View() string {
	if !m.win.visible {
		return ""
	}
	return m.win.render()
}

type windowImpl struct {
	app     *appImpl
	title   string
	cols    int
	rows    int
	root    backend.Widget
	onFrame func(viewport image.Point)
	visible bool

	focus int // index into focusables, -1 for none
}

func (w *windowImpl) SetTitle(title string) { w.title = title }

// SetSize is advisory: the terminal dictates the real size until the
// first WindowSizeMsg arrives.
func (w *windowImpl) SetSize(width, height unit.Dp) {
	w.cols = int(width)
	w.rows = int(height) / cellH
	w.relayout()
}

func (w *windowImpl) Metric() unit.Metric { return metric }

func (w *windowImpl) SetContent(root backend.Widget) {
	w.root = root
	w.focus = -1
}

func (w *windowImpl) OnFrame(fn func(viewport image.Point)) { w.onFrame = fn }

func (w *windowImpl) Show() { w.visible = true }
func (w *windowImpl) Hide() { w.visible = false }

func (w *windowImpl) Close() {
	w.visible = false
	w.root = nil
	if w.app.main == w {
		w.app.Quit()
	}
}

// Redraw recomputes layout synchronously and schedules a repaint when
// the program is running.
func (w *windowImpl) Redraw() {
	w.relayout()
	if p := w.app.program.Load(); p != nil {
		p.Send(redrawMsg{})
	}
}

func (w *windowImpl) relayout() {
	if w.onFrame != nil {
		w.onFrame(image.Point{X: w.cols, Y: w.rows * cellH})
	}
}

func (w *windowImpl) Screenshot() (image.Image, error) {
	return nil, fmt.Errorf("term: no raster surface")
}

// handleKey routes a key to a menu shortcut, focus handling, or the
// focused widget.
func (w *windowImpl) handleKey(msg tea.KeyMsg) {
	for _, item := range w.app.menu {
		if item.Enabled && item.Shortcut != "" && item.Shortcut == msg.String() {
			item.Invoke()
			return
		}
	}
	focusables := collectFocusables(w.root)
	switch msg.String() {
	case "tab":
		w.moveFocus(focusables, 1)
		return
	case "shift+tab":
		w.moveFocus(focusables, -1)
		return
	}
	if w.focus < 0 || w.focus >= len(focusables) {
		return
	}
	switch target := focusables[w.focus].(type) {
	case *buttonImpl:
		if s := msg.String(); s == "enter" || s == " " {
			target.activate()
		}
	case *switchImpl:
		if s := msg.String(); s == "enter" || s == " " {
			target.toggle()
		}
	case *sliderImpl:
		switch msg.String() {
		case "left":
			target.step(-1)
		case "right":
			target.step(1)
		}
	case *listImpl:
		switch msg.String() {
		case "up":
			target.move(-1)
		case "down":
			target.move(1)
		case "enter":
			target.activate()
		}
	case *textInputImpl:
		switch msg.Type {
		case tea.KeyEnter:
			target.confirm()
		case tea.KeyBackspace:
			if v := target.value; v != "" {
				target.edit(v[:len(v)-1])
			}
		case tea.KeySpace:
			target.edit(target.value + " ")
		case tea.KeyRunes:
			target.edit(target.value + string(msg.Runes))
		}
	}
}

func (w *windowImpl) moveFocus(focusables []backend.Widget, dir int) {
	if len(focusables) == 0 {
		w.focus = -1
		return
	}
	for _, f := range focusables {
		stateOf(f).focused = false
	}
	w.focus = (w.focus + dir + len(focusables)) % len(focusables)
	stateOf(focusables[w.focus]).focused = true
}

// collectFocusables walks the impl tree in paint order gathering the
// widgets that respond to keys. Hidden and disabled widgets are
// skipped.
func collectFocusables(root backend.Widget) []backend.Widget {
	var out []backend.Widget
	var walk func(w backend.Widget)
	walk = func(w backend.Widget) {
		if w == nil {
			return
		}
		state := stateOf(w)
		if state == nil || state.hidden() {
			return
		}
		switch impl := w.(type) {
		case *boxImpl:
			for _, c := range impl.children {
				walk(c)
			}
			return
		case *splitImpl:
			for _, p := range impl.panels {
				walk(p)
			}
			return
		case *buttonImpl, *switchImpl, *sliderImpl, *textInputImpl, *listImpl:
			if state.enabled {
				out = append(out, w)
			}
		}
	}
	walk(root)
	return out
}
