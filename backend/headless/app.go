// SPDX-License-Identifier: Unlicense OR MIT

package headless

import (
	"context"
	"image"
	"sync"
	"sync/atomic"

	"github.com/terrazzo-ui/terrazzo/backend"
	"github.com/terrazzo-ui/terrazzo/unit"
)

type appImpl struct {
	factory *Factory
	info    backend.AppInfo

	running atomic.Bool
	funcs   chan func()
	quit    chan struct{}

	menuMu sync.Mutex
	menu   []backend.MenuItem
}

func newApp(f *Factory, info backend.AppInfo) *appImpl {
	return &appImpl{
		factory: f,
		info:    info,
		funcs:   make(chan func(), 16),
		quit:    make(chan struct{}),
	}
}

func (a *appImpl) NewWindow() (backend.Window, error) {
	return &windowImpl{
		factory: a.factory,
		width:   640,
		height:  480,
	}, nil
}

// SetMainMenu records the flattened menu. The headless backend has no
// menu bar to render; tests read it back through Factory.MainMenu.
func (a *appImpl) SetMainMenu(items []backend.MenuItem) {
	a.menuMu.Lock()
	a.menu = items
	a.menuMu.Unlock()
}

func (a *appImpl) mainMenu() []backend.MenuItem {
	a.menuMu.Lock()
	defer a.menuMu.Unlock()
	return a.menu
}

// Run processes marshalled funcs until Quit or context cancellation.
func (a *appImpl) Run(ctx context.Context) error {
	a.running.Store(true)
	defer a.running.Store(false)
	for {
		select {
		case fn := <-a.funcs:
			fn()
		case <-a.quit:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (a *appImpl) Quit() {
	select {
	case <-a.quit:
	default:
		close(a.quit)
	}
}

// Do runs fn on the loop when Run is active, otherwise inline. Tests
// exercising widgets without a main loop stay synchronous.
func (a *appImpl) Do(fn func()) {
	if a.running.Load() {
		a.funcs <- fn
		return
	}
	fn()
}

type windowImpl struct {
	factory *Factory
	title   string
	width   unit.Dp
	height  unit.Dp
	root    backend.Widget
	onFrame func(viewport image.Point)
	visible bool
	closed  bool
}

func (w *windowImpl) SetTitle(title string) { w.title = title }

func (w *windowImpl) SetSize(width, height unit.Dp) {
	w.width, w.height = width, height
	w.Redraw()
}

func (w *windowImpl) Metric() unit.Metric { return w.factory.metric }

func (w *windowImpl) SetContent(root backend.Widget) { w.root = root }

func (w *windowImpl) OnFrame(fn func(viewport image.Point)) { w.onFrame = fn }

func (w *windowImpl) Show() { w.visible = true }
func (w *windowImpl) Hide() { w.visible = false }

func (w *windowImpl) Close() {
	w.visible = false
	w.closed = true
	w.root = nil
}

// Redraw runs the layout callback synchronously. After it returns,
// every impl holds its current box.
func (w *windowImpl) Redraw() {
	if w.onFrame != nil {
		w.onFrame(w.viewport())
	}
}

func (w *windowImpl) viewport() image.Point {
	m := w.factory.metric
	return image.Point{X: m.Dp(w.width), Y: m.Dp(w.height)}
}

func (w *windowImpl) Screenshot() (image.Image, error) {
	w.Redraw()
	return render(w)
}
