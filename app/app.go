// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app ties the widget tree, the layout engine and a backend
together into a running application.

	meta := app.Metadata{Name: "hello", FormalName: "Hello", ID: "org.example.hello"}
	a, err := app.New(meta)
	if err != nil {
		log.Fatal(err)
	}
	a.OnStartup = func(a *app.App) widget.Widget {
		return widget.NewLabel("Hello, world")
	}
	if err := a.Run(context.Background()); err != nil {
		log.Fatal(err)
	}

New selects the backend (see backend.Load), Run creates the main
window, invokes OnStartup for its content and enters the backend main
loop.
*/
package app

import (
	"context"
	"fmt"
	"log/slog"

	terrazzo "github.com/terrazzo-ui/terrazzo"
	"github.com/terrazzo-ui/terrazzo/backend"
	"github.com/terrazzo-ui/terrazzo/command"
	"github.com/terrazzo-ui/terrazzo/hardware/geo"
	"github.com/terrazzo-ui/terrazzo/widget"
)

// App is one running application.
type App struct {
	// OnStartup builds the main window content. Called once from Run,
	// after the backend app exists and before the main window shows.
	// A nil OnStartup leaves the main window empty.
	OnStartup func(a *App) widget.Widget
	// OnExit is consulted before the app quits. Returning false vetoes
	// the exit.
	OnExit func(a *App) bool

	meta    Metadata
	factory backend.Factory
	impl    backend.App

	commands *command.Set
	main     *Window
}

// New creates an app for the given metadata on the selected backend.
func New(meta Metadata) (*App, error) {
	if err := meta.Validate(); err != nil {
		return nil, err
	}
	factory, err := backend.Load()
	if err != nil {
		return nil, err
	}
	return NewWithFactory(meta, factory)
}

// NewWithFactory creates an app on an explicit backend factory. Used
// by tests and embedders that bypass backend selection.
func NewWithFactory(meta Metadata, factory backend.Factory) (*App, error) {
	if err := meta.Validate(); err != nil {
		return nil, err
	}
	impl, err := factory.NewApp(meta.Info())
	if err != nil {
		return nil, fmt.Errorf("app: creating %s backend app: %w", factory.Name(), err)
	}
	a := &App{
		meta:     meta,
		factory:  factory,
		impl:     impl,
		commands: command.NewSet(),
	}
	a.commands.OnChange(func() {
		a.impl.SetMainMenu(a.commands.Menu())
	})
	terrazzo.Logger().Info("app created",
		slog.String("app", meta.Name),
		slog.String("backend", factory.Name()))
	return a, nil
}

// Metadata returns the app's metadata.
func (a *App) Metadata() Metadata { return a.meta }

// Factory returns the active backend factory.
func (a *App) Factory() backend.Factory { return a.factory }

// Commands returns the app's command set. Backends build menus from
// it.
func (a *App) Commands() *command.Set { return a.commands }

// MainWindow returns the app's main window. Nil before Run (or
// Startup) has created it.
func (a *App) MainWindow() *Window { return a.main }

// Paths returns the per-OS storage directories for this app.
func (a *App) Paths() backend.Paths {
	return a.factory.Paths(a.meta.Info())
}

// Location returns the app's geolocation service, or
// geo.ErrNotAvailable on backends without one.
func (a *App) Location() (*geo.Service, error) {
	return geo.New(a.factory)
}

// NewWindow creates an additional window owned by this app.
func (a *App) NewWindow(title string) (*Window, error) {
	impl, err := a.impl.NewWindow()
	if err != nil {
		return nil, fmt.Errorf("app: creating window: %w", err)
	}
	return newWindow(a, impl, title), nil
}

// Startup creates the main window and fills it via OnStartup. Run
// calls it; tests may call it directly to exercise the widget tree
// without entering the main loop.
func (a *App) Startup() error {
	if a.main != nil {
		return nil
	}
	w, err := a.NewWindow(a.meta.FormalName)
	if err != nil {
		return err
	}
	a.main = w
	if a.OnStartup != nil {
		if root := a.OnStartup(a); root != nil {
			if err := w.SetContent(root); err != nil {
				return err
			}
		}
	}
	return nil
}

// Run starts the app: main window, startup content, backend main loop.
// It returns when the loop exits.
func (a *App) Run(ctx context.Context) error {
	if err := a.Startup(); err != nil {
		return err
	}
	a.main.Show()
	terrazzo.Logger().Info("app running", slog.String("app", a.meta.Name))
	return a.impl.Run(ctx)
}

// Quit exits the app unless OnExit vetoes it.
func (a *App) Quit() {
	if a.OnExit != nil && !a.OnExit(a) {
		return
	}
	a.impl.Quit()
}

// Do marshals fn onto the backend loop goroutine. All widget mutation
// from other goroutines must go through Do once Run has started.
func (a *App) Do(fn func()) {
	a.impl.Do(fn)
}
