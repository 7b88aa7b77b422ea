// SPDX-License-Identifier: Unlicense OR MIT

package web

import (
	"context"
	"errors"
	"fmt"
	"image"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/terrazzo-ui/terrazzo/backend"
	"github.com/terrazzo-ui/terrazzo/unit"
)

type appImpl struct {
	factory *Factory
	info    backend.AppInfo
	engine  *gin.Engine

	// mu serializes handler access to the widget tree with Do calls.
	mu   sync.Mutex
	main *windowImpl
	menu []backend.MenuItem

	quit     chan struct{}
	quitOnce sync.Once
}

func newApp(f *Factory, info backend.AppInfo) *appImpl {
	gin.SetMode(gin.ReleaseMode)
	a := &appImpl{
		factory: f,
		info:    info,
		engine:  gin.New(),
		quit:    make(chan struct{}),
	}
	a.engine.Use(gin.Recovery())
	a.engine.GET("/", a.handleDocument)
	a.engine.GET("/state", a.handleState)
	a.engine.POST("/event/:id", a.handleEvent)
	a.engine.POST("/menu/:id", a.handleMenu)
	return a
}

// SetMainMenu replaces the command menu served in /state and invokable
// through POST /menu/:id.
func (a *appImpl) SetMainMenu(items []backend.MenuItem) {
	a.mu.Lock()
	a.menu = items
	a.mu.Unlock()
}

func (a *appImpl) NewWindow() (backend.Window, error) {
	w := &windowImpl{app: a, width: 640, height: 480}
	if a.main == nil {
		a.main = w
	}
	return w, nil
}

// Run serves HTTP until the context is canceled or Quit is called.
func (a *appImpl) Run(ctx context.Context) error {
	srv := &http.Server{Addr: a.factory.addr, Handler: a.engine}
	go func() {
		select {
		case <-ctx.Done():
		case <-a.quit:
		}
		srv.Shutdown(context.Background())
	}()
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}

func (a *appImpl) Quit() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// Do runs fn under the tree lock. HTTP handlers hold the same lock, so
// mutations never race a render.
func (a *appImpl) Do(fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fn()
}

type windowImpl struct {
	app     *appImpl
	title   string
	width   unit.Dp
	height  unit.Dp
	root    backend.Widget
	onFrame func(viewport image.Point)
	visible bool
}

func (w *windowImpl) SetTitle(title string) { w.title = title }

func (w *windowImpl) SetSize(width, height unit.Dp) {
	w.width, w.height = width, height
	w.Redraw()
}

func (w *windowImpl) Metric() unit.Metric { return metric }

func (w *windowImpl) SetContent(root backend.Widget) { w.root = root }

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

func (w *windowImpl) Redraw() {
	if w.onFrame != nil {
		w.onFrame(w.viewport())
	}
}

func (w *windowImpl) viewport() image.Point {
	return image.Point{X: metric.Dp(w.width), Y: metric.Dp(w.height)}
}

func (w *windowImpl) Screenshot() (image.Image, error) {
	return nil, fmt.Errorf("web: no raster surface")
}

func (a *appImpl) handleDocument(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.main == nil {
		c.String(http.StatusServiceUnavailable, "no window")
		return
	}
	a.main.Redraw()
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(documentHTML(a.main)))
}

func (a *appImpl) handleState(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.main == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no window"})
		return
	}
	a.main.Redraw()
	c.JSON(http.StatusOK, documentState(a.main))
}

// eventRequest is the body of POST /event/:id.
type eventRequest struct {
	Action string `json:"action" binding:"required"`
	Value  any    `json:"value"`
}

func (a *appImpl) handleEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.main == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no window"})
		return
	}
	target := findWidget(a.main.root, c.Param("id"))
	if target == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such widget"})
		return
	}
	if err := dispatchEvent(target, req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a.main.Redraw()
	c.JSON(http.StatusOK, widgetState(target))
}

func (a *appImpl) handleMenu(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, item := range a.menu {
		if item.ID != c.Param("id") {
			continue
		}
		if !item.Enabled {
			c.JSON(http.StatusBadRequest, gin.H{"error": "command is disabled"})
			return
		}
		item.Invoke()
		if a.main != nil {
			a.main.Redraw()
		}
		c.JSON(http.StatusOK, gin.H{"invoked": item.ID})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "no such command"})
}

// dispatchEvent applies one user event to an impl. Disabled widgets
// reject events the way a browser would refuse to emit them.
func dispatchEvent(target backend.Widget, req eventRequest) error {
	state := stateOf(target)
	if state != nil && !state.enabled {
		return fmt.Errorf("widget is disabled")
	}
	switch impl := target.(type) {
	case *buttonImpl:
		if req.Action != "press" {
			return fmt.Errorf("button: unknown action %q", req.Action)
		}
		if impl.onPress != nil {
			impl.onPress()
		}
		return nil
	case *textInputImpl:
		switch req.Action {
		case "change":
			value, ok := req.Value.(string)
			if !ok {
				return fmt.Errorf("change: value must be a string")
			}
			if impl.readOnly {
				return fmt.Errorf("input is read only")
			}
			impl.value = value
			if impl.onChange != nil {
				impl.onChange(value)
			}
			return nil
		case "confirm":
			if impl.onConfirm != nil {
				impl.onConfirm()
			}
			return nil
		}
		return fmt.Errorf("input: unknown action %q", req.Action)
	case *switchImpl:
		if req.Action != "toggle" {
			return fmt.Errorf("switch: unknown action %q", req.Action)
		}
		impl.SetValue(!impl.value)
		return nil
	case *sliderImpl:
		if req.Action != "change" {
			return fmt.Errorf("slider: unknown action %q", req.Action)
		}
		value, ok := req.Value.(float64)
		if !ok {
			return fmt.Errorf("change: value must be a number")
		}
		impl.set(value)
		return nil
	case *listImpl:
		switch req.Action {
		case "select":
			index, ok := req.Value.(float64)
			if !ok {
				return fmt.Errorf("select: value must be a row index")
			}
			return impl.selectRow(int(index))
		case "activate":
			if impl.primaryEnabled && impl.selection >= 0 && impl.onPrimary != nil {
				impl.onPrimary(impl.selection)
			}
			return nil
		case "refresh":
			if impl.refreshEnabled && impl.onRefresh != nil {
				impl.onRefresh()
			}
			return nil
		}
		return fmt.Errorf("list: unknown action %q", req.Action)
	case *canvasImpl:
		if req.Action != "press" {
			return fmt.Errorf("canvas: unknown action %q", req.Action)
		}
		pos, ok := req.Value.(map[string]any)
		if !ok {
			return fmt.Errorf("press: value must be a point")
		}
		x, _ := pos["x"].(float64)
		y, _ := pos["y"].(float64)
		if impl.onPress != nil {
			impl.onPress(int(x), int(y))
		}
		return nil
	}
	return fmt.Errorf("widget accepts no events")
}

// findWidget resolves an impl id anywhere in the tree.
func findWidget(root backend.Widget, id string) backend.Widget {
	if root == nil {
		return nil
	}
	if state := stateOf(root); state != nil && state.id == id {
		return root
	}
	switch impl := root.(type) {
	case *boxImpl:
		for _, c := range impl.children {
			if found := findWidget(c, id); found != nil {
				return found
			}
		}
	case *splitImpl:
		for _, p := range impl.panels {
			if found := findWidget(p, id); found != nil {
				return found
			}
		}
	}
	return nil
}

// stateOf exposes the shared widget state of any web impl.
func stateOf(w backend.Widget) *webWidget {
	switch impl := w.(type) {
	case *boxImpl:
		return &impl.webWidget
	case *labelImpl:
		return &impl.webWidget
	case *buttonImpl:
		return &impl.webWidget
	case *textInputImpl:
		return &impl.webWidget
	case *switchImpl:
		return &impl.webWidget
	case *sliderImpl:
		return &impl.webWidget
	case *progressBarImpl:
		return &impl.webWidget
	case *dividerImpl:
		return &impl.webWidget
	case *splitImpl:
		return &impl.webWidget
	case *listImpl:
		return &impl.webWidget
	case *canvasImpl:
		return &impl.webWidget
	}
	return nil
}
