// SPDX-License-Identifier: Unlicense OR MIT

package term

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/terrazzo-ui/terrazzo/backend"
	"github.com/terrazzo-ui/terrazzo/internal/f32color"
	"github.com/terrazzo-ui/terrazzo/style"
)

// cell is one terminal cell with its display attributes. Attribute
// fields are part of the run-coalescing key in renderGrid, so they must
// stay comparable.
type cell struct {
	r       rune
	fg, bg  string
	bold    bool
	faint   bool
	reverse bool
}

type grid struct {
	cols, rows int
	cells      []cell
}

func newGrid(cols, rows int) *grid {
	g := &grid{cols: cols, rows: rows, cells: make([]cell, cols*rows)}
	for i := range g.cells {
		g.cells[i].r = ' '
	}
	return g
}

func (g *grid) set(col, row int, c cell) {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return
	}
	g.cells[row*g.cols+col] = c
}

func (g *grid) text(col, row int, s string, attrs cell) {
	for _, r := range s {
		attrs.r = r
		g.set(col, row, attrs)
		col++
	}
}

func (g *grid) fill(r image.Rectangle, attrs cell) {
	for row := r.Min.Y; row < r.Max.Y; row++ {
		for col := r.Min.X; col < r.Max.X; col++ {
			g.set(col, row, attrs)
		}
	}
}

// render rasterizes the widget tree into the cell grid and flattens it
// to a styled string.
func (w *windowImpl) render() string {
	g := newGrid(w.cols, w.rows)
	if w.root != nil {
		paint(g, w.root, cell{r: ' '})
	}
	return renderGrid(g)
}

// cellRect maps a pixel rectangle to terminal cells: one column per
// pixel horizontally, cellH pixels per row vertically.
func cellRect(r image.Rectangle) image.Rectangle {
	return image.Rect(r.Min.X, r.Min.Y/cellH, r.Max.X, (r.Max.Y+cellH-1)/cellH)
}

func paint(g *grid, w backend.Widget, inherited cell) {
	state := stateOf(w)
	if state == nil || state.hidden() {
		return
	}
	attrs := inherited
	attrs.r = ' '
	if state.style.Background.A > 0 {
		attrs.bg = f32color.Hex(state.style.Background)
	}
	if !state.enabled {
		attrs.faint = true
	}
	r := cellRect(state.box.Content)
	if attrs.bg != inherited.bg {
		g.fill(r, attrs)
	}
	switch impl := w.(type) {
	case *boxImpl:
		for _, c := range impl.children {
			paint(g, c, attrs)
		}
	case *splitImpl:
		for _, p := range impl.panels {
			if p != nil {
				paint(g, p, attrs)
			}
		}
	case *labelImpl:
		g.text(r.Min.X, r.Min.Y, impl.text, attrs)
	case *buttonImpl:
		attrs.bold = state.focused
		attrs.reverse = state.focused
		g.text(r.Min.X, r.Min.Y, "[ "+impl.text+" ]", attrs)
	case *textInputImpl:
		drawInput(g, r, impl, attrs)
	case *switchImpl:
		mark := "[ ] "
		if impl.value {
			mark = "[x] "
		}
		attrs.bold = state.focused
		g.text(r.Min.X, r.Min.Y, mark+impl.text, attrs)
	case *sliderImpl:
		drawSlider(g, r, impl, attrs)
	case *progressBarImpl:
		drawProgress(g, r, impl, attrs)
	case *dividerImpl:
		drawDivider(g, r, impl, attrs)
	case *listImpl:
		drawList(g, r, impl, attrs)
	case *canvasImpl:
		// Vector ops have no cell representation; mark the region.
		border := attrs
		border.r = '·'
		g.fill(r, border)
	}
}

func drawInput(g *grid, r image.Rectangle, impl *textInputImpl, attrs cell) {
	text := impl.value
	if text == "" {
		text = impl.placeholder
		attrs.faint = true
	}
	if state := &impl.termWidget; state.focused {
		attrs.reverse = true
	}
	field := attrs
	field.r = ' '
	g.fill(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), field)
	g.text(r.Min.X, r.Min.Y, clip(text, r.Dx()), attrs)
}

func drawSlider(g *grid, r image.Rectangle, impl *sliderImpl, attrs cell) {
	width := r.Dx()
	if width < 2 {
		return
	}
	track := attrs
	track.r = '─'
	g.fill(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), track)
	knobCol := r.Min.X
	if span := impl.max - impl.min; span > 0 {
		knobCol += int(float64(width-1) * (impl.value - impl.min) / span)
	}
	knob := attrs
	knob.r = '●'
	knob.bold = impl.focused
	g.set(knobCol, r.Min.Y, knob)
}

func drawProgress(g *grid, r image.Rectangle, impl *progressBarImpl, attrs cell) {
	width := r.Dx()
	if width == 0 {
		return
	}
	empty := attrs
	empty.r = '░'
	g.fill(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), empty)
	if impl.max <= 0 {
		// Indeterminate: a sweeping strip has no resting frame, show a
		// center band while running.
		if impl.running {
			full := attrs
			full.r = '█'
			third := width / 3
			g.fill(image.Rect(r.Min.X+third, r.Min.Y, r.Max.X-third, r.Min.Y+1), full)
		}
		return
	}
	filled := int(float64(width) * impl.value / impl.max)
	full := attrs
	full.r = '█'
	g.fill(image.Rect(r.Min.X, r.Min.Y, r.Min.X+filled, r.Min.Y+1), full)
}

func drawDivider(g *grid, r image.Rectangle, impl *dividerImpl, attrs cell) {
	line := attrs
	if impl.direction == style.Row {
		line.r = '─'
		g.fill(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), line)
		return
	}
	line.r = '│'
	g.fill(image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), line)
}

func drawList(g *grid, r image.Rectangle, impl *listImpl, attrs cell) {
	row := r.Min.Y
	for i, lr := range impl.rows {
		if row >= r.Max.Y {
			break
		}
		rowAttrs := attrs
		if i == impl.selection {
			rowAttrs.reverse = true
			line := rowAttrs
			line.r = ' '
			g.fill(image.Rect(r.Min.X, row, r.Max.X, row+1), line)
		}
		g.text(r.Min.X, row, clip(lr.Title, r.Dx()), rowAttrs)
		sub := rowAttrs
		sub.faint = true
		g.text(r.Min.X+2, row+1, clip(lr.Subtitle, r.Dx()-2), sub)
		row += 2
	}
}

func clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) > width {
		runes = runes[:width]
	}
	return string(runes)
}

// renderGrid flattens the grid to a string, coalescing runs of cells
// with identical attributes into one lipgloss render each.
func renderGrid(g *grid) string {
	var b strings.Builder
	for row := 0; row < g.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		line := g.cells[row*g.cols : (row+1)*g.cols]
		for i := 0; i < len(line); {
			j := i
			for j < len(line) && sameAttrs(line[j], line[i]) {
				j++
			}
			var run strings.Builder
			for _, c := range line[i:j] {
				run.WriteRune(c.r)
			}
			b.WriteString(styleFor(line[i]).Render(run.String()))
			i = j
		}
	}
	return b.String()
}

func sameAttrs(a, b cell) bool {
	a.r, b.r = 0, 0
	return a == b
}

func styleFor(c cell) lipgloss.Style {
	st := lipgloss.NewStyle()
	if c.fg != "" {
		st = st.Foreground(lipgloss.Color(c.fg))
	}
	if c.bg != "" {
		st = st.Background(lipgloss.Color(c.bg))
	}
	if c.bold {
		st = st.Bold(true)
	}
	if c.faint {
		st = st.Faint(true)
	}
	if c.reverse {
		st = st.Reverse(true)
	}
	return st
}

// stateOf exposes the shared widget state of any terminal impl.
func stateOf(w backend.Widget) *termWidget {
	switch impl := w.(type) {
	case *boxImpl:
		return &impl.termWidget
	case *labelImpl:
		return &impl.termWidget
	case *buttonImpl:
		return &impl.termWidget
	case *textInputImpl:
		return &impl.termWidget
	case *switchImpl:
		return &impl.termWidget
	case *sliderImpl:
		return &impl.termWidget
	case *progressBarImpl:
		return &impl.termWidget
	case *dividerImpl:
		return &impl.termWidget
	case *splitImpl:
		return &impl.termWidget
	case *listImpl:
		return &impl.termWidget
	case *canvasImpl:
		return &impl.termWidget
	}
	return nil
}
