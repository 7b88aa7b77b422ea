// SPDX-License-Identifier: Unlicense OR MIT

package web

import (
	"fmt"
	"html"
	"image"
	"strings"

	"github.com/terrazzo-ui/terrazzo/backend"
	"github.com/terrazzo-ui/terrazzo/internal/f32color"
	"github.com/terrazzo-ui/terrazzo/style"
)

// eventScript posts a widget event and reloads so the next document
// reflects the new tree state.
const eventScript = `<script>
function tz(id, action, value) {
  fetch('/event/' + id, {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({action: action, value: value}),
  }).then(function () { location.reload(); });
}
</script>`

// documentHTML renders the window as one absolutely positioned HTML
// document. Positions come straight from the layout boxes, so the
// document needs no client-side layout.
func documentHTML(w *windowImpl) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(w.title))
	b.WriteString(eventScript)
	b.WriteString("</head>\n<body style=\"margin:0;font:14px sans-serif\">\n")
	if w.root != nil {
		writeElement(&b, w.root)
	}
	b.WriteString("</body></html>\n")
	return b.String()
}

// position emits the inline style placing an element at its computed
// content box.
func position(r image.Rectangle) string {
	return fmt.Sprintf("position:absolute;left:%dpx;top:%dpx;width:%dpx;height:%dpx",
		r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}

func writeElement(b *strings.Builder, w backend.Widget) {
	state := stateOf(w)
	if state == nil || state.hidden() {
		return
	}
	css := position(state.box.Content)
	if state.style.Background.A > 0 {
		css += ";background:" + f32color.Hex(state.style.Background)
	}
	if state.style.Color.A > 0 {
		css += ";color:" + f32color.Hex(state.style.Color)
	}
	if state.style.TextAlign != style.TextStart {
		css += ";text-align:" + state.style.TextAlign.String()
	}
	disabled := ""
	if !state.enabled {
		disabled = " disabled"
	}
	id := html.EscapeString(state.id)

	switch impl := w.(type) {
	case *boxImpl:
		fmt.Fprintf(b, "<div id=%q style=%q>\n", id, css)
		for _, c := range impl.children {
			writeElement(b, c)
		}
		b.WriteString("</div>\n")
	case *splitImpl:
		fmt.Fprintf(b, "<div id=%q style=%q>\n", id, css)
		for _, p := range impl.panels {
			if p != nil {
				writeElement(b, p)
			}
		}
		b.WriteString("</div>\n")
	case *labelImpl:
		fmt.Fprintf(b, "<span id=%q style=%q>%s</span>\n", id, css, html.EscapeString(impl.text))
	case *buttonImpl:
		fmt.Fprintf(b, "<button id=%q style=%q onclick=\"tz('%s','press')\"%s>%s</button>\n",
			id, css, id, disabled, html.EscapeString(impl.text))
	case *textInputImpl:
		readonly := ""
		if impl.readOnly {
			readonly = " readonly"
		}
		fmt.Fprintf(b, "<input id=%q style=%q value=%q placeholder=%q onchange=\"tz('%s','change',this.value)\"%s%s>\n",
			id, css, html.EscapeString(impl.value), html.EscapeString(impl.placeholder),
			id, disabled, readonly)
	case *switchImpl:
		checked := ""
		if impl.value {
			checked = " checked"
		}
		fmt.Fprintf(b, "<label id=%q style=%q><input type=\"checkbox\" onchange=\"tz('%s','toggle')\"%s%s> %s</label>\n",
			id, css, id, checked, disabled, html.EscapeString(impl.text))
	case *sliderImpl:
		fmt.Fprintf(b, "<input id=%q type=\"range\" style=%q min=\"%g\" max=\"%g\" step=\"any\" value=\"%g\" onchange=\"tz('%s','change',Number(this.value))\"%s>\n",
			id, css, impl.min, impl.max, impl.value, id, disabled)
	case *progressBarImpl:
		if impl.max > 0 {
			fmt.Fprintf(b, "<progress id=%q style=%q max=\"%g\" value=\"%g\"></progress>\n",
				id, css, impl.max, impl.value)
		} else if impl.running {
			// A value-less progress element renders indeterminate.
			fmt.Fprintf(b, "<progress id=%q style=%q></progress>\n", id, css)
		} else {
			fmt.Fprintf(b, "<progress id=%q style=%q max=\"1\" value=\"0\"></progress>\n", id, css)
		}
	case *dividerImpl:
		edge := "border-top:1px solid #8a8a8a"
		if impl.direction != style.Row {
			edge = "border-left:1px solid #8a8a8a"
		}
		fmt.Fprintf(b, "<div id=%q style=%q></div>\n", id, css+";"+edge)
	case *listImpl:
		fmt.Fprintf(b, "<ul id=%q style=%q>\n", id, css+";list-style:none;margin:0;padding:0;overflow-y:auto")
		for i, row := range impl.rows {
			rowCSS := ""
			if i == impl.selection {
				rowCSS = " style=\"background:#cfdeee\""
			}
			fmt.Fprintf(b, "<li%s onclick=\"tz('%s','select',%d)\">%s<br><small>%s</small></li>\n",
				rowCSS, id, i, html.EscapeString(row.Title), html.EscapeString(row.Subtitle))
		}
		b.WriteString("</ul>\n")
	case *canvasImpl:
		// Drawing ops are replayed client side from /state; serve the
		// surface as a click target.
		fmt.Fprintf(b, "<canvas id=%q style=%q onclick=\"tz('%s','press',{x:event.offsetX,y:event.offsetY})\"></canvas>\n",
			id, css, id)
	}
}

// stateDoc is the GET /state payload.
type stateDoc struct {
	Title    string      `json:"title"`
	Viewport [2]int      `json:"viewport"`
	Menu     []menuState `json:"menu,omitempty"`
	Widgets  []stateNode `json:"widgets"`
}

type menuState struct {
	ID       string   `json:"id"`
	Path     []string `json:"path"`
	Text     string   `json:"text"`
	Shortcut string   `json:"shortcut,omitempty"`
	Enabled  bool     `json:"enabled"`
}

type stateNode struct {
	ID       string     `json:"id"`
	Kind     string     `json:"kind"`
	Box      [4]int     `json:"box"`
	Enabled  bool       `json:"enabled"`
	Hidden   bool       `json:"hidden,omitempty"`
	Text     string     `json:"text,omitempty"`
	Value    any        `json:"value,omitempty"`
	Min      float64    `json:"min,omitempty"`
	Max      float64    `json:"max,omitempty"`
	Rows     []rowState `json:"rows,omitempty"`
	Selected int        `json:"selected,omitempty"`
	Ops      int        `json:"ops,omitempty"`
}

type rowState struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Icon     string `json:"icon,omitempty"`
}

func documentState(w *windowImpl) stateDoc {
	vp := w.viewport()
	doc := stateDoc{Title: w.title, Viewport: [2]int{vp.X, vp.Y}}
	for _, item := range w.app.menu {
		doc.Menu = append(doc.Menu, menuState{
			ID:       item.ID,
			Path:     item.Path,
			Text:     item.Text,
			Shortcut: item.Shortcut,
			Enabled:  item.Enabled,
		})
	}
	var walk func(w backend.Widget)
	walk = func(w backend.Widget) {
		if w == nil {
			return
		}
		doc.Widgets = append(doc.Widgets, widgetState(w))
		switch impl := w.(type) {
		case *boxImpl:
			for _, c := range impl.children {
				walk(c)
			}
		case *splitImpl:
			for _, p := range impl.panels {
				walk(p)
			}
		}
	}
	walk(w.root)
	return doc
}

func widgetState(w backend.Widget) stateNode {
	state := stateOf(w)
	r := state.box.Content
	node := stateNode{
		ID:      state.id,
		Box:     [4]int{r.Min.X, r.Min.Y, r.Dx(), r.Dy()},
		Enabled: state.enabled,
		Hidden:  state.hidden(),
	}
	switch impl := w.(type) {
	case *boxImpl:
		node.Kind = "box"
	case *splitImpl:
		node.Kind = "split"
	case *labelImpl:
		node.Kind = "label"
		node.Text = impl.text
	case *buttonImpl:
		node.Kind = "button"
		node.Text = impl.text
	case *textInputImpl:
		node.Kind = "input"
		node.Value = impl.value
		node.Text = impl.placeholder
	case *switchImpl:
		node.Kind = "switch"
		node.Text = impl.text
		node.Value = impl.value
	case *sliderImpl:
		node.Kind = "slider"
		node.Value = impl.value
		node.Min = impl.min
		node.Max = impl.max
	case *progressBarImpl:
		node.Kind = "progress"
		node.Value = impl.value
		node.Max = impl.max
	case *dividerImpl:
		node.Kind = "divider"
	case *listImpl:
		node.Kind = "list"
		node.Selected = impl.selection
		for _, row := range impl.rows {
			node.Rows = append(node.Rows, rowState{Title: row.Title, Subtitle: row.Subtitle, Icon: row.Icon})
		}
	case *canvasImpl:
		node.Kind = "canvas"
		node.Ops = len(impl.ops)
	}
	return node
}
