// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout computes pixel geometry for a tree of styled boxes.

The engine consumes the declarative properties of package style and
produces a Box — absolute border and content rectangles — for every
node in the tree. Layout runs in two passes: a bottom-up measure pass
establishing each node's minimum size, and a top-down arrange pass
distributing the available space along each container's main axis.

Layout is deterministic and pure: the same styles, intrinsic sizes and
viewport always produce the same geometry.
*/
package layout

import (
	"image"

	"github.com/terrazzo-ui/terrazzo/style"
	"github.com/terrazzo-ui/terrazzo/unit"
)

// Node is an element of the layout tree. Widgets implement Node; the
// engine itself has no widget knowledge.
type Node interface {
	// PackStyle returns the node's box style.
	PackStyle() *style.Pack
	// LayoutChildren returns the node's children in layout order.
	LayoutChildren() []Node
	// Measure returns the intrinsic content size in pixels, excluding
	// padding and margin. Containers typically return the zero point;
	// the engine aggregates their children.
	Measure(ctx *Context) image.Point
}

// Box is the computed geometry for a node. Rectangles are in absolute
// pixels relative to the window origin.
type Box struct {
	// Bounds is the border box: content plus padding. Margins lie
	// outside Bounds.
	Bounds image.Rectangle
	// Content is Bounds inset by padding. Children are placed inside
	// Content.
	Content image.Rectangle
}

// Size returns the border box size.
func (b Box) Size() image.Point {
	return b.Bounds.Size()
}

// Context carries the device metric and the computed boxes for one
// layout run. A Context is reused across runs; Layout clears previous
// results.
type Context struct {
	Metric unit.Metric

	boxes    map[Node]Box
	minOuter map[Node]image.Point
}

// NewContext returns a Context for the given metric.
func NewContext(m unit.Metric) *Context {
	return &Context{
		Metric:   m,
		boxes:    make(map[Node]Box),
		minOuter: make(map[Node]image.Point),
	}
}

// BoxFor returns the geometry computed for n in the most recent Layout
// call. The zero Box is returned for nodes that were not laid out
// (display none, or not in the tree).
func (ctx *Context) BoxFor(n Node) Box {
	return ctx.boxes[n]
}

// Layout computes geometry for the tree rooted at root inside a
// viewport of the given pixel size. The root's border box fills the
// viewport; margins on the root are applied inside it.
func (ctx *Context) Layout(root Node, viewport image.Point) {
	clear(ctx.boxes)
	clear(ctx.minOuter)
	if root == nil {
		return
	}
	st := root.PackStyle()
	if st.Display == style.DisplayNone {
		return
	}
	ctx.measure(root)
	m := ctx.insets(st.Margin)
	bounds := image.Rectangle{Max: viewport}
	bounds.Min.X += m.left
	bounds.Min.Y += m.top
	bounds.Max.X -= m.right
	bounds.Max.Y -= m.bottom
	ctx.arrange(root, clampRect(bounds))
}

// measure returns the minimum outer size of n: border box plus margin.
// Results are cached for the duration of the layout run.
func (ctx *Context) measure(n Node) image.Point {
	if sz, ok := ctx.minOuter[n]; ok {
		return sz
	}
	st := n.PackStyle()
	content := n.Measure(ctx)

	children := flowChildren(n)
	if len(children) > 0 {
		axis := st.Direction
		gap := ctx.Metric.Dp(st.Gap)
		var main, cross int
		for i, c := range children {
			sz := ctx.measure(c)
			main += axisMain(axis, sz)
			if i > 0 {
				main += gap
			}
			if v := axisCross(axis, sz); v > cross {
				cross = v
			}
		}
		agg := axisPoint(axis, main, cross)
		content.X = max(content.X, agg.X)
		content.Y = max(content.Y, agg.Y)
	}

	p := ctx.insets(st.Padding)
	border := image.Point{
		X: content.X + p.left + p.right,
		Y: content.Y + p.top + p.bottom,
	}
	// Explicit dimensions fix the border box on their axis.
	if !st.Width.Auto() {
		border.X = ctx.Metric.Dp(st.Width.Dp())
	}
	if !st.Height.Auto() {
		border.Y = ctx.Metric.Dp(st.Height.Dp())
	}
	border.X = max(border.X, 0)
	border.Y = max(border.Y, 0)

	m := ctx.insets(st.Margin)
	outer := image.Point{
		X: border.X + m.left + m.right,
		Y: border.Y + m.top + m.bottom,
	}
	ctx.minOuter[n] = outer
	return outer
}

// arrange assigns n's box from its absolute border rectangle and
// places its children.
func (ctx *Context) arrange(n Node, bounds image.Rectangle) {
	st := n.PackStyle()
	p := ctx.insets(st.Padding)
	content := image.Rectangle{
		Min: image.Point{X: bounds.Min.X + p.left, Y: bounds.Min.Y + p.top},
		Max: image.Point{X: bounds.Max.X - p.right, Y: bounds.Max.Y - p.bottom},
	}
	content = clampRect(content)
	ctx.boxes[n] = Box{Bounds: bounds, Content: content}

	children := flowChildren(n)
	if len(children) == 0 {
		return
	}
	axis := st.Direction
	gap := ctx.Metric.Dp(st.Gap)
	containerMain := axisMain(axis, content.Size())
	containerCross := axisCross(axis, content.Size())

	extents := ctx.mainExtents(children, axis, containerMain, gap)

	used := gap * (len(children) - 1)
	for _, e := range extents {
		used += e
	}
	space := containerMain - used
	if space < 0 {
		space = 0
	}

	// Position children. Leftover main axis space is distributed per
	// JustifyContent, with the same integer splits the flex container
	// uses for its spacing modes.
	offset := 0
	switch st.JustifyContent {
	case style.JustifyCenter:
		offset = space / 2
	case style.JustifyEnd:
		offset = space
	case style.SpaceAround:
		offset = space / (len(children) * 2)
	case style.SpaceEvenly:
		offset = space / (len(children) + 1)
	}
	for i, c := range children {
		cst := c.PackStyle()
		m := ctx.insets(cst.Margin)
		mMain0, mMain1 := axisMainInsets(axis, m)
		mCross0, mCross1 := axisCrossInsets(axis, m)

		borderMain := extents[i] - mMain0 - mMain1
		borderCross := ctx.crossExtent(c, axis, st.AlignItems, containerCross, mCross0+mCross1)

		var crossOff int
		switch st.AlignItems {
		case style.Center:
			crossOff = (containerCross - borderCross - mCross0 - mCross1) / 2
		case style.End:
			crossOff = containerCross - borderCross - mCross0 - mCross1
		}
		if crossOff < 0 {
			crossOff = 0
		}

		org := content.Min.
			Add(axisPoint(axis, offset+mMain0, crossOff+mCross0))
		childBounds := image.Rectangle{
			Min: org,
			Max: org.Add(axisPoint(axis, max(borderMain, 0), max(borderCross, 0))),
		}
		ctx.arrange(c, childBounds)

		offset += extents[i] + gap
		if i < len(children)-1 {
			switch st.JustifyContent {
			case style.SpaceBetween:
				offset += space / (len(children) - 1)
			case style.SpaceAround:
				offset += space / len(children)
			case style.SpaceEvenly:
				offset += space / (len(children) + 1)
			}
		}
	}
}

// mainExtents computes each child's outer main axis extent. Rigid
// children take their measured minimum. Remaining space is shared by
// flex children proportionally to weight, floored at each child's
// minimum; when a floor binds, the child is pinned and the rest is
// redistributed. Each round pins at least one child, so the loop
// terminates.
func (ctx *Context) mainExtents(children []Node, axis style.Direction, containerMain, gap int) []int {
	extents := make([]int, len(children))
	free := containerMain - gap*(len(children)-1)
	var weights float32
	flexible := make([]bool, len(children))
	for i, c := range children {
		cst := c.PackStyle()
		min := axisMain(axis, ctx.measure(c))
		extents[i] = min
		if cst.Flex > 0 && mainDim(axis, cst).Auto() {
			flexible[i] = true
			weights += cst.Flex
		} else {
			free -= min
		}
	}
	if weights == 0 {
		return extents
	}
	if free < 0 {
		free = 0
	}
	for {
		pinned := false
		// fraction carries the rounding error between allocations so
		// the shares sum exactly to the free space.
		var fraction float32
		remaining := free
		alloc := make([]int, len(children))
		for i, c := range children {
			if !flexible[i] {
				continue
			}
			share := float32(free)*c.PackStyle().Flex/weights + fraction
			px := int(share + .5)
			if px > remaining {
				px = remaining
			}
			fraction = share - float32(px)
			remaining -= px
			alloc[i] = px
		}
		for i := range children {
			if !flexible[i] {
				continue
			}
			if alloc[i] < extents[i] {
				// Floor binds: pin this child at its minimum.
				flexible[i] = false
				weights -= children[i].PackStyle().Flex
				free -= extents[i]
				if free < 0 {
					free = 0
				}
				pinned = true
			}
		}
		if !pinned {
			for i := range children {
				if flexible[i] {
					extents[i] = alloc[i]
				}
			}
			return extents
		}
		if weights == 0 {
			return extents
		}
	}
}

// crossExtent computes a child's border box extent on the cross axis.
// An explicit dimension wins; Stretch fills the container; otherwise
// the measured minimum is used.
func (ctx *Context) crossExtent(c Node, axis style.Direction, align style.Alignment, containerCross, margins int) int {
	cst := c.PackStyle()
	if d := crossDim(axis, cst); !d.Auto() {
		return ctx.Metric.Dp(d.Dp())
	}
	if align == style.Stretch {
		return max(containerCross-margins, 0)
	}
	return max(axisCross(axis, ctx.measure(c))-margins, 0)
}

type pxInsets struct {
	top, right, bottom, left int
}

func (ctx *Context) insets(in style.Insets) pxInsets {
	return pxInsets{
		top:    ctx.Metric.Dp(in.Top),
		right:  ctx.Metric.Dp(in.Right),
		bottom: ctx.Metric.Dp(in.Bottom),
		left:   ctx.Metric.Dp(in.Left),
	}
}

func flowChildren(n Node) []Node {
	all := n.LayoutChildren()
	children := make([]Node, 0, len(all))
	for _, c := range all {
		if c.PackStyle().Display == style.DisplayNone {
			continue
		}
		children = append(children, c)
	}
	return children
}

func clampRect(r image.Rectangle) image.Rectangle {
	if r.Max.X < r.Min.X {
		r.Max.X = r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Max.Y = r.Min.Y
	}
	return r
}

func mainDim(a style.Direction, st *style.Pack) style.Dim {
	if a == style.Row {
		return st.Width
	}
	return st.Height
}

func crossDim(a style.Direction, st *style.Pack) style.Dim {
	if a == style.Row {
		return st.Height
	}
	return st.Width
}

func axisPoint(a style.Direction, main, cross int) image.Point {
	if a == style.Row {
		return image.Point{X: main, Y: cross}
	}
	return image.Point{X: cross, Y: main}
}

func axisMain(a style.Direction, sz image.Point) int {
	if a == style.Row {
		return sz.X
	}
	return sz.Y
}

func axisCross(a style.Direction, sz image.Point) int {
	if a == style.Row {
		return sz.Y
	}
	return sz.X
}

func axisMainInsets(a style.Direction, in pxInsets) (start, end int) {
	if a == style.Row {
		return in.left, in.right
	}
	return in.top, in.bottom
}

func axisCrossInsets(a style.Direction, in pxInsets) (start, end int) {
	if a == style.Row {
		return in.top, in.bottom
	}
	return in.left, in.right
}
