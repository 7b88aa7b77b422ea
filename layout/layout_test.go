// SPDX-License-Identifier: Unlicense OR MIT

package layout_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terrazzo-ui/terrazzo/layout"
	"github.com/terrazzo-ui/terrazzo/style"
	"github.com/terrazzo-ui/terrazzo/unit"
)

// node is a minimal layout.Node for exercising the engine without
// widgets.
type node struct {
	st        style.Pack
	intrinsic image.Point
	children  []layout.Node
}

func (n *node) PackStyle() *style.Pack              { return &n.st }
func (n *node) LayoutChildren() []layout.Node       { return n.children }
func (n *node) Measure(*layout.Context) image.Point { return n.intrinsic }

func leaf(w, h int, mutate ...func(*style.Pack)) *node {
	n := &node{intrinsic: image.Pt(w, h)}
	for _, m := range mutate {
		m(&n.st)
	}
	return n
}

func box(dir style.Direction, children ...*node) *node {
	n := &node{st: style.Pack{Direction: dir}}
	for _, c := range children {
		n.children = append(n.children, c)
	}
	return n
}

func newCtx() *layout.Context {
	return layout.NewContext(unit.Metric{})
}

func TestColumnStacksChildren(t *testing.T) {
	a := leaf(40, 10)
	b := leaf(20, 30)
	root := box(style.Column, a, b)

	ctx := newCtx()
	ctx.Layout(root, image.Pt(100, 100))

	assert.Equal(t, image.Rect(0, 0, 100, 100), ctx.BoxFor(root).Bounds)
	assert.Equal(t, image.Rect(0, 0, 40, 10), ctx.BoxFor(a).Bounds)
	assert.Equal(t, image.Rect(0, 10, 20, 40), ctx.BoxFor(b).Bounds)
}

func TestRowFlexDistribution(t *testing.T) {
	a := leaf(0, 10, func(p *style.Pack) { p.Flex = 1 })
	b := leaf(0, 10, func(p *style.Pack) { p.Flex = 2 })
	root := box(style.Row, a, b)

	ctx := newCtx()
	ctx.Layout(root, image.Pt(300, 50))

	assert.Equal(t, 100, ctx.BoxFor(a).Size().X)
	assert.Equal(t, 200, ctx.BoxFor(b).Size().X)
}

func TestFlexSharesSumExactly(t *testing.T) {
	kids := []*node{
		leaf(0, 10, func(p *style.Pack) { p.Flex = 1 }),
		leaf(0, 10, func(p *style.Pack) { p.Flex = 1 }),
		leaf(0, 10, func(p *style.Pack) { p.Flex = 1 }),
	}
	root := box(style.Row, kids...)

	ctx := newCtx()
	ctx.Layout(root, image.Pt(100, 50))

	sum := 0
	for _, k := range kids {
		sum += ctx.BoxFor(k).Size().X
	}
	assert.Equal(t, 100, sum, "flex allocations must sum to the free space")
}

func TestFlexFloorPinsAtMinimum(t *testing.T) {
	// Equal weights, but a's content requires 150 of the 200px. The
	// equal 100/100 split would violate a's minimum, so a is pinned
	// and b takes what is left.
	a := leaf(150, 10, func(p *style.Pack) { p.Flex = 1 })
	b := leaf(0, 10, func(p *style.Pack) { p.Flex = 1 })
	root := box(style.Row, a, b)

	ctx := newCtx()
	ctx.Layout(root, image.Pt(200, 50))

	assert.Equal(t, 150, ctx.BoxFor(a).Size().X)
	assert.Equal(t, 50, ctx.BoxFor(b).Size().X)
}

func TestExplicitSizeBeatsFlex(t *testing.T) {
	a := leaf(0, 10, func(p *style.Pack) {
		p.Flex = 1
		p.Width = style.Exact(30)
	})
	b := leaf(0, 10, func(p *style.Pack) { p.Flex = 1 })
	root := box(style.Row, a, b)

	ctx := newCtx()
	ctx.Layout(root, image.Pt(100, 50))

	assert.Equal(t, 30, ctx.BoxFor(a).Size().X)
	assert.Equal(t, 70, ctx.BoxFor(b).Size().X)
}

func TestMarginsOffsetChildren(t *testing.T) {
	a := leaf(10, 10, func(p *style.Pack) {
		p.Margin = style.Insets{Top: 5, Left: 7}
	})
	root := box(style.Column, a)

	ctx := newCtx()
	ctx.Layout(root, image.Pt(100, 100))

	assert.Equal(t, image.Rect(7, 5, 17, 15), ctx.BoxFor(a).Bounds)
}

func TestPaddingShrinksContent(t *testing.T) {
	a := leaf(10, 10)
	root := box(style.Column, a)
	root.st.Padding = style.Uniform(8)

	ctx := newCtx()
	ctx.Layout(root, image.Pt(100, 100))

	rb := ctx.BoxFor(root)
	assert.Equal(t, image.Rect(0, 0, 100, 100), rb.Bounds)
	assert.Equal(t, image.Rect(8, 8, 92, 92), rb.Content)
	assert.Equal(t, image.Rect(8, 8, 18, 18), ctx.BoxFor(a).Bounds)
}

func TestGap(t *testing.T) {
	a := leaf(10, 10)
	b := leaf(10, 10)
	root := box(style.Column, a, b)
	root.st.Gap = 6

	ctx := newCtx()
	ctx.Layout(root, image.Pt(100, 100))

	assert.Equal(t, 0, ctx.BoxFor(a).Bounds.Min.Y)
	assert.Equal(t, 16, ctx.BoxFor(b).Bounds.Min.Y)
}

func TestJustifyContent(t *testing.T) {
	tests := []struct {
		justify style.Justify
		wantA   int
		wantB   int
	}{
		{style.JustifyStart, 0, 20},
		{style.JustifyCenter, 30, 50},
		{style.JustifyEnd, 60, 80},
		{style.SpaceBetween, 0, 80},
	}
	for _, tc := range tests {
		a := leaf(20, 10)
		b := leaf(20, 10)
		root := box(style.Row, a, b)
		root.st.JustifyContent = tc.justify

		ctx := newCtx()
		ctx.Layout(root, image.Pt(100, 50))

		assert.Equal(t, tc.wantA, ctx.BoxFor(a).Bounds.Min.X, tc.justify.String())
		assert.Equal(t, tc.wantB, ctx.BoxFor(b).Bounds.Min.X, tc.justify.String())
	}
}

func TestAlignItems(t *testing.T) {
	tests := []struct {
		align style.Alignment
		wantY int
		wantH int
	}{
		{style.Start, 0, 10},
		{style.Center, 20, 10},
		{style.End, 40, 10},
		{style.Stretch, 0, 50},
	}
	for _, tc := range tests {
		a := leaf(20, 10)
		root := box(style.Row, a)
		root.st.AlignItems = tc.align

		ctx := newCtx()
		ctx.Layout(root, image.Pt(100, 50))

		assert.Equal(t, tc.wantY, ctx.BoxFor(a).Bounds.Min.Y, tc.align.String())
		assert.Equal(t, tc.wantH, ctx.BoxFor(a).Size().Y, tc.align.String())
	}
}

func TestDisplayNoneRemovesFromFlow(t *testing.T) {
	a := leaf(10, 10)
	gone := leaf(10, 10, func(p *style.Pack) { p.Display = style.DisplayNone })
	b := leaf(10, 10)
	root := box(style.Column, a, gone, b)

	ctx := newCtx()
	ctx.Layout(root, image.Pt(100, 100))

	assert.Equal(t, 10, ctx.BoxFor(b).Bounds.Min.Y, "b follows a directly")
	assert.Equal(t, layout.Box{}, ctx.BoxFor(gone))
}

func TestHiddenKeepsItsBox(t *testing.T) {
	a := leaf(10, 10, func(p *style.Pack) { p.Visibility = style.Hidden })
	b := leaf(10, 10)
	root := box(style.Column, a, b)

	ctx := newCtx()
	ctx.Layout(root, image.Pt(100, 100))

	assert.Equal(t, image.Rect(0, 0, 10, 10), ctx.BoxFor(a).Bounds)
	assert.Equal(t, 10, ctx.BoxFor(b).Bounds.Min.Y, "hidden still occupies space")
}

func TestZeroAvailableSpaceClamps(t *testing.T) {
	a := leaf(10, 10)
	root := box(style.Column, a)
	root.st.Padding = style.Uniform(100)

	ctx := newCtx()
	ctx.Layout(root, image.Pt(50, 50))

	content := ctx.BoxFor(root).Content
	assert.Equal(t, 0, content.Dx())
	assert.Equal(t, 0, content.Dy())
}

func TestNestedContainersMeasureBottomUp(t *testing.T) {
	inner := box(style.Row, leaf(30, 10), leaf(30, 10))
	outer := box(style.Column, inner, leaf(10, 10))

	ctx := newCtx()
	ctx.Layout(outer, image.Pt(200, 200))

	assert.Equal(t, image.Pt(60, 10), ctx.BoxFor(inner).Size())
}

func TestMetricScalesDpProperties(t *testing.T) {
	a := leaf(10, 10, func(p *style.Pack) { p.Width = style.Exact(20) })
	root := box(style.Row, a)

	ctx := layout.NewContext(unit.Metric{PxPerDp: 2, PxPerSp: 2})
	ctx.Layout(root, image.Pt(100, 100))

	assert.Equal(t, 40, ctx.BoxFor(a).Size().X)
}

func TestDeterminism(t *testing.T) {
	build := func() (*node, *node) {
		a := leaf(25, 10, func(p *style.Pack) { p.Flex = 1 })
		root := box(style.Row, a, leaf(40, 20))
		root.st.Padding = style.Uniform(3)
		return root, a
	}
	r1, a1 := build()
	r2, a2 := build()
	c1, c2 := newCtx(), newCtx()
	c1.Layout(r1, image.Pt(171, 90))
	c2.Layout(r2, image.Pt(171, 90))
	require.Equal(t, c1.BoxFor(a1), c2.BoxFor(a2))
	require.Equal(t, c1.BoxFor(r1), c2.BoxFor(r2))
}
