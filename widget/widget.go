// SPDX-License-Identifier: Unlicense OR MIT

/*
Package widget provides the platform independent widgets.

Widgets are retained objects: construct a tree, hand the root to a
window, and mutate widgets through their methods afterwards. A widget
tree can be assembled before any backend exists; backend impls are
created when the tree is attached to a window, and property changes
made before attachment are replayed into the impls at that point.

Style changes take effect at the next redraw. Every widget exposes its
box style through Style; mutate it and call Refresh (or rely on the
window's next frame) to see the change.
*/
package widget

import (
	"image"

	"github.com/google/uuid"

	"github.com/terrazzo-ui/terrazzo/backend"
	"github.com/terrazzo-ui/terrazzo/layout"
	"github.com/terrazzo-ui/terrazzo/style"
)

// Host is the window-side surface a widget tree is attached to.
// Implemented by package app.
type Host interface {
	// Factory returns the backend factory impls are created with.
	Factory() backend.Factory
	// Invalidate schedules a relayout and repaint.
	Invalidate()
}

// Widget is a node of the widget tree.
type Widget interface {
	layout.Node

	// ID returns the widget's stable identifier.
	ID() string
	// Impl returns the backend impl, or nil before attachment.
	Impl() backend.Widget
	Enabled() bool
	SetEnabled(enabled bool)
	// Focus gives the widget input focus. A no-op for widgets that
	// cannot accept focus, and before attachment.
	Focus()
	// Refresh schedules a relayout after a style or content change.
	Refresh()

	// Children returns the widget's children, empty for leaf widgets.
	Children() []Widget

	// attach creates the impl (and those of all children) against
	// host's factory and replays retained state into it. Only widgets
	// in this package attach; custom widgets compose these.
	attach(host Host, parent Widget) error
	// detach drops the impl backrefs when a tree leaves a window.
	detach()
	setParent(p Widget)
}

// Base carries the state common to all widgets. Concrete widgets embed
// it and implement create to build their backend impl.
type Base struct {
	id      string
	style   style.Pack
	enabled bool
	parent  Widget
	host    Host
	impl    backend.Widget
}

func newBase(kind string) Base {
	return Base{
		id:      kind + "-" + uuid.NewString(),
		enabled: true,
	}
}

// ID returns the widget's stable identifier. Generated at construction
// unless overridden with SetID.
func (b *Base) ID() string { return b.id }

// SetID overrides the generated identifier. Must be unique within a
// window.
func (b *Base) SetID(id string) { b.id = id }

// Style returns the widget's box style for reading and mutation.
// Mutations take effect at the next redraw; call Refresh to schedule
// one immediately.
func (b *Base) Style() *style.Pack { return &b.style }

// PackStyle implements layout.Node.
func (b *Base) PackStyle() *style.Pack { return &b.style }

// Impl returns the backend impl, or nil before attachment.
func (b *Base) Impl() backend.Widget { return b.impl }

// Enabled reports whether the user can interact with the widget.
func (b *Base) Enabled() bool { return b.enabled }

// SetEnabled controls whether the user can interact with the widget.
func (b *Base) SetEnabled(enabled bool) {
	b.enabled = enabled
	if b.impl != nil {
		b.impl.SetEnabled(enabled)
	}
}

// Focus gives the widget input focus.
func (b *Base) Focus() {
	if b.impl != nil {
		b.impl.Focus()
	}
}

// Refresh schedules a relayout and repaint of the window the widget
// belongs to. A no-op for unattached widgets.
func (b *Base) Refresh() {
	if b.host != nil {
		b.host.Invalidate()
	}
}

// Parent returns the containing widget, or nil for a root.
func (b *Base) Parent() Widget { return b.parent }

// Attached reports whether the widget is attached to a window.
func (b *Base) Attached() bool { return b.host != nil }

// Measure implements layout.Node using the impl's intrinsic size.
func (b *Base) Measure(ctx *layout.Context) image.Point {
	if b.impl == nil {
		return image.Point{}
	}
	return b.impl.IntrinsicSize(ctx.Metric)
}

// Children implements Widget for leaf widgets.
func (b *Base) Children() []Widget { return nil }

// LayoutChildren implements layout.Node for leaf widgets.
func (b *Base) LayoutChildren() []layout.Node { return nil }

func (b *Base) setParent(p Widget) { b.parent = p }

// attachBase wires the common state and pushes it to a freshly created
// impl.
func (b *Base) attachBase(host Host, parent Widget, impl backend.Widget) {
	b.host = host
	b.parent = parent
	b.impl = impl
	impl.SetStyle(b.style)
	impl.SetEnabled(b.enabled)
}

func (b *Base) detach() {
	b.host = nil
	b.impl = nil
}

// syncStyle pushes the current style snapshot into the impl. The
// window calls this for every widget ahead of layout so that a redraw
// reflects all pending style changes.
func (b *Base) syncStyle() {
	if b.impl != nil {
		b.impl.SetStyle(b.style)
	}
}

// Attach creates backend impls for the tree rooted at root. Called by
// package app when a tree is assigned to a window; exported for
// backend test harnesses.
func Attach(root Widget, host Host) error {
	return root.attach(host, nil)
}

// Detach releases the backend impls of the tree rooted at root.
func Detach(root Widget) {
	root.detach()
	for _, c := range root.Children() {
		Detach(c)
	}
}

// SyncStyles pushes pending style snapshots for the whole tree. The
// window calls this at the start of every redraw.
func SyncStyles(root Widget) {
	if b, ok := root.(interface{ syncStyle() }); ok {
		b.syncStyle()
	}
	for _, c := range root.Children() {
		SyncStyles(c)
	}
}

// nodesOf adapts a widget slice to layout nodes.
func nodesOf(ws []Widget) []layout.Node {
	nodes := make([]layout.Node, len(ws))
	for i, w := range ws {
		nodes[i] = w
	}
	return nodes
}
