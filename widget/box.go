// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"

	"github.com/terrazzo-ui/terrazzo/backend"
	"github.com/terrazzo-ui/terrazzo/layout"
)

// Box is the plain container widget. It has no appearance of its own
// beyond its background; its children are arranged by the layout
// engine according to the box's style.
type Box struct {
	Base
	children []Widget
}

// NewBox returns an empty container.
func NewBox(children ...Widget) *Box {
	b := &Box{Base: newBase("box")}
	for _, c := range children {
		// Construction can't fail reparenting fresh widgets; errors
		// only occur when attaching, which NewBox never does.
		_ = b.Add(c)
	}
	return b
}

// Children returns the box's children in layout order.
func (b *Box) Children() []Widget {
	return append([]Widget(nil), b.children...)
}

// LayoutChildren implements layout.Node.
func (b *Box) LayoutChildren() []layout.Node {
	return nodesOf(b.children)
}

// Add appends children to the box. A child that already has a parent
// is moved: it is removed from its old parent first.
func (b *Box) Add(children ...Widget) error {
	for _, c := range children {
		if err := b.insert(len(b.children), c); err != nil {
			return err
		}
	}
	return nil
}

// Insert adds child at index.
func (b *Box) Insert(index int, child Widget) error {
	if index < 0 || index > len(b.children) {
		return fmt.Errorf("insert index %d out of range [0, %d]", index, len(b.children))
	}
	return b.insert(index, child)
}

func (b *Box) insert(index int, child Widget) error {
	if child == Widget(b) {
		return fmt.Errorf("cannot add a box to itself")
	}
	if p := parentOf(child); p != nil {
		if err := removeChild(p, child); err != nil {
			return err
		}
		// Removing from this box shifts the slice under the index.
		if index > len(b.children) {
			index = len(b.children)
		}
	}
	b.children = append(b.children, nil)
	copy(b.children[index+1:], b.children[index:])
	b.children[index] = child
	child.setParent(b)

	if b.host != nil {
		if err := child.attach(b.host, b); err != nil {
			return err
		}
		b.syncChildren()
	}
	b.Refresh()
	return nil
}

// Remove detaches child from the box. Removing a widget that is not a
// child is an error.
func (b *Box) Remove(child Widget) error {
	for i, c := range b.children {
		if c == child {
			b.children = append(b.children[:i], b.children[i+1:]...)
			child.setParent(nil)
			if b.host != nil {
				Detach(child)
				b.syncChildren()
			}
			b.Refresh()
			return nil
		}
	}
	return fmt.Errorf("widget %s is not a child of this box", child.ID())
}

func (b *Box) attach(host Host, parent Widget) error {
	impl := host.Factory().NewBox()
	b.attachBase(host, parent, impl)
	for _, c := range b.children {
		if err := c.attach(host, b); err != nil {
			return err
		}
	}
	b.syncChildren()
	return nil
}

func (b *Box) syncChildren() {
	impl, ok := b.impl.(backend.Box)
	if !ok {
		return
	}
	impls := make([]backend.Widget, len(b.children))
	for i, c := range b.children {
		impls[i] = c.Impl()
	}
	impl.SetChildren(impls)
}

// parentOf returns the parent of w using the interface rather than
// Base so container types can wrap children.
func parentOf(w Widget) Widget {
	type parented interface{ Parent() Widget }
	if p, ok := w.(parented); ok {
		return p.Parent()
	}
	return nil
}

// removeChild removes child from parent when the parent supports
// removal.
func removeChild(parent, child Widget) error {
	type remover interface{ Remove(Widget) error }
	if r, ok := parent.(remover); ok {
		return r.Remove(child)
	}
	return fmt.Errorf("parent of %s does not support removal", child.ID())
}
