// SPDX-License-Identifier: Unlicense OR MIT

package widget

import "github.com/terrazzo-ui/terrazzo/backend"

// Label displays a short piece of static text.
type Label struct {
	Base
	text string
}

// NewLabel returns a label showing text.
func NewLabel(text string) *Label {
	return &Label{Base: newBase("label"), text: text}
}

// Text returns the displayed text.
func (l *Label) Text() string { return l.text }

// SetText replaces the displayed text.
func (l *Label) SetText(text string) {
	l.text = text
	if impl, ok := l.impl.(backend.Label); ok {
		impl.SetText(text)
	}
	l.Refresh()
}

func (l *Label) attach(host Host, parent Widget) error {
	impl := host.Factory().NewLabel()
	l.attachBase(host, parent, impl)
	impl.SetText(l.text)
	return nil
}
