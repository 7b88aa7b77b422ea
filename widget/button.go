// SPDX-License-Identifier: Unlicense OR MIT

package widget

import "github.com/terrazzo-ui/terrazzo/backend"

// Button is a clickable push button.
type Button struct {
	Base
	text    string
	onPress func(*Button)
}

// NewButton returns a button with the given text.
func NewButton(text string) *Button {
	return &Button{Base: newBase("button"), text: text}
}

// Text returns the button's text.
func (b *Button) Text() string { return b.text }

// SetText replaces the button's text.
func (b *Button) SetText(text string) {
	b.text = text
	if impl, ok := b.impl.(backend.Button); ok {
		impl.SetText(text)
	}
	b.Refresh()
}

// OnPress sets the handler invoked when the button is pressed.
func (b *Button) OnPress(fn func(*Button)) {
	b.onPress = fn
}

func (b *Button) attach(host Host, parent Widget) error {
	impl := host.Factory().NewButton()
	b.attachBase(host, parent, impl)
	impl.SetText(b.text)
	impl.OnPress(func() {
		if b.onPress != nil && b.enabled {
			b.onPress(b)
		}
	})
	return nil
}
