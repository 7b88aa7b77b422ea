// SPDX-License-Identifier: Unlicense OR MIT

package widget

import "github.com/terrazzo-ui/terrazzo/backend"

// TextInput is a single-line editable text field.
type TextInput struct {
	Base
	value       string
	placeholder string
	readOnly    bool
	onChange    func(*TextInput)
	onConfirm   func(*TextInput)
}

// NewTextInput returns an empty text input.
func NewTextInput() *TextInput {
	return &TextInput{Base: newBase("textinput")}
}

// Value returns the current contents.
func (t *TextInput) Value() string {
	if impl, ok := t.impl.(backend.TextInput); ok {
		return impl.Value()
	}
	return t.value
}

// SetValue replaces the contents. The change handler fires when the
// value actually changes.
func (t *TextInput) SetValue(value string) {
	old := t.Value()
	t.value = value
	if impl, ok := t.impl.(backend.TextInput); ok {
		impl.SetValue(value)
	}
	if value != old && t.onChange != nil {
		t.onChange(t)
	}
	t.Refresh()
}

// Placeholder returns the hint text shown while the input is empty.
func (t *TextInput) Placeholder() string { return t.placeholder }

// SetPlaceholder sets the hint text shown while the input is empty.
func (t *TextInput) SetPlaceholder(text string) {
	t.placeholder = text
	if impl, ok := t.impl.(backend.TextInput); ok {
		impl.SetPlaceholder(text)
	}
	t.Refresh()
}

// ReadOnly reports whether the input rejects user edits.
func (t *TextInput) ReadOnly() bool { return t.readOnly }

// SetReadOnly controls whether the input rejects user edits.
func (t *TextInput) SetReadOnly(readOnly bool) {
	t.readOnly = readOnly
	if impl, ok := t.impl.(backend.TextInput); ok {
		impl.SetReadOnly(readOnly)
	}
}

// OnChange sets the handler invoked when the contents change, either
// by the user or programmatically.
func (t *TextInput) OnChange(fn func(*TextInput)) { t.onChange = fn }

// OnConfirm sets the handler invoked when the user confirms the input,
// typically with the return key.
func (t *TextInput) OnConfirm(fn func(*TextInput)) { t.onConfirm = fn }

func (t *TextInput) attach(host Host, parent Widget) error {
	impl := host.Factory().NewTextInput()
	t.attachBase(host, parent, impl)
	impl.SetValue(t.value)
	impl.SetPlaceholder(t.placeholder)
	impl.SetReadOnly(t.readOnly)
	impl.OnChange(func(value string) {
		t.value = value
		if t.onChange != nil {
			t.onChange(t)
		}
	})
	impl.OnConfirm(func() {
		if t.onConfirm != nil {
			t.onConfirm(t)
		}
	})
	return nil
}
