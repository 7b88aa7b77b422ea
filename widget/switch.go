// SPDX-License-Identifier: Unlicense OR MIT

package widget

import "github.com/terrazzo-ui/terrazzo/backend"

// Switch is a labelled on/off toggle.
type Switch struct {
	Base
	text     string
	value    bool
	onChange func(*Switch)
}

// NewSwitch returns an off switch with the given label.
func NewSwitch(text string) *Switch {
	return &Switch{Base: newBase("switch"), text: text}
}

// Text returns the switch label.
func (s *Switch) Text() string { return s.text }

// SetText replaces the switch label.
func (s *Switch) SetText(text string) {
	s.text = text
	if impl, ok := s.impl.(backend.Switch); ok {
		impl.SetText(text)
	}
	s.Refresh()
}

// Value returns the switch state.
func (s *Switch) Value() bool {
	if impl, ok := s.impl.(backend.Switch); ok {
		return impl.Value()
	}
	return s.value
}

// SetValue sets the switch state. The change handler fires when the
// state actually changes.
func (s *Switch) SetValue(value bool) {
	old := s.Value()
	s.value = value
	if impl, ok := s.impl.(backend.Switch); ok {
		impl.SetValue(value)
	}
	if value != old && s.onChange != nil {
		s.onChange(s)
	}
}

// Toggle flips the switch state.
func (s *Switch) Toggle() {
	s.SetValue(!s.Value())
}

// OnChange sets the handler invoked when the state changes, either by
// the user or programmatically.
func (s *Switch) OnChange(fn func(*Switch)) { s.onChange = fn }

func (s *Switch) attach(host Host, parent Widget) error {
	impl := host.Factory().NewSwitch()
	s.attachBase(host, parent, impl)
	impl.SetText(s.text)
	impl.SetValue(s.value)
	impl.OnChange(func(value bool) {
		s.value = value
		if s.onChange != nil {
			s.onChange(s)
		}
	})
	return nil
}
