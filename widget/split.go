// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"

	"github.com/terrazzo-ui/terrazzo/backend"
	"github.com/terrazzo-ui/terrazzo/layout"
	"github.com/terrazzo-ui/terrazzo/style"
)

// Panel is one side of a SplitContainer: a widget (nil for an empty
// pane) and the flex weight of its share of the split.
type Panel struct {
	Content Widget
	// Flex must be positive; a zero value is treated as 1.
	Flex float64
}

// SplitContainer shows two panels side by side with a user adjustable
// divider between them.
type SplitContainer struct {
	Base
	direction style.Direction
	panels    [2]Panel
}

// NewSplitContainer returns an empty split with a vertical divider
// (panels side by side).
func NewSplitContainer() *SplitContainer {
	s := &SplitContainer{Base: newBase("splitcontainer")}
	s.panels = [2]Panel{{Flex: 1}, {Flex: 1}}
	s.SetDirection(style.Column)
	return s
}

// Direction returns the orientation of the split divider. style.Column
// is a vertical divider with the panels side by side.
func (s *SplitContainer) Direction() style.Direction { return s.direction }

// SetDirection sets the orientation of the split divider. The panels
// are arranged perpendicular to it.
func (s *SplitContainer) SetDirection(dir style.Direction) {
	s.direction = dir
	if dir == style.Column {
		s.style.Direction = style.Row
	} else {
		s.style.Direction = style.Column
	}
	if impl, ok := s.impl.(backend.SplitContainer); ok {
		impl.SetDirection(dir)
	}
	s.Refresh()
}

// Content returns the two panel widgets. Entries are nil for empty
// panes.
func (s *SplitContainer) Content() [2]Widget {
	return [2]Widget{s.panels[0].Content, s.panels[1].Content}
}

// SetContent assigns the two panels. Panels with a zero Flex default
// to 1; a negative Flex is an error.
func (s *SplitContainer) SetContent(first, second Panel) error {
	panels := [2]Panel{first, second}
	for i := range panels {
		if panels[i].Flex == 0 {
			panels[i].Flex = 1
		}
		if panels[i].Flex < 0 {
			return fmt.Errorf("the flex value for a SplitContainer panel must be positive")
		}
	}
	for _, p := range s.panels {
		if p.Content != nil {
			p.Content.setParent(nil)
			if s.host != nil {
				Detach(p.Content)
			}
		}
	}
	s.panels = panels
	for _, p := range s.panels {
		if p.Content != nil {
			p.Content.setParent(s)
			// The panel weight drives the layout engine's flex share.
			p.Content.PackStyle().Flex = float32(p.Flex)
		}
	}
	if s.host != nil {
		if err := s.attachPanels(); err != nil {
			return err
		}
	}
	s.Refresh()
	return nil
}

// Enabled always reports true; split containers cannot be disabled.
func (s *SplitContainer) Enabled() bool { return true }

// SetEnabled is ignored; split containers cannot be disabled.
func (s *SplitContainer) SetEnabled(bool) {}

// Focus is a no-op; split containers cannot accept input focus.
func (s *SplitContainer) Focus() {}

// Children returns the non-nil panel widgets.
func (s *SplitContainer) Children() []Widget {
	var ws []Widget
	for _, p := range s.panels {
		if p.Content != nil {
			ws = append(ws, p.Content)
		}
	}
	return ws
}

// LayoutChildren implements layout.Node.
func (s *SplitContainer) LayoutChildren() []layout.Node {
	return nodesOf(s.Children())
}

func (s *SplitContainer) attach(host Host, parent Widget) error {
	impl := host.Factory().NewSplitContainer()
	s.attachBase(host, parent, impl)
	impl.SetDirection(s.direction)
	return s.attachPanels()
}

func (s *SplitContainer) attachPanels() error {
	impl, ok := s.impl.(backend.SplitContainer)
	if !ok {
		return nil
	}
	var impls [2]backend.Widget
	var flex [2]float64
	for i, p := range s.panels {
		flex[i] = p.Flex
		if p.Content == nil {
			continue
		}
		if err := p.Content.attach(s.host, s); err != nil {
			return err
		}
		impls[i] = p.Content.Impl()
	}
	impl.SetContent(impls, flex)
	return nil
}
