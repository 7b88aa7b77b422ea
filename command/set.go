// SPDX-License-Identifier: Unlicense OR MIT

package command

import (
	"sort"

	"github.com/terrazzo-ui/terrazzo/backend"
)

// Set is an ordered, de-duplicated collection of commands. Iteration
// follows menu order. Adding a command with an already present ID
// replaces the earlier one.
type Set struct {
	commands map[string]*Command
	onChange func()
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{commands: make(map[string]*Command)}
}

// OnChange sets the callback fired after every mutation. The app
// registers here to push the rebuilt menu to its backend.
func (s *Set) OnChange(fn func()) {
	s.onChange = fn
}

// Add inserts commands into the set.
func (s *Set) Add(cmds ...*Command) {
	for _, c := range cmds {
		s.commands[c.ID] = c
	}
	s.changed()
}

// Remove deletes the command with the given ID, if present.
func (s *Set) Remove(id string) {
	if _, ok := s.commands[id]; !ok {
		return
	}
	delete(s.commands, id)
	s.changed()
}

// Get returns the command with the given ID.
func (s *Set) Get(id string) (*Command, bool) {
	c, ok := s.commands[id]
	return c, ok
}

// Len returns the number of commands in the set.
func (s *Set) Len() int { return len(s.commands) }

// All returns the commands in menu order.
func (s *Set) All() []*Command {
	cmds := make([]*Command, 0, len(s.commands))
	for _, c := range s.commands {
		cmds = append(cmds, c)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Less(cmds[j]) })
	return cmds
}

// Menu flattens the set into backend menu items, in menu order.
func (s *Set) Menu() []backend.MenuItem {
	items := make([]backend.MenuItem, 0, len(s.commands))
	for _, c := range s.All() {
		item := backend.MenuItem{
			ID:       c.ID,
			Path:     c.Group.Titles(),
			Text:     c.Text,
			Shortcut: c.Shortcut,
			Section:  c.Section,
			Enabled:  c.Enabled(),
		}
		if item.Enabled {
			item.Invoke = c.Action
		}
		items = append(items, item)
	}
	return items
}

func (s *Set) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}
