// SPDX-License-Identifier: Unlicense OR MIT

/*
Package command defines application commands and their menu ordering.

A Command belongs to a Group (a node of the menu tree) and sorts within
it by section, then order, then text. Groups themselves sort by the
same key, applied along their path from the root, so a full command set
has one deterministic menu order on every backend.
*/
package command

import (
	"fmt"

	"github.com/terrazzo-ui/terrazzo/backend"
)

// Group is a node of the menu tree. A root group is a top-level menu;
// a group with a parent is a submenu.
type Group struct {
	Text    string
	Parent  *Group
	Section int
	Order   int
}

// The standard top-level groups, in their conventional menu order.
var (
	GroupApp      = &Group{Text: "App", Order: 0}
	GroupFile     = &Group{Text: "File", Order: 1}
	GroupEdit     = &Group{Text: "Edit", Order: 10}
	GroupView     = &Group{Text: "View", Order: 20}
	GroupCommands = &Group{Text: "Commands", Order: 30}
	GroupWindow   = &Group{Text: "Window", Order: 90}
	GroupHelp     = &Group{Text: "Help", Order: 100}
)

// sortKey is one level of a menu ordering key.
type sortKey struct {
	section int
	order   int
	text    string
}

func (k sortKey) less(o sortKey) bool {
	if k.section != o.section {
		return k.section < o.section
	}
	if k.order != o.order {
		return k.order < o.order
	}
	return k.text < o.text
}

// path returns the group's ordering key chain from the root down.
func (g *Group) path() []sortKey {
	if g == nil {
		return nil
	}
	return append(g.Parent.path(), sortKey{g.Section, g.Order, g.Text})
}

// Titles returns the group's label chain from the root down,
// e.g. ["Edit", "Find"] for a Find submenu of Edit.
func (g *Group) Titles() []string {
	if g == nil {
		return nil
	}
	return append(g.Parent.Titles(), g.Text)
}

// IsParentOf reports whether child is a direct child of g.
func (g *Group) IsParentOf(child *Group) bool {
	return child != nil && child.Parent == g
}

// Less reports whether g orders before o in the menu tree.
func (g *Group) Less(o *Group) bool {
	return lessKeys(g.path(), o.path())
}

func lessKeys(a, b []sortKey) bool {
	for i := range a {
		if i >= len(b) {
			return false
		}
		if a[i] != b[i] {
			return a[i].less(b[i])
		}
	}
	return len(a) < len(b)
}

// Command is one user-invokable action.
type Command struct {
	// ID uniquely identifies the command within a Set.
	ID string
	// Text is the menu label.
	Text string
	// Shortcut is the key combination, e.g. "ctrl+s". Empty for none.
	Shortcut string
	Group    *Group
	Section  int
	Order    int
	// Action is invoked when the command fires. A command with a nil
	// action renders disabled.
	Action func()

	disabled bool
}

// Enabled reports whether the command can fire.
func (c *Command) Enabled() bool {
	return !c.disabled && c.Action != nil
}

// SetEnabled enables or disables the command. A command with no action
// stays disabled regardless.
func (c *Command) SetEnabled(enabled bool) {
	c.disabled = !enabled
}

// key returns the command's full ordering key.
func (c *Command) key() []sortKey {
	return append(c.Group.path(), sortKey{c.Section, c.Order, c.Text})
}

// Less reports whether c orders before o in the menu tree.
func (c *Command) Less(o *Command) bool {
	return lessKeys(c.key(), o.key())
}

// StandardID names a command with platform-conventional placement.
type StandardID string

const (
	About         StandardID = "about"
	Preferences   StandardID = "preferences"
	NewFile       StandardID = "new"
	OpenFile      StandardID = "open"
	Save          StandardID = "save"
	SaveAs        StandardID = "save-as"
	SaveAll       StandardID = "save-all"
	Exit          StandardID = "exit"
	VisitHomepage StandardID = "visit-homepage"
)

// Sections far enough down that user sections sort above them.
const (
	sectionClose = 1 << 30
	sectionFinal = sectionClose + 1
)

// Standard returns the command for id with its conventional text,
// group, section and order, derived from the app metadata. The action
// is left nil; assign one to enable the command. VisitHomepage is the
// exception: it stays disabled when the app has no home page.
func Standard(id StandardID, info backend.AppInfo) (*Command, error) {
	switch id {
	case About:
		return &Command{
			ID:      string(id),
			Text:    fmt.Sprintf("About %s", info.FormalName),
			Group:   GroupHelp,
			Section: sectionFinal,
		}, nil
	case Preferences:
		return &Command{
			ID:      string(id),
			Text:    "Preferences",
			Group:   GroupFile,
			Section: sectionClose,
		}, nil
	case NewFile:
		return &Command{
			ID:       string(id),
			Text:     "New",
			Shortcut: "ctrl+n",
			Group:    GroupFile,
			Order:    0,
		}, nil
	case OpenFile:
		return &Command{
			ID:       string(id),
			Text:     "Open...",
			Shortcut: "ctrl+o",
			Group:    GroupFile,
			Order:    10,
		}, nil
	case Save:
		return &Command{
			ID:       string(id),
			Text:     "Save",
			Shortcut: "ctrl+s",
			Group:    GroupFile,
			Order:    20,
		}, nil
	case SaveAs:
		return &Command{
			ID:       string(id),
			Text:     "Save As...",
			Shortcut: "shift+ctrl+s",
			Group:    GroupFile,
			Order:    21,
		}, nil
	case SaveAll:
		return &Command{
			ID:       string(id),
			Text:     "Save All",
			Shortcut: "alt+ctrl+s",
			Group:    GroupFile,
			Order:    22,
		}, nil
	case Exit:
		return &Command{
			ID:      string(id),
			Text:    "Exit",
			Group:   GroupFile,
			Section: sectionFinal,
		}, nil
	case VisitHomepage:
		c := &Command{
			ID:      string(id),
			Text:    "Visit homepage",
			Group:   GroupHelp,
			Order:   0,
			Section: 0,
		}
		if info.HomePage == "" {
			c.SetEnabled(false)
		}
		return c, nil
	}
	return nil, fmt.Errorf("command: unknown standard command %q", id)
}
