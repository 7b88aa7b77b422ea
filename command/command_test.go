// SPDX-License-Identifier: Unlicense OR MIT

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terrazzo-ui/terrazzo/backend"
)

var testInfo = backend.AppInfo{
	Name:       "tilecounter",
	FormalName: "Tile Counter",
	ID:         "org.example.tilecounter",
	HomePage:   "https://example.org/tilecounter",
}

func TestGroupOrdering(t *testing.T) {
	assert.True(t, GroupFile.Less(GroupEdit))
	assert.True(t, GroupEdit.Less(GroupHelp))
	assert.False(t, GroupHelp.Less(GroupFile))

	sub := &Group{Text: "Recent", Parent: GroupFile}
	assert.True(t, GroupFile.Less(sub), "a parent orders before its children")
	assert.True(t, sub.Less(GroupEdit), "a submenu stays inside its parent")
	assert.True(t, GroupFile.IsParentOf(sub))
	assert.False(t, GroupFile.IsParentOf(GroupEdit))
}

func TestStandardFileMenuOrder(t *testing.T) {
	ids := []StandardID{Exit, SaveAll, NewFile, Preferences, SaveAs, OpenFile, Save}
	set := NewSet()
	for _, id := range ids {
		cmd, err := Standard(id, testInfo)
		require.NoError(t, err)
		cmd.Action = func() {}
		set.Add(cmd)
	}
	var got []string
	for _, c := range set.All() {
		got = append(got, c.ID)
	}
	want := []string{"new", "open", "save", "save-as", "save-all", "preferences", "exit"}
	assert.Equal(t, want, got)
}

func TestStandardHelpMenu(t *testing.T) {
	about, err := Standard(About, testInfo)
	require.NoError(t, err)
	assert.Equal(t, "About Tile Counter", about.Text)
	assert.Equal(t, GroupHelp, about.Group)

	visit, err := Standard(VisitHomepage, testInfo)
	require.NoError(t, err)
	visit.Action = func() {}
	about.Action = func() {}
	assert.True(t, visit.Less(about), "About comes last in Help")
}

func TestVisitHomepageDisabledWithoutHomePage(t *testing.T) {
	info := testInfo
	info.HomePage = ""
	cmd, err := Standard(VisitHomepage, info)
	require.NoError(t, err)
	cmd.Action = func() {}
	assert.False(t, cmd.Enabled())

	cmd, err = Standard(VisitHomepage, testInfo)
	require.NoError(t, err)
	cmd.Action = func() {}
	assert.True(t, cmd.Enabled())
}

func TestStandardUnknown(t *testing.T) {
	_, err := Standard(StandardID("bogus"), testInfo)
	assert.ErrorContains(t, err, `unknown standard command "bogus"`)
}

func TestCommandEnabled(t *testing.T) {
	c := &Command{ID: "x", Text: "X", Group: GroupFile}
	assert.False(t, c.Enabled(), "no action means disabled")
	c.Action = func() {}
	assert.True(t, c.Enabled())
	c.SetEnabled(false)
	assert.False(t, c.Enabled())
	c.SetEnabled(true)
	assert.True(t, c.Enabled())
}

func TestSetMenuFlattening(t *testing.T) {
	set := NewSet()
	save, err := Standard(Save, testInfo)
	require.NoError(t, err)
	save.Action = func() {}
	about, err := Standard(About, testInfo)
	require.NoError(t, err)
	recent := &Group{Text: "Recent", Parent: GroupFile, Order: 30}
	reopen := &Command{ID: "reopen", Text: "Reopen", Group: recent, Action: func() {}}
	set.Add(about, reopen, save)

	menu := set.Menu()
	require.Len(t, menu, 3)

	assert.Equal(t, "save", menu[0].ID)
	assert.Equal(t, []string{"File"}, menu[0].Path)
	assert.Equal(t, "ctrl+s", menu[0].Shortcut)
	require.True(t, menu[0].Enabled)
	require.NotNil(t, menu[0].Invoke)

	assert.Equal(t, "reopen", menu[1].ID)
	assert.Equal(t, []string{"File", "Recent"}, menu[1].Path)

	assert.Equal(t, "about", menu[2].ID)
	assert.Equal(t, []string{"Help"}, menu[2].Path)
	assert.False(t, menu[2].Enabled, "an action-less command renders disabled")
	assert.Nil(t, menu[2].Invoke)
}

func TestSetDeduplicatesAndNotifies(t *testing.T) {
	set := NewSet()
	var fired int
	set.OnChange(func() { fired++ })

	a := &Command{ID: "a", Text: "A", Group: GroupFile, Action: func() {}}
	set.Add(a)
	assert.Equal(t, 1, set.Len())
	assert.Equal(t, 1, fired)

	replacement := &Command{ID: "a", Text: "A2", Group: GroupFile, Action: func() {}}
	set.Add(replacement)
	assert.Equal(t, 1, set.Len())
	got, ok := set.Get("a")
	require.True(t, ok)
	assert.Equal(t, "A2", got.Text)

	set.Remove("a")
	assert.Equal(t, 0, set.Len())
	set.Remove("a")
	assert.Equal(t, 3, fired, "removing an absent ID does not notify")
}
