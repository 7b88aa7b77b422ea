// SPDX-License-Identifier: Unlicense OR MIT

package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []string
}

func (r *recorder) RowInserted(i int) { r.events = append(r.events, "insert") }
func (r *recorder) RowChanged(i int)  { r.events = append(r.events, "change") }
func (r *recorder) RowRemoved(i int)  { r.events = append(r.events, "remove") }
func (r *recorder) Cleared()          { r.events = append(r.events, "clear") }

func TestListSourceNotifications(t *testing.T) {
	s := NewListSource([]Row{{"title": "a"}})
	rec := &recorder{}
	s.AddListener(rec)

	s.Append(Row{"title": "b"})
	require.NoError(t, s.Insert(0, Row{"title": "c"}))
	require.NoError(t, s.SetRow(1, Row{"title": "a2"}))
	require.NoError(t, s.Remove(2))
	s.Clear()

	assert.Equal(t, []string{"insert", "insert", "change", "remove", "clear"}, rec.events)
	assert.Equal(t, 0, s.Len())
}

func TestListSourceOrdering(t *testing.T) {
	s := NewListSource(nil)
	s.Append(Row{"title": "b"})
	require.NoError(t, s.Insert(0, Row{"title": "a"}))

	r, err := s.Row(0)
	require.NoError(t, err)
	assert.Equal(t, "a", r.String("title", ""))

	_, err = s.Row(5)
	assert.Error(t, err)
	assert.Error(t, s.Remove(-1))
	assert.Error(t, s.Insert(7, Row{}))
}

func TestRowString(t *testing.T) {
	r := Row{"title": "hello", "count": 3, "icon": nil}
	assert.Equal(t, "hello", r.String("title", "?"))
	assert.Equal(t, "3", r.String("count", "?"))
	assert.Equal(t, "?", r.String("icon", "?"))
	assert.Equal(t, "?", r.String("missing", "?"))
}

func TestRemoveListener(t *testing.T) {
	s := NewListSource(nil)
	rec := &recorder{}
	s.AddListener(rec)
	s.RemoveListener(rec)
	s.Append(Row{})
	assert.Empty(t, rec.events)
}
