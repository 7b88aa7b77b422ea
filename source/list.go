// SPDX-License-Identifier: Unlicense OR MIT

// Package source provides observable data sources for data-driven
// widgets. A widget registers itself as a listener on its source and
// reacts to row-level change notifications.
package source

import "fmt"

// Row is one item of a ListSource: accessor name to value.
type Row map[string]any

// String returns the row's value for accessor as a string, or fallback
// when the accessor is missing or nil.
func (r Row) String(accessor, fallback string) string {
	v, ok := r[accessor]
	if !ok || v == nil {
		return fallback
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Listener receives change notifications from a source. Indexes refer
// to the source's ordering at notification time.
type Listener interface {
	RowInserted(index int)
	RowChanged(index int)
	RowRemoved(index int)
	Cleared()
}

// ListSource is an ordered collection of rows with change
// notification. The zero value is an empty, usable source.
type ListSource struct {
	rows      []Row
	listeners []Listener
}

// NewListSource returns a source holding copies of the given rows.
func NewListSource(rows []Row) *ListSource {
	s := &ListSource{rows: make([]Row, len(rows))}
	copy(s.rows, rows)
	return s
}

// AddListener registers l for change notifications. Listeners are
// notified in registration order.
func (s *ListSource) AddListener(l Listener) {
	s.listeners = append(s.listeners, l)
}

// RemoveListener unregisters l.
func (s *ListSource) RemoveListener(l Listener) {
	for i, x := range s.listeners {
		if x == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// Len returns the number of rows.
func (s *ListSource) Len() int {
	return len(s.rows)
}

// Row returns the row at index.
func (s *ListSource) Row(index int) (Row, error) {
	if index < 0 || index >= len(s.rows) {
		return nil, fmt.Errorf("row index %d out of range [0, %d)", index, len(s.rows))
	}
	return s.rows[index], nil
}

// Append adds a row at the end.
func (s *ListSource) Append(r Row) {
	s.rows = append(s.rows, r)
	for _, l := range s.listeners {
		l.RowInserted(len(s.rows) - 1)
	}
}

// Insert adds a row at index.
func (s *ListSource) Insert(index int, r Row) error {
	if index < 0 || index > len(s.rows) {
		return fmt.Errorf("insert index %d out of range [0, %d]", index, len(s.rows))
	}
	s.rows = append(s.rows, nil)
	copy(s.rows[index+1:], s.rows[index:])
	s.rows[index] = r
	for _, l := range s.listeners {
		l.RowInserted(index)
	}
	return nil
}

// SetRow replaces the row at index.
func (s *ListSource) SetRow(index int, r Row) error {
	if index < 0 || index >= len(s.rows) {
		return fmt.Errorf("row index %d out of range [0, %d)", index, len(s.rows))
	}
	s.rows[index] = r
	for _, l := range s.listeners {
		l.RowChanged(index)
	}
	return nil
}

// Remove deletes the row at index.
func (s *ListSource) Remove(index int) error {
	if index < 0 || index >= len(s.rows) {
		return fmt.Errorf("row index %d out of range [0, %d)", index, len(s.rows))
	}
	s.rows = append(s.rows[:index], s.rows[index+1:]...)
	for _, l := range s.listeners {
		l.RowRemoved(index)
	}
	return nil
}

// Clear removes all rows.
func (s *ListSource) Clear() {
	s.rows = s.rows[:0]
	for _, l := range s.listeners {
		l.Cleared()
	}
}
