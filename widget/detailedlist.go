// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/terrazzo-ui/terrazzo/backend"
	"github.com/terrazzo-ui/terrazzo/source"
)

// Accessors name the row fields a DetailedList reads, in the order
// title, subtitle, icon.
type Accessors struct {
	Title    string
	Subtitle string
	Icon     string
}

// DefaultAccessors are used when none are given.
var DefaultAccessors = Accessors{Title: "title", Subtitle: "subtitle", Icon: "icon"}

// DetailedList is a scrolling list of rows, each showing a title,
// subtitle and icon. Rows come from a source.ListSource; the list
// tracks source mutations through its listener registration.
//
// Each row carries two optional actions. The primary action is "swipe
// left" on platforms with swipe interactions; other targets may use a
// context menu or action buttons. An action is only offered in the UI
// while its handler is set.
type DetailedList struct {
	Base
	data         *source.ListSource
	accessors    Accessors
	missingValue string

	onSelect    func(*DetailedList)
	onPrimary   func(*DetailedList, source.Row)
	onSecondary func(*DetailedList, source.Row)
	onRefresh   func(*DetailedList)
}

// NewDetailedList returns an empty list using DefaultAccessors.
func NewDetailedList() *DetailedList {
	l := &DetailedList{
		Base:      newBase("detailedlist"),
		accessors: DefaultAccessors,
	}
	l.setData(source.NewListSource(nil))
	return l
}

// Accessors returns the accessors used to populate the list.
func (l *DetailedList) Accessors() Accessors { return l.accessors }

// SetAccessors replaces the accessors and re-renders the rows.
func (l *DetailedList) SetAccessors(a Accessors) {
	l.accessors = a
	l.syncRows()
}

// MissingValue returns the text shown when a row has no value for its
// title or subtitle.
func (l *DetailedList) MissingValue() string { return l.missingValue }

// SetMissingValue sets the text shown when a row has no value for its
// title or subtitle.
func (l *DetailedList) SetMissingValue(v string) {
	l.missingValue = v
	l.syncRows()
}

// Data returns the list's source.
func (l *DetailedList) Data() *source.ListSource { return l.data }

// SetData replaces the list's source. nil installs a fresh empty
// source.
func (l *DetailedList) SetData(data *source.ListSource) {
	if l.data != nil {
		l.data.RemoveListener(l)
	}
	if data == nil {
		data = source.NewListSource(nil)
	}
	l.setData(data)
}

func (l *DetailedList) setData(data *source.ListSource) {
	l.data = data
	data.AddListener(l)
	l.syncRows()
}

// Enabled always reports true; lists cannot be disabled.
func (l *DetailedList) Enabled() bool { return true }

// SetEnabled is ignored; lists cannot be disabled.
func (l *DetailedList) SetEnabled(bool) {}

// Focus is a no-op; the list itself does not take input focus.
func (l *DetailedList) Focus() {}

// Selection returns the selected row, or ok false when nothing is
// selected.
func (l *DetailedList) Selection() (source.Row, bool) {
	impl, isImpl := l.impl.(backend.DetailedList)
	if !isImpl {
		return nil, false
	}
	idx := impl.Selection()
	if idx < 0 {
		return nil, false
	}
	row, err := l.data.Row(idx)
	if err != nil {
		return nil, false
	}
	return row, true
}

// ScrollToTop scrolls so the first row is visible.
func (l *DetailedList) ScrollToTop() { l.ScrollToRow(0) }

// ScrollToBottom scrolls so the last row is visible.
func (l *DetailedList) ScrollToBottom() { l.ScrollToRow(-1) }

// ScrollToRow scrolls so the given row is visible. Negative values
// count from the end: -1 is the last row, -2 the second last.
func (l *DetailedList) ScrollToRow(row int) {
	impl, ok := l.impl.(backend.DetailedList)
	if !ok || l.data.Len() == 0 {
		return
	}
	if row < 0 {
		row = l.data.Len() + row
	}
	if row < 0 {
		row = 0
	}
	if row >= l.data.Len() {
		row = l.data.Len() - 1
	}
	impl.ScrollToRow(row)
}

// OnSelect sets the handler invoked when a row is selected.
func (l *DetailedList) OnSelect(fn func(*DetailedList)) { l.onSelect = fn }

// OnPrimaryAction sets the handler for the row primary action. The
// action is removed from the UI when fn is nil.
func (l *DetailedList) OnPrimaryAction(fn func(*DetailedList, source.Row)) {
	l.onPrimary = fn
	if impl, ok := l.impl.(backend.DetailedList); ok {
		impl.SetPrimaryActionEnabled(fn != nil)
	}
}

// OnSecondaryAction sets the handler for the row secondary action. The
// action is removed from the UI when fn is nil.
func (l *DetailedList) OnSecondaryAction(fn func(*DetailedList, source.Row)) {
	l.onSecondary = fn
	if impl, ok := l.impl.(backend.DetailedList); ok {
		impl.SetSecondaryActionEnabled(fn != nil)
	}
}

// OnRefresh sets the handler invoked by the pull-to-refresh gesture.
// The gesture is disabled when fn is nil.
func (l *DetailedList) OnRefresh(fn func(*DetailedList)) {
	l.onRefresh = fn
	if impl, ok := l.impl.(backend.DetailedList); ok {
		impl.SetRefreshEnabled(fn != nil)
	}
}

// RowInserted implements source.Listener.
func (l *DetailedList) RowInserted(int) { l.syncRows() }

// RowChanged implements source.Listener.
func (l *DetailedList) RowChanged(int) { l.syncRows() }

// RowRemoved implements source.Listener.
func (l *DetailedList) RowRemoved(int) { l.syncRows() }

// Cleared implements source.Listener.
func (l *DetailedList) Cleared() { l.syncRows() }

func (l *DetailedList) syncRows() {
	impl, ok := l.impl.(backend.DetailedList)
	if !ok {
		return
	}
	rows := make([]backend.ListRow, l.data.Len())
	for i := range rows {
		row, err := l.data.Row(i)
		if err != nil {
			continue
		}
		rows[i] = backend.ListRow{
			Title:    row.String(l.accessors.Title, l.missingValue),
			Subtitle: row.String(l.accessors.Subtitle, l.missingValue),
			Icon:     row.String(l.accessors.Icon, ""),
		}
	}
	impl.SetRows(rows)
	l.Refresh()
}

func (l *DetailedList) rowAt(index int) (source.Row, bool) {
	row, err := l.data.Row(index)
	return row, err == nil
}

func (l *DetailedList) attach(host Host, parent Widget) error {
	impl := host.Factory().NewDetailedList()
	l.attachBase(host, parent, impl)
	impl.OnSelect(func(int) {
		if l.onSelect != nil {
			l.onSelect(l)
		}
	})
	impl.OnPrimaryAction(func(index int) {
		if row, ok := l.rowAt(index); ok && l.onPrimary != nil {
			l.onPrimary(l, row)
		}
	})
	impl.OnSecondaryAction(func(index int) {
		if row, ok := l.rowAt(index); ok && l.onSecondary != nil {
			l.onSecondary(l, row)
		}
	})
	impl.OnRefresh(func() {
		if l.onRefresh != nil {
			l.onRefresh(l)
		}
	})
	impl.SetPrimaryActionEnabled(l.onPrimary != nil)
	impl.SetSecondaryActionEnabled(l.onSecondary != nil)
	impl.SetRefreshEnabled(l.onRefresh != nil)
	l.syncRows()
	return nil
}
