// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/terrazzo-ui/terrazzo/backend"
	"github.com/terrazzo-ui/terrazzo/style"
)

// Divider is a visual separator line. A horizontal divider separates
// rows in a column; a vertical one separates columns in a row.
type Divider struct {
	Base
	direction style.Direction
}

// NewDivider returns a horizontal divider.
func NewDivider() *Divider {
	return &Divider{Base: newBase("divider"), direction: style.Row}
}

// Direction returns the direction the separator line is drawn in.
// style.Row is a horizontal line, style.Column a vertical one.
func (d *Divider) Direction() style.Direction { return d.direction }

// SetDirection sets the direction the separator line is drawn in.
func (d *Divider) SetDirection(dir style.Direction) {
	d.direction = dir
	if impl, ok := d.impl.(backend.Divider); ok {
		impl.SetDirection(dir)
	}
	d.Refresh()
}

// Enabled always reports true; dividers cannot be disabled.
func (d *Divider) Enabled() bool { return true }

// SetEnabled is ignored; dividers cannot be disabled.
func (d *Divider) SetEnabled(bool) {}

// Focus is a no-op; dividers cannot accept input focus.
func (d *Divider) Focus() {}

func (d *Divider) attach(host Host, parent Widget) error {
	impl := host.Factory().NewDivider()
	d.attachBase(host, parent, impl)
	impl.SetDirection(d.direction)
	return nil
}
