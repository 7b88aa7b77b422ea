// SPDX-License-Identifier: Unlicense OR MIT

package headless

import (
	"sync"

	"github.com/terrazzo-ui/terrazzo/backend"
)

// Location is the simulated geolocation service. Tests drive it with
// GrantPermission, DenyPermission and SetLocation; pending requests
// resolve the way a platform service would: one authorization change
// answers every outstanding permission request, and one position fix
// answers every outstanding location request.
type Location struct {
	mu sync.Mutex

	permission     *bool // nil until decided
	pendingPerm    []func(granted bool)
	reading        *reading
	pendingCurrent []func(pos backend.LatLng, altitude float64, ok bool, err error)
	onChange       func(pos backend.LatLng)
}

type reading struct {
	pos      backend.LatLng
	altitude float64
	ok       bool
}

func newLocation() *Location {
	return &Location{}
}

// RequestPermission implements backend.Location. The callback is
// queued until a test decides the permission, or resolved immediately
// when it is already decided.
func (l *Location) RequestPermission(cb func(granted bool)) {
	l.mu.Lock()
	if l.permission == nil {
		l.pendingPerm = append(l.pendingPerm, cb)
		l.mu.Unlock()
		return
	}
	granted := *l.permission
	l.mu.Unlock()
	cb(granted)
}

// CurrentLocation implements backend.Location. The callback resolves
// with the current simulated reading, or queues until one is set.
func (l *Location) CurrentLocation(cb func(pos backend.LatLng, altitude float64, ok bool, err error)) {
	l.mu.Lock()
	if l.reading == nil {
		l.pendingCurrent = append(l.pendingCurrent, cb)
		l.mu.Unlock()
		return
	}
	r := *l.reading
	l.mu.Unlock()
	cb(r.pos, r.altitude, r.ok, nil)
}

// OnChange implements backend.Location.
func (l *Location) OnChange(fn func(pos backend.LatLng)) {
	l.mu.Lock()
	l.onChange = fn
	l.mu.Unlock()
}

// GrantPermission resolves the permission and all pending requests as
// granted.
func (l *Location) GrantPermission() { l.decidePermission(true) }

// DenyPermission resolves the permission and all pending requests as
// denied.
func (l *Location) DenyPermission() { l.decidePermission(false) }

func (l *Location) decidePermission(granted bool) {
	l.mu.Lock()
	l.permission = &granted
	pending := l.pendingPerm
	l.pendingPerm = nil
	l.mu.Unlock()
	for _, cb := range pending {
		cb(granted)
	}
}

// SetLocation installs a simulated position fix and resolves all
// pending location requests with it. The altitude is invalid when
// verticalAccuracy is not positive.
func (l *Location) SetLocation(pos backend.LatLng, altitude, verticalAccuracy float64) {
	r := reading{pos: pos, altitude: altitude, ok: verticalAccuracy > 0}
	l.mu.Lock()
	l.reading = &r
	pending := l.pendingCurrent
	l.pendingCurrent = nil
	onChange := l.onChange
	l.mu.Unlock()
	for _, cb := range pending {
		cb(r.pos, r.altitude, r.ok, nil)
	}
	if onChange != nil {
		onChange(r.pos)
	}
}
