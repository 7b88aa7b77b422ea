// SPDX-License-Identifier: Unlicense OR MIT

/*
Package geo exposes the device location service.

The backend impl is callback-based; this package converts those
callbacks into blocking calls with context cancellation. Backends may
resolve several outstanding requests from a single platform event: one
authorization change answers every pending permission request, and one
position fix answers every pending location request.
*/
package geo

import (
	"context"
	"errors"

	"github.com/terrazzo-ui/terrazzo/backend"
)

// LatLng is a geographic coordinate.
type LatLng = backend.LatLng

// ErrNotAvailable is returned by New when the backend has no location
// capability.
var ErrNotAvailable = errors.New("geo: location service not available")

// Reading is one position fix.
type Reading struct {
	Pos LatLng
	// Altitude is meters above sea level, valid only when
	// AltitudeValid is true. Backends invalidate it when the vertical
	// accuracy of the fix is unusable.
	Altitude      float64
	AltitudeValid bool
}

// Service is the device location service for one app.
type Service struct {
	impl backend.Location
}

// New returns the location service of the given factory, or
// ErrNotAvailable.
func New(f backend.Factory) (*Service, error) {
	impl, err := f.Location()
	if err != nil {
		return nil, errors.Join(ErrNotAvailable, err)
	}
	return &Service{impl: impl}, nil
}

// RequestPermission asks the user for location access and blocks until
// the request resolves or ctx is done. It reports whether access was
// granted.
func (s *Service) RequestPermission(ctx context.Context) (bool, error) {
	ch := make(chan bool, 1)
	s.impl.RequestPermission(func(granted bool) {
		ch <- granted
	})
	select {
	case granted := <-ch:
		return granted, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// CurrentLocation blocks until one position fix arrives or ctx is
// done.
func (s *Service) CurrentLocation(ctx context.Context) (Reading, error) {
	type result struct {
		r   Reading
		err error
	}
	ch := make(chan result, 1)
	s.impl.CurrentLocation(func(pos LatLng, altitude float64, ok bool, err error) {
		ch <- result{Reading{Pos: pos, Altitude: altitude, AltitudeValid: ok}, err}
	})
	select {
	case res := <-ch:
		return res.r, res.err
	case <-ctx.Done():
		return Reading{}, ctx.Err()
	}
}

// OnChange sets the handler invoked on every position update.
func (s *Service) OnChange(fn func(pos LatLng)) {
	s.impl.OnChange(fn)
}
