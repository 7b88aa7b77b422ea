// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements device independent units.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device.

Scaled pixels, or sp, is the unit for text sizes. An sp is like dp with
text scaling applied.

To maintain a constant visual size across platforms and displays,
always use dps or sps to define user interfaces. Only use pixels for
derived values.
*/
package unit

import "math"

// Dp is a value in device independent pixels.
type Dp float32

// Sp is a value in scaled pixels.
type Sp float32

// Metric converts dp and sp to device pixels. The zero value (and any
// non-positive scale) behaves as a 1:1 mapping.
type Metric struct {
	// PxPerDp is the device pixels per dp.
	PxPerDp float32
	// PxPerSp is the device pixels per sp.
	PxPerSp float32
}

// Dp rounds v to the nearest device pixel.
func (m Metric) Dp(v Dp) int {
	scale := m.PxPerDp
	if scale <= 0 {
		scale = 1
	}
	return int(math.Round(float64(scale) * float64(v)))
}

// Sp rounds v to the nearest device pixel.
func (m Metric) Sp(v Sp) int {
	scale := m.PxPerSp
	if scale <= 0 {
		scale = 1
	}
	return int(math.Round(float64(scale) * float64(v)))
}

// DpToSp converts v to an Sp of the same apparent size.
func (m Metric) DpToSp(v Dp) Sp {
	pxPerDp, pxPerSp := m.scales()
	return Sp(float32(v) * pxPerDp / pxPerSp)
}

// SpToDp converts v to a Dp of the same apparent size.
func (m Metric) SpToDp(v Sp) Dp {
	pxPerDp, pxPerSp := m.scales()
	return Dp(float32(v) * pxPerSp / pxPerDp)
}

// PxToDp converts a pixel count to dp.
func (m Metric) PxToDp(v int) Dp {
	pxPerDp, _ := m.scales()
	return Dp(float32(v) / pxPerDp)
}

// PxToSp converts a pixel count to sp.
func (m Metric) PxToSp(v int) Sp {
	_, pxPerSp := m.scales()
	return Sp(float32(v) / pxPerSp)
}

func (m Metric) scales() (pxPerDp, pxPerSp float32) {
	pxPerDp, pxPerSp = m.PxPerDp, m.PxPerSp
	if pxPerDp <= 0 {
		pxPerDp = 1
	}
	if pxPerSp <= 0 {
		pxPerSp = 1
	}
	return pxPerDp, pxPerSp
}
