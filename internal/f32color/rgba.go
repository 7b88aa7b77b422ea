// SPDX-License-Identifier: Unlicense OR MIT

// Package f32color provides the color conversions shared by the
// backends.
package f32color

import (
	"fmt"
	"image/color"
	"math"
)

// RGBA is a 32 bit floating point linear premultiplied color space.
type RGBA struct {
	R, G, B, A float32
}

// SRGB converts to the 8 bit non-premultiplied sRGB color space.
func (col RGBA) SRGB() color.NRGBA {
	if col.A == 0 {
		return color.NRGBA{}
	}
	return color.NRGBA{
		R: uint8(linearTosRGB(col.R/col.A)*255 + .5),
		G: uint8(linearTosRGB(col.G/col.A)*255 + .5),
		B: uint8(linearTosRGB(col.B/col.A)*255 + .5),
		A: uint8(col.A*255 + .5),
	}
}

// Opaque returns the color with full alpha.
func (col RGBA) Opaque() RGBA {
	col.A = 1
	return col
}

// LinearFromSRGB converts from 8 bit non-premultiplied sRGB.
func LinearFromSRGB(col color.NRGBA) RGBA {
	af := float32(col.A) / 0xFF
	return RGBA{
		R: sRGBToLinear(float32(col.R)/0xFF) * af,
		G: sRGBToLinear(float32(col.G)/0xFF) * af,
		B: sRGBToLinear(float32(col.B)/0xFF) * af,
		A: af,
	}
}

// NRGBAToLinearRGBA converts from non-premultiplied sRGB to
// premultiplied linear RGBA.
func NRGBAToLinearRGBA(col color.NRGBA) color.RGBA {
	if col.A == 0xFF {
		return color.RGBA(col)
	}
	c := LinearFromSRGB(col)
	return color.RGBA{
		R: uint8(c.R*255 + .5),
		G: uint8(c.G*255 + .5),
		B: uint8(c.B*255 + .5),
		A: col.A,
	}
}

func sRGBToLinear(c float32) float32 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return float32(math.Pow(float64((c+0.055)/1.055), 2.4))
}

func linearTosRGB(c float32) float32 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*float32(math.Pow(float64(c), 1/2.4)) - 0.055
}

// MulAlpha scales the color's alpha.
func MulAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(alpha) / 0xFF)
	return c
}

// Disabled blends the color towards its luminance and reduces alpha,
// for rendering disabled widgets.
func Disabled(c color.NRGBA) color.NRGBA {
	const r = 80 // blend ratio
	lum := approxLuminance(c)
	return color.NRGBA{
		R: byte((int(c.R)*r + int(lum)*(255-r)) / 255),
		G: byte((int(c.G)*r + int(lum)*(255-r)) / 255),
		B: byte((int(c.B)*r + int(lum)*(255-r)) / 255),
		A: byte(int(c.A) * (128 + 32) / 255),
	}
}

func approxLuminance(c color.NRGBA) byte {
	const x, y, z = 77, 150, 28 // approx 0.299, 0.587, 0.114
	return byte((int(c.R)*x + int(c.G)*y + int(c.B)*z) / 255)
}

// Hex formats the color as a CSS color value.
func Hex(c color.NRGBA) string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
