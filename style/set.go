// SPDX-License-Identifier: Unlicense OR MIT

package style

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/terrazzo-ui/terrazzo/unit"
)

// Set assigns a property by name from its string form, as used by app
// manifests and the inspection tooling. An unknown property name
// returns an error carrying a suggestion for the closest known name.
// An invalid value leaves the style unchanged.
func (p *Pack) Set(name, value string) error {
	setter, ok := setters[name]
	if !ok {
		if s := closest(name); s != "" {
			return fmt.Errorf("unknown style property %q (did you mean %q?)", name, s)
		}
		return fmt.Errorf("unknown style property %q", name)
	}
	if err := setter(p, value); err != nil {
		return fmt.Errorf("style property %q: %w", name, err)
	}
	return nil
}

// Properties returns the known property names, sorted.
func Properties() []string {
	names := make([]string, 0, len(setters))
	for name := range setters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// closest returns the known property name nearest to name, or "" when
// nothing is plausibly close.
func closest(name string) string {
	best, bestDist := "", 4
	for _, p := range Properties() {
		if d := levenshtein.ComputeDistance(name, p); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

var setters = map[string]func(*Pack, string) error{
	"display": func(p *Pack, v string) error {
		switch v {
		case "pack":
			p.Display = DisplayPack
		case "none":
			p.Display = DisplayNone
		default:
			return fmt.Errorf("invalid value %q", v)
		}
		return nil
	},
	"visibility": func(p *Pack, v string) error {
		switch v {
		case "visible":
			p.Visibility = Visible
		case "hidden":
			p.Visibility = Hidden
		default:
			return fmt.Errorf("invalid value %q", v)
		}
		return nil
	},
	"direction": func(p *Pack, v string) error {
		switch v {
		case "column":
			p.Direction = Column
		case "row":
			p.Direction = Row
		default:
			return fmt.Errorf("invalid value %q", v)
		}
		return nil
	},
	"align_items": func(p *Pack, v string) error {
		switch v {
		case "start":
			p.AlignItems = Start
		case "center":
			p.AlignItems = Center
		case "end":
			p.AlignItems = End
		case "stretch":
			p.AlignItems = Stretch
		default:
			return fmt.Errorf("invalid value %q", v)
		}
		return nil
	},
	"justify_content": func(p *Pack, v string) error {
		switch v {
		case "start":
			p.JustifyContent = JustifyStart
		case "center":
			p.JustifyContent = JustifyCenter
		case "end":
			p.JustifyContent = JustifyEnd
		case "space-between":
			p.JustifyContent = SpaceBetween
		case "space-around":
			p.JustifyContent = SpaceAround
		case "space-evenly":
			p.JustifyContent = SpaceEvenly
		default:
			return fmt.Errorf("invalid value %q", v)
		}
		return nil
	},
	"width": func(p *Pack, v string) error {
		d, err := parseDim(v)
		if err != nil {
			return err
		}
		p.Width = d
		return nil
	},
	"height": func(p *Pack, v string) error {
		d, err := parseDim(v)
		if err != nil {
			return err
		}
		p.Height = d
		return nil
	},
	"flex": func(p *Pack, v string) error {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil || f < 0 {
			return fmt.Errorf("invalid value %q", v)
		}
		p.Flex = float32(f)
		return nil
	},
	"gap": func(p *Pack, v string) error {
		d, err := parseDp(v)
		if err != nil {
			return err
		}
		p.Gap = d
		return nil
	},
	"margin":         func(p *Pack, v string) error { return setUniform(&p.Margin, v) },
	"margin_top":     func(p *Pack, v string) error { return setEdge(&p.Margin.Top, v) },
	"margin_right":   func(p *Pack, v string) error { return setEdge(&p.Margin.Right, v) },
	"margin_bottom":  func(p *Pack, v string) error { return setEdge(&p.Margin.Bottom, v) },
	"margin_left":    func(p *Pack, v string) error { return setEdge(&p.Margin.Left, v) },
	"padding":        func(p *Pack, v string) error { return setUniform(&p.Padding, v) },
	"padding_top":    func(p *Pack, v string) error { return setEdge(&p.Padding.Top, v) },
	"padding_right":  func(p *Pack, v string) error { return setEdge(&p.Padding.Right, v) },
	"padding_bottom": func(p *Pack, v string) error { return setEdge(&p.Padding.Bottom, v) },
	"padding_left":   func(p *Pack, v string) error { return setEdge(&p.Padding.Left, v) },
	"text_align": func(p *Pack, v string) error {
		switch v {
		case "start":
			p.TextAlign = TextStart
		case "center":
			p.TextAlign = TextCenter
		case "end":
			p.TextAlign = TextEnd
		default:
			return fmt.Errorf("invalid value %q", v)
		}
		return nil
	},
	"color": func(p *Pack, v string) error {
		c, err := ParseColor(v)
		if err != nil {
			return err
		}
		p.Color = c
		return nil
	},
	"background_color": func(p *Pack, v string) error {
		c, err := ParseColor(v)
		if err != nil {
			return err
		}
		p.Background = c
		return nil
	},
	"font_family": func(p *Pack, v string) error {
		p.Font.Family = v
		return nil
	},
	"font_size": func(p *Pack, v string) error {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil || f < 0 {
			return fmt.Errorf("invalid value %q", v)
		}
		p.Font.Size = unit.Sp(f)
		return nil
	},
	"font_weight": func(p *Pack, v string) error {
		switch v {
		case "normal":
			p.Font.Weight = WeightNormal
		case "bold":
			p.Font.Weight = WeightBold
		default:
			return fmt.Errorf("invalid value %q", v)
		}
		return nil
	},
	"font_style": func(p *Pack, v string) error {
		switch v {
		case "normal":
			p.Font.Style = StyleNormal
		case "italic":
			p.Font.Style = StyleItalic
		default:
			return fmt.Errorf("invalid value %q", v)
		}
		return nil
	},
}

func setUniform(in *Insets, v string) error {
	d, err := parseDp(v)
	if err != nil {
		return err
	}
	*in = Uniform(d)
	return nil
}

func setEdge(edge *unit.Dp, v string) error {
	d, err := parseDp(v)
	if err != nil {
		return err
	}
	*edge = d
	return nil
}

func parseDp(v string) (unit.Dp, error) {
	f, err := strconv.ParseFloat(v, 32)
	if err != nil || f < 0 {
		return 0, fmt.Errorf("invalid value %q", v)
	}
	return unit.Dp(f), nil
}

func parseDim(v string) (Dim, error) {
	if v == "auto" {
		return Dim{}, nil
	}
	d, err := parseDp(v)
	if err != nil {
		return Dim{}, err
	}
	return Exact(d), nil
}

// named colors accepted by ParseColor, beyond hex notation.
var namedColors = map[string]color.NRGBA{
	"black":       {A: 0xff},
	"white":       {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	"red":         {R: 0xff, A: 0xff},
	"green":       {G: 0x80, A: 0xff},
	"blue":        {B: 0xff, A: 0xff},
	"yellow":      {R: 0xff, G: 0xff, A: 0xff},
	"cyan":        {G: 0xff, B: 0xff, A: 0xff},
	"magenta":     {R: 0xff, B: 0xff, A: 0xff},
	"gray":        {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	"transparent": {},
}

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa" or a named color.
func ParseColor(v string) (color.NRGBA, error) {
	if c, ok := namedColors[strings.ToLower(v)]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(v, "#")
	if !ok {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", v)
	}
	var r, g, b, a uint64
	var err error
	a = 0xff
	switch len(hex) {
	case 3:
		var n uint64
		n, err = strconv.ParseUint(hex, 16, 32)
		r, g, b = n>>8&0xf, n>>4&0xf, n&0xf
		r, g, b = r<<4|r, g<<4|g, b<<4|b
	case 6:
		var n uint64
		n, err = strconv.ParseUint(hex, 16, 32)
		r, g, b = n>>16&0xff, n>>8&0xff, n&0xff
	case 8:
		var n uint64
		n, err = strconv.ParseUint(hex, 16, 64)
		r, g, b, a = n>>24&0xff, n>>16&0xff, n>>8&0xff, n&0xff
	default:
		err = fmt.Errorf("bad length")
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", v)
	}
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

// MustParseColor is ParseColor for hard-coded values; it panics on
// invalid input.
func MustParseColor(v string) color.NRGBA {
	c, err := ParseColor(v)
	if err != nil {
		panic(err)
	}
	return c
}
