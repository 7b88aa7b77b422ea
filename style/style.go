// SPDX-License-Identifier: Unlicense OR MIT

/*
Package style defines the declarative box style consumed by the layout
engine and the widgets.

A Pack value describes how a widget is sized and positioned inside its
container: main axis direction, alignment, explicit or flexible sizing,
margins, padding and the visual text properties. The zero value of Pack
is a valid style: a column container with automatic sizing and no
insets.
*/
package style

import (
	"image/color"

	"github.com/terrazzo-ui/terrazzo/unit"
)

// Direction is the main axis of a container.
type Direction uint8

const (
	// Column stacks children vertically.
	Column Direction = iota
	// Row stacks children horizontally.
	Row
)

// Alignment positions children on the cross axis.
type Alignment uint8

const (
	Start Alignment = iota
	Center
	End
	// Stretch sizes children to fill the container cross extent.
	Stretch
)

// Justify distributes leftover main axis space.
type Justify uint8

const (
	JustifyStart Justify = iota
	JustifyCenter
	JustifyEnd
	// SpaceBetween distributes space evenly between children,
	// leaving no space at the start and end.
	SpaceBetween
	// SpaceAround distributes space evenly between children,
	// with half as much space at the start and end.
	SpaceAround
	// SpaceEvenly distributes space evenly between children and
	// at the start and end.
	SpaceEvenly
)

// Display controls whether a widget participates in layout.
type Display uint8

const (
	// DisplayPack lays the widget out normally.
	DisplayPack Display = iota
	// DisplayNone removes the widget from the flow entirely.
	DisplayNone
)

// Visibility controls painting without affecting layout.
type Visibility uint8

const (
	Visible Visibility = iota
	// Hidden widgets keep their box but are not painted.
	Hidden
)

// TextAlign is the horizontal alignment of text content.
type TextAlign uint8

const (
	TextStart TextAlign = iota
	TextCenter
	TextEnd
)

// FontWeight selects the weight of a font.
type FontWeight uint8

const (
	WeightNormal FontWeight = iota
	WeightBold
)

// FontStyle selects the slant of a font.
type FontStyle uint8

const (
	StyleNormal FontStyle = iota
	StyleItalic
)

// Font describes the typeface for text content. The zero value selects
// the backend's system font at its default size.
type Font struct {
	Family string
	Size   unit.Sp
	Weight FontWeight
	Style  FontStyle
}

// Dim is a size in one dimension: automatic (the zero value) or an
// exact dp value.
type Dim struct {
	set bool
	v   unit.Dp
}

// Exact returns a Dim fixed at v.
func Exact(v unit.Dp) Dim {
	return Dim{set: true, v: v}
}

// Auto reports whether the dimension is automatic.
func (d Dim) Auto() bool { return !d.set }

// Dp returns the exact value. Only meaningful when Auto is false.
func (d Dim) Dp() unit.Dp { return d.v }

// Insets is space around the four edges of a box.
type Insets struct {
	Top, Right, Bottom, Left unit.Dp
}

// Uniform returns an Insets with v applied to all edges.
func Uniform(v unit.Dp) Insets {
	return Insets{Top: v, Right: v, Bottom: v, Left: v}
}

// Pack is the box style for a widget. Values are copied when assigned
// to a widget; mutate through the widget's Style accessors so changes
// trigger a relayout.
type Pack struct {
	Display    Display
	Visibility Visibility

	// Direction, AlignItems, JustifyContent and Gap only apply to
	// container widgets.
	Direction      Direction
	AlignItems     Alignment
	JustifyContent Justify
	Gap            unit.Dp

	Width  Dim
	Height Dim
	// Flex is the share of leftover main axis space this widget takes
	// in its container. Zero means the widget is rigid.
	Flex float32

	Margin  Insets
	Padding Insets

	TextAlign  TextAlign
	Color      color.NRGBA
	Background color.NRGBA
	Font       Font
}

func (d Direction) String() string {
	switch d {
	case Column:
		return "column"
	case Row:
		return "row"
	default:
		panic("unreachable")
	}
}

func (a Alignment) String() string {
	switch a {
	case Start:
		return "start"
	case Center:
		return "center"
	case End:
		return "end"
	case Stretch:
		return "stretch"
	default:
		panic("unreachable")
	}
}

func (j Justify) String() string {
	switch j {
	case JustifyStart:
		return "start"
	case JustifyCenter:
		return "center"
	case JustifyEnd:
		return "end"
	case SpaceBetween:
		return "space-between"
	case SpaceAround:
		return "space-around"
	case SpaceEvenly:
		return "space-evenly"
	default:
		panic("unreachable")
	}
}

func (d Display) String() string {
	switch d {
	case DisplayPack:
		return "pack"
	case DisplayNone:
		return "none"
	default:
		panic("unreachable")
	}
}

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Hidden:
		return "hidden"
	default:
		panic("unreachable")
	}
}

func (a TextAlign) String() string {
	switch a {
	case TextStart:
		return "start"
	case TextCenter:
		return "center"
	case TextEnd:
		return "end"
	default:
		panic("unreachable")
	}
}
