// SPDX-License-Identifier: Unlicense OR MIT

package headless_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terrazzo-ui/terrazzo/app"
	"github.com/terrazzo-ui/terrazzo/backend/headless"
	"github.com/terrazzo-ui/terrazzo/source"
	"github.com/terrazzo-ui/terrazzo/style"
	"github.com/terrazzo-ui/terrazzo/unit"
	"github.com/terrazzo-ui/terrazzo/widget"
)

var testMeta = app.Metadata{
	Name:       "probe",
	FormalName: "Probe",
	ID:         "org.example.probe",
}

// newWindow returns a shown window on a fresh headless factory.
func newWindow(t *testing.T, opts ...headless.Option) (*headless.Factory, *app.Window) {
	t.Helper()
	f := headless.NewFactory(opts...)
	a, err := app.NewWithFactory(testMeta, f)
	require.NoError(t, err)
	w, err := a.NewWindow("test")
	require.NoError(t, err)
	return f, w
}

func TestButtonPress(t *testing.T) {
	_, w := newWindow(t)
	var pressed int
	btn := widget.NewButton("Go")
	btn.OnPress(func(*widget.Button) { pressed++ })
	require.NoError(t, w.SetContent(widget.NewBox(btn)))

	probe := headless.ProbeWidget(btn)
	probe.Press()
	assert.Equal(t, 1, pressed)

	btn.SetEnabled(false)
	probe.Press()
	assert.Equal(t, 1, pressed, "disabled buttons do not fire")
}

func TestRedrawComputesBoxes(t *testing.T) {
	_, w := newWindow(t)
	w.SetSize(200, 100)

	left := widget.NewBox()
	left.Style().Flex = 1
	right := widget.NewBox()
	right.Style().Flex = 3
	root := widget.NewBox(left, right)
	root.Style().Direction = style.Row
	require.NoError(t, w.SetContent(root))
	w.Redraw()

	assert.Equal(t, image.Rect(0, 0, 200, 100), headless.ProbeWidget(root).Box().Bounds)
	assert.Equal(t, image.Rect(0, 0, 50, 100), headless.ProbeWidget(left).Box().Bounds)
	assert.Equal(t, image.Rect(50, 0, 200, 100), headless.ProbeWidget(right).Box().Bounds)
}

func TestRedrawFlushesStyleChanges(t *testing.T) {
	_, w := newWindow(t)
	w.SetSize(100, 100)
	child := widget.NewBox()
	root := widget.NewBox(child)
	require.NoError(t, w.SetContent(root))
	w.Redraw()

	child.Style().Height = style.Exact(30)
	probe := headless.ProbeWidget(child)
	probe.Redraw()
	assert.Equal(t, 30, probe.Box().Bounds.Dy())
}

func TestHiddenWidgetKeepsBox(t *testing.T) {
	_, w := newWindow(t)
	w.SetSize(100, 100)
	child := widget.NewLabel("hi")
	child.Style().Visibility = style.Hidden
	require.NoError(t, w.SetContent(widget.NewBox(child)))
	w.Redraw()

	probe := headless.ProbeWidget(child)
	assert.True(t, probe.Hidden())
	assert.False(t, probe.Box().Bounds.Empty(), "hidden widgets are laid out")
}

func TestMetricScalesLayout(t *testing.T) {
	_, w := newWindow(t, headless.WithMetric(unit.Metric{PxPerDp: 2, PxPerSp: 2}))
	w.SetSize(100, 50)
	child := widget.NewBox()
	child.Style().Width = style.Exact(40)
	child.Style().Height = style.Exact(10)
	require.NoError(t, w.SetContent(widget.NewBox(child)))
	w.Redraw()

	assert.Equal(t, image.Pt(80, 20), headless.ProbeWidget(child).Box().Size())
}

func TestTextInput(t *testing.T) {
	_, w := newWindow(t)
	var changes []string
	in := widget.NewTextInput()
	in.OnChange(func(t *widget.TextInput) { changes = append(changes, t.Value()) })
	require.NoError(t, w.SetContent(widget.NewBox(in)))

	probe := headless.ProbeWidget(in)
	probe.Type("hello")
	assert.Equal(t, "hello", in.Value())
	assert.Equal(t, []string{"hello"}, changes)

	in.SetReadOnly(true)
	probe.Type("nope")
	assert.Equal(t, "hello", in.Value(), "read-only inputs reject typing")

	var confirmed bool
	in.OnConfirm(func(*widget.TextInput) { confirmed = true })
	probe.Confirm()
	assert.True(t, confirmed)
}

func TestSwitchToggle(t *testing.T) {
	_, w := newWindow(t)
	var fired int
	sw := widget.NewSwitch("dark mode")
	sw.OnChange(func(*widget.Switch) { fired++ })
	require.NoError(t, w.SetContent(widget.NewBox(sw)))

	headless.ProbeWidget(sw).Toggle()
	assert.True(t, sw.Value())
	assert.Equal(t, 1, fired)
}

func TestSliderDrag(t *testing.T) {
	_, w := newWindow(t)
	s := widget.NewSlider()
	require.NoError(t, s.SetRange(0, 10))
	var changes, presses, releases int
	s.OnChange(func(*widget.Slider) { changes++ })
	s.OnPress(func(*widget.Slider) { presses++ })
	s.OnRelease(func(*widget.Slider) { releases++ })
	require.NoError(t, w.SetContent(widget.NewBox(s)))

	headless.ProbeWidget(s).Drag(7)
	assert.Equal(t, 7.0, s.Value())
	assert.Equal(t, 1, changes)
	assert.Equal(t, 1, presses)
	assert.Equal(t, 1, releases)

	// A programmatic set is not reported back as a user change twice.
	require.NoError(t, s.SetValue(3))
	assert.Equal(t, 2, changes)
	require.NoError(t, s.SetValue(3))
	assert.Equal(t, 2, changes, "unchanged value does not fire")
}

func TestDetailedListInteraction(t *testing.T) {
	_, w := newWindow(t)
	data := source.NewListSource([]source.Row{
		{"title": "first", "subtitle": "a"},
		{"title": "second"},
	})
	list := widget.NewDetailedList()
	list.SetData(data)
	list.SetMissingValue("-")
	require.NoError(t, w.SetContent(widget.NewBox(list)))

	probe := headless.ProbeWidget(list)
	assert.Equal(t, []string{"first", "second"}, probe.Rows())

	data.Append(source.Row{"title": "third"})
	assert.Equal(t, []string{"first", "second", "third"}, probe.Rows(),
		"source mutations reach the backend")

	var selected string
	list.OnSelect(func(l *widget.DetailedList) {
		if row, ok := l.Selection(); ok {
			selected = row.String("title", "-")
		}
	})
	probe.SelectRow(1)
	assert.Equal(t, "second", selected)

	// The primary action stays inert until a handler is set.
	probe.PerformPrimaryAction(0)
	var acted string
	list.OnPrimaryAction(func(_ *widget.DetailedList, row source.Row) {
		acted = row.String("title", "-")
	})
	probe.PerformPrimaryAction(0)
	assert.Equal(t, "first", acted)

	list.ScrollToRow(-1)
	assert.Equal(t, 2, probe.ScrolledTo(), "-1 scrolls to the last row")
	list.ScrollToTop()
	assert.Equal(t, 0, probe.ScrolledTo())
}

func TestScreenshotPaintsBackground(t *testing.T) {
	_, w := newWindow(t)
	w.SetSize(40, 40)
	root := widget.NewBox()
	root.Style().Background = style.MustParseColor("#ff0000")
	require.NoError(t, w.SetContent(root))

	img, err := w.Screenshot()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 40), img.Bounds())
	r, g, b, _ := img.At(20, 20).RGBA()
	assert.Equal(t, uint32(0xFFFF), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)
}

func TestCanvas(t *testing.T) {
	_, w := newWindow(t)
	w.SetSize(60, 60)
	c := widget.NewCanvas()
	c.Style().Flex = 1
	ctx := c.Context()
	ctx.BeginPath()
	ctx.Rect(5, 5, 20, 20)
	ctx.Fill(style.MustParseColor("#00ff00"))

	var resized image.Point
	c.OnResize(func(_ *widget.Canvas, width, height int) {
		resized = image.Pt(width, height)
	})
	var pressed image.Point
	c.OnPress(func(_ *widget.Canvas, x, y int) {
		pressed = image.Pt(x, y)
	})
	require.NoError(t, w.SetContent(widget.NewBox(c)))
	c.Redraw()

	probe := headless.ProbeWidget(c)
	assert.Len(t, probe.CanvasOps(), 3)
	assert.Equal(t, image.Pt(60, 60), resized)

	probe.PressCanvas(7, 9)
	assert.Equal(t, image.Pt(7, 9), pressed)

	img, err := w.Screenshot()
	require.NoError(t, err)
	_, g, _, _ := img.At(10, 10).RGBA()
	assert.Equal(t, uint32(0xFFFF), g, "canvas fill reaches the raster")
}
