// SPDX-License-Identifier: Unlicense OR MIT

package main

// A kitchen sink of terrazzo widgets in one window.

import (
	"context"
	"fmt"
	"log"

	"github.com/terrazzo-ui/terrazzo/app"
	"github.com/terrazzo-ui/terrazzo/command"
	"github.com/terrazzo-ui/terrazzo/source"
	"github.com/terrazzo-ui/terrazzo/style"
	"github.com/terrazzo-ui/terrazzo/widget"

	_ "github.com/terrazzo-ui/terrazzo/backend/term"
)

func main() {
	a, err := app.New(app.Metadata{
		Name:       "kitchen",
		FormalName: "Kitchen Sink",
		ID:         "org.terrazzo.kitchen",
		Version:    "0.1.0",
		HomePage:   "https://example.org/terrazzo",
	})
	if err != nil {
		log.Fatal(err)
	}
	a.OnStartup = buildUI
	if err := a.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func buildUI(a *app.App) widget.Widget {
	for _, id := range []command.StandardID{command.About, command.Exit, command.VisitHomepage} {
		cmd, err := command.Standard(id, a.Metadata().Info())
		if err != nil {
			log.Fatal(err)
		}
		a.Commands().Add(cmd)
	}

	status := widget.NewLabel("Ready.")

	input := widget.NewTextInput()
	input.SetPlaceholder("Type a name")
	greet := widget.NewButton("Greet")
	greet.OnPress(func(*widget.Button) {
		name := input.Value()
		if name == "" {
			name = "stranger"
		}
		status.SetText("Hello, " + name + "!")
	})

	loud := widget.NewSwitch("Shout")
	progress := widget.NewProgressBar()
	if err := progress.SetMax(10); err != nil {
		log.Fatal(err)
	}
	volume := widget.NewSlider()
	if err := volume.SetRange(0, 10); err != nil {
		log.Fatal(err)
	}
	volume.OnChange(func(s *widget.Slider) {
		progress.SetValue(s.Value())
		status.SetText(fmt.Sprintf("Volume %.1f", s.Value()))
	})

	list := widget.NewDetailedList()
	list.SetData(source.NewListSource([]source.Row{
		{"title": "Granite", "subtitle": "igneous"},
		{"title": "Marble", "subtitle": "metamorphic"},
		{"title": "Shale", "subtitle": "sedimentary"},
	}))
	list.OnSelect(func(l *widget.DetailedList) {
		if row, ok := l.Selection(); ok {
			status.SetText("Selected " + row.String("title", "?"))
		}
	})

	controls := widget.NewBox(
		widget.NewLabel("Controls"),
		input,
		greet,
		loud,
		volume,
		progress,
		widget.NewDivider(),
		status,
	)
	controls.Style().Gap = 8
	controls.Style().Padding = style.Uniform(12)

	split := widget.NewSplitContainer()
	if err := split.SetContent(
		widget.Panel{Content: list, Flex: 1},
		widget.Panel{Content: controls, Flex: 2},
	); err != nil {
		log.Fatal(err)
	}
	split.SetDirection(style.Column)

	root := widget.NewBox(split)
	root.Style().Direction = style.Column
	split.Style().Flex = 1
	return root
}
