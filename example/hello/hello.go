// SPDX-License-Identifier: Unlicense OR MIT

package main

// A minimal terrazzo program: one window, one label.

import (
	"context"
	"log"

	"github.com/terrazzo-ui/terrazzo/app"
	"github.com/terrazzo-ui/terrazzo/widget"

	_ "github.com/terrazzo-ui/terrazzo/backend/term"
)

func main() {
	a, err := app.New(app.Metadata{
		Name:       "hello",
		FormalName: "Hello",
		ID:         "org.terrazzo.hello",
	})
	if err != nil {
		log.Fatal(err)
	}
	a.OnStartup = func(*app.App) widget.Widget {
		return widget.NewBox(widget.NewLabel("Hello, terrazzo!"))
	}
	if err := a.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
