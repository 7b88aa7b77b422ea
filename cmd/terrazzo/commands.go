// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/terrazzo-ui/terrazzo/app"
	"github.com/terrazzo-ui/terrazzo/backend"

	// Compiled-in backends, reported by the backends command.
	_ "github.com/terrazzo-ui/terrazzo/backend/headless"
	_ "github.com/terrazzo-ui/terrazzo/backend/term"
	_ "github.com/terrazzo-ui/terrazzo/backend/web"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "terrazzo",
		Short:         "Tooling for terrazzo applications",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newNewCmd(), newInspectCmd(), newBackendsCmd())
	return root
}

const manifestName = "terrazzo.toml"

const manifestTemplate = `[app]
name = %q
formal_name = %q
id = %q
version = "0.0.1"
`

const mainTemplate = `package main

import (
	"context"
	"log"

	"github.com/terrazzo-ui/terrazzo/app"
	"github.com/terrazzo-ui/terrazzo/widget"

	_ "github.com/terrazzo-ui/terrazzo/backend/term"
)

func main() {
	meta, err := app.LoadManifest(%q)
	if err != nil {
		log.Fatal(err)
	}
	a, err := app.New(meta)
	if err != nil {
		log.Fatal(err)
	}
	a.OnStartup = func(a *app.App) widget.Widget {
		return widget.NewBox(widget.NewLabel("Hello, " + a.Metadata().FormalName))
	}
	if err := a.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
`

func newNewCmd() *cobra.Command {
	var name, formal, id string
	cmd := &cobra.Command{
		Use:   "new <dir>",
		Short: "Scaffold an application in a new directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if name == "" {
				name = filepath.Base(dir)
			}
			if formal == "" {
				formal = titleCase(name)
			}
			if id == "" {
				id = "com.example." + name
			}
			if _, err := app.ParseManifest(fmt.Appendf(nil, manifestTemplate, name, formal, id)); err != nil {
				return fmt.Errorf("resolved metadata is invalid: %w", err)
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			manifest := filepath.Join(dir, manifestName)
			if _, err := os.Stat(manifest); err == nil {
				return fmt.Errorf("%s already exists", manifest)
			}
			if err := os.WriteFile(manifest, fmt.Appendf(nil, manifestTemplate, name, formal, id), 0o644); err != nil {
				return err
			}
			if err := os.WriteFile(filepath.Join(dir, "main.go"), fmt.Appendf(nil, mainTemplate, manifestName), 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "app name (defaults to the directory name)")
	cmd.Flags().StringVar(&formal, "formal-name", "", "human-facing name")
	cmd.Flags().StringVar(&id, "id", "", "reverse-DNS bundle identifier")
	return cmd
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <manifest>",
		Short: "Validate a manifest and print the resolved metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := app.LoadManifest(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name:        %s\n", meta.Name)
			fmt.Fprintf(out, "formal name: %s\n", meta.FormalName)
			fmt.Fprintf(out, "id:          %s\n", meta.ID)
			if meta.Version != "" {
				fmt.Fprintf(out, "version:     %s\n", meta.Version)
			}
			if meta.Author != "" {
				fmt.Fprintf(out, "author:      %s\n", meta.Author)
			}
			if meta.HomePage != "" {
				fmt.Fprintf(out, "home page:   %s\n", meta.HomePage)
			}
			return nil
		},
	}
}

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List compiled-in backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range backend.Registered() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

// titleCase upper-cases the first letter of each word for a default
// formal name: "tile-counter" becomes "Tile Counter".
func titleCase(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, w := range words {
		_, size := utf8.DecodeRuneInString(w)
		words[i] = strings.ToUpper(w[:size]) + w[size:]
	}
	return strings.Join(words, " ")
}
