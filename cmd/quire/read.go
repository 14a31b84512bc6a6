package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var (
	readRender bool
	readStyle  string
	readWidth  int
)

var readCmd = &cobra.Command{
	Use:   "read <note>",
	Short: "Print a note",
	Long:  `Print a note by stem, key or path. Outputs raw markdown by default, or styled for the terminal with --render.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		svc := openService()

		path, err := resolveNote(ctx, svc, args[0])
		if err != nil {
			fatal("Failed to find note", err)
		}
		content, err := svc.ReadNote(ctx, path)
		if err != nil {
			fatal("Failed to read note", err)
		}

		if !readRender {
			fmt.Print(content)
			return
		}

		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(readStyle),
			glamour.WithWordWrap(readWidth),
			glamour.WithColorProfile(termenv.EnvColorProfile()),
		)
		if err != nil {
			fatal("Failed to create renderer", err)
		}
		out, err := r.Render(content)
		if err != nil {
			fatal("Failed to render note", err)
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().BoolVarP(&readRender, "render", "r", false, "Render markdown for the terminal")
	readCmd.Flags().StringVar(&readStyle, "style", "dark", "Render style (dark, light, dracula, notty, ...)")
	readCmd.Flags().IntVar(&readWidth, "width", 100, "Word wrap width when rendering")
}
