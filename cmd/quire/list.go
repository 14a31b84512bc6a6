package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/quire/pkg/core"
)

var (
	listFormat string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the notes of the active workspace in display order",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()

		notes, err := svc.ListNotes(context.Background())
		if err != nil {
			fatal("Failed to list notes", err)
		}
		if err := printNotes(os.Stdout, notes, listFormat); err != nil {
			fatal("Failed to print notes", err)
		}
	},
}

func printNotes(w io.Writer, notes []core.Note, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(notes)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(notes); err != nil {
			return err
		}
		return encoder.Close()
	case "", "text":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for i, n := range notes {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", i, n.Name, n.Title)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("%w: unknown format %q", core.ErrInvalidInput, format)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "text", "Output format: text, json or yaml")
}
