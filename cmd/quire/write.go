package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

var (
	writeContent string
)

var writeCmd = &cobra.Command{
	Use:   "write <note>",
	Short: "Replace the content of a note",
	Long: heredoc.Doc(`
		Replace the content of a note with --content, or with standard input
		when the flag is absent. A numbered note whose "# " heading changed is
		renamed to match; the new path is printed.
	`),
	Example: heredoc.Doc(`
		$ echo "# Groceries" | quire write 3
		$ quire write 3-groceries --content "# Groceries\n- milk"
	`),
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		svc := openService()

		path, err := resolveNote(ctx, svc, args[0])
		if err != nil {
			fatal("Failed to find note", err)
		}

		content := writeContent
		if !cmd.Flags().Changed("content") {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fatal("Failed to read standard input", err)
			}
			content = string(data)
		}

		newPath, err := svc.WriteNote(ctx, path, content)
		if err != nil {
			fatal("Failed to save note", err)
		}
		fmt.Println(newPath)
	},
}

func init() {
	rootCmd.AddCommand(writeCmd)
	writeCmd.Flags().StringVarP(&writeContent, "content", "c", "", "Note content")
}
