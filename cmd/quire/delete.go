package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <note>",
	Aliases: []string{"rm"},
	Short:   "Delete a note",
	Long:    `Delete permanently removes a note file from the active workspace.`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		svc := openService()

		path, err := resolveNote(ctx, svc, args[0])
		if err != nil {
			fatal("Failed to find note", err)
		}
		if err := svc.DeleteNote(ctx, path); err != nil {
			fatal("Failed to delete note", err)
		}
		fmt.Printf("Note deleted: %s\n", path)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
