package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	newTitle string
)

var newCmd = &cobra.Command{
	Use:     "new",
	Aliases: []string{"create"},
	Short:   "Create a note at the top of the active workspace",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		svc := openService()

		path, err := svc.CreateNote(ctx)
		if err != nil {
			fatal("Failed to create note", err)
		}
		if newTitle != "" {
			path, err = svc.WriteNote(ctx, path, fmt.Sprintf("# %s\n", newTitle))
			if err != nil {
				fatal("Failed to save note", err)
			}
		}
		fmt.Println(path)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVarP(&newTitle, "title", "t", "", "Heading of the new note")
}
