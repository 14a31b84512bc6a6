package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename <note> <new-name>",
	Short: "Give a note a new file name",
	Long:  `Rename a note file. The new name may include the ordering key ("7-ideas") to place the note explicitly.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		svc := openService()

		path, err := resolveNote(ctx, svc, args[0])
		if err != nil {
			fatal("Failed to find note", err)
		}
		newPath, err := svc.RenameNote(ctx, path, args[1])
		if err != nil {
			fatal("Failed to rename note", err)
		}
		fmt.Println(newPath)
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
