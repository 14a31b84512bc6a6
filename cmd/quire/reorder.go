package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/aretw0/quire/pkg/order"
)

var (
	reorderDryRun bool
)

var reorderCmd = &cobra.Command{
	Use:     "reorder <note> <index>",
	Aliases: []string{"mv"},
	Short:   "Move a note to a position in the list",
	Long: heredoc.Doc(`
		Move a note to a zero-based position among the numbered notes, 0 being
		the top. When there is room between the neighbours only the moved note
		is renamed; otherwise every numbered note is renumbered.
	`),
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		svc := openService()

		index, err := strconv.Atoi(args[1])
		if err != nil {
			fatal("Invalid index", err)
		}
		path, err := resolveNote(ctx, svc, args[0])
		if err != nil {
			fatal("Failed to find note", err)
		}

		if reorderDryRun {
			plan, err := svc.PlanReorder(ctx, path, index)
			if err != nil {
				fatal("Failed to plan move", err)
			}
			printPlan(os.Stdout, plan)
			return
		}

		newPath, err := svc.ReorderNote(ctx, path, index)
		if err != nil {
			fatal("Failed to move note", err)
		}
		fmt.Println(newPath)
	},
}

func printPlan(w io.Writer, plan order.Plan) {
	fmt.Fprintf(w, "%s: %d rename(s)\n", plan.Case, len(plan.Renames))
	for _, r := range plan.Renames {
		fmt.Fprintf(w, "  %s -> %s\n", r.From, r.To)
	}
}

func init() {
	rootCmd.AddCommand(reorderCmd)
	reorderCmd.Flags().BoolVarP(&reorderDryRun, "dry-run", "n", false, "Print the renames without touching the files")
}
