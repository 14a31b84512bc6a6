package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	qlifecycle "github.com/aretw0/quire/pkg/adapters/lifecycle"
)

var (
	watchPattern string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print note changes in the active workspace until interrupted",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc := openService()
		events, err := svc.Watch(ctx, watchPattern)
		if err != nil {
			fatal("Failed to watch notes", err)
		}

		src := qlifecycle.NewSource(events)
		if err := src.Start(ctx); err != nil {
			fatal("Failed to start event source", err)
		}
		for e := range src.Events() {
			fmt.Println(e.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchPattern, "pattern", "p", "", `File name pattern, doublestar syntax (default "*.md")`)
}
