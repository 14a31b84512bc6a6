package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/aretw0/quire"
	"github.com/aretw0/quire/pkg/core"
)

var (
	migrateAll bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Rename timestamp-named notes into the numbered scheme",
	Long:  `Migrate renames legacy notes named after their creation time ("1700000000000.md"), oldest first, so they keep their relative order.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		svc := openService(quire.WithMigrateOnStart(false))

		reports := map[string]core.MigrationReport{}
		if migrateAll {
			reports = svc.MigrateAll(ctx)
		} else {
			reports[svc.ActiveWorkspace().ID] = svc.Migrate(ctx)
		}

		ids := make([]string, 0, len(reports))
		for id := range reports {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for _, id := range ids {
			report := reports[id]
			fmt.Printf("%s: %d renamed, %d skipped\n", id, len(report.Renamed), len(report.Skipped))

			from := make([]string, 0, len(report.Renamed))
			for f := range report.Renamed {
				from = append(from, f)
			}
			sort.Strings(from)
			for _, f := range from {
				fmt.Printf("  %s -> %s\n", f, report.Renamed[f])
			}
			for _, s := range report.Skipped {
				fmt.Printf("  skipped %s\n", s)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().BoolVarP(&migrateAll, "all", "a", false, "Migrate every workspace, not only the active one")
}
