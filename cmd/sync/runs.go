package sync

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/ssgclient/cmd/common"
	"github.com/jonesrussell/ssgclient/internal/snapshot"
)

// runsCommand builds the command listing recorded sync runs.
func runsCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "runs",
		Short:   "List recorded sync runs",
		Example: `  ssgclient sync runs --limit 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}

			store, err := snapshot.Open(deps.Config.GetSnapshotConfig().Path)
			if err != nil {
				return fmt.Errorf("open snapshot store: %w", err)
			}
			defer store.Close()

			runs, err := store.ListRuns(ctx, limit)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}
			if len(runs) == 0 {
				fmt.Println("No runs recorded")
				return nil
			}

			t := common.NewTable()
			t.AppendHeader(table.Row{"Run", "Endpoint", "Status", "Started", "Documents"})
			for _, run := range runs {
				count, countErr := store.CountDocuments(ctx, run.ID)
				if countErr != nil {
					return fmt.Errorf("count documents for run %s: %w", run.ID, countErr)
				}
				t.AppendRow(table.Row{
					run.ID.String(),
					run.Endpoint,
					run.Status,
					run.StartedAt.Format("2006-01-02 15:04:05"),
					count,
				})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to list")
	return cmd
}
