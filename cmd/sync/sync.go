// Package sync implements the sync command, which captures Skills Framework
// job roles into the local snapshot store, one-shot or on a cron schedule.
package sync

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/ssgclient/cmd/common"
	"github.com/jonesrussell/ssgclient/internal/archive"
	"github.com/jonesrussell/ssgclient/internal/snapshot"
	"github.com/jonesrussell/ssgclient/internal/ssg"
)

// Command returns the sync command with its subcommands.
func Command() *cobra.Command {
	var (
		schedule       string
		pageSize       int
		keyword        string
		taggingCodes   []string
		supportEndDate string
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Capture Skills Framework job roles into the snapshot store",
		Long: `Fetch every page of Skills Framework job roles, archive the raw
responses and record the run in the local snapshot database. With
--course-tagging-codes the tagged course directory is captured as well.
With --schedule the sync repeats on a cron schedule until interrupted.`,
		Example: `  ssgclient sync
  ssgclient sync --keyword engineer
  ssgclient sync --course-tagging-codes FULL --course-support-end-date 20260101
  ssgclient sync --schedule "0 2 * * *"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(taggingCodes) > 0 && supportEndDate == "" {
				return errors.New("--course-tagging-codes requires --course-support-end-date")
			}

			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}

			snapshotCfg := deps.Config.GetSnapshotConfig()
			store, err := snapshot.Open(snapshotCfg.Path)
			if err != nil {
				return fmt.Errorf("open snapshot store: %w", err)
			}
			defer store.Close()

			archiver, err := archive.NewArchiver(deps.Config.GetArchiveConfig(), deps.Logger)
			if err != nil {
				return fmt.Errorf("create archiver: %w", err)
			}

			syncer := NewSyncer(deps.Logger, deps.Client, store, archiver, SyncOptions{
				Keyword:              keyword,
				PageSize:             pageSize,
				CourseTaggingCodes:   taggingCodes,
				CourseSupportEndDate: supportEndDate,
			})

			if schedule == "" {
				schedule = snapshotCfg.Schedule
			}
			if schedule == "" {
				return syncer.Run(cmd.Context())
			}

			return runScheduled(cmd, deps, syncer, schedule)
		},
	}

	cmd.Flags().StringVar(&schedule, "schedule", "", "cron expression for repeated syncs (e.g. \"0 2 * * *\")")
	cmd.Flags().IntVar(&pageSize, "page-size", ssg.DefaultJobRolesPageSize, "results per page (max 100)")
	cmd.Flags().StringVar(&keyword, "keyword", "", "restrict the sync to job roles matching a keyword")
	cmd.Flags().StringSliceVar(&taggingCodes, "course-tagging-codes", nil,
		"also capture the course directory for these tagging codes")
	cmd.Flags().StringVar(&supportEndDate, "course-support-end-date", "",
		"course support end date, YYYYMMDD (required with --course-tagging-codes)")

	cmd.AddCommand(runsCommand())

	return cmd
}

// runScheduled runs the syncer on a cron schedule until interrupted.
func runScheduled(cmd *cobra.Command, deps common.CommandDeps, syncer *Syncer, schedule string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		if runErr := syncer.Run(ctx); runErr != nil {
			deps.Logger.Error("Scheduled sync failed", "error", runErr)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}

	deps.Logger.Info("Sync scheduler started", "schedule", schedule)
	c.Start()

	<-ctx.Done()
	deps.Logger.Info("Shutdown signal received")

	// Let an in-flight sync finish before returning.
	<-c.Stop().Done()
	deps.Logger.Info("Sync scheduler stopped")
	return nil
}
