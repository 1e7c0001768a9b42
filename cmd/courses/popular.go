package courses

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/ssgclient/cmd/common"
	"github.com/jonesrussell/ssgclient/internal/ssg"
)

// popularCommand builds the popular courses command.
func popularCommand() *cobra.Command {
	var (
		opts  common.OutputOptions
		query ssg.PopularQuery
	)

	cmd := &cobra.Command{
		Use:   "popular",
		Short: "Retrieve trending courses",
		Example: `  ssgclient courses popular
  ssgclient courses popular --tagging-code SFC`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}

			resp, err := deps.Client.Courses().Popular(ctx, query)
			if err != nil {
				return fmt.Errorf("retrieve popular courses: %w", err)
			}

			if err := common.EmitResponse(ctx, deps, opts, archiveGroup, "popular", resp); err != nil {
				return err
			}
			if opts.JSON {
				return nil
			}

			return renderCourses(resp)
		},
	}

	common.RegisterOutputFlags(cmd, &opts)
	registerPopularFlags(cmd, &query)
	return cmd
}

// featuredCommand builds the featured courses command.
func featuredCommand() *cobra.Command {
	var (
		opts  common.OutputOptions
		query ssg.PopularQuery
	)

	cmd := &cobra.Command{
		Use:     "featured",
		Short:   "Retrieve featured courses",
		Example: `  ssgclient courses featured --tagging-code WSQ`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}

			resp, err := deps.Client.Courses().Featured(ctx, query)
			if err != nil {
				return fmt.Errorf("retrieve featured courses: %w", err)
			}

			if err := common.EmitResponse(ctx, deps, opts, archiveGroup, "featured", resp); err != nil {
				return err
			}
			if opts.JSON {
				return nil
			}

			return renderCourses(resp)
		},
	}

	common.RegisterOutputFlags(cmd, &opts)
	registerPopularFlags(cmd, &query)
	return cmd
}

// registerPopularFlags adds the shared paging and tagging-code flags.
func registerPopularFlags(cmd *cobra.Command, query *ssg.PopularQuery) {
	cmd.Flags().StringVar(&query.TaggingCode, "tagging-code", "",
		"course tagging code (WSQ, CET, PET, SFC, PA)")
	cmd.Flags().IntVar(&query.Page, "page", 0, "zero-based page number")
	cmd.Flags().IntVar(&query.PageSize, "page-size", ssg.DefaultPageSize, "results per page")
}
