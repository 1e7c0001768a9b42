package courses

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/ssgclient/cmd/common"
)

// detailsCommand builds the course details command.
func detailsCommand() *cobra.Command {
	var (
		opts           common.OutputOptions
		includeExpired bool
	)

	cmd := &cobra.Command{
		Use:   "details <reference-number>",
		Short: "Retrieve the full details of a course",
		Long: `Retrieve the full details of a course by its reference number,
including runs, fees, objectives and training provider information.`,
		Example: `  ssgclient courses details TGS-2020002106
  ssgclient courses details TGS-2020002106 --include-expired`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}

			resp, err := deps.Client.Courses().Details(ctx, args[0], includeExpired)
			if err != nil {
				return fmt.Errorf("retrieve course details: %w", err)
			}

			if err := common.EmitResponse(ctx, deps, opts, archiveGroup, "details", resp); err != nil {
				return err
			}

			// Details payloads are deeply nested; always print raw JSON.
			if !opts.JSON {
				os.Stdout.Write(resp.Raw)
				fmt.Println()
			}
			return nil
		},
	}

	common.RegisterOutputFlags(cmd, &opts)
	cmd.Flags().BoolVar(&includeExpired, "include-expired", false, "include expired course runs")
	return cmd
}

// relatedCommand builds the related courses command.
func relatedCommand() *cobra.Command {
	var opts common.OutputOptions

	cmd := &cobra.Command{
		Use:     "related <reference-number>",
		Short:   "Retrieve courses related to a course",
		Example: `  ssgclient courses related TGS-2020002106`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}

			resp, err := deps.Client.Courses().Related(ctx, args[0])
			if err != nil {
				return fmt.Errorf("retrieve related courses: %w", err)
			}

			if err := common.EmitResponse(ctx, deps, opts, archiveGroup, "related", resp); err != nil {
				return err
			}
			if opts.JSON {
				return nil
			}

			return renderCourses(resp)
		},
	}

	common.RegisterOutputFlags(cmd, &opts)
	return cmd
}
