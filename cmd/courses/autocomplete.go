package courses

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/ssgclient/cmd/common"
)

// autocompleteCommand builds the course-title autocomplete command.
func autocompleteCommand() *cobra.Command {
	var opts common.OutputOptions

	cmd := &cobra.Command{
		Use:     "autocomplete <keyword>",
		Short:   "Retrieve course-title suggestions for a keyword",
		Example: `  ssgclient courses autocomplete pyth`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}

			resp, err := deps.Client.Courses().Autocomplete(ctx, args[0])
			if err != nil {
				return fmt.Errorf("autocomplete courses: %w", err)
			}

			if err := common.EmitResponse(ctx, deps, opts, archiveGroup, "autocomplete", resp); err != nil {
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
