package courses

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/ssgclient/cmd/common"
	"github.com/jonesrussell/ssgclient/internal/ssg"
)

// tagsCommand builds the course tags command.
func tagsCommand() *cobra.Command {
	var (
		opts    common.OutputOptions
		byCount bool
	)

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Retrieve the course tags",
		Example: `  ssgclient courses tags
  ssgclient courses tags --by-count`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}

			sortBy := ssg.TagSortText
			if byCount {
				sortBy = ssg.TagSortCount
			}

			resp, err := deps.Client.Courses().Tags(ctx, sortBy)
			if err != nil {
				return fmt.Errorf("retrieve tags: %w", err)
			}

			if err := common.EmitResponse(ctx, deps, opts, archiveGroup, "tags", resp); err != nil {
				return err
			}
			if opts.JSON {
				return nil
			}

			tags, err := resp.Tags()
			if err != nil {
				return fmt.Errorf("decode tags: %w", err)
			}
			if len(tags) == 0 {
				fmt.Println("No tags found")
				return nil
			}

			t := common.NewTable()
			t.AppendHeader(table.Row{"Tag", "Courses"})
			for _, tag := range tags {
				t.AppendRow(table.Row{tag.Text, tag.Count})
			}
			t.Render()
			return nil
		},
	}

	common.RegisterOutputFlags(cmd, &opts)
	cmd.Flags().BoolVar(&byCount, "by-count", false, "sort tags by course count instead of text")
	return cmd
}
