package skills

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/ssgclient/cmd/common"
	"github.com/jonesrussell/ssgclient/internal/ssg"
)

// jobRolesCommand builds the job-roles search command.
func jobRolesCommand() *cobra.Command {
	var (
		opts  common.OutputOptions
		query ssg.JobRolesQuery
	)

	cmd := &cobra.Command{
		Use:   "jobroles",
		Short: "Search Skills Framework job roles",
		Example: `  ssgclient skills jobroles --keyword engineer
  ssgclient skills jobroles --sector 24 --page-size 50`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}

			resp, err := deps.Client.Skills().JobRoles(ctx, query)
			if err != nil {
				return fmt.Errorf("search job roles: %w", err)
			}

			if err := common.EmitResponse(ctx, deps, opts, archiveGroup, "jobroles", resp); err != nil {
				return err
			}
			if opts.JSON {
				return nil
			}

			roles, err := resp.JobRoles()
			if err != nil {
				return fmt.Errorf("decode job roles: %w", err)
			}
			if len(roles) == 0 {
				fmt.Println("No job roles found")
				return nil
			}

			t := common.NewTable()
			t.AppendHeader(table.Row{"Code", "Title"})
			for _, role := range roles {
				t.AppendRow(table.Row{role.Code, role.Title})
			}
			t.Render()

			fmt.Printf("\nTotal: %d\n", resp.Total())
			return nil
		},
	}

	common.RegisterOutputFlags(cmd, &opts)
	cmd.Flags().StringVar(&query.Keyword, "keyword", "", "search keyword")
	cmd.Flags().StringVar(&query.Sector, "sector", "", "sector ID filter (comma delimited)")
	cmd.Flags().StringVar(&query.Qualification, "qualification", "", "qualification ID filter (comma delimited)")
	cmd.Flags().StringVar(&query.FieldOfStudy, "field-of-study", "", "field-of-study ID filter (comma delimited)")
	cmd.Flags().IntVar(&query.Page, "page", 0, "zero-based page number")
	cmd.Flags().IntVar(&query.PageSize, "page-size", ssg.DefaultJobRolesPageSize, "results per page (max 100)")

	return cmd
}

// titlesCommand builds the job-role title autocomplete command.
func titlesCommand() *cobra.Command {
	var opts common.OutputOptions

	cmd := &cobra.Command{
		Use:     "titles <keyword>",
		Short:   "Retrieve job-role title suggestions for a keyword",
		Example: `  ssgclient skills titles engi`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}

			resp, err := deps.Client.Skills().JobRoleTitles(ctx, args[0])
			if err != nil {
				return fmt.Errorf("retrieve job-role titles: %w", err)
			}

			if err := common.EmitResponse(ctx, deps, opts, archiveGroup, "jobrole_titles", resp); err != nil {
				return err
			}
			if opts.JSON {
				return nil
			}

			titles, err := resp.JobRoleTitles()
			if err != nil {
				return fmt.Errorf("decode job-role titles: %w", err)
			}
			if len(titles) == 0 {
				fmt.Println("No titles found")
				return nil
			}

			t := common.NewTable()
			t.AppendHeader(table.Row{"Title", "Alternative Title", "Score"})
			for _, title := range titles {
				t.AppendRow(table.Row{title.Title, title.AlternativeTitle, title.Score})
			}
			t.Render()
			return nil
		},
	}

	common.RegisterOutputFlags(cmd, &opts)
	return cmd
}
