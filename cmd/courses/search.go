package courses

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/ssgclient/cmd/common"
	"github.com/jonesrussell/ssgclient/internal/ssg"
)

// searchCommand builds the course directory search command.
func searchCommand() *cobra.Command {
	var (
		opts  common.OutputOptions
		query ssg.DirectoryQuery
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the course directory",
		Long: `Search the course directory by keyword, or by tagging codes with a
support end date. Keyword and tagging codes are mutually exclusive.`,
		Example: `  ssgclient courses search --keyword python
  ssgclient courses search --tagging-codes 1 --support-end-date 20260101
  ssgclient courses search --tagging-codes FULL --support-end-date 20260101 --retrieve-type DELTA --last-update-date 20250801`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}

			resp, err := deps.Client.Courses().SearchDirectory(ctx, query)
			if err != nil {
				return fmt.Errorf("search courses: %w", err)
			}

			if err := common.EmitResponse(ctx, deps, opts, archiveGroup, "directory_search", resp); err != nil {
				return err
			}
			if opts.JSON {
				return nil
			}

			return renderCourses(resp)
		},
	}

	common.RegisterOutputFlags(cmd, &opts)
	cmd.Flags().StringVar(&query.Keyword, "keyword", "", "search keyword (minimum 3 characters)")
	cmd.Flags().StringSliceVar(&query.TaggingCodes, "tagging-codes", nil,
		"course tagging codes (e.g. 1, or FULL for all)")
	cmd.Flags().StringVar(&query.SupportEndDate, "support-end-date", "",
		"course support end date, YYYYMMDD (required with tagging codes)")
	cmd.Flags().StringVar(&query.RetrieveType, "retrieve-type", ssg.RetrieveFull,
		"retrieve type: FULL or DELTA")
	cmd.Flags().StringVar(&query.LastUpdateDate, "last-update-date", "",
		"last update date, YYYYMMDD (required with DELTA)")
	cmd.Flags().IntVar(&query.Page, "page", 0, "zero-based page number")
	cmd.Flags().IntVar(&query.PageSize, "page-size", ssg.DefaultPageSize, "results per page")

	return cmd
}

// renderCourses formats a course list as a table.
func renderCourses(resp *ssg.Response) error {
	courses, err := resp.Courses()
	if err != nil {
		return fmt.Errorf("decode courses: %w", err)
	}
	if len(courses) == 0 {
		fmt.Println("No courses found")
		return nil
	}

	t := common.NewTable()
	t.AppendHeader(table.Row{"Reference", "Title", "Provider", "Area", "Hours", "Cost"})
	for _, course := range courses {
		t.AppendRow(table.Row{
			course.ReferenceNumber,
			course.Title,
			course.TrainingProvider.Name,
			course.Area(),
			course.TotalTrainingDurationHour,
			course.TotalCostOfTrainingPerTrainee,
		})
	}
	t.Render()

	fmt.Printf("\nTotal: %d\n", resp.Total())
	return nil
}
