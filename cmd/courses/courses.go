// Package courses implements the command-line interface for the SSG-WSG
// Course Directory endpoints.
package courses

import (
	"github.com/spf13/cobra"
)

// archiveGroup is the data-directory subfolder for course responses.
const archiveGroup = "courses"

// Command returns the courses command with all its subcommands.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Query the Course Directory API",
		Long:  `Search, browse and inspect courses in the SSG-WSG Course Directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(searchCommand())
	cmd.AddCommand(categoriesCommand())
	cmd.AddCommand(subCategoriesCommand())
	cmd.AddCommand(tagsCommand())
	cmd.AddCommand(autocompleteCommand())
	cmd.AddCommand(detailsCommand())
	cmd.AddCommand(relatedCommand())
	cmd.AddCommand(popularCommand())
	cmd.AddCommand(featuredCommand())

	return cmd
}
