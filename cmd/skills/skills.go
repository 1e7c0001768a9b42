// Package skills implements the command-line interface for the SSG-WSG
// Skills Framework endpoints.
package skills

import (
	"github.com/spf13/cobra"
)

// archiveGroup is the data-directory subfolder for skills framework responses.
const archiveGroup = "skills"

// Command returns the skills command with all its subcommands.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skills",
		Short: "Query the Skills Framework API",
		Long:  `Search job roles and skill competencies in the SSG-WSG Skills Framework.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(jobRolesCommand())
	cmd.AddCommand(titlesCommand())
	cmd.AddCommand(competenciesCommand())

	return cmd
}
