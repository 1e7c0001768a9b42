package skills

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/ssgclient/cmd/common"
	"github.com/jonesrussell/ssgclient/internal/ssg"
)

// Competency kinds accepted by the competencies command.
const (
	kindTechnical = "technical"
	kindGeneric   = "generic"
)

// competenciesCommand builds the skills-and-competencies autocomplete command.
func competenciesCommand() *cobra.Command {
	var (
		opts    common.OutputOptions
		details bool
	)

	cmd := &cobra.Command{
		Use:   "competencies <technical|generic> <keyword>",
		Short: "Retrieve skill competency codes matching a keyword",
		Long: `Retrieve Technical Skill Competency (TSC) or Critical Core Skill
(CCS/GSC) codes matching a keyword. Technical codes name skill categories
(e.g. "Data Analysis"), not specific technologies. With --details the full
competency records are retrieved, including titles, categories and levels.`,
		Example: `  ssgclient skills competencies technical data
  ssgclient skills competencies generic communication --details`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			kind, keyword := args[0], args[1]

			if kind != kindTechnical && kind != kindGeneric {
				return fmt.Errorf("unknown competency kind %q (want %s or %s)", kind, kindTechnical, kindGeneric)
			}

			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}

			resp, err := fetchCompetencies(ctx, deps.Client.Skills(), kind, keyword, details)
			if err != nil {
				return fmt.Errorf("retrieve %s competencies: %w", kind, err)
			}

			name := kind + "_skills"
			if details {
				name += "_details"
			}
			if err := common.EmitResponse(ctx, deps, opts, archiveGroup, name, resp); err != nil {
				return err
			}
			if opts.JSON {
				return nil
			}

			if details {
				return renderCompetencies(resp)
			}
			return renderSkillCodes(resp)
		},
	}

	common.RegisterOutputFlags(cmd, &opts)
	cmd.Flags().BoolVar(&details, "details", false, "retrieve full competency records")
	return cmd
}

// fetchCompetencies dispatches to the matching service method.
func fetchCompetencies(
	ctx context.Context,
	svc *ssg.SkillsService,
	kind, keyword string,
	details bool,
) (*ssg.Response, error) {
	switch {
	case kind == kindTechnical && details:
		return svc.TechnicalSkillDetails(ctx, keyword)
	case kind == kindTechnical:
		return svc.TechnicalSkills(ctx, keyword)
	case details:
		return svc.GenericSkillDetails(ctx, keyword)
	default:
		return svc.GenericSkills(ctx, keyword)
	}
}

// renderSkillCodes formats an autocomplete code list as a table.
func renderSkillCodes(resp *ssg.Response) error {
	codes, err := resp.SkillCodes()
	if err != nil {
		return fmt.Errorf("decode skill codes: %w", err)
	}
	if len(codes) == 0 {
		fmt.Println("No competencies found")
		return nil
	}

	t := common.NewTable()
	t.AppendHeader(table.Row{"Code", "Description"})
	for _, code := range codes {
		t.AppendRow(table.Row{code.Code, code.Description})
	}
	t.Render()
	return nil
}

// renderCompetencies formats a detailed competency list as a table.
func renderCompetencies(resp *ssg.Response) error {
	competencies, err := resp.SkillCompetencies()
	if err != nil {
		return fmt.Errorf("decode competencies: %w", err)
	}
	if len(competencies) == 0 {
		fmt.Println("No competencies found")
		return nil
	}

	t := common.NewTable()
	t.AppendHeader(table.Row{"Code", "Title", "Category", "Level"})
	for _, competency := range competencies {
		t.AppendRow(table.Row{competency.Code, competency.Title, competency.Category, competency.Level})
	}
	t.Render()
	return nil
}
