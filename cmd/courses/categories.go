package courses

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/ssgclient/cmd/common"
)

// categoriesCommand builds the course categories command.
func categoriesCommand() *cobra.Command {
	var opts common.OutputOptions

	cmd := &cobra.Command{
		Use:     "categories <keyword>",
		Short:   "Retrieve course categories matching a keyword",
		Example: `  ssgclient courses categories infocomm`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}

			resp, err := deps.Client.Courses().Categories(ctx, args[0])
			if err != nil {
				return fmt.Errorf("retrieve categories: %w", err)
			}

			if err := common.EmitResponse(ctx, deps, opts, archiveGroup, "categories", resp); err != nil {
				return err
			}
			if opts.JSON {
				return nil
			}

			categories, err := resp.Categories()
			if err != nil {
				return fmt.Errorf("decode categories: %w", err)
			}
			if len(categories) == 0 {
				fmt.Println("No categories found")
				return nil
			}

			t := common.NewTable()
			t.AppendHeader(table.Row{"ID", "Name"})
			for _, category := range categories {
				t.AppendRow(table.Row{category.ID, category.Name})
			}
			t.Render()
			return nil
		},
	}

	common.RegisterOutputFlags(cmd, &opts)
	return cmd
}

// subCategoriesCommand builds the course sub-categories command.
func subCategoriesCommand() *cobra.Command {
	var opts common.OutputOptions

	cmd := &cobra.Command{
		Use:     "subcategories <browse-category-id>",
		Short:   "Retrieve the sub-categories within a browse category",
		Example: `  ssgclient courses subcategories 34`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			categoryID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid browse category id %q: %w", args[0], err)
			}

			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}

			resp, err := deps.Client.Courses().SubCategories(ctx, categoryID)
			if err != nil {
				return fmt.Errorf("retrieve sub-categories: %w", err)
			}

			if err := common.EmitResponse(ctx, deps, opts, archiveGroup, "subcategories", resp); err != nil {
				return err
			}
			if opts.JSON {
				return nil
			}

			subCategories, err := resp.SubCategories()
			if err != nil {
				return fmt.Errorf("decode sub-categories: %w", err)
			}
			if len(subCategories) == 0 {
				fmt.Println("No sub-categories found")
				return nil
			}

			t := common.NewTable()
			t.AppendHeader(table.Row{"ID", "Description"})
			for _, subCategory := range subCategories {
				t.AppendRow(table.Row{subCategory.ID, subCategory.Description})
			}
			t.Render()
			return nil
		},
	}

	common.RegisterOutputFlags(cmd, &opts)
	return cmd
}
