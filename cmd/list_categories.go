package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"hotel-site/pkg/services"
)

// newListCategoriesCmd creates a new command for listing categories
func newListCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-categories",
		Short: "List all gallery categories",
		Long:  `List all gallery filter categories with the number of items in each.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, svc, err := setup()
			if err != nil {
				return err
			}
			return listCategories(cmd.Context(), cmd.OutOrStdout(), svc)
		},
	}
}

// listCategories displays all categories and their item counts
func listCategories(ctx context.Context, w io.Writer, svc *services.Service) error {
	categories := svc.Categories()

	fmt.Fprintln(w, heading.Render("Gallery Categories:"))
	fmt.Fprintln(w)

	for _, category := range categories {
		items, err := svc.FilteredItems(ctx, category)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\n", category)
		fmt.Fprintf(w, "  Items: %d\n", len(items))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total: %d categories\n", len(categories))
	return nil
}
