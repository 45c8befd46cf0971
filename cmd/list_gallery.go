package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"hotel-site/pkg/models"
	"hotel-site/pkg/services"
)

// newListGalleryCmd creates a new command for listing gallery items
func newListGalleryCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list-gallery",
		Short: "List gallery items",
		Long:  `List the gallery items shown for a filter, in display order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, svc, err := setup()
			if err != nil {
				return err
			}
			return listGallery(cmd.Context(), cmd.OutOrStdout(), svc, models.Category(filter))
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", string(models.CategoryAll), "Category to list")

	return cmd
}

// listGallery displays the filtered view of the gallery
func listGallery(ctx context.Context, w io.Writer, svc *services.Service, filter models.Category) error {
	items, err := svc.FilteredItems(ctx, filter)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, heading.Render(fmt.Sprintf("Gallery: %s", filter)))
	fmt.Fprintln(w)

	for i, item := range items {
		fmt.Fprintf(w, "%d. %s\n", i+1, item.Title)
		fmt.Fprintf(w, "   Category: %s\n", item.Category)
		fmt.Fprintf(w, "   Image: %s\n", item.Image)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total: %d items\n", len(items))
	return nil
}
